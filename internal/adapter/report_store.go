package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

const reportExtension = ".yaml"

// ReportStore persists search reports as one YAML document per report.
type ReportStore interface {
	// SaveReports writes reports into dir, assigning a UUID to any report
	// without an ID. It returns the written file paths in input order.
	SaveReports(ctx context.Context, dir m.FilePath, reports []m.Report) ([]m.FilePath, error)
	// LoadReports reads every report in dir, oldest first. A missing
	// directory yields no reports and no error.
	LoadReports(ctx context.Context, dir m.FilePath) ([]m.Report, error)
}

type reportStore struct{}

// NewReportStore creates a file-backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (s *reportStore) SaveReports(ctx context.Context, dir m.FilePath, reports []m.Report) ([]m.FilePath, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports directory", "dir", dir, "error", err)
		return nil, fmt.Errorf("create reports directory %s: %w", dir, err)
	}

	written := make([]m.FilePath, 0, len(reports))

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		if report.ID == "" {
			report.ID = uuid.NewString()
		}

		path, err := s.saveReport(dir, report)
		if err != nil {
			return written, err
		}

		written = append(written, path)
	}

	slog.Debug("Saved reports", "dir", dir, "count", len(written))

	return written, nil
}

func (s *reportStore) saveReport(dir m.FilePath, report m.Report) (m.FilePath, error) {
	content, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report %s: %w", report.ID, err)
	}

	path := filepath.Join(string(dir), report.ID+reportExtension)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	return m.FilePath(path), nil
}

func (s *reportStore) LoadReports(ctx context.Context, dir m.FilePath) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []m.Report{}, nil
		}

		slog.Error("Failed to read reports directory", "dir", dir, "error", err)

		return nil, fmt.Errorf("read reports directory %s: %w", dir, err)
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), reportExtension) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(content, &report); err != nil {
			slog.Error("Failed to decode report", "path", path, "error", err)
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.Before(reports[j].CreatedAt)
		}

		if reports[i].Strategy != reports[j].Strategy {
			return reports[i].Strategy < reports[j].Strategy
		}

		return reports[i].ID < reports[j].ID
	})

	return reports, nil
}

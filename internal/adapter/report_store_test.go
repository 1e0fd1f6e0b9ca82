package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

func TestReportStore_RoundTrip(t *testing.T) {
	store := NewReportStore()
	dir := m.FilePath(filepath.Join(t.TempDir(), "reports"))
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	reports := []m.Report{
		{
			ID:            "fixed-id",
			CreatedAt:     created,
			Scenario:      "maze",
			Strategy:      m.AStar,
			Found:         true,
			Length:        2,
			Iterations:    1,
			ElapsedMicros: 42,
			Path:          []m.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}},
			Visited:       []m.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}},
		},
		{
			CreatedAt:  created,
			Scenario:   "maze",
			Strategy:   m.BFS,
			Found:      false,
			Length:     -1,
			Iterations: 1,
			Visited:    []m.Cell{{Row: 0, Col: 0}},
		},
	}

	paths, err := store.SaveReports(context.Background(), dir, reports)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(string(dir), "fixed-id.yaml"), string(paths[0]))
	assert.FileExists(t, string(paths[1]))

	loaded, err := store.LoadReports(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Same timestamp, so ordering falls back to strategy.
	assert.Equal(t, m.BFS, loaded[0].Strategy)
	assert.NotEmpty(t, loaded[0].ID)
	assert.Nil(t, loaded[0].Path)
	assert.Equal(t, -1, loaded[0].Length)

	assert.Equal(t, reports[0], loaded[1])
}

func TestReportStore_LoadOrdersByCreation(t *testing.T) {
	store := NewReportStore()
	dir := m.FilePath(t.TempDir())
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.SaveReports(context.Background(), dir, []m.Report{
		{ID: "b", CreatedAt: older.Add(time.Hour), Strategy: m.BFS},
		{ID: "a", CreatedAt: older, Strategy: m.IDS},
	})
	require.NoError(t, err)

	loaded, err := store.LoadReports(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "a", loaded[0].ID)
	assert.Equal(t, "b", loaded[1].ID)
}

func TestReportStore_LoadMissingDir(t *testing.T) {
	store := NewReportStore()

	loaded, err := store.LoadReports(context.Background(), m.FilePath(filepath.Join(t.TempDir(), "absent")))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestReportStore_LoadSkipsOtherFiles(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o750))

	loaded, err := store.LoadReports(context.Background(), m.FilePath(dir))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestReportStore_LoadInvalidReport(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("strategy: teleport\n"), 0o600))

	_, err := store.LoadReports(context.Background(), m.FilePath(dir))
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrUnknownStrategy)
}

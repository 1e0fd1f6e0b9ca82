package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	m "gridpath.dev/pkg/gridpath/internal/model"
)

const defaultPlayInterval = 120 * time.Millisecond

type stepTickMsg struct{}

// stepModel is the Bubble Tea model of the interactive step viewer.
type stepModel struct {
	ctx      context.Context
	stepper  Stepper
	snapshot m.StepSnapshot
	err      error

	playing  bool
	interval time.Duration

	keys  stepKeyMap
	help  help.Model
	theme *Theme
}

func newStepModel(ctx context.Context, stepper Stepper, theme *Theme) stepModel {
	return stepModel{
		ctx:      ctx,
		stepper:  stepper,
		interval: defaultPlayInterval,
		keys:     defaultStepKeyMap(),
		help:     help.New(),
		theme:    theme,
	}
}

func (sm stepModel) Init() tea.Cmd {
	return nil
}

func (sm stepModel) tick() tea.Cmd {
	return tea.Tick(sm.interval, func(time.Time) tea.Msg {
		return stepTickMsg{}
	})
}

func (sm stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.help.Width = msg.Width

		return sm, nil

	case stepTickMsg:
		if !sm.playing {
			return sm, nil
		}

		sm = sm.advance()
		if sm.finished() {
			sm.playing = false
			return sm, nil
		}

		return sm, sm.tick()

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm stepModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, sm.keys.Quit):
		return sm, tea.Quit

	case key.Matches(msg, sm.keys.Help):
		sm.help.ShowAll = !sm.help.ShowAll
		return sm, nil

	case key.Matches(msg, sm.keys.Step):
		sm.playing = false
		return sm.advance(), nil

	case key.Matches(msg, sm.keys.Play):
		if sm.finished() {
			return sm, nil
		}

		sm.playing = !sm.playing
		if sm.playing {
			return sm, sm.tick()
		}

		return sm, nil

	case key.Matches(msg, sm.keys.Finish):
		sm.playing = false
		for !sm.finished() {
			sm = sm.advance()
		}

		return sm, nil
	}

	return sm, nil
}

// advance performs one expansion and records the snapshot or error.
func (sm stepModel) advance() stepModel {
	if sm.finished() {
		return sm
	}

	snapshot, err := sm.stepper.Step(sm.ctx)
	if err != nil {
		sm.err = err
		sm.playing = false

		return sm
	}

	sm.snapshot = snapshot

	return sm
}

func (sm stepModel) finished() bool {
	return sm.err != nil || sm.stepper.Done()
}

func (sm stepModel) View() string {
	var b strings.Builder

	scenario := sm.stepper.Scenario()
	strategy := sm.stepper.Strategy()

	b.WriteString(sm.theme.TitleStyle.Render(fmt.Sprintf("gridpath - %s", strategy.Title())))
	fmt.Fprintf(&b, "\n%s\n\n", sm.theme.LabelStyle.Render(fmt.Sprintf("%s (%dx%d) %v -> %v",
		scenario.Name, scenario.Grid.Rows(), scenario.Grid.Cols(), scenario.Start, scenario.Goal)))

	overlay := gridOverlay{visited: sm.snapshot.Visited, frontier: sm.snapshot.Frontier, path: sm.snapshot.Path}
	if sm.snapshot.Step > 0 {
		current := sm.snapshot.Current
		overlay.current = &current
	}

	grid := strings.TrimSuffix(renderGrid(gridMarks(scenario, overlay), sm.theme.cell), "\n")
	b.WriteString(sm.theme.PanelStyle.Render(grid))
	b.WriteString("\n")

	b.WriteString(sm.statusLine(strategy))
	b.WriteString("\n")

	if sm.err != nil {
		b.WriteString(sm.theme.ErrorStyle.Render(fmt.Sprintf("error: %v", sm.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sm.help.View(sm.keys))
	b.WriteString("\n")

	return b.String()
}

func (sm stepModel) statusLine(strategy m.Strategy) string {
	snapshot := sm.snapshot
	if snapshot.Step == 0 && !sm.stepper.Done() {
		return sm.theme.LabelStyle.Render("ready: press n to expand the first cell")
	}

	parts := []string{
		fmt.Sprintf("step %d", snapshot.Step),
		fmt.Sprintf("current %v", snapshot.Current),
		fmt.Sprintf("frontier %d", len(snapshot.Frontier)),
		fmt.Sprintf("visited %d", len(snapshot.Visited)),
	}

	if strategy == m.IDS {
		parts = append(parts, fmt.Sprintf("depth limit %d", snapshot.Limit))
	}

	status := strings.Join(parts, " | ")

	switch {
	case snapshot.Done && snapshot.Found:
		status += "\n" + sm.theme.StatusStyle.Render(fmt.Sprintf("path found, length %d", snapshot.Path.Length()))
	case snapshot.Done:
		status += "\n" + sm.theme.ErrorStyle.Render(notFoundLabel)
	case sm.playing:
		status += "\n" + sm.theme.LabelStyle.Render("playing")
	}

	return status
}

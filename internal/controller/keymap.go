package controller

import "github.com/charmbracelet/bubbles/key"

// stepKeyMap defines the step viewer's key bindings.
type stepKeyMap struct {
	Step   key.Binding
	Play   key.Binding
	Finish key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultStepKeyMap() stepKeyMap {
	return stepKeyMap{
		Step: key.NewBinding(
			key.WithKeys("n", " ", "right", "l"),
			key.WithHelp("n/space", "step"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f", "end"),
			key.WithHelp("f", "run to end"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k stepKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Play, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k stepKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Play, k.Finish},
		{k.Help, k.Quit},
	}
}

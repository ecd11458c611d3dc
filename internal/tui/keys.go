package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Random    key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	Reverse   key.Binding
	Cap       key.Binding
	Animate   key.Binding
	PauseDemo key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Random: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "random value"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-10%"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+10%"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		Cap: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cap style"),
		),
		Animate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animation"),
		),
		PauseDemo: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause demo"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Random, k.Decrease, k.Increase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Random, k.Decrease, k.Increase},
		{k.Reverse, k.Cap, k.Animate},
		{k.PauseDemo, k.Help, k.Quit},
	}
}

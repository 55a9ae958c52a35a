package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Help      key.Binding
	TakePhoto key.Binding
	Save      key.Binding
	Retake    key.Binding
	Edit      key.Binding
	Profile   key.Binding
	Filter    key.Binding
	Language  key.Binding
	Plan      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		TakePhoto: key.NewBinding(
			key.WithKeys("t", "enter"),
			key.WithHelp("t", "take photo"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save moment"),
		),
		Retake: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retake photo"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit details"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "switch profile"),
		),
		Filter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle category filter"),
		),
		Language: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "switch language"),
		),
		Plan: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "toggle plan (debug)"),
		),
	}
}

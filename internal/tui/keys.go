package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/junglivre/nomoject/internal/locale"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Refresh   key.Binding
	Confirm   key.Binding
	Language  key.Binding
	Quit      key.Binding
}

func newKeyMap(loc locale.Locale) keyMap {
	l := func(k locale.Key) string { return locale.Localize(k, loc) }
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", l(locale.MsgHelpUp)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", l(locale.MsgHelpDown)),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", l(locale.MsgHelpToggle)),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", l(locale.MsgHelpToggleAll)),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", l(locale.MsgHelpRefresh)),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", l(locale.MsgHelpConfirm)),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", l(locale.MsgHelpLanguage)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", l(locale.MsgHelpQuit)),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Confirm, k.Refresh, k.Language, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.ToggleAll},
		{k.Refresh, k.Confirm, k.Language, k.Quit},
	}
}

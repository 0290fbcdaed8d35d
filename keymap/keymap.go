package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Mapping struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	CycleFocus key.Binding
	SwitchMode key.Binding
	NextKey    key.Binding
	PrevKey    key.Binding
	NextScale  key.Binding
	Instrument key.Binding
	Strings    key.Binding
	Tuning     key.Binding
	View       key.Binding
	MoreFrets  key.Binding
	LessFrets  key.Binding
	Select     key.Binding
	Mute       key.Binding
	Clear      key.Binding
	GoBack     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var DefaultMapping = Mapping{
	Up: key.NewBinding(
		key.WithKeys(tea.KeyUp.String(), "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys(tea.KeyDown.String(), "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys(tea.KeyLeft.String(), "h"),
		key.WithHelp("←/h", "fret down"),
	),
	Right: key.NewBinding(
		key.WithKeys(tea.KeyRight.String(), "l"),
		key.WithHelp("→/l", "fret up"),
	),
	CycleFocus: key.NewBinding(
		key.WithKeys(tea.KeyTab.String()),
		key.WithHelp("tab", "cycle focus"),
	),
	SwitchMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "switch mode"),
	),
	NextKey: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "next key"),
	),
	PrevKey: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "previous key"),
	),
	NextScale: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "next scale"),
	),
	Instrument: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "instrument"),
	),
	Strings: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "string amount"),
	),
	Tuning: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tuning"),
	),
	View: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "frets/notes"),
	),
	MoreFrets: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more frets"),
	),
	LessFrets: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "less frets"),
	),
	Select: key.NewBinding(
		key.WithKeys(tea.KeyEnter.String(), " "),
		key.WithHelp("enter", "fret/select"),
	),
	Mute: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "mute string"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear chord"),
	),
	GoBack: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "go back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String(), "q"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Mapping) ShortHelp() []key.Binding {
	return []key.Binding{m.SwitchMode, m.CycleFocus, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Mapping) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Up, m.Down, m.Left, m.Right},
		{m.NextKey, m.PrevKey, m.NextScale, m.View},
		{m.Instrument, m.Strings, m.Tuning, m.MoreFrets, m.LessFrets},
		{m.Select, m.Mute, m.Clear, m.SwitchMode, m.CycleFocus, m.Help, m.Quit},
	}
}

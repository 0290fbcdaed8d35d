package styles

import "github.com/charmbracelet/lipgloss"

const (
	// Width used for tables and panels. The detected terminal width only
	// truncates, so narrow terminals do not wrap.
	Width = 72

	// Columns taken by one rendered fret cell.
	FretWidth = 5
)

// https://github.com/inngest/inngest/blob/main/pkg/cli/styles.go
var (
	Color   = lipgloss.AdaptiveColor{Light: "#111222", Dark: "#FAFAFA"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Primary = lipgloss.Color("#4636f5")
	Green   = lipgloss.Color("#9dcc3a")
	Red     = lipgloss.Color("#ff0000")
	White   = lipgloss.Color("#ffffff")
	Black   = lipgloss.Color("#000000")
	Orange  = lipgloss.Color("#D3A347")

	TextStyle = lipgloss.NewStyle().Foreground(Color)
	BoldStyle = TextStyle.Copy().Bold(true)
	FaintText = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	FocusedStyle = BaseStyle.Copy().
			BorderForeground(Primary)

	// Fretboard cells.
	FretCell = lipgloss.NewStyle().
			Width(FretWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))
	ScaleNote = FretCell.Copy().
			Foreground(Green)
	RootNote = FretCell.Copy().
			Foreground(Black).
			Background(Orange).
			Bold(true)
	FrettedNote = FretCell.Copy().
			Foreground(White).
			Background(Primary).
			Bold(true)
	CursorCell = FretCell.Copy().
			Underline(true).
			Foreground(Color)
	OpenString = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Right).
			Bold(true).
			PaddingRight(1)

	// Status Bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	StatusStyle = lipgloss.NewStyle().
			Inherit(StatusBarStyle).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().Inherit(StatusBarStyle).Padding(0, 1)

	MessageText = lipgloss.NewStyle().Align(lipgloss.Left)

	HelpMenu = lipgloss.NewStyle().Align(lipgloss.Left).PaddingTop(1)
	// Page
	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	err := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return err + content
}

// RenderStatus renders a status bar with a highlighted label.
func RenderStatus(label string, items ...string) string {
	bar := StatusStyle.Render(label)
	for _, it := range items {
		bar += StatusText.Render(it)
	}
	return bar
}

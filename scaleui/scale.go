// Package scaleui is the scale visualiser: the selected scale highlighted
// over the fretboard, next to the chords that can be played within it.
package scaleui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxfret/fretboard"
	"github.com/rapidmidiex/rmxfret/keymap"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/rmxerr"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/styles"
	"github.com/rapidmidiex/rmxfret/theory"
	"github.com/rapidmidiex/rmxfret/uimsg"
)

const (
	boardFocus focused = iota
	tableFocus
	// Don't forget to update availableFocusStates if more states are added here.
	availableFocusStates = 2
)

type (
	focused int

	Model struct {
		store *store.Store
		state store.State

		scaleNotes []theory.Note
		chords     []matcher.ChordInstance
		chordTable table.Model

		focused focused
		err     error
	}
)

func New(s *store.Store, st store.State) Model {
	return Model{store: s}.SetState(st)
}

// SetState replaces the shown state and recomputes what depends on it.
func (m Model) SetState(st store.State) Model {
	m.state = st
	m.err = nil

	notes, err := m.store.ScaleNotes(st)
	if err != nil {
		m.err = err
		return m
	}
	chords, err := m.store.ScaleChords(st)
	if err != nil {
		m.err = err
		return m
	}
	m.scaleNotes = notes
	m.chords = chords
	cursor := m.chordTable.Cursor()
	m.chordTable = makeChordTable(chords, m.store.Matcher().IsPowerChord, m.focused == tableFocus)
	if len(chords) > 0 {
		m.chordTable.SetCursor(min(cursor, len(chords)-1))
	}
	return m
}

func (m Model) State() store.State { return m.state }

// Selected returns the chord under the table cursor.
func (m Model) Selected() (matcher.ChordInstance, bool) {
	i := m.chordTable.Cursor()
	if i < 0 || i >= len(m.chords) {
		return matcher.ChordInstance{}, false
	}
	return m.chords[i], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rmxerr.ErrMsg:
		m.err = msg

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.CycleFocus):
			m.focused = (m.focused + 1) % availableFocusStates
			if m.focused == tableFocus {
				m.chordTable.Focus()
			} else {
				m.chordTable.Blur()
			}
			return m, nil

		case key.Matches(msg, keymap.DefaultMapping.NextKey):
			return m, m.transposeKey(1)
		case key.Matches(msg, keymap.DefaultMapping.PrevKey):
			return m, m.transposeKey(-1)
		case key.Matches(msg, keymap.DefaultMapping.NextScale):
			return m, m.nextScale()
		}

		switch m.focused {
		case boardFocus:
			switch {
			case key.Matches(msg, keymap.DefaultMapping.Left):
				if m.state.StartFret > 0 {
					return m, uimsg.Dispatch(store.SetStartFret{Fret: m.state.StartFret - 1})
				}
			case key.Matches(msg, keymap.DefaultMapping.Right):
				return m, uimsg.Dispatch(store.SetStartFret{Fret: m.state.StartFret + 1})
			}
		case tableFocus:
			var cmd tea.Cmd
			m.chordTable, cmd = m.chordTable.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() string {
	doc := strings.Builder{}

	title := fmt.Sprintf("%s %s", m.state.Key, m.state.Scale)
	doc.WriteString(styles.BoldStyle.Render(title))
	doc.WriteString("  " + styles.FaintText.Render(strings.Join(theory.Strings(m.scaleNotes), " ")) + "\n\n")

	// The selected chord replaces the scale on the board while the table has focus.
	set, root := m.scaleNotes, m.state.Key
	if c, ok := m.Selected(); ok && m.focused == tableFocus {
		set, root = c.Notes, c.Root
	}
	frets, err := m.store.Frets(m.state)
	if err == nil {
		var board fretboard.Board
		board, err = fretboard.Build(fretboard.Options{
			Tuning: m.state.Tuning.Strings,
			Frets:  frets,
			Set:    set,
			Root:   root,
		})
		if err == nil {
			boardStyle := styles.BaseStyle
			if m.focused == boardFocus {
				boardStyle = styles.FocusedStyle
			}
			doc.WriteString(boardStyle.Render(board.Render(m.state.ViewOption == store.ViewNotes, fretboard.Cursor{})))
			doc.WriteString("\n")
		}
	}
	if err != nil {
		doc.WriteString(styles.RenderError(err.Error()) + "\n")
	}

	// Chord table
	{
		if len(m.chords) > 0 {
			tableStyle := styles.BaseStyle
			if m.focused == tableFocus {
				tableStyle = styles.FocusedStyle
			}
			doc.WriteString(tableStyle.Width(styles.Width).Render(m.chordTable.View()))
		} else {
			doc.WriteString(styles.MessageText.Render("No chords fit in this scale.\n"))
		}
	}

	if m.err != nil {
		doc.WriteString("\n" + styles.RenderError(m.err.Error()))
	}
	return doc.String()
}

func (m Model) transposeKey(semitones int) tea.Cmd {
	next, err := theory.Transpose(m.state.Key, semitones)
	if err != nil {
		return rmxerr.Cmd(err)
	}
	return uimsg.Dispatch(store.SetKey{Key: next})
}

func (m Model) nextScale() tea.Cmd {
	names := m.store.Catalog().Scales.Names()
	if len(names) == 0 {
		return nil
	}
	next := names[0]
	for i, name := range names {
		if name == m.state.Scale {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return uimsg.Dispatch(store.SetScale{Scale: next})
}

func makeChordTable(chords []matcher.ChordInstance, isPower func(matcher.ChordInstance) bool, focus bool) table.Model {
	columns := []table.Column{
		{Title: "Chord", Width: 16},
		{Title: "Notes", Width: 24},
		{Title: "Power", Width: 6},
	}

	rows := make([]table.Row, 0, len(chords))
	for _, c := range chords {
		power := ""
		if isPower(c) {
			power = "yes"
		}
		rows = append(rows, table.Row{c.Name, strings.Join(theory.Strings(c.Notes), " "), power})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(focus),
		table.WithHeight(7),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Package chordui names the chord fretted on the board and lists the keys
// and scales it belongs to.
package chordui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxfret/fretboard"
	"github.com/rapidmidiex/rmxfret/keymap"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/rmxerr"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/styles"
	"github.com/rapidmidiex/rmxfret/theory"
	"github.com/rapidmidiex/rmxfret/uimsg"
)

// Number of compatible keys listed under the chord name.
const maxScaleLines = 6

type Model struct {
	store *store.Store
	state store.State

	// Cursor position, string index from the top and absolute fret.
	str  int
	fret int

	naming matcher.Naming
	notes  []theory.Note
	scales []matcher.RootScales
	err    error
}

func New(s *store.Store, st store.State) Model {
	return Model{store: s}.SetState(st)
}

// SetState replaces the shown state, keeping the cursor on the board.
func (m Model) SetState(st store.State) Model {
	m.state = st
	m.err = nil
	m.str = clamp(m.str, 0, st.StringCount()-1)
	m.fret = clamp(m.fret, st.StartFret, st.StartFret+st.VisibleFrets)

	var err error
	if m.notes, err = m.store.ChordNotes(st); err != nil {
		m.err = err
		return m
	}
	if m.naming, err = m.store.NameChord(st); err != nil {
		m.err = err
		return m
	}
	if m.scales, err = m.store.ChordScales(st); err != nil {
		m.err = err
	}
	return m
}

func (m Model) State() store.State { return m.state }

// Cursor returns the string index and fret under the cursor.
func (m Model) Cursor() (int, int) { return m.str, m.fret }

func (m Model) Naming() matcher.Naming { return m.naming }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rmxerr.ErrMsg:
		m.err = msg

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.Up):
			m.str = clamp(m.str-1, 0, m.state.StringCount()-1)
		case key.Matches(msg, keymap.DefaultMapping.Down):
			m.str = clamp(m.str+1, 0, m.state.StringCount()-1)

		case key.Matches(msg, keymap.DefaultMapping.Left):
			if m.fret == 0 {
				return m, nil
			}
			m.fret--
			if m.fret < m.state.StartFret {
				return m, uimsg.Dispatch(store.SetStartFret{Fret: m.fret})
			}
		case key.Matches(msg, keymap.DefaultMapping.Right):
			m.fret++
			// Scroll the window along with the cursor.
			if last := m.state.StartFret + m.state.VisibleFrets; m.fret > last {
				return m, uimsg.Dispatch(store.SetStartFret{Fret: m.state.StartFret + m.fret - last})
			}

		case key.Matches(msg, keymap.DefaultMapping.Select):
			fret := m.fret
			if m.str < len(m.state.Chord) && m.state.Chord[m.str] == fret {
				fret = store.Muted
			}
			return m, uimsg.Dispatch(store.SetChordFret{Index: m.str, Fret: fret})
		case key.Matches(msg, keymap.DefaultMapping.Mute):
			return m, uimsg.Dispatch(store.SetChordFret{Index: m.str, Fret: store.Muted})
		case key.Matches(msg, keymap.DefaultMapping.Clear):
			return m, uimsg.Dispatch(store.ClearChord{})
		}
	}
	return m, nil
}

func (m Model) View() string {
	doc := strings.Builder{}

	switch {
	case m.naming.Found:
		doc.WriteString(styles.BoldStyle.Render(m.naming.Name))
	case len(m.notes) == 0:
		doc.WriteString(styles.FaintText.Render("Fret some strings to name the chord"))
	default:
		doc.WriteString(styles.BoldStyle.Render("Unknown chord"))
		doc.WriteString("  " + styles.FaintText.Render(fmt.Sprint(theory.Ints(m.naming.Intervals))))
	}
	doc.WriteString("  " + styles.FaintText.Render(strings.Join(theory.Strings(m.notes), " ")) + "\n\n")

	frets, err := m.store.Frets(m.state)
	if err == nil {
		var board fretboard.Board
		board, err = fretboard.Build(fretboard.Options{
			Tuning: m.state.Tuning.Strings,
			Frets:  frets,
			Root:   m.naming.Root,
			Chord:  m.state.Chord,
		})
		if err == nil {
			cursor := fretboard.Cursor{String: m.str, Fret: m.fret, Active: true}
			doc.WriteString(styles.FocusedStyle.Render(board.Render(m.state.ViewOption == store.ViewNotes, cursor)))
			doc.WriteString("\n")
		}
	}
	if err != nil {
		doc.WriteString(styles.RenderError(err.Error()) + "\n")
	}

	for i, rs := range m.scales {
		if i == maxScaleLines {
			doc.WriteString(styles.FaintText.Render(fmt.Sprintf("... %d more keys", len(m.scales)-i)) + "\n")
			break
		}
		doc.WriteString(styles.BoldStyle.Render(fmt.Sprintf("%-3s", rs.Root)))
		doc.WriteString(" " + strings.Join(rs.Scales, ", ") + "\n")
	}

	if m.err != nil {
		doc.WriteString("\n" + styles.RenderError(m.err.Error()))
	}
	return doc.String()
}

func clamp(v, low, high int) int {
	if high < low {
		return low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

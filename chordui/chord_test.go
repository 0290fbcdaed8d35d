package chordui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxfret/chordui"
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/uimsg"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (chordui.Model, store.State) {
	t.Helper()
	cat, err := dictionary.Default()
	require.NoError(t, err)
	s := store.New(cat, matcher.New(cat.Chords, cat.Scales))
	st, err := s.Initial()
	require.NoError(t, err)
	st.AppMode = store.ChordMode
	return chordui.New(s, st), st
}

func press(t *testing.T, m chordui.Model, keys ...tea.KeyMsg) (chordui.Model, tea.Msg) {
	t.Helper()
	var msg tea.Msg
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = next.(chordui.Model)
		msg = nil
		if cmd != nil {
			msg = cmd()
		}
	}
	return m, msg
}

var (
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestCursor(t *testing.T) {
	m, _ := newModel(t)

	t.Run("stays on the board", func(t *testing.T) {
		m, _ := press(t, m, up, left)
		str, fret := m.Cursor()
		require.Equal(t, 0, str)
		require.Equal(t, 0, fret)

		m, _ = press(t, m, down, down, down, down, down, down, down)
		str, _ = m.Cursor()
		require.Equal(t, 5, str)
	})

	t.Run("scrolls the fret window past the last visible fret", func(t *testing.T) {
		_, msg := press(t, m, right, right, right, right, right)
		require.Equal(t, uimsg.ActionMsg{Action: store.SetStartFret{Fret: 1}}, msg)
	})
}

func TestFretting(t *testing.T) {
	m, st := newModel(t)

	t.Run("enter frets the string under the cursor", func(t *testing.T) {
		_, msg := press(t, m, down, right, enter)
		require.Equal(t, uimsg.ActionMsg{Action: store.SetChordFret{Index: 1, Fret: 1}}, msg)
	})

	t.Run("enter on a fretted note mutes the string", func(t *testing.T) {
		fretted := st.Clone()
		fretted.Chord[0] = 0
		_, msg := press(t, m.SetState(fretted), enter)
		require.Equal(t, uimsg.ActionMsg{Action: store.SetChordFret{Index: 0, Fret: store.Muted}}, msg)
	})

	t.Run("x mutes and c clears", func(t *testing.T) {
		_, msg := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		require.Equal(t, uimsg.ActionMsg{Action: store.SetChordFret{Index: 0, Fret: store.Muted}}, msg)
		_, msg = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
		require.Equal(t, uimsg.ActionMsg{Action: store.ClearChord{}}, msg)
	})
}

func TestNaming(t *testing.T) {
	m, st := newModel(t)
	require.Contains(t, m.View(), "Fret some strings")

	st.Chord = []int{0, 1, 2, 2, 0, store.Muted}
	m = m.SetState(st)
	require.True(t, m.Naming().Found)
	require.Equal(t, "A minor", m.Naming().Name)

	view := m.View()
	require.Contains(t, view, "A minor")
	require.Contains(t, view, "Natural minor (Aeolian)")
}

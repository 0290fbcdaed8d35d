package rmxfret_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxfret"
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/theory"
	"github.com/rapidmidiex/rmxfret/uimsg"
	"github.com/stretchr/testify/require"
)

type stateful interface {
	tea.Model
	State() store.State
}

func newModel(t *testing.T) stateful {
	t.Helper()
	cat, err := dictionary.Default()
	require.NoError(t, err)
	s := store.New(cat, matcher.New(cat.Chords, cat.Scales))
	st, err := s.Initial()
	require.NoError(t, err)
	return rmxfret.NewModel(s, st)
}

// send delivers msg and feeds every resulting message back into the model.
func send(t *testing.T, m stateful, msg tea.Msg) stateful {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(stateful), cmd)
}

func drain(t *testing.T, m stateful, cmd tea.Cmd) stateful {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
		return m
	case tea.QuitMsg:
		return m
	default:
		return send(t, m, msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSettingsKeys(t *testing.T) {
	t.Run("m switches between the scale and chord views", func(t *testing.T) {
		m := send(t, newModel(t), runes("m"))
		require.Equal(t, store.ChordMode, m.State().AppMode)
		m = send(t, m, runes("m"))
		require.Equal(t, store.ScaleMode, m.State().AppMode)
	})

	t.Run("i cycles instruments and resets the tuning", func(t *testing.T) {
		m := send(t, newModel(t), runes("i"))
		require.Equal(t, dictionary.Bass, m.State().Instrument)
		require.Len(t, m.State().Tuning.Strings, 4)
		require.Len(t, m.State().Chord, 4)

		m = send(t, m, runes("i"))
		require.Equal(t, dictionary.Ukulele, m.State().Instrument)
		m = send(t, m, runes("i"))
		require.Equal(t, dictionary.Guitar, m.State().Instrument)
	})

	t.Run("n cycles string amounts", func(t *testing.T) {
		m := send(t, newModel(t), runes("n"))
		require.Equal(t, 7, m.State().StringCount())
		m = send(t, m, runes("n"))
		m = send(t, m, runes("n"))
		m = send(t, m, runes("n"))
		require.Equal(t, 6, m.State().StringCount())
	})

	t.Run("t cycles tunings of the instrument", func(t *testing.T) {
		m := newModel(t)
		first := m.State().Tuning.Name
		m = send(t, m, runes("t"))
		require.NotEqual(t, first, m.State().Tuning.Name)
		require.Equal(t, dictionary.Guitar, m.State().Tuning.Instrument)
	})

	t.Run("v toggles note names", func(t *testing.T) {
		m := send(t, newModel(t), runes("v"))
		require.Equal(t, store.ViewNotes, m.State().ViewOption)
	})

	t.Run("+ and - change the visible frets", func(t *testing.T) {
		m := newModel(t)
		visible := m.State().VisibleFrets
		m = send(t, m, runes("+"))
		require.Equal(t, visible+1, m.State().VisibleFrets)
		m = send(t, m, runes("-"))
		m = send(t, m, runes("-"))
		require.Equal(t, visible-1, m.State().VisibleFrets)
	})
}

func TestRejectedAction(t *testing.T) {
	m := newModel(t)
	before := m.State()

	m = send(t, m, uimsg.ActionMsg{Action: store.SetKey{Key: "H"}})
	require.Equal(t, before, m.State())
	require.Contains(t, m.View(), `invalid note: "H"`)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotContains(t, m.View(), "invalid note")
}

func TestResize(t *testing.T) {
	m := send(t, newModel(t), uimsg.ResizedMsg{Width: 78})
	require.Equal(t, 13, m.State().VisibleFrets)
}

func TestScaleView(t *testing.T) {
	m := send(t, newModel(t), runes("K"))
	require.Equal(t, theory.Note("F"), m.State().Key)

	m = send(t, m, runes("s"))
	require.Equal(t, "Natural minor (Aeolian)", m.State().Scale)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.State().StartFret)
	require.Contains(t, m.View(), "F Natural minor (Aeolian)")
}

func TestChordView(t *testing.T) {
	m := send(t, newModel(t), runes("m"))

	// Open A minor on a standard tuned guitar, high E string first.
	keys := []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyDown}, {Type: tea.KeyRight}, {Type: tea.KeyEnter},
		{Type: tea.KeyDown}, {Type: tea.KeyRight}, {Type: tea.KeyEnter},
		{Type: tea.KeyDown}, {Type: tea.KeyEnter},
		{Type: tea.KeyDown}, {Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyEnter},
	}
	for _, k := range keys {
		m = send(t, m, k)
	}

	require.Equal(t, []int{0, 1, 2, 2, 0, store.Muted}, m.State().Chord)
	require.Contains(t, m.View(), "A minor")

	m = send(t, m, runes("c"))
	require.Equal(t, []int{-1, -1, -1, -1, -1, -1}, m.State().Chord)
}

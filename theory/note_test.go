package theory_test

import (
	"testing"

	"github.com/rapidmidiex/rmxfret/theory"
	"github.com/stretchr/testify/require"
)

func TestOctave(t *testing.T) {
	seen := make(map[theory.Note]struct{})
	for _, n := range theory.Octave {
		seen[n] = struct{}{}
	}
	require.Len(t, seen, theory.NotesInOctave)
	require.Equal(t, theory.Note("A"), theory.Octave[0])
}

func TestParseNote(t *testing.T) {
	valid := map[string]theory.Note{"c": "C", " F# ": "F#", "g#": "G#", "A": "A"}
	for in, want := range valid {
		got, err := theory.ParseNote(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for _, in := range []string{"", "Bb", "H", "C##", "  "} {
		_, err := theory.ParseNote(in)
		require.ErrorIs(t, err, theory.ErrInvalidNote, "in %q", in)
	}
}

func TestTranspose(t *testing.T) {
	got, err := theory.Transpose("G", 5)
	require.NoError(t, err)
	require.Equal(t, theory.Note("C"), got)

	got, err = theory.Transpose("A", -1)
	require.NoError(t, err)
	require.Equal(t, theory.Note("G#"), got)

	require.True(t, theory.Note("C#").IsAccidental())
	require.False(t, theory.Note("E").IsAccidental())
}

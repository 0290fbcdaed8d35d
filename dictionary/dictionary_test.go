package dictionary_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/theory"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat, err := dictionary.Default()
	require.NoError(t, err)

	t.Run("keeps chord declaration order", func(t *testing.T) {
		names := cat.Chords.Names()
		require.Equal(t, []string{"major", "minor", "5"}, names[:3])
	})

	t.Run("keeps scale declaration order", func(t *testing.T) {
		first, err := cat.Scales.First()
		require.NoError(t, err)
		require.Equal(t, "Major (Ionian)", first.Name)
		require.Equal(t, theory.FromInts([]int{0, 2, 4, 5, 7, 9, 11}), first.Intervals)
	})

	t.Run("lists string amounts per instrument", func(t *testing.T) {
		require.Equal(t, []int{6, 7, 8, 9}, cat.Tunings.StringCounts(dictionary.Guitar))
		require.Equal(t, []int{4, 5, 6}, cat.Tunings.StringCounts(dictionary.Bass))
		require.Equal(t, []int{4}, cat.Tunings.StringCounts(dictionary.Ukulele))
	})

	t.Run("defaults to the first tuning of an instrument", func(t *testing.T) {
		tuning, err := cat.Tunings.Default(dictionary.Bass)
		require.NoError(t, err)
		require.Equal(t, []theory.Note{"G", "D", "A", "E"}, tuning.Strings)
	})

	t.Run("finds tunings by string amount", func(t *testing.T) {
		tuning, err := cat.Tunings.WithStrings(dictionary.Guitar, 7)
		require.NoError(t, err)
		require.Equal(t, []theory.Note{"E", "B", "G", "D", "A", "E", "B"}, tuning.Strings)

		_, err = cat.Tunings.WithStrings(dictionary.Ukulele, 6)
		require.ErrorIs(t, err, theory.ErrInvalidRange)
	})

	t.Run("unknown names are typed errors", func(t *testing.T) {
		_, err := cat.Chords.Get("mystery")
		require.ErrorIs(t, err, theory.ErrInvalidName)
		_, err = cat.Scales.Get("mystery")
		require.ErrorIs(t, err, theory.ErrInvalidName)
		_, err = cat.Tunings.Get(dictionary.Guitar, "mystery")
		require.ErrorIs(t, err, theory.ErrInvalidName)
	})
}

func TestCatalogCopies(t *testing.T) {
	cat, err := dictionary.Default()
	require.NoError(t, err)

	tuning, err := cat.Tunings.Default(dictionary.Guitar)
	require.NoError(t, err)
	tuning.Strings[0] = "F"

	again, err := cat.Tunings.Default(dictionary.Guitar)
	require.NoError(t, err)
	require.Equal(t, theory.Note("E"), again.Strings[0])

	chord, err := cat.Chords.Get("major")
	require.NoError(t, err)
	chord.Intervals[1] = 3

	again2, err := cat.Chords.Get("major")
	require.NoError(t, err)
	require.Equal(t, theory.FromInts([]int{0, 4, 7}), again2.Intervals)
}

func TestLoad(t *testing.T) {
	t.Run("reads YAML sections and keeps their order", func(t *testing.T) {
		doc := `
chords:
  zeta: [0, 4, 7]
  alpha: [0, 3, 7]
scales:
  Quarter: { intervals: [0, 3, 6, 9] }
`
		cat, err := dictionary.Load(strings.NewReader(doc))
		require.NoError(t, err)
		require.Equal(t, []string{"zeta", "alpha"}, cat.Chords.Names())
		require.Equal(t, []string{"Quarter"}, cat.Scales.Names())
		// not overridden
		require.NotEmpty(t, cat.Tunings.ForInstrument(dictionary.Guitar))
	})

	t.Run("rejects intervals without a root", func(t *testing.T) {
		_, err := dictionary.Load(strings.NewReader(`{"chords": {"odd": [4, 7]}}`))
		require.ErrorContains(t, err, "odd")
	})

	t.Run("rejects negative intervals", func(t *testing.T) {
		_, err := dictionary.Load(strings.NewReader(`{"scales": {"neg": {"intervals": [0, -2]}}}`))
		require.ErrorIs(t, err, theory.ErrInvalidRange)
	})

	t.Run("rejects tunings with unknown notes", func(t *testing.T) {
		doc := `{"tunings": [{"name": "Flat", "type": "guitar", "strings": ["Eb", "Bb"]}]}`
		_, err := dictionary.Load(strings.NewReader(doc))
		require.ErrorIs(t, err, theory.ErrInvalidNote)
	})

	t.Run("rejects unknown instruments", func(t *testing.T) {
		doc := `{"tunings": [{"name": "Standard", "type": "banjo", "strings": ["D"]}]}`
		_, err := dictionary.Load(strings.NewReader(doc))
		require.ErrorIs(t, err, theory.ErrInvalidName)
	})

	t.Run("rejects unknown sections", func(t *testing.T) {
		_, err := dictionary.Load(strings.NewReader(`{"modes": {}}`))
		require.ErrorContains(t, err, "modes")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"chords": {"5": [0, 7]}}`), 0o644))
	cat, err := dictionary.LoadFile(good)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Chords.Len())

	bad := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(bad, []byte(``), 0o644))
	_, err = dictionary.LoadFile(bad)
	require.ErrorContains(t, err, "unsupported")
}

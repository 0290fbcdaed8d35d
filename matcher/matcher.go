// Package matcher finds the chords that fit a scale, the scales that fit a
// set of notes, and names chords by their interval sets.
package matcher

import (
	"sort"

	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/theory"
)

type (
	// Matcher answers chord and scale queries against the dictionaries it was
	// created with. It holds no mutable state and is safe for concurrent use.
	Matcher struct {
		chords     *dictionary.Chords
		scales     *dictionary.Scales
		powerChord PowerChordDetector
	}

	Option func(*Matcher)

	// ChordInstance is a chord shape applied to a root note.
	ChordInstance struct {
		// Display name, ex: "A minor"
		Name  string        `json:"name"`
		Root  theory.Note   `json:"root"`
		Chord string        `json:"chord"`
		Notes []theory.Note `json:"notes"`
	}

	// RootScales lists the scales that contain a set of notes when played
	// from Root.
	RootScales struct {
		Root   theory.Note `json:"root"`
		Scales []string    `json:"scales"`
	}
)

// WithPowerChordDetector replaces the default name based power chord check.
func WithPowerChordDetector(d PowerChordDetector) Option {
	return func(m *Matcher) {
		m.powerChord = d
	}
}

func New(chords *dictionary.Chords, scales *dictionary.Scales, opts ...Option) *Matcher {
	m := &Matcher{
		chords:     chords,
		scales:     scales,
		powerChord: NameHeuristic{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ChordByIntervals returns the first chord whose intervals equal the given
// ones, element by element. Order and length matter.
func (m *Matcher) ChordByIntervals(intervals []theory.Interval) (string, bool) {
	for _, chord := range m.chords.All() {
		if equalIntervals(chord.Intervals, intervals) {
			return chord.Name, true
		}
	}
	return "", false
}

// CompatibleScalesForIntervals returns every scale containing all of the
// given intervals. Intervals of an octave or more are reduced first.
func (m *Matcher) CompatibleScalesForIntervals(intervals []theory.Interval) []string {
	normalized := theory.NormalizeAll(intervals)
	out := make([]string, 0)
	for _, scale := range m.scales.All() {
		if containsAll(scale.Intervals, normalized) {
			out = append(out, scale.Name)
		}
	}
	return out
}

// CompatibleScalesForNotes finds every root and scale combination that
// contains all of the given notes. exclude, when set, is skipped as a root.
// Roots are sorted by name as plain strings, not chromatically.
func (m *Matcher) CompatibleScalesForNotes(notes []theory.Note, exclude *theory.Note) ([]RootScales, error) {
	for _, n := range notes {
		if _, err := theory.IndexOf(n); err != nil {
			return nil, err
		}
	}

	byRoot := make(map[theory.Note][]string)
	for _, scale := range m.scales.All() {
		for _, root := range theory.Octave {
			if exclude != nil && *exclude == root {
				continue
			}
			scaleNotes, err := theory.IntervalsToNotes(scale.Intervals, root)
			if err != nil {
				return nil, err
			}
			if !containsAllNotes(scaleNotes, notes) {
				continue
			}
			byRoot[root] = append(byRoot[root], scale.Name)
		}
	}

	out := make([]RootScales, 0, len(byRoot))
	for root, scales := range byRoot {
		out = append(out, RootScales{Root: root, Scales: scales})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Root < out[j].Root
	})
	return out, nil
}

// IsPowerChord reports whether c is a power chord according to the
// configured detector.
func (m *Matcher) IsPowerChord(c ChordInstance) bool {
	return m.powerChord.IsPowerChord(c)
}

// ScaleNotes returns the notes of a scale played from key.
func (m *Matcher) ScaleNotes(scale string, key theory.Note) ([]theory.Note, error) {
	s, err := m.scales.Get(scale)
	if err != nil {
		return nil, err
	}
	return theory.IntervalsToNotes(s.Intervals, key)
}

// ChordNotes returns the notes of a chord played from root.
func (m *Matcher) ChordNotes(chord string, root theory.Note) ([]theory.Note, error) {
	c, err := m.chords.Get(chord)
	if err != nil {
		return nil, err
	}
	return theory.IntervalsToNotes(c.Intervals, root)
}

// ScaleChords lists the chords that can be built on every degree of a scale
// using only notes of that scale. Chords with more notes than maxNotes (the
// string count of the instrument) are left out. Results are ordered by scale
// degree first and chord declaration order second.
func (m *Matcher) ScaleChords(scale string, key theory.Note, maxNotes int) ([]ChordInstance, error) {
	scaleNotes, err := m.ScaleNotes(scale, key)
	if err != nil {
		return nil, err
	}

	out := make([]ChordInstance, 0)
	for _, root := range scaleNotes {
		for _, chord := range m.chords.All() {
			if len(chord.Intervals) > maxNotes {
				continue
			}
			chordNotes, err := theory.IntervalsToNotes(chord.Intervals, root)
			if err != nil {
				return nil, err
			}
			if !containsAllNotes(scaleNotes, chordNotes) {
				continue
			}
			out = append(out, ChordInstance{
				Name:  string(root) + " " + chord.Name,
				Root:  root,
				Chord: chord.Name,
				Notes: chordNotes,
			})
		}
	}
	return out, nil
}

func equalIntervals(a, b []theory.Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsAll(set, want []theory.Interval) bool {
	for _, w := range want {
		found := false
		for _, s := range set {
			if s == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsAllNotes(set, want []theory.Note) bool {
	for _, w := range want {
		if !theory.Contains(set, w) {
			return false
		}
	}
	return true
}

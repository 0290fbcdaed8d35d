package matcher

import (
	"sort"

	"github.com/rapidmidiex/rmxfret/theory"
)

// Naming is the result of naming a set of fretted notes.
type Naming struct {
	Found bool        `json:"found"`
	Root  theory.Note `json:"root,omitempty"`
	Chord string      `json:"chord,omitempty"`
	// Display name, ex: "E minor" or "C major/E" for an inversion.
	Name      string            `json:"name,omitempty"`
	Bass      theory.Note       `json:"bass,omitempty"`
	Intervals []theory.Interval `json:"intervals"`
}

// NameChord names the chord formed by notes, lowest string first. Repeated
// notes are dropped. The bass note is tried as the root first; when nothing
// matches, every other note is tried so inversions get named too.
func (m *Matcher) NameChord(notes []theory.Note) (Naming, error) {
	unique := make([]theory.Note, 0, len(notes))
	for _, n := range notes {
		if _, err := theory.IndexOf(n); err != nil {
			return Naming{}, err
		}
		if !theory.Contains(unique, n) {
			unique = append(unique, n)
		}
	}
	if len(unique) == 0 {
		return Naming{Intervals: []theory.Interval{}}, nil
	}

	bass := unique[0]
	var bassIntervals []theory.Interval
	for i := range unique {
		root := unique[i]
		rotated := append([]theory.Note{root}, without(unique, root)...)
		intervals, err := theory.NotesToIntervals(rotated)
		if err != nil {
			return Naming{}, err
		}
		sort.Slice(intervals, func(a, b int) bool { return intervals[a] < intervals[b] })
		if i == 0 {
			bassIntervals = intervals
		}

		chord, ok := m.ChordByIntervals(intervals)
		if !ok {
			continue
		}
		name := string(root) + " " + chord
		if root != bass {
			name += "/" + string(bass)
		}
		return Naming{
			Found:     true,
			Root:      root,
			Chord:     chord,
			Name:      name,
			Bass:      bass,
			Intervals: intervals,
		}, nil
	}
	return Naming{Bass: bass, Intervals: bassIntervals}, nil
}

func without(notes []theory.Note, n theory.Note) []theory.Note {
	out := make([]theory.Note, 0, len(notes))
	for _, m := range notes {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}

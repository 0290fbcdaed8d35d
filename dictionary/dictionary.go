// Package dictionary holds the static chord, scale and tuning catalogs.
//
// Catalogs are read once, either from the definitions embedded in the binary
// or from a user supplied JSON/YAML file, and are never mutated afterwards.
// Declaration order is preserved since matching results follow it.
package dictionary

import (
	"fmt"

	"github.com/rapidmidiex/rmxfret/theory"
)

type (
	// Chord is a root relative chord shape, ex: "minor" = [0 3 7].
	Chord struct {
		Name      string
		Intervals []theory.Interval
	}

	// Scale is a root relative set of intervals, ex: "Blues" = [0 3 5 6 7 10].
	Scale struct {
		Name      string
		Intervals []theory.Interval
	}

	// Chords is an ordered, read-only chord dictionary.
	Chords struct {
		list  []Chord
		index map[string]int
	}

	// Scales is an ordered, read-only scale dictionary.
	Scales struct {
		list  []Scale
		index map[string]int
	}

	// Catalog bundles every dictionary the fretboard needs.
	Catalog struct {
		Chords  *Chords
		Scales  *Scales
		Tunings *Tunings
	}
)

func NewChords(chords []Chord) (*Chords, error) {
	c := &Chords{
		list:  make([]Chord, 0, len(chords)),
		index: make(map[string]int, len(chords)),
	}
	for _, chord := range chords {
		if _, dup := c.index[chord.Name]; dup {
			return nil, fmt.Errorf("chord %q: declared twice", chord.Name)
		}
		if err := validateIntervals(chord.Intervals); err != nil {
			return nil, fmt.Errorf("chord %q: %w", chord.Name, err)
		}
		c.index[chord.Name] = len(c.list)
		c.list = append(c.list, Chord{Name: chord.Name, Intervals: cloneIntervals(chord.Intervals)})
	}
	return c, nil
}

// All returns a copy of every chord in declaration order.
func (c *Chords) All() []Chord {
	out := make([]Chord, len(c.list))
	for i, chord := range c.list {
		out[i] = Chord{Name: chord.Name, Intervals: cloneIntervals(chord.Intervals)}
	}
	return out
}

func (c *Chords) Names() []string {
	names := make([]string, len(c.list))
	for i, chord := range c.list {
		names[i] = chord.Name
	}
	return names
}

func (c *Chords) Len() int { return len(c.list) }

// Get looks a chord up by name.
func (c *Chords) Get(name string) (Chord, error) {
	i, ok := c.index[name]
	if !ok {
		return Chord{}, &theory.InvalidNameError{Kind: "chord", Name: name}
	}
	chord := c.list[i]
	return Chord{Name: chord.Name, Intervals: cloneIntervals(chord.Intervals)}, nil
}

func NewScales(scales []Scale) (*Scales, error) {
	s := &Scales{
		list:  make([]Scale, 0, len(scales)),
		index: make(map[string]int, len(scales)),
	}
	for _, scale := range scales {
		if _, dup := s.index[scale.Name]; dup {
			return nil, fmt.Errorf("scale %q: declared twice", scale.Name)
		}
		if err := validateIntervals(scale.Intervals); err != nil {
			return nil, fmt.Errorf("scale %q: %w", scale.Name, err)
		}
		s.index[scale.Name] = len(s.list)
		s.list = append(s.list, Scale{Name: scale.Name, Intervals: cloneIntervals(scale.Intervals)})
	}
	return s, nil
}

// All returns a copy of every scale in declaration order.
func (s *Scales) All() []Scale {
	out := make([]Scale, len(s.list))
	for i, scale := range s.list {
		out[i] = Scale{Name: scale.Name, Intervals: cloneIntervals(scale.Intervals)}
	}
	return out
}

func (s *Scales) Names() []string {
	names := make([]string, len(s.list))
	for i, scale := range s.list {
		names[i] = scale.Name
	}
	return names
}

func (s *Scales) Len() int { return len(s.list) }

// Get looks a scale up by name.
func (s *Scales) Get(name string) (Scale, error) {
	i, ok := s.index[name]
	if !ok {
		return Scale{}, &theory.InvalidNameError{Kind: "scale", Name: name}
	}
	scale := s.list[i]
	return Scale{Name: scale.Name, Intervals: cloneIntervals(scale.Intervals)}, nil
}

// First returns the first declared scale, the default selection of the UI.
func (s *Scales) First() (Scale, error) {
	if len(s.list) == 0 {
		return Scale{}, &theory.InvalidNameError{Kind: "scale", Name: ""}
	}
	return s.Get(s.list[0].Name)
}

func validateIntervals(intervals []theory.Interval) error {
	if len(intervals) == 0 {
		return fmt.Errorf("no intervals")
	}
	hasRoot := false
	for _, i := range intervals {
		if i < 0 {
			return &theory.InvalidRangeError{Field: "interval", Value: int(i)}
		}
		if i == 0 {
			hasRoot = true
		}
	}
	if !hasRoot {
		return fmt.Errorf("missing root interval 0")
	}
	return nil
}

func cloneIntervals(in []theory.Interval) []theory.Interval {
	out := make([]theory.Interval, len(in))
	copy(out, in)
	return out
}

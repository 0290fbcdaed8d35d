package dictionary

import (
	"fmt"

	"github.com/rapidmidiex/rmxfret/theory"
)

type (
	Instrument string

	// Tuning lists the open string notes of an instrument, top to bottom.
	Tuning struct {
		Name       string        `json:"name"`
		Instrument Instrument    `json:"type"`
		Strings    []theory.Note `json:"strings"`
	}

	// Tunings is the read-only tuning catalog.
	Tunings struct {
		list []Tuning
	}
)

const (
	Guitar  Instrument = "guitar"
	Bass    Instrument = "bass"
	Ukulele Instrument = "ukulele"
)

// Instruments in the order the UI cycles through them.
var Instruments = []Instrument{Guitar, Bass, Ukulele}

// ParseInstrument validates an instrument name.
func ParseInstrument(s string) (Instrument, error) {
	for _, i := range Instruments {
		if string(i) == s {
			return i, nil
		}
	}
	return "", &theory.InvalidNameError{Kind: "instrument", Name: s}
}

// Clone returns a copy that shares no memory with t.
func (t Tuning) Clone() Tuning {
	strings := make([]theory.Note, len(t.Strings))
	copy(strings, t.Strings)
	t.Strings = strings
	return t
}

func NewTunings(tunings []Tuning) (*Tunings, error) {
	ts := &Tunings{list: make([]Tuning, 0, len(tunings))}
	for _, t := range tunings {
		if _, err := ParseInstrument(string(t.Instrument)); err != nil {
			return nil, fmt.Errorf("tuning %q: %w", t.Name, err)
		}
		if len(t.Strings) == 0 {
			return nil, fmt.Errorf("tuning %q: no strings", t.Name)
		}
		for _, n := range t.Strings {
			if !n.Valid() {
				return nil, fmt.Errorf("tuning %q: %w", t.Name, &theory.InvalidNoteError{Note: string(n)})
			}
		}
		ts.list = append(ts.list, t.Clone())
	}
	return ts, nil
}

// All returns a copy of every tuning in declaration order.
func (ts *Tunings) All() []Tuning {
	out := make([]Tuning, len(ts.list))
	for i, t := range ts.list {
		out[i] = t.Clone()
	}
	return out
}

// ForInstrument returns copies of the tunings of an instrument, in declaration order.
func (ts *Tunings) ForInstrument(i Instrument) []Tuning {
	out := make([]Tuning, 0)
	for _, t := range ts.list {
		if t.Instrument == i {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Default returns the first declared tuning of an instrument.
func (ts *Tunings) Default(i Instrument) (Tuning, error) {
	for _, t := range ts.list {
		if t.Instrument == i {
			return t.Clone(), nil
		}
	}
	return Tuning{}, &theory.InvalidNameError{Kind: "instrument", Name: string(i)}
}

// Get looks up a tuning by instrument and name.
func (ts *Tunings) Get(i Instrument, name string) (Tuning, error) {
	for _, t := range ts.list {
		if t.Instrument == i && t.Name == name {
			return t.Clone(), nil
		}
	}
	return Tuning{}, &theory.InvalidNameError{Kind: "tuning", Name: name}
}

// WithStrings returns the first tuning of an instrument with the given
// number of strings.
func (ts *Tunings) WithStrings(i Instrument, amount int) (Tuning, error) {
	for _, t := range ts.list {
		if t.Instrument == i && len(t.Strings) == amount {
			return t.Clone(), nil
		}
	}
	return Tuning{}, &theory.InvalidRangeError{Field: "stringAmount", Value: amount}
}

// StringCounts lists the distinct string amounts available for an
// instrument, in declaration order.
func (ts *Tunings) StringCounts(i Instrument) []int {
	seen := make(map[int]bool)
	counts := make([]int, 0)
	for _, t := range ts.list {
		if t.Instrument != i || seen[len(t.Strings)] {
			continue
		}
		seen[len(t.Strings)] = true
		counts = append(counts, len(t.Strings))
	}
	return counts
}

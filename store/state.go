// Package store holds the fretboard UI state. State is a plain value that is
// never changed in place: every user interaction is an Action, and Reduce
// returns the next State.
package store

import (
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/theory"
)

type (
	AppMode int

	ViewOption string

	State struct {
		AppMode    AppMode               `json:"appMode"`
		Instrument dictionary.Instrument `json:"instrument"`
		Key        theory.Note           `json:"key"`
		Scale      string                `json:"scale"`
		// Open strings, top to bottom. Owned by this State, never shared
		// with the tuning catalog.
		Tuning     dictionary.Tuning `json:"tuning"`
		ViewOption ViewOption        `json:"viewOption"`
		// Fret held down per string, same order as Tuning.Strings.
		// Muted strings are not played.
		Chord        []int `json:"chord"`
		StartFret    int   `json:"startFret"`
		VisibleFrets int   `json:"visibleFrets"`
	}
)

const (
	ScaleMode AppMode = iota // scale visualiser
	ChordMode                // name my chord
)

const (
	ViewFrets ViewOption = "frets"
	ViewNotes ViewOption = "notes"
)

// Muted marks a string that is not played in the chord.
const Muted = -1

// DefaultKey is the key the visualiser starts in.
const DefaultKey theory.Note = "E"

func (m AppMode) String() string {
	switch m {
	case ScaleMode:
		return "scale"
	case ChordMode:
		return "chord"
	default:
		return "unknown"
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Tuning = s.Tuning.Clone()
	s.Chord = cloneInts(s.Chord)
	return s
}

// StringCount is the number of strings of the current tuning.
func (s State) StringCount() int {
	return len(s.Tuning.Strings)
}

func mutedChord(strings int) []int {
	chord := make([]int, strings)
	for i := range chord {
		chord[i] = Muted
	}
	return chord
}

func resizeChord(chord []int, strings int) []int {
	out := mutedChord(strings)
	copy(out, chord)
	return out
}

func cloneInts(in []int) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	copy(out, in)
	return out
}

// Package theory contains the note and interval arithmetic used by the
// fretboard: the 12-tone octave, conversions between intervals and note names,
// and fret windows.
package theory

import "strings"

type (
	// Note is a pitch class name, ex: "C", "F#". Sharps only.
	Note string

	// Interval is a semitone offset from a root note.
	Interval int
)

// NotesInOctave is the number of pitch classes in the chromatic scale.
const NotesInOctave = 12

// DefaultRoot is the root used when a caller has no key selected.
const DefaultRoot Note = "C"

// Octave lists the pitch classes in chromatic order, starting at A.
var Octave = [NotesInOctave]Note{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

var accidentals = map[Note]bool{"A#": true, "C#": true, "D#": true, "F#": true, "G#": true}

// IndexOf returns the position of n within Octave.
func IndexOf(n Note) (int, error) {
	for i, o := range Octave {
		if o == n {
			return i, nil
		}
	}
	return -1, &InvalidNoteError{Note: string(n)}
}

// ParseNote accepts a note name in any case, ex: "c#" or " F ".
func ParseNote(s string) (Note, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", &InvalidNoteError{Note: s}
	}
	n := Note(strings.ToUpper(trimmed[:1]) + trimmed[1:])
	if _, err := IndexOf(n); err != nil {
		return "", &InvalidNoteError{Note: s}
	}
	return n, nil
}

// ParseNotes parses every string with ParseNote, stopping at the first failure.
func ParseNotes(ss []string) ([]Note, error) {
	notes := make([]Note, 0, len(ss))
	for _, s := range ss {
		n, err := ParseNote(s)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Valid reports whether n is one of the 12 known pitch classes.
func (n Note) Valid() bool {
	_, err := IndexOf(n)
	return err == nil
}

// IsAccidental reports whether n is a sharp, ie. a "black" key.
func (n Note) IsAccidental() bool {
	return accidentals[n]
}

func (n Note) String() string {
	return string(n)
}

// Transpose moves n by the given number of semitones, wrapping around the octave.
func Transpose(n Note, semitones int) (Note, error) {
	i, err := IndexOf(n)
	if err != nil {
		return "", err
	}
	return Octave[wrap(i+semitones)], nil
}

// Contains reports whether n is among notes.
func Contains(notes []Note, n Note) bool {
	for _, m := range notes {
		if m == n {
			return true
		}
	}
	return false
}

// Strings converts notes to their plain names.
func Strings(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = string(n)
	}
	return out
}

func wrap(i int) int {
	i %= NotesInOctave
	if i < 0 {
		i += NotesInOctave
	}
	return i
}

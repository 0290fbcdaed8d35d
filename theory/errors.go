package theory

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNote  = errors.New("invalid note")
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidRange = errors.New("invalid range")
)

type (
	// InvalidNoteError is returned for anything outside the 12 known pitch classes.
	InvalidNoteError struct {
		Note string
	}

	// InvalidNameError is returned when a chord, scale, tuning or instrument
	// is not in its dictionary.
	InvalidNameError struct {
		// "chord" | "scale" | "tuning" | "instrument" | ...
		Kind string
		Name string
	}

	// InvalidRangeError is returned for frets outside 0..MaxFret and out of
	// bound string indexes.
	InvalidRangeError struct {
		Field string
		Value int
	}
)

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note: %q", e.Note)
}

func (e *InvalidNoteError) Is(target error) bool { return target == ErrInvalidNote }

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}

func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %d", e.Field, e.Value)
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// IsUserError reports whether err is caused by bad input rather than a fault.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidNote) || errors.Is(err, ErrInvalidName) || errors.Is(err, ErrInvalidRange)
}

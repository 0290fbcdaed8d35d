package store

import (
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/theory"
)

// Action describes one user interaction. See Store.Reduce.
type Action interface {
	isAction()
}

type (
	SetAppMode struct{ Mode AppMode }

	// SetInstrument switches instrument family. Switching to another
	// instrument resets the tuning to its default and clears the chord.
	SetInstrument struct{ Instrument dictionary.Instrument }

	SetKey struct{ Key theory.Note }

	SetScale struct{ Scale string }

	// SetTuning picks a named tuning of the current instrument.
	SetTuning struct{ Name string }

	// TuneString retunes a single open string.
	TuneString struct {
		Index int
		Note  theory.Note
	}

	// SetStringAmount picks the first tuning of the current instrument with
	// the given number of strings.
	SetStringAmount struct{ Amount int }

	SetViewOption struct{ View ViewOption }

	// SetChordFret holds a string down at a fret for chord naming. Use
	// Muted to stop playing the string.
	SetChordFret struct {
		Index int
		Fret  int
	}

	ClearChord struct{}

	SetStartFret struct{ Fret int }

	SetVisibleFrets struct{ Frets int }
)

func (SetAppMode) isAction()      {}
func (SetInstrument) isAction()   {}
func (SetKey) isAction()          {}
func (SetScale) isAction()        {}
func (SetTuning) isAction()       {}
func (TuneString) isAction()      {}
func (SetStringAmount) isAction() {}
func (SetViewOption) isAction()   {}
func (SetChordFret) isAction()    {}
func (ClearChord) isAction()      {}
func (SetStartFret) isAction()    {}
func (SetVisibleFrets) isAction() {}

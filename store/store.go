package store

import (
	"fmt"

	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/theory"
)

// Store reduces actions against a fixed catalog. It keeps no State of its
// own, callers own the State values it returns.
type Store struct {
	catalog *dictionary.Catalog
	matcher *matcher.Matcher
}

// Snapshot is a State together with everything derived from it.
type Snapshot struct {
	State        State                   `json:"state"`
	StringCounts []int                   `json:"stringCounts"`
	Frets        []int                   `json:"frets"`
	ScaleNotes   []theory.Note           `json:"scaleNotes"`
	ScaleChords  []matcher.ChordInstance `json:"scaleChords"`
	ChordNotes   []theory.Note           `json:"chordNotes"`
	Naming       matcher.Naming          `json:"naming"`
}

func New(catalog *dictionary.Catalog, m *matcher.Matcher) *Store {
	return &Store{catalog: catalog, matcher: m}
}

func (s *Store) Catalog() *dictionary.Catalog { return s.catalog }

func (s *Store) Matcher() *matcher.Matcher { return s.matcher }

// Initial returns the state the UI starts with: the scale visualiser for a
// standard six string guitar in E, using the first declared scale.
func (s *Store) Initial() (State, error) {
	tuning, err := s.catalog.Tunings.Default(dictionary.Guitar)
	if err != nil {
		return State{}, err
	}
	scale, err := s.catalog.Scales.First()
	if err != nil {
		return State{}, err
	}
	return State{
		AppMode:      ScaleMode,
		Instrument:   dictionary.Guitar,
		Key:          DefaultKey,
		Scale:        scale.Name,
		Tuning:       tuning,
		ViewOption:   ViewFrets,
		Chord:        mutedChord(len(tuning.Strings)),
		StartFret:    theory.DefaultStartFret,
		VisibleFrets: theory.DefaultVisibleFrets,
	}, nil
}

// Reduce applies a to st and returns the resulting state. st itself is never
// modified and the result shares no slices with it. When the action is
// invalid the error is returned together with st unchanged.
func (s *Store) Reduce(st State, a Action) (State, error) {
	next := st.Clone()

	switch a := a.(type) {
	case SetAppMode:
		if a.Mode != ScaleMode && a.Mode != ChordMode {
			return st, &theory.InvalidNameError{Kind: "app mode", Name: a.Mode.String()}
		}
		next.AppMode = a.Mode

	case SetInstrument:
		if _, err := dictionary.ParseInstrument(string(a.Instrument)); err != nil {
			return st, err
		}
		if a.Instrument == st.Instrument {
			return next, nil
		}
		tuning, err := s.catalog.Tunings.Default(a.Instrument)
		if err != nil {
			return st, err
		}
		next.Instrument = a.Instrument
		next.Tuning = tuning
		next.Chord = mutedChord(len(tuning.Strings))

	case SetKey:
		if !a.Key.Valid() {
			return st, &theory.InvalidNoteError{Note: string(a.Key)}
		}
		next.Key = a.Key

	case SetScale:
		if _, err := s.catalog.Scales.Get(a.Scale); err != nil {
			return st, err
		}
		next.Scale = a.Scale

	case SetTuning:
		tuning, err := s.catalog.Tunings.Get(st.Instrument, a.Name)
		if err != nil {
			return st, err
		}
		next.Tuning = tuning
		next.Chord = resizeChord(next.Chord, len(tuning.Strings))

	case TuneString:
		if a.Index < 0 || a.Index >= st.StringCount() {
			return st, &theory.InvalidRangeError{Field: "string", Value: a.Index}
		}
		if !a.Note.Valid() {
			return st, &theory.InvalidNoteError{Note: string(a.Note)}
		}
		next.Tuning.Strings[a.Index] = a.Note

	case SetStringAmount:
		tuning, err := s.catalog.Tunings.WithStrings(st.Instrument, a.Amount)
		if err != nil {
			return st, err
		}
		next.Tuning = tuning
		next.Chord = resizeChord(next.Chord, len(tuning.Strings))

	case SetViewOption:
		if a.View != ViewFrets && a.View != ViewNotes {
			return st, &theory.InvalidNameError{Kind: "view option", Name: string(a.View)}
		}
		next.ViewOption = a.View

	case SetChordFret:
		if a.Index < 0 || a.Index >= st.StringCount() {
			return st, &theory.InvalidRangeError{Field: "string", Value: a.Index}
		}
		if a.Fret < Muted {
			return st, &theory.InvalidRangeError{Field: "fret", Value: a.Fret}
		}
		next.Chord = resizeChord(next.Chord, st.StringCount())
		next.Chord[a.Index] = a.Fret

	case ClearChord:
		next.Chord = mutedChord(st.StringCount())

	case SetStartFret:
		if _, err := theory.FretRange(a.Fret, st.VisibleFrets); err != nil {
			return st, err
		}
		next.StartFret = a.Fret

	case SetVisibleFrets:
		if _, err := theory.FretRange(st.StartFret, a.Frets); err != nil {
			return st, err
		}
		next.VisibleFrets = a.Frets

	default:
		return st, fmt.Errorf("unknown action: %T", a)
	}

	return next, nil
}

// StringCounts lists the string amounts the current instrument comes in.
func (s *Store) StringCounts(st State) []int {
	return s.catalog.Tunings.StringCounts(st.Instrument)
}

// Frets lists the frets visible on the fretboard.
func (s *Store) Frets(st State) ([]int, error) {
	return theory.FretRange(st.StartFret, st.VisibleFrets)
}

// ScaleNotes returns the notes of the selected scale in the selected key.
func (s *Store) ScaleNotes(st State) ([]theory.Note, error) {
	return s.matcher.ScaleNotes(st.Scale, st.Key)
}

// ScaleChords lists the chords playable within the selected scale and key,
// limited to chords with no more notes than the instrument has strings.
func (s *Store) ScaleChords(st State) ([]matcher.ChordInstance, error) {
	return s.matcher.ScaleChords(st.Scale, st.Key, st.StringCount())
}

// NoteAt returns the note sounding on a string at a fret.
func (s *Store) NoteAt(st State, stringIndex, fret int) (theory.Note, error) {
	if stringIndex < 0 || stringIndex >= st.StringCount() {
		return "", &theory.InvalidRangeError{Field: "string", Value: stringIndex}
	}
	return theory.Transpose(st.Tuning.Strings[stringIndex], fret)
}

// ChordNotes returns the notes of the fretted chord from the lowest string
// up. Muted strings are skipped.
func (s *Store) ChordNotes(st State) ([]theory.Note, error) {
	notes := make([]theory.Note, 0, len(st.Chord))
	for i := len(st.Chord) - 1; i >= 0; i-- {
		if st.Chord[i] == Muted || i >= st.StringCount() {
			continue
		}
		n, err := s.NoteAt(st, i, st.Chord[i])
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// NameChord names the fretted chord.
func (s *Store) NameChord(st State) (matcher.Naming, error) {
	notes, err := s.ChordNotes(st)
	if err != nil {
		return matcher.Naming{}, err
	}
	return s.matcher.NameChord(notes)
}

// ChordScales lists the keys and scales that contain the fretted chord.
func (s *Store) ChordScales(st State) ([]matcher.RootScales, error) {
	notes, err := s.ChordNotes(st)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return []matcher.RootScales{}, nil
	}
	return s.matcher.CompatibleScalesForNotes(notes, nil)
}

// Snapshot derives everything the UI shows for st.
func (s *Store) Snapshot(st State) (Snapshot, error) {
	snap := Snapshot{
		State:        st.Clone(),
		StringCounts: s.StringCounts(st),
	}
	var err error
	if snap.Frets, err = s.Frets(st); err != nil {
		return Snapshot{}, err
	}
	if snap.ScaleNotes, err = s.ScaleNotes(st); err != nil {
		return Snapshot{}, err
	}
	if snap.ScaleChords, err = s.ScaleChords(st); err != nil {
		return Snapshot{}, err
	}
	if snap.ChordNotes, err = s.ChordNotes(st); err != nil {
		return Snapshot{}, err
	}
	if snap.Naming, err = s.NameChord(st); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

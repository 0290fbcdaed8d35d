// Package wsmsg contains the message types exchanged with fretboard clients
// over the websocket session.
package wsmsg

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/theory"
)

type (
	MsgType int

	Envelope struct {
		// Message identifier
		ID uuid.UUID `json:"id"`
		// ActionMsg | store.Snapshot | ErrorMsg
		Typ MsgType `json:"type"`
		// ID of the message this one answers, if any.
		ReplyTo uuid.UUID `json:"replyTo"`
		// Actual message data.
		Payload json.RawMessage `json:"payload"`
	}

	// ActionMsg is the wire form of a store.Action.
	ActionMsg struct {
		// setAppMode | setInstrument | setKey | setScale | setTuning |
		// tuneString | setStringAmount | setViewOption | setChordFret |
		// clearChord | setStartFret | setVisibleFrets
		Name string `json:"name"`
		// Mode, instrument, note, scale, tuning or view, depending on Name.
		Value string `json:"value,omitempty"`
		// String index for tuneString and setChordFret.
		Index int `json:"index,omitempty"`
		// Fret, string amount or visible frets, depending on Name.
		Number int `json:"number,omitempty"`
	}

	ErrorMsg struct {
		Detail string `json:"detail"`
	}
)

const (
	ACTION MsgType = iota
	STATE
	ERROR
)

// New wraps payload in an envelope with a fresh ID.
func New(typ MsgType, payload any) (Envelope, error) {
	e := Envelope{ID: uuid.New(), Typ: typ}
	err := e.SetPayload(payload)
	return e, err
}

func (e *Envelope) SetPayload(payload any) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	e.Payload = p
	return nil
}

func (e *Envelope) Unwrap(msg any) error {
	return json.Unmarshal(e.Payload, msg)
}

func (t *MsgType) UnmarshalJSON(data []byte) error {
	var rawType string
	err := json.Unmarshal(data, &rawType)
	if err != nil {
		return err
	}

	switch rawType {
	case "action":
		*t = ACTION
	case "state":
		*t = STATE
	case "error":
		*t = ERROR
	default:
		return fmt.Errorf("unknown type: %s", rawType)
	}
	return nil
}

func (t MsgType) MarshalJSON() ([]byte, error) {
	switch t {
	case ACTION:
		return []byte(`"action"`), nil
	case STATE:
		return []byte(`"state"`), nil
	case ERROR:
		return []byte(`"error"`), nil
	}
	return []byte{}, fmt.Errorf("unknown MsgTyp value: %d", t)
}

// ToAction converts the message into the store action it names.
func (a ActionMsg) ToAction() (store.Action, error) {
	switch a.Name {
	case "setAppMode":
		switch a.Value {
		case store.ScaleMode.String():
			return store.SetAppMode{Mode: store.ScaleMode}, nil
		case store.ChordMode.String():
			return store.SetAppMode{Mode: store.ChordMode}, nil
		}
		return nil, &theory.InvalidNameError{Kind: "app mode", Name: a.Value}
	case "setInstrument":
		return store.SetInstrument{Instrument: dictionary.Instrument(a.Value)}, nil
	case "setKey":
		key, err := theory.ParseNote(a.Value)
		if err != nil {
			return nil, err
		}
		return store.SetKey{Key: key}, nil
	case "setScale":
		return store.SetScale{Scale: a.Value}, nil
	case "setTuning":
		return store.SetTuning{Name: a.Value}, nil
	case "tuneString":
		note, err := theory.ParseNote(a.Value)
		if err != nil {
			return nil, err
		}
		return store.TuneString{Index: a.Index, Note: note}, nil
	case "setStringAmount":
		return store.SetStringAmount{Amount: a.Number}, nil
	case "setViewOption":
		return store.SetViewOption{View: store.ViewOption(a.Value)}, nil
	case "setChordFret":
		return store.SetChordFret{Index: a.Index, Fret: a.Number}, nil
	case "clearChord":
		return store.ClearChord{}, nil
	case "setStartFret":
		return store.SetStartFret{Fret: a.Number}, nil
	case "setVisibleFrets":
		return store.SetVisibleFrets{Frets: a.Number}, nil
	}
	return nil, &theory.InvalidNameError{Kind: "action", Name: a.Name}
}

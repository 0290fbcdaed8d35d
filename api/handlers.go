package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/theory"
)

type (
	ErrorResponse struct {
		Error string `json:"detail"`
	}

	IntervalsRequest struct {
		Intervals []int `json:"intervals"`
		// Defaults to C.
		Root string `json:"root"`
	}

	NotesRequest struct {
		Notes []string `json:"notes"`
		// Root to leave out when looking for compatible scales.
		Exclude string `json:"exclude,omitempty"`
	}

	PowerChordRequest struct {
		Name  string   `json:"name"`
		Notes []string `json:"notes"`
	}

	NotesResponse struct {
		Notes []theory.Note `json:"notes"`
	}

	IntervalsResponse struct {
		Intervals []int `json:"intervals"`
	}

	FretsResponse struct {
		Frets []int `json:"frets"`
	}

	LookupResponse struct {
		Name  string `json:"name"`
		Found bool   `json:"found"`
	}

	ScalesResponse struct {
		Scales []string `json:"scales"`
	}

	PowerChordResponse struct {
		Power bool `json:"power"`
	}

	ChordDef struct {
		Name      string `json:"name"`
		Intervals []int  `json:"intervals"`
	}

	ScaleDef struct {
		Name      string `json:"name"`
		Intervals []int  `json:"intervals"`
	}
)

var errBadRequest = errors.New("bad request")

func (s *Server) handleOctave(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, NotesResponse{Notes: theory.Octave[:]})
}

func (s *Server) handleIntervalsToNotes(w http.ResponseWriter, r *http.Request) {
	var req IntervalsRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	root := theory.DefaultRoot
	if req.Root != "" {
		var err error
		if root, err = theory.ParseNote(req.Root); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	notes, err := theory.IntervalsToNotes(theory.FromInts(req.Intervals), root)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, NotesResponse{Notes: notes})
}

func (s *Server) handleNotesToIntervals(w http.ResponseWriter, r *http.Request) {
	notes, _, err := decodeNotes(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	intervals, err := theory.NotesToIntervals(notes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, IntervalsResponse{Intervals: theory.Ints(intervals)})
}

func (s *Server) handleFretRange(w http.ResponseWriter, r *http.Request) {
	start, err := intParam(r, "start", theory.DefaultStartFret)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	visible, err := intParam(r, "visible", theory.DefaultVisibleFrets)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	frets, err := theory.FretRange(start, visible)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, FretsResponse{Frets: frets})
}

func (s *Server) handleChords(w http.ResponseWriter, r *http.Request) {
	chords := s.store.Catalog().Chords.All()
	res := make([]ChordDef, 0, len(chords))
	for _, c := range chords {
		res = append(res, ChordDef{Name: c.Name, Intervals: theory.Ints(c.Intervals)})
	}
	s.respond(w, r, res)
}

func (s *Server) handleScales(w http.ResponseWriter, r *http.Request) {
	scales := s.store.Catalog().Scales.All()
	res := make([]ScaleDef, 0, len(scales))
	for _, sc := range scales {
		res = append(res, ScaleDef{Name: sc.Name, Intervals: theory.Ints(sc.Intervals)})
	}
	s.respond(w, r, res)
}

func (s *Server) handleTunings(w http.ResponseWriter, r *http.Request) {
	tunings := s.store.Catalog().Tunings
	if name := r.URL.Query().Get("instrument"); name != "" {
		instrument, err := dictionary.ParseInstrument(name)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.respond(w, r, tunings.ForInstrument(instrument))
		return
	}
	s.respond(w, r, tunings.All())
}

func (s *Server) handleChordLookup(w http.ResponseWriter, r *http.Request) {
	var req IntervalsRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	name, found := s.store.Matcher().ChordByIntervals(theory.FromInts(req.Intervals))
	s.respond(w, r, LookupResponse{Name: name, Found: found})
}

func (s *Server) handleNameChord(w http.ResponseWriter, r *http.Request) {
	notes, _, err := decodeNotes(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	naming, err := s.store.Matcher().NameChord(notes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, naming)
}

func (s *Server) handlePowerChord(w http.ResponseWriter, r *http.Request) {
	var req PowerChordRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	notes, err := theory.ParseNotes(req.Notes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	c := matcher.ChordInstance{Name: req.Name, Notes: notes}
	s.respond(w, r, PowerChordResponse{Power: s.store.Matcher().IsPowerChord(c)})
}

func (s *Server) handleScalesForIntervals(w http.ResponseWriter, r *http.Request) {
	var req IntervalsRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	scales := s.store.Matcher().CompatibleScalesForIntervals(theory.FromInts(req.Intervals))
	s.respond(w, r, ScalesResponse{Scales: scales})
}

func (s *Server) handleScalesForNotes(w http.ResponseWriter, r *http.Request) {
	notes, exclude, err := decodeNotes(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.store.Matcher().CompatibleScalesForNotes(notes, exclude)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, res)
}

func (s *Server) handleScaleChords(w http.ResponseWriter, r *http.Request) {
	scale := mux.Vars(r)["scale"]
	key, err := theory.ParseNote(queryDefault(r, "key", string(theory.DefaultRoot)))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	strings, err := intParam(r, "strings", 6)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	chords, err := s.store.Matcher().ScaleChords(scale, key, strings)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, chords)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encode response", "error", err, "request_id", requestIDFrom(r.Context()))
	}
}

// fail maps input errors to 400 and everything else to 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if theory.IsUserError(err) || errors.Is(err, errBadRequest) {
		status = http.StatusBadRequest
	} else {
		s.log.Error("request failed", "error", err, "request_id", requestIDFrom(r.Context()))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %v", errBadRequest, err)
	}
	return nil
}

func decodeNotes(r *http.Request) ([]theory.Note, *theory.Note, error) {
	var req NotesRequest
	if err := decode(r, &req); err != nil {
		return nil, nil, err
	}
	notes, err := theory.ParseNotes(req.Notes)
	if err != nil {
		return nil, nil, err
	}
	if req.Exclude == "" {
		return notes, nil, nil
	}
	exclude, err := theory.ParseNote(req.Exclude)
	if err != nil {
		return nil, nil, err
	}
	return notes, &exclude, nil
}

func queryDefault(r *http.Request, name, fallback string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return fallback
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errBadRequest, name, err)
	}
	return v, nil
}

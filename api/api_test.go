package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rapidmidiex/rmxfret/api"
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/theory"
	"github.com/rapidmidiex/rmxfret/wsmsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	cat, err := dictionary.Default()
	require.NoError(t, err)
	s := store.New(cat, matcher.New(cat.Chords, cat.Scales))
	return api.New(s, api.Options{}).Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestIntervalEndpoints(t *testing.T) {
	h := newHandler(t)
	assert := assert.New(t)

	resp := do(t, h, http.MethodPost, "/api/v1/intervals/notes", api.IntervalsRequest{Intervals: []int{0, 2, 3, 5, 7, 8, 10}})
	assert.Equal(200, resp.StatusCode)
	assert.Equal([]theory.Note{"C", "D", "D#", "F", "G", "G#", "A#"}, decodeBody[api.NotesResponse](t, resp).Notes)
	_, err := uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(err)

	resp = do(t, h, http.MethodPost, "/api/v1/intervals/notes", api.IntervalsRequest{Intervals: []int{0, 2, 4}, Root: "e"})
	assert.Equal([]theory.Note{"E", "F#", "G#"}, decodeBody[api.NotesResponse](t, resp).Notes)

	resp = do(t, h, http.MethodPost, "/api/v1/notes/intervals", api.NotesRequest{Notes: []string{"E", "F#", "G#", "A", "B", "C#", "D#"}})
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, decodeBody[api.IntervalsResponse](t, resp).Intervals)

	resp = do(t, h, http.MethodGet, "/api/v1/frets", nil)
	assert.Equal([]int{0, 1, 2, 3, 4}, decodeBody[api.FretsResponse](t, resp).Frets)

	resp = do(t, h, http.MethodGet, "/api/v1/notes", nil)
	assert.Len(decodeBody[api.NotesResponse](t, resp).Notes, 12)
}

func TestChordAndScaleEndpoints(t *testing.T) {
	h := newHandler(t)
	assert := assert.New(t)

	resp := do(t, h, http.MethodPost, "/api/v1/chords/lookup", api.IntervalsRequest{Intervals: []int{0, 4, 7}})
	assert.Equal(api.LookupResponse{Name: "major", Found: true}, decodeBody[api.LookupResponse](t, resp))

	resp = do(t, h, http.MethodPost, "/api/v1/chords/lookup", api.IntervalsRequest{Intervals: []int{0, 1}})
	assert.Equal(200, resp.StatusCode)
	assert.False(decodeBody[api.LookupResponse](t, resp).Found)

	resp = do(t, h, http.MethodPost, "/api/v1/scales/intervals", api.IntervalsRequest{Intervals: []int{12, 4}})
	withOctave := decodeBody[api.ScalesResponse](t, resp)
	resp = do(t, h, http.MethodPost, "/api/v1/scales/intervals", api.IntervalsRequest{Intervals: []int{0, 4}})
	assert.Equal(decodeBody[api.ScalesResponse](t, resp), withOctave)

	resp = do(t, h, http.MethodPost, "/api/v1/scales/notes", api.NotesRequest{Notes: []string{"C", "E", "G"}, Exclude: "C"})
	roots := decodeBody[[]matcher.RootScales](t, resp)
	assert.NotEmpty(roots)
	for _, rs := range roots {
		assert.NotEqual(theory.Note("C"), rs.Root)
	}

	resp = do(t, h, http.MethodPost, "/api/v1/chords/power", api.PowerChordRequest{Name: "A5", Notes: []string{"A", "E"}})
	assert.True(decodeBody[api.PowerChordResponse](t, resp).Power)

	resp = do(t, h, http.MethodPost, "/api/v1/chords/name", api.NotesRequest{Notes: []string{"E", "G", "C"}})
	assert.Equal("C major/E", decodeBody[matcher.Naming](t, resp).Name)

	resp = do(t, h, http.MethodGet, "/api/v1/scales/Blues/chords?key=A&strings=4", nil)
	assert.Equal(200, resp.StatusCode)
	for _, c := range decodeBody[[]matcher.ChordInstance](t, resp) {
		assert.LessOrEqual(len(c.Notes), 4)
	}

	resp = do(t, h, http.MethodGet, "/api/v1/tunings?instrument=ukulele", nil)
	tunings := decodeBody[[]dictionary.Tuning](t, resp)
	assert.Len(tunings, 1)
}

func TestErrors(t *testing.T) {
	h := newHandler(t)
	assert := assert.New(t)

	cases := []struct {
		method, target string
		body           any
	}{
		{http.MethodPost, "/api/v1/intervals/notes", api.IntervalsRequest{Intervals: []int{0}, Root: "Bb"}},
		{http.MethodPost, "/api/v1/notes/intervals", api.NotesRequest{Notes: []string{"C", "H"}}},
		{http.MethodGet, "/api/v1/frets?start=-1", nil},
		{http.MethodGet, "/api/v1/frets?visible=many", nil},
		{http.MethodGet, "/api/v1/frets?visible=9223372036854775807", nil},
		{http.MethodGet, "/api/v1/frets?start=9223372036854775807&visible=1", nil},
		{http.MethodGet, "/api/v1/scales/Mystery/chords", nil},
		{http.MethodGet, "/api/v1/tunings?instrument=banjo", nil},
	}
	for _, c := range cases {
		resp := do(t, h, c.method, c.target, c.body)
		assert.Equal(http.StatusBadRequest, resp.StatusCode, c.target)
		assert.NotEmpty(decodeBody[api.ErrorResponse](t, resp).Error, c.target)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chords/lookup", strings.NewReader("{"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestSession(t *testing.T) {
	srv := httptest.NewServer(newHandler(t))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	readSnapshot := func() (wsmsg.Envelope, store.Snapshot) {
		var env wsmsg.Envelope
		require.NoError(t, conn.ReadJSON(&env))
		var snap store.Snapshot
		if env.Typ == wsmsg.STATE {
			require.NoError(t, env.Unwrap(&snap))
		}
		return env, snap
	}

	t.Run("starts with the initial state", func(t *testing.T) {
		env, snap := readSnapshot()
		require.Equal(t, wsmsg.STATE, env.Typ)
		require.Equal(t, theory.Note("E"), snap.State.Key)
	})

	t.Run("applies actions", func(t *testing.T) {
		msg, err := wsmsg.New(wsmsg.ACTION, wsmsg.ActionMsg{Name: "setKey", Value: "A"})
		require.NoError(t, err)
		require.NoError(t, conn.WriteJSON(msg))

		env, snap := readSnapshot()
		require.Equal(t, wsmsg.STATE, env.Typ)
		require.Equal(t, msg.ID, env.ReplyTo)
		require.Equal(t, theory.Note("A"), snap.State.Key)
		require.Equal(t, theory.Note("A"), snap.ScaleNotes[0])
	})

	t.Run("answers invalid actions with an error", func(t *testing.T) {
		msg, err := wsmsg.New(wsmsg.ACTION, wsmsg.ActionMsg{Name: "setScale", Value: "Mystery"})
		require.NoError(t, err)
		require.NoError(t, conn.WriteJSON(msg))

		env, _ := readSnapshot()
		require.Equal(t, wsmsg.ERROR, env.Typ)
		var e wsmsg.ErrorMsg
		require.NoError(t, env.Unwrap(&e))
		require.Contains(t, e.Detail, "Mystery")
	})

	t.Run("keeps the state after an error", func(t *testing.T) {
		msg, err := wsmsg.New(wsmsg.ACTION, wsmsg.ActionMsg{Name: "setInstrument", Value: "bass"})
		require.NoError(t, err)
		require.NoError(t, conn.WriteJSON(msg))

		_, snap := readSnapshot()
		require.Equal(t, theory.Note("A"), snap.State.Key)
		require.Equal(t, dictionary.Bass, snap.State.Instrument)
		require.Len(t, snap.State.Chord, 4)
	})
}

func TestSessionRejectsOversizedMessages(t *testing.T) {
	srv := httptest.NewServer(newHandler(t))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var env wsmsg.Envelope
	require.NoError(t, conn.ReadJSON(&env))
	require.Equal(t, wsmsg.STATE, env.Typ)

	msg, err := wsmsg.New(wsmsg.ACTION, wsmsg.ActionMsg{Name: "setKey", Value: strings.Repeat("A", 8<<10)})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))

	_, _, err = conn.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseMessageTooBig), "got %v", err)
}

// Package api serves the chord and scale queries over HTTP, plus a
// websocket session that drives a fretboard State.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rs/cors"
)

const requestIDHeader = "X-Request-ID"

type (
	Server struct {
		store    *store.Store
		log      *slog.Logger
		origins  []string
		upgrader websocket.Upgrader
	}

	Options struct {
		// Allowed CORS origins. Empty allows every origin.
		Origins []string
		Logger  *slog.Logger
	}

	requestIDKey struct{}
)

func New(s *store.Store, o Options) *Server {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{
		store:   s,
		log:     logger.With("component", "api"),
		origins: o.Origins,
	}
	srv.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     srv.checkOrigin,
	}
	return srv
}

// Handler returns the router with CORS and request ID middleware applied.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestID)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/notes", s.handleOctave).Methods(http.MethodGet)
	v1.HandleFunc("/notes/intervals", s.handleNotesToIntervals).Methods(http.MethodPost)
	v1.HandleFunc("/intervals/notes", s.handleIntervalsToNotes).Methods(http.MethodPost)
	v1.HandleFunc("/frets", s.handleFretRange).Methods(http.MethodGet)
	v1.HandleFunc("/chords", s.handleChords).Methods(http.MethodGet)
	v1.HandleFunc("/chords/lookup", s.handleChordLookup).Methods(http.MethodPost)
	v1.HandleFunc("/chords/name", s.handleNameChord).Methods(http.MethodPost)
	v1.HandleFunc("/chords/power", s.handlePowerChord).Methods(http.MethodPost)
	v1.HandleFunc("/scales", s.handleScales).Methods(http.MethodGet)
	v1.HandleFunc("/scales/intervals", s.handleScalesForIntervals).Methods(http.MethodPost)
	v1.HandleFunc("/scales/notes", s.handleScalesForNotes).Methods(http.MethodPost)
	v1.HandleFunc("/scales/{scale}/chords", s.handleScaleChords).Methods(http.MethodGet)
	v1.HandleFunc("/tunings", s.handleTunings).Methods(http.MethodGet)
	v1.HandleFunc("/ws", s.handleSession)

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(router)
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) allowedOrigins() []string {
	if len(s.origins) == 0 {
		return []string{"*"}
	}
	return s.origins
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.origins) == 0 {
		return true
	}
	for _, o := range s.origins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", id,
			"duration", time.Since(start))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/wsmsg"
)

// maxMessageSize bounds a single client frame. Actions are a few hundred bytes.
const maxMessageSize = 4096

// handleSession upgrades to a websocket that owns one fretboard State. Every
// action the client sends is reduced and answered with a full snapshot, or
// with an error message leaving the state as it was.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	log := s.log.With("request_id", requestIDFrom(r.Context()))
	log.Info("session started")

	st, err := s.store.Initial()
	if err != nil {
		log.Error("initial state", "error", err)
		return
	}
	if err := s.sendState(conn, st, wsmsg.Envelope{}); err != nil {
		log.Error("send state", "error", err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if errors.Is(err, websocket.ErrReadLimit) {
				log.Warn("read: message too large", "limit", maxMessageSize)
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("read: unexpected close", "error", err)
			}
			log.Info("session ended")
			return
		}

		var message wsmsg.Envelope
		if err := json.Unmarshal(data, &message); err != nil {
			if err := s.sendError(conn, fmt.Errorf("%w: unmarshal Envelope: %v", errBadRequest, err), message); err != nil {
				log.Error("send error", "error", err)
				return
			}
			continue
		}

		next, err := s.apply(st, message)
		if err != nil {
			if err := s.sendError(conn, err, message); err != nil {
				log.Error("send error", "error", err)
				return
			}
			continue
		}
		st = next
		if err := s.sendState(conn, st, message); err != nil {
			log.Error("send state", "error", err)
			return
		}
	}
}

func (s *Server) apply(st store.State, message wsmsg.Envelope) (store.State, error) {
	if message.Typ != wsmsg.ACTION {
		return st, fmt.Errorf("%w: expected an action message", errBadRequest)
	}
	var actionMsg wsmsg.ActionMsg
	if err := message.Unwrap(&actionMsg); err != nil {
		return st, fmt.Errorf("%w: unmarshal ActionMsg: %v", errBadRequest, err)
	}
	action, err := actionMsg.ToAction()
	if err != nil {
		return st, err
	}
	return s.store.Reduce(st, action)
}

func (s *Server) sendState(conn *websocket.Conn, st store.State, replyTo wsmsg.Envelope) error {
	snap, err := s.store.Snapshot(st)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	envelope, err := wsmsg.New(wsmsg.STATE, snap)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	envelope.ReplyTo = replyTo.ID
	return conn.WriteJSON(envelope)
}

func (s *Server) sendError(conn *websocket.Conn, cause error, replyTo wsmsg.Envelope) error {
	envelope, err := wsmsg.New(wsmsg.ERROR, wsmsg.ErrorMsg{Detail: cause.Error()})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	envelope.ReplyTo = replyTo.ID
	return conn.WriteJSON(envelope)
}

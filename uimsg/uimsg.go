// Package uimsg holds the bubbletea messages the fretboard views exchange
// with the root model, which owns the State.
package uimsg

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxfret/store"
)

type (
	// ActionMsg asks the root model to reduce an action.
	ActionMsg struct {
		Action store.Action
	}

	// ResizedMsg carries the settled terminal width after a resize.
	ResizedMsg struct {
		Width int
	}
)

// Dispatch returns a command emitting an ActionMsg.
func Dispatch(a store.Action) tea.Cmd {
	return func() tea.Msg {
		return ActionMsg{Action: a}
	}
}

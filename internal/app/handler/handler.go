// Package handler provides the result type and chain used to dispatch a key
// action to the focused screen, then playback, then global handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/keymap"
)

// Result is the outcome of one handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the action on to the next handler.
var NotHandled = Result{}

// HandledNoCmd stops the chain without a command.
var HandledNoCmd = Result{Handled: true}

// Handled stops the chain with cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle an action.
type Handler func(a keymap.Action) Result

// Chain runs handlers in order until one handles a.
func Chain(a keymap.Action, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(a); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}

// Package list provides a generic scrollable list driven by keymap actions.
package list

import (
	"strings"

	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/cursor"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// Action reports what a handled key asked for.
type Action int

const (
	ActionNone     Action = iota
	ActionMoved           // cursor moved
	ActionActivate        // enter on an item
	ActionDelete          // d/delete on an item
	ActionRemove          // x on an item
)

// Result is returned from HandleAction.
type Result struct {
	Action Action
	Index  int // item the action applies to, -1 if none
}

// RenderFunc renders one item on a line of the given width.
type RenderFunc[T any] func(item T, selected bool, width int) string

// Model is a scrollable list of items. It owns the cursor; the parent
// supplies a RenderFunc and reacts to the Result of each action.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
	render RenderFunc[T]
	empty  string
}

// New creates an empty list. empty is shown when there are no items.
func New[T any](fn RenderFunc[T], empty string) Model[T] {
	return Model[T]{cursor: cursor.New(ui.ScrollMargin), render: fn, empty: empty}
}

// SetItems replaces the items and keeps the cursor inside them.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.Clamp(len(items), m.Height())
}

// Items returns the items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// Index returns the cursor position.
func (m Model[T]) Index() int {
	return m.cursor.Pos()
}

// SetIndex moves the cursor to i, clamped.
func (m *Model[T]) SetIndex(i int) {
	m.cursor.Jump(i, len(m.items), m.Height())
}

// HandleAction applies a keymap action to the list.
func (m *Model[T]) HandleAction(a keymap.Action) Result {
	if m.cursor.HandleAction(a, len(m.items), m.Height()) {
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	}
	if len(m.items) == 0 {
		return Result{Index: -1}
	}
	switch a {
	case keymap.ActionSelect:
		return Result{Action: ActionActivate, Index: m.cursor.Pos()}
	case keymap.ActionDelete:
		return Result{Action: ActionDelete, Index: m.cursor.Pos()}
	case keymap.ActionRemoveShow:
		return Result{Action: ActionRemove, Index: m.cursor.Pos()}
	}
	return Result{Index: -1}
}

// View renders the visible rows. The cursor row is highlighted only while
// the list is focused.
func (m Model[T]) View() string {
	if len(m.items) == 0 {
		return styles.T().S().Muted.Render(m.empty)
	}
	start, end := m.cursor.VisibleRange(len(m.items), m.Height())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selected := i == m.cursor.Pos() && m.IsFocused()
		line := render.Fit(m.render(m.items[i], selected, m.Width()), m.Width())
		if selected {
			line = styles.T().S().Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

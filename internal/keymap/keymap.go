// Package keymap defines key bindings for the application.
package keymap

// Binding contexts. Global and playback bindings apply on every screen;
// the others only where the focused component declares them.
const (
	ContextGlobal      = "global"
	ContextPlayback    = "playback"
	ContextList        = "list"
	ContextCalendar    = "calendar"
	ContextCollections = "collections"
	ContextHistory     = "history"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionBack, []string{"esc"}, "Back", ContextGlobal},
	{ActionScreenWelcome, []string{"1"}, "Welcome", ContextGlobal},
	{ActionScreenBrowse, []string{"2"}, "Browse shows", ContextGlobal},
	{ActionScreenPlayer, []string{"3"}, "Player", ContextGlobal},
	{ActionScreenCollections, []string{"4"}, "Collections", ContextGlobal},
	{ActionScreenHistory, []string{"5"}, "History", ContextGlobal},
	{ActionRandomShow, []string{"r"}, "Play a random show", ContextGlobal},
	{ActionToday, []string{"t"}, "Today in history", ContextGlobal},
	{ActionToggleFavorite, []string{"f"}, "Toggle favorite", ContextGlobal},
	{ActionSearch, []string{"/"}, "Search shows and tours", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionNextTrack, []string{"n"}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"p"}, "Previous track", ContextPlayback},
	{ActionSeekBack, []string{"left"}, "Rewind", ContextPlayback},
	{ActionSeekForward, []string{"right"}, "Skip ahead", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayback},
	{ActionJumpHighlight, []string{"h"}, "Jump to highlight", ContextPlayback},
	{ActionClearSession, []string{"c"}, "Stop and clear", ContextPlayback},

	// Lists
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextList},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextList},
	{ActionJumpStart, []string{"g", "home"}, "First item", ContextList},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", ContextList},
	{ActionSelect, []string{"enter"}, "Play/open", ContextList},
	{ActionSwitchPane, []string{"tab"}, "Next pane", ContextList},

	// Calendar
	{ActionPrevDay, []string{"left"}, "Previous day", ContextCalendar},
	{ActionNextDay, []string{"right"}, "Next day", ContextCalendar},
	{ActionPrevWeek, []string{"up", "k"}, "Previous week", ContextCalendar},
	{ActionNextWeek, []string{"down", "j"}, "Next week", ContextCalendar},
	{ActionPrevMonth, []string{"[", "<"}, "Previous month", ContextCalendar},
	{ActionNextMonth, []string{"]", ">"}, "Next month", ContextCalendar},
	{ActionSelect, []string{"enter"}, "Play show on date", ContextCalendar},
	{ActionSwitchPane, []string{"tab"}, "Next pane", ContextCalendar},

	// Collections
	{ActionNewCollection, []string{"N"}, "New collection", ContextCollections},
	{ActionDelete, []string{"d", "delete"}, "Delete collection", ContextCollections},
	{ActionRemoveShow, []string{"x"}, "Remove show", ContextCollections},

	// History
	{ActionClearHistory, []string{"D"}, "Clear history", ContextHistory},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

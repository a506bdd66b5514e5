// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionHelp           Action = "help"
	ActionBack           Action = "back"
	ActionRandomShow     Action = "random_show"
	ActionToday          Action = "today_in_history"
	ActionToggleFavorite Action = "toggle_favorite"
	ActionSearch         Action = "search"

	// Screen switching (1-5)
	ActionScreenWelcome     Action = "screen_welcome"
	ActionScreenBrowse      Action = "screen_browse"
	ActionScreenPlayer      Action = "screen_player"
	ActionScreenCollections Action = "screen_collections"
	ActionScreenHistory     Action = "screen_history"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionJumpHighlight Action = "jump_highlight"
	ActionClearSession  Action = "clear_session"

	// List navigation
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionJumpStart  Action = "jump_start"
	ActionJumpEnd    Action = "jump_end"
	ActionSelect     Action = "select" // enter - play/activate
	ActionSwitchPane Action = "switch_pane"

	// Calendar navigation
	ActionPrevDay   Action = "prev_day"
	ActionNextDay   Action = "next_day"
	ActionPrevWeek  Action = "prev_week"
	ActionNextWeek  Action = "next_week"
	ActionPrevMonth Action = "prev_month"
	ActionNextMonth Action = "next_month"

	// Collection management
	ActionNewCollection Action = "new_collection" // N
	ActionDelete        Action = "delete"         // d/delete - context determines what
	ActionRemoveShow    Action = "remove_show"    // x

	// History
	ActionClearHistory Action = "clear_history"
)

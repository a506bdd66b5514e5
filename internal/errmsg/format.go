// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogLoad Op = "load show catalog"
	OpShowLookup  Op = "find show"
	OpTourLookup  Op = "find tour"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpTrackSelect   Op = "select track"
	OpPlaybackSeek  Op = "seek"

	// Collection operations
	OpCollectionLoad   Op = "load collections"
	OpCollectionCreate Op = "create collection"
	OpCollectionDelete Op = "delete collection"
	OpCollectionAdd    Op = "add show to collection"
	OpCollectionRemove Op = "remove show from collection"

	// Favorites
	OpFavoriteToggle Op = "update favorites"

	// History operations
	OpHistoryLoad   Op = "load history"
	OpHistoryRecord Op = "record play"
	OpHistoryClear  Op = "clear history"

	// Navigation
	OpNavigate Op = "open screen"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// internal/state/interface.go
package state

import "time"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	ListCollections() ([]Collection, error)
	CollectionByName(name string) (Collection, error)
	CreateCollection(name string) (Collection, error)
	DeleteCollection(id string) error
	AddToCollection(id, showID string) error
	RemoveFromCollection(id, showID string) error
	ToggleInCollection(id, showID string) (bool, error)
	CollectionShows(id string) ([]string, error)
	RecordPlay(showID string, at time.Time) error
	History(limit int) ([]HistoryEntry, error)
	ClearHistory() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

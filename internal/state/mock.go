// internal/state/mock.go
package state

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	collections []Collection
	history     []HistoryEntry
	closed      bool
	err         error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) find(id string) int {
	return slices.IndexFunc(m.collections, func(c Collection) bool { return c.ID == id })
}

func (m *Mock) ListCollections() ([]Collection, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]Collection, len(m.collections))
	for i, c := range m.collections {
		c.ShowIDs = slices.Clone(c.ShowIDs)
		out[i] = c
	}
	return out, nil
}

func (m *Mock) CollectionByName(name string) (Collection, error) {
	for _, c := range m.collections {
		if strings.EqualFold(c.Name, name) {
			c.ShowIDs = slices.Clone(c.ShowIDs)
			return c, nil
		}
	}
	return Collection{}, ErrCollectionNotFound
}

func (m *Mock) CreateCollection(name string) (Collection, error) {
	if m.err != nil {
		return Collection{}, m.err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Collection{}, ErrEmptyName
	}
	if _, err := m.CollectionByName(name); err == nil {
		return Collection{}, ErrDuplicateName
	}
	c := Collection{ID: "mock-" + strconv.Itoa(len(m.collections)+1), Name: name}
	m.collections = append(m.collections, c)
	return c, nil
}

func (m *Mock) DeleteCollection(id string) error {
	i := m.find(id)
	if i < 0 {
		return ErrCollectionNotFound
	}
	m.collections = slices.Delete(m.collections, i, i+1)
	return nil
}

func (m *Mock) AddToCollection(id, showID string) error {
	i := m.find(id)
	if i < 0 {
		return ErrCollectionNotFound
	}
	if !slices.Contains(m.collections[i].ShowIDs, showID) {
		m.collections[i].ShowIDs = append(m.collections[i].ShowIDs, showID)
	}
	return nil
}

func (m *Mock) RemoveFromCollection(id, showID string) error {
	i := m.find(id)
	if i < 0 {
		return ErrCollectionNotFound
	}
	m.collections[i].ShowIDs = slices.DeleteFunc(m.collections[i].ShowIDs, func(s string) bool {
		return s == showID
	})
	return nil
}

func (m *Mock) ToggleInCollection(id, showID string) (bool, error) {
	i := m.find(id)
	if i < 0 {
		return false, ErrCollectionNotFound
	}
	if slices.Contains(m.collections[i].ShowIDs, showID) {
		return false, m.RemoveFromCollection(id, showID)
	}
	return true, m.AddToCollection(id, showID)
}

func (m *Mock) CollectionShows(id string) ([]string, error) {
	i := m.find(id)
	if i < 0 {
		return nil, nil
	}
	return slices.Clone(m.collections[i].ShowIDs), nil
}

func (m *Mock) RecordPlay(showID string, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.history = append(m.history, HistoryEntry{ID: int64(len(m.history) + 1), ShowID: showID, PlayedAt: at})
	return nil
}

func (m *Mock) History(limit int) ([]HistoryEntry, error) {
	out := slices.Clone(m.history)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Mock) ClearHistory() error {
	if m.err != nil {
		return m.err
	}
	m.history = nil
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

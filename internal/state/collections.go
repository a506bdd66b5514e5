package state

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	dbutil "github.com/llehouerou/setbreak/internal/db"
)

var (
	ErrEmptyName          = errors.New("collection name is empty")
	ErrDuplicateName      = errors.New("collection name already used")
	ErrCollectionNotFound = errors.New("collection not found")
)

// Names of the collections created by SeedDefaults.
const (
	FavoritesName = "Favorites"
	AttendedName  = "Shows I Attended"
)

// Collection is a user-named list of shows.
type Collection struct {
	ID        string
	Name      string
	CreatedAt time.Time
	ShowIDs   []string // in the order they were added
}

// ListCollections returns every collection in creation order.
func (m *Manager) ListCollections() ([]Collection, error) {
	rows, err := m.db.Query(`
		SELECT id, name, created_at FROM collections
		ORDER BY created_at, rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Collection
	for rows.Next() {
		var c Collection
		var created int64
		if err := rows.Scan(&c.ID, &c.Name, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = dbutil.UnixTime(created)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		ids, err := m.CollectionShows(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].ShowIDs = ids
	}
	return out, nil
}

// CollectionByName finds a collection by case-insensitive name.
func (m *Manager) CollectionByName(name string) (Collection, error) {
	var c Collection
	var created int64
	err := m.db.QueryRow(`
		SELECT id, name, created_at FROM collections WHERE name = ?
	`, strings.TrimSpace(name)).Scan(&c.ID, &c.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Collection{}, ErrCollectionNotFound
	}
	if err != nil {
		return Collection{}, err
	}
	c.CreatedAt = dbutil.UnixTime(created)
	c.ShowIDs, err = m.CollectionShows(c.ID)
	return c, err
}

// CreateCollection adds an empty collection.
func (m *Manager) CreateCollection(name string) (Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Collection{}, ErrEmptyName
	}
	c := Collection{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: m.now().UTC().Truncate(time.Second),
	}

	err := dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM collections WHERE name = ?)`, name).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateName
		}
		_, err = tx.Exec(`
			INSERT INTO collections (id, name, created_at) VALUES (?, ?, ?)
		`, c.ID, c.Name, c.CreatedAt.Unix())
		return err
	})
	if err != nil {
		return Collection{}, err
	}
	return c, nil
}

// DeleteCollection removes a collection and its entries.
func (m *Manager) DeleteCollection(id string) error {
	res, err := m.db.Exec(`DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCollectionNotFound
	}
	return nil
}

// AddToCollection adds a show to a collection. Adding a show twice is a no-op.
func (m *Manager) AddToCollection(id, showID string) error {
	return dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		if err := collectionExists(tx, id); err != nil {
			return err
		}
		_, err := tx.Exec(`
			INSERT OR IGNORE INTO collection_shows (collection_id, show_id, added_at)
			VALUES (?, ?, ?)
		`, id, showID, m.now().Unix())
		return err
	})
}

// RemoveFromCollection removes a show from a collection.
func (m *Manager) RemoveFromCollection(id, showID string) error {
	return dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		if err := collectionExists(tx, id); err != nil {
			return err
		}
		_, err := tx.Exec(`
			DELETE FROM collection_shows WHERE collection_id = ? AND show_id = ?
		`, id, showID)
		return err
	})
}

// ToggleInCollection adds the show when absent and removes it otherwise. It
// reports whether the show is in the collection afterwards.
func (m *Manager) ToggleInCollection(id, showID string) (bool, error) {
	var added bool
	err := dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		if err := collectionExists(tx, id); err != nil {
			return err
		}
		res, err := tx.Exec(`
			DELETE FROM collection_shows WHERE collection_id = ? AND show_id = ?
		`, id, showID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil || n > 0 {
			return err
		}
		added = true
		_, err = tx.Exec(`
			INSERT INTO collection_shows (collection_id, show_id, added_at)
			VALUES (?, ?, ?)
		`, id, showID, m.now().Unix())
		return err
	})
	return added, err
}

// CollectionShows returns the show IDs of a collection in insertion order.
func (m *Manager) CollectionShows(id string) ([]string, error) {
	rows, err := m.db.Query(`
		SELECT show_id FROM collection_shows
		WHERE collection_id = ?
		ORDER BY added_at, rowid
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var showID string
		if err := rows.Scan(&showID); err != nil {
			return nil, err
		}
		ids = append(ids, showID)
	}
	return ids, rows.Err()
}

// SeedDefaults creates the starter collections when none exist.
func (m *Manager) SeedDefaults() error {
	var n int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM collections`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	seeds := []struct {
		name  string
		shows []string
	}{
		{FavoritesName, []string{"1997-12-31", "2024-07-21"}},
		{AttendedName, []string{"2023-04-15"}},
	}
	for _, s := range seeds {
		c, err := m.CreateCollection(s.name)
		if err != nil {
			return err
		}
		for _, showID := range s.shows {
			if err := m.AddToCollection(c.ID, showID); err != nil {
				return err
			}
		}
	}
	return nil
}

func collectionExists(tx *sql.Tx, id string) error {
	var exists bool
	err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM collections WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCollectionNotFound
	}
	return nil
}

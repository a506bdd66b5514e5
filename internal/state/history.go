package state

import (
	"time"

	dbutil "github.com/llehouerou/setbreak/internal/db"
)

// HistoryEntry is one play of a show.
type HistoryEntry struct {
	ID       int64
	ShowID   string
	PlayedAt time.Time
}

// RecordPlay appends a history entry.
func (m *Manager) RecordPlay(showID string, at time.Time) error {
	_, err := m.db.Exec(`
		INSERT INTO play_history (show_id, played_at) VALUES (?, ?)
	`, showID, at.Unix())
	return err
}

// History returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (m *Manager) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := m.db.Query(`
		SELECT id, show_id, played_at FROM play_history
		ORDER BY played_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var played int64
		if err := rows.Scan(&e.ID, &e.ShowID, &played); err != nil {
			return nil, err
		}
		e.PlayedAt = dbutil.UnixTime(played)
		out = append(out, e)
	}
	return out, rows.Err()
}

// ClearHistory removes every history entry.
func (m *Manager) ClearHistory() error {
	_, err := m.db.Exec(`DELETE FROM play_history`)
	return err
}

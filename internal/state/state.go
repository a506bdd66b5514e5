// Package state keeps the user's collections and listening history for the
// lifetime of the process. The database lives in memory and is discarded on
// exit.
package state

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// memoryDSN is a private in-memory database with foreign keys enforced.
const memoryDSN = ":memory:?_pragma=foreign_keys(1)"

type Manager struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source used for created_at and played_at stamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func Open(opts ...Option) (*Manager, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	m := &Manager{db: db, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

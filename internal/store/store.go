package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open prepares the snapshot database. The store is a single key-value
// table written through one connection, so there are no foreign keys to
// enforce; a busy timeout covers a second fitcoach process holding the
// file.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return db, nil
}

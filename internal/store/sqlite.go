package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteSlot keeps slot values in a local SQLite file, giving the storefront
// a durable store that survives process restarts.
type SQLiteSlot struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (or creates) the slot database at path.
func OpenSQLite(path string) (*SQLiteSlot, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping slot store: %w", err)
	}

	s := &SQLiteSlot{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return s, nil
}

// ensureSchema creates the necessary tables.
func (s *SQLiteSlot) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", key, err)
	}
	return value, nil
}

// Save rewrites the full value under key in one statement.
func (s *SQLiteSlot) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO slots (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)`, key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save slot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteSlot) Clear(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to clear slot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}

package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/voicemaster/voicemaster/domain"
)

// SQLiteStore implements Store using SQLite. The record is kept as a JSON
// document in a named slot so timestamps round-trip as RFC 3339 strings.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The store holds one slot with one writer at a time; a single
	// connection also keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS session_slots (
			slot TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the current session record, or nil when the slot is empty.
func (s *SQLiteStore) Get(ctx context.Context) (*domain.SessionRecord, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM session_slots WHERE slot = ?`, Slot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session slot: %w", err)
	}

	var record domain.SessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}
	return &record, nil
}

// Put overwrites the slot with the given record (last writer wins).
func (s *SQLiteStore) Put(ctx context.Context, record *domain.SessionRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session_slots (slot, record, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`,
		Slot, string(raw), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write session slot: %w", err)
	}
	return nil
}

// Delete removes the record; deleting an empty slot is a no-op.
func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_slots WHERE slot = ?`, Slot); err != nil {
		return fmt.Errorf("failed to clear session slot: %w", err)
	}
	return nil
}

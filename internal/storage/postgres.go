package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS collections (
	key TEXT PRIMARY KEY,
	data BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)
`

// PostgresStore persists collections in a Postgres table, one row per key.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to databaseURL and ensures the schema exists.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), postgresSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply postgres schema: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Load returns the stored document for key, or (nil, nil) when absent.
func (s *PostgresStore) Load(ctx context.Context, key Key) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE key = $1`, string(key)).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", key, err)
	}
	return data, nil
}

// Save replaces the stored document for key.
func (s *PostgresStore) Save(ctx context.Context, key Key, data []byte) error {
	query := `
		INSERT INTO collections (key, data, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, string(key), data, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Package sqlite implements storage.Store on a single-file SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/Apiary_Go/internal/database"
)

const (
	queryGet    = `SELECT value FROM apiary_kv WHERE key = ?`
	queryUpsert = `INSERT OR REPLACE INTO apiary_kv (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))`
	queryDelete = `DELETE FROM apiary_kv WHERE key = ?`
	queryKeys   = `SELECT key FROM apiary_kv ORDER BY key`

	dsnOptions = "?_journal_mode=WAL&_busy_timeout=5000"
)

// KVStore keeps apiary documents in a local SQLite file
type KVStore struct {
	conn *sqlx.DB
}

// Open opens (or creates) the database at path and applies migrations
func Open(ctx context.Context, path string) (*KVStore, error) {
	conn, err := sqlx.Open("sqlite", path+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// one writer keeps WAL mode simple
	conn.SetMaxOpenConns(1)

	if _, err := database.Migrate(ctx, conn.DB, goose.DialectSQLite3, database.MigrationsDirSQLite); err != nil {
		conn.Close()
		return nil, err
	}
	return &KVStore{conn: conn}, nil
}

// Close closes the database connection
func (s *KVStore) Close() error {
	return s.conn.Close()
}

// Ping checks the database is reachable
func (s *KVStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.conn.GetContext(ctx, &value, queryGet, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting %s: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.conn.ExecContext(ctx, queryUpsert, key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx, queryDelete, key); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// SetMany writes all entries in one transaction
func (s *KVStore) SetMany(ctx context.Context, entries map[string]string) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, key := range slices.Sorted(maps.Keys(entries)) {
		if _, err := tx.ExecContext(ctx, queryUpsert, key, entries[key]); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// Keys lists every stored key
func (s *KVStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.conn.SelectContext(ctx, &keys, queryKeys); err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	return keys, nil
}

// Package postgres implements storage.Store on a PostgreSQL table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/Apiary_Go/internal/database"
	"github.com/osse101/Apiary_Go/internal/logger"
)

// KVStore keeps apiary documents in the apiary_kv table
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore wraps an open pool. Call Migrate before first use.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Migrate brings the schema up to date and returns the resulting version
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return database.Migrate(ctx, db, goose.DialectPostgres, database.MigrationsDirPostgres)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, queryGet, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s %s: %w", ErrMsgFailedToGet, key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.pool.Exec(ctx, queryUpsert, key, value); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToSet, key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, queryDelete, key); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToRemove, key, err)
	}
	return nil
}

// SetMany writes all entries in one transaction, in key order
func (s *KVStore) SetMany(ctx context.Context, entries map[string]string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer safeRollback(ctx, tx)

	for _, key := range slices.Sorted(maps.Keys(entries)) {
		if _, err := tx.Exec(ctx, queryUpsert, key, entries[key]); err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToSet, key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}

// Keys lists every stored key
func (s *KVStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryKeys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListKeys, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListKeys, err)
	}
	return keys, nil
}

// safeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func safeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollbackTx, "error", err)
	}
}

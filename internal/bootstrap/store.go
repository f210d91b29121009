package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/database"
	"github.com/osse101/Apiary_Go/internal/database/postgres"
	"github.com/osse101/Apiary_Go/internal/database/sqlite"
	"github.com/osse101/Apiary_Go/internal/handler"
	"github.com/osse101/Apiary_Go/internal/storage"
)

// Store is an opened backend with its lifecycle hooks
type Store struct {
	storage.Store
	// Ready backs /readyz
	Ready handler.HealthCheckFunc
	close func() error
}

// Close releases the backend. Safe on a memory store.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore opens the backend named by cfg.StoreDriver, applies its migrations
// and wraps it in the read-through cache.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		inner storage.Store
		ready handler.HealthCheckFunc
		done  func() error
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		inner = storage.NewMemory()

	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		kv, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		inner, ready, done = kv, kv.Ping, kv.Close

	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
			database.DefaultMaxIdleTime, database.DefaultMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		inner, ready = postgres.NewKVStore(pool), pool.Ping
		done = func() error { pool.Close(); return nil }

	default:
		return nil, fmt.Errorf("%s: unknown driver %q", ErrMsgFailedOpenStore, cfg.StoreDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "cache_size", cfg.CacheSize, "cache_ttl", cfg.CacheTTL)
	return &Store{
		Store: storage.NewCachedStore(inner, cfg.CacheSize, cfg.CacheTTL),
		Ready: ready,
		close: done,
	}, nil
}

package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// ConnString builds a postgres URL from its parts
func ConnString(user, password, host, port, name string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		config.MaxConns = int32(maxConns)
	}
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase)
	return pool, nil
}

// Migrate applies the embedded migrations in dir to db using goose
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) (int64, error) {
	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	if len(results) == 0 {
		slog.Default().Info(LogMsgMigrationsUpToDate, "version", version)
	}
	return version, nil
}

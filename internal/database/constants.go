package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1

	// DefaultMaxIdleTime closes connections idle longer than this
	DefaultMaxIdleTime = 5 * time.Minute

	// DefaultMaxConnLifetime recycles connections after this long
	DefaultMaxConnLifetime = time.Hour
)

// Migration directories inside the embedded filesystem
const (
	MigrationsDirPostgres = "migrations/postgres"
	MigrationsDirSQLite   = "migrations/sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationsUpToDate              = "Database schema is up to date"
)

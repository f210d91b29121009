package config

import "time"

const (
	// Configuration file paths
	ConfigPathTuning = "configs/tuning.yaml"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Environment defaults
const (
	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultEnvironment   = "dev"
	DefaultSQLitePath    = "data/apiary.db"
	DefaultDBMaxConns    = 10
	DefaultCacheSize     = 256
	DefaultCacheTTL      = 10 * time.Minute
	DefaultWeatherSource = "neutral"
)

// Request guard defaults
const (
	DefaultAuthAlertThreshold = 5
	DefaultRateLimit          = 1000
	DefaultRateWindow         = 5 * time.Minute
)

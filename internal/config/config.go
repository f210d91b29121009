package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/Apiary_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string // empty logs to stdout only
	Environment string

	StoreDriver string
	SQLitePath  string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int

	APIKey         string // optional; when set /api/v1 requires X-API-Key
	TrustedProxies []string

	// AuthAlertThreshold failed logins or RateLimit requests from one IP
	// inside RateWindow trip the request guard
	AuthAlertThreshold int
	RateLimit          int
	RateWindow         time.Duration

	TuningPath  string
	CatalogPath string

	RandomSeed    uint64
	CacheSize     int
	CacheTTL      time.Duration
	WeatherSource string
	PlayerID      string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:          getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:             getEnv("LOG_DIR", DefaultLogDir),
		Environment:        getEnv("ENVIRONMENT", DefaultEnvironment),
		StoreDriver:        getEnv("STORE_DRIVER", DriverSQLite),
		SQLitePath:         getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBName:             getEnv("DB_NAME", "apiary"),
		DBMaxConns:         getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		APIKey:             getEnv("API_KEY", ""),
		TrustedProxies:     splitList(getEnv("TRUSTED_PROXIES", "")),
		AuthAlertThreshold: getEnvAsInt("AUTH_ALERT_THRESHOLD", DefaultAuthAlertThreshold),
		RateLimit:          getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateWindow:         getEnvAsDuration("RATE_WINDOW", DefaultRateWindow),
		TuningPath:         getEnv("TUNING_PATH", ConfigPathTuning),
		CatalogPath:        getEnv("CATALOG_PATH", ""),
		RandomSeed:         getEnvAsUint64("RANDOM_SEED", 0),
		CacheSize:          getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:           getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
		WeatherSource:      getEnv("WEATHER_SOURCE", DefaultWeatherSource),
		PlayerID:           getEnv("PLAYER_ID", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.AuthAlertThreshold <= 0 || cfg.RateLimit <= 0 || cfg.RateWindow <= 0 {
		return nil, fmt.Errorf("AUTH_ALERT_THRESHOLD, RATE_LIMIT and RATE_WINDOW must be positive")
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: expected one of %s, %s, %s",
			cfg.StoreDriver, DriverMemory, DriverSQLite, DriverPostgres)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated list, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnvAsInt parses an integer variable, returning the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	v, err := strconv.ParseUint(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a Go duration string such as "10m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

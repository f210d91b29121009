package config

import (
	"fmt"
	"os"
	"strings"
)

// PostgresEnvVars must all be set when STORE_DRIVER=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks that the variables the selected store driver needs are set
func ValidateEnv() error {
	driver := getEnv("STORE_DRIVER", DriverSQLite)

	var missing []string
	switch driver {
	case DriverPostgres:
		for _, envVar := range PostgresEnvVars {
			if os.Getenv(envVar) == "" {
				missing = append(missing, envVar)
			}
		}
	case DriverSQLite:
		if v, ok := os.LookupEnv("SQLITE_PATH"); ok && strings.TrimSpace(v) == "" {
			missing = append(missing, "SQLITE_PATH")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s store: %s", driver, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like running without an API key)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("API_KEY") == "" {
		warnings = append(warnings, "API_KEY is not set - the /api/v1 routes are unauthenticated")
	}

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	return warnings, nil
}

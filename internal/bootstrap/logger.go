package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/handler"
	"github.com/osse101/Apiary_Go/internal/logger"
)

// SetupLogger initializes slog writing to stdout and, when cfg.LogDir is set,
// to a timestamped session file. The caller closes the returned file, which is nil without a log dir.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var out io.Writer = os.Stdout
	var logFile *os.File

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	lc := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, handler.ResolveVersion(), cfg.Environment, false)
	logger.InitWithWriter(lc, out)

	slog.Info(LogMsgLoggingInitialized, "level", lc.LogLevel())
	slog.Info(LogMsgStartingApiary,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"store_driver", cfg.StoreDriver)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"sqlite_path", cfg.SQLitePath,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs deletes the oldest session logs so that a new one brings the count to LogFileRetentionCount+1
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= LogFileRetentionCount {
		return
	}

	// timestamped names sort chronologically
	slices.Sort(names)
	for _, name := range names[:len(names)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}

package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup
	LogFileRetentionCount = 9

	// ServiceName tags every log line
	ServiceName = "apiary"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApiary      = "Starting Apiary"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Store and Catalog
// =============================================================================

const (
	LogMsgStoreOpened     = "Store opened"
	LogMsgCatalogLoaded   = "Crop catalog loaded"
	LogMsgTuningLoaded    = "Tuning loaded"
	ErrMsgFailedOpenStore = "failed to open store"
	ErrMsgFailedMigrate   = "failed to migrate database"
	ErrMsgFailedCatalog   = "failed to load crop catalog"
	ErrMsgFailedTuning    = "failed to load tuning"
)

// =============================================================================
// Scheduler
// =============================================================================

const (
	LogMsgTasksScheduled = "Periodic tasks scheduled"
	LogMsgStartupOrders  = "Startup order check queued"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingScheduler    = "Stopping scheduler..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Store close failed"
)

package logger

// Accepted LOG_LEVEL values. "warning" is an alias for "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Base attribute defaults
const (
	DefaultServiceName = "apiary"
	DefaultVersion     = "dev"
)

// EnvironmentDev is the environment attribute when ENVIRONMENT is unset
const EnvironmentDev = "dev"

// Attribute keys shared by every apiary log line
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyTask        = "task"
)

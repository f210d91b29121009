package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyRequestID = "request_id"
	MetadataKeySource    = "source"
)

// Log message constants
const (
	LogMsgEventPublished     = "Event published"
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

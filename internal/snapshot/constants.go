package snapshot

// FormatVersion is written into every exported document
const FormatVersion = "1.0"

// SchemaName is the built-in validation schema for the document envelope
const SchemaName = "snapshot"

// Error Messages
const (
	ErrMsgUnknownKey    = "unknown key"
	ErrMsgInvalidEntry  = "entry is not valid JSON"
	ErrMsgInvalidFormat = "invalid snapshot"
)

// Log Messages
const (
	LogMsgExported = "Snapshot exported"
	LogMsgImported = "Snapshot imported"
)

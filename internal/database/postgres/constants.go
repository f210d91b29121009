package postgres

// Queries against the apiary_kv table
const (
	queryGet    = `SELECT value FROM apiary_kv WHERE key = $1`
	queryUpsert = `INSERT INTO apiary_kv (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	queryDelete = `DELETE FROM apiary_kv WHERE key = $1`
	queryKeys   = `SELECT key FROM apiary_kv ORDER BY key`
)

// Error Messages
const (
	ErrMsgFailedToGet        = "failed to get key"
	ErrMsgFailedToSet        = "failed to set key"
	ErrMsgFailedToRemove     = "failed to remove key"
	ErrMsgFailedToListKeys   = "failed to list keys"
	ErrMsgFailedToBeginTx    = "failed to begin transaction"
	ErrMsgFailedToCommitTx   = "failed to commit transaction"
	LogMsgFailedToRollbackTx = "Failed to rollback transaction"
)

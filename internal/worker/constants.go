package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// ============================================================================
// Log Messages - Tasks
// ============================================================================

// Log messages for task jobs
const (
	LogMsgTaskStarted   = "Task started"
	LogMsgTaskCompleted = "Task completed"
	LogMsgTaskFailed    = "Task failed"
)

// ============================================================================
// Defaults
// ============================================================================

// DefaultQueueSize bounds pending jobs. A single worker keeps task execution sequential.
const (
	DefaultWorkers   = 1
	DefaultQueueSize = 16
)

package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameHarvests              = "apiary_harvests_total"
	MetricNameBeesHatched           = "apiary_bees_hatched_total"
	MetricNameHivesFull             = "apiary_hives_full_total"
	MetricNameHoneyBatchesCompleted = "apiary_honey_batches_completed_total"
	MetricNameHoneyJarsBottled      = "apiary_honey_jars_bottled_total"
	MetricNameHoneyOrdersFulfilled  = "apiary_honey_orders_fulfilled_total"
	MetricNameNectarBottled         = "apiary_nectar_bottled_total"
	MetricNameOrdersGenerated       = "apiary_orders_generated_total"
	MetricNameOrdersFulfilled       = "apiary_orders_fulfilled_total"
	MetricNameCoinsEarned           = "apiary_coins_earned_total"
	MetricNamePollinatorQuality     = "apiary_pollinator_quality"
	MetricNamePollinatorFactor      = "apiary_pollinator_factor"
)

// Security metric names
const (
	MetricNameSecurityEvents = "apiary_security_events_total"
)

// Scheduler metric names
const (
	MetricNameTaskRuns     = "apiary_task_runs_total"
	MetricNameTaskDuration = "apiary_task_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextHarvests              = "Total number of plots harvested"
	HelpTextBeesHatched           = "Total number of bees awarded by pollination milestones"
	HelpTextHivesFull             = "Total number of milestones reached with no hive capacity left"
	HelpTextHoneyBatchesCompleted = "Total number of honey batches that reached the threshold"
	HelpTextHoneyJarsBottled      = "Total number of honey jars bottled"
	HelpTextHoneyOrdersFulfilled  = "Total number of daily honey orders delivered"
	HelpTextNectarBottled         = "Total number of nectar bottles filled"
	HelpTextOrdersGenerated       = "Total number of merchant orders generated"
	HelpTextOrdersFulfilled       = "Total number of merchant orders fulfilled"
	HelpTextCoinsEarned           = "Total coins earned from merchant and honey orders"
	HelpTextPollinatorQuality     = "Most recently computed overall pollinator quality (0-100)"
	HelpTextPollinatorFactor      = "Most recently computed pollinator quality factor (0-100)"
)

// Security metric help text
const (
	HelpTextSecurityEvents = "Failed logins, security alerts and rate-limited requests"
)

// Scheduler metric help text
const (
	HelpTextTaskRuns     = "Total number of scheduled task runs"
	HelpTextTaskDuration = "Scheduled task run time in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCrop     = "crop"
	LabelMerchant = "merchant"
	LabelFactor   = "factor"
	LabelTask     = "task"
	LabelOutcome  = "outcome"
	LabelHoney    = "honey_type"
	LabelKind     = "kind"
)

// Security event kinds
const (
	SecurityAuthFailed  = "auth_failed"
	SecurityAuthAlert   = "auth_alert"
	SecurityRateLimited = "rate_limited"
)

// Task outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TaskLatencyBuckets covers in-memory ticks up to slow store writes
var TaskLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

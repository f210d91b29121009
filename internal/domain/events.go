package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "order.fulfilled")
const (
	// EventTypeBeeHatched is published when a pollination milestone awards bees
	EventTypeBeeHatched = "bee.hatched"

	// EventTypeHivesFull is published when a milestone is reached but no hive has room
	EventTypeHivesFull = "hives.full"

	// EventTypeHoneyBatchCompleted is published the first time a batch crosses the threshold
	EventTypeHoneyBatchCompleted = "honey.batch_completed"

	// EventTypeHoneyBottled is published when a complete batch becomes honey jars
	EventTypeHoneyBottled = "honey.bottled"

	// EventTypeNectarBottled is published when hive nectar is drawn into a glass bottle
	EventTypeNectarBottled = "nectar.bottled"

	// EventTypeOrderGenerated is published once per newly generated order
	EventTypeOrderGenerated = "order.generated"

	// EventTypeOrderFulfilled is published after coins and affinity are credited
	EventTypeOrderFulfilled = "order.fulfilled"

	// EventTypeHoneyOrderFulfilled is published when a daily honey order is delivered
	EventTypeHoneyOrderFulfilled = "honey_order.fulfilled"

	// EventTypePlotHarvested is published when a ready plot is harvested
	EventTypePlotHarvested = "plot.harvested"
)

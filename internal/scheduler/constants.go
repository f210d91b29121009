package scheduler

// Task names
const (
	TaskPlotTick    = "plot-tick"
	TaskHiveNectar  = "hive-nectar"
	TaskOrderCheck  = "order-check"
	TaskPollination = "pollination"
	TaskWaterRefill = "water-refill"
	TaskHoneyOrders = "honey-orders"
)

// Log messages
const (
	LogMsgTaskScheduled = "Task scheduled"
	LogMsgTaskSkipped   = "Task tick skipped, worker queue full"
	LogMsgSchedulerStop = "Scheduler stopped"
	LogMsgDuplicateTask = "Task already scheduled, replacing"
)

package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlotID         = "Plot id must be a number"
	ErrMsgInvalidSeason         = "Unknown season. Valid options: spring, summer, fall, winter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// Operation names used in logs and rejection messages
const (
	OpTillPlot      = "Till plot"
	OpPlantSeed     = "Plant seed"
	OpWaterPlot     = "Water plot"
	OpHarvestPlot   = "Harvest plot"
	OpClearPlot     = "Clear plot"
	OpBuildHive     = "Build hive"
	OpBottleHoney   = "Bottle honey"
	OpBottleNectar  = "Bottle nectar"
	OpClassify      = "Classify hive"
	OpHatchCheck    = "Hatching check"
	OpGetState      = "Get state"
	OpGetOrders     = "Get orders"
	OpGenerate      = "Generate orders"
	OpFulfill       = "Fulfill order"
	OpHoneyOrders   = "Get honey orders"
	OpFulfillHoney  = "Fulfill honey order"
	OpGetQuality    = "Get pollinator quality"
	OpEventsConnect = "Events websocket"
)

// Success messages for API responses
const (
	MsgHiveBuilt        = "A new hive is ready for bees"
	MsgHoneyBottled     = "Honey bottled"
	MsgNectarBottled    = "Nectar bottled"
	MsgOrderFulfilled   = "Order fulfilled"
	MsgHoneyDelivered   = "Honey delivered"
	MsgClassified       = "Classification recorded"
	MsgNoOrdersToCreate = "No new orders"
)

// Log messages
const (
	LogMsgSeedPlanted       = "Seed planted"
	LogMsgInvalidPlotID     = "Invalid plot id"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgUpgradeFailed     = "Websocket upgrade failed"
	LogMsgWebsocketWriteErr = "Websocket write failed"
)

package apiary

// Starter inventory for a fresh player
const (
	StarterCoins   = 100
	StarterSeeds   = 5
	StarterBottles = 3
)

// StarterCrops are the seeds every new player receives
var StarterCrops = []string{"tomato", "carrot", "wheat", "corn"}

// Log messages
const (
	LogMsgStateLoaded         = "Apiary state loaded"
	LogMsgStateReload         = "Apiary state marked for reload"
	LogMsgPersistFailed       = "Failed to persist apiary state, keeping in-memory value"
	LogMsgPublishFailed       = "Failed to publish event"
	LogMsgWeatherUnavailable  = "Weather feed unavailable, using neutral weather"
	LogMsgPlotUpdated         = "Plot updated"
	LogMsgPlotHarvested       = "Plot harvested"
	LogMsgBeesHatched         = "Bees hatched"
	LogMsgHiveBuilt           = "Hive built"
	LogMsgHoneyBottled        = "Honey bottled"
	LogMsgNectarBottled       = "Nectar bottled"
	LogMsgOrdersGenerated     = "Orders generated"
	LogMsgOrdersExpired       = "Expired orders removed"
	LogMsgOrderFulfilled      = "Order fulfilled"
	LogMsgHoneyOrdersDrawn    = "Daily honey orders drawn"
	LogMsgHoneyOrderFulfilled = "Honey order fulfilled"
	LogMsgClassified          = "Hive classified"
	LogMsgPollinationCycle    = "Pollination cycle complete"
	LogMsgQualityComputed     = "Pollinator quality computed"
	LogMsgNectarSkipped       = "Nectar event skipped"
	LogMsgWaterRefilled       = "Water refilled"
	LogMsgRainRefill          = "Rain refilled water"
	LogMsgNightSkip           = "Outside daylight, skipping"
)

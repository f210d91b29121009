package plot

import "time"

// Plot defaults
const (
	DefaultPlotCount     = 6
	DefaultWaterInterval = 10 * time.Second
	HarvestCropYield     = 3
	HarvestSeedYield     = 2
	ShovelSeedRefund     = 1
	WaterPerAction       = 1
)

// Water system defaults
const (
	DefaultWaterMax          = 100
	DefaultWaterRefillPeriod = time.Hour
	DefaultRainPerMinute     = 10
)

// Log messages
const (
	LogMsgPlotRejected = "Plot action rejected"
	LogMsgPlotsTicked  = "Plots marked as needing water"
)

package domain

import "time"

// PlotState is the lifecycle position of a plot
type PlotState string

const (
	PlotStateEmpty   PlotState = "empty"
	PlotStateTilled  PlotState = "tilled"
	PlotStatePlanted PlotState = "planted"
	PlotStateGrowing PlotState = "growing"
)

// Growth stage bounds. A plot at MaxGrowthStage is ready to harvest.
const (
	MinGrowthStage = 0
	MaxGrowthStage = 5
)

// Plot is a single field tile
type Plot struct {
	ID            int        `json:"id"`
	State         PlotState  `json:"state"`
	GrowthStage   int        `json:"growthStage"`
	CropType      *string    `json:"cropType"`
	NeedsWater    bool       `json:"needsWater"`
	PlantedAt     *time.Time `json:"plantedAt,omitempty"`
	LastWateredAt *time.Time `json:"lastWateredAt,omitempty"`
}

// IsReady reports whether the plot can be harvested
func (p Plot) IsReady() bool {
	return p.GrowthStage >= MaxGrowthStage
}

// Crop returns the planted crop id, or "" when nothing is planted
func (p Plot) Crop() string {
	if p.CropType == nil {
		return ""
	}
	return *p.CropType
}

// LastActionAt is the reference time for the watering interval
func (p Plot) LastActionAt() *time.Time {
	if p.LastWateredAt != nil {
		return p.LastWateredAt
	}
	return p.PlantedAt
}

// HarvestReward is the bundle granted when a ready plot is harvested
type HarvestReward struct {
	CropID string `json:"cropId"`
	Crops  int    `json:"crops"`
	Seeds  int    `json:"seeds"`
}

// WaterSystem is the shared water supply consumed by watering
type WaterSystem struct {
	Current      int       `json:"current"`
	Max          int       `json:"max"`
	LastRefillAt time.Time `json:"lastRefillAt"`
}

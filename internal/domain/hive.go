package domain

import "time"

// HiveHealth is the coarse health tier of a colony
type HiveHealth string

const (
	HiveHealthExcellent HiveHealth = "excellent"
	HiveHealthGood      HiveHealth = "good"
	HiveHealthFair      HiveHealth = "fair"
	HiveHealthPoor      HiveHealth = "poor"
	HiveHealthCritical  HiveHealth = "critical"
)

// DefaultHiveID is the hive every new player starts with
const DefaultHiveID = "default-hive"

// BeePopulation is the detailed colony composition used for scoring
type BeePopulation struct {
	Workers int  `json:"workers"`
	Drones  int  `json:"drones"`
	Queen   bool `json:"queen"`
	Brood   int  `json:"brood"`
}

// HiveResources are stored levels, each 0-100
type HiveResources struct {
	Pollen float64 `json:"pollen"`
	Nectar float64 `json:"nectar"`
	Honey  float64 `json:"honey"`
}

// Hive is a single colony
type Hive struct {
	ID          string           `json:"id"`
	BeeCount    int              `json:"beeCount"`
	MaxCapacity int              `json:"maxCapacity,omitempty"`
	Level       int              `json:"level,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	Health      HiveHealth       `json:"health,omitempty"`
	Population  *BeePopulation   `json:"population,omitempty"`
	Resources   *HiveResources   `json:"resources,omitempty"`
	Honey       *HoneyProduction `json:"honeyProduction,omitempty"`
}

// PollinationFactor is the cumulative harvesting score
type PollinationFactor struct {
	Factor        int `json:"factor"`
	TotalHarvests int `json:"totalHarvests"`
	Threshold     int `json:"threshold"`
}

// PollinationMilestone records a processed milestone
type PollinationMilestone struct {
	Score       int       `json:"score"`
	Timestamp   time.Time `json:"timestamp"`
	BeesAwarded int       `json:"beesAwarded"`
}

// HatchResult is the outcome of a milestone check
type HatchResult struct {
	NewBeesHatched  int    `json:"newBeesHatched"`
	TargetHiveID    string `json:"targetHiveId,omitempty"`
	Message         string `json:"message,omitempty"`
	ShouldShowAlert bool   `json:"shouldShowAlert"`
	HivesFull       bool   `json:"hivesFull"`
	Milestone       int    `json:"milestone,omitempty"`
}

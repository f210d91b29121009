package domain

import "time"

// ExperienceLevel bounds
const (
	MinExperienceLevel = 1
	MaxExperienceLevel = 10
)

// Experience is the player's lifetime activity used to derive a level
type Experience struct {
	TotalHarvests        int      `json:"totalHarvests"`
	TotalClassifications int      `json:"totalClassifications"`
	UniqueCrops          []string `json:"uniqueCrops"`
}

// DailyClassifications gates classification to a per-hive daily allowance
type DailyClassifications struct {
	Date                      string         `json:"date"`
	ClassificationsByHive     map[string]int `json:"classificationsByHive"`
	MaxClassificationsPerHive int            `json:"maxClassificationsPerHive"`
}

// Classification is a recorded hive encounter
type Classification struct {
	ID        string    `json:"id"`
	HiveID    string    `json:"hiveId"`
	UserID    string    `json:"userId"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

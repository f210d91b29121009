package domain

import "time"

// HoneyBatch is an in-progress blend of nectar from one or more crops
type HoneyBatch struct {
	ID             string             `json:"id"`
	Sources        map[string]float64 `json:"sources"`
	Amount         float64            `json:"amount"`
	Quality        float64            `json:"quality"`
	DominantFlavor string             `json:"dominantFlavor"`
	DominantSource string             `json:"dominantSource"`
	Color          string             `json:"color"`
	Description    string             `json:"description"`
	StartedAt      time.Time          `json:"startedAt"`
	CompletedAt    *time.Time         `json:"completedAt,omitempty"`
	IsComplete     bool               `json:"isComplete"`
}

// HoneyProduction is the per-hive honey ledger
type HoneyProduction struct {
	CurrentBatch          *HoneyBatch        `json:"currentBatch,omitempty"`
	CompletedBatches      []HoneyBatch       `json:"completedBatches"`
	TotalHoneyStored      float64            `json:"totalHoneyStored"`
	DailyNectarCollection map[string]float64 `json:"dailyNectarCollection,omitempty"`
	LastUpdated           time.Time          `json:"lastUpdated"`
}

// HoneySummary is a read-only view of a hive's honey state
type HoneySummary struct {
	HiveID           string  `json:"hiveId"`
	CurrentAmount    float64 `json:"currentAmount"`
	Progress         float64 `json:"progress"`
	QualityRating    string  `json:"qualityRating"`
	DominantFlavor   string  `json:"dominantFlavor"`
	Color            string  `json:"color"`
	Description      string  `json:"description"`
	CompletedBatches int     `json:"completedBatches"`
	TotalHoneyStored float64 `json:"totalHoneyStored"`
	ReadyToBottle    bool    `json:"readyToBottle"`
}

// BottleHoneyResult is returned when a complete batch is bottled
type BottleHoneyResult struct {
	HiveID string     `json:"hiveId"`
	Batch  HoneyBatch `json:"batch"`
	Jars   int        `json:"jars"`
	Type   HoneyType  `json:"type"`
}

// BottleNectarResult is returned when raw hive nectar is bottled
type BottleNectarResult struct {
	Drawn         map[string]float64 `json:"drawn"`
	BottledNectar int                `json:"bottledNectar"`
}

package domain

import "time"

// NectarEvent is the yield of a single pollination visit. It is never persisted.
type NectarEvent struct {
	CropID          string    `json:"cropId"`
	PlotID          int       `json:"plotId"`
	NectarCollected float64   `json:"nectarCollected"`
	PollenCollected float64   `json:"pollenCollected"`
	Timestamp       time.Time `json:"timestamp"`
}

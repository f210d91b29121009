package plot

import (
	"fmt"
	"time"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// NewWaterSystem returns a full tank
func NewWaterSystem(capacity int, now time.Time) domain.WaterSystem {
	if capacity <= 0 {
		capacity = DefaultWaterMax
	}
	return domain.WaterSystem{Current: capacity, Max: capacity, LastRefillAt: now}
}

// ConsumeWater takes one unit for a watering action
func ConsumeWater(ws domain.WaterSystem) (domain.WaterSystem, error) {
	if ws.Current < WaterPerAction {
		return ws, fmt.Errorf("%w: %d/%d", domain.ErrInsufficientWater, ws.Current, ws.Max)
	}
	ws.Current -= WaterPerAction
	return ws, nil
}

// Refill tops the tank up to max once period has passed since the last refill
func Refill(ws domain.WaterSystem, now time.Time, period time.Duration) (domain.WaterSystem, bool) {
	if now.Sub(ws.LastRefillAt) < period {
		return ws, false
	}
	ws.Current = ws.Max
	ws.LastRefillAt = now
	return ws, true
}

// Rain adds perMinute units for each elapsed minute, capped at max
func Rain(ws domain.WaterSystem, elapsed time.Duration, perMinute int) domain.WaterSystem {
	added := int(elapsed.Minutes() * float64(perMinute))
	if added <= 0 {
		return ws
	}
	ws.Current = min(ws.Max, ws.Current+added)
	return ws
}

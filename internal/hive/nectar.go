package hive

import (
	"time"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// Daylight is the [StartHour, EndHour) window in which bees forage
type Daylight struct {
	StartHour int
	EndHour   int
}

// DefaultDaylight is 06:00 to 18:00
func DefaultDaylight() Daylight {
	return Daylight{StartHour: DefaultDaylightStart, EndHour: DefaultDaylightEnd}
}

// Contains reports whether t is during daylight
func (d Daylight) Contains(t time.Time) bool {
	h := t.Hour()
	return h >= d.StartHour && h < d.EndHour
}

// AccumulateNectar adds beeCount units per elapsed minute to each hive, capped at maxLevel.
// Hives that no longer exist are dropped from the returned levels.
func AccumulateNectar(levels map[string]float64, hives []domain.Hive, elapsed time.Duration, maxLevel float64) map[string]float64 {
	out := make(map[string]float64, len(hives))
	minutes := elapsed.Minutes()
	for _, h := range hives {
		level := levels[h.ID]
		if minutes > 0 && h.BeeCount > 0 {
			level += float64(h.BeeCount) * minutes
		}
		out[h.ID] = min(level, maxLevel)
	}
	return out
}

// AddNectarBonus adds amount to a single hive, capped at maxLevel
func AddNectarBonus(levels map[string]float64, hiveID string, amount, maxLevel float64) map[string]float64 {
	out := make(map[string]float64, len(levels)+1)
	for k, v := range levels {
		out[k] = v
	}
	if amount > 0 {
		out[hiveID] = min(out[hiveID]+amount, maxLevel)
	}
	return out
}

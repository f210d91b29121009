package crop

import (
	"time"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// NectarSource derives per-visit nectar and pollen yield from a plot. It never mutates state.
type NectarSource struct {
	registry *Registry
}

// NewNectarSource creates a NectarSource backed by registry
func NewNectarSource(registry *Registry) *NectarSource {
	return &NectarSource{registry: registry}
}

// HoneyStage maps a plot growth stage (0-5) onto the 0-3 honey stage scale
func HoneyStage(growthStage int) int {
	switch {
	case growthStage >= domain.MaxGrowthStage:
		return HoneyStageMature
	case growthStage >= 3:
		return HoneyStageFlowering
	case growthStage == 2:
		return 1
	default:
		return 0
	}
}

// MaturityMultiplier scales yield by honey stage
func MaturityMultiplier(honeyStage int) float64 {
	switch {
	case honeyStage >= HoneyStageMature:
		return MatureMultiplier
	case honeyStage == HoneyStageFlowering:
		return FloweringMultiplier
	default:
		return 0
	}
}

// HourFactor is 1.0 inside peak hours and tapers linearly outside them down to OffPeakFloor
func HourFactor(peak domain.HourRange, hour int) float64 {
	if peak.Contains(hour) {
		return 1.0
	}
	var distance int
	if hour < peak.Start {
		distance = peak.Start - hour
	} else {
		distance = hour - peak.End + 1
	}
	f := 1.0 - OffPeakTaperPerHour*float64(distance)
	if f < OffPeakFloor {
		return OffPeakFloor
	}
	return f
}

// BaseNectar is the crop's nectar amount adjusted for time of day
func (s *NectarSource) BaseNectar(cropID string, hour int) (float64, error) {
	def, err := s.registry.Get(cropID)
	if err != nil {
		return 0, err
	}
	if !def.ProducesNectar {
		return 0, nil
	}
	return def.NectarAmount * HourFactor(def.PeakNectarHours, hour), nil
}

// Visit computes the yield of one pollination visit to plot at time at.
// It returns nil when the plot has no crop, is too young, or the crop yields no nectar.
func (s *NectarSource) Visit(plot domain.Plot, at time.Time) (*domain.NectarEvent, error) {
	cropID := plot.Crop()
	if cropID == "" {
		return nil, nil
	}
	def, err := s.registry.Get(cropID)
	if err != nil {
		return nil, err
	}

	multiplier := MaturityMultiplier(HoneyStage(plot.GrowthStage))
	if multiplier == 0 || !def.ProducesNectar {
		return nil, nil
	}

	base, err := s.BaseNectar(cropID, at.Hour())
	if err != nil {
		return nil, err
	}

	return &domain.NectarEvent{
		CropID:          cropID,
		PlotID:          plot.ID,
		NectarCollected: base * multiplier,
		PollenCollected: def.Pollen.Amount * multiplier,
		Timestamp:       at,
	}, nil
}

// Package plot implements the crop plot lifecycle and the shared water supply.
//
// Every transition is a pure function: it takes the current plot (and any
// resource it consumes) by value and returns the next state. A rejected
// transition returns an error and leaves the inputs untouched.
package plot

import (
	"fmt"
	"time"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
)

// CropCatalog is the subset of the crop registry the machine needs
type CropCatalog interface {
	Has(id string) bool
}

// Machine applies plot transitions
type Machine struct {
	clock         clock.Clock
	catalog       CropCatalog
	waterInterval time.Duration
}

// NewMachine creates a Machine. A non-positive interval falls back to DefaultWaterInterval.
func NewMachine(c clock.Clock, catalog CropCatalog, waterInterval time.Duration) *Machine {
	if waterInterval <= 0 {
		waterInterval = DefaultWaterInterval
	}
	return &Machine{clock: c, catalog: catalog, waterInterval: waterInterval}
}

// NewPlots returns n empty plots with ids 0..n-1
func NewPlots(n int) []domain.Plot {
	plots := make([]domain.Plot, n)
	for i := range plots {
		plots[i] = domain.Plot{ID: i, State: domain.PlotStateEmpty}
	}
	return plots
}

// Till turns an empty plot into a tilled one
func (m *Machine) Till(p domain.Plot) (domain.Plot, error) {
	if p.State != domain.PlotStateEmpty {
		return p, fmt.Errorf("%w: cannot till a %s plot", domain.ErrInvalidTransition, p.State)
	}
	p.State = domain.PlotStateTilled
	p.GrowthStage = domain.MinGrowthStage
	p.NeedsWater = false
	return p, nil
}

// Plant sows cropID on a tilled plot, consuming one seed from a copy of inv
func (m *Machine) Plant(p domain.Plot, cropID string, inv *domain.Inventory) (domain.Plot, *domain.Inventory, error) {
	if p.State != domain.PlotStateTilled {
		return p, inv, fmt.Errorf("%w: cannot plant on a %s plot", domain.ErrInvalidTransition, p.State)
	}
	if !m.catalog.Has(cropID) {
		return p, inv, fmt.Errorf("%w: %q", domain.ErrCropNotFound, cropID)
	}
	if inv.Seeds[cropID] < 1 {
		return p, inv, fmt.Errorf("%w: %s", domain.ErrInsufficientSeeds, cropID)
	}

	next := inv.Clone()
	next.Seeds[cropID]--

	now := m.clock.Now()
	p.State = domain.PlotStatePlanted
	p.GrowthStage = 1
	p.CropType = &cropID
	p.PlantedAt = &now
	p.LastWateredAt = nil
	p.NeedsWater = false
	return p, next, nil
}

// Water advances a planted plot by one stage, consuming one unit of water.
// It is rejected before the watering interval has elapsed unless the plot is fully grown.
func (m *Machine) Water(p domain.Plot, water domain.WaterSystem) (domain.Plot, domain.WaterSystem, error) {
	if p.State != domain.PlotStatePlanted && p.State != domain.PlotStateGrowing {
		return p, water, fmt.Errorf("%w: cannot water a %s plot", domain.ErrInvalidTransition, p.State)
	}

	now := m.clock.Now()
	if !p.IsReady() {
		if remaining := m.Remaining(p, now); remaining > 0 {
			return p, water, fmt.Errorf("%w: wait %s", domain.ErrTooSoon, remaining.Round(time.Second))
		}
	}

	next, err := ConsumeWater(water)
	if err != nil {
		return p, water, err
	}

	p.GrowthStage = min(p.GrowthStage+1, domain.MaxGrowthStage)
	p.NeedsWater = false
	p.LastWateredAt = &now
	if p.GrowthStage == domain.MaxGrowthStage {
		p.State = domain.PlotStateGrowing
	}
	return p, next, nil
}

// Harvest collects a ready plot, returning the reward and resetting the plot
func (m *Machine) Harvest(p domain.Plot, inv *domain.Inventory) (domain.Plot, *domain.Inventory, domain.HarvestReward, error) {
	if !p.IsReady() || p.CropType == nil {
		return p, inv, domain.HarvestReward{}, fmt.Errorf("%w: plot %d is at stage %d", domain.ErrInvalidTransition, p.ID, p.GrowthStage)
	}

	cropID := *p.CropType
	reward := domain.HarvestReward{CropID: cropID, Crops: HarvestCropYield, Seeds: HarvestSeedYield}

	next := inv.Clone()
	next.Crops[cropID] += reward.Crops
	next.Seeds[cropID] += reward.Seeds

	return reset(p), next, reward, nil
}

// Clear shovels a non-empty plot, refunding a seed if something was planted
func (m *Machine) Clear(p domain.Plot, inv *domain.Inventory) (domain.Plot, *domain.Inventory, error) {
	if p.State == domain.PlotStateEmpty {
		return p, inv, fmt.Errorf("%w: plot %d is already empty", domain.ErrInvalidTransition, p.ID)
	}

	next := inv
	if p.CropType != nil {
		next = inv.Clone()
		next.Seeds[*p.CropType] += ShovelSeedRefund
	}
	return reset(p), next, nil
}

// Tick marks plots whose watering interval has elapsed. Growth stage is never changed here.
func (m *Machine) Tick(plots []domain.Plot, now time.Time) ([]domain.Plot, int) {
	marked := 0
	out := make([]domain.Plot, len(plots))
	for i, p := range plots {
		if (p.State == domain.PlotStatePlanted || p.State == domain.PlotStateGrowing) &&
			!p.IsReady() && !p.NeedsWater && m.Remaining(p, now) <= 0 {
			p.NeedsWater = true
			marked++
		}
		out[i] = p
	}
	return out, marked
}

// Remaining is how long until the plot can be watered again
func (m *Machine) Remaining(p domain.Plot, now time.Time) time.Duration {
	last := p.LastActionAt()
	if last == nil {
		return 0
	}
	return m.waterInterval - now.Sub(*last)
}

func reset(p domain.Plot) domain.Plot {
	return domain.Plot{ID: p.ID, State: domain.PlotStateEmpty}
}

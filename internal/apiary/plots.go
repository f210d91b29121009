package apiary

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/experience"
	"github.com/osse101/Apiary_Go/internal/hive"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/storage"
)

// HarvestResult bundles the harvest reward with the milestone check it triggered
type HarvestResult struct {
	Plot              domain.Plot          `json:"plot"`
	Reward            domain.HarvestReward `json:"reward"`
	PollinationFactor int                  `json:"pollinationFactor"`
	Hatch             domain.HatchResult   `json:"hatch"`
	Level             int                  `json:"level"`
}

func (s *service) plotIndex(plotID int) (int, error) {
	idx := slices.IndexFunc(s.state.plots, func(p domain.Plot) bool { return p.ID == plotID })
	if idx < 0 {
		return -1, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
	}
	return idx, nil
}

// replacePlot returns a copy of the plots with p swapped in at idx
func (s *service) replacePlot(idx int, p domain.Plot) []domain.Plot {
	out := slices.Clone(s.state.plots)
	out[idx] = p
	return out
}

// TillPlot turns an empty plot into a tilled one
func (s *service) TillPlot(ctx context.Context, plotID int) (domain.Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	idx, err := s.plotIndex(plotID)
	if err != nil {
		return domain.Plot{}, err
	}
	p, err := s.machine.Till(s.state.plots[idx])
	if err != nil {
		return s.state.plots[idx], err
	}

	s.state.plots = s.replacePlot(idx, p)
	s.persist(ctx, map[string]any{storage.KeyPlots: s.state.plots})
	logger.FromContext(ctx).Info(LogMsgPlotUpdated, "plot_id", plotID, "state", p.State)
	return p, nil
}

// PlantSeed sows one seed of cropID on a tilled plot
func (s *service) PlantSeed(ctx context.Context, plotID int, cropID string) (domain.Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	idx, err := s.plotIndex(plotID)
	if err != nil {
		return domain.Plot{}, err
	}
	p, inv, err := s.machine.Plant(s.state.plots[idx], cropID, s.state.inventory)
	if err != nil {
		return s.state.plots[idx], err
	}

	s.state.plots = s.replacePlot(idx, p)
	s.state.inventory = inv
	s.persist(ctx, map[string]any{
		storage.KeyPlots:     s.state.plots,
		storage.KeyInventory: s.state.inventory,
	})
	logger.FromContext(ctx).Info(LogMsgPlotUpdated, "plot_id", plotID, "state", p.State, "crop", cropID)
	return p, nil
}

// WaterPlot advances a planted plot one growth stage
func (s *service) WaterPlot(ctx context.Context, plotID int) (domain.Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	idx, err := s.plotIndex(plotID)
	if err != nil {
		return domain.Plot{}, err
	}
	p, ws, err := s.machine.Water(s.state.plots[idx], s.state.water)
	if err != nil {
		return s.state.plots[idx], err
	}

	s.state.plots = s.replacePlot(idx, p)
	s.state.water = ws
	s.persist(ctx, map[string]any{
		storage.KeyPlots:       s.state.plots,
		storage.KeyWaterSystem: s.state.water,
	})
	logger.FromContext(ctx).Info(LogMsgPlotUpdated, "plot_id", plotID, "stage", p.GrowthStage, "water", ws.Current)
	return p, nil
}

// HarvestPlot collects a ready plot, bumps the pollination factor and runs the milestone check
func (s *service) HarvestPlot(ctx context.Context, plotID int) (*HarvestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	log := logger.FromContext(ctx)

	idx, err := s.plotIndex(plotID)
	if err != nil {
		return nil, err
	}
	p, inv, reward, err := s.machine.Harvest(s.state.plots[idx], s.state.inventory)
	if err != nil {
		return nil, err
	}

	s.state.plots = s.replacePlot(idx, p)
	s.state.inventory = inv
	s.state.pollination = hive.RecordHarvest(s.state.pollination)
	s.state.experience = experience.RecordHarvest(s.state.experience, reward.CropID)

	changed := map[string]any{
		storage.KeyPlots:             s.state.plots,
		storage.KeyInventory:         s.state.inventory,
		storage.KeyPollinationFactor: s.state.pollination,
		storage.KeyUserExperience:    s.state.experience,
	}
	hatch := s.applyHatch(s.state.pollination.Factor, changed)
	s.persist(ctx, changed)

	now := s.clock.Now()
	events := []event.Event{event.NewPlotHarvestedEvent(plotID, reward, s.state.pollination.Factor, now)}
	if evt, ok := event.NewHatchEvent(hatch, now); ok {
		events = append(events, evt)
	}
	s.publish(ctx, events...)

	log.Info(LogMsgPlotHarvested, "plot_id", plotID, "crop", reward.CropID,
		"pollination_factor", s.state.pollination.Factor, "bees_hatched", hatch.NewBeesHatched)
	return &HarvestResult{
		Plot:              p,
		Reward:            reward,
		PollinationFactor: s.state.pollination.Factor,
		Hatch:             hatch,
		Level:             experience.Level(s.state.experience),
	}, nil
}

// ClearPlot shovels a plot back to empty
func (s *service) ClearPlot(ctx context.Context, plotID int) (domain.Plot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	idx, err := s.plotIndex(plotID)
	if err != nil {
		return domain.Plot{}, err
	}
	p, inv, err := s.machine.Clear(s.state.plots[idx], s.state.inventory)
	if err != nil {
		return s.state.plots[idx], err
	}

	s.state.plots = s.replacePlot(idx, p)
	s.state.inventory = inv
	s.persist(ctx, map[string]any{
		storage.KeyPlots:     s.state.plots,
		storage.KeyInventory: s.state.inventory,
	})
	logger.FromContext(ctx).Info(LogMsgPlotUpdated, "plot_id", plotID, "state", p.State)
	return p, nil
}

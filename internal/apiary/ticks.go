package apiary

import (
	"context"
	"slices"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/hive"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/plot"
	"github.com/osse101/Apiary_Go/internal/storage"
)

// TickPlots flags plots whose watering interval has passed and lets rain top up the tank
func (s *service) TickPlots(ctx context.Context) error {
	// weather is read before taking the lock so a slow feed never blocks player actions
	w := s.CurrentWeather(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	log := logger.FromContext(ctx)

	now := s.clock.Now()
	elapsed := now.Sub(s.lastPlotTick)
	s.lastPlotTick = now

	changed := map[string]any{}
	plots, marked := s.machine.Tick(s.state.plots, now)
	if marked > 0 {
		s.state.plots = plots
		changed[storage.KeyPlots] = s.state.plots
		log.Debug(plot.LogMsgPlotsTicked, "count", marked)
	}

	if w != nil && w.IsRaining() {
		ws := plot.Rain(s.state.water, elapsed, s.tuning.RainRefillPerMinute)
		if ws.Current != s.state.water.Current {
			log.Debug(LogMsgRainRefill, "condition", w.Condition, "from", s.state.water.Current, "to", ws.Current)
			s.state.water = ws
			changed[storage.KeyWaterSystem] = s.state.water
		}
	}

	s.persist(ctx, changed)
	return nil
}

// TickHiveNectar grows raw hive nectar by beeCount per elapsed minute during daylight
func (s *service) TickHiveNectar(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	now := s.clock.Now()
	elapsed := now.Sub(s.lastNectarTick)
	s.lastNectarTick = now
	if !s.day.Contains(now) {
		logger.FromContext(ctx).Debug(LogMsgNightSkip, "task", "hive-nectar", "hour", now.Hour())
		return nil
	}

	s.state.nectarLevels = hive.AccumulateNectar(s.state.nectarLevels, s.state.hives, elapsed, s.tuning.HiveNectarMax)
	s.persist(ctx, map[string]any{storage.KeyHiveNectarLevels: s.state.nectarLevels})
	return nil
}

// RunPollinationCycle turns every nectar-bearing plot into a nectar event and
// deals the events round-robin to hives that have bees, in sorted id order.
func (s *service) RunPollinationCycle(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	log := logger.FromContext(ctx)

	now := s.clock.Now()
	if !s.day.Contains(now) {
		log.Debug(LogMsgNightSkip, "task", "pollination", "hour", now.Hour())
		return nil
	}

	var workers []string
	for _, id := range hive.SortedIDs(s.state.hives) {
		if h, _ := hive.Find(s.state.hives, id); h.BeeCount > 0 {
			workers = append(workers, id)
		}
	}
	if len(workers) == 0 {
		return nil
	}

	hives := slices.Clone(s.state.hives)
	var events []event.Event
	visits := 0
	for _, p := range s.state.plots {
		ev, err := s.source.Visit(p, now)
		if err != nil {
			log.Warn(LogMsgNectarSkipped, "plot_id", p.ID, "error", err)
			continue
		}
		if ev == nil {
			continue
		}

		hiveID := workers[s.state.cursor%len(workers)]
		s.state.cursor++
		idx := slices.IndexFunc(hives, func(h domain.Hive) bool { return h.ID == hiveID })

		prod, completed, err := s.blender.AddNectar(hives[idx].Honey, *ev)
		if err != nil {
			log.Warn(LogMsgNectarSkipped, "plot_id", p.ID, "hive_id", hiveID, "error", err)
			continue
		}
		hives[idx].Honey = prod
		visits++
		if completed {
			events = append(events, event.NewBatchCompletedEvent(hiveID, *prod.CurrentBatch, now))
		}
	}
	if visits == 0 {
		return nil
	}

	s.state.hives = hives
	s.persist(ctx, map[string]any{
		storage.KeyHives:             s.state.hives,
		storage.KeyPollinationCursor: s.state.cursor,
	})
	s.publish(ctx, events...)
	log.Info(LogMsgPollinationCycle, "visits", visits, "hives", len(workers), "batches_completed", len(events))
	return nil
}

// RefillWater tops the tank up once the refill period has passed
func (s *service) RefillWater(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	ws, refilled := plot.Refill(s.state.water, s.clock.Now(), s.tuning.WaterRefill)
	if !refilled {
		return nil
	}
	s.state.water = ws
	s.persist(ctx, map[string]any{storage.KeyWaterSystem: s.state.water})
	logger.FromContext(ctx).Info(LogMsgWaterRefilled, "current", ws.Current)
	return nil
}

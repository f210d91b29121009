package apiary

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/experience"
	"github.com/osse101/Apiary_Go/internal/hive"
	"github.com/osse101/Apiary_Go/internal/honey"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/metrics"
	"github.com/osse101/Apiary_Go/internal/pollinator"
	"github.com/osse101/Apiary_Go/internal/storage"
)

// applyHatch runs the milestone check against the in-memory hives and records
// the keys it touched in changed. Callers must hold s.mu.
func (s *service) applyHatch(score int, changed map[string]any) domain.HatchResult {
	outcome := s.ledger.CheckForBeeHatching(score, s.state.hives, s.state.milestones)
	if !outcome.Recorded {
		return outcome.Result
	}
	s.state.hives = outcome.Hives
	s.state.milestones = outcome.Milestones
	changed[storage.KeyHives] = s.state.hives
	changed[storage.KeyPollinationMilestones] = s.state.milestones
	return outcome.Result
}

// CheckForBeeHatching awards bees for a newly crossed milestone of score
func (s *service) CheckForBeeHatching(ctx context.Context, score int) (domain.HatchResult, error) {
	if score < 0 {
		return domain.HatchResult{}, fmt.Errorf("%w: score must not be negative", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	changed := map[string]any{}
	result := s.applyHatch(score, changed)
	s.persist(ctx, changed)

	if evt, ok := event.NewHatchEvent(result, s.clock.Now()); ok {
		s.publish(ctx, evt)
		logger.FromContext(ctx).Info(LogMsgBeesHatched, "score", score,
			"bees", result.NewBeesHatched, "hive_id", result.TargetHiveID, "hives_full", result.HivesFull)
	}
	return result, nil
}

// BuildHive buys a new empty hive
func (s *service) BuildHive(ctx context.Context) (domain.Hive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	hives, inv, h, err := s.ledger.Build(s.state.hives, s.state.inventory)
	if err != nil {
		return domain.Hive{}, err
	}
	s.state.hives = hives
	s.state.inventory = inv
	s.persist(ctx, map[string]any{
		storage.KeyHives:     s.state.hives,
		storage.KeyInventory: s.state.inventory,
	})
	logger.FromContext(ctx).Info(LogMsgHiveBuilt, "hive_id", h.ID, "coins_left", inv.Coins)
	return h, nil
}

// BottleHoney archives the complete batch of hiveID and stores its jars
func (s *service) BottleHoney(ctx context.Context, hiveID string) (domain.BottleHoneyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	idx := slices.IndexFunc(s.state.hives, func(h domain.Hive) bool { return h.ID == hiveID })
	if idx < 0 {
		return domain.BottleHoneyResult{}, fmt.Errorf("%w: %s", domain.ErrHiveNotFound, hiveID)
	}
	prod, result, err := s.blender.Bottle(hiveID, s.state.hives[idx].Honey)
	if err != nil {
		return domain.BottleHoneyResult{}, err
	}

	hives := slices.Clone(s.state.hives)
	hives[idx].Honey = prod
	inv := s.state.inventory.Clone()
	inv.Honey[result.Type] += result.Jars

	s.state.hives = hives
	s.state.inventory = inv
	s.persist(ctx, map[string]any{
		storage.KeyHives:     s.state.hives,
		storage.KeyInventory: s.state.inventory,
	})
	s.publish(ctx, event.NewHoneyBottledEvent(result, s.clock.Now()))
	logger.FromContext(ctx).Info(LogMsgHoneyBottled, "hive_id", hiveID, "amount", result.Batch.Amount, "jars", result.Jars, "type", result.Type)
	return result, nil
}

// BottleNectar fills one glass bottle from the raw hive nectar
func (s *service) BottleNectar(ctx context.Context) (domain.BottleNectarResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	levels, inv, result, err := honey.BottleNectar(s.state.nectarLevels, s.state.inventory, s.tuning.BottleCapacity)
	if err != nil {
		return domain.BottleNectarResult{}, err
	}
	s.state.nectarLevels = levels
	s.state.inventory = inv
	s.persist(ctx, map[string]any{
		storage.KeyHiveNectarLevels: s.state.nectarLevels,
		storage.KeyInventory:        s.state.inventory,
	})
	s.publish(ctx, event.NewNectarBottledEvent(result, s.clock.Now()))
	logger.FromContext(ctx).Info(LogMsgNectarBottled, "bottled", result.BottledNectar, "drawn", result.Drawn)
	return result, nil
}

// Classify records one classification of hiveID for the session user and
// tops up that hive's raw nectar by the classification bonus
func (s *service) Classify(ctx context.Context, hiveID, label string) (domain.Classification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if !slices.ContainsFunc(s.state.hives, func(h domain.Hive) bool { return h.ID == hiveID }) {
		return domain.Classification{}, fmt.Errorf("%w: %s", domain.ErrHiveNotFound, hiveID)
	}
	daily, history, record, err := s.gate.Record(s.state.daily, s.state.history, SessionFromContext(ctx), hiveID, label)
	if err != nil {
		return domain.Classification{}, err
	}

	s.state.daily = &daily
	s.state.history = history
	s.state.experience = experience.RecordClassification(s.state.experience)
	s.state.nectarLevels = hive.AddNectarBonus(s.state.nectarLevels, hiveID, s.tuning.ClassifyNectarBonus, s.tuning.HiveNectarMax)
	s.persist(ctx, map[string]any{
		storage.KeyDailyClassifications:  s.state.daily,
		storage.KeyClassificationHistory: s.state.history,
		storage.KeyUserExperience:        s.state.experience,
		storage.KeyHiveNectarLevels:      s.state.nectarLevels,
	})
	logger.FromContext(ctx).Info(LogMsgClassified, "hive_id", hiveID, "label", label, "user_id", record.UserID,
		"nectar", s.state.nectarLevels[hiveID])
	return record, nil
}

// ComputePollinatorQuality scores the current hives under w and season. A nil w is neutral weather.
func (s *service) ComputePollinatorQuality(ctx context.Context, w *domain.Weather, season domain.Season) (domain.PollinatorQuality, error) {
	s.mu.Lock()
	s.ensureLoaded(ctx)
	hives := slices.Clone(s.state.hives)
	s.mu.Unlock()

	q := pollinator.Score(hives, w, season)
	metrics.RecordPollinatorQuality(q)
	logger.FromContext(ctx).Debug(LogMsgQualityComputed, "overall", q.Overall, "rating", q.Rating, "season", season)
	return q, nil
}

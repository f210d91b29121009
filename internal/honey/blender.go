// Package honey blends hive nectar into honey batches and bottles the results.
package honey

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
)

// Catalog resolves crop definitions for blending
type Catalog interface {
	Get(id string) (domain.CropDefinition, error)
}

// Blender accumulates nectar events into per-hive honey batches
type Blender struct {
	clock      clock.Clock
	catalog    Catalog
	threshold  float64
	conversion float64
}

// NewBlender creates a Blender; non-positive settings fall back to defaults
func NewBlender(c clock.Clock, catalog Catalog, threshold, conversion float64) *Blender {
	if threshold <= 0 {
		threshold = DefaultBatchThreshold
	}
	if conversion <= 0 || conversion > 1 {
		conversion = DefaultConversion
	}
	return &Blender{clock: c, catalog: catalog, threshold: threshold, conversion: conversion}
}

// Threshold is the amount at which a batch completes
func (b *Blender) Threshold() float64 {
	return b.threshold
}

// AddNectar folds one nectar event into prod's current batch, creating the batch if needed.
// It returns a new production record and whether this event completed the batch.
func (b *Blender) AddNectar(prod *domain.HoneyProduction, ev domain.NectarEvent) (*domain.HoneyProduction, bool, error) {
	if ev.NectarCollected <= 0 {
		return prod, false, nil
	}
	if _, err := b.catalog.Get(ev.CropID); err != nil {
		return prod, false, err
	}

	next := cloneProduction(prod)
	now := b.clock.Now()
	if next.CurrentBatch == nil {
		next.CurrentBatch = b.newBatch()
	}
	batch := next.CurrentBatch
	wasComplete := batch.IsComplete

	batch.Sources[ev.CropID] += ev.NectarCollected
	batch.Amount += ev.NectarCollected * b.conversion
	if err := b.reblend(batch); err != nil {
		return prod, false, err
	}

	if !batch.IsComplete && batch.Amount >= b.threshold {
		batch.IsComplete = true
		batch.CompletedAt = &now
	}

	if next.DailyNectarCollection == nil {
		next.DailyNectarCollection = make(map[string]float64)
	}
	next.DailyNectarCollection[now.Format(DateLayout)] += ev.NectarCollected
	next.LastUpdated = now

	return next, batch.IsComplete && !wasComplete, nil
}

// Bottle archives a complete batch and starts a fresh one
func (b *Blender) Bottle(hiveID string, prod *domain.HoneyProduction) (*domain.HoneyProduction, domain.BottleHoneyResult, error) {
	if prod == nil || prod.CurrentBatch == nil || len(prod.CurrentBatch.Sources) == 0 {
		return prod, domain.BottleHoneyResult{}, fmt.Errorf("%w: hive %s", domain.ErrNoBatchInProgress, hiveID)
	}
	if !prod.CurrentBatch.IsComplete {
		return prod, domain.BottleHoneyResult{}, fmt.Errorf("%w: %.1f/%.0f", domain.ErrBatchNotComplete, prod.CurrentBatch.Amount, b.threshold)
	}

	next := cloneProduction(prod)
	done := *next.CurrentBatch
	next.CompletedBatches = append(next.CompletedBatches, done)
	next.TotalHoneyStored += done.Amount
	next.CurrentBatch = b.newBatch()
	next.LastUpdated = b.clock.Now()

	jars := max(1, int(math.Floor(done.Amount/HoneyPerJar)))
	return next, domain.BottleHoneyResult{HiveID: hiveID, Batch: done, Jars: jars, Type: Grade(done)}, nil
}

// Summarize builds a read-only view of a hive's honey
func (b *Blender) Summarize(hiveID string, prod *domain.HoneyProduction) domain.HoneySummary {
	s := domain.HoneySummary{HiveID: hiveID, QualityRating: RatingBasic, Description: DescEmpty}
	if prod == nil {
		return s
	}
	s.CompletedBatches = len(prod.CompletedBatches)
	s.TotalHoneyStored = prod.TotalHoneyStored
	if batch := prod.CurrentBatch; batch != nil {
		s.CurrentAmount = batch.Amount
		s.Progress = math.Min(100, batch.Amount/b.threshold*100)
		s.QualityRating = QualityRating(batch.Quality)
		s.DominantFlavor = batch.DominantFlavor
		s.Color = batch.Color
		s.Description = batch.Description
		s.ReadyToBottle = batch.IsComplete
	}
	return s
}

// QualityRating buckets a 0-100 quality score
func QualityRating(q float64) string {
	switch {
	case q >= 80:
		return RatingPremium
	case q >= 60:
		return RatingGood
	case q >= 40:
		return RatingFair
	default:
		return RatingBasic
	}
}

func (b *Blender) newBatch() *domain.HoneyBatch {
	return &domain.HoneyBatch{
		ID:        "batch-" + uuid.NewString(),
		Sources:   make(map[string]float64),
		StartedAt: b.clock.Now(),
	}
}

// reblend recomputes quality, dominant source, color and description from the cumulative sources
func (b *Blender) reblend(batch *domain.HoneyBatch) error {
	total := 0.0
	for _, v := range batch.Sources {
		total += v
	}
	if total <= 0 {
		return nil
	}

	ranked := rankSources(batch.Sources)
	quality := 0.0
	var r, g, bl, colorWeight float64
	names := make([]string, 0, len(ranked))

	for _, id := range ranked {
		def, err := b.catalog.Get(id)
		if err != nil {
			return err
		}
		p := batch.Sources[id] / total
		quality += def.NectarQuality * p
		if cr, cg, cb, ok := parseHexColor(def.HoneyProfile.Color); ok {
			r += cr * p
			g += cg * p
			bl += cb * p
			colorWeight += p
		}
		names = append(names, profileName(def))
	}

	dominant, err := b.catalog.Get(ranked[0])
	if err != nil {
		return err
	}
	batch.Quality = quality
	batch.DominantSource = dominant.ID
	batch.DominantFlavor = dominant.HoneyProfile.Flavor
	if colorWeight > 0 {
		batch.Color = fmt.Sprintf("#%02X%02X%02X", int(math.Round(r/colorWeight)), int(math.Round(g/colorWeight)), int(math.Round(bl/colorWeight)))
	}
	batch.Description = describe(names)
	return nil
}

// rankSources orders crop ids by cumulative nectar, largest first, ties by id
func rankSources(sources map[string]float64) []string {
	ids := make([]string, 0, len(sources))
	for id := range sources {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if sources[ids[i]] != sources[ids[j]] {
			return sources[ids[i]] > sources[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

func describe(names []string) string {
	switch {
	case len(names) == 0:
		return DescEmpty
	case len(names) == 1:
		return fmt.Sprintf(DescPureFormat, names[0])
	case len(names) <= MaxNamedSources:
		return strings.Join(names, " & ") + " blend"
	default:
		return DescWildflower
	}
}

func profileName(def domain.CropDefinition) string {
	if def.HoneyProfile.Type != "" {
		return def.HoneyProfile.Type
	}
	return def.Name
}

func parseHexColor(s string) (float64, float64, float64, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return float64(v >> 16 & 0xFF), float64(v >> 8 & 0xFF), float64(v & 0xFF), true
}

func cloneProduction(prod *domain.HoneyProduction) *domain.HoneyProduction {
	if prod == nil {
		return &domain.HoneyProduction{CompletedBatches: []domain.HoneyBatch{}}
	}
	next := *prod
	next.CompletedBatches = append([]domain.HoneyBatch{}, prod.CompletedBatches...)
	if prod.CurrentBatch != nil {
		batch := *prod.CurrentBatch
		batch.Sources = make(map[string]float64, len(prod.CurrentBatch.Sources))
		for k, v := range prod.CurrentBatch.Sources {
			batch.Sources[k] = v
		}
		next.CurrentBatch = &batch
	}
	if prod.DailyNectarCollection != nil {
		next.DailyNectarCollection = make(map[string]float64, len(prod.DailyNectarCollection))
		for k, v := range prod.DailyNectarCollection {
			next.DailyNectarCollection[k] = v
		}
	}
	return &next
}

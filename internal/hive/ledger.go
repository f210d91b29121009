// Package hive owns bee populations, hive capacity, milestone hatching and raw hive nectar.
package hive

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
)

// Ledger applies hive mutations. Every method returns fresh slices and never mutates its inputs.
type Ledger struct {
	clock             clock.Clock
	defaultCapacity   int
	milestoneInterval int
	hiveCost          int
}

// NewLedger creates a Ledger; non-positive settings fall back to defaults
func NewLedger(c clock.Clock, defaultCapacity, milestoneInterval, hiveCost int) *Ledger {
	if defaultCapacity <= 0 {
		defaultCapacity = DefaultCapacity
	}
	if milestoneInterval <= 0 {
		milestoneInterval = DefaultMilestoneInterval
	}
	if hiveCost < 0 {
		hiveCost = DefaultHiveCost
	}
	return &Ledger{
		clock:             c,
		defaultCapacity:   defaultCapacity,
		milestoneInterval: milestoneInterval,
		hiveCost:          hiveCost,
	}
}

// DefaultHives is the starting apiary: one empty hive
func (l *Ledger) DefaultHives() []domain.Hive {
	return []domain.Hive{{
		ID:        domain.DefaultHiveID,
		BeeCount:  0,
		Level:     1,
		CreatedAt: l.clock.Now(),
		Health:    domain.HiveHealthGood,
	}}
}

// Capacity is the effective bee limit of h
func (l *Ledger) Capacity(h domain.Hive) int {
	if h.MaxCapacity > 0 {
		return h.MaxCapacity
	}
	if h.Level >= 4 {
		return levelCapacity[4]
	}
	if c, ok := levelCapacity[h.Level]; ok {
		return c
	}
	return l.defaultCapacity
}

// CapacitySummary totals capacity across hives
type CapacitySummary struct {
	TotalCapacity     int `json:"totalCapacity"`
	CurrentBees       int `json:"currentBees"`
	AvailableCapacity int `json:"availableCapacity"`
}

// Summarize totals capacity and population
func (l *Ledger) Summarize(hives []domain.Hive) CapacitySummary {
	var s CapacitySummary
	for _, h := range hives {
		capacity := l.Capacity(h)
		s.TotalCapacity += capacity
		s.CurrentBees += h.BeeCount
		s.AvailableCapacity += max(0, capacity-h.BeeCount)
	}
	return s
}

// AddBees is the only way to grow a hive's population. Hatching places
// bees through it too, so the capacity check guards every increase.
func (l *Ledger) AddBees(hives []domain.Hive, hiveID string, count int) ([]domain.Hive, error) {
	if count <= 0 {
		return hives, fmt.Errorf("%w: got %d", domain.ErrInvalidCount, count)
	}
	idx := indexOf(hives, hiveID)
	if idx < 0 {
		return hives, fmt.Errorf("%w: %s", domain.ErrHiveNotFound, hiveID)
	}

	h := hives[idx]
	if capacity := l.Capacity(h); h.BeeCount+count > capacity {
		return hives, fmt.Errorf("%w: %s holds %d/%d, cannot add %d", domain.ErrCapacityExceeded, h.ID, h.BeeCount, capacity, count)
	}

	out := clone(hives)
	out[idx].BeeCount += count
	return out, nil
}

// Build spends coins on a new, empty hive
func (l *Ledger) Build(hives []domain.Hive, inv *domain.Inventory) ([]domain.Hive, *domain.Inventory, domain.Hive, error) {
	if inv.Coins < l.hiveCost {
		return hives, inv, domain.Hive{}, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCoins, l.hiveCost, inv.Coins)
	}

	h := domain.Hive{
		ID:        "hive-" + uuid.NewString(),
		BeeCount:  0,
		CreatedAt: l.clock.Now(),
		Health:    domain.HiveHealthGood,
		Honey:     &domain.HoneyProduction{CompletedBatches: []domain.HoneyBatch{}},
	}

	next := inv.Clone()
	next.Coins -= l.hiveCost
	return append(clone(hives), h), next, h, nil
}

// HiveCost is the coin price of a new hive
func (l *Ledger) HiveCost() int {
	return l.hiveCost
}

// SortedIDs returns hive ids in lexical order
func SortedIDs(hives []domain.Hive) []string {
	ids := make([]string, 0, len(hives))
	for _, h := range hives {
		ids = append(ids, h.ID)
	}
	sort.Strings(ids)
	return ids
}

// Find returns the hive with id
func Find(hives []domain.Hive, id string) (domain.Hive, bool) {
	if i := indexOf(hives, id); i >= 0 {
		return hives[i], true
	}
	return domain.Hive{}, false
}

func indexOf(hives []domain.Hive, id string) int {
	for i, h := range hives {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func clone(hives []domain.Hive) []domain.Hive {
	out := make([]domain.Hive, len(hives))
	copy(out, hives)
	return out
}

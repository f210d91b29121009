// Package order generates, expires and fulfills merchant orders.
package order

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/domain"
)

// Catalog is the crop lookup used to price orders
type Catalog interface {
	Get(id string) (domain.CropDefinition, error)
	IDs() []string
}

// Config tunes the economy. Zero values fall back to defaults.
type Config struct {
	MaxActive         int
	TTL               time.Duration
	NectarChance      float64
	GroupChance       float64
	NectarBottlePrice int
}

func (c Config) withDefaults() Config {
	if c.MaxActive <= 0 {
		c.MaxActive = DefaultMaxActive
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.NectarChance <= 0 {
		c.NectarChance = DefaultNectarChance
	}
	if c.GroupChance <= 0 {
		c.GroupChance = DefaultGroupChance
	}
	if c.NectarBottlePrice <= 0 {
		c.NectarBottlePrice = DefaultNectarBottlePrice
	}
	return c
}

// Economy is stateless; callers pass in orders, inventory and affinity and persist what comes back.
type Economy struct {
	clock     clock.Clock
	rand      clock.Rand
	catalog   Catalog
	directory *Directory
	cfg       Config
}

// NewEconomy creates an order economy
func NewEconomy(c clock.Clock, r clock.Rand, catalog Catalog, directory *Directory, cfg Config) *Economy {
	return &Economy{clock: c, rand: r, catalog: catalog, directory: directory, cfg: cfg.withDefaults()}
}

// Directory exposes the merchant directory
func (e *Economy) Directory() *Directory {
	return e.directory
}

// MaxActive is the active order cap
func (e *Economy) MaxActive() int {
	return e.cfg.MaxActive
}

// Active drops expired and non-active orders and reports how many were removed
func (e *Economy) Active(orders []domain.Order) ([]domain.Order, int) {
	now := e.clock.Now()
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == domain.OrderStatusActive && !o.IsExpired(now) {
			out = append(out, o)
		}
	}
	return out, len(orders) - len(out)
}

// ShouldGenerate reports whether a new local hour has started since last and a slot is free
func (e *Economy) ShouldGenerate(last *time.Time, active []domain.Order) (bool, string) {
	now := e.clock.Now()
	if last != nil && sameLocalHour(*last, now) {
		return false, SkipSameHour
	}
	if len(active) >= e.cfg.MaxActive {
		return false, SkipSlotsFull
	}
	return true, ""
}

// sameLocalHour compares wall-clock hours in now's zone. Truncate works on
// absolute time and splits half-hour offset zones mid-hour.
func sameLocalHour(last, now time.Time) bool {
	last = last.In(now.Location())
	return last.Year() == now.Year() && last.YearDay() == now.YearDay() && last.Hour() == now.Hour()
}

// CheckAndGenerate fills free slots once per hour. It returns the result and the
// generation timestamp to persist; the timestamp is unchanged when nothing ran.
func (e *Economy) CheckAndGenerate(orders []domain.Order, last *time.Time, affinity map[string]int, level int) (domain.OrderGenerationResult, *time.Time) {
	active, _ := e.Active(orders)
	ok, reason := e.ShouldGenerate(last, active)
	if !ok {
		return domain.OrderGenerationResult{Generated: []domain.Order{}, Active: active, Skipped: reason}, last
	}

	generated := e.Generate(active, affinity, level)
	now := e.clock.Now()
	return domain.OrderGenerationResult{
		Generated: generated,
		Active:    append(slices.Clone(active), generated...),
	}, &now
}

// Generate creates one order per free slot
func (e *Economy) Generate(active []domain.Order, affinity map[string]int, level int) []domain.Order {
	slots := e.cfg.MaxActive - len(active)
	out := make([]domain.Order, 0, max(0, slots))
	if slots <= 0 {
		return out
	}

	d := DifficultyFor(level)
	for range slots {
		r := e.rand.Float64()
		var o domain.Order
		switch {
		case d.AllowNectar && r < e.cfg.NectarChance:
			o = e.nectarOrder(d, affinity)
		case d.AllowGroups && r < e.groupBand(d):
			o = e.groupOrder(d, affinity)
		default:
			o = e.cropOrder(d, affinity)
		}
		o.Level = max(domain.MinExperienceLevel, min(domain.MaxExperienceLevel, level))
		out = append(out, o)
	}
	return out
}

// groupBand is the cumulative upper bound of the group roll
func (e *Economy) groupBand(d Difficulty) float64 {
	if d.AllowNectar {
		return e.cfg.NectarChance + e.cfg.GroupChance
	}
	return e.cfg.GroupChance
}

func (e *Economy) quantity(d Difficulty) int {
	return d.MinQty + e.rand.IntN(d.MaxQty-d.MinQty+1)
}

func (e *Economy) cropOrder(d Difficulty, affinity map[string]int) domain.Order {
	ids := e.catalog.IDs()
	cropID := ids[e.rand.IntN(len(ids))]
	merchant := e.directory.Select([]string{cropID}, e.rand)
	qty := e.quantity(d)

	def, _ := e.catalog.Get(cropID)
	base := int(math.Round(float64(def.SellPrice*qty) * d.RewardMultiplier))

	o := e.newOrder(domain.OrderTypeCrop, merchant.ID, base, affinity)
	o.Crop = &domain.CropQuantity{CropID: cropID, Quantity: qty}
	return o
}

func (e *Economy) groupOrder(d Difficulty, affinity map[string]int) domain.Order {
	ids := slices.Clone(e.catalog.IDs())
	if len(ids) < MinGroupCrops {
		return e.cropOrder(d, affinity)
	}

	n := MaxGroupCrops
	if e.rand.Float64() > 0.5 {
		n = MinGroupCrops
	}
	n = min(n, len(ids))
	e.rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	picked := ids[:n]

	merchant := e.directory.Select(picked, e.rand)

	group := make([]domain.CropQuantity, 0, n)
	sum := 0
	for _, id := range picked {
		qty := e.quantity(d)
		def, _ := e.catalog.Get(id)
		sum += def.SellPrice * qty
		group = append(group, domain.CropQuantity{CropID: id, Quantity: qty})
	}
	base := int(math.Round(float64(sum) * d.RewardMultiplier * GroupRewardBonus))

	o := e.newOrder(domain.OrderTypeCropGroup, merchant.ID, base, affinity)
	o.Group = group
	return o
}

func (e *Economy) nectarOrder(d Difficulty, affinity map[string]int) domain.Order {
	merchant, ok := e.directory.Get(MerchantBeekeeper)
	if !ok {
		merchant = e.directory.Select([]string{NectarSpecialty}, e.rand)
	}
	qty := e.quantity(d)
	base := int(math.Round(float64(e.cfg.NectarBottlePrice*qty) * d.RewardMultiplier))

	o := e.newOrder(domain.OrderTypeNectar, merchant.ID, base, affinity)
	o.Nectar = &domain.NectarRequirement{Quantity: qty}
	return o
}

func (e *Economy) newOrder(t domain.OrderType, merchantID string, base int, affinity map[string]int) domain.Order {
	now := e.clock.Now()
	bonus := AffinityBonus(affinity[merchantID])
	return domain.Order{
		ID:              "order-" + uuid.NewString(),
		Type:            t,
		MerchantID:      merchantID,
		CreatedAt:       now,
		ExpiresAt:       now.Add(e.cfg.TTL),
		Status:          domain.OrderStatusActive,
		BaseReward:      base,
		BonusPercentage: bonus,
		TotalReward:     TotalReward(base, bonus),
	}
}

// FulfillOutcome is the state to persist after a fulfillment attempt.
// On failure Inventory and Affinity are the unchanged inputs.
type FulfillOutcome struct {
	Orders    []domain.Order
	Inventory *domain.Inventory
	Affinity  map[string]int
	Result    domain.FulfillResult
	// Dropped counts expired orders removed while reading the active list
	Dropped int
}

// Fulfill debits the order's requirements, credits the reward and raises merchant affinity.
// Either every requirement is met and all state changes, or nothing does.
func (e *Economy) Fulfill(orders []domain.Order, orderID string, inv *domain.Inventory, affinity map[string]int) (FulfillOutcome, error) {
	active, dropped := e.Active(orders)
	outcome := FulfillOutcome{Orders: active, Inventory: inv, Affinity: affinity, Dropped: dropped}

	idx := slices.IndexFunc(orders, func(o domain.Order) bool { return o.ID == orderID })
	if idx < 0 {
		return outcome, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}
	o := orders[idx]
	if o.Status != domain.OrderStatusActive {
		return outcome, fmt.Errorf("%w: %s is %s", domain.ErrOrderNotActive, orderID, o.Status)
	}
	if o.IsExpired(e.clock.Now()) {
		return outcome, fmt.Errorf("%w: %s", domain.ErrOrderExpired, orderID)
	}

	reqs, err := o.Requirements()
	if err != nil {
		return outcome, err
	}
	if missing := Missing(reqs, inv); len(missing) > 0 {
		return outcome, &domain.MissingItemsError{Missing: missing}
	}

	next := inv.Clone()
	for _, r := range reqs {
		bucket(next, r.Kind)[r.ID] -= r.Quantity
	}
	next.Coins += o.TotalReward

	gain := AffinityGain(o.TotalReward)
	nextAffinity := IncreaseAffinity(affinity, o.MerchantID, gain)

	o.Status = domain.OrderStatusCompleted
	outcome.Orders = slices.DeleteFunc(slices.Clone(active), func(a domain.Order) bool { return a.ID == orderID })
	outcome.Inventory = next
	outcome.Affinity = nextAffinity
	outcome.Result = domain.FulfillResult{
		Order:          o,
		CoinsEarned:    o.TotalReward,
		AffinityGained: nextAffinity[o.MerchantID] - affinity[o.MerchantID],
		NewAffinity:    nextAffinity[o.MerchantID],
	}
	return outcome, nil
}

// Missing lists unmet requirements as "Nx name" strings
func Missing(reqs []domain.Requirement, inv *domain.Inventory) []string {
	var missing []string
	for _, r := range reqs {
		have := bucket(inv, r.Kind)[r.ID]
		if have >= r.Quantity {
			continue
		}
		name := r.ID
		if r.Kind == domain.RequirementItem {
			name = crop.DisplayName(r.ID)
		}
		missing = append(missing, fmt.Sprintf("%dx %s", r.Quantity-have, name))
	}
	return missing
}

func bucket(inv *domain.Inventory, kind domain.RequirementKind) map[string]int {
	if kind == domain.RequirementItem {
		return inv.Items
	}
	return inv.Crops
}

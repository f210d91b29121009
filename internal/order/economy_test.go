package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/domain"
)

var start = time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC)

func newTestEconomy(r clock.Rand) (*Economy, *clock.Fake) {
	clk := clock.NewFake(start)
	return NewEconomy(clk, r, crop.DefaultRegistry(), NewDirectory(), Config{}), clk
}

func tomatoOrder(clk clock.Clock, qty int) domain.Order {
	now := clk.Now()
	return domain.Order{
		ID:              "order-tomato",
		Type:            domain.OrderTypeCrop,
		MerchantID:      MerchantChef,
		CreatedAt:       now,
		ExpiresAt:       now.Add(DefaultTTL),
		Status:          domain.OrderStatusActive,
		Level:           1,
		BaseReward:      45,
		BonusPercentage: 10,
		TotalReward:     50,
		Crop:            &domain.CropQuantity{CropID: crop.Tomato, Quantity: qty},
	}
}

func TestGenerate_SingleCropAtLevelOne(t *testing.T) {
	e, clk := newTestEconomy(clock.NewSequence(0))

	orders := e.Generate(nil, map[string]int{}, 1)
	require.Len(t, orders, 3)

	o := orders[0]
	assert.Equal(t, domain.OrderTypeCrop, o.Type)
	require.NotNil(t, o.Crop)
	assert.Equal(t, crop.Carrot, o.Crop.CropID)
	assert.Equal(t, 1, o.Crop.Quantity)
	assert.Equal(t, MerchantChef, o.MerchantID)
	assert.Equal(t, 12, o.BaseReward)
	assert.Equal(t, 10, o.BonusPercentage)
	assert.Equal(t, 13, o.TotalReward)
	assert.Equal(t, domain.OrderStatusActive, o.Status)
	assert.Equal(t, clk.Now().Add(24*time.Hour), o.ExpiresAt)
	assert.Equal(t, 1, o.Level)
}

func TestGenerate_RespectsFreeSlots(t *testing.T) {
	e, clk := newTestEconomy(clock.NewRand(42))

	assert.Len(t, e.Generate([]domain.Order{tomatoOrder(clk, 1)}, nil, 5), 2)
	assert.Empty(t, e.Generate([]domain.Order{tomatoOrder(clk, 1), tomatoOrder(clk, 1), tomatoOrder(clk, 1)}, nil, 5))
}

func TestGenerate_NectarOrder(t *testing.T) {
	// type roll 0.1 < 0.2, then quantity roll 0.5 over 3..6 -> 5
	e, _ := newTestEconomy(clock.NewSequence(0.1, 0.5))

	o := e.Generate(nil, map[string]int{MerchantBeekeeper: 100}, 5)[0]
	assert.Equal(t, domain.OrderTypeNectar, o.Type)
	assert.Equal(t, MerchantBeekeeper, o.MerchantID)
	require.NotNil(t, o.Nectar)
	assert.Equal(t, 5, o.Nectar.Quantity)
	assert.Equal(t, 350, o.BaseReward)
	assert.Equal(t, 50, o.BonusPercentage)
	assert.Equal(t, 525, o.TotalReward)
}

func TestGenerate_GroupOrder(t *testing.T) {
	// type roll 0.25 lands in the group band at level 3, count roll 0.25 -> 3 crops
	e, _ := newTestEconomy(clock.NewSequence(0.25))

	o := e.Generate(nil, nil, 3)[0]
	assert.Equal(t, domain.OrderTypeCropGroup, o.Type)
	require.Len(t, o.Group, 3)

	seen := map[string]bool{}
	sum := 0
	for _, cq := range o.Group {
		assert.False(t, seen[cq.CropID], "crops in a group are distinct")
		seen[cq.CropID] = true
		assert.GreaterOrEqual(t, cq.Quantity, 2)
		assert.LessOrEqual(t, cq.Quantity, 4)
		def, err := crop.DefaultRegistry().Get(cq.CropID)
		require.NoError(t, err)
		sum += def.SellPrice * cq.Quantity
	}
	assert.Equal(t, int(float64(sum)*1.2*1.2+0.5), o.BaseReward)
	assert.Equal(t, MerchantBaker, o.MerchantID)
}

func TestGenerate_LockedTypesFallBackToCrop(t *testing.T) {
	e, _ := newTestEconomy(clock.NewSequence(0.05))
	for _, o := range e.Generate(nil, nil, 2) {
		assert.Equal(t, domain.OrderTypeCrop, o.Type)
	}
}

func TestGenerate_RewardFormulaHolds(t *testing.T) {
	e, _ := newTestEconomy(clock.NewRand(7))
	affinity := map[string]int{MerchantBaker: 33, MerchantChef: 70, MerchantBeekeeper: 100, MerchantGeneral: 5}

	for level := 1; level <= 10; level++ {
		for _, o := range e.Generate(nil, affinity, level) {
			assert.GreaterOrEqual(t, o.BonusPercentage, MinBonusPercentage)
			assert.LessOrEqual(t, o.BonusPercentage, MaxBonusPercentage)
			assert.Equal(t, TotalReward(o.BaseReward, o.BonusPercentage), o.TotalReward)
			assert.Equal(t, AffinityBonus(affinity[o.MerchantID]), o.BonusPercentage)
			_, err := o.Requirements()
			assert.NoError(t, err)
		}
	}
}

func TestCheckAndGenerate(t *testing.T) {
	e, clk := newTestEconomy(clock.NewRand(1))

	res, last := e.CheckAndGenerate(nil, nil, nil, 1)
	require.Len(t, res.Generated, 3)
	assert.Len(t, res.Active, 3)
	require.NotNil(t, last)
	assert.Equal(t, clk.Now(), *last)

	t.Run("same hour is a no-op", func(t *testing.T) {
		clk.Advance(30 * time.Minute)
		again, sameLast := e.CheckAndGenerate(res.Active[:1], last, nil, 1)
		assert.Empty(t, again.Generated)
		assert.Equal(t, SkipSameHour, again.Skipped)
		assert.Equal(t, last, sameLast)
	})

	t.Run("new hour fills free slots only", func(t *testing.T) {
		clk.Advance(time.Hour)
		next, newLast := e.CheckAndGenerate(res.Active[:1], last, nil, 1)
		assert.Len(t, next.Generated, 2)
		assert.Len(t, next.Active, 3)
		assert.NotEqual(t, last, newLast)
	})

	t.Run("full slots skip", func(t *testing.T) {
		clk.Advance(time.Hour)
		full, _ := e.CheckAndGenerate(res.Active, last, nil, 1)
		assert.Empty(t, full.Generated)
		assert.Equal(t, SkipSlotsFull, full.Skipped)
	})
}

func TestCheckAndGenerate_NeverExceedsCap(t *testing.T) {
	e, clk := newTestEconomy(clock.NewRand(99))
	var orders []domain.Order
	var last *time.Time

	for i := 0; i < 48; i++ {
		var res domain.OrderGenerationResult
		res, last = e.CheckAndGenerate(orders, last, nil, 4)
		orders = res.Active
		assert.LessOrEqual(t, len(orders), DefaultMaxActive)
		if i%3 == 0 && len(orders) > 0 {
			orders = orders[1:]
		}
		clk.Advance(time.Hour)
	}
}

func TestShouldGenerate_UsesLocalHour(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	e, clk := newTestEconomy(clock.NewRand(1))

	// 10:05 and 10:40 IST straddle 05:00 UTC but share local hour 10
	last := time.Date(2025, 6, 1, 10, 5, 0, 0, ist)
	clk.Set(time.Date(2025, 6, 1, 10, 40, 0, 0, ist))

	ok, reason := e.ShouldGenerate(&last, nil)
	assert.False(t, ok)
	assert.Equal(t, SkipSameHour, reason)

	t.Run("last stored in UTC", func(t *testing.T) {
		utc := last.UTC()
		ok, _ := e.ShouldGenerate(&utc, nil)
		assert.False(t, ok)
	})

	t.Run("next local hour generates", func(t *testing.T) {
		clk.Set(time.Date(2025, 6, 1, 11, 0, 0, 0, ist))
		ok, reason := e.ShouldGenerate(&last, nil)
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("same hour on another day generates", func(t *testing.T) {
		clk.Set(time.Date(2025, 6, 2, 10, 10, 0, 0, ist))
		ok, _ := e.ShouldGenerate(&last, nil)
		assert.True(t, ok)
	})
}

func TestActive_DropsExpired(t *testing.T) {
	e, clk := newTestEconomy(clock.NewSequence(0))
	fresh := tomatoOrder(clk, 1)
	fresh.ID = "fresh"
	stale := tomatoOrder(clk, 1)
	stale.ID = "stale"
	stale.ExpiresAt = clk.Now()

	active, dropped := e.Active([]domain.Order{fresh, stale})
	assert.Equal(t, 1, dropped)
	require.Len(t, active, 1)
	assert.Equal(t, "fresh", active[0].ID)
}

func TestFulfill_MissingItemsIsAtomic(t *testing.T) {
	e, clk := newTestEconomy(clock.NewSequence(0))
	orders := []domain.Order{tomatoOrder(clk, 3)}
	inv := domain.NewInventory()
	inv.Crops[crop.Tomato] = 2
	inv.Coins = 7

	out, err := e.Fulfill(orders, "order-tomato", inv, map[string]int{})
	require.Error(t, err)

	var missing *domain.MissingItemsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"1x tomato"}, missing.Missing)
	assert.ErrorIs(t, err, domain.ErrInsufficientItems)
	assert.ErrorIs(t, err, domain.ErrInsufficientResource)
	assert.Contains(t, err.Error(), "missing items: 1x tomato")

	assert.Same(t, inv, out.Inventory)
	assert.Equal(t, 2, inv.Crops[crop.Tomato])
	assert.Equal(t, 7, inv.Coins)
	assert.Len(t, out.Orders, 1)
}

func TestFulfill_Success(t *testing.T) {
	e, clk := newTestEconomy(clock.NewSequence(0))
	orders := []domain.Order{tomatoOrder(clk, 3)}
	inv := domain.NewInventory()
	inv.Crops[crop.Tomato] = 5
	inv.Coins = 10
	affinity := map[string]int{MerchantChef: 99}

	out, err := e.Fulfill(orders, "order-tomato", inv, affinity)
	require.NoError(t, err)

	assert.Empty(t, out.Orders)
	assert.Equal(t, 2, out.Inventory.Crops[crop.Tomato])
	assert.Equal(t, 60, out.Inventory.Coins)
	assert.Equal(t, 100, out.Affinity[MerchantChef], "affinity is capped")
	assert.Equal(t, 1, out.Result.AffinityGained)
	assert.Equal(t, 50, out.Result.CoinsEarned)
	assert.Equal(t, domain.OrderStatusCompleted, out.Result.Order.Status)

	assert.Equal(t, 5, inv.Crops[crop.Tomato], "input inventory untouched")
	assert.Equal(t, 99, affinity[MerchantChef])
}

func TestFulfill_NectarOrder(t *testing.T) {
	e, clk := newTestEconomy(clock.NewSequence(0))
	o := tomatoOrder(clk, 0)
	o.ID, o.Type, o.Crop = "order-nectar", domain.OrderTypeNectar, nil
	o.MerchantID = MerchantBeekeeper
	o.Nectar = &domain.NectarRequirement{Quantity: 3}
	inv := domain.NewInventory()
	inv.Items[domain.ItemBottledNectar] = 1

	_, err := e.Fulfill([]domain.Order{o}, o.ID, inv, nil)
	var missing *domain.MissingItemsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"2x Bottled Nectar"}, missing.Missing)

	inv.Items[domain.ItemBottledNectar] = 3
	out, err := e.Fulfill([]domain.Order{o}, o.ID, inv, nil)
	require.NoError(t, err)
	assert.Zero(t, out.Inventory.Items[domain.ItemBottledNectar])
	assert.Equal(t, MinAffinityGain, out.Affinity[MerchantBeekeeper])
}

func TestFulfill_GroupListsEveryShortfall(t *testing.T) {
	e, clk := newTestEconomy(clock.NewSequence(0))
	o := tomatoOrder(clk, 0)
	o.Type, o.Crop = domain.OrderTypeCropGroup, nil
	o.Group = []domain.CropQuantity{{CropID: crop.Tomato, Quantity: 2}, {CropID: crop.Wheat, Quantity: 4}, {CropID: crop.Corn, Quantity: 1}}
	inv := domain.NewInventory()
	inv.Crops[crop.Tomato] = 1
	inv.Crops[crop.Corn] = 1

	_, err := e.Fulfill([]domain.Order{o}, o.ID, inv, nil)
	var missing *domain.MissingItemsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"1x tomato", "4x wheat"}, missing.Missing)
}

func TestFulfill_Rejections(t *testing.T) {
	e, clk := newTestEconomy(clock.NewSequence(0))
	inv := domain.NewInventory()
	inv.Crops[crop.Tomato] = 10

	_, err := e.Fulfill(nil, "nope", inv, nil)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	expired := tomatoOrder(clk, 1)
	clk.Advance(DefaultTTL)
	out, err := e.Fulfill([]domain.Order{expired}, expired.ID, inv, nil)
	assert.ErrorIs(t, err, domain.ErrOrderExpired)
	assert.Empty(t, out.Orders, "expired order is dropped from the active list")
	assert.Equal(t, 1, out.Dropped)
	assert.Equal(t, 10, out.Inventory.Crops[crop.Tomato])

	done := tomatoOrder(clk, 1)
	done.Status = domain.OrderStatusCompleted
	_, err = e.Fulfill([]domain.Order{done}, done.ID, inv, nil)
	assert.ErrorIs(t, err, domain.ErrOrderNotActive)
}

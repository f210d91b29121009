package storage

import (
	"context"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// loader decodes a key back into the concrete type it was saved as
func loader[T any]() func(context.Context, Store, string) any {
	return func(ctx context.Context, s Store, key string) any {
		var zero T
		return LoadJSON(ctx, s, key, zero)
	}
}

func TestPersistedKeys_RoundTrip(t *testing.T) {
	planted := time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)
	watered := planted.Add(10 * time.Second)
	done := planted.Add(2 * time.Hour)
	tomato := "tomato"

	inv := domain.NewInventory()
	inv.Coins = 120
	inv.Seeds[tomato] = 4
	inv.Crops["carrot"] = 6
	inv.Items[domain.ItemGlassBottle] = 2
	inv.Honey[domain.HoneyAmber] = 3

	cases := map[string]struct {
		value any
		load  func(context.Context, Store, string) any
	}{
		KeyPlots: {
			value: []domain.Plot{
				{ID: 0, State: domain.PlotStateEmpty},
				{ID: 1, State: domain.PlotStateGrowing, GrowthStage: 3, CropType: &tomato, NeedsWater: true, PlantedAt: &planted, LastWateredAt: &watered},
			},
			load: loader[[]domain.Plot](),
		},
		KeyInventory: {value: inv, load: loader[*domain.Inventory]()},
		KeyHives: {
			value: []domain.Hive{{
				ID: domain.DefaultHiveID, BeeCount: 7, Level: 2, CreatedAt: planted, Health: domain.HiveHealthGood,
				Honey: &domain.HoneyProduction{
					CurrentBatch: &domain.HoneyBatch{
						ID: "batch-2", Sources: map[string]float64{tomato: 40.5}, Amount: 32.4, Quality: 71,
						DominantFlavor: "bright", DominantSource: tomato, Color: "#F4D03F", StartedAt: planted,
					},
					CompletedBatches: []domain.HoneyBatch{{
						ID: "batch-1", Sources: map[string]float64{"sunflower": 130}, Amount: 104,
						StartedAt: planted, CompletedAt: &done, IsComplete: true,
					}},
					TotalHoneyStored:      104,
					DailyNectarCollection: map[string]float64{"2026-06-01": 170.5},
					LastUpdated:           done,
				},
			}},
			load: loader[[]domain.Hive](),
		},
		KeyHiveNectarLevels:  {value: map[string]float64{domain.DefaultHiveID: 42.5}, load: loader[map[string]float64]()},
		KeyPollinationFactor: {value: domain.PollinationFactor{Factor: 12, TotalHarvests: 12, Threshold: 10}, load: loader[domain.PollinationFactor]()},
		KeyActiveOrders: {
			value: []domain.Order{
				{
					ID: "order-crop", Type: domain.OrderTypeCrop, MerchantID: "chef", CreatedAt: planted, ExpiresAt: done,
					Status: domain.OrderStatusActive, Level: 2, BaseReward: 30, BonusPercentage: 10, TotalReward: 33,
					Crop: &domain.CropQuantity{CropID: tomato, Quantity: 3},
				},
				{
					ID: "order-group", Type: domain.OrderTypeCropGroup, MerchantID: "baker", CreatedAt: planted, ExpiresAt: done,
					Status: domain.OrderStatusActive, BaseReward: 60, TotalReward: 60,
					Group: []domain.CropQuantity{{CropID: "wheat", Quantity: 2}, {CropID: "corn", Quantity: 1}},
				},
				{
					ID: "order-nectar", Type: domain.OrderTypeNectar, MerchantID: "apothecary", CreatedAt: planted, ExpiresAt: done,
					Status: domain.OrderStatusActive, BaseReward: 50, TotalReward: 50,
					Nectar: &domain.NectarRequirement{Quantity: 1},
				},
			},
			load: loader[[]domain.Order](),
		},
		KeyMerchantAffinity: {value: map[string]int{"chef": 12, "baker": 0}, load: loader[map[string]int]()},
		KeyDailyClassifications: {
			value: &domain.DailyClassifications{
				Date:                      "2026-06-01",
				ClassificationsByHive:     map[string]int{domain.DefaultHiveID: 1},
				MaxClassificationsPerHive: 1,
			},
			load: loader[*domain.DailyClassifications](),
		},
		KeyClassificationHistory: {
			value: []domain.Classification{{ID: "c-1", HiveID: domain.DefaultHiveID, UserID: "player-1", Label: "calm", Timestamp: watered}},
			load:  loader[[]domain.Classification](),
		},
		KeyPollinationMilestones: {
			value: []domain.PollinationMilestone{{Score: 10, Timestamp: done, BeesAwarded: 1}},
			load:  loader[[]domain.PollinationMilestone](),
		},
		KeyUserExperience: {
			value: domain.Experience{TotalHarvests: 12, TotalClassifications: 3, UniqueCrops: []string{tomato, "carrot"}},
			load:  loader[domain.Experience](),
		},
		KeyWaterSystem:         {value: domain.WaterSystem{Current: 64, Max: 100, LastRefillAt: planted}, load: loader[domain.WaterSystem]()},
		KeyLastOrderGeneration: {value: &done, load: loader[*time.Time]()},
		KeyPollinationCursor:   {value: 2, load: loader[int]()},
		KeyHoneyOrders: {
			value: &domain.HoneyOrderBoard{
				Date: "2026-06-01",
				Orders: []domain.HoneyOrder{
					{ID: "honey-1", Customer: "Chef Rosa", Message: "I need honey for my special recipe!", HoneyType: domain.HoneyAmber, Bottles: 2, CoinReward: 40, CreatedAt: planted},
					{ID: "honey-2", Customer: "Baker Tim", HoneyType: domain.HoneyDark, Bottles: 1, CoinReward: 25, Completed: true, Reduced: true, CreatedAt: planted, CompletedAt: &done},
				},
				Fulfilled: map[domain.HoneyType]int{domain.HoneyDark: 3},
			},
			load: loader[*domain.HoneyOrderBoard](),
		},
	}

	assert.ElementsMatch(t, Keys(), slices.Collect(maps.Keys(cases)), "every persisted key needs a case")

	ctx := context.Background()
	for key, tc := range cases {
		t.Run(key, func(t *testing.T) {
			m := NewMemory()
			require.NoError(t, SaveJSON(ctx, m, key, tc.value))
			assert.Equal(t, tc.value, tc.load(ctx, m, key))
		})
	}
}

package honey

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/domain"
)

var start = time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

func newTestBlender() *Blender {
	return NewBlender(clock.NewFake(start), crop.DefaultRegistry(), 100, 0.8)
}

func event(cropID string, nectar float64) domain.NectarEvent {
	return domain.NectarEvent{CropID: cropID, NectarCollected: nectar, Timestamp: start}
}

func TestAddNectar_BlendScenario(t *testing.T) {
	b := newTestBlender()

	prod, completed, err := b.AddNectar(nil, event(crop.Tomato, 40))
	require.NoError(t, err)
	assert.False(t, completed)

	prod, completed, err = b.AddNectar(prod, event(crop.Sunflower, 60))
	require.NoError(t, err)
	assert.False(t, completed)

	batch := prod.CurrentBatch
	require.NotNil(t, batch)
	assert.InDelta(t, 80.0, batch.Amount, 1e-9)
	assert.Equal(t, crop.Sunflower, batch.DominantSource)
	assert.Equal(t, "bright floral", batch.DominantFlavor)
	assert.InDelta(t, 55*0.4+85*0.6, batch.Quality, 1e-9)
	assert.Equal(t, "#F0B727", batch.Color)
	assert.Equal(t, "Sunflower & Tomato Blossom blend", batch.Description)
	assert.False(t, batch.IsComplete)
	assert.InDelta(t, 100.0, prod.DailyNectarCollection["2025-06-01"], 1e-9)
}

func TestAddNectar_DoesNotMutateInput(t *testing.T) {
	b := newTestBlender()
	prod, _, err := b.AddNectar(nil, event(crop.Tomato, 10))
	require.NoError(t, err)

	_, _, err = b.AddNectar(prod, event(crop.Tomato, 10))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, prod.CurrentBatch.Amount, 1e-9)
	assert.InDelta(t, 10.0, prod.CurrentBatch.Sources[crop.Tomato], 1e-9)
}

func TestAddNectar_ConversionHoldsForAnySequence(t *testing.T) {
	b := newTestBlender()
	r := rand.New(rand.NewPCG(7, 11))
	ids := []string{crop.Tomato, crop.Carrot, crop.Sunflower}

	var prod *domain.HoneyProduction
	sum := 0.0
	for i := 0; i < 200; i++ {
		n := r.Float64() * 5
		sum += n
		var err error
		prod, _, err = b.AddNectar(prod, event(ids[r.IntN(len(ids))], n))
		require.NoError(t, err)
	}
	assert.InDelta(t, sum*0.8, prod.CurrentBatch.Amount, 1e-6)
}

func TestAddNectar_Completes(t *testing.T) {
	b := newTestBlender()

	prod, completed, err := b.AddNectar(nil, event(crop.Sunflower, 120))
	require.NoError(t, err)
	assert.False(t, completed)

	prod, completed, err = b.AddNectar(prod, event(crop.Sunflower, 10))
	require.NoError(t, err)
	assert.True(t, completed)
	assert.True(t, prod.CurrentBatch.IsComplete)
	require.NotNil(t, prod.CurrentBatch.CompletedAt)

	_, completed, err = b.AddNectar(prod, event(crop.Sunflower, 1))
	require.NoError(t, err)
	assert.False(t, completed, "completion is reported once")
}

func TestAddNectar_Rejects(t *testing.T) {
	b := newTestBlender()

	_, _, err := b.AddNectar(nil, event("cactus", 5))
	assert.ErrorIs(t, err, domain.ErrCropNotFound)

	prod, _, err := b.AddNectar(nil, event(crop.Tomato, 0))
	require.NoError(t, err)
	assert.Nil(t, prod)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Pure Sunflower honey", describe([]string{"Sunflower"}))
	assert.Equal(t, "A & B & C blend", describe([]string{"A", "B", "C"}))
	assert.Equal(t, DescWildflower, describe([]string{"A", "B", "C", "D"}))
}

func TestRankSources_TiesBreakByID(t *testing.T) {
	assert.Equal(t, []string{"carrot", "tomato", "corn"}, rankSources(map[string]float64{"tomato": 5, "carrot": 5, "corn": 1}))
}

func TestBottle(t *testing.T) {
	b := newTestBlender()

	_, _, err := b.Bottle(domain.DefaultHiveID, nil)
	assert.ErrorIs(t, err, domain.ErrNoBatchInProgress)

	partial, _, err := b.AddNectar(nil, event(crop.Sunflower, 50))
	require.NoError(t, err)
	same, _, err := b.Bottle(domain.DefaultHiveID, partial)
	assert.ErrorIs(t, err, domain.ErrBatchNotComplete)
	assert.Same(t, partial, same)

	full, _, err := b.AddNectar(partial, event(crop.Sunflower, 80))
	require.NoError(t, err)

	next, res, err := b.Bottle(domain.DefaultHiveID, full)
	require.NoError(t, err)
	assert.InDelta(t, 104.0, res.Batch.Amount, 1e-9)
	assert.Equal(t, 10, res.Jars)
	assert.Len(t, next.CompletedBatches, 1)
	assert.InDelta(t, 104.0, next.TotalHoneyStored, 1e-9)
	require.NotNil(t, next.CurrentBatch)
	assert.Zero(t, next.CurrentBatch.Amount)
	assert.Empty(t, next.CurrentBatch.Sources)
	assert.NotEqual(t, res.Batch.ID, next.CurrentBatch.ID)
	assert.Empty(t, full.CompletedBatches)
}

func TestSummarize(t *testing.T) {
	b := newTestBlender()
	prod, _, err := b.AddNectar(nil, event(crop.Sunflower, 50))
	require.NoError(t, err)

	s := b.Summarize("h1", prod)
	assert.Equal(t, "h1", s.HiveID)
	assert.InDelta(t, 40.0, s.CurrentAmount, 1e-9)
	assert.InDelta(t, 40.0, s.Progress, 1e-9)
	assert.Equal(t, RatingPremium, s.QualityRating)
	assert.False(t, s.ReadyToBottle)

	empty := b.Summarize("h2", nil)
	assert.Equal(t, RatingBasic, empty.QualityRating)
}

func TestQualityRating(t *testing.T) {
	assert.Equal(t, RatingPremium, QualityRating(80))
	assert.Equal(t, RatingGood, QualityRating(79.9))
	assert.Equal(t, RatingFair, QualityRating(40))
	assert.Equal(t, RatingBasic, QualityRating(39))
}

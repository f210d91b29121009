package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/domain"
)

func TestCheckForBeeHatching_BelowFirstMilestone(t *testing.T) {
	l := newTestLedger()
	out := l.CheckForBeeHatching(9, l.DefaultHives(), nil)

	assert.False(t, out.Recorded)
	assert.Equal(t, 0, out.Result.NewBeesHatched)
	assert.Empty(t, out.Milestones)
}

func TestCheckForBeeHatching_AwardsOnce(t *testing.T) {
	l := newTestLedger()
	hives := l.DefaultHives()

	first := l.CheckForBeeHatching(12, hives, nil)
	require.True(t, first.Recorded)
	assert.Equal(t, 1, first.Result.NewBeesHatched)
	assert.Equal(t, domain.DefaultHiveID, first.Result.TargetHiveID)
	assert.Equal(t, "Your pollination efforts have attracted a new bee to your default-hive! (Score: 12)", first.Result.Message)
	assert.True(t, first.Result.ShouldShowAlert)
	assert.Equal(t, 1, first.Hives[0].BeeCount)
	require.Len(t, first.Milestones, 1)
	assert.Equal(t, 10, first.Milestones[0].Score)
	assert.Equal(t, 1, first.Milestones[0].BeesAwarded)

	second := l.CheckForBeeHatching(12, first.Hives, first.Milestones)
	assert.False(t, second.Recorded)
	assert.Equal(t, 0, second.Result.NewBeesHatched)
	assert.Equal(t, 1, second.Hives[0].BeeCount)
	assert.Len(t, second.Milestones, 1)
}

func TestCheckForBeeHatching_Scenario47To52(t *testing.T) {
	l := newTestLedger()
	hives := []domain.Hive{{ID: domain.DefaultHiveID, BeeCount: 4, Level: 1}}
	milestones := []domain.PollinationMilestone{{Score: 40, BeesAwarded: 4}}

	stale := l.CheckForBeeHatching(47, hives, milestones)
	assert.False(t, stale.Recorded)
	assert.Equal(t, 4, stale.Hives[0].BeeCount)

	crossed := l.CheckForBeeHatching(52, hives, milestones)
	require.True(t, crossed.Recorded)
	assert.Equal(t, 1, crossed.Result.NewBeesHatched)
	assert.Equal(t, 5, crossed.Hives[0].BeeCount)
	assert.Equal(t, 50, crossed.Milestones[len(crossed.Milestones)-1].Score)
}

func TestCheckForBeeHatching_MultipleBeesSpillAcrossHives(t *testing.T) {
	l := newTestLedger()
	hives := []domain.Hive{
		{ID: "a", BeeCount: 7},
		{ID: "b", BeeCount: 6},
	}

	out := l.CheckForBeeHatching(200, hives, nil)
	require.True(t, out.Recorded)
	// deserved 20, have 13, free capacity 3+4
	assert.Equal(t, 7, out.Result.NewBeesHatched)
	assert.Equal(t, "b", out.Result.TargetHiveID)
	assert.Equal(t, "Your pollination efforts have attracted 7 new bees! (Score: 200)", out.Result.Message)
	for _, h := range out.Hives {
		assert.Equal(t, 10, h.BeeCount)
		assert.LessOrEqual(t, h.BeeCount, l.Capacity(h))
	}
}

func TestCheckForBeeHatching_TieKeepsFirst(t *testing.T) {
	l := newTestLedger()
	out := l.CheckForBeeHatching(10, []domain.Hive{{ID: "x"}, {ID: "y"}}, nil)
	assert.Equal(t, "x", out.Result.TargetHiveID)
}

func TestCheckForBeeHatching_HivesFull(t *testing.T) {
	l := newTestLedger()
	hives := []domain.Hive{{ID: domain.DefaultHiveID, BeeCount: 10}}

	out := l.CheckForBeeHatching(130, hives, nil)
	require.True(t, out.Recorded)
	assert.True(t, out.Result.HivesFull)
	assert.Equal(t, 0, out.Result.NewBeesHatched)
	assert.Equal(t, "Your hives are at full capacity! Build more hives to house new bees. (Score: 130)", out.Result.Message)
	require.Len(t, out.Milestones, 1)
	assert.Equal(t, 130, out.Milestones[0].Score)
	assert.Equal(t, 0, out.Milestones[0].BeesAwarded)

	again := l.CheckForBeeHatching(130, out.Hives, out.Milestones)
	assert.False(t, again.Recorded)
}

func TestCheckForBeeHatching_NothingDeservedStillRecords(t *testing.T) {
	l := newTestLedger()
	hives := []domain.Hive{{ID: domain.DefaultHiveID, BeeCount: 5}}

	out := l.CheckForBeeHatching(30, hives, nil)
	assert.True(t, out.Recorded)
	assert.False(t, out.Result.ShouldShowAlert)
	assert.Equal(t, 5, out.Hives[0].BeeCount)
}

func TestRecordHarvest(t *testing.T) {
	pf := NewPollinationFactor(0)
	assert.Equal(t, DefaultMilestoneInterval, pf.Threshold)

	for i := 1; i <= 3; i++ {
		prev := pf.Factor
		pf = RecordHarvest(pf)
		assert.Greater(t, pf.Factor, prev)
		assert.Equal(t, i, pf.TotalHarvests)
	}
}

func TestDistribute_StopsAtCapacity(t *testing.T) {
	l := newTestLedger()
	hives := []domain.Hive{
		{ID: "a", BeeCount: 9},
		{ID: "b", Level: 2, BeeCount: 15},
	}

	out, target, placed := l.distribute(hives, 50)
	assert.Equal(t, 6, placed)
	assert.Equal(t, "b", target)
	for _, h := range out {
		assert.Equal(t, l.Capacity(h), h.BeeCount)
	}
	assert.Equal(t, 9, hives[0].BeeCount, "input is not mutated")
	assert.Equal(t, 15, hives[1].BeeCount)
}

func TestCheckForBeeHatching_AwardsOnlyPlacedBees(t *testing.T) {
	l := newTestLedger()
	hives := []domain.Hive{
		{ID: "a", BeeCount: 9},
		{ID: "b", Level: 2, BeeCount: 15},
	}

	out := l.CheckForBeeHatching(400, hives, nil)
	require.True(t, out.Recorded)
	assert.Equal(t, 6, out.Result.NewBeesHatched)
	assert.Equal(t, 6, out.Milestones[0].BeesAwarded)
	assert.Equal(t, 10, out.Hives[0].BeeCount)
	assert.Equal(t, 20, out.Hives[1].BeeCount)
}

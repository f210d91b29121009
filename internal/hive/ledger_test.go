package hive

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
)

var start = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestLedger() *Ledger {
	return NewLedger(clock.NewFake(start), 10, 10, 100)
}

func TestCapacity(t *testing.T) {
	l := newTestLedger()

	tests := []struct {
		name string
		hive domain.Hive
		want int
	}{
		{"unset level", domain.Hive{}, 10},
		{"level 1", domain.Hive{Level: 1}, 10},
		{"level 2", domain.Hive{Level: 2}, 20},
		{"level 3", domain.Hive{Level: 3}, 30},
		{"level 4", domain.Hive{Level: 4}, 40},
		{"level 9", domain.Hive{Level: 9}, 40},
		{"explicit max wins", domain.Hive{Level: 3, MaxCapacity: 12}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Capacity(tt.hive))
		})
	}
}

func TestAddBees(t *testing.T) {
	l := newTestLedger()
	hives := l.DefaultHives()

	next, err := l.AddBees(hives, domain.DefaultHiveID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, next[0].BeeCount)
	assert.Equal(t, 0, hives[0].BeeCount, "input must not be mutated")

	_, err = l.AddBees(next, domain.DefaultHiveID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidCount)

	_, err = l.AddBees(next, domain.DefaultHiveID, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidCount)

	_, err = l.AddBees(next, "missing", 1)
	assert.ErrorIs(t, err, domain.ErrHiveNotFound)

	same, err := l.AddBees(next, domain.DefaultHiveID, 8)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 3, same[0].BeeCount)
	for _, h := range same {
		assert.LessOrEqual(t, h.BeeCount, l.Capacity(h))
	}
}

func TestBuild(t *testing.T) {
	l := newTestLedger()
	hives := l.DefaultHives()
	inv := domain.NewInventory()
	inv.Coins = 150

	next, after, built, err := l.Build(hives, inv)
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.True(t, strings.HasPrefix(built.ID, "hive-"))
	assert.Equal(t, 0, built.BeeCount)
	assert.Equal(t, start, built.CreatedAt)
	assert.Equal(t, 50, after.Coins)
	assert.Equal(t, 150, inv.Coins)

	_, _, _, err = l.Build(next, after)
	assert.ErrorIs(t, err, domain.ErrInsufficientCoins)
}

func TestSummarize(t *testing.T) {
	l := newTestLedger()
	s := l.Summarize([]domain.Hive{
		{ID: "a", BeeCount: 4},
		{ID: "b", BeeCount: 10},
		{ID: "c", BeeCount: 5, Level: 2},
	})
	assert.Equal(t, CapacitySummary{TotalCapacity: 40, CurrentBees: 19, AvailableCapacity: 21}, s)
}

func TestSortedIDs(t *testing.T) {
	ids := SortedIDs([]domain.Hive{{ID: "hive-b"}, {ID: "default-hive"}, {ID: "hive-a"}})
	assert.Equal(t, []string{"default-hive", "hive-a", "hive-b"}, ids)
}

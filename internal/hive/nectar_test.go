package hive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Apiary_Go/internal/domain"
)

func TestDaylight(t *testing.T) {
	d := DefaultDaylight()
	day := func(h int) time.Time { return time.Date(2025, 6, 1, h, 30, 0, 0, time.UTC) }

	assert.False(t, d.Contains(day(5)))
	assert.True(t, d.Contains(day(6)))
	assert.True(t, d.Contains(day(17)))
	assert.False(t, d.Contains(day(18)))
}

func TestAccumulateNectar(t *testing.T) {
	hives := []domain.Hive{
		{ID: "a", BeeCount: 3},
		{ID: "b", BeeCount: 0},
		{ID: "c", BeeCount: 40},
	}
	levels := map[string]float64{"a": 10, "gone": 55}

	out := AccumulateNectar(levels, hives, 2*time.Minute, 100)
	assert.Equal(t, map[string]float64{"a": 16, "b": 0, "c": 80}, out)
	assert.Equal(t, 10.0, levels["a"], "input must not be mutated")

	capped := AccumulateNectar(out, hives, 5*time.Minute, 100)
	assert.Equal(t, 100.0, capped["c"])
	assert.Equal(t, 31.0, capped["a"])
}

func TestAddNectarBonus(t *testing.T) {
	out := AddNectarBonus(map[string]float64{"a": 95}, "a", 20, 100)
	assert.Equal(t, 100.0, out["a"])

	out = AddNectarBonus(out, "b", 5, 100)
	assert.Equal(t, 5.0, out["b"])

	out = AddNectarBonus(out, "b", -5, 100)
	assert.Equal(t, 5.0, out["b"])
}

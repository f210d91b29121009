package plot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Apiary_Go/internal/domain"
)

func TestConsumeWater(t *testing.T) {
	ws, err := ConsumeWater(domain.WaterSystem{Current: 1, Max: 100})
	assert.NoError(t, err)
	assert.Equal(t, 0, ws.Current)

	_, err = ConsumeWater(ws)
	assert.ErrorIs(t, err, domain.ErrInsufficientWater)
}

func TestRefill(t *testing.T) {
	ws := domain.WaterSystem{Current: 20, Max: 100, LastRefillAt: start}

	same, refilled := Refill(ws, start.Add(30*time.Minute), time.Hour)
	assert.False(t, refilled)
	assert.Equal(t, 20, same.Current)

	full, refilled := Refill(ws, start.Add(time.Hour), time.Hour)
	assert.True(t, refilled)
	assert.Equal(t, 100, full.Current)
	assert.Equal(t, start.Add(time.Hour), full.LastRefillAt)
}

func TestRain(t *testing.T) {
	ws := domain.WaterSystem{Current: 50, Max: 100}

	assert.Equal(t, 70, Rain(ws, 2*time.Minute, 10).Current)
	assert.Equal(t, 100, Rain(ws, 10*time.Minute, 10).Current)
	assert.Equal(t, 50, Rain(ws, 2*time.Second, 10).Current)
}

func TestNewWaterSystem(t *testing.T) {
	ws := NewWaterSystem(0, start)
	assert.Equal(t, DefaultWaterMax, ws.Current)
	assert.Equal(t, DefaultWaterMax, ws.Max)
}

package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/domain"
)

func TestNew(t *testing.T) {
	assert.IsType(t, Neutral{}, New("", 1))
	assert.IsType(t, Neutral{}, New("bogus", 1))
	assert.IsType(t, &Synthetic{}, New("Synthetic", 1))
}

func TestNeutral_Unknown(t *testing.T) {
	w, err := Neutral{}.Current(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestSynthetic_DeterministicAndBounded(t *testing.T) {
	a := NewSynthetic(42)
	b := NewSynthetic(42)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 24*60; i++ {
		at := start.Add(time.Duration(i) * 6 * time.Hour)
		wa, err := a.Current(context.Background(), at)
		require.NoError(t, err)
		wb, _ := b.Current(context.Background(), at)

		require.Equal(t, wa, wb, "same seed and time must agree at %s", at)
		assert.GreaterOrEqual(t, wa.Precipitation, 0.0)
		assert.LessOrEqual(t, wa.Precipitation, 100.0)
		assert.GreaterOrEqual(t, wa.WindSpeed, 0.0)
		assert.LessOrEqual(t, wa.WindSpeed, MaxWind)
		assert.Greater(t, wa.Temperature, -30.0)
		assert.Less(t, wa.Temperature, 50.0)
		if wa.Precipitation > 0 {
			assert.True(t, wa.IsRaining())
		}
	}
}

func TestCondition(t *testing.T) {
	tests := []struct {
		name  string
		w     domain.Weather
		cloud float64
		hour  int
		want  domain.WeatherCondition
	}{
		{"storm", domain.Weather{Precipitation: 60, WindSpeed: 30}, 0, 12, domain.WeatherStormy},
		{"heavy rain no wind", domain.Weather{Precipitation: 60, WindSpeed: 5}, 0, 12, domain.WeatherRainy},
		{"overcast", domain.Weather{}, 0.8, 12, domain.WeatherCloudy},
		{"night", domain.Weather{}, 0.1, 22, domain.WeatherClear},
		{"day", domain.Weather{}, 0.1, 12, domain.WeatherSunny},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, condition(tt.w, tt.cloud, tt.hour))
		})
	}
}

func TestSeasonFor(t *testing.T) {
	assert.Equal(t, domain.SeasonWinter, SeasonFor(time.January))
	assert.Equal(t, domain.SeasonSpring, SeasonFor(time.April))
	assert.Equal(t, domain.SeasonSummer, SeasonFor(time.July))
	assert.Equal(t, domain.SeasonFall, SeasonFor(time.October))
	assert.Equal(t, domain.SeasonWinter, SeasonFor(time.December))
}

func TestParseSeason(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	s, ok := ParseSeason("", now)
	assert.True(t, ok)
	assert.Equal(t, domain.SeasonSummer, s)

	s, ok = ParseSeason(" Winter ", now)
	assert.True(t, ok)
	assert.Equal(t, domain.SeasonWinter, s)

	_, ok = ParseSeason("monsoon", now)
	assert.False(t, ok)
}

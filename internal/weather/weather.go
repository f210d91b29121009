// Package weather supplies readings for the pollinator-quality score and the rain refill.
package weather

import (
	"context"
	"math"
	"strings"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// Source names accepted by New
const (
	SourceNeutral   = "neutral"
	SourceSynthetic = "synthetic"
)

// Feed returns the weather at a moment. A nil reading means "unknown" and scores neutral.
type Feed interface {
	Current(ctx context.Context, at time.Time) (*domain.Weather, error)
}

// New picks a feed by name, falling back to Neutral
func New(source string, seed int64) Feed {
	if strings.EqualFold(source, SourceSynthetic) {
		return NewSynthetic(seed)
	}
	return Neutral{}
}

// Neutral never knows the weather
type Neutral struct{}

func (Neutral) Current(context.Context, time.Time) (*domain.Weather, error) {
	return nil, nil
}

// Synthetic derives smooth, repeatable weather from simplex noise over (day, hour)
type Synthetic struct {
	temp  opensimplex.Noise
	rain  opensimplex.Noise
	wind  opensimplex.Noise
	cloud opensimplex.Noise
}

// NewSynthetic builds independent noise layers from seed
func NewSynthetic(seed int64) *Synthetic {
	return &Synthetic{
		temp:  opensimplex.NewNormalized(seed),
		rain:  opensimplex.NewNormalized(seed + 1),
		wind:  opensimplex.NewNormalized(seed + 2),
		cloud: opensimplex.NewNormalized(seed + 3),
	}
}

func (s *Synthetic) Current(_ context.Context, at time.Time) (*domain.Weather, error) {
	day := float64(at.YearDay())
	hour := float64(at.Hour()) + float64(at.Minute())/60

	// warmest mid-afternoon, coolest before dawn
	diurnal := DiurnalSwing * math.Sin((hour-9)/24*2*math.Pi)
	temp := seasonalBase[SeasonFor(at.Month())] + diurnal +
		(octave(s.temp, day*0.15, hour*0.05)-0.5)*TempNoiseRange

	rain := octave(s.rain, day*0.3, hour*0.1)
	precip := 0.0
	if rain > RainThreshold {
		precip = (rain - RainThreshold) / (1 - RainThreshold) * 100
	}
	wind := octave(s.wind, day*0.4, hour*0.2) * MaxWind

	w := domain.Weather{
		Temperature:   round1(temp),
		Precipitation: round1(precip),
		WindSpeed:     round1(wind),
	}
	w.Condition = condition(w, octave(s.cloud, day*0.2, hour*0.1), at.Hour())
	return &w, nil
}

func condition(w domain.Weather, cloud float64, hour int) domain.WeatherCondition {
	switch {
	case w.Precipitation >= StormPrecipitation && w.WindSpeed >= StormWind:
		return domain.WeatherStormy
	case w.Precipitation > 0:
		return domain.WeatherRainy
	case cloud > CloudThreshold:
		return domain.WeatherCloudy
	case hour < 6 || hour >= 18:
		return domain.WeatherClear
	default:
		return domain.WeatherSunny
	}
}

// SeasonFor maps a month to its northern-hemisphere season
func SeasonFor(m time.Month) domain.Season {
	switch m {
	case time.March, time.April, time.May:
		return domain.SeasonSpring
	case time.June, time.July, time.August:
		return domain.SeasonSummer
	case time.September, time.October, time.November:
		return domain.SeasonFall
	default:
		return domain.SeasonWinter
	}
}

// ParseSeason accepts a season name, or "" for the season at now
func ParseSeason(name string, now time.Time) (domain.Season, bool) {
	switch s := domain.Season(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return SeasonFor(now.Month()), true
	case domain.SeasonSpring, domain.SeasonSummer, domain.SeasonFall, domain.SeasonWinter:
		return s, true
	default:
		return "", false
	}
}

// octave layers two frequencies of noise, normalized to [0,1]
func octave(n opensimplex.Noise, x, y float64) float64 {
	return (n.Eval2(x, y) + 0.5*n.Eval2(x*2, y*2)) / 1.5
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

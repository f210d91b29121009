// Package pollinator scores how well the apiary can pollinate right now.
// Every function here is pure; nothing is persisted.
package pollinator

import (
	"math"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// Score computes the composite pollinator quality. A nil weather uses the neutral factor.
func Score(hives []domain.Hive, weather *domain.Weather, season domain.Season) domain.PollinatorQuality {
	f := domain.PollinatorFactors{
		Weather:     NeutralScore,
		Population:  PopulationFactor(hives),
		Health:      HealthFactor(hives),
		Resources:   ResourceFactor(hives),
		Seasonality: SeasonalityFactor(season),
	}
	if weather != nil {
		f.Weather = WeatherFactor(*weather)
	}

	overall := clamp(f.Weather*WeightWeather +
		f.Population*WeightPopulation +
		f.Health*WeightHealth +
		f.Resources*WeightResources +
		f.Seasonality*WeightSeasonality)

	return domain.PollinatorQuality{
		Overall:   overall,
		Diversity: f.Population,
		Health:    f.Health,
		Activity:  clamp((f.Weather + f.Seasonality + f.Resources) / 3),
		Rating:    Rating(overall),
		Factors:   f,
	}
}

// WeatherFactor scores temperature, precipitation, wind and sky condition
func WeatherFactor(w domain.Weather) float64 {
	score := 50.0

	switch {
	case w.Temperature >= IdealTempMin && w.Temperature <= IdealTempMax:
		score += 25
	case w.Temperature >= GoodTempMin && w.Temperature <= GoodTempMax:
		score += 15
	default:
		score -= 20
	}
	if w.Temperature < ExtremeColdTemp || w.Temperature > ExtremeHotTemp {
		score -= 30
	}

	switch {
	case w.Precipitation <= 0:
		score += 15
	case w.Precipitation < LightRainLimit:
		score += 5
	case w.Precipitation < ModerateRainLimit:
		score -= 15
	default:
		score -= 30
	}

	switch {
	case w.WindSpeed < CalmWindLimit:
		score += 10
	case w.WindSpeed < BreezyWindLimit:
	case w.WindSpeed < WindyLimit:
		score -= 15
	default:
		score -= 25
	}

	switch w.Condition {
	case domain.WeatherSunny, domain.WeatherClear:
		score += 10
	case domain.WeatherRainy, domain.WeatherStormy:
		score -= 20
	}

	return clamp(score)
}

// PopulationFactor scores workers, queens, brood and drones averaged over hives
func PopulationFactor(hives []domain.Hive) float64 {
	if len(hives) == 0 {
		return 0
	}

	var workers, drones, brood, queens float64
	for _, h := range hives {
		p := population(h)
		workers += float64(p.Workers)
		drones += float64(p.Drones)
		brood += float64(p.Brood)
		if p.Queen {
			queens++
		}
	}
	n := float64(len(hives))
	avgWorkers, avgDrones, avgBrood := workers/n, drones/n, brood/n

	score := 0.0
	switch {
	case avgWorkers >= 500:
		score += 40
	case avgWorkers >= 300:
		score += 30
	case avgWorkers >= 100:
		score += 20
	default:
		score += 10
	}

	score += queens / n * MaxQueenPoints

	switch {
	case avgBrood >= 80:
		score += 20
	case avgBrood >= 50:
		score += 15
	case avgBrood >= 30:
		score += 10
	default:
		score += 5
	}

	switch {
	case avgDrones >= 20:
		score += 10
	case avgDrones >= 10:
		score += 5
	}

	return clamp(score)
}

// HealthFactor averages the health tiers and penalizes each critical hive
func HealthFactor(hives []domain.Hive) float64 {
	if len(hives) == 0 {
		return 0
	}

	total, critical := 0.0, 0
	for _, h := range hives {
		health := h.Health
		if health == "" {
			health = domain.HiveHealthGood
		}
		total += healthScores[health]
		if health == domain.HiveHealthCritical {
			critical++
		}
	}
	return clamp(math.Round(total/float64(len(hives)) - float64(critical)*CriticalPenalty))
}

// ResourceFactor is half the average stored pollen
func ResourceFactor(hives []domain.Hive) float64 {
	if len(hives) == 0 {
		return 0
	}

	total := 0.0
	for _, h := range hives {
		if h.Resources != nil {
			total += h.Resources.Pollen
		} else {
			total += DefaultPollen
		}
	}
	return clamp(total / float64(len(hives)) / 2)
}

// SeasonalityFactor is a fixed lookup; unknown seasons score zero
func SeasonalityFactor(s domain.Season) float64 {
	return seasonScores[s]
}

// Rating labels an overall score
func Rating(overall float64) string {
	switch {
	case overall >= 90:
		return RatingExcellent
	case overall >= 75:
		return RatingGreat
	case overall >= 60:
		return RatingGood
	case overall >= 40:
		return RatingFair
	case overall >= 20:
		return RatingPoor
	default:
		return RatingCritical
	}
}

// population returns the detailed composition, deriving one from beeCount when absent
func population(h domain.Hive) domain.BeePopulation {
	if h.Population != nil {
		return *h.Population
	}
	return domain.BeePopulation{
		Workers: h.BeeCount * WorkersPerBee,
		Drones:  h.BeeCount * DronesPerBee,
		Brood:   h.BeeCount * BroodPerBee,
		Queen:   h.BeeCount > 0,
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

package weather

import "github.com/osse101/Apiary_Go/internal/domain"

// Synthetic weather shape
const (
	DiurnalSwing       = 6.0
	TempNoiseRange     = 14.0
	RainThreshold      = 0.62
	MaxWind            = 40.0
	StormPrecipitation = 50.0
	StormWind          = 25.0
	CloudThreshold     = 0.6
)

// Mean temperature (°C) by season
var seasonalBase = map[domain.Season]float64{
	domain.SeasonSpring: 14,
	domain.SeasonSummer: 24,
	domain.SeasonFall:   13,
	domain.SeasonWinter: 3,
}

package pollinator

import "github.com/osse101/Apiary_Go/internal/domain"

// Score weights for the composite
const (
	WeightWeather     = 0.25
	WeightPopulation  = 0.25
	WeightHealth      = 0.20
	WeightResources   = 0.20
	WeightSeasonality = 0.10
)

// NeutralScore is used when no weather feed is available
const NeutralScore = 50.0

// Weather bands
const (
	IdealTempMin      = 15.0
	IdealTempMax      = 27.0
	GoodTempMin       = 10.0
	GoodTempMax       = 30.0
	ExtremeColdTemp   = 5.0
	ExtremeHotTemp    = 35.0
	LightRainLimit    = 20.0
	ModerateRainLimit = 50.0
	CalmWindLimit     = 10.0
	BreezyWindLimit   = 15.0
	WindyLimit        = 25.0
)

// Derived population when a hive carries only a bee count
const (
	WorkersPerBee   = 50
	DronesPerBee    = 2
	BroodPerBee     = 8
	DefaultPollen   = 50.0
	CriticalPenalty = 10.0
	MaxQueenPoints  = 30.0
)

// Ratings
const (
	RatingExcellent = "Excellent"
	RatingGreat     = "Great"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
	RatingCritical  = "Critical"
)

var healthScores = map[domain.HiveHealth]float64{
	domain.HiveHealthExcellent: 100,
	domain.HiveHealthGood:      75,
	domain.HiveHealthFair:      50,
	domain.HiveHealthPoor:      25,
	domain.HiveHealthCritical:  10,
}

var seasonScores = map[domain.Season]float64{
	domain.SeasonSpring: 85,
	domain.SeasonSummer: 100,
	domain.SeasonFall:   60,
	domain.SeasonWinter: 20,
}

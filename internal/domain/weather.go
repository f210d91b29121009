package domain

// WeatherCondition is the coarse sky condition
type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherClear  WeatherCondition = "clear"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherStormy WeatherCondition = "stormy"
)

// Weather is a point-in-time reading
type Weather struct {
	Temperature   float64          `json:"temperature"`
	Precipitation float64          `json:"precipitation"`
	WindSpeed     float64          `json:"windSpeed"`
	Condition     WeatherCondition `json:"condition"`
}

// IsRaining reports whether the condition refills water
func (w Weather) IsRaining() bool {
	return w.Condition == WeatherRainy || w.Condition == WeatherStormy
}

// Season drives the seasonality factor
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// PollinatorQuality is the composite score, each field 0-100
type PollinatorQuality struct {
	Overall   float64           `json:"overall"`
	Diversity float64           `json:"diversity"`
	Health    float64           `json:"health"`
	Activity  float64           `json:"activity"`
	Rating    string            `json:"rating"`
	Factors   PollinatorFactors `json:"factors"`
}

// PollinatorFactors are the raw inputs to the composite score
type PollinatorFactors struct {
	Weather     float64 `json:"weather"`
	Population  float64 `json:"population"`
	Health      float64 `json:"health"`
	Resources   float64 `json:"resources"`
	Seasonality float64 `json:"seasonality"`
}

package domain

// CropCategory groups crops for display
type CropCategory string

const (
	CropCategoryFruit     CropCategory = "fruit"
	CropCategoryVegetable CropCategory = "vegetable"
	CropCategoryGrain     CropCategory = "grain"
	CropCategoryFlower    CropCategory = "flower"
)

// HoneyProfile describes the honey a crop's nectar produces
type HoneyProfile struct {
	Type        string `json:"type" yaml:"type"`
	Flavor      string `json:"flavor" yaml:"flavor"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description" yaml:"description"`
}

// PollenProfile describes the pollen a crop yields per visit
type PollenProfile struct {
	Amount  float64 `json:"amount" yaml:"amount"`
	Quality float64 `json:"quality" yaml:"quality"`
	Color   string  `json:"color" yaml:"color"`
}

// HourRange is a half-open [Start, End) range of hours in a day
type HourRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether hour falls inside the range
func (r HourRange) Contains(hour int) bool {
	return hour >= r.Start && hour < r.End
}

// CropDefinition is an immutable catalog record
type CropDefinition struct {
	ID              string        `json:"id" yaml:"id"`
	Name            string        `json:"name" yaml:"name"`
	Category        CropCategory  `json:"category" yaml:"category"`
	SellPrice       int           `json:"sellPrice" yaml:"sell_price"`
	SeedCost        int           `json:"seedCost" yaml:"seed_cost"`
	ProducesNectar  bool          `json:"producesNectar" yaml:"produces_nectar"`
	NectarAmount    float64       `json:"nectarAmount" yaml:"nectar_amount"`
	NectarQuality   float64       `json:"nectarQuality" yaml:"nectar_quality"`
	HoneyProfile    HoneyProfile  `json:"honeyProfile" yaml:"honey_profile"`
	Pollen          PollenProfile `json:"pollen" yaml:"pollen"`
	BeeAttraction   int           `json:"beeAttraction" yaml:"bee_attraction"`
	PeakNectarHours HourRange     `json:"peakNectarHours" yaml:"peak_nectar_hours"`
}

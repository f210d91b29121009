package crop

import "github.com/osse101/Apiary_Go/internal/domain"

// Crop ids in the default catalog
const (
	Tomato    = "tomato"
	Carrot    = "carrot"
	Wheat     = "wheat"
	Corn      = "corn"
	Sunflower = "sunflower"
)

// Nectar taper outside peak hours
const (
	OffPeakTaperPerHour = 0.15
	OffPeakFloor        = 0.25
)

// Maturity multipliers on the 0-3 honey stage scale
const (
	HoneyStageMature     = 3
	HoneyStageFlowering  = 2
	MatureMultiplier     = 1.0
	FloweringMultiplier  = 0.6
	MaxSuggestions       = 3
	SchemaNameCatalog    = "crop_catalog"
	LogMsgCatalogLoaded  = "Crop catalog loaded"
	LogMsgCatalogDefault = "Using built-in crop catalog"
)

// DefaultCatalog is the built-in crop table
var DefaultCatalog = []domain.CropDefinition{
	{
		ID:             Tomato,
		Name:           "Tomato",
		Category:       domain.CropCategoryFruit,
		SellPrice:      15,
		SeedCost:       5,
		ProducesNectar: true,
		NectarAmount:   4,
		NectarQuality:  55,
		HoneyProfile: domain.HoneyProfile{
			Type:        "Tomato Blossom",
			Flavor:      "tangy",
			Color:       "#E8A33D",
			Description: "A bright, slightly savory honey with a green finish",
		},
		Pollen:          domain.PollenProfile{Amount: 3, Quality: 50, Color: "yellow"},
		BeeAttraction:   40,
		PeakNectarHours: domain.HourRange{Start: 8, End: 12},
	},
	{
		ID:             Carrot,
		Name:           "Carrot",
		Category:       domain.CropCategoryVegetable,
		SellPrice:      12,
		SeedCost:       4,
		ProducesNectar: true,
		NectarAmount:   3,
		NectarQuality:  60,
		HoneyProfile: domain.HoneyProfile{
			Type:        "Carrot Flower",
			Flavor:      "earthy",
			Color:       "#D98E32",
			Description: "Dark amber honey with an earthy, herbal depth",
		},
		Pollen:          domain.PollenProfile{Amount: 4, Quality: 55, Color: "orange"},
		BeeAttraction:   35,
		PeakNectarHours: domain.HourRange{Start: 10, End: 14},
	},
	{
		ID:              Wheat,
		Name:            "Wheat",
		Category:        domain.CropCategoryGrain,
		SellPrice:       8,
		SeedCost:        2,
		ProducesNectar:  false,
		Pollen:          domain.PollenProfile{Amount: 6, Quality: 40, Color: "pale yellow"},
		BeeAttraction:   10,
		PeakNectarHours: domain.HourRange{Start: 6, End: 10},
	},
	{
		ID:              Corn,
		Name:            "Corn",
		Category:        domain.CropCategoryVegetable,
		SellPrice:       10,
		SeedCost:        3,
		ProducesNectar:  false,
		Pollen:          domain.PollenProfile{Amount: 8, Quality: 45, Color: "gold"},
		BeeAttraction:   15,
		PeakNectarHours: domain.HourRange{Start: 7, End: 11},
	},
	{
		ID:             Sunflower,
		Name:           "Sunflower",
		Category:       domain.CropCategoryFlower,
		SellPrice:      20,
		SeedCost:       8,
		ProducesNectar: true,
		NectarAmount:   8,
		NectarQuality:  85,
		HoneyProfile: domain.HoneyProfile{
			Type:        "Sunflower",
			Flavor:      "bright floral",
			Color:       "#F5C518",
			Description: "Golden honey with a buttery, floral sweetness",
		},
		Pollen:          domain.PollenProfile{Amount: 7, Quality: 80, Color: "golden"},
		BeeAttraction:   90,
		PeakNectarHours: domain.HourRange{Start: 9, End: 15},
	},
}

package honey

// Honey production defaults
const (
	DefaultBatchThreshold = 100.0
	DefaultConversion     = 0.8
	DefaultBottleCapacity = 10.0
	HoneyPerJar           = 10.0
	MaxNamedSources       = 3
	DateLayout            = "2006-01-02"
)

// Grading thresholds
const (
	WildflowerShare  = 0.5
	SpecialtyShare   = 0.9
	SpecialtyQuality = 80.0
	LightLuminance   = 0.65
	AmberLuminance   = 0.45
)

// Quality rating bands
const (
	RatingPremium = "Premium"
	RatingGood    = "Good"
	RatingFair    = "Fair"
	RatingBasic   = "Basic"
)

// Blend descriptions
const (
	DescWildflower = "Wildflower blend"
	DescPureFormat = "Pure %s honey"
	DescEmpty      = "Empty batch"
)

// Log messages
const (
	LogMsgBatchCompleted = "Honey batch completed"
	LogMsgBatchBottled   = "Honey batch bottled"
	LogMsgNectarBottled  = "Nectar bottled"
)

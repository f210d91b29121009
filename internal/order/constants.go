package order

import "time"

// Economy defaults
const (
	DefaultMaxActive         = 3
	DefaultTTL               = 24 * time.Hour
	DefaultNectarChance      = 0.2
	DefaultGroupChance       = 0.3
	DefaultNectarBottlePrice = 50
	GroupRewardBonus         = 1.2
	MinGroupCrops            = 2
	MaxGroupCrops            = 3
)

// Affinity bonus and gain bounds
const (
	MinBonusPercentage  = 10
	MaxBonusPercentage  = 50
	MinAffinityGain     = 2
	MaxAffinityGain     = 5
	AffinityGainDivisor = 100.0
)

// Merchant ids
const (
	MerchantBaker     = "baker"
	MerchantChef      = "chef"
	MerchantBeekeeper = "beekeeper"
	MerchantGeneral   = "merchant"
	MerchantHerbalist = "herbalist"
)

// NectarSpecialty is the specialty tag for bottled nectar buyers
const NectarSpecialty = "nectar"

// Honey board defaults
const (
	DefaultHoneyOrdersPerDay = 3
	DefaultHoneyQuota        = 2
	DefaultHoneyReduction    = 50
	MinHoneyBottles          = 1
	MaxHoneyBottles          = 5
	HoneyDateLayout          = "2006-01-02"
	GlassBottleName          = "Glass Bottle"
)

// Generation skip reasons
const (
	SkipSameHour  = "same hour"
	SkipSlotsFull = "no slots available"
)

// Log messages
const (
	LogMsgOrdersGenerated = "Orders generated"
	LogMsgOrderFulfilled  = "Order fulfilled"
	LogMsgOrdersExpired   = "Expired orders dropped"
)

package storage

import (
	"slices"
	"time"
)

// Persisted keys. Each holds one self-contained JSON document.
const (
	KeyPlots                 = "plots"
	KeyInventory             = "inventory"
	KeyHives                 = "hives"
	KeyHiveNectarLevels      = "hive_nectar_levels"
	KeyPollinationFactor     = "pollination_factor"
	KeyActiveOrders          = "active_orders"
	KeyMerchantAffinity      = "merchant_affinity"
	KeyDailyClassifications  = "daily_classifications"
	KeyClassificationHistory = "classification_history"
	KeyPollinationMilestones = "pollination_milestones"
	KeyUserExperience        = "user_experience"
	KeyWaterSystem           = "water_system"
	KeyLastOrderGeneration   = "last_order_generation"
	KeyPollinationCursor     = "pollination_cursor"
	KeyHoneyOrders           = "honey_orders"
)

// CacheSchemaVersion invalidates cached entries written by an older layout
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgLoadFailed   = "Failed to load persisted state, using fallback"
	LogMsgDecodeFailed = "Persisted state is corrupt, using fallback"
	LogMsgSaveFailed   = "Failed to persist state, keeping in-memory value"
	LogMsgRemoveFailed = "Failed to remove persisted state"
	LogMsgEncodeFailed = "Failed to encode state"
)

var allKeys = []string{
	KeyPlots,
	KeyInventory,
	KeyHives,
	KeyHiveNectarLevels,
	KeyPollinationFactor,
	KeyActiveOrders,
	KeyMerchantAffinity,
	KeyDailyClassifications,
	KeyClassificationHistory,
	KeyPollinationMilestones,
	KeyUserExperience,
	KeyWaterSystem,
	KeyLastOrderGeneration,
	KeyPollinationCursor,
	KeyHoneyOrders,
}

// Keys lists every persisted key
func Keys() []string {
	return append([]string(nil), allKeys...)
}

// IsKnownKey reports whether key is one of the persisted keys
func IsKnownKey(key string) bool {
	return slices.Contains(allKeys, key)
}

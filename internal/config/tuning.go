package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds the balance constants. Fields missing from the file keep their defaults.
type Tuning struct {
	WaterInterval   time.Duration `yaml:"water_interval"`
	PlotTick        time.Duration `yaml:"plot_tick"`
	HiveNectarTick  time.Duration `yaml:"hive_nectar_tick"`
	OrderCheck      time.Duration `yaml:"order_check"`
	PollinationTick time.Duration `yaml:"pollination_tick"`
	WaterRefill     time.Duration `yaml:"water_refill"`

	BottleCapacity  float64 `yaml:"bottle_capacity"`
	HiveNectarMax   float64 `yaml:"hive_nectar_max"`
	BatchThreshold  float64 `yaml:"batch_threshold"`
	HoneyConversion float64 `yaml:"honey_conversion"`

	// ClassifyNectarBonus is added to a hive's raw nectar each time it is classified
	ClassifyNectarBonus float64 `yaml:"classify_nectar_bonus"`

	MaxActiveOrders   int           `yaml:"max_active_orders"`
	OrderTTL          time.Duration `yaml:"order_ttl"`
	NectarOrderChance float64       `yaml:"nectar_order_chance"`
	GroupOrderChance  float64       `yaml:"group_order_chance"`
	NectarOrderPrice  int           `yaml:"nectar_order_price"`

	HoneyOrdersPerDay   int `yaml:"honey_orders_per_day"`
	HoneyOrderQuota     int `yaml:"honey_order_quota"`
	HoneyOrderReduction int `yaml:"honey_order_reduction"`

	MilestoneInterval   int `yaml:"milestone_interval"`
	DefaultHiveCapacity int `yaml:"default_hive_capacity"`
	HiveCost            int `yaml:"hive_cost"`

	WaterMax            int `yaml:"water_max"`
	RainRefillPerMinute int `yaml:"rain_refill_per_minute"`
	DaylightStart       int `yaml:"daylight_start"`
	DaylightEnd         int `yaml:"daylight_end"`
}

// DefaultTuning returns the stock balance
func DefaultTuning() Tuning {
	return Tuning{
		WaterInterval:   10 * time.Second,
		PlotTick:        time.Second,
		HiveNectarTick:  time.Minute,
		OrderCheck:      time.Minute,
		PollinationTick: 5 * time.Minute,
		WaterRefill:     time.Hour,

		BottleCapacity:  10,
		HiveNectarMax:   100,
		BatchThreshold:  100,
		HoneyConversion: 0.8,

		ClassifyNectarBonus: 5,

		MaxActiveOrders:   3,
		OrderTTL:          24 * time.Hour,
		NectarOrderChance: 0.2,
		GroupOrderChance:  0.3,
		NectarOrderPrice:  50,

		HoneyOrdersPerDay:   3,
		HoneyOrderQuota:     2,
		HoneyOrderReduction: 50,

		MilestoneInterval:   10,
		DefaultHiveCapacity: 10,
		HiveCost:            100,

		WaterMax:            100,
		RainRefillPerMinute: 10,
		DaylightStart:       6,
		DaylightEnd:         18,
	}
}

// LoadTuning reads path over the defaults. A missing file yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with
func (t Tuning) Validate() error {
	durations := map[string]time.Duration{
		"water_interval":   t.WaterInterval,
		"plot_tick":        t.PlotTick,
		"hive_nectar_tick": t.HiveNectarTick,
		"order_check":      t.OrderCheck,
		"pollination_tick": t.PollinationTick,
		"water_refill":     t.WaterRefill,
		"order_ttl":        t.OrderTTL,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	numbers := map[string]float64{
		"bottle_capacity":        t.BottleCapacity,
		"hive_nectar_max":        t.HiveNectarMax,
		"batch_threshold":        t.BatchThreshold,
		"honey_conversion":       t.HoneyConversion,
		"max_active_orders":      float64(t.MaxActiveOrders),
		"nectar_order_price":     float64(t.NectarOrderPrice),
		"honey_orders_per_day":   float64(t.HoneyOrdersPerDay),
		"honey_order_quota":      float64(t.HoneyOrderQuota),
		"milestone_interval":     float64(t.MilestoneInterval),
		"default_hive_capacity":  float64(t.DefaultHiveCapacity),
		"hive_cost":              float64(t.HiveCost),
		"water_max":              float64(t.WaterMax),
		"rain_refill_per_minute": float64(t.RainRefillPerMinute),
	}
	for name, v := range numbers {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, v)
		}
	}

	if t.HoneyConversion > 1 {
		return fmt.Errorf("honey_conversion must be at most 1, got %v", t.HoneyConversion)
	}
	if t.ClassifyNectarBonus < 0 {
		return fmt.Errorf("classify_nectar_bonus must not be negative, got %v", t.ClassifyNectarBonus)
	}
	if t.HoneyOrderReduction < 0 || t.HoneyOrderReduction > 100 {
		return fmt.Errorf("honey_order_reduction must be a percentage, got %d", t.HoneyOrderReduction)
	}
	if t.NectarOrderChance < 0 || t.GroupOrderChance < 0 || t.NectarOrderChance+t.GroupOrderChance > 1 {
		return fmt.Errorf("order chances must be non-negative and sum to at most 1")
	}
	if t.DaylightStart < 0 || t.DaylightEnd > 24 || t.DaylightStart >= t.DaylightEnd {
		return fmt.Errorf("daylight hours must satisfy 0 <= start < end <= 24, got %d-%d", t.DaylightStart, t.DaylightEnd)
	}
	return nil
}

package hive

// Hive defaults
const (
	DefaultCapacity          = 10
	DefaultMilestoneInterval = 10
	DefaultHiveCost          = 100
	DefaultNectarMax         = 100.0
	DefaultDaylightStart     = 6
	DefaultDaylightEnd       = 18
)

// Level-based capacities. Levels 0 and 1 use the configured default.
var levelCapacity = map[int]int{
	2: 20,
	3: 30,
	4: 40,
}

// User-facing hatch messages
const (
	MsgSingleBeeHatched = "Your pollination efforts have attracted a new bee to your %s! (Score: %d)"
	MsgBeesHatched      = "Your pollination efforts have attracted %d new bees! (Score: %d)"
	MsgHivesFull        = "Your hives are at full capacity! Build more hives to house new bees. (Score: %d)"
)

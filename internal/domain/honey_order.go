package domain

import "time"

// HoneyType is the market grade of a bottle of honey
type HoneyType string

const (
	HoneyLight      HoneyType = "light"
	HoneyAmber      HoneyType = "amber"
	HoneyDark       HoneyType = "dark"
	HoneySpecialty  HoneyType = "specialty"
	HoneyWildflower HoneyType = "wildflower"
)

// HoneyTypes lists every grade in display order
var HoneyTypes = []HoneyType{HoneyLight, HoneyAmber, HoneyDark, HoneySpecialty, HoneyWildflower}

// Valid reports whether t is a known grade
func (t HoneyType) Valid() bool {
	switch t {
	case HoneyLight, HoneyAmber, HoneyDark, HoneySpecialty, HoneyWildflower:
		return true
	}
	return false
}

// HoneyOrder is one customer request for bottled honey of a single type
type HoneyOrder struct {
	ID          string     `json:"id"`
	Customer    string     `json:"customer"`
	Message     string     `json:"message"`
	HoneyType   HoneyType  `json:"honeyType"`
	Bottles     int        `json:"bottles"`
	CoinReward  int        `json:"coinReward"`
	Completed   bool       `json:"completed"`
	Reduced     bool       `json:"reduced"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// HoneyOrderBoard is the day's set of honey orders. Date is the local
// calendar day (YYYY-MM-DD) the orders were drawn for.
type HoneyOrderBoard struct {
	Date      string            `json:"date"`
	Orders    []HoneyOrder      `json:"orders"`
	Fulfilled map[HoneyType]int `json:"fulfilled"`
}

// HoneyFulfillResult is returned when a honey order is delivered
type HoneyFulfillResult struct {
	Order       HoneyOrder `json:"order"`
	CoinsEarned int        `json:"coinsEarned"`
	Reduced     bool       `json:"reduced"`
}

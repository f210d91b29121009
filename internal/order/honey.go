package order

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
)

// HoneyGrade prices and names one honey type
type HoneyGrade struct {
	Name      string
	BasePrice int
}

var honeyGrades = map[domain.HoneyType]HoneyGrade{
	domain.HoneyLight:      {Name: "Light Honey", BasePrice: 15},
	domain.HoneyAmber:      {Name: "Amber Honey", BasePrice: 20},
	domain.HoneyDark:       {Name: "Dark Honey", BasePrice: 25},
	domain.HoneySpecialty:  {Name: "Specialty Honey", BasePrice: 35},
	domain.HoneyWildflower: {Name: "Wildflower Blend", BasePrice: 18},
}

// GradeOf returns the name and base price of t
func GradeOf(t domain.HoneyType) HoneyGrade {
	return honeyGrades[t]
}

// Customer is someone who places honey orders
type Customer struct {
	Name     string
	Messages []string
}

var honeyCustomers = []Customer{
	{Name: "Farmer Joe", Messages: []string{"Howdy! My wife loves honey in her tea.", "Need some honey for my baked goods!", "The farmhands are running low on honey!"}},
	{Name: "Chef Rosa", Messages: []string{"I need honey for my special recipe!", "My restaurant needs the finest honey!", "Customers are asking for more honey dishes!"}},
	{Name: "Baker Tim", Messages: []string{"Honey buns need more honey!", "Running low on sweetener for my pastries!", "The bakery needs a fresh supply!"}},
	{Name: "Grandma Bee", Messages: []string{"Dearie, I need honey for my grandchildren!", "My old recipe calls for this exact honey!", "Nothing beats natural honey for my remedies!"}},
	{Name: "Market Molly", Messages: []string{"The market stall needs restocking!", "Customers keep asking for local honey!", "This honey type sells really well!"}},
	{Name: "Dr. Bloom", Messages: []string{"Honey has natural healing properties!", "I recommend honey to all my patients!", "This type of honey is particularly beneficial!"}},
	{Name: "Tea Master Li", Messages: []string{"The perfect honey for my tea ceremony!", "Balance requires the right sweetness.", "My students appreciate quality honey."}},
	{Name: "Beekeeper Ben", Messages: []string{"Fellow beekeeper needs some extra stock!", "My hives had a rough season, can you help?", "Quality recognizes quality!"}},
}

// HoneyConfig tunes the daily honey board. Zero values fall back to defaults.
type HoneyConfig struct {
	PerDay           int
	QuotaPerType     int
	ReductionPercent int
}

func (c HoneyConfig) withDefaults() HoneyConfig {
	if c.PerDay <= 0 {
		c.PerDay = DefaultHoneyOrdersPerDay
	}
	if c.QuotaPerType <= 0 {
		c.QuotaPerType = DefaultHoneyQuota
	}
	if c.ReductionPercent < 0 || c.ReductionPercent > 100 {
		c.ReductionPercent = DefaultHoneyReduction
	}
	return c
}

// HoneyBoard draws the day's honey orders and settles deliveries. Like Economy it
// holds no state of its own.
type HoneyBoard struct {
	clock clock.Clock
	rand  clock.Rand
	cfg   HoneyConfig
}

// NewHoneyBoard creates a honey board
func NewHoneyBoard(c clock.Clock, r clock.Rand, cfg HoneyConfig) *HoneyBoard {
	return &HoneyBoard{clock: c, rand: r, cfg: cfg.withDefaults()}
}

// QuotaPerType is how many orders of one type pay in full each day
func (b *HoneyBoard) QuotaPerType() int {
	return b.cfg.QuotaPerType
}

// Today is the local calendar day the board is keyed on
func (b *HoneyBoard) Today() string {
	return b.clock.Now().Format(HoneyDateLayout)
}

// Refresh returns board unchanged when it already holds orders for today. Otherwise
// it draws a new day: the first order asks for one of likely, the rest are random.
// An empty likely falls back to wildflower. The bool reports whether a new day was drawn.
func (b *HoneyBoard) Refresh(board *domain.HoneyOrderBoard, likely []domain.HoneyType) (*domain.HoneyOrderBoard, bool) {
	today := b.Today()
	if board != nil && board.Date == today && len(board.Orders) > 0 {
		return board, false
	}

	if len(likely) == 0 {
		likely = []domain.HoneyType{domain.HoneyWildflower}
	}
	orders := make([]domain.HoneyOrder, 0, b.cfg.PerDay)
	orders = append(orders, b.newOrder(likely[b.rand.IntN(len(likely))]))
	for len(orders) < b.cfg.PerDay {
		orders = append(orders, b.newOrder(domain.HoneyTypes[b.rand.IntN(len(domain.HoneyTypes))]))
	}
	return &domain.HoneyOrderBoard{
		Date:      today,
		Orders:    orders,
		Fulfilled: make(map[domain.HoneyType]int),
	}, true
}

func (b *HoneyBoard) newOrder(t domain.HoneyType) domain.HoneyOrder {
	c := honeyCustomers[b.rand.IntN(len(honeyCustomers))]
	bottles := MinHoneyBottles + b.rand.IntN(MaxHoneyBottles-MinHoneyBottles+1)
	return domain.HoneyOrder{
		ID:         "honey-" + uuid.NewString(),
		Customer:   c.Name,
		Message:    c.Messages[b.rand.IntN(len(c.Messages))],
		HoneyType:  t,
		Bottles:    bottles,
		CoinReward: GradeOf(t).BasePrice * bottles,
		CreatedAt:  b.clock.Now(),
	}
}

// IsReduced reports whether the next delivery of t pays the reduced reward
func (b *HoneyBoard) IsReduced(board *domain.HoneyOrderBoard, t domain.HoneyType) bool {
	return board != nil && board.Fulfilled[t] >= b.cfg.QuotaPerType
}

// Fulfill delivers orderID, debiting one bottle of the ordered honey plus one glass
// bottle per requested bottle. Past the daily quota for its type the reward is cut
// by the reduction percent, rounded down. Inputs are never mutated.
func (b *HoneyBoard) Fulfill(board *domain.HoneyOrderBoard, orderID string, inv *domain.Inventory) (*domain.HoneyOrderBoard, *domain.Inventory, domain.HoneyFulfillResult, error) {
	if board == nil {
		return board, inv, domain.HoneyFulfillResult{}, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}
	idx := slices.IndexFunc(board.Orders, func(o domain.HoneyOrder) bool { return o.ID == orderID })
	if idx < 0 {
		return board, inv, domain.HoneyFulfillResult{}, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}
	o := board.Orders[idx]
	if o.Completed {
		return board, inv, domain.HoneyFulfillResult{}, fmt.Errorf("%w: %s already delivered", domain.ErrOrderNotActive, orderID)
	}

	var missing []string
	if have := inv.Honey[o.HoneyType]; have < o.Bottles {
		missing = append(missing, fmt.Sprintf("%dx %s", o.Bottles-have, GradeOf(o.HoneyType).Name))
	}
	if have := inv.Items[domain.ItemGlassBottle]; have < o.Bottles {
		missing = append(missing, fmt.Sprintf("%dx %s", o.Bottles-have, GlassBottleName))
	}
	if len(missing) > 0 {
		return board, inv, domain.HoneyFulfillResult{}, &domain.MissingItemsError{Missing: missing}
	}

	reduced := b.IsReduced(board, o.HoneyType)
	coins := o.CoinReward
	if reduced {
		coins = o.CoinReward * (100 - b.cfg.ReductionPercent) / 100
	}

	next := inv.Clone()
	next.Honey[o.HoneyType] -= o.Bottles
	next.Items[domain.ItemGlassBottle] -= o.Bottles
	next.Coins += coins

	now := b.clock.Now()
	o.Completed = true
	o.Reduced = reduced
	o.CompletedAt = &now

	nextBoard := &domain.HoneyOrderBoard{
		Date:      board.Date,
		Orders:    slices.Clone(board.Orders),
		Fulfilled: maps.Clone(board.Fulfilled),
	}
	if nextBoard.Fulfilled == nil {
		nextBoard.Fulfilled = make(map[domain.HoneyType]int)
	}
	nextBoard.Orders[idx] = o
	nextBoard.Fulfilled[o.HoneyType]++

	return nextBoard, next, domain.HoneyFulfillResult{Order: o, CoinsEarned: coins, Reduced: reduced}, nil
}

// OpenHoneyOrders lists the board's undelivered orders
func OpenHoneyOrders(board *domain.HoneyOrderBoard) []domain.HoneyOrder {
	if board == nil {
		return []domain.HoneyOrder{}
	}
	out := make([]domain.HoneyOrder, 0, len(board.Orders))
	for _, o := range board.Orders {
		if !o.Completed {
			out = append(out, o)
		}
	}
	return out
}

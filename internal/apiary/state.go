package apiary

import (
	"context"
	"maps"
	"slices"

	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/experience"
	"github.com/osse101/Apiary_Go/internal/hive"
)

// HiveView is a hive with its derived numbers
type HiveView struct {
	domain.Hive
	Capacity     int                 `json:"capacity"`
	NectarLevel  float64             `json:"nectarLevel"`
	HoneySummary domain.HoneySummary `json:"honeySummary"`
	// ClassificationsLeft is today's remaining allowance for this hive
	ClassificationsLeft int `json:"classificationsLeft"`
}

// State is a by-value snapshot of the whole apiary
type State struct {
	Plots             []domain.Plot                 `json:"plots"`
	Inventory         *domain.Inventory             `json:"inventory"`
	Water             domain.WaterSystem            `json:"water"`
	Hives             []HiveView                    `json:"hives"`
	Capacity          hive.CapacitySummary          `json:"capacity"`
	PollinationFactor domain.PollinationFactor      `json:"pollinationFactor"`
	Milestones        []domain.PollinationMilestone `json:"milestones"`
	Orders            []domain.Order                `json:"orders"`
	HoneyOrders       []domain.HoneyOrder           `json:"honeyOrders"`
	Merchants         []domain.Merchant             `json:"merchants"`
	Level             int                           `json:"level"`
	Experience        domain.Experience             `json:"experience"`
	Progress          experience.Progress           `json:"progress"`
}

// State returns a read-only snapshot of everything the player owns
func (s *service) State(ctx context.Context) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	st := &s.state
	active, _ := s.economy.Active(st.orders)
	views := make([]HiveView, 0, len(st.hives))
	for _, h := range st.hives {
		views = append(views, HiveView{
			Hive:                h,
			Capacity:            s.ledger.Capacity(h),
			NectarLevel:         st.nectarLevels[h.ID],
			HoneySummary:        s.blender.Summarize(h.ID, h.Honey),
			ClassificationsLeft: s.gate.Remaining(st.daily, h.ID),
		})
	}

	exp := st.experience
	exp.UniqueCrops = slices.Clone(exp.UniqueCrops)
	return &State{
		Plots:             slices.Clone(st.plots),
		Inventory:         st.inventory.Clone(),
		Water:             st.water,
		Hives:             views,
		Capacity:          s.ledger.Summarize(st.hives),
		PollinationFactor: st.pollination,
		Milestones:        slices.Clone(st.milestones),
		Orders:            active,
		HoneyOrders:       s.openHoneyOrders(),
		Merchants:         s.economy.Directory().WithAffinity(maps.Clone(st.affinity)),
		Level:             experience.Level(exp),
		Experience:        exp,
		Progress:          experience.ProgressOf(exp),
	}, nil
}

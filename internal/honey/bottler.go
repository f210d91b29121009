package honey

import (
	"fmt"
	"sort"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// BottleNectar turns capacity units of raw hive nectar plus one glass bottle into one bottled nectar.
// Nectar is drawn from hives in sorted id order until the requirement is met.
func BottleNectar(levels map[string]float64, inv *domain.Inventory, capacity float64) (map[string]float64, *domain.Inventory, domain.BottleNectarResult, error) {
	if capacity <= 0 {
		capacity = DefaultBottleCapacity
	}
	if inv.Items[domain.ItemGlassBottle] < 1 {
		return levels, inv, domain.BottleNectarResult{}, domain.ErrInsufficientBottles
	}

	ids := make([]string, 0, len(levels))
	total := 0.0
	for id, v := range levels {
		ids = append(ids, id)
		total += v
	}
	if total < capacity {
		return levels, inv, domain.BottleNectarResult{}, fmt.Errorf("%w: %.1f/%.0f", domain.ErrInsufficientNectar, total, capacity)
	}
	sort.Strings(ids)

	next := make(map[string]float64, len(levels))
	for k, v := range levels {
		next[k] = v
	}
	drawn := make(map[string]float64)
	need := capacity
	for _, id := range ids {
		if need <= 0 {
			break
		}
		take := min(next[id], need)
		if take <= 0 {
			continue
		}
		next[id] -= take
		drawn[id] = take
		need -= take
	}

	nextInv := inv.Clone()
	nextInv.Items[domain.ItemGlassBottle]--
	nextInv.Items[domain.ItemBottledNectar]++

	return next, nextInv, domain.BottleNectarResult{Drawn: drawn, BottledNectar: nextInv.Items[domain.ItemBottledNectar]}, nil
}

package order

import (
	"math"
	"slices"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
)

var defaultMerchants = []domain.Merchant{
	{ID: MerchantBaker, Name: "The Village Baker", Specialties: []string{"wheat", "corn"}},
	{ID: MerchantChef, Name: "The Town Chef", Specialties: []string{"tomato", "carrot", "lettuce", "potato"}},
	{ID: MerchantBeekeeper, Name: "Master Beekeeper", Specialties: []string{NectarSpecialty}},
	{ID: MerchantGeneral, Name: "General Merchant", Specialties: []string{"tomato", "carrot", "wheat", "corn", "lettuce", "potato"}},
	{ID: MerchantHerbalist, Name: "The Herbalist", Specialties: []string{"lavender", "mint", "basil"}},
}

// Directory is the static merchant list. Affinity lives outside it, keyed by merchant id.
type Directory struct {
	merchants []domain.Merchant
}

// NewDirectory returns the built-in merchants
func NewDirectory() *Directory {
	return &Directory{merchants: defaultMerchants}
}

// Get returns the merchant with id
func (d *Directory) Get(id string) (domain.Merchant, bool) {
	for _, m := range d.merchants {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Merchant{}, false
}

// WithAffinity returns every merchant with its current affinity filled in
func (d *Directory) WithAffinity(affinity map[string]int) []domain.Merchant {
	out := make([]domain.Merchant, len(d.merchants))
	for i, m := range d.merchants {
		m.Specialties = slices.Clone(m.Specialties)
		m.Affinity = affinity[m.ID]
		out[i] = m
	}
	return out
}

// DefaultAffinity starts every merchant at zero
func (d *Directory) DefaultAffinity() map[string]int {
	out := make(map[string]int, len(d.merchants))
	for _, m := range d.merchants {
		out[m.ID] = domain.MinAffinity
	}
	return out
}

// Select picks a merchant whose specialties overlap the requested crops,
// choosing randomly among matches and falling back to the generalist.
func (d *Directory) Select(cropIDs []string, r clock.Rand) domain.Merchant {
	var matches []domain.Merchant
	for _, m := range d.merchants {
		for _, id := range cropIDs {
			if slices.Contains(m.Specialties, id) {
				matches = append(matches, m)
				break
			}
		}
	}
	if len(matches) > 0 {
		return matches[r.IntN(len(matches))]
	}
	if m, ok := d.Get(MerchantGeneral); ok {
		return m
	}
	return d.merchants[0]
}

// AffinityBonus maps affinity 0..100 linearly onto a 10..50 percent bonus
func AffinityBonus(affinity int) int {
	affinity = max(domain.MinAffinity, min(domain.MaxAffinity, affinity))
	span := float64(MaxBonusPercentage - MinBonusPercentage)
	return int(math.Round(MinBonusPercentage + float64(affinity)/float64(domain.MaxAffinity)*span))
}

// TotalReward applies the bonus percentage to a base reward
func TotalReward(base, bonusPercentage int) int {
	return int(math.Round(float64(base) * (1 + float64(bonusPercentage)/100)))
}

// AffinityGain is the affinity earned for fulfilling an order worth totalReward
func AffinityGain(totalReward int) int {
	gain := int(math.Round(float64(totalReward) / AffinityGainDivisor))
	return max(MinAffinityGain, min(MaxAffinityGain, gain))
}

// IncreaseAffinity returns a copy of affinity with merchantID raised by points, capped at 100.
// Affinity never decreases.
func IncreaseAffinity(affinity map[string]int, merchantID string, points int) map[string]int {
	out := make(map[string]int, len(affinity)+1)
	for k, v := range affinity {
		out[k] = v
	}
	if points > 0 {
		out[merchantID] = max(out[merchantID], min(domain.MaxAffinity, out[merchantID]+points))
	}
	return out
}

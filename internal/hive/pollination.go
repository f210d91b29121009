package hive

import "github.com/osse101/Apiary_Go/internal/domain"

// NewPollinationFactor returns a zero factor with the milestone threshold set
func NewPollinationFactor(threshold int) domain.PollinationFactor {
	if threshold <= 0 {
		threshold = DefaultMilestoneInterval
	}
	return domain.PollinationFactor{Threshold: threshold}
}

// RecordHarvest bumps the factor for one harvest. The factor never decreases.
func RecordHarvest(pf domain.PollinationFactor) domain.PollinationFactor {
	pf.Factor++
	pf.TotalHarvests++
	if pf.Threshold <= 0 {
		pf.Threshold = DefaultMilestoneInterval
	}
	return pf
}

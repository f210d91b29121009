// Package experience derives the player's 1-10 level from lifetime activity.
package experience

import (
	"math"
	"slices"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// Level weights: harvests 4 points, classifications 3, crop variety 3
const (
	HarvestTarget        = 100.0
	ClassificationTarget = 50.0
	VarietyTarget        = 10.0
	HarvestPoints        = 4.0
	ClassificationPoints = 3.0
	VarietyPoints        = 3.0
)

// Progress is each component's completion percentage
type Progress struct {
	Harvests        float64 `json:"harvests"`
	Classifications float64 `json:"classifications"`
	CropVariety     float64 `json:"cropVariety"`
}

// Level returns max(1, ceil(score)) where score sums the capped component points
func Level(exp domain.Experience) int {
	score := ratio(float64(exp.TotalHarvests), HarvestTarget)*HarvestPoints +
		ratio(float64(exp.TotalClassifications), ClassificationTarget)*ClassificationPoints +
		ratio(float64(len(exp.UniqueCrops)), VarietyTarget)*VarietyPoints
	return max(domain.MinExperienceLevel, min(domain.MaxExperienceLevel, int(math.Ceil(score))))
}

// ProgressOf reports how far each component is toward its cap
func ProgressOf(exp domain.Experience) Progress {
	return Progress{
		Harvests:        ratio(float64(exp.TotalHarvests), HarvestTarget) * 100,
		Classifications: ratio(float64(exp.TotalClassifications), ClassificationTarget) * 100,
		CropVariety:     ratio(float64(len(exp.UniqueCrops)), VarietyTarget) * 100,
	}
}

// RecordHarvest counts a harvest and remembers the crop type
func RecordHarvest(exp domain.Experience, cropID string) domain.Experience {
	exp.TotalHarvests++
	crops := slices.Clone(exp.UniqueCrops)
	if cropID != "" && !slices.Contains(crops, cropID) {
		crops = append(crops, cropID)
		slices.Sort(crops)
	}
	exp.UniqueCrops = crops
	return exp
}

// RecordClassification counts an accepted classification
func RecordClassification(exp domain.Experience) domain.Experience {
	exp.TotalClassifications++
	exp.UniqueCrops = slices.Clone(exp.UniqueCrops)
	return exp
}

func ratio(v, target float64) float64 {
	return math.Max(0, math.Min(v/target, 1))
}

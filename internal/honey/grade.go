package honey

import (
	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/domain"
)

// Crops whose honey sells under a fixed grade regardless of color.
// Blueberry and lavender are not in the built-in catalog but may be loaded from file.
var cropGrades = map[string]domain.HoneyType{
	crop.Tomato:    domain.HoneyLight,
	crop.Sunflower: domain.HoneyAmber,
	"blueberry":    domain.HoneyAmber,
	"lavender":     domain.HoneySpecialty,
}

// Grade sorts a finished batch into a market grade. Mixed batches are
// wildflower, a known crop keeps its fixed grade, a near-pure premium batch
// is specialty, and anything else is graded by color.
func Grade(batch domain.HoneyBatch) domain.HoneyType {
	total := 0.0
	for _, v := range batch.Sources {
		total += v
	}
	if total <= 0 || len(batch.Sources) > MaxNamedSources {
		return domain.HoneyWildflower
	}
	share := batch.Sources[batch.DominantSource] / total
	if share < WildflowerShare {
		return domain.HoneyWildflower
	}
	if g, ok := cropGrades[batch.DominantSource]; ok {
		return g
	}
	if share >= SpecialtyShare && batch.Quality >= SpecialtyQuality {
		return domain.HoneySpecialty
	}
	return gradeByColor(batch.Color)
}

// GradeForCrop is the grade a pure batch of def would likely get.
// The bool is false for crops that give no nectar.
func GradeForCrop(def domain.CropDefinition) (domain.HoneyType, bool) {
	if !def.ProducesNectar {
		return "", false
	}
	if g, ok := cropGrades[def.ID]; ok {
		return g, true
	}
	if def.NectarQuality >= SpecialtyQuality {
		return domain.HoneySpecialty, true
	}
	return gradeByColor(def.HoneyProfile.Color), true
}

func gradeByColor(hex string) domain.HoneyType {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return domain.HoneyWildflower
	}
	// relative luminance, Rec. 709 weights
	lum := (0.2126*r + 0.7152*g + 0.0722*b) / 255
	switch {
	case lum >= LightLuminance:
		return domain.HoneyLight
	case lum >= AmberLuminance:
		return domain.HoneyAmber
	default:
		return domain.HoneyDark
	}
}

// Package energy implements the computable core: unit conversion, the two BMR
// formulas, activity scaling, and calorie goal derivation.
package energy

import (
	"fmt"

	"github.com/ysaeki/karada/internal/domain"
)

// activityFactors maps each activity label to its fixed TDEE multiplier.
// The table is closed; an unknown label is a programming error, which
// Estimate reports rather than panicking.
var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// Protein guidance band in grams per kg of body weight.
const (
	proteinLowPerKG  = 1.6
	proteinHighPerKG = 2.2
)

// ActivityFactor looks up the multiplier for a label.
func ActivityFactor(level domain.ActivityLevel) (float64, bool) {
	f, ok := activityFactors[level]
	return f, ok
}

// TDEE scales a BMR by an activity factor.
func TDEE(bmr, factor float64) float64 {
	return bmr * factor
}

// Estimate validates the profile and derives the full energy estimate:
// BMR via the selected formula, TDEE via the activity factor, the +-10%
// calorie goals, and the protein guidance band. Validation failures are
// returned before any arithmetic runs.
func Estimate(p *domain.Profile) (*domain.EnergyEstimate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	factor, ok := activityFactors[p.Activity]
	if !ok {
		return nil, fmt.Errorf("unknown activity level %q", p.Activity)
	}

	weightKG, heightCM := ToMetric(p.Weight, p.Height, p.Units)

	var bmr float64
	switch p.Formula {
	case domain.FormulaKatchMcArdle:
		bmr = KatchMcArdle(weightKG, p.BodyFatPct)
	default:
		bmr = MifflinStJeor(p.Sex, weightKG, heightCM, p.Age)
	}

	tdee := TDEE(bmr, factor)
	return &domain.EnergyEstimate{
		BMR:          bmr,
		TDEE:         tdee,
		Cut10:        tdee * 0.90,
		Bulk10:       tdee * 1.10,
		ProteinLowG:  weightKG * proteinLowPerKG,
		ProteinHighG: weightKG * proteinHighPerKG,
	}, nil
}

package energy

import "github.com/ysaeki/karada/internal/domain"

// MifflinStJeor computes BMR from metric inputs:
// 10*kg + 6.25*cm - 5*age, +5 for male and -161 for female.
func MifflinStJeor(sex domain.Sex, weightKG, heightCM float64, age int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == domain.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

// KatchMcArdle computes BMR from lean body mass: 370 + 21.6*lbm.
// Callers must have validated bodyFatPct > 0 before calling.
func KatchMcArdle(weightKG, bodyFatPct float64) float64 {
	lbm := weightKG * (1 - bodyFatPct/100)
	return 370 + 21.6*lbm
}

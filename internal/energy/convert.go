package energy

import "github.com/ysaeki/karada/internal/domain"

// Conversion constants for imperial inputs.
const (
	lbPerKg = 0.45359237
	cmPerIn = 2.54
)

// ToMetric converts a weight/height pair to kg and cm. Metric inputs pass
// through unchanged. Inputs are assumed pre-validated by the caller.
func ToMetric(weight, height float64, units domain.UnitSystem) (weightKG, heightCM float64) {
	if units == domain.UnitImperial {
		return weight * lbPerKg, height * cmPerIn
	}
	return weight, height
}

// ToImperial is the inverse of ToMetric, converting kg/cm to lb/in.
func ToImperial(weightKG, heightCM float64) (weightLB, heightIN float64) {
	return weightKG / lbPerKg, heightCM / cmPerIn
}

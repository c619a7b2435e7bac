package domain

// EnergyEstimate is the derived output of a TDEE calculation. It is
// recomputed on every request and lives only in the current session.
// All values are kcal/day except the protein band, which is grams/day.
type EnergyEstimate struct {
	BMR    float64
	TDEE   float64
	Cut10  float64 // tdee * 0.90
	Bulk10 float64 // tdee * 1.10

	// Daily protein guidance band derived from body weight in kg.
	ProteinLowG  float64
	ProteinHighG float64
}

package domain

import (
	"fmt"
	"math"
)

// Sex is the biological sex used by the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// UnitSystem selects how weight and height inputs are interpreted.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"   // kg, cm
	UnitImperial UnitSystem = "imperial" // lb, in
)

// BMRFormula selects the basal metabolic rate strategy.
type BMRFormula string

const (
	FormulaMifflinStJeor BMRFormula = "mifflin-st-jeor"
	FormulaKatchMcArdle  BMRFormula = "katch-mcardle"
)

// ActivityLevel is one of the five fixed activity labels. The factor table
// lives in the energy package and is closed; no user-defined levels.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists the valid labels in increasing-intensity order.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// Profile is the anthropometric input to a TDEE calculation.
// Weight and Height are interpreted according to Units.
// BodyFatPct is required (and must be positive) only for Katch-McArdle.
type Profile struct {
	Sex        Sex
	Age        int
	Weight     float64
	Height     float64
	Units      UnitSystem
	BodyFatPct float64
	Activity   ActivityLevel
	Formula    BMRFormula
}

// FieldError reports an input validation failure, naming the offending field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks the profile before any arithmetic runs. Numeric fields must
// be finite and strictly positive; Katch-McArdle additionally requires a
// positive body fat percentage.
func (p *Profile) Validate() error {
	if p.Sex != SexMale && p.Sex != SexFemale {
		return &FieldError{Field: "sex", Reason: fmt.Sprintf("unknown value %q", p.Sex)}
	}
	if p.Age <= 0 {
		return &FieldError{Field: "age", Reason: "must be a positive number"}
	}
	if err := requirePositive("weight", p.Weight); err != nil {
		return err
	}
	if err := requirePositive("height", p.Height); err != nil {
		return err
	}
	if p.Units != UnitMetric && p.Units != UnitImperial {
		return &FieldError{Field: "units", Reason: fmt.Sprintf("unknown value %q", p.Units)}
	}
	if p.Formula == FormulaKatchMcArdle {
		if math.IsNaN(p.BodyFatPct) || math.IsInf(p.BodyFatPct, 0) || p.BodyFatPct <= 0 {
			return &FieldError{Field: "body_fat_pct", Reason: "required and must be positive for Katch-McArdle"}
		}
		if p.BodyFatPct >= 100 {
			return &FieldError{Field: "body_fat_pct", Reason: "must be below 100"}
		}
	}
	return nil
}

func requirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FieldError{Field: field, Reason: "must be finite"}
	}
	if v <= 0 {
		return &FieldError{Field: field, Reason: "must be a positive number"}
	}
	return nil
}

package domain

import (
	"fmt"
	"math"
	"strings"
)

// RatioTolerance is the absolute tolerance within which the three macro
// percentages must sum to 100.
const RatioTolerance = 1e-6

// DefaultMinGrams is the floor applied to every food's recommended grams.
const DefaultMinGrams = 50.0

// FoodPriority labels a food's role in the meal. It is derived from list
// position and only biases the planner prompt.
type FoodPriority string

const (
	PriorityStaple FoodPriority = "staple"
	PriorityMain   FoodPriority = "main dish"
	PrioritySide   FoodPriority = "side dish"
)

// PriorityForIndex maps a food's position in the list to its priority label:
// first is the staple, second the main dish, everything after a side dish.
func PriorityForIndex(i int) FoodPriority {
	switch i {
	case 0:
		return PriorityStaple
	case 1:
		return PriorityMain
	default:
		return PrioritySide
	}
}

// MacroTarget is the calorie and ratio goal handed to the macro planner.
// ProteinPct, FatPct, and CarbPct must sum to 100 within RatioTolerance.
type MacroTarget struct {
	TotalKcal  float64
	ProteinPct float64
	FatPct     float64
	CarbPct    float64
}

// Validate rejects a target before the planner builds any prompt.
func (t MacroTarget) Validate() error {
	if err := requirePositive("total_kcal", t.TotalKcal); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"protein_pct", t.ProteinPct},
		{"fat_pct", t.FatPct},
		{"carb_pct", t.CarbPct},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return &FieldError{Field: f.name, Reason: "must be a non-negative number"}
		}
	}
	sum := t.ProteinPct + t.FatPct + t.CarbPct
	if math.Abs(sum-100) > RatioTolerance {
		return &FieldError{
			Field:  "ratios",
			Reason: fmt.Sprintf("P+F+C must sum to 100%%, got %.7g", sum),
		}
	}
	return nil
}

// PlanRequest is the full input to the macro planner: an ordered food list,
// the macro target, and the minimum grams per food.
type PlanRequest struct {
	Foods    []string
	Target   MacroTarget
	MinGrams float64
}

// Validate checks the food list on top of the target's own validation.
func (r PlanRequest) Validate() error {
	if len(r.Foods) == 0 {
		return &FieldError{Field: "foods", Reason: "at least one food is required"}
	}
	for _, f := range r.Foods {
		if strings.TrimSpace(f) == "" {
			return &FieldError{Field: "foods", Reason: "food names must not be blank"}
		}
	}
	if r.MinGrams < 0 {
		return &FieldError{Field: "min_grams", Reason: "must not be negative"}
	}
	return r.Target.Validate()
}

// FoodAllocation is one food's share of the plan.
type FoodAllocation struct {
	Name  string
	Grams float64
	Kcal  float64 // total kcal apportioned by gram share
}

// MacroSplit is the realized P/F/C percentage split reported by the planner.
type MacroSplit struct {
	ProteinPct float64
	FatPct     float64
	CarbPct    float64
}

// MacroPlan is the validated planner result. Foods preserves the request
// order. Repaired is true when at least one food's grams were clamped up to
// the minimum; the totals are not rebalanced after clamping, so a repaired
// plan's TotalKcal may drift from the sum of its parts.
type MacroPlan struct {
	Foods     []FoodAllocation
	TotalKcal float64
	Split     MacroSplit
	Repaired  bool
}

// PortionSize is the rough serving size used by the calorie estimator when
// the exact amount of a dish is unknown.
type PortionSize string

const (
	PortionSmall  PortionSize = "small"
	PortionNormal PortionSize = "normal"
	PortionLarge  PortionSize = "large"
)

// Dish is one entry in the ad-hoc calorie estimator. When AmountKnown is
// true, Amount holds a free-text quantity such as "150g"; otherwise Portion
// holds the rough serving size.
type Dish struct {
	Name        string
	AmountKnown bool
	Amount      string
	Portion     PortionSize
}

// Describe renders the dish as a single prompt line.
func (d Dish) Describe() string {
	if d.AmountKnown {
		return fmt.Sprintf("%s: %s", d.Name, d.Amount)
	}
	return fmt.Sprintf("%s: amount unknown (%s serving)", d.Name, d.Portion)
}

// ValidateDishes rejects an empty or blank-named dish list before the
// estimator builds any prompt.
func ValidateDishes(dishes []Dish) error {
	if len(dishes) == 0 {
		return &FieldError{Field: "dishes", Reason: "at least one dish is required"}
	}
	for _, d := range dishes {
		if strings.TrimSpace(d.Name) == "" {
			return &FieldError{Field: "dishes", Reason: "dish names must not be blank"}
		}
		if d.AmountKnown && strings.TrimSpace(d.Amount) == "" {
			return &FieldError{Field: "amount", Reason: fmt.Sprintf("amount for %q must not be blank", d.Name)}
		}
	}
	return nil
}

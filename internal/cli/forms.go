package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ysaeki/karada/internal/cli/formatter"
	"github.com/ysaeki/karada/internal/domain"
)

// validatePositiveFloat requires a parseable number greater than zero.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validatePositiveInt requires a parseable integer greater than zero.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

// validateBodyFat requires a percentage strictly between 0 and 100.
func validateBodyFat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || v >= 100 {
		return fmt.Errorf("enter a body fat percentage between 0 and 100")
	}
	return nil
}

// validatePct accepts a non-negative percentage. The three macro fields are
// checked together for the 100% sum after the form completes.
func validatePct(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a percentage of 0 or more")
	}
	return nil
}

// parseFloat converts a form buffer the validator has already accepted.
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// profileFormData holds the string buffers bound to the profile form.
type profileFormData struct {
	Sex      domain.Sex
	Units    domain.UnitSystem
	Formula  domain.BMRFormula
	Activity domain.ActivityLevel
	Age      string
	Weight   string
	Height   string
	BodyFat  string
}

// newProfileFormData seeds the buffers from a saved profile, or with the
// usual defaults when none exists.
func newProfileFormData(prev *domain.Profile) *profileFormData {
	d := &profileFormData{
		Sex:      domain.SexMale,
		Units:    domain.UnitMetric,
		Formula:  domain.FormulaMifflinStJeor,
		Activity: domain.ActivityModerate,
	}
	if prev == nil {
		return d
	}
	d.Sex = prev.Sex
	d.Units = prev.Units
	d.Formula = prev.Formula
	d.Activity = prev.Activity
	d.Age = strconv.Itoa(prev.Age)
	d.Weight = strconv.FormatFloat(prev.Weight, 'f', -1, 64)
	d.Height = strconv.FormatFloat(prev.Height, 'f', -1, 64)
	if prev.BodyFatPct > 0 {
		d.BodyFat = strconv.FormatFloat(prev.BodyFatPct, 'f', -1, 64)
	}
	return d
}

// Profile converts completed form buffers into a domain profile.
func (d *profileFormData) Profile() *domain.Profile {
	return &domain.Profile{
		Sex:        d.Sex,
		Age:        parseInt(d.Age),
		Weight:     parseFloat(d.Weight),
		Height:     parseFloat(d.Height),
		Units:      d.Units,
		BodyFatPct: parseFloat(d.BodyFat),
		Activity:   d.Activity,
		Formula:    d.Formula,
	}
}

// profileForm builds the body composition form. Weight and height titles
// follow the chosen unit system, and the body fat field only appears for
// Katch-McArdle.
func profileForm(d *profileFormData) *huh.Form {
	weightTitle := func() string {
		if d.Units == domain.UnitImperial {
			return "Weight (lb)"
		}
		return "Weight (kg)"
	}
	heightTitle := func() string {
		if d.Units == domain.UnitImperial {
			return "Height (in)"
		}
		return "Height (cm)"
	}

	activityOptions := make([]huh.Option[domain.ActivityLevel], 0, len(domain.ActivityLevels))
	for _, lvl := range domain.ActivityLevels {
		activityOptions = append(activityOptions, huh.NewOption(formatter.ActivityLabel(lvl), lvl))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Sex]().
				Title("Sex").
				Options(
					huh.NewOption("Male", domain.SexMale),
					huh.NewOption("Female", domain.SexFemale),
				).
				Value(&d.Sex),
			huh.NewInput().
				Title("Age").
				Placeholder("30").
				Value(&d.Age).
				Validate(validatePositiveInt),
			huh.NewSelect[domain.UnitSystem]().
				Title("Units").
				Options(
					huh.NewOption("Metric (kg, cm)", domain.UnitMetric),
					huh.NewOption("Imperial (lb, in)", domain.UnitImperial),
				).
				Value(&d.Units),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(weightTitle, &d.Units).
				Placeholder("70").
				Value(&d.Weight).
				Validate(validatePositiveFloat),
			huh.NewInput().
				TitleFunc(heightTitle, &d.Units).
				Placeholder("170").
				Value(&d.Height).
				Validate(validatePositiveFloat),
			huh.NewSelect[domain.ActivityLevel]().
				Title("Activity Level").
				Options(activityOptions...).
				Value(&d.Activity),
			huh.NewSelect[domain.BMRFormula]().
				Title("Formula").
				Description("Katch-McArdle needs a body fat estimate").
				Options(
					huh.NewOption("Mifflin-St Jeor", domain.FormulaMifflinStJeor),
					huh.NewOption("Katch-McArdle", domain.FormulaKatchMcArdle),
				).
				Value(&d.Formula),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Body Fat (%)").
				Placeholder("20").
				Value(&d.BodyFat).
				Validate(validateBodyFat),
		).WithHideFunc(func() bool {
			return d.Formula != domain.FormulaKatchMcArdle
		}),
	).WithTheme(karadaHuhTheme()).WithShowHelp(false)
}

// targetFormData holds the string buffers bound to the macro target form.
type targetFormData struct {
	Kcal    string
	Protein string
	Fat     string
	Carb    string
}

// newTargetFormData seeds the calorie buffer from the session's last energy
// calculation and the split with the usual 30/20/50 starting point.
func newTargetFormData(defaultKcal float64) *targetFormData {
	d := &targetFormData{Protein: "30", Fat: "20", Carb: "50"}
	if defaultKcal > 0 {
		d.Kcal = strconv.FormatFloat(defaultKcal, 'f', 0, 64)
	}
	return d
}

// Target converts completed form buffers into a macro target.
func (d *targetFormData) Target() domain.MacroTarget {
	return domain.MacroTarget{
		TotalKcal:  parseFloat(d.Kcal),
		ProteinPct: parseFloat(d.Protein),
		FatPct:     parseFloat(d.Fat),
		CarbPct:    parseFloat(d.Carb),
	}
}

// targetForm builds the calorie and P/F/C ratio form.
func targetForm(d *targetFormData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target Calories (kcal/day)").
				Placeholder("2300").
				Value(&d.Kcal).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Protein (%)").
				Value(&d.Protein).
				Validate(validatePct),
			huh.NewInput().
				Title("Fat (%)").
				Value(&d.Fat).
				Validate(validatePct),
			huh.NewInput().
				Title("Carbs (%)").
				Value(&d.Carb).
				Validate(validatePct),
		),
	).WithTheme(karadaHuhTheme()).WithShowHelp(false)
}

// foodsForm builds a single text input for the comma-separated food list.
func foodsForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Foods (comma-separated, staple first)").
				Placeholder("rice, chicken breast, broccoli").
				Value(value).
				Validate(func(s string) error {
					if len(splitFoods(s)) == 0 {
						return fmt.Errorf("enter at least one food")
					}
					return nil
				}),
		),
	).WithTheme(karadaHuhTheme()).WithShowHelp(false)
}

// splitFoods parses a comma-separated food list, dropping blank entries.
func splitFoods(s string) []string {
	parts := strings.Split(s, ",")
	foods := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			foods = append(foods, f)
		}
	}
	return foods
}

// confirmForm builds a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(karadaHuhTheme()).WithShowHelp(false)
}

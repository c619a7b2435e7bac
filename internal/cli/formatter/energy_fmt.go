package formatter

import (
	"fmt"
	"strings"

	"github.com/ysaeki/karada/internal/domain"
)

// FormatEnergy formats a daily energy estimate into a styled summary box.
func FormatEnergy(p *domain.Profile, e *domain.EnergyEstimate) string {
	var b strings.Builder

	headers := []string{"METRIC", "KCAL/DAY"}
	rows := [][]string{
		{Bold("Basal metabolic rate"), fmt.Sprintf("%.0f", e.BMR)},
		{Bold("Maintenance (TDEE)"), StyleGreen.Render(fmt.Sprintf("%.0f", e.TDEE))},
		{Bold("Cut (-10%)"), StyleBlue.Render(fmt.Sprintf("%.0f", e.Cut10))},
		{Bold("Bulk (+10%)"), StylePurple.Render(fmt.Sprintf("%.0f", e.Bulk10))},
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Protein target: %s g/day\n",
		StyleYellow.Render(fmt.Sprintf("%.1f-%.1f", e.ProteinLowG, e.ProteinHighG))))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Formula: %s, activity: %s", formulaLabel(p.Formula), activityLabel(p.Activity))))

	return RenderBox("Daily Energy", b.String())
}

func formulaLabel(f domain.BMRFormula) string {
	switch f {
	case domain.FormulaKatchMcArdle:
		return "Katch-McArdle"
	default:
		return "Mifflin-St Jeor"
	}
}

func activityLabel(a domain.ActivityLevel) string {
	switch a {
	case domain.ActivitySedentary:
		return "sedentary (little exercise)"
	case domain.ActivityLight:
		return "light (1-3 days/week)"
	case domain.ActivityModerate:
		return "moderate (3-5 days/week)"
	case domain.ActivityActive:
		return "active (6-7 days/week)"
	case domain.ActivityVeryActive:
		return "very active (hard daily training)"
	default:
		return string(a)
	}
}

// ActivityLabel is the human-readable description of an activity level,
// shared with the interactive form options.
func ActivityLabel(a domain.ActivityLevel) string {
	return activityLabel(a)
}

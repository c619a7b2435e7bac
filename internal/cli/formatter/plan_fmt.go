package formatter

import (
	"fmt"
	"strings"

	"github.com/ysaeki/karada/internal/domain"
)

// FormatPlan formats a macro plan into a styled table with per-food grams
// and calories, the realized P/F/C split, and a repair warning when any
// food was clamped up to the minimum.
func FormatPlan(plan *domain.MacroPlan) string {
	var b strings.Builder

	headers := []string{"FOOD", "ROLE", "GRAMS", "KCAL"}
	rows := make([][]string, 0, len(plan.Foods))
	for i, f := range plan.Foods {
		rows = append(rows, []string{
			Bold(f.Name),
			Dim(string(domain.PriorityForIndex(i))),
			StyleGreen.Render(fmt.Sprintf("%.0f g", f.Grams)),
			fmt.Sprintf("%.1f", f.Kcal),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s kcal\n", StyleHeader.Render(fmt.Sprintf("%.0f", plan.TotalKcal))))
	b.WriteString(fmt.Sprintf("Split: %s\n", FormatSplit(plan.Split)))

	if plan.Repaired {
		b.WriteString("\n")
		b.WriteString(Warn("some portions were raised to the minimum; totals may drift") + "\n")
	}

	return RenderBox("Macro Plan", b.String())
}

// FormatSplit renders a P/F/C split as "P 30% / F 20% / C 50%".
func FormatSplit(s domain.MacroSplit) string {
	return fmt.Sprintf("%s / %s / %s",
		StyleRed.Render(fmt.Sprintf("P %.0f%%", s.ProteinPct)),
		StyleYellow.Render(fmt.Sprintf("F %.0f%%", s.FatPct)),
		StyleBlue.Render(fmt.Sprintf("C %.0f%%", s.CarbPct)),
	)
}

// FormatEstimate wraps the free-text calorie estimate in a box, listing the
// dishes it covers.
func FormatEstimate(dishes []domain.Dish, text string) string {
	var b strings.Builder
	for _, d := range dishes {
		b.WriteString(Dim("• "+d.Describe()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(text))
	return RenderBox("Calorie Estimate", b.String())
}

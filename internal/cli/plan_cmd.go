package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysaeki/karada/internal/cli/formatter"
	"github.com/ysaeki/karada/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		kcal     float64
		protein  float64
		fat      float64
		carb     float64
		foods    []string
		minGrams float64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Split a calorie target into grams per food",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req domain.PlanRequest
			if cmd.Flags().Changed("foods") {
				req = domain.PlanRequest{
					Foods: foods,
					Target: domain.MacroTarget{
						TotalKcal:  kcal,
						ProteinPct: protein,
						FatPct:     fat,
						CarbPct:    carb,
					},
					MinGrams: minGrams,
				}
			} else {
				var err error
				req, err = collectPlanRequest(app)
				if err != nil {
					return err
				}
			}
			return runPlan(app, req)
		},
	}

	cmd.Flags().Float64Var(&kcal, "kcal", 0, "Target calories per day")
	cmd.Flags().Float64Var(&protein, "protein", 30, "Protein share in percent")
	cmd.Flags().Float64Var(&fat, "fat", 20, "Fat share in percent")
	cmd.Flags().Float64Var(&carb, "carb", 50, "Carb share in percent")
	cmd.Flags().StringSliceVar(&foods, "foods", nil, "Foods to plan, staple first")
	cmd.Flags().Float64Var(&minGrams, "min-grams", domain.DefaultMinGrams, "Minimum grams per food")

	return cmd
}

// collectPlanRequest runs the food list and macro target forms. The calorie
// field is pre-filled from the session's energy calculation when one exists.
func collectPlanRequest(app *App) (domain.PlanRequest, error) {
	var foodList string
	if err := foodsForm(&foodList).Run(); err != nil {
		return domain.PlanRequest{}, err
	}

	data := newTargetFormData(app.Session.DefaultPlanKcal())
	if err := targetForm(data).Run(); err != nil {
		return domain.PlanRequest{}, err
	}

	return domain.PlanRequest{
		Foods:    splitFoods(foodList),
		Target:   data.Target(),
		MinGrams: domain.DefaultMinGrams,
	}, nil
}

// runPlan asks the planner for a gram split and prints it. A failed call
// is reported as a warning, never as a fatal error, and leaves the
// previous plan in place.
func runPlan(app *App, req domain.PlanRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	stop := formatter.StartSpinner("Planning grams...")
	plan, err := app.Planner.Plan(context.Background(), req)
	stop()

	if err != nil {
		fmt.Println(formatter.Warn(fmt.Sprintf("plan failed: %v", err)))
		if app.Session.LastPlan != nil {
			fmt.Println(formatter.Dim("Showing the previous plan:"))
			fmt.Println(formatter.FormatPlan(app.Session.LastPlan))
		}
		return nil
	}

	app.Session.LastPlan = plan
	fmt.Println(formatter.FormatPlan(plan))
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ysaeki/karada/internal/cli/formatter"
	"github.com/ysaeki/karada/internal/domain"
	"github.com/ysaeki/karada/internal/energy"
)

func newTDEECmd(app *App) *cobra.Command {
	var (
		sex      string
		age      int
		weight   float64
		height   float64
		units    string
		activity string
		formula  string
		bodyFat  float64
	)

	cmd := &cobra.Command{
		Use:   "tdee",
		Short: "Calculate BMR and daily calorie targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p *domain.Profile
			if cmd.Flags().Changed("weight") || cmd.Flags().Changed("age") {
				p = &domain.Profile{
					Sex:        domain.Sex(sex),
					Age:        age,
					Weight:     weight,
					Height:     height,
					Units:      domain.UnitSystem(units),
					Activity:   domain.ActivityLevel(activity),
					Formula:    domain.BMRFormula(formula),
					BodyFatPct: bodyFat,
				}
			} else {
				var err error
				p, err = collectProfile(app)
				if err != nil {
					return err
				}
			}
			return runTDEE(app, p)
		},
	}

	cmd.Flags().StringVar(&sex, "sex", "male", "Biological sex (male, female)")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Body weight (kg, or lb with --units imperial)")
	cmd.Flags().Float64Var(&height, "height", 0, "Height (cm, or in with --units imperial)")
	cmd.Flags().StringVar(&units, "units", "metric", "Unit system (metric, imperial)")
	cmd.Flags().StringVar(&activity, "activity", "moderate", "Activity level (sedentary, light, moderate, active, very_active)")
	cmd.Flags().StringVar(&formula, "formula", "mifflin-st-jeor", "BMR formula (mifflin-st-jeor, katch-mcardle)")
	cmd.Flags().Float64Var(&bodyFat, "body-fat", 0, "Body fat percentage (needed for katch-mcardle)")

	return cmd
}

// collectProfile runs the interactive profile form, pre-filled with the
// inputs saved from the previous calculation.
func collectProfile(app *App) (*domain.Profile, error) {
	var prev *domain.Profile
	if app.Profiles != nil {
		if saved, err := app.Profiles.Get(context.Background()); err == nil {
			prev = saved
		}
	}

	data := newProfileFormData(prev)
	if err := profileForm(data).Run(); err != nil {
		return nil, err
	}
	return data.Profile(), nil
}

// runTDEE validates, calculates, prints, and records the inputs for next time.
func runTDEE(app *App, p *domain.Profile) error {
	est, err := energy.Estimate(p)
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatEnergy(p, est))

	app.Session.SetEnergy(p, est)

	// Saving the inputs is best effort; the calculation already succeeded.
	if app.Profiles != nil {
		if err := app.Profiles.Upsert(context.Background(), p); err != nil {
			fmt.Println(formatter.Warn(fmt.Sprintf("could not save inputs: %v", err)))
		}
	}
	return nil
}

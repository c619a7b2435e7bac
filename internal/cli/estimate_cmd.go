package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ysaeki/karada/internal/cli/formatter"
	"github.com/ysaeki/karada/internal/domain"
)

func newEstimateCmd(app *App) *cobra.Command {
	var dishFlags []string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate calories for a meal you already ate",
		Long: `Estimate calories for one or more dishes.

Dishes can be passed as "name=amount" (e.g. "curry rice=300g") or just
"name" for an unknown amount at a normal serving size. Without --dish the
command collects dishes interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dishes []domain.Dish
			if len(dishFlags) > 0 {
				dishes = parseDishFlags(dishFlags)
			} else {
				var err error
				dishes, err = collectDishes()
				if err != nil {
					return err
				}
			}
			return runEstimate(app, dishes)
		},
	}

	cmd.Flags().StringArrayVar(&dishFlags, "dish", nil, `Dish as "name=amount" or "name" (repeatable)`)

	return cmd
}

// parseDishFlags converts --dish values into dishes. A value without "="
// is treated as an unknown amount at a normal serving.
func parseDishFlags(flags []string) []domain.Dish {
	dishes := make([]domain.Dish, 0, len(flags))
	for _, f := range flags {
		name, amount, found := strings.Cut(f, "=")
		d := domain.Dish{Name: strings.TrimSpace(name)}
		if found && strings.TrimSpace(amount) != "" {
			d.AmountKnown = true
			d.Amount = strings.TrimSpace(amount)
		} else {
			d.Portion = domain.PortionNormal
		}
		dishes = append(dishes, d)
	}
	return dishes
}

// collectDishes runs the interactive add-a-dish loop.
func collectDishes() ([]domain.Dish, error) {
	var dishes []domain.Dish
	for {
		d, err := collectOneDish()
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)

		more := false
		if err := confirmForm("Add another dish?", &more).Run(); err != nil {
			return nil, err
		}
		if !more {
			return dishes, nil
		}
	}
}

func collectOneDish() (domain.Dish, error) {
	var d domain.Dish
	d.Portion = domain.PortionNormal

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dish").
				Placeholder("curry rice").
				Value(&d.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter a dish name")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Do you know the amount?").
				Affirmative("Yes").
				Negative("No").
				Value(&d.AmountKnown),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("300g or 1 bowl").
				Value(&d.Amount).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter an amount")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return !d.AmountKnown }),
		huh.NewGroup(
			huh.NewSelect[domain.PortionSize]().
				Title("Serving Size").
				Options(
					huh.NewOption("Small", domain.PortionSmall),
					huh.NewOption("Normal", domain.PortionNormal),
					huh.NewOption("Large", domain.PortionLarge),
				).
				Value(&d.Portion),
		).WithHideFunc(func() bool { return d.AmountKnown }),
	).WithTheme(karadaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.Dish{}, err
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Amount = strings.TrimSpace(d.Amount)
	return d, nil
}

// runEstimate asks the estimator for a free-text calorie breakdown. A
// failed external call is reported as a warning, never as a fatal error,
// so the interactive menu keeps running.
func runEstimate(app *App, dishes []domain.Dish) error {
	if err := domain.ValidateDishes(dishes); err != nil {
		return err
	}

	stop := formatter.StartSpinner("Estimating calories...")
	text, err := app.Estimator.Estimate(context.Background(), dishes)
	stop()
	if err != nil {
		fmt.Println(formatter.Warn(fmt.Sprintf("estimate failed: %v", err)))
		return nil
	}

	fmt.Println(formatter.FormatEstimate(dishes, text))
	return nil
}

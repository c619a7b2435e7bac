package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
)

type menuChoice string

const (
	menuTDEE     menuChoice = "tdee"
	menuPlan     menuChoice = "plan"
	menuEstimate menuChoice = "estimate"
	menuChat     menuChoice = "chat"
	menuQuit     menuChoice = "quit"
)

// runMenu is the interactive entrypoint when karada is launched with no
// subcommand on a terminal. Flows share one session, so a calorie
// calculation feeds the planner's default target until the program exits.
func runMenu(app *App) error {
	for {
		choice := menuTDEE
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[menuChoice]().
					Title("What do you want to do?").
					Options(
						huh.NewOption("Calculate daily calories (TDEE)", menuTDEE),
						huh.NewOption("Plan macro grams for my foods", menuPlan),
						huh.NewOption("Estimate calories for a meal", menuEstimate),
						huh.NewOption("Ask the coach", menuChat),
						huh.NewOption("Quit", menuQuit),
					).
					Value(&choice),
			),
		).WithTheme(karadaHuhTheme()).WithShowHelp(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if err := dispatchMenu(app, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
		if choice == menuQuit {
			return nil
		}
	}
}

// dispatchMenu runs the flow behind a menu choice.
func dispatchMenu(app *App, choice menuChoice) error {
	switch choice {
	case menuTDEE:
		p, err := collectProfile(app)
		if err != nil {
			return err
		}
		return runTDEE(app, p)
	case menuPlan:
		req, err := collectPlanRequest(app)
		if err != nil {
			return err
		}
		return runPlan(app, req)
	case menuEstimate:
		dishes, err := collectDishes()
		if err != nil {
			return err
		}
		return runEstimate(app, dishes)
	case menuChat:
		return runChatTUI(app)
	case menuQuit:
		return nil
	}
	return nil
}

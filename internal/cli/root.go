package cli

import (
	"github.com/spf13/cobra"

	"github.com/ysaeki/karada/internal/nutrition"
	"github.com/ysaeki/karada/internal/repository"
)

// App holds references to the services and repositories used by CLI commands.
type App struct {
	Profiles  repository.ProfileRepo
	Planner   nutrition.Planner
	Estimator nutrition.Estimator
	Advisor   *nutrition.Advisor

	// Session state shared across flows within one run.
	Session *Session

	// IsInteractive reports whether stdin is a terminal. When true and no
	// subcommand is given, the root command opens the interactive menu.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "karada" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "karada",
		Short: "Personal calorie and macro assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runMenu(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTDEECmd(app),
		newPlanCmd(app),
		newEstimateCmd(app),
		newChatCmd(app),
	)

	return root
}

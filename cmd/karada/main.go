package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/ysaeki/karada/internal/cli"
	"github.com/ysaeki/karada/internal/db"
	"github.com/ysaeki/karada/internal/llm"
	"github.com/ysaeki/karada/internal/nutrition"
	"github.com/ysaeki/karada/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := llm.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Determine DB path: env var or default ~/.karada/karada.db
	dbPath := os.Getenv("KARADA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".karada", "karada.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewClient(cfg, observer)

	app := &cli.App{
		Profiles:  repository.NewSQLiteProfileRepo(database),
		Planner:   nutrition.NewPlanner(client),
		Estimator: nutrition.NewEstimator(client),
		Advisor:   nutrition.NewAdvisor(client),
		Session:   cli.NewSession(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/szabadkai/quarterback/internal/cli"
	"github.com/szabadkai/quarterback/internal/db"
	"github.com/szabadkai/quarterback/internal/repository"
	"github.com/szabadkai/quarterback/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.quarterback/quarterback.db
	dbPath := os.Getenv("QUARTERBACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".quarterback", "quarterback.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	regionRepo := repository.NewSQLiteRegionRepo(database)
	roleRepo := repository.NewSQLiteRoleRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Team:     service.NewTeamService(regionRepo, roleRepo, memberRepo, holidayRepo),
		Projects: service.NewProjectService(projectRepo),
		Capacity: service.NewCapacityService(regionRepo, roleRepo, memberRepo, holidayRepo, projectRepo, settingsRepo),
		Plan:     service.NewPlanService(regionRepo, roleRepo, memberRepo, holidayRepo, projectRepo, settingsRepo, uow),
		Settings: service.NewSettingsService(settingsRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

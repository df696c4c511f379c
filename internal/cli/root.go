package cli

import (
	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Team     service.TeamService
	Projects service.ProjectService
	Capacity service.CapacityService
	Plan     service.PlanService
	Settings service.SettingsService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive-only features (forms, dashboard) gate on it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "quarterback" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "quarterback",
		Short: "Quarterly capacity planner and backlog allocator",
	}

	root.AddCommand(
		newRegionCmd(app),
		newRoleCmd(app),
		newMemberCmd(app),
		newHolidayCmd(app),
		newProjectCmd(app),
		newBacklogCmd(app),
		newCapacityCmd(app),
		newAllocateCmd(app),
		newBoardCmd(app),
		newSettingsCmd(app),
		newDashboardCmd(app),
	)

	return root
}

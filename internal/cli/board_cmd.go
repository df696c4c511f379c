package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
	"github.com/szabadkai/quarterback/internal/domain"
)

func newBoardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage the quarterly board",
	}
	cmd.AddCommand(
		newBoardShowCmd(app),
		newBoardResetCmd(app),
	)
	return cmd
}

func newBoardShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show scheduled projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}
			scheduled := make([]*domain.Project, 0, len(projects))
			for _, p := range projects {
				if p.OwnerID != nil && p.StartDate != nil {
					scheduled = append(scheduled, p)
				}
			}
			if len(scheduled) == 0 {
				fmt.Println("Nothing scheduled. Run \"quarterback allocate\" to fill the board.")
				return nil
			}
			members, err := app.Team.ListMembers(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectList(scheduled, memberNameMap(members)))
			return nil
		},
	}
}

func newBoardResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Unschedule every project back to the backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("board reset clears all assignments; re-run with --yes to confirm")
			}
			if err := app.Projects.ResetBoard(context.Background()); err != nil {
				return err
			}
			fmt.Println("Board cleared. All projects are back in the backlog.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage company holidays",
	}
	cmd.AddCommand(
		newHolidayListCmd(app),
		newHolidayAddCmd(app),
		newHolidayRemoveCmd(app),
	)
	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List company holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays, err := app.Team.ListHolidays(context.Background())
			if err != nil {
				return err
			}
			if len(holidays) == 0 {
				fmt.Println("No company holidays configured.")
				return nil
			}
			rows := make([][]string, 0, len(holidays))
			for _, h := range holidays {
				rows = append(rows, []string{h.Date, h.Name})
			}
			fmt.Println(formatter.RenderTable([]string{"DATE", "NAME"}, rows))
			return nil
		},
	}
}

func newHolidayAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add DATE NAME",
		Short: "Add or rename a company holiday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Team.AddHoliday(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Added holiday %s (%s)\n", args[1], args[0])
			return nil
		},
	}
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DATE",
		Short: "Remove a company holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Team.RemoveHoliday(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed holiday %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
)

func newRegionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Manage regions",
	}
	cmd.AddCommand(
		newRegionListCmd(app),
		newRegionAddCmd(app),
		newRegionUpdateCmd(app),
		newRegionRemoveCmd(app),
	)
	return cmd
}

func newRegionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := app.Team.ListRegions(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(regions))
			for _, r := range regions {
				rows = append(rows, []string{
					r.Name,
					fmt.Sprintf("%.0f", r.PTODays),
					fmt.Sprintf("%.0f", r.Holidays),
				})
			}
			fmt.Println(formatter.RenderTable([]string{"NAME", "PTO DAYS", "HOLIDAYS"}, rows))
			return nil
		},
	}
}

func newRegionAddCmd(app *App) *cobra.Command {
	var pto, holidays float64

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Team.CreateRegion(context.Background(), args[0], pto, holidays)
			if err != nil {
				return err
			}
			fmt.Printf("Created region %s\n", r.Name)
			return nil
		},
	}

	cmd.Flags().Float64Var(&pto, "pto", 0, "Average PTO days per quarter")
	cmd.Flags().Float64Var(&holidays, "holidays", 0, "Regional holidays per quarter")
	return cmd
}

func newRegionUpdateCmd(app *App) *cobra.Command {
	var name string
	var pto, holidays float64

	cmd := &cobra.Command{
		Use:   "update REGION",
		Short: "Update a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRegionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			regions, err := app.Team.ListRegions(ctx)
			if err != nil {
				return err
			}
			for _, r := range regions {
				if r.ID != id {
					continue
				}
				if cmd.Flags().Changed("name") {
					r.Name = name
				}
				if cmd.Flags().Changed("pto") {
					r.PTODays = pto
				}
				if cmd.Flags().Changed("holidays") {
					r.Holidays = holidays
				}
				if err := app.Team.UpdateRegion(ctx, r); err != nil {
					return err
				}
				fmt.Printf("Updated region %s\n", r.Name)
				return nil
			}
			return fmt.Errorf("region not found: %q", args[0])
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Region name")
	cmd.Flags().Float64Var(&pto, "pto", 0, "Average PTO days per quarter")
	cmd.Flags().Float64Var(&holidays, "holidays", 0, "Regional holidays per quarter")
	return cmd
}

func newRegionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REGION",
		Short: "Remove a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRegionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.DeleteRegion(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed region %s\n", args[0])
			return nil
		},
	}
}

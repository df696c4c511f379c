package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change planner settings",
	}
	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsQuarterCmd(app),
	)
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			quarter := s.CurrentQuarter
			if quarter == "" {
				quarter = formatter.Dim("(current)")
			}
			rows := [][]string{
				{"Quarter", quarter},
				{"Engineers (simple mode)", fmt.Sprintf("%d", s.NumEngineers)},
				{"PTO per person", fmt.Sprintf("%.1f days", s.PTOPerPerson)},
				{"Ad-hoc reserve", fmt.Sprintf("%.0f%%", s.AdhocReservePct)},
				{"Bug reserve", fmt.Sprintf("%.0f%%", s.BugReservePct)},
				{"Story point ratio", fmt.Sprintf("%.2f days/pt", s.StoryPointDayRatio)},
				{"Min schedule days", fmt.Sprintf("%d", s.MinScheduleDays)},
			}
			fmt.Println(formatter.RenderTable([]string{"SETTING", "VALUE"}, rows))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		engineers    int
		pto          float64
		adhocReserve float64
		bugReserve   float64
		ratio        float64
		minDays      int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("engineers") {
				s.NumEngineers = engineers
			}
			if cmd.Flags().Changed("pto") {
				s.PTOPerPerson = pto
			}
			if cmd.Flags().Changed("adhoc-reserve") {
				s.AdhocReservePct = adhocReserve
			}
			if cmd.Flags().Changed("bug-reserve") {
				s.BugReservePct = bugReserve
			}
			if cmd.Flags().Changed("ratio") {
				s.StoryPointDayRatio = ratio
			}
			if cmd.Flags().Changed("min-days") {
				s.MinScheduleDays = minDays
			}
			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Println("Settings updated.")
			return nil
		},
	}

	cmd.Flags().IntVar(&engineers, "engineers", 0, "Engineer count used when no members exist")
	cmd.Flags().Float64Var(&pto, "pto", 0, "Average PTO days per person per quarter")
	cmd.Flags().Float64Var(&adhocReserve, "adhoc-reserve", 0, "Percent of capacity held for ad-hoc work")
	cmd.Flags().Float64Var(&bugReserve, "bug-reserve", 0, "Percent of capacity held for bug fixing")
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "Working days per story point")
	cmd.Flags().IntVar(&minDays, "min-days", 0, "Minimum schedulable project length in days")
	return cmd
}

func newSettingsQuarterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quarter LABEL",
		Short: "Set the active planning quarter (Q1-2025)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.SetQuarter(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Planning quarter set to %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
	"github.com/szabadkai/quarterback/internal/contract"
)

func newAllocateCmd(app *App) *cobra.Command {
	quarter := &quarterValue{}

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Auto-assign the backlog across the team",
		Long: `Runs one allocation pass: backlog projects are visited in priority
order (ICE score, then size) and each is assigned to the best-scoring
team member with room left in the quarter. Projects that fit nowhere
stay in the backlog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plan.Plan(context.Background(), contract.PlanRequest{
				Quarter: quarter.String(),
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPlanResult(resp))
			return nil
		},
	}

	cmd.Flags().Var(quarter, "quarter", "Quarter label (Q1-2025); defaults to the configured quarter")
	return cmd
}

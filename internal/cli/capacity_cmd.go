package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
)

func newCapacityCmd(app *App) *cobra.Command {
	quarter := &quarterValue{}

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show the quarterly capacity overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Capacity.Overview(context.Background(), quarter.String())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCapacityOverview(resp))
			return nil
		},
	}

	cmd.Flags().Var(quarter, "quarter", "Quarter label (Q1-2025); defaults to the configured quarter")
	return cmd
}

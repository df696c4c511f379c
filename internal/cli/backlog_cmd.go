package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
	"github.com/szabadkai/quarterback/internal/estimate"
	"github.com/szabadkai/quarterback/internal/scheduler"
)

func newBacklogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backlog",
		Short: "Show the prioritized backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			backlog, err := app.Projects.ListBacklog(ctx)
			if err != nil {
				return err
			}
			if len(backlog) == 0 {
				fmt.Println("Backlog is empty.")
				return nil
			}

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			opts := estimate.Options{
				StoryPointDayRatio: settings.StoryPointDayRatio,
				MinScheduleDays:    settings.MinScheduleDays,
			}
			scheduler.SortBacklog(backlog, opts)

			durations := make(map[string]int, len(backlog))
			for _, p := range backlog {
				durations[p.ID] = estimate.DurationDays(p, opts)
			}

			fmt.Println(formatter.FormatBacklog(backlog, durations))
			return nil
		},
	}
}

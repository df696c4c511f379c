package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
	"github.com/szabadkai/quarterback/internal/service"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectUnscheduleCmd(app),
		newProjectRemoveCmd(app),
	)
	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, projectType, status string
	var impact, confidence, effort, points, mandays int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			input := service.ProjectInput{
				Name:          name,
				Type:          projectType,
				Status:        status,
				ICEImpact:     impact,
				ICEConfidence: confidence,
				ICEEffort:     effort,
				StoryPoints:   points,
			}
			if cmd.Flags().Changed("mandays") {
				input.MandayEstimate = &mandays
			}

			// With no name given and a terminal attached, collect the
			// fields interactively instead of failing.
			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := runProjectForm(&input); err != nil {
					return err
				}
			}

			p, err := app.Projects.Create(ctx, input)
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s (ICE %.1f, %d points)\n", p.Name, p.ICEScore, p.StoryPoints)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type tag (default feature)")
	cmd.Flags().StringVar(&status, "status", "", "Status (planned|in_progress|at_risk|blocked|completed)")
	cmd.Flags().IntVar(&impact, "impact", 5, "ICE impact (1-10)")
	cmd.Flags().IntVar(&confidence, "confidence", 5, "ICE confidence (1-10)")
	cmd.Flags().IntVar(&effort, "effort", 5, "ICE effort (1-10)")
	cmd.Flags().IntVar(&points, "points", 0, "Explicit story points (overrides derivation)")
	cmd.Flags().IntVar(&mandays, "mandays", 0, "Explicit man-day estimate")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects yet.")
				return nil
			}
			members, err := app.Team.ListMembers(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectList(projects, memberNameMap(members)))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PROJECT",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, id)
			if err != nil {
				return err
			}
			ownerName := ""
			if p.Owned() {
				if m, err := app.Team.GetMember(ctx, *p.OwnerID); err == nil {
					ownerName = m.Name
				}
			}
			fmt.Println(formatter.FormatProjectDetail(p, ownerName))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, projectType, status string
	var impact, confidence, effort, points, mandays int

	cmd := &cobra.Command{
		Use:   "update PROJECT",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, id)
			if err != nil {
				return err
			}

			input := service.ProjectInput{
				Name:           p.Name,
				Type:           p.Type,
				Status:         string(p.Status),
				ICEImpact:      p.ICEImpact,
				ICEConfidence:  p.ICEConfidence,
				ICEEffort:      p.ICEEffort,
				StoryPoints:    p.StoryPoints,
				MandayEstimate: p.MandayEstimate,
			}
			if cmd.Flags().Changed("name") {
				input.Name = name
			}
			if cmd.Flags().Changed("type") {
				input.Type = projectType
			}
			if cmd.Flags().Changed("status") {
				input.Status = status
			}
			if cmd.Flags().Changed("impact") {
				input.ICEImpact = impact
			}
			if cmd.Flags().Changed("confidence") {
				input.ICEConfidence = confidence
			}
			if cmd.Flags().Changed("effort") {
				input.ICEEffort = effort
			}
			if cmd.Flags().Changed("points") {
				input.StoryPoints = points
			}
			if cmd.Flags().Changed("mandays") {
				input.MandayEstimate = &mandays
			}

			updated, err := app.Projects.Update(ctx, id, input)
			if err != nil {
				return err
			}
			fmt.Printf("Updated project %s (ICE %.1f)\n", updated.Name, updated.ICEScore)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type tag")
	cmd.Flags().StringVar(&status, "status", "", "Status (planned|in_progress|at_risk|blocked|completed)")
	cmd.Flags().IntVar(&impact, "impact", 5, "ICE impact (1-10)")
	cmd.Flags().IntVar(&confidence, "confidence", 5, "ICE confidence (1-10)")
	cmd.Flags().IntVar(&effort, "effort", 5, "ICE effort (1-10)")
	cmd.Flags().IntVar(&points, "points", 0, "Explicit story points")
	cmd.Flags().IntVar(&mandays, "mandays", 0, "Explicit man-day estimate (0 clears it)")
	return cmd
}

func newProjectUnscheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unschedule PROJECT",
		Short: "Return a project to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Unschedule(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Unscheduled %s\n", args[0])
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

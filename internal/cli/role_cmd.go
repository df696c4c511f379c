package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
)

func newRoleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage roles",
	}
	cmd.AddCommand(
		newRoleListCmd(app),
		newRoleAddCmd(app),
		newRoleUpdateCmd(app),
		newRoleRemoveCmd(app),
	)
	return cmd
}

func newRoleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := app.Team.ListRoles(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(roles))
			for _, r := range roles {
				rows = append(rows, []string{r.Name, fmt.Sprintf("%.0f%%", r.Focus)})
			}
			fmt.Println(formatter.RenderTable([]string{"NAME", "FOCUS"}, rows))
			return nil
		},
	}
}

func newRoleAddCmd(app *App) *cobra.Command {
	var focus float64

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Team.CreateRole(context.Background(), args[0], focus)
			if err != nil {
				return err
			}
			fmt.Printf("Created role %s (%.0f%% focus)\n", r.Name, r.Focus)
			return nil
		},
	}

	cmd.Flags().Float64Var(&focus, "focus", 100, "Focus percentage (10-200)")
	return cmd
}

func newRoleUpdateCmd(app *App) *cobra.Command {
	var name string
	var focus float64

	cmd := &cobra.Command{
		Use:   "update ROLE",
		Short: "Update a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoleID(ctx, app, args[0])
			if err != nil {
				return err
			}
			roles, err := app.Team.ListRoles(ctx)
			if err != nil {
				return err
			}
			for _, r := range roles {
				if r.ID != id {
					continue
				}
				if cmd.Flags().Changed("name") {
					r.Name = name
				}
				if cmd.Flags().Changed("focus") {
					r.Focus = focus
				}
				if err := app.Team.UpdateRole(ctx, r); err != nil {
					return err
				}
				fmt.Printf("Updated role %s\n", r.Name)
				return nil
			}
			return fmt.Errorf("role not found: %q", args[0])
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Role name")
	cmd.Flags().Float64Var(&focus, "focus", 100, "Focus percentage (10-200)")
	return cmd
}

func newRoleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ROLE",
		Short: "Remove a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoleID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.DeleteRole(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed role %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/service"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}
	cmd.AddCommand(
		newMemberListCmd(app),
		newMemberAddCmd(app),
		newMemberUpdateCmd(app),
		newMemberRemoveCmd(app),
	)
	return cmd
}

// parsePreferences turns repeated "type=level" flags into a preference map.
func parsePreferences(pairs []string) (map[string]domain.PreferenceLevel, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	prefs := make(map[string]domain.PreferenceLevel, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --prefer format %q, expected type=level", pair)
		}
		prefs[parts[0]] = domain.ParsePreferenceLevel(parts[1])
	}
	return prefs, nil
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			members, err := app.Team.ListMembers(ctx)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("No team members yet.")
				return nil
			}
			regions, err := app.Team.ListRegions(ctx)
			if err != nil {
				return err
			}
			roles, err := app.Team.ListRoles(ctx)
			if err != nil {
				return err
			}
			regionNames := make(map[string]string, len(regions))
			for _, r := range regions {
				regionNames[r.ID] = r.Name
			}
			roleNames := make(map[string]string, len(roles))
			for _, r := range roles {
				roleNames[r.ID] = r.Name
			}
			fmt.Println(formatter.FormatMemberList(members, regionNames, roleNames))
			return nil
		},
	}
}

func newMemberAddCmd(app *App) *cobra.Command {
	var region, role string
	var pto, prefer []string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			regionID, err := resolveRegionID(ctx, app, region)
			if err != nil {
				return err
			}
			roleID, err := resolveRoleID(ctx, app, role)
			if err != nil {
				return err
			}
			prefs, err := parsePreferences(prefer)
			if err != nil {
				return err
			}
			m, err := app.Team.AddMember(ctx, service.MemberInput{
				Name:            args[0],
				RegionID:        regionID,
				RoleID:          roleID,
				PTODates:        pto,
				TypePreferences: prefs,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added %s\n", m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "Region name or ID")
	cmd.Flags().StringVar(&role, "role", "", "Role name or ID")
	cmd.Flags().StringArrayVar(&pto, "pto", nil, "PTO dates (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringArrayVar(&prefer, "prefer", nil, "Type preference (type=loved|preferred|neutral|avoided|disliked)")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newMemberUpdateCmd(app *App) *cobra.Command {
	var name, region, role string
	var pto, prefer []string

	cmd := &cobra.Command{
		Use:   "update MEMBER",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Team.GetMember(ctx, id)
			if err != nil {
				return err
			}

			input := service.MemberInput{
				Name:            m.Name,
				RegionID:        m.RegionID,
				RoleID:          m.RoleID,
				PTODates:        m.PTODates,
				TypePreferences: m.TypePreferences,
			}
			if cmd.Flags().Changed("name") {
				input.Name = name
			}
			if cmd.Flags().Changed("region") {
				input.RegionID, err = resolveRegionID(ctx, app, region)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("role") {
				input.RoleID, err = resolveRoleID(ctx, app, role)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("pto") {
				input.PTODates = pto
			}
			if cmd.Flags().Changed("prefer") {
				input.TypePreferences, err = parsePreferences(prefer)
				if err != nil {
					return err
				}
			}

			updated, err := app.Team.UpdateMember(ctx, id, input)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&region, "region", "", "Region name or ID")
	cmd.Flags().StringVar(&role, "role", "", "Role name or ID")
	cmd.Flags().StringArrayVar(&pto, "pto", nil, "PTO dates (replaces the existing set)")
	cmd.Flags().StringArrayVar(&prefer, "prefer", nil, "Type preference (replaces the existing set)")
	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MEMBER",
		Short: "Remove a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.RemoveMember(ctx, id); err != nil {
				return err
			}
			// Owned projects keep their dates but lose the owner link.
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/szabadkai/quarterback/internal/domain"
)

// resolveByNameOrID matches user input against a list of (id, name) pairs:
// exact name match (case-insensitive) first, then exact ID, then unique ID
// prefix. Shared by every entity-addressing command.
func resolveByNameOrID(input, kind string, ids, names []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s is required", kind)
	}
	for i, name := range names {
		if strings.EqualFold(name, input) {
			return ids[i], nil
		}
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveRegionID(ctx context.Context, app *App, input string) (string, error) {
	regions, err := app.Team.ListRegions(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(regions))
	names := make([]string, len(regions))
	for i, r := range regions {
		ids[i], names[i] = r.ID, r.Name
	}
	return resolveByNameOrID(input, "region", ids, names)
}

func resolveRoleID(ctx context.Context, app *App, input string) (string, error) {
	roles, err := app.Team.ListRoles(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(roles))
	names := make([]string, len(roles))
	for i, r := range roles {
		ids[i], names[i] = r.ID, r.Name
	}
	return resolveByNameOrID(input, "role", ids, names)
}

func resolveMemberID(ctx context.Context, app *App, input string) (string, error) {
	members, err := app.Team.ListMembers(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(members))
	names := make([]string, len(members))
	for i, m := range members {
		ids[i], names[i] = m.ID, m.Name
	}
	return resolveByNameOrID(input, "member", ids, names)
}

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(projects))
	names := make([]string, len(projects))
	for i, p := range projects {
		ids[i], names[i] = p.ID, p.Name
	}
	return resolveByNameOrID(input, "project", ids, names)
}

// memberNameMap builds an ID-to-name lookup for display.
func memberNameMap(members []*domain.TeamMember) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}

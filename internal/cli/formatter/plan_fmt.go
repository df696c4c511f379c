package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/szabadkai/quarterback/internal/contract"
	"github.com/szabadkai/quarterback/internal/domain"
)

// FormatPlanResult renders the outcome of one allocation pass.
func FormatPlanResult(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Allocation " + resp.Quarter))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Scheduled %s of %d backlog project(s)\n\n",
		StyleGreen.Render(fmt.Sprintf("%d", resp.ScheduledCount)),
		resp.BacklogBefore,
	))

	rows := make([][]string, 0, len(resp.Assignments))
	for _, a := range resp.Assignments {
		rows = append(rows, []string{
			a.ProjectName,
			StyleBlue.Render(a.MemberName),
			a.StartDate,
			a.EndDate,
			fmt.Sprintf("%dd", a.RequiredDays),
		})
	}
	b.WriteString(RenderTable([]string{"PROJECT", "OWNER", "START", "END", "EST"}, rows))

	if len(resp.Unplaced) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Unplaced:") + "\n")
		for _, name := range resp.Unplaced {
			b.WriteString("  " + Dim("· ") + name + "\n")
		}
	}

	return b.String()
}

// FormatMemberList renders team members with their region, role, PTO count
// and preference summary.
func FormatMemberList(members []*domain.TeamMember, regionNames, roleNames map[string]string) string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			shortID(m.ID),
			m.Name,
			regionNames[m.RegionID],
			roleNames[m.RoleID],
			fmt.Sprintf("%d", len(m.PTODates)),
			preferenceSummary(m.TypePreferences),
		})
	}
	return RenderTable([]string{"ID", "NAME", "REGION", "ROLE", "PTO", "PREFERENCES"}, rows)
}

func preferenceSummary(prefs map[string]domain.PreferenceLevel) string {
	if len(prefs) == 0 {
		return Dim("–")
	}
	var loved, disliked []string
	for t, level := range prefs {
		switch level {
		case domain.PrefLoved, domain.PrefPreferred:
			loved = append(loved, t)
		case domain.PrefAvoided, domain.PrefDisliked:
			disliked = append(disliked, t)
		}
	}
	sort.Strings(loved)
	sort.Strings(disliked)
	var parts []string
	if len(loved) > 0 {
		parts = append(parts, StyleGreen.Render("+"+strings.Join(loved, ",")))
	}
	if len(disliked) > 0 {
		parts = append(parts, StyleRed.Render("-"+strings.Join(disliked, ",")))
	}
	if len(parts) == 0 {
		return Dim("neutral")
	}
	return strings.Join(parts, " ")
}

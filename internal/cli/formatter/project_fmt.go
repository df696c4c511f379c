package formatter

import (
	"fmt"
	"strings"

	"github.com/szabadkai/quarterback/internal/domain"
)

// FormatProjectList renders projects as a table. Member names are resolved
// through the supplied map; unresolved owners fall back to a dimmed dash.
func FormatProjectList(projects []*domain.Project, memberNames map[string]string) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			shortID(p.ID),
			p.Name,
			StatusPill(p.Status),
			p.Type,
			fmt.Sprintf("%.1f", p.ICEScore),
			fmt.Sprintf("%d", p.StoryPoints),
			ownerCell(p, memberNames),
			dateRangeCell(p),
		})
	}
	return RenderTable(
		[]string{"ID", "NAME", "STATUS", "TYPE", "ICE", "SP", "OWNER", "DATES"},
		rows,
	)
}

// FormatBacklog renders the prioritized backlog with durations.
func FormatBacklog(projects []*domain.Project, durations map[string]int) string {
	rows := make([][]string, 0, len(projects))
	for i, p := range projects {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			shortID(p.ID),
			p.Name,
			StyleYellow.Render(fmt.Sprintf("%.1f", p.ICEScore)),
			fmt.Sprintf("%dd", durations[p.ID]),
		})
	}
	return RenderTable([]string{"#", "ID", "NAME", "ICE", "EST"}, rows)
}

// FormatProjectDetail renders one project in full.
func FormatProjectDetail(p *domain.Project, ownerName string) string {
	var b strings.Builder
	b.WriteString(Bold(p.Name) + "  " + StatusPill(p.Status) + "\n")
	b.WriteString(Dim("ID        ") + p.ID + "\n")
	b.WriteString(Dim("Type      ") + p.Type + "\n")
	b.WriteString(fmt.Sprintf("%s impact %d · confidence %d · effort %d → %s\n",
		Dim("ICE       "), p.ICEImpact, p.ICEConfidence, p.ICEEffort,
		StyleYellow.Render(fmt.Sprintf("%.1f", p.ICEScore))))
	b.WriteString(fmt.Sprintf("%s %d points\n", Dim("Estimate  "), p.StoryPoints))
	if p.MandayEstimate != nil {
		b.WriteString(fmt.Sprintf("%s %d man-days (explicit)\n", Dim("Man-days  "), *p.MandayEstimate))
	}
	if ownerName != "" {
		b.WriteString(Dim("Owner     ") + ownerName + "\n")
	}
	if p.Scheduled() {
		b.WriteString(fmt.Sprintf("%s %s → %s\n", Dim("Schedule  "),
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02")))
	} else {
		b.WriteString(Dim("Schedule  ") + Dim("backlog") + "\n")
	}
	return b.String()
}

func ownerCell(p *domain.Project, memberNames map[string]string) string {
	if !p.Owned() {
		return Dim("–")
	}
	if name, ok := memberNames[*p.OwnerID]; ok {
		return name
	}
	return Dim("–")
}

func dateRangeCell(p *domain.Project) string {
	if !p.Scheduled() {
		return Dim("backlog")
	}
	return fmt.Sprintf("%s → %s", p.StartDate.Format("01-02"), p.EndDate.Format("01-02"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return StyleDim.Render(id[:8])
	}
	return StyleDim.Render(id)
}

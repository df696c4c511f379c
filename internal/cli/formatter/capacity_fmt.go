package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/szabadkai/quarterback/internal/contract"
)

// FormatCapacityOverview renders the full capacity report for a quarter.
func FormatCapacityOverview(resp *contract.CapacityResponse) string {
	var b strings.Builder

	b.WriteString(Header("Capacity " + resp.Quarter))
	b.WriteString("\n\n")

	r := resp.Result
	b.WriteString(fmt.Sprintf("%s %d working days\n", Dim("Quarter      "), r.WorkingDays))
	b.WriteString(fmt.Sprintf("%s %s person-days\n", Dim("Theoretical  "), Bold(fmt.Sprintf("%d", r.TheoreticalCapacity))))
	b.WriteString(fmt.Sprintf("%s %d person-days\n", Dim("Time off     "), r.TimeOffTotal))
	b.WriteString(fmt.Sprintf("%s %d person-days\n", Dim("Reserves     "), r.ReserveTotal))
	b.WriteString(fmt.Sprintf("%s %s person-days\n", Dim("Net          "), StyleGreen.Render(fmt.Sprintf("%d", r.NetCapacity))))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %d days  %s  %s\n",
		Dim("Committed    "),
		resp.CommittedDays,
		FormatUtilization(resp.UtilizationPct),
		UtilizationIndicator(resp.Status),
	))

	if len(r.Members) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(r.Members))
		for _, m := range r.Members {
			rows = append(rows, []string{
				m.Name,
				m.Region,
				m.Role,
				fmt.Sprintf("%d", m.Theoretical),
				fmt.Sprintf("%d", m.TimeOff),
				StyleGreen.Render(fmt.Sprintf("%d", m.Net)),
			})
		}
		b.WriteString(RenderTable(
			[]string{"MEMBER", "REGION", "ROLE", "DAYS", "OFF", "NET"},
			rows,
		))
	}

	return b.String()
}

// FormatUtilization renders a utilization percentage, tolerating the NaN
// and +Inf sentinels.
func FormatUtilization(pct float64) string {
	switch {
	case math.IsNaN(pct):
		return Dim("n/a")
	case math.IsInf(pct, 1):
		return StyleRed.Render("∞%")
	default:
		return fmt.Sprintf("%.0f%% utilized", pct)
	}
}

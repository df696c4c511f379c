package capacity

import (
	"math"

	"github.com/szabadkai/quarterback/internal/calendar"
	"github.com/szabadkai/quarterback/internal/domain"
)

// Config is the input snapshot for one capacity calculation. Profile mode
// is selected automatically whenever Team, Regions, and Roles are all
// non-empty; otherwise the flat simple-mode figures are used.
type Config struct {
	Quarter         string
	Team            []*domain.TeamMember
	Regions         []*domain.Region
	Roles           []*domain.Role
	CompanyHolidays []*domain.CompanyHoliday

	// Simple-mode inputs.
	NumEngineers int
	PTOPerPerson float64

	AdhocReservePct float64
	BugReservePct   float64
}

// MemberBreakdown is the per-member view, rounded for display only.
type MemberBreakdown struct {
	ID          string
	Name        string
	Region      string
	Role        string
	Theoretical int
	TimeOff     int
	Net         int
}

// Result holds the aggregate capacity figures in person-days.
type Result struct {
	TheoreticalCapacity int
	TimeOffTotal        int
	ReserveTotal        int
	NetCapacity         int
	WorkingDays         int
	Members             []MemberBreakdown
}

// Calculate computes quarterly capacity for the given configuration.
//
// All intermediate math stays in float64; rounding happens once at the
// output boundary. Rounding per member instead would drift the totals for
// certain team sizes, so the accumulation order here is a correctness
// property, not a style choice.
func Calculate(cfg Config) Result {
	workingDays := calendar.WorkingDaysInQuarter(cfg.Quarter)

	var theoretical, timeOff float64
	var members []MemberBreakdown

	if len(cfg.Team) > 0 && len(cfg.Regions) > 0 && len(cfg.Roles) > 0 {
		theoretical, timeOff, members = profileTotals(cfg, workingDays)
	} else {
		engineers := math.Max(0, float64(cfg.NumEngineers))
		pto := math.Max(0, cfg.PTOPerPerson)
		theoretical = engineers * float64(workingDays)
		// Company holidays affect everyone, so they scale with team size.
		timeOff = engineers*pto + engineers*float64(len(cfg.CompanyHolidays))
	}

	// Reserves come off available capacity (after time off), not
	// theoretical, so time off is not penalized twice.
	available := theoretical - timeOff
	reserves := available * (math.Max(0, cfg.AdhocReservePct) + math.Max(0, cfg.BugReservePct)) / 100
	net := math.Max(0, available-reserves)

	return Result{
		TheoreticalCapacity: int(math.Round(theoretical)),
		TimeOffTotal:        int(math.Round(timeOff)),
		ReserveTotal:        int(math.Round(reserves)),
		NetCapacity:         int(math.Round(net)),
		WorkingDays:         workingDays,
		Members:             members,
	}
}

func profileTotals(cfg Config, workingDays int) (theoretical, timeOff float64, members []MemberBreakdown) {
	regions := make(map[string]*domain.Region, len(cfg.Regions))
	for _, r := range cfg.Regions {
		regions[r.ID] = r
	}
	roles := make(map[string]*domain.Role, len(cfg.Roles))
	for _, r := range cfg.Roles {
		roles[r.ID] = r
	}

	// Dated company holidays count once per member, flatly; they are not
	// matched against each member's own calendar here.
	holidayCount := float64(len(cfg.CompanyHolidays))

	for _, member := range cfg.Team {
		role := roles[member.RoleID]
		region := regions[member.RegionID]

		focus := role.ClampedFocus() / 100
		memberTheoretical := float64(workingDays) * focus

		var pto, regional float64
		var regionName, roleName string
		if region != nil {
			pto = region.PTODays
			regional = region.Holidays
			regionName = region.Name
		} else {
			pto = math.Max(0, cfg.PTOPerPerson)
			regionName = "N/A"
		}
		if role != nil {
			roleName = role.Name
		} else {
			roleName = "N/A"
		}

		memberTimeOff := pto + holidayCount + regional
		memberNet := math.Max(0, memberTheoretical-memberTimeOff)

		theoretical += memberTheoretical
		timeOff += memberTimeOff
		members = append(members, MemberBreakdown{
			ID:          member.ID,
			Name:        member.Name,
			Region:      regionName,
			Role:        roleName,
			Theoretical: int(math.Round(memberTheoretical)),
			TimeOff:     int(math.Round(memberTimeOff)),
			Net:         int(math.Round(memberNet)),
		})
	}
	return theoretical, timeOff, members
}

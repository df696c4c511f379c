package scheduler

import (
	"math"
	"time"

	"github.com/szabadkai/quarterback/internal/calendar"
	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/estimate"
)

// Snapshot is the consistent in-memory state one scheduling pass consumes.
// The allocator never mutates it; assignments are returned to the caller to
// commit as a unit.
type Snapshot struct {
	Team     []*domain.TeamMember
	Regions  []*domain.Region
	Roles    []*domain.Role
	Holidays []*domain.CompanyHoliday
	Projects []*domain.Project
	Estimate estimate.Options
}

// MemberAvailability tracks one member's remaining room in the horizon.
// Load and NextAvailable advance as the allocator commits projects.
type MemberAvailability struct {
	MemberID          string
	Member            *domain.TeamMember
	FocusPercent      float64 // fraction, 1.0 = full-time
	Unavailable       calendar.DateSet
	EffectiveCapacity int
	NextAvailable     time.Time
	Load              int
}

// RemainingCapacity is the working days this member can still absorb.
func (a *MemberAvailability) RemainingCapacity() int {
	remaining := a.EffectiveCapacity - a.Load
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BuildAvailability computes one availability record per team member over
// [rangeStart, rangeEnd]. Personal PTO and dated company holidays inside
// the horizon form the unavailable set; the region's flat holiday count is
// subtracted from effective capacity instead, since those days have no
// dates attached. Already-scheduled projects seed each owner's load and
// push their next available day past the latest assignment.
func BuildAvailability(snap Snapshot, rangeStart, rangeEnd time.Time) []*MemberAvailability {
	regions := make(map[string]*domain.Region, len(snap.Regions))
	for _, r := range snap.Regions {
		regions[r.ID] = r
	}
	roles := make(map[string]*domain.Role, len(snap.Roles))
	for _, r := range snap.Roles {
		roles[r.ID] = r
	}

	holidayDates := holidaysInRange(snap.Holidays, rangeStart, rangeEnd)

	availability := make([]*MemberAvailability, 0, len(snap.Team))
	byID := make(map[string]*MemberAvailability, len(snap.Team))

	for _, member := range snap.Team {
		focus := 1.0
		if role := roles[member.RoleID]; role != nil {
			focus = role.ClampedFocus() / 100
		}

		var regionalHolidays float64
		if region := regions[member.RegionID]; region != nil {
			regionalHolidays = region.Holidays
		}

		unavailable := calendar.NewDateSet(member.PTODates...)
		for _, d := range holidayDates {
			unavailable.Add(d)
		}

		workingDays := calendar.CountWorkingDays(rangeStart, rangeEnd, unavailable)
		effective := math.Floor(float64(workingDays)*focus) - regionalHolidays
		if effective < 0 {
			effective = 0
		}

		record := &MemberAvailability{
			MemberID:          member.ID,
			Member:            member,
			FocusPercent:      focus,
			Unavailable:       unavailable,
			EffectiveCapacity: int(effective),
			NextAvailable:     calendar.ClampToWorkingDay(rangeStart, unavailable),
		}
		availability = append(availability, record)
		byID[member.ID] = record
	}

	// Fold in existing assignments: each scheduled project consumes its
	// owner's capacity and pushes their next free day forward.
	for _, project := range snap.Projects {
		if !project.Scheduled() || !project.Owned() {
			continue
		}
		record := byID[*project.OwnerID]
		if record == nil {
			continue
		}
		duration := calendar.CountWorkingDays(*project.StartDate, *project.EndDate, nil)
		nextStart := calendar.NextWorkingDay(*project.EndDate, nil)
		nextFree := calendar.ClampToWorkingDay(nextStart, record.Unavailable)
		if nextFree.After(record.NextAvailable) {
			record.NextAvailable = nextFree
		}
		record.Load += duration
	}

	return availability
}

func holidaysInRange(holidays []*domain.CompanyHoliday, start, end time.Time) []string {
	from, to := calendar.Day(start), calendar.Day(end)
	var dates []string
	for _, h := range holidays {
		d, err := time.Parse(calendar.DateLayout, h.Date)
		if err != nil {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			dates = append(dates, h.Date)
		}
	}
	return dates
}

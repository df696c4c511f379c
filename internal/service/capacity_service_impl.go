package service

import (
	"context"
	"time"

	"github.com/szabadkai/quarterback/internal/calendar"
	"github.com/szabadkai/quarterback/internal/capacity"
	"github.com/szabadkai/quarterback/internal/contract"
	"github.com/szabadkai/quarterback/internal/repository"
)

// CapacityServiceImpl implements CapacityService.
type CapacityServiceImpl struct {
	regions  repository.RegionRepo
	roles    repository.RoleRepo
	members  repository.MemberRepo
	holidays repository.HolidayRepo
	projects repository.ProjectRepo
	settings repository.SettingsRepo
}

// NewCapacityService creates a CapacityService backed by the given repositories.
func NewCapacityService(
	regions repository.RegionRepo,
	roles repository.RoleRepo,
	members repository.MemberRepo,
	holidays repository.HolidayRepo,
	projects repository.ProjectRepo,
	settings repository.SettingsRepo,
) *CapacityServiceImpl {
	return &CapacityServiceImpl{
		regions:  regions,
		roles:    roles,
		members:  members,
		holidays: holidays,
		projects: projects,
		settings: settings,
	}
}

// Overview computes the capacity picture for the given quarter. An empty
// quarter falls back to the persisted current quarter, then to the quarter
// containing today. A malformed label is tolerated: the calculator degrades
// to its flat working-day estimate and committed days are reported as zero.
func (s *CapacityServiceImpl) Overview(ctx context.Context, quarter string) (*contract.CapacityResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	quarter = resolveQuarter(quarter, settings.CurrentQuarter)

	team, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := s.regions.List(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	result := capacity.Calculate(capacity.Config{
		Quarter:         quarter,
		Team:            team,
		Regions:         regions,
		Roles:           roles,
		CompanyHolidays: holidays,
		NumEngineers:    settings.NumEngineers,
		PTOPerPerson:    settings.PTOPerPerson,
		AdhocReservePct: settings.AdhocReservePct,
		BugReservePct:   settings.BugReservePct,
	})

	committed := 0
	if qr, err := calendar.ParseQuarter(quarter); err == nil {
		for _, p := range projects {
			if !p.Scheduled() {
				continue
			}
			committed += overlapWorkingDays(*p.StartDate, *p.EndDate, qr.Start, qr.End)
		}
	}

	pct := capacity.Utilization(float64(committed), float64(result.NetCapacity))
	return &contract.CapacityResponse{
		Quarter:        quarter,
		Result:         result,
		CommittedDays:  committed,
		UtilizationPct: pct,
		Status:         capacity.StatusFor(pct),
	}, nil
}

func resolveQuarter(requested, persisted string) string {
	if requested != "" {
		return requested
	}
	if persisted != "" {
		return persisted
	}
	return calendar.CurrentQuarterLabel(time.Now().UTC())
}

// overlapWorkingDays counts the working days of [start, end] that fall
// inside [rangeStart, rangeEnd].
func overlapWorkingDays(start, end, rangeStart, rangeEnd time.Time) int {
	if start.Before(rangeStart) {
		start = rangeStart
	}
	if end.After(rangeEnd) {
		end = rangeEnd
	}
	if start.After(end) {
		return 0
	}
	return calendar.CountWorkingDays(start, end, nil)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/szabadkai/quarterback/internal/calendar"
	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/repository"
)

// TeamServiceImpl implements TeamService.
type TeamServiceImpl struct {
	regions  repository.RegionRepo
	roles    repository.RoleRepo
	members  repository.MemberRepo
	holidays repository.HolidayRepo
}

// NewTeamService creates a TeamService backed by the given repositories.
func NewTeamService(regions repository.RegionRepo, roles repository.RoleRepo, members repository.MemberRepo, holidays repository.HolidayRepo) *TeamServiceImpl {
	return &TeamServiceImpl{regions: regions, roles: roles, members: members, holidays: holidays}
}

func (s *TeamServiceImpl) CreateRegion(ctx context.Context, name string, ptoDays, holidays float64) (*domain.Region, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("region name is required")
	}
	if ptoDays < 0 || holidays < 0 {
		return nil, fmt.Errorf("pto days and holidays must be non-negative")
	}
	r := &domain.Region{ID: uuid.New().String(), Name: name, PTODays: ptoDays, Holidays: holidays}
	if err := s.regions.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *TeamServiceImpl) UpdateRegion(ctx context.Context, r *domain.Region) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("region name is required")
	}
	if r.PTODays < 0 || r.Holidays < 0 {
		return fmt.Errorf("pto days and holidays must be non-negative")
	}
	return s.regions.Update(ctx, r)
}

func (s *TeamServiceImpl) DeleteRegion(ctx context.Context, id string) error {
	n, err := s.members.CountByRegion(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("region has %d member(s); reassign them first", n)
	}
	all, err := s.regions.List(ctx)
	if err != nil {
		return err
	}
	if len(all) <= 1 {
		return fmt.Errorf("at least one region must remain")
	}
	return s.regions.Delete(ctx, id)
}

func (s *TeamServiceImpl) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	return s.regions.List(ctx)
}

func (s *TeamServiceImpl) CreateRole(ctx context.Context, name string, focus float64) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	if focus < domain.MinFocus || focus > domain.MaxFocus {
		return nil, fmt.Errorf("focus must be between %d and %d", domain.MinFocus, domain.MaxFocus)
	}
	r := &domain.Role{ID: uuid.New().String(), Name: name, Focus: focus}
	if err := s.roles.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *TeamServiceImpl) UpdateRole(ctx context.Context, r *domain.Role) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("role name is required")
	}
	if r.Focus < domain.MinFocus || r.Focus > domain.MaxFocus {
		return fmt.Errorf("focus must be between %d and %d", domain.MinFocus, domain.MaxFocus)
	}
	return s.roles.Update(ctx, r)
}

func (s *TeamServiceImpl) DeleteRole(ctx context.Context, id string) error {
	n, err := s.members.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("role has %d member(s); reassign them first", n)
	}
	all, err := s.roles.List(ctx)
	if err != nil {
		return err
	}
	if len(all) <= 1 {
		return fmt.Errorf("at least one role must remain")
	}
	return s.roles.Delete(ctx, id)
}

func (s *TeamServiceImpl) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *TeamServiceImpl) AddMember(ctx context.Context, input MemberInput) (*domain.TeamMember, error) {
	if err := s.validateMemberInput(ctx, &input); err != nil {
		return nil, err
	}
	m := &domain.TeamMember{
		ID:              uuid.New().String(),
		Name:            input.Name,
		RegionID:        input.RegionID,
		RoleID:          input.RoleID,
		PTODates:        input.PTODates,
		TypePreferences: input.TypePreferences,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *TeamServiceImpl) UpdateMember(ctx context.Context, id string, input MemberInput) (*domain.TeamMember, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateMemberInput(ctx, &input); err != nil {
		return nil, err
	}
	m.Name = input.Name
	m.RegionID = input.RegionID
	m.RoleID = input.RoleID
	m.PTODates = input.PTODates
	m.TypePreferences = input.TypePreferences
	if err := s.members.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *TeamServiceImpl) RemoveMember(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}

func (s *TeamServiceImpl) GetMember(ctx context.Context, id string) (*domain.TeamMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *TeamServiceImpl) ListMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.members.List(ctx)
}

func (s *TeamServiceImpl) AddHoliday(ctx context.Context, date, name string) error {
	if _, err := time.Parse(calendar.DateLayout, date); err != nil {
		return fmt.Errorf("invalid holiday date %q (expected YYYY-MM-DD)", date)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("holiday name is required")
	}
	return s.holidays.Upsert(ctx, &domain.CompanyHoliday{Date: date, Name: name})
}

func (s *TeamServiceImpl) RemoveHoliday(ctx context.Context, date string) error {
	return s.holidays.Delete(ctx, date)
}

func (s *TeamServiceImpl) ListHolidays(ctx context.Context) ([]*domain.CompanyHoliday, error) {
	return s.holidays.List(ctx)
}

func (s *TeamServiceImpl) validateMemberInput(ctx context.Context, input *MemberInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return fmt.Errorf("member name is required")
	}
	if _, err := s.regions.GetByID(ctx, input.RegionID); err != nil {
		return fmt.Errorf("resolving region: %w", err)
	}
	if _, err := s.roles.GetByID(ctx, input.RoleID); err != nil {
		return fmt.Errorf("resolving role: %w", err)
	}
	for _, d := range input.PTODates {
		if _, err := time.Parse(calendar.DateLayout, d); err != nil {
			return fmt.Errorf("invalid pto date %q (expected YYYY-MM-DD)", d)
		}
	}
	return nil
}

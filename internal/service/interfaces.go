package service

import (
	"context"

	"github.com/szabadkai/quarterback/internal/contract"
	"github.com/szabadkai/quarterback/internal/domain"
)

// TeamService manages regions, roles, team members, and company holidays.
// Regions and roles are reference data: at least one of each must remain,
// and neither can be deleted while a member still points at it.
type TeamService interface {
	CreateRegion(ctx context.Context, name string, ptoDays, holidays float64) (*domain.Region, error)
	UpdateRegion(ctx context.Context, r *domain.Region) error
	DeleteRegion(ctx context.Context, id string) error
	ListRegions(ctx context.Context) ([]*domain.Region, error)

	CreateRole(ctx context.Context, name string, focus float64) (*domain.Role, error)
	UpdateRole(ctx context.Context, r *domain.Role) error
	DeleteRole(ctx context.Context, id string) error
	ListRoles(ctx context.Context) ([]*domain.Role, error)

	AddMember(ctx context.Context, input MemberInput) (*domain.TeamMember, error)
	UpdateMember(ctx context.Context, id string, input MemberInput) (*domain.TeamMember, error)
	RemoveMember(ctx context.Context, id string) error
	GetMember(ctx context.Context, id string) (*domain.TeamMember, error)
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)

	AddHoliday(ctx context.Context, date, name string) error
	RemoveHoliday(ctx context.Context, date string) error
	ListHolidays(ctx context.Context) ([]*domain.CompanyHoliday, error)
}

// MemberInput carries the mutable fields of a team member.
type MemberInput struct {
	Name            string
	RegionID        string
	RoleID          string
	PTODates        []string
	TypePreferences map[string]domain.PreferenceLevel
}

// ProjectInput carries the mutable fields of a project. Derived values
// (ICE score, story points) are recomputed by the service on every write.
type ProjectInput struct {
	Name           string
	Type           string
	Status         string
	ICEImpact      int
	ICEConfidence  int
	ICEEffort      int
	StoryPoints    int
	MandayEstimate *int
}

// ProjectService manages the quarterly board and its backlog.
type ProjectService interface {
	Create(ctx context.Context, input ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, input ProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListBacklog(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
	Unschedule(ctx context.Context, id string) error
	ResetBoard(ctx context.Context) error
}

// CapacityService computes the quarterly capacity overview.
type CapacityService interface {
	Overview(ctx context.Context, quarter string) (*contract.CapacityResponse, error)
}

// PlanService runs one auto-allocation pass and commits it atomically.
type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

// SettingsService reads and writes the single planner configuration row.
type SettingsService interface {
	Get(ctx context.Context) (*domain.PlanSettings, error)
	Update(ctx context.Context, s *domain.PlanSettings) error
	SetQuarter(ctx context.Context, label string) error
}

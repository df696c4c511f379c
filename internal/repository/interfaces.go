package repository

import (
	"context"

	"github.com/szabadkai/quarterback/internal/domain"
)

type RegionRepo interface {
	Create(ctx context.Context, r *domain.Region) error
	GetByID(ctx context.Context, id string) (*domain.Region, error)
	GetByName(ctx context.Context, name string) (*domain.Region, error)
	List(ctx context.Context) ([]*domain.Region, error)
	Update(ctx context.Context, r *domain.Region) error
	Delete(ctx context.Context, id string) error
}

type RoleRepo interface {
	Create(ctx context.Context, r *domain.Role) error
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Update(ctx context.Context, r *domain.Role) error
	Delete(ctx context.Context, id string) error
}

type MemberRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	CountByRegion(ctx context.Context, regionID string) (int, error)
	CountByRole(ctx context.Context, roleID string) (int, error)
}

type HolidayRepo interface {
	Upsert(ctx context.Context, h *domain.CompanyHoliday) error
	List(ctx context.Context) ([]*domain.CompanyHoliday, error)
	Delete(ctx context.Context, date string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	UnscheduleAll(ctx context.Context) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.PlanSettings, error)
	Update(ctx context.Context, s *domain.PlanSettings) error
}

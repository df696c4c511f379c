package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/repository"
)

// MakeRegion inserts a region and returns it.
func MakeRegion(t *testing.T, database *sql.DB, name string, ptoDays, holidays float64) *domain.Region {
	t.Helper()
	r := &domain.Region{ID: uuid.New().String(), Name: name, PTODays: ptoDays, Holidays: holidays}
	if err := repository.NewSQLiteRegionRepo(database).Create(context.Background(), r); err != nil {
		t.Fatalf("creating fixture region: %v", err)
	}
	return r
}

// MakeRole inserts a role and returns it.
func MakeRole(t *testing.T, database *sql.DB, name string, focus float64) *domain.Role {
	t.Helper()
	r := &domain.Role{ID: uuid.New().String(), Name: name, Focus: focus}
	if err := repository.NewSQLiteRoleRepo(database).Create(context.Background(), r); err != nil {
		t.Fatalf("creating fixture role: %v", err)
	}
	return r
}

// MakeMember inserts a team member linked to the given region and role.
func MakeMember(t *testing.T, database *sql.DB, name, regionID, roleID string) *domain.TeamMember {
	t.Helper()
	m := &domain.TeamMember{ID: uuid.New().String(), Name: name, RegionID: regionID, RoleID: roleID}
	if err := repository.NewSQLiteMemberRepo(database).Create(context.Background(), m); err != nil {
		t.Fatalf("creating fixture member: %v", err)
	}
	return m
}

// MakeProject inserts a backlog project with the given ICE inputs.
func MakeProject(t *testing.T, database *sql.DB, name string, impact, confidence, effort int) *domain.Project {
	t.Helper()
	now := time.Now().UTC()
	p := &domain.Project{
		ID:            uuid.New().String(),
		Name:          name,
		Status:        domain.ProjectPlanned,
		Type:          domain.DefaultProjectType,
		ICEImpact:     impact,
		ICEConfidence: confidence,
		ICEEffort:     effort,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := repository.NewSQLiteProjectRepo(database).Create(context.Background(), p); err != nil {
		t.Fatalf("creating fixture project: %v", err)
	}
	return p
}

package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/szabadkai/quarterback/internal/repository"
	"github.com/szabadkai/quarterback/internal/service"
	"github.com/szabadkai/quarterback/internal/testutil"
)

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t.Fatalf("bad test date %q: %v", iso, err)
	}
	return d
}

type testServices struct {
	db       *sql.DB
	team     service.TeamService
	projects service.ProjectService
	capacity service.CapacityService
	plan     service.PlanService
	settings service.SettingsService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)

	regions := repository.NewSQLiteRegionRepo(database)
	roles := repository.NewSQLiteRoleRepo(database)
	members := repository.NewSQLiteMemberRepo(database)
	holidays := repository.NewSQLiteHolidayRepo(database)
	projects := repository.NewSQLiteProjectRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	uow := testutil.NewTestUoW(database)

	return &testServices{
		db:       database,
		team:     service.NewTeamService(regions, roles, members, holidays),
		projects: service.NewProjectService(projects),
		capacity: service.NewCapacityService(regions, roles, members, holidays, projects, settings),
		plan:     service.NewPlanService(regions, roles, members, holidays, projects, settings, uow),
		settings: service.NewSettingsService(settings),
	}
}

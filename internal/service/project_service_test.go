package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szabadkai/quarterback/internal/repository"
	"github.com/szabadkai/quarterback/internal/service"
	"github.com/szabadkai/quarterback/internal/testutil"
)

func TestProjectService_CreateDerivesEstimates(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewProjectService(repository.NewSQLiteProjectRepo(database))
	ctx := context.Background()

	p, err := svc.Create(ctx, service.ProjectInput{
		Name:          "Payments migration",
		ICEImpact:     9,
		ICEConfidence: 9,
		ICEEffort:     5,
	})
	require.NoError(t, err)

	assert.Equal(t, 16.2, p.ICEScore)
	assert.Equal(t, 7, p.StoryPoints)
	assert.Equal(t, "feature", p.Type)
	assert.Equal(t, "planned", string(p.Status))
	assert.True(t, p.InBacklog())
}

func TestProjectService_CreateClampsICEInputs(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewProjectService(repository.NewSQLiteProjectRepo(database))

	p, err := svc.Create(context.Background(), service.ProjectInput{
		Name:          "Weird inputs",
		ICEImpact:     99,
		ICEConfidence: -3,
		ICEEffort:     0,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, p.ICEImpact)
	assert.Equal(t, 1, p.ICEConfidence)
	assert.Equal(t, 1, p.ICEEffort)
	// (10 * 1) / 1 = 10, the clamp ceiling.
	assert.Equal(t, 10.0, p.ICEScore)
}

func TestProjectService_RejectsInvalidStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewProjectService(repository.NewSQLiteProjectRepo(database))

	_, err := svc.Create(context.Background(), service.ProjectInput{
		Name:   "Bad status",
		Status: "done",
	})
	assert.Error(t, err)
}

func TestProjectService_UpdateRecomputes(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewProjectService(repository.NewSQLiteProjectRepo(database))
	ctx := context.Background()

	p, err := svc.Create(ctx, service.ProjectInput{
		Name: "Initial", ICEImpact: 5, ICEConfidence: 5, ICEEffort: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.ICEScore)

	updated, err := svc.Update(ctx, p.ID, service.ProjectInput{
		Name: "Initial", ICEImpact: 8, ICEConfidence: 10, ICEEffort: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.ICEScore)
}

func TestProjectService_MandayEstimateClamped(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewProjectService(repository.NewSQLiteProjectRepo(database))

	huge := 9999
	p, err := svc.Create(context.Background(), service.ProjectInput{
		Name:           "Oversized",
		ICEImpact:      5,
		ICEConfidence:  5,
		ICEEffort:      5,
		MandayEstimate: &huge,
	})
	require.NoError(t, err)
	require.NotNil(t, p.MandayEstimate)
	assert.Equal(t, 2000, *p.MandayEstimate)

	zero := 0
	p2, err := svc.Create(context.Background(), service.ProjectInput{
		Name:           "Zero estimate",
		ICEImpact:      5,
		ICEConfidence:  5,
		ICEEffort:      5,
		MandayEstimate: &zero,
	})
	require.NoError(t, err)
	assert.Nil(t, p2.MandayEstimate, "non-positive estimates are treated as absent")
}

func TestProjectService_BacklogAndReset(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	svc := service.NewProjectService(repo)
	ctx := context.Background()

	region := testutil.MakeRegion(t, database, "Reset Region", 10, 0)
	role := testutil.MakeRole(t, database, "Reset Role", 100)
	member := testutil.MakeMember(t, database, "Ada", region.ID, role.ID)

	p, err := svc.Create(ctx, service.ProjectInput{Name: "Scheduled one", ICEImpact: 5, ICEConfidence: 5, ICEEffort: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.ProjectInput{Name: "Backlog one", ICEImpact: 5, ICEConfidence: 5, ICEEffort: 5})
	require.NoError(t, err)

	// Schedule the first project directly.
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	start := mustDate(t, "2025-01-06")
	end := mustDate(t, "2025-01-10")
	got.Assign(member.ID, start, end, got.UpdatedAt)
	require.NoError(t, repo.Update(ctx, got))

	backlog, err := svc.ListBacklog(ctx)
	require.NoError(t, err)
	require.Len(t, backlog, 1)
	assert.Equal(t, "Backlog one", backlog[0].Name)

	require.NoError(t, svc.ResetBoard(ctx))
	backlog, err = svc.ListBacklog(ctx)
	require.NoError(t, err)
	assert.Len(t, backlog, 2)
}

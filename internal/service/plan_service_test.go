package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szabadkai/quarterback/internal/contract"
	"github.com/szabadkai/quarterback/internal/service"
	"github.com/szabadkai/quarterback/internal/testutil"
)

func planErrCode(t *testing.T, err error) contract.PlanErrorCode {
	t.Helper()
	var planErr *contract.PlanError
	require.True(t, errors.As(err, &planErr), "expected a PlanError, got %v", err)
	return planErr.Code
}

func TestPlanService_InvalidQuarter(t *testing.T) {
	s := newTestServices(t)
	_, err := s.plan.Plan(context.Background(), contract.PlanRequest{Quarter: "2025-Q1"})
	assert.Equal(t, contract.PlanErrInvalidQuarter, planErrCode(t, err))
}

func TestPlanService_NoTeam(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.projects.Create(ctx, service.ProjectInput{Name: "Lonely", ICEImpact: 5, ICEConfidence: 5, ICEEffort: 5})
	require.NoError(t, err)

	_, err = s.plan.Plan(ctx, contract.PlanRequest{Quarter: "Q1-2025"})
	assert.Equal(t, contract.PlanErrNoTeam, planErrCode(t, err))
}

func TestPlanService_EmptyBacklog(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	region := testutil.MakeRegion(t, s.db, "Plan Region", 0, 0)
	role := testutil.MakeRole(t, s.db, "Plan Role", 100)
	testutil.MakeMember(t, s.db, "Ada", region.ID, role.ID)

	_, err := s.plan.Plan(ctx, contract.PlanRequest{Quarter: "Q1-2025"})
	assert.Equal(t, contract.PlanErrEmptyBacklog, planErrCode(t, err))
}

func TestPlanService_AllocatesByPriorityAndPersists(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	region := testutil.MakeRegion(t, s.db, "Plan Region", 0, 0)
	role := testutil.MakeRole(t, s.db, "Plan Role", 100)
	member := testutil.MakeMember(t, s.db, "Ada", region.ID, role.ID)

	// Lower priority created first: the allocator must reorder by ICE.
	low, err := s.projects.Create(ctx, service.ProjectInput{
		Name: "Nice to have", ICEImpact: 5, ICEConfidence: 5, ICEEffort: 5,
	})
	require.NoError(t, err)
	high, err := s.projects.Create(ctx, service.ProjectInput{
		Name: "Must ship", ICEImpact: 9, ICEConfidence: 9, ICEEffort: 5,
	})
	require.NoError(t, err)

	resp, err := s.plan.Plan(ctx, contract.PlanRequest{Quarter: "Q1-2025"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.ScheduledCount)
	assert.Equal(t, 2, resp.BacklogBefore)
	assert.Empty(t, resp.Unplaced)
	require.Len(t, resp.Assignments, 2)

	// Highest ICE score goes first and starts at the quarter's first
	// working day.
	first := resp.Assignments[0]
	assert.Equal(t, high.ID, first.ProjectID)
	assert.Equal(t, "Ada", first.MemberName)
	assert.Equal(t, "2025-01-01", first.StartDate)
	assert.Equal(t, 7, first.RequiredDays)
	assert.Equal(t, "2025-01-09", first.EndDate)

	// The second project queues behind the first on the same member.
	second := resp.Assignments[1]
	assert.Equal(t, low.ID, second.ProjectID)
	assert.Equal(t, "2025-01-10", second.StartDate)

	// Assignments are persisted.
	got, err := s.projects.Get(ctx, high.ID)
	require.NoError(t, err)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, member.ID, *got.OwnerID)
	assert.False(t, got.InBacklog())

	// A second pass finds nothing left to place.
	_, err = s.plan.Plan(ctx, contract.PlanRequest{Quarter: "Q1-2025"})
	assert.Equal(t, contract.PlanErrEmptyBacklog, planErrCode(t, err))
}

func TestPlanService_NoCapacity(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	region := testutil.MakeRegion(t, s.db, "Plan Region", 0, 0)
	role := testutil.MakeRole(t, s.db, "Plan Role", 100)
	testutil.MakeMember(t, s.db, "Ada", region.ID, role.ID)

	mandays := 2000
	_, err := s.projects.Create(ctx, service.ProjectInput{
		Name: "Boil the ocean", ICEImpact: 10, ICEConfidence: 10, ICEEffort: 10,
		MandayEstimate: &mandays,
	})
	require.NoError(t, err)

	_, err = s.plan.Plan(ctx, contract.PlanRequest{Quarter: "Q1-2025"})
	assert.Equal(t, contract.PlanErrNoCapacity, planErrCode(t, err))

	// Nothing was committed.
	backlog, err := s.projects.ListBacklog(ctx)
	require.NoError(t, err)
	assert.Len(t, backlog, 1)
}

func TestPlanService_UsesPersistedQuarterWhenUnset(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, s.settings.SetQuarter(ctx, "Q2-2025"))

	region := testutil.MakeRegion(t, s.db, "Plan Region", 0, 0)
	role := testutil.MakeRole(t, s.db, "Plan Role", 100)
	testutil.MakeMember(t, s.db, "Ada", region.ID, role.ID)

	_, err := s.projects.Create(ctx, service.ProjectInput{
		Name: "Quarterless", ICEImpact: 5, ICEConfidence: 5, ICEEffort: 5,
	})
	require.NoError(t, err)

	resp, err := s.plan.Plan(ctx, contract.PlanRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Q2-2025", resp.Quarter)
	assert.Equal(t, "2025-04-01", resp.RangeStart.Format("2006-01-02"))
}

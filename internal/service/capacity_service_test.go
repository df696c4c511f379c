package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szabadkai/quarterback/internal/capacity"
	"github.com/szabadkai/quarterback/internal/repository"
	"github.com/szabadkai/quarterback/internal/testutil"
)

// Q1-2025 has 64 weekdays (23 + 20 + 21).

func TestCapacityService_SimpleModeDefaults(t *testing.T) {
	s := newTestServices(t)

	// No team members: the calculator falls back to the flat settings
	// figures (5 engineers, 8 PTO days each, 20% + 10% reserves).
	resp, err := s.capacity.Overview(context.Background(), "Q1-2025")
	require.NoError(t, err)

	assert.Equal(t, 64, resp.Result.WorkingDays)
	assert.Equal(t, 320, resp.Result.TheoreticalCapacity)
	assert.Equal(t, 40, resp.Result.TimeOffTotal)
	assert.Equal(t, 84, resp.Result.ReserveTotal)
	assert.Equal(t, 196, resp.Result.NetCapacity)
	assert.Zero(t, resp.CommittedDays)
	assert.Equal(t, capacity.StatusLow, resp.Status)
}

func TestCapacityService_ProfileMode(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	region := testutil.MakeRegion(t, s.db, "Cap Region", 10, 5)
	role := testutil.MakeRole(t, s.db, "Cap Role", 100)
	testutil.MakeMember(t, s.db, "Ada", region.ID, role.ID)

	resp, err := s.capacity.Overview(ctx, "Q1-2025")
	require.NoError(t, err)

	// One member at 100% focus: 64 theoretical, 15 days off (10 PTO + 5
	// regional holidays), 49 available, 30% reserved.
	assert.Equal(t, 64, resp.Result.TheoreticalCapacity)
	assert.Equal(t, 15, resp.Result.TimeOffTotal)
	assert.Equal(t, 15, resp.Result.ReserveTotal)
	assert.Equal(t, 34, resp.Result.NetCapacity)

	require.Len(t, resp.Result.Members, 1)
	member := resp.Result.Members[0]
	assert.Equal(t, "Ada", member.Name)
	assert.Equal(t, "Cap Region", member.Region)
	assert.Equal(t, 64, member.Theoretical)
	assert.Equal(t, 49, member.Net)
}

func TestCapacityService_CommittedDaysAndUtilization(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	region := testutil.MakeRegion(t, s.db, "Cap Region", 10, 5)
	role := testutil.MakeRole(t, s.db, "Cap Role", 100)
	member := testutil.MakeMember(t, s.db, "Ada", region.ID, role.ID)

	repo := repository.NewSQLiteProjectRepo(s.db)
	p := testutil.MakeProject(t, s.db, "Committed work", 5, 5, 5)
	p.Assign(member.ID, mustDate(t, "2025-01-06"), mustDate(t, "2025-01-17"), p.UpdatedAt)
	require.NoError(t, repo.Update(ctx, p))

	resp, err := s.capacity.Overview(ctx, "Q1-2025")
	require.NoError(t, err)

	// Two full working weeks.
	assert.Equal(t, 10, resp.CommittedDays)
	// 10 / 34 net capacity, rounded.
	assert.Equal(t, 29.0, resp.UtilizationPct)
	assert.Equal(t, capacity.StatusLow, resp.Status)
}

func TestCapacityService_MalformedQuarterDegrades(t *testing.T) {
	s := newTestServices(t)

	resp, err := s.capacity.Overview(context.Background(), "sometime")
	require.NoError(t, err)
	assert.Equal(t, 65, resp.Result.WorkingDays, "malformed labels fall back to the flat estimate")
	assert.Zero(t, resp.CommittedDays)
}

package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/estimate"
)

func date(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t.Fatalf("bad test date %q: %v", iso, err)
	}
	return d
}

func fullTimeSnapshot(members ...*domain.TeamMember) Snapshot {
	return Snapshot{
		Team:    members,
		Regions: []*domain.Region{{ID: "r1", Name: "Anywhere"}},
		Roles:   []*domain.Role{{ID: "ic", Name: "IC", Focus: 100}},
	}
}

func member(id, name string) *domain.TeamMember {
	return &domain.TeamMember{ID: id, Name: name, RegionID: "r1", RoleID: "ic"}
}

func backlogProject(id string, ice float64, points int) *domain.Project {
	return &domain.Project{ID: id, Name: id, ICEScore: ice, StoryPoints: points, Type: "feature"}
}

func TestAllocateBacklog_SequentialOnOneMember(t *testing.T) {
	snap := fullTimeSnapshot(member("m1", "Ada"))
	snap.Projects = []*domain.Project{
		backlogProject("low", 5.0, 8),
		backlogProject("high", 16.2, 7),
	}

	result := AllocateBacklog(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))

	require.Len(t, result.Assignments, 2)
	assert.Empty(t, result.Unplaced)

	// Higher ICE is placed first, starting at the first working day.
	first, second := result.Assignments[0], result.Assignments[1]
	assert.Equal(t, "high", first.ProjectID)
	assert.Equal(t, date(t, "2025-01-01"), first.Start)
	assert.Equal(t, date(t, "2025-01-09"), first.End)
	assert.Equal(t, 7, first.RequiredDays)

	// The second queues behind the first on the same member.
	assert.Equal(t, "low", second.ProjectID)
	assert.Equal(t, "m1", second.MemberID)
	assert.Equal(t, date(t, "2025-01-10"), second.Start)
}

func TestAllocateBacklog_BalancesLoadAcrossMembers(t *testing.T) {
	snap := fullTimeSnapshot(member("m1", "Ada"), member("m2", "Grace"))
	snap.Projects = []*domain.Project{
		backlogProject("a", 9.0, 10),
		backlogProject("b", 8.0, 10),
	}

	result := AllocateBacklog(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))

	require.Len(t, result.Assignments, 2)
	// After the first assignment loads Ada, the load-balance weight sends
	// the second project to Grace.
	assert.Equal(t, "m1", result.Assignments[0].MemberID)
	assert.Equal(t, "m2", result.Assignments[1].MemberID)
	// Both start at the quarter's first working day.
	assert.Equal(t, date(t, "2025-01-01"), result.Assignments[1].Start)
}

func TestAllocateBacklog_TypePreferenceSteersAssignment(t *testing.T) {
	ada := member("m1", "Ada")
	grace := member("m2", "Grace")
	grace.TypePreferences = map[string]domain.PreferenceLevel{"security": domain.PrefLoved}

	snap := fullTimeSnapshot(ada, grace)
	p := backlogProject("audit", 9.0, 10)
	p.Type = "security"
	snap.Projects = []*domain.Project{p}

	result := AllocateBacklog(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "m2", result.Assignments[0].MemberID, "the member who loves the type wins")
}

func TestAllocateBacklog_PartTimeTakesLongerCalendarTime(t *testing.T) {
	snap := Snapshot{
		Team:    []*domain.TeamMember{{ID: "m1", Name: "Lead", RegionID: "r1", RoleID: "half"}},
		Regions: []*domain.Region{{ID: "r1", Name: "Anywhere"}},
		Roles:   []*domain.Role{{ID: "half", Name: "Half-time", Focus: 50}},
	}
	snap.Projects = []*domain.Project{backlogProject("p", 5.0, 5)}

	result := AllocateBacklog(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))

	require.Len(t, result.Assignments, 1)
	a := result.Assignments[0]
	assert.Equal(t, 5, a.RequiredDays)
	// 5 required days at 50% focus span 10 working days: Jan 1 + 10.
	assert.Equal(t, date(t, "2025-01-14"), a.End)
}

func TestAllocateBacklog_OversizedProjectUnplaced(t *testing.T) {
	snap := fullTimeSnapshot(member("m1", "Ada"))
	big := 500
	snap.Projects = []*domain.Project{
		{ID: "whale", Name: "whale", ICEScore: 10, MandayEstimate: &big, Type: "feature"},
		backlogProject("minnow", 5.0, 5),
	}

	result := AllocateBacklog(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "minnow", result.Assignments[0].ProjectID)
	assert.Equal(t, []string{"whale"}, result.Unplaced)
	// The failed attempt does not consume capacity: the minnow still
	// starts at the first working day.
	assert.Equal(t, date(t, "2025-01-01"), result.Assignments[0].Start)
}

func TestAllocateBacklog_RespectsExistingSchedule(t *testing.T) {
	owner := "m1"
	start, end := date(t, "2025-01-01"), date(t, "2025-01-31")
	scheduled := &domain.Project{
		ID: "busy", Name: "busy", Type: "feature",
		OwnerID: &owner, StartDate: &start, EndDate: &end,
	}

	snap := fullTimeSnapshot(member("m1", "Ada"))
	snap.Projects = []*domain.Project{scheduled, backlogProject("next", 5.0, 5)}

	result := AllocateBacklog(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))

	require.Len(t, result.Assignments, 1)
	// The new project starts after the existing assignment ends.
	assert.Equal(t, date(t, "2025-02-03"), result.Assignments[0].Start)
}

func TestAllocateBacklog_EmptyTeam(t *testing.T) {
	snap := Snapshot{Projects: []*domain.Project{backlogProject("p", 5.0, 5)}}
	result := AllocateBacklog(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))
	assert.Empty(t, result.Assignments)
	assert.Empty(t, result.Unplaced)
}

func TestAllocateBacklog_Deterministic(t *testing.T) {
	build := func() Snapshot {
		snap := fullTimeSnapshot(member("m1", "Ada"), member("m2", "Grace"), member("m3", "Linus"))
		snap.Projects = []*domain.Project{
			backlogProject("a", 9.0, 8),
			backlogProject("b", 9.0, 8),
			backlogProject("c", 4.0, 13),
			backlogProject("d", 7.5, 3),
		}
		return snap
	}

	first := AllocateBacklog(build(), date(t, "2025-01-01"), date(t, "2025-03-31"))
	second := AllocateBacklog(build(), date(t, "2025-01-01"), date(t, "2025-03-31"))
	assert.Equal(t, first, second, "identical inputs must allocate identically")
}

func TestSortBacklog(t *testing.T) {
	opts := estimate.Options{}
	a := backlogProject("a", 5.0, 13)
	b := backlogProject("b", 9.0, 5)
	c := backlogProject("c", 5.0, 3)

	backlog := []*domain.Project{a, b, c}
	SortBacklog(backlog, opts)

	// Highest ICE first; ties break on shorter duration.
	assert.Equal(t, []string{"b", "c", "a"}, []string{backlog[0].ID, backlog[1].ID, backlog[2].ID})
}

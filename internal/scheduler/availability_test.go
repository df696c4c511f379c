package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szabadkai/quarterback/internal/domain"
)

func TestBuildAvailability_EffectiveCapacity(t *testing.T) {
	snap := Snapshot{
		Team: []*domain.TeamMember{
			{ID: "m1", Name: "Ada", RegionID: "r1", RoleID: "ic"},
			{ID: "m2", Name: "Grace", RegionID: "r2", RoleID: "em"},
		},
		Regions: []*domain.Region{
			{ID: "r1", Name: "Zero holidays"},
			{ID: "r2", Name: "EMEA", Holidays: 8},
		},
		Roles: []*domain.Role{
			{ID: "ic", Focus: 100},
			{ID: "em", Focus: 60},
		},
	}

	availability := BuildAvailability(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))
	require.Len(t, availability, 2)

	// Full-time, no holidays: all 64 working days.
	assert.Equal(t, 64, availability[0].EffectiveCapacity)
	assert.Equal(t, 1.0, availability[0].FocusPercent)

	// 60% focus minus 8 undated regional holidays: floor(64*0.6) - 8 = 30.
	assert.Equal(t, 30, availability[1].EffectiveCapacity)
}

func TestBuildAvailability_PTOAndHolidaysBlockDays(t *testing.T) {
	snap := Snapshot{
		Team: []*domain.TeamMember{
			{ID: "m1", Name: "Ada", RegionID: "r1", RoleID: "ic", PTODates: []string{"2025-01-02"}},
		},
		Regions:  []*domain.Region{{ID: "r1", Name: "Anywhere"}},
		Roles:    []*domain.Role{{ID: "ic", Focus: 100}},
		Holidays: []*domain.CompanyHoliday{{Date: "2025-01-01", Name: "New Year"}},
	}

	availability := BuildAvailability(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))
	require.Len(t, availability, 1)
	a := availability[0]

	// Two blocked days come out of the 64.
	assert.Equal(t, 62, a.EffectiveCapacity)
	// The first free day skips both the holiday and the PTO day.
	assert.Equal(t, date(t, "2025-01-03"), a.NextAvailable)
}

func TestBuildAvailability_HolidaysOutsideRangeIgnored(t *testing.T) {
	snap := Snapshot{
		Team:     []*domain.TeamMember{{ID: "m1", RegionID: "r1", RoleID: "ic"}},
		Regions:  []*domain.Region{{ID: "r1"}},
		Roles:    []*domain.Role{{ID: "ic", Focus: 100}},
		Holidays: []*domain.CompanyHoliday{{Date: "2025-07-04", Name: "Off quarter"}},
	}

	availability := BuildAvailability(snap, date(t, "2025-01-01"), date(t, "2025-03-31"))
	require.Len(t, availability, 1)
	assert.Equal(t, 64, availability[0].EffectiveCapacity)
}

func TestScoreMembers_NoFitSinksButStaysRanked(t *testing.T) {
	tiny := &MemberAvailability{
		MemberID: "m1", Member: &domain.TeamMember{ID: "m1"},
		FocusPercent: 1.0, EffectiveCapacity: 3,
		NextAvailable: date(t, "2025-01-01"),
	}
	roomy := &MemberAvailability{
		MemberID: "m2", Member: &domain.TeamMember{ID: "m2"},
		FocusPercent: 1.0, EffectiveCapacity: 60,
		NextAvailable: date(t, "2025-01-01"),
	}

	scored := ScoreMembers([]*MemberAvailability{tiny, roomy}, "feature", 10, date(t, "2025-01-01"), date(t, "2025-03-31"))
	require.Len(t, scored, 2)
	assert.Equal(t, "m2", scored[0].Avail.MemberID)
	assert.True(t, scored[0].CanFit)
	assert.False(t, scored[1].CanFit)
	// The no-fit member is penalized, not dropped.
	assert.Greater(t, scored[1].Score, scored[0].Score+noFitPenalty/2)
}

func TestPreferencePenalty(t *testing.T) {
	assert.Equal(t, -1.0, PreferencePenalty(domain.PrefLoved))
	assert.Equal(t, -0.5, PreferencePenalty(domain.PrefPreferred))
	assert.Equal(t, 0.0, PreferencePenalty(domain.PrefNeutral))
	assert.Equal(t, 0.75, PreferencePenalty(domain.PrefAvoided))
	assert.Equal(t, 1.5, PreferencePenalty(domain.PrefDisliked))
}

func TestRemainingCapacity(t *testing.T) {
	a := &MemberAvailability{EffectiveCapacity: 10, Load: 4}
	assert.Equal(t, 6, a.RemainingCapacity())
	a.Load = 15
	assert.Zero(t, a.RemainingCapacity())
}

package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/repository"
	"github.com/szabadkai/quarterback/internal/testutil"
)

func TestMemberRepo_RoundTripWithExtras(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMemberRepo(database)
	ctx := context.Background()

	region := testutil.MakeRegion(t, database, "Test Region", 10, 5)
	role := testutil.MakeRole(t, database, "Test Role", 100)

	m := &domain.TeamMember{
		ID:       uuid.New().String(),
		Name:     "Grace",
		RegionID: region.ID,
		RoleID:   role.ID,
		PTODates: []string{"2025-02-14", "2025-02-17"},
		TypePreferences: map[string]domain.PreferenceLevel{
			"feature":   domain.PrefLoved,
			"tech-debt": domain.PrefDisliked,
		},
	}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name)
	assert.Equal(t, []string{"2025-02-14", "2025-02-17"}, got.PTODates)
	assert.Equal(t, domain.PrefLoved, got.PreferenceFor("feature"))
	assert.Equal(t, domain.PrefDisliked, got.PreferenceFor("tech-debt"))
	assert.Equal(t, domain.PrefNeutral, got.PreferenceFor("research"))
}

func TestMemberRepo_UpdateReplacesExtras(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMemberRepo(database)
	ctx := context.Background()

	region := testutil.MakeRegion(t, database, "Test Region", 10, 5)
	role := testutil.MakeRole(t, database, "Test Role", 100)
	m := testutil.MakeMember(t, database, "Grace", region.ID, role.ID)

	m.PTODates = []string{"2025-03-03"}
	m.TypePreferences = map[string]domain.PreferenceLevel{"security": domain.PrefPreferred}
	require.NoError(t, repo.Update(ctx, m))

	m.PTODates = []string{"2025-04-01", "2025-04-02"}
	m.TypePreferences = map[string]domain.PreferenceLevel{"ops": domain.PrefAvoided}
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-04-01", "2025-04-02"}, got.PTODates)
	assert.Equal(t, domain.PrefNeutral, got.PreferenceFor("security"))
	assert.Equal(t, domain.PrefAvoided, got.PreferenceFor("ops"))
}

func TestMemberRepo_Counts(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMemberRepo(database)
	ctx := context.Background()

	regionA := testutil.MakeRegion(t, database, "Region A", 10, 5)
	regionB := testutil.MakeRegion(t, database, "Region B", 12, 6)
	role := testutil.MakeRole(t, database, "Test Role", 100)

	testutil.MakeMember(t, database, "One", regionA.ID, role.ID)
	testutil.MakeMember(t, database, "Two", regionA.ID, role.ID)
	testutil.MakeMember(t, database, "Three", regionB.ID, role.ID)

	n, err := repo.CountByRegion(ctx, regionA.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountByRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemberRepo_DeleteCascadesExtras(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMemberRepo(database)
	ctx := context.Background()

	region := testutil.MakeRegion(t, database, "Test Region", 10, 5)
	role := testutil.MakeRole(t, database, "Test Role", 100)
	m := testutil.MakeMember(t, database, "Grace", region.ID, role.ID)
	m.PTODates = []string{"2025-05-05"}
	require.NoError(t, repo.Update(ctx, m))

	require.NoError(t, repo.Delete(ctx, m.ID))

	var n int
	err := database.QueryRow("SELECT COUNT(*) FROM member_pto_dates WHERE member_id = ?", m.ID).Scan(&n)
	require.NoError(t, err)
	assert.Zero(t, n)
}

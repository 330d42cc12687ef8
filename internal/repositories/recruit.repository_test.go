package repositories

import (
	"context"
	"crm/config"
	"crm/internal/database"
	. "crm/internal/models"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway sqlite database with the full schema
// applied. No cache server is attached; repositories degrade to the
// database on every read.
func newTestDB(t *testing.T) database.DB {
	t.Helper()

	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "crm_test.db"),
	}

	db, err := database.NewSQL(testConfig)
	require.NoError(t, err)

	_, err = db.Migrate()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRecruitRepository_CreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	recruit := &Recruit{
		Name:     "Sarah Johnson",
		Email:    "sarah@example.com",
		Stage:    StageNew,
		Priority: 2,
	}
	require.NoError(t, repo.Create(ctx, recruit))
	assert.NotZero(t, recruit.ID)

	found, err := repo.GetByID(ctx, recruit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", found.Name)
	assert.Equal(t, StageNew, found.Stage)
	assert.Equal(t, 2, found.Priority)
	assert.Nil(t, found.LastContact)
}

func TestRecruitRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)

	_, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRecruitRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	recruit := &Recruit{Name: "Mike Chen", Stage: StageNew, Priority: 1}
	require.NoError(t, repo.Create(ctx, recruit))

	recruit.Stage = StageContacted
	recruit.Priority = 3
	require.NoError(t, repo.Update(ctx, recruit))

	found, err := repo.GetByID(ctx, recruit.ID)
	require.NoError(t, err)
	assert.Equal(t, StageContacted, found.Stage)
	assert.Equal(t, 3, found.Priority)
}

func TestRecruitRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	recruit := &Recruit{Name: "Mike Chen", Stage: StageNew, Priority: 1}
	require.NoError(t, repo.Create(ctx, recruit))

	require.NoError(t, repo.Delete(ctx, recruit.ID))

	_, err := repo.GetByID(ctx, recruit.ID)
	assert.True(t, IsNotFound(err))
}

func TestRecruitRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)

	err := repo.Delete(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRecruitRepository_MarkContact(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	recruit := &Recruit{Name: "Sarah Johnson", Stage: StageNew, Priority: 1}
	require.NoError(t, repo.Create(ctx, recruit))
	require.Nil(t, recruit.LastContact)

	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkContact(ctx, recruit.ID, at))

	found, err := repo.GetByID(ctx, recruit.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastContact)
	assert.True(t, found.LastContact.Equal(at))
	assert.True(t, found.UpdatedAt.Equal(at))
}

func TestRecruitRepository_MarkContact_AdvancesOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	recruit := &Recruit{Name: "Sarah Johnson", Stage: StageNew, Priority: 1}
	require.NoError(t, repo.Create(ctx, recruit))

	first := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	require.NoError(t, repo.MarkContact(ctx, recruit.ID, first))
	require.NoError(t, repo.MarkContact(ctx, recruit.ID, second))

	found, err := repo.GetByID(ctx, recruit.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastContact)
	assert.True(t, found.LastContact.Equal(second), "last_contact only moves forward with each contact")
	assert.False(t, found.LastContact.Before(first))
}

func TestRecruitRepository_MarkContact_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)

	err := repo.MarkContact(context.Background(), 9999, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRecruitRepository_GetOverdue_FilterAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-5 * 24 * time.Hour)
	fresh := now.Add(-1 * time.Hour)

	seed := []*Recruit{
		{Name: "never contacted low", Stage: StageNew, Priority: 1, BaseModel: BaseModel{UpdatedAt: now.Add(-2 * time.Hour)}},
		{Name: "stale high", Stage: StageContacted, Priority: 3, LastContact: &stale, BaseModel: BaseModel{UpdatedAt: now.Add(-4 * time.Hour)}},
		{Name: "stale high newer", Stage: StageContacted, Priority: 3, LastContact: &stale, BaseModel: BaseModel{UpdatedAt: now.Add(-3 * time.Hour)}},
		{Name: "fresh", Stage: StageContacted, Priority: 5, LastContact: &fresh},
		{Name: "licensed stale", Stage: StageLicensed, Priority: 5, LastContact: &stale},
		{Name: "inactive never contacted", Stage: StageInactive, Priority: 5},
	}
	for _, recruit := range seed {
		require.NoError(t, repo.Create(ctx, recruit))
	}

	overdue, err := repo.GetOverdue(ctx, now)
	require.NoError(t, err)

	names := make([]string, 0, len(overdue))
	for _, recruit := range overdue {
		names = append(names, recruit.Name)
	}

	// Priority descending, least recently updated first within a
	// priority. Terminal and freshly contacted recruits never appear.
	assert.Equal(t, []string{"stale high", "stale high newer", "never contacted low"}, names)
}

func TestRecruitRepository_GetOverdue_MatchesIsOverdue(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	offsets := []*time.Time{
		nil,
		timePtr(now.Add(-1 * time.Hour)),
		timePtr(now.Add(-FollowUpWindow)),
		timePtr(now.Add(-FollowUpWindow - time.Second)),
		timePtr(now.Add(-10 * 24 * time.Hour)),
	}

	stages := append(Stages(), Stage("Pending Review"))
	for _, stage := range stages {
		for i, lastContact := range offsets {
			recruit := &Recruit{
				Name:        string(stage),
				Stage:       stage,
				Priority:    i + 1,
				LastContact: lastContact,
			}
			require.NoError(t, repo.Create(ctx, recruit))
		}
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(stages)*len(offsets))

	expected := map[int]bool{}
	for _, recruit := range all {
		if recruit.IsOverdue(now) {
			expected[recruit.ID] = true
		}
	}

	overdue, err := repo.GetOverdue(ctx, now)
	require.NoError(t, err)

	actual := map[int]bool{}
	for _, recruit := range overdue {
		actual[recruit.ID] = true
	}

	// The SQL filter and the in-memory rule must classify every recruit
	// identically, including the exact boundary cases.
	assert.Equal(t, expected, actual)
}

func TestRecruitRepository_GetAll_Order(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	oldest := &Recruit{Name: "oldest", Stage: StageNew, Priority: 1, BaseModel: BaseModel{UpdatedAt: now.Add(-3 * time.Hour)}}
	middle := &Recruit{Name: "middle", Stage: StageNew, Priority: 1, BaseModel: BaseModel{UpdatedAt: now.Add(-2 * time.Hour)}}
	newest := &Recruit{Name: "newest", Stage: StageNew, Priority: 1, BaseModel: BaseModel{UpdatedAt: now.Add(-1 * time.Hour)}}
	for _, recruit := range []*Recruit{oldest, newest, middle} {
		require.NoError(t, repo.Create(ctx, recruit))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "newest", all[0].Name)
	assert.Equal(t, "middle", all[1].Name)
	assert.Equal(t, "oldest", all[2].Name)
}

func TestRecruitRepository_WeeklyCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecruit(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	seed := []*Recruit{
		{Name: "new this week", Stage: StageNew, Priority: 1, BaseModel: BaseModel{CreatedAt: now.Add(-2 * 24 * time.Hour), UpdatedAt: now.Add(-2 * 24 * time.Hour)}},
		{Name: "old recruit", Stage: StageContacted, Priority: 1, BaseModel: BaseModel{CreatedAt: now.Add(-30 * 24 * time.Hour), UpdatedAt: now.Add(-20 * 24 * time.Hour)}},
		{Name: "licensed this week", Stage: StageLicensed, Priority: 1, BaseModel: BaseModel{CreatedAt: now.Add(-30 * 24 * time.Hour), UpdatedAt: now.Add(-1 * 24 * time.Hour)}},
		{Name: "licensed long ago", Stage: StageLicensed, Priority: 1, BaseModel: BaseModel{CreatedAt: now.Add(-60 * 24 * time.Hour), UpdatedAt: now.Add(-30 * 24 * time.Hour)}},
	}
	for _, recruit := range seed {
		require.NoError(t, repo.Create(ctx, recruit))
	}

	created, err := repo.CountCreatedSince(ctx, weekAgo)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	licensed, err := repo.CountLicensedSince(ctx, weekAgo)
	require.NoError(t, err)
	assert.Equal(t, 1, licensed)
}

package repositories

import (
	"context"
	. "crm/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunicationRepository_CreateAndGetByRecruit(t *testing.T) {
	db := newTestDB(t)
	recruits := NewRecruit(db)
	communications := NewCommunication(db)
	ctx := context.Background()

	recruit := &Recruit{Name: "Sarah Johnson", Stage: StageNew, Priority: 1}
	require.NoError(t, recruits.Create(ctx, recruit))

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []*Communication{
		{RecruitID: recruit.ID, MessageType: MessageTypeManual, Content: "first call", CreatedAt: now.Add(-2 * time.Hour)},
		{RecruitID: recruit.ID, MessageType: MessageTypeQuickMessage, Content: "follow-up text", CreatedAt: now.Add(-1 * time.Hour)},
	}
	for _, entry := range entries {
		require.NoError(t, communications.Create(ctx, entry))
	}

	history, err := communications.GetByRecruit(ctx, recruit.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first.
	assert.Equal(t, "follow-up text", history[0].Content)
	assert.Equal(t, "first call", history[1].Content)
}

func TestCommunicationRepository_GetByRecruit_Empty(t *testing.T) {
	db := newTestDB(t)
	communications := NewCommunication(db)

	history, err := communications.GetByRecruit(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCommunicationRepository_GetRecent(t *testing.T) {
	db := newTestDB(t)
	recruits := NewRecruit(db)
	communications := NewCommunication(db)
	ctx := context.Background()

	sarah := &Recruit{Name: "Sarah Johnson", Stage: StageNew, Priority: 1}
	mike := &Recruit{Name: "Mike Chen", Stage: StageContacted, Priority: 1}
	require.NoError(t, recruits.Create(ctx, sarah))
	require.NoError(t, recruits.Create(ctx, mike))

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []*Communication{
		{RecruitID: sarah.ID, MessageType: MessageTypeManual, Content: "oldest", CreatedAt: now.Add(-3 * time.Hour)},
		{RecruitID: mike.ID, MessageType: MessageTypeManual, Content: "middle", CreatedAt: now.Add(-2 * time.Hour)},
		{RecruitID: sarah.ID, MessageType: MessageTypeQuickMessage, Content: "newest", CreatedAt: now.Add(-1 * time.Hour)},
	}
	for _, entry := range entries {
		require.NoError(t, communications.Create(ctx, entry))
	}

	activity, err := communications.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, activity, 2)

	assert.Equal(t, "newest", activity[0].Content)
	assert.Equal(t, "Sarah Johnson", activity[0].RecruitName)
	assert.Equal(t, "middle", activity[1].Content)
	assert.Equal(t, "Mike Chen", activity[1].RecruitName)
}

func TestCommunicationRepository_DeleteByRecruit(t *testing.T) {
	db := newTestDB(t)
	recruits := NewRecruit(db)
	communications := NewCommunication(db)
	ctx := context.Background()

	keep := &Recruit{Name: "Sarah Johnson", Stage: StageNew, Priority: 1}
	drop := &Recruit{Name: "Mike Chen", Stage: StageNew, Priority: 1}
	require.NoError(t, recruits.Create(ctx, keep))
	require.NoError(t, recruits.Create(ctx, drop))

	require.NoError(t, communications.Create(ctx, &Communication{RecruitID: keep.ID, Content: "keep me"}))
	require.NoError(t, communications.Create(ctx, &Communication{RecruitID: drop.ID, Content: "delete me"}))
	require.NoError(t, communications.Create(ctx, &Communication{RecruitID: drop.ID, Content: "delete me too"}))

	require.NoError(t, communications.DeleteByRecruit(ctx, drop.ID))

	remaining, err := communications.GetByRecruit(ctx, drop.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := communications.GetByRecruit(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

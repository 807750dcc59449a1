package repositories

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryWriteRepository_SaveAndDelete(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	userID := insertUser(t, db, strPtr("author@example.com"), false)
	writer := NewStoryWriteRepository(db, nil)
	reader := NewStoryReadRepository(db, nil)

	story, err := writer.Save(ctx, userID, "He brought his mom.", strPtr("MommasBoy"))
	require.NoError(t, err)
	assert.Equal(t, userID, story.UserID)
	assert.Equal(t, 0, story.SucksCount)
	assert.Equal(t, 0, story.IveHadWorseCount)
	assert.Equal(t, "MommasBoy", *story.StoryName)

	// Exactly at the limit fits the column.
	long, err := writer.Save(ctx, userID, strings.Repeat("é", models.MaxStoryTextLength), nil)
	require.NoError(t, err)
	assert.Nil(t, long.StoryName)

	got, err := reader.GetByID(ctx, story.StoryID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "He brought his mom.", got.Text)

	require.NoError(t, writer.Delete(ctx, story.StoryID))
	assert.ErrorIs(t, writer.Delete(ctx, story.StoryID), sql.ErrNoRows)

	got, err = reader.GetByID(ctx, story.StoryID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoryReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	userID := insertUser(t, db, strPtr("lister@example.com"), false)
	otherID := insertUser(t, db, strPtr("other@example.com"), false)
	writer := NewStoryWriteRepository(db, nil)
	reader := NewStoryReadRepository(db, nil)

	first, err := writer.Save(ctx, userID, "first", nil)
	require.NoError(t, err)
	second, err := writer.Save(ctx, userID, "second", nil)
	require.NoError(t, err)
	_, err = writer.Save(ctx, otherID, "not mine", nil)
	require.NoError(t, err)

	stories, err := reader.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, second.StoryID, stories[0].StoryID)
	assert.Equal(t, first.StoryID, stories[1].StoryID)

	empty, err := reader.ListByUser(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStoryReadRepository_RandomUnvoted(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	authorID := insertUser(t, db, strPtr("writer@example.com"), false)
	voterID := insertUser(t, db, nil, true)
	s1 := insertStory(t, db, authorID, "one", 0, 0)
	s2 := insertStory(t, db, authorID, "two", 0, 0)
	s3 := insertStory(t, db, authorID, "three", 0, 0)

	reader := NewStoryReadRepository(db, nil)
	votes := NewVoteWriteRepository(db, nil)

	require.NoError(t, votes.Save(ctx, voterID, s1, models.VoteSucks))

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 30; i++ {
		story, err := reader.RandomUnvoted(ctx, voterID, nil)
		require.NoError(t, err)
		require.NotNil(t, story)
		assert.NotEqual(t, s1, story.StoryID)
		seen[story.StoryID] = true
	}
	assert.True(t, seen[s2] || seen[s3])

	story, err := reader.RandomUnvoted(ctx, voterID, []uuid.UUID{s2})
	require.NoError(t, err)
	require.NotNil(t, story)
	assert.Equal(t, s3, story.StoryID)

	story, err = reader.RandomUnvoted(ctx, voterID, []uuid.UUID{s2, s3})
	assert.NoError(t, err)
	assert.Nil(t, story)
}

func TestStoryReadRepository_Top(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	authorID := insertUser(t, db, strPtr("top@example.com"), false)
	low := insertStory(t, db, authorID, "low", 1, 9)
	high := insertStory(t, db, authorID, "high", 10, 0)
	tieA := insertStory(t, db, authorID, "tie a", 5, 0)
	tieB := insertStory(t, db, authorID, "tie b", 5, 0)

	reader := NewStoryReadRepository(db, nil)

	stories, err := reader.Top(ctx, models.LeaderboardSize)
	require.NoError(t, err)
	require.Len(t, stories, 4)
	assert.Equal(t, []uuid.UUID{high, tieA, tieB, low}, []uuid.UUID{
		stories[0].StoryID, stories[1].StoryID, stories[2].StoryID, stories[3].StoryID,
	})
	for i := 1; i < len(stories); i++ {
		assert.GreaterOrEqual(t, stories[i-1].SucksCount, stories[i].SucksCount)
	}

	again, err := reader.Top(ctx, models.LeaderboardSize)
	require.NoError(t, err)
	assert.Equal(t, stories, again)

	limited, err := reader.Top(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStoryWriteRepository_LockAndAdjustInTx(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	authorID := insertUser(t, db, strPtr("lock@example.com"), false)
	storyID := insertStory(t, db, authorID, "locked", 3, 1)

	tx, err := db.Beginx()
	require.NoError(t, err)
	writer := NewStoryWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	story, err := writer.LockByID(ctx, storyID)
	require.NoError(t, err)
	require.NotNil(t, story)

	sucks, worse, err := writer.AdjustCounters(ctx, storyID, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, sucks)
	assert.Equal(t, 2, worse)

	missing, err := writer.LockByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, tx.Rollback())

	// Rolled back with the transaction.
	reader := NewStoryReadRepository(db, nil)
	got, err := reader.GetByID(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.SucksCount)
	assert.Equal(t, 1, got.IveHadWorseCount)
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

const storyColumns = `id, user_id, text, story_name, sucks_count, ive_had_worse_count, created_at`

// StoryReadRepository handles story read operations
type StoryReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewStoryReadRepository(db *sqlx.DB, txGetter TxGetter) *StoryReadRepository {
	return &StoryReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the story or nil when it does not exist.
func (r *StoryReadRepository) GetByID(ctx context.Context, storyID uuid.UUID) (*models.StoryDB, error) {
	const query = `SELECT ` + storyColumns + ` FROM stories WHERE id = $1`

	var story models.StoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &story, query, storyID)
	logQuery(query, []any{storyID}, story.StoryID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// ListByUser returns the stories written by the user, newest first.
func (r *StoryReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.StoryDB, error) {
	const query = `
		SELECT ` + storyColumns + `
		FROM stories
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`

	stories := []models.StoryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &stories, query, userID)
	logQuery(query, []any{userID}, len(stories), err)

	if err != nil {
		return nil, err
	}
	return stories, nil
}

// RandomUnvoted picks a random story the user has not voted on, skipping exclude.
// Returns nil when no story is left.
func (r *StoryReadRepository) RandomUnvoted(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*models.StoryDB, error) {
	const query = `
		SELECT ` + storyColumns + `
		FROM random_unvoted_story($1, string_to_array($2, ',')::UUID[])
	`
	excludeList := joinIDs(exclude)

	var story models.StoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &story, query, userID, excludeList)
	logQuery(query, []any{userID, excludeList}, story.StoryID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// Top returns the stories with the most "sucks" votes. Ties are broken by age then id
// so the order is stable between calls.
func (r *StoryReadRepository) Top(ctx context.Context, limit int) ([]models.StoryDB, error) {
	const query = `
		SELECT ` + storyColumns + `
		FROM stories
		ORDER BY sucks_count DESC, created_at ASC, id ASC
		LIMIT $1
	`

	stories := []models.StoryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &stories, query, limit)
	logQuery(query, []any{limit}, len(stories), err)

	if err != nil {
		return nil, err
	}
	return stories, nil
}

// StoryWriteRepository handles story write operations
type StoryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewStoryWriteRepository(db *sqlx.DB, txGetter TxGetter) *StoryWriteRepository {
	return &StoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a story with both counters at zero.
func (r *StoryWriteRepository) Save(ctx context.Context, userID uuid.UUID, text string, storyName *string) (*models.StoryDB, error) {
	const query = `
		INSERT INTO stories (user_id, text, story_name, sucks_count, ive_had_worse_count, created_at)
		VALUES ($1, $2, $3, 0, 0, NOW())
		RETURNING ` + storyColumns

	var story models.StoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &story, query, userID, text, storyName)
	logQuery(query, []any{userID, len(text), storyName}, story.StoryID, err)

	if err != nil {
		return nil, err
	}
	return &story, nil
}

// Delete removes the story. Returns sql.ErrNoRows when it does not exist.
func (r *StoryWriteRepository) Delete(ctx context.Context, storyID uuid.UUID) error {
	const query = `DELETE FROM stories WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, storyID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{storyID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// LockByID reads the story and locks its row until the surrounding
// transaction ends. Returns nil when the story does not exist.
func (r *StoryWriteRepository) LockByID(ctx context.Context, storyID uuid.UUID) (*models.StoryDB, error) {
	const query = `SELECT ` + storyColumns + ` FROM stories WHERE id = $1 FOR UPDATE`

	var story models.StoryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &story, query, storyID)
	logQuery(query, []any{storyID}, story.StoryID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// AdjustCounters adds the deltas to both vote counters in one statement and
// returns the new values.
func (r *StoryWriteRepository) AdjustCounters(ctx context.Context, storyID uuid.UUID, sucksDelta, worseDelta int) (sucks, worse int, err error) {
	const query = `
		UPDATE stories
		SET sucks_count = sucks_count + $2,
		    ive_had_worse_count = ive_had_worse_count + $3
		WHERE id = $1
		RETURNING sucks_count, ive_had_worse_count
	`

	var counters struct {
		Sucks int `db:"sucks_count"`
		Worse int `db:"ive_had_worse_count"`
	}
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &counters, query, storyID, sucksDelta, worseDelta)
	logQuery(query, []any{storyID, sucksDelta, worseDelta}, counters, err)

	if err != nil {
		return 0, 0, err
	}
	return counters.Sucks, counters.Worse, nil
}

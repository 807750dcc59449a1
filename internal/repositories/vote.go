package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

// VoteReadRepository handles vote read operations
type VoteReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewVoteReadRepository(db *sqlx.DB, txGetter TxGetter) *VoteReadRepository {
	return &VoteReadRepository{db: db, txGetter: txGetter}
}

// Get returns the user's vote on the story or nil.
func (r *VoteReadRepository) Get(ctx context.Context, userID, storyID uuid.UUID) (*models.VoteDB, error) {
	const query = `
		SELECT user_id, story_id, vote, created_at
		FROM votes
		WHERE user_id = $1 AND story_id = $2
	`

	var vote models.VoteDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &vote, query, userID, storyID)
	logQuery(query, []any{userID, storyID}, vote.Vote, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// ListByUser returns the user's votes joined with the story text, newest first.
// Story fields are NULL for deleted stories.
func (r *VoteReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VoteWithStory, error) {
	const query = `
		SELECT v.story_id, v.vote, v.created_at, s.text AS story_text, s.story_name
		FROM votes v
		LEFT JOIN stories s ON s.id = v.story_id
		WHERE v.user_id = $1
		ORDER BY v.created_at DESC, v.story_id
	`

	votes := []models.VoteWithStory{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &votes, query, userID)
	logQuery(query, []any{userID}, len(votes), err)

	if err != nil {
		return nil, err
	}
	return votes, nil
}

// GetForStories returns the user's votes on the given stories keyed by story id.
func (r *VoteReadRepository) GetForStories(ctx context.Context, userID uuid.UUID, storyIDs []uuid.UUID) (map[uuid.UUID]models.VoteValue, error) {
	votes := make(map[uuid.UUID]models.VoteValue, len(storyIDs))
	if len(storyIDs) == 0 {
		return votes, nil
	}

	const query = `
		SELECT story_id, vote
		FROM votes
		WHERE user_id = $1 AND story_id = ANY (string_to_array($2, ',')::UUID[])
	`
	ids := joinIDs(storyIDs)

	var rows []struct {
		StoryID uuid.UUID        `db:"story_id"`
		Vote    models.VoteValue `db:"vote"`
	}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, userID, ids)
	logQuery(query, []any{userID, ids}, len(rows), err)

	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		votes[row.StoryID] = row.Vote
	}
	return votes, nil
}

// VoteWriteRepository handles vote write operations
type VoteWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewVoteWriteRepository(db *sqlx.DB, txGetter TxGetter) *VoteWriteRepository {
	return &VoteWriteRepository{db: db, txGetter: txGetter}
}

// Save writes the vote, overwriting the previous value of the same (user, story) pair.
func (r *VoteWriteRepository) Save(ctx context.Context, userID, storyID uuid.UUID, vote models.VoteValue) error {
	const query = `
		INSERT INTO votes (user_id, story_id, vote, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, story_id)
		DO UPDATE SET vote = EXCLUDED.vote, created_at = NOW()
	`
	args := []any{userID, storyID, vote}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

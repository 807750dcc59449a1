package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

const userColumns = `id, email, password_hash, is_temp, cookie_id, created_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByEmail returns the user owning the email or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByCookieID returns the user bound to the cookie identifier or nil.
func (r *UserReadRepository) GetByCookieID(ctx context.Context, cookieID string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE cookie_id = $1`
	return r.getOne(ctx, query, cookieID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a permanent user with the given credentials.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password_hash, is_temp, created_at)
		VALUES ($1, $2, FALSE, NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, passwordHash)
	logQuery(query, []any{email}, user.UserID, err)

	if err != nil {
		return nil, mapPgError(err)
	}
	return &user, nil
}

// FindOrCreateTemp returns the user bound to cookieID, creating a temporary
// user on first sight. Concurrent calls with the same cookie return the same row.
func (r *UserWriteRepository) FindOrCreateTemp(ctx context.Context, cookieID string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (cookie_id, is_temp, created_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (cookie_id) DO UPDATE SET cookie_id = EXCLUDED.cookie_id
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, cookieID)
	logQuery(query, []any{cookieID}, user.UserID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Promote turns a temporary user into a permanent one.
// Returns sql.ErrNoRows when the user is missing or already permanent.
func (r *UserWriteRepository) Promote(ctx context.Context, userID uuid.UUID, email, passwordHash string) error {
	const query = `
		UPDATE users
		SET email = $2, password_hash = $3, is_temp = FALSE
		WHERE id = $1 AND is_temp
	`
	return r.execOne(ctx, query, []any{userID, email, passwordHash}, []any{userID, email})
}

// UpdatePassword replaces the password hash of a user.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2 WHERE id = $1`
	return r.execOne(ctx, query, []any{userID, passwordHash}, []any{userID})
}

func (r *UserWriteRepository) execOne(ctx context.Context, query string, args, logArgs []any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, logArgs, rowsAffected, err)

	if err != nil {
		return mapPgError(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user, err := repo.Save(ctx, "alice@example.com", "hash123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.UserID)
	assert.False(t, user.IsTemp)
	require.NotNil(t, user.Email)
	assert.Equal(t, "alice@example.com", *user.Email)
	assert.True(t, user.HasPassword())

	_, err = repo.Save(ctx, "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestUserWriteRepository_FindOrCreateTemp(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	first, err := repo.FindOrCreateTemp(ctx, "cookie-1")
	require.NoError(t, err)
	assert.True(t, first.IsTemp)
	assert.Nil(t, first.Email)

	again, err := repo.FindOrCreateTemp(ctx, "cookie-1")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, again.UserID)

	other, err := repo.FindOrCreateTemp(ctx, "cookie-2")
	require.NoError(t, err)
	assert.NotEqual(t, first.UserID, other.UserID)
}

func TestUserWriteRepository_PromoteAndUpdatePassword(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writer := NewUserWriteRepository(db, nil)
	reader := NewUserReadRepository(db, nil)
	ctx := context.Background()

	temp, err := writer.FindOrCreateTemp(ctx, "cookie-promote")
	require.NoError(t, err)

	require.NoError(t, writer.Promote(ctx, temp.UserID, "bob@example.com", "hash"))

	user, err := reader.GetByID(ctx, temp.UserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.IsTemp)
	assert.Equal(t, "bob@example.com", *user.Email)
	assert.Equal(t, "cookie-promote", *user.CookieID)

	// The cookie keeps resolving to the account it was promoted into.
	byCookie, err := writer.FindOrCreateTemp(ctx, "cookie-promote")
	require.NoError(t, err)
	assert.Equal(t, temp.UserID, byCookie.UserID)
	assert.False(t, byCookie.IsTemp)

	// Already permanent.
	assert.ErrorIs(t, writer.Promote(ctx, temp.UserID, "bob2@example.com", "hash"), sql.ErrNoRows)

	// Email owned by someone else.
	other, err := writer.FindOrCreateTemp(ctx, "cookie-other")
	require.NoError(t, err)
	assert.ErrorIs(t, writer.Promote(ctx, other.UserID, "bob@example.com", "hash"), ErrUniqueViolation)

	require.NoError(t, writer.UpdatePassword(ctx, temp.UserID, "new-hash"))
	user, err = reader.GetByID(ctx, temp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", *user.PasswordHash)

	assert.ErrorIs(t, writer.UpdatePassword(ctx, uuid.New(), "x"), sql.ErrNoRows)
}

func TestUserReadRepository_Lookups(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writer := NewUserWriteRepository(db, nil)
	reader := NewUserReadRepository(db, nil)
	ctx := context.Background()

	saved, err := writer.Save(ctx, "carol@example.com", "hash")
	require.NoError(t, err)
	temp, err := writer.FindOrCreateTemp(ctx, "cookie-carol")
	require.NoError(t, err)

	t.Run("ByID", func(t *testing.T) {
		user, err := reader.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, saved.UserID, user.UserID)
	})

	t.Run("ByEmail", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "carol@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, saved.UserID, user.UserID)
	})

	t.Run("ByCookieID", func(t *testing.T) {
		user, err := reader.GetByCookieID(ctx, "cookie-carol")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, temp.UserID, user.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/ive-had-worse/internal/database"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := database.DSN(host, port.Int(), "postgres", "secret", "testdb")
	require.NoError(t, database.RunMigrations(dsn))

	db, err := database.Connect(ctx, dsn, 20, 10)
	require.NoError(t, err)

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func insertUser(t *testing.T, db *sqlx.DB, email *string, isTemp bool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.Get(&id, `INSERT INTO users (email, password_hash, is_temp) VALUES ($1, $2, $3) RETURNING id`,
		email, "hash", isTemp)
	require.NoError(t, err)
	return id
}

func insertStory(t *testing.T, db *sqlx.DB, userID uuid.UUID, text string, sucks, worse int) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.Get(&id, `INSERT INTO stories (user_id, text, sucks_count, ive_had_worse_count) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, text, sucks, worse)
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string {
	return &s
}

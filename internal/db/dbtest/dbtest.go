//go:build integration

// Package dbtest starts a disposable PostgreSQL for integration tests and
// migrates it to the latest schema.
package dbtest

import (
	"alumni_portal/configs"
	"alumni_portal/internal/db"
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// Start runs a container for the duration of t and returns a migrated
// connection together with its URL.
func Start(t *testing.T) (*pg.DB, string) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("portal"),
		postgres.WithUsername("portal"),
		postgres.WithPassword("portal"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := db.StartDB(ctx, configs.DB{URL: url, MigrationsDir: migrationsDir()}, zap.NewNop().Sugar())
	require.NoError(t, err, "failed to migrate database")

	t.Cleanup(func() { _ = database.Close() })

	return database, url
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
}

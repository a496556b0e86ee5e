//go:build integration

package repository_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/sextant/internal/models"
	"github.com/UnknownOlympus/sextant/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schema = `
	CREATE TABLE public.tasks (
		task_id             INTEGER PRIMARY KEY,
		latitude            DOUBLE PRECISION,
		longitude           DOUBLE PRECISION,
		latitude_dms        TEXT,
		longitude_dms       TEXT,
		conversion_attempts INTEGER NOT NULL DEFAULT 0,
		conversion_error    TEXT,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	INSERT INTO public.tasks (task_id, latitude, longitude, created_at) VALUES
		(1, 50.45, 30.5234, now() - interval '2 hours'),
		(2, -33.8688, 151.2093, now() - interval '1 hour'),
		(3, NULL, NULL, now());
	INSERT INTO public.tasks (task_id, latitude, longitude, conversion_attempts) VALUES
		(4, 10.0, 10.0, 5);
`

func TestRepositoryWithPostgres(t *testing.T) {
	ctx := t.Context()

	const startupTimeout = 60
	ctr, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("sextant"),
		postgres.WithUsername("sextant"),
		postgres.WithPassword("sextant"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, ctr.Terminate(context.Background()))
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := repository.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, schema)
	require.NoError(t, err)

	repo := repository.NewRepository(pool, slog.Default())

	tasks, err := repo.FetchTasksForConversion(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{
		{ID: 1, Latitude: 50.45, Longitude: 30.5234},
		{ID: 2, Latitude: -33.8688, Longitude: 151.2093},
	}, tasks)

	require.NoError(t, repo.UpdateTaskDMS(ctx, 1, models.FormattedCoordinates{
		Latitude:  `50° 27' 0" N`,
		Longitude: `30° 31' 24.24" E`,
	}))
	require.NoError(t, repo.IncrementFailureCount(ctx, 2, "boom"))

	var attempts int
	var lastErr string
	err = pool.QueryRow(ctx, "SELECT conversion_attempts, conversion_error FROM tasks WHERE task_id = 2").
		Scan(&attempts, &lastErr)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, "boom", lastErr)

	tasks, err = repo.FetchTasksForConversion(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)
}

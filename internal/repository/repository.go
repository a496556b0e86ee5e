package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/sextant/internal/models"
)

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchTasksForConversion(ctx context.Context, limit int) ([]models.Task, error)
	UpdateTaskDMS(ctx context.Context, taskID int, coords models.FormattedCoordinates) error
	IncrementFailureCount(ctx context.Context, taskID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

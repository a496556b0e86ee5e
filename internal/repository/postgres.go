package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/sextant/internal/models"
)

// FetchTasksForConversion retrieves tasks that have decimal coordinates but no DMS rendering yet.
// Tasks that already failed conversion 5 times are skipped. The results are ordered by creation
// date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of tasks to retrieve.
//
// Returns:
// - A slice of models.Task containing the tasks that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchTasksForConversion(ctx context.Context, limit int) ([]models.Task, error) {
	var tasks []models.Task
	query := `
		SELECT task_id, latitude, longitude
		FROM public.tasks
		WHERE
			latitude IS NOT NULL
			AND longitude IS NOT NULL
			AND latitude_dms IS NULL
			AND conversion_attempts < 5
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks without dms coordinates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var task models.Task
		if errScan := rows.Scan(&task.ID, &task.Latitude, &task.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan task coordinates: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new task without DMS coordinates has been received.",
			"ID", task.ID, "latitude", task.Latitude, "longitude", task.Longitude)
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return tasks, nil
}

// UpdateTaskDMS stores the DMS rendering of a task's coordinates and clears the conversion_error field.
func (r *Repository) UpdateTaskDMS(ctx context.Context, taskID int, coords models.FormattedCoordinates) error {
	query := `
		UPDATE tasks
		SET
			latitude_dms = $1,
			longitude_dms = $2,
			conversion_error = NULL
		WHERE
			task_id = $3;
	`

	_, err := r.db.Exec(ctx, query, coords.Latitude, coords.Longitude, taskID)
	if err != nil {
		return fmt.Errorf("failed to update task dms coordinates: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the conversion attempt count for the task
// and records the error message that caused the failure.
func (r *Repository) IncrementFailureCount(ctx context.Context, taskID int, errMsg string) error {
	query := `
		UPDATE tasks
		SET
			conversion_attempts = conversion_attempts + 1,
			conversion_error = $1
		WHERE task_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, taskID)
	if err != nil {
		return fmt.Errorf("failed to update conversion error and number of attempts: %w", err)
	}

	return nil
}

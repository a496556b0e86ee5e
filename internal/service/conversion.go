package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/UnknownOlympus/sextant/internal/latlng"
	"github.com/UnknownOlympus/sextant/internal/metrics"
	"github.com/UnknownOlympus/sextant/internal/models"
	"github.com/UnknownOlympus/sextant/internal/repository"
)

// ErrNonFiniteCoordinate is recorded for tasks whose latitude or longitude is NaN or infinite.
var ErrNonFiniteCoordinate = errors.New("coordinate is not a finite number")

// ConversionService periodically renders the decimal coordinates of stored tasks
// in degrees, minutes and seconds using a pool of workers.
type ConversionService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	batchSize    int                  // Maximum number of tasks fetched per poll
	pollInterval time.Duration        // Interval for polling new tasks
}

// NewConversionService creates a new instance of ConversionService.
func NewConversionService(
	log *slog.Logger,
	repo repository.Interface,
	metrics *metrics.Metrics,
	numWorkers int,
	batchSize int,
	pollInterval time.Duration,
) *ConversionService {
	return &ConversionService{
		log:          log,
		repo:         repo,
		metrics:      metrics,
		numWorkers:   numWorkers,
		batchSize:    batchSize,
		pollInterval: pollInterval,
	}
}

// Run starts the conversion service, which periodically polls for new tasks to convert.
// It listens for a cancellation signal from the context to gracefully stop the service.
func (cs *ConversionService) Run(ctx context.Context) {
	ticker := time.NewTicker(cs.pollInterval)
	defer ticker.Stop()

	cs.log.InfoContext(ctx, "Conversion service started...")

	for {
		select {
		case <-ctx.Done():
			cs.log.InfoContext(ctx, "Conversion service stopped.")
			return
		case <-ticker.C:
			cs.log.InfoContext(ctx, "Polling for new tasks to convert...")
			cs.processTasks(ctx)
		}
	}
}

// processTasks fetches a batch of tasks, fans them out to the worker pool
// and waits for all workers to finish.
func (cs *ConversionService) processTasks(ctx context.Context) {
	tasks, err := cs.repo.FetchTasksForConversion(ctx, cs.batchSize)
	if err != nil {
		cs.log.ErrorContext(ctx, "Failed to fetch tasks", "error", err)
		return
	}
	if len(tasks) == 0 {
		cs.log.InfoContext(ctx, "No tasks to process.")
		return
	}

	cs.log.InfoContext(ctx, "Found tasks to process. Starting worker pool.",
		"jobs", len(tasks),
		"num_workers", cs.numWorkers,
	)

	jobs := make(chan models.Task, len(tasks))
	var wgr sync.WaitGroup

	for i := 1; i <= cs.numWorkers; i++ {
		wgr.Add(1)
		go cs.worker(ctx, i, &wgr, jobs)
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)

	wgr.Wait()
	cs.log.InfoContext(ctx, "Processing batch finished")
}

func (cs *ConversionService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Task) {
	defer wg.Done()
	for task := range jobs {
		cs.metrics.ActiveWorkers.Inc()
		cs.handleTask(ctx, idx, task)
		cs.metrics.ActiveWorkers.Dec()
	}
}

func (cs *ConversionService) handleTask(ctx context.Context, idx int, task models.Task) {
	cs.log.DebugContext(ctx, "Processing task", "worker", idx, "task", task.ID)

	startTime := time.Now()
	defer func() {
		cs.metrics.ConversionSeconds.Observe(time.Since(startTime).Seconds())
	}()

	coords, err := Convert(task)
	if err != nil {
		cs.log.WarnContext(ctx, "Failed to convert task coordinates", "worker", idx, "task", task.ID, "error", err)
		cs.metrics.TaskProcessed.WithLabelValues("failure").Inc()

		if err = cs.repo.IncrementFailureCount(ctx, task.ID, err.Error()); err != nil {
			cs.log.ErrorContext(ctx, "Could not update failure count for task",
				"worker", idx,
				"task", task.ID,
				"error", err,
			)
		}
		return
	}

	if err = cs.repo.UpdateTaskDMS(ctx, task.ID, coords); err != nil {
		cs.metrics.TaskProcessed.WithLabelValues("failure").Inc()
		cs.log.ErrorContext(ctx, "Failed to update DMS coordinates for task",
			"worker", idx,
			"task", task.ID,
			"error", err,
		)
		return
	}

	cs.metrics.TaskProcessed.WithLabelValues("success").Inc()
	cs.log.DebugContext(ctx, "Worker successfully processed the task",
		"worker", idx, "task", task.ID, "latitude", coords.Latitude, "longitude", coords.Longitude)
}

// Convert renders the coordinates of a task in DMS notation with N/S and E/W directions.
func Convert(task models.Task) (models.FormattedCoordinates, error) {
	if !isFinite(task.Latitude) {
		return models.FormattedCoordinates{}, fmt.Errorf("%w: latitude %v", ErrNonFiniteCoordinate, task.Latitude)
	}
	if !isFinite(task.Longitude) {
		return models.FormattedCoordinates{}, fmt.Errorf("%w: longitude %v", ErrNonFiniteCoordinate, task.Longitude)
	}

	pair := latlng.FormatCoordinates(latlng.DecimalCoordinates{task.Latitude, task.Longitude})

	return models.FormattedCoordinates{Latitude: pair[0], Longitude: pair[1]}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package service

import (
	"context"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/UnknownOlympus/sextant/internal/metrics"
	"github.com/UnknownOlympus/sextant/internal/models"
	"github.com/UnknownOlympus/sextant/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessTasks(t *testing.T) {
	mockRepo := mocks.NewInterface(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)
	ctx := t.Context()
	service := NewConversionService(logger, mockRepo, appMetrics, 2, 100, 1*time.Second)

	t.Run("successful processing", func(t *testing.T) {
		sampleTasks := []models.Task{{ID: 1, Latitude: 10.1234, Longitude: -10.1234}}
		want := models.FormattedCoordinates{Latitude: `10° 7' 24.24" N`, Longitude: `10° 7' 24.24" W`}

		mockRepo.On("FetchTasksForConversion", ctx, 100).Return(sampleTasks, nil).Once()
		mockRepo.On("UpdateTaskDMS", ctx, 1, want).Return(nil).Once()

		service.processTasks(ctx)

		mockRepo.AssertExpectations(t)
		assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.TaskProcessed.WithLabelValues("success")), 0)
	})

	t.Run("fetch tasks return error", func(t *testing.T) {
		mockRepo.On("FetchTasksForConversion", ctx, 100).Return(nil, assert.AnError).Once()

		service.processTasks(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("fetch tasks return empty list", func(t *testing.T) {
		mockRepo.On("FetchTasksForConversion", ctx, 100).Return([]models.Task{}, nil).Once()

		service.processTasks(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("non finite coordinate is recorded as failure", func(t *testing.T) {
		sampleTasks := []models.Task{{ID: 2, Latitude: math.NaN(), Longitude: 30.52}}

		mockRepo.On("FetchTasksForConversion", ctx, 100).Return(sampleTasks, nil).Once()
		mockRepo.On("IncrementFailureCount", ctx, 2, mock.MatchedBy(func(msg string) bool {
			return assert.Contains(t, msg, ErrNonFiniteCoordinate.Error())
		})).Return(nil).Once()

		service.processTasks(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("error to increment failure count", func(t *testing.T) {
		sampleTasks := []models.Task{{ID: 3, Latitude: 50.45, Longitude: math.Inf(1)}}

		mockRepo.On("FetchTasksForConversion", ctx, 100).Return(sampleTasks, nil).Once()
		mockRepo.On("IncrementFailureCount", ctx, 3, mock.AnythingOfType("string")).Return(assert.AnError).Once()

		service.processTasks(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("error to update task dms", func(t *testing.T) {
		sampleTasks := []models.Task{{ID: 4, Latitude: 0, Longitude: 0}}
		want := models.FormattedCoordinates{Latitude: `0° 0' 0" S`, Longitude: `0° 0' 0" W`}

		mockRepo.On("FetchTasksForConversion", ctx, 100).Return(sampleTasks, nil).Once()
		mockRepo.On("UpdateTaskDMS", ctx, 4, want).Return(assert.AnError).Once()

		service.processTasks(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("start context cancelled", func(t *testing.T) {
		tctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		service.Run(tctx)
	})
}

func TestConvert(t *testing.T) {
	t.Parallel()

	coords, err := Convert(models.Task{ID: 1, Latitude: -33.8688, Longitude: 151.2093})
	require.NoError(t, err)
	assert.Equal(t, `33° 52' 7.68" S`, coords.Latitude)
	assert.Equal(t, `151° 12' 33.48" E`, coords.Longitude)

	_, err = Convert(models.Task{Latitude: math.Inf(-1)})
	require.ErrorIs(t, err, ErrNonFiniteCoordinate)
}

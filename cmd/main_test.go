package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{envLocal, slog.LevelDebug, slog.LevelDebug - 1},
		{envDev, slog.LevelInfo, slog.LevelDebug},
		{envProd, slog.LevelWarn, slog.LevelInfo},
		{"unknown", slog.LevelError, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			logger := setupLogger(tt.env)

			assert.True(t, logger.Enabled(ctx, tt.enabled))
			assert.False(t, logger.Enabled(ctx, tt.muted))
		})
	}
}

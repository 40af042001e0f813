package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mesto-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		log, err := logger.Setup(level)
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, log)
	}

	_, err := logger.Setup("verbose")
	assert.Error(t, err)

	_, err = logger.Setup("")
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	log := slog.Default().With(slog.String("component", "test"))
	ctx := logger.WithContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, log, logger.FromContextOrDefault(ctx, nil))

	// A bare context falls back instead of returning nil.
	assert.NotNil(t, logger.FromContext(context.Background()))
	fallback := slog.Default().With(slog.String("component", "fallback"))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
}

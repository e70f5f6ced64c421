package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("writes json by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("hello", slog.String("k", "v"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "hello", rec["msg"])
		require.Equal(t, "v", rec["k"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		require.Zero(t, buf.Len())

		log.Warn("kept")
		require.Contains(t, buf.String(), "kept")
	})

	t.Run("context extractors add attributes", func(t *testing.T) {
		t.Parallel()

		type key struct{}

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				id, ok := ctx.Value(key{}).(string)
				return slog.String("request_id", id), ok
			}),
		)

		ctx := context.WithValue(context.Background(), key{}, "req-1")
		log.InfoContext(ctx, "with id")
		require.Contains(t, buf.String(), "req-1")

		buf.Reset()
		log.Info("without id")
		require.NotContains(t, buf.String(), "request_id")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithTextFormat())
		log.Info("hello")
		require.Contains(t, buf.String(), "msg=hello")
	})
}

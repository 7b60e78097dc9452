package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pfd-lab/meshirec/pkg/utils/logging"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	logger.Info("hello", "key", "value")
	gt.S(t, buf.String()).Contains(`"key":"value"`)

	t.Run("debug is suppressed at info level", func(t *testing.T) {
		buf.Reset()
		logger.Debug("hidden")
		gt.Equal(t, buf.Len(), 0)
	})
}

func TestSecretMasking(t *testing.T) {
	type creds struct {
		APIKey string `masq:"secret"`
		Name   string
	}

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	logger.Info("configured", "creds", creds{APIKey: "super-secret-token", Name: "notion"})

	out := buf.String()
	gt.False(t, strings.Contains(out, "super-secret-token"))
	gt.S(t, out).Contains("notion")
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("from context")
	gt.S(t, buf.String()).Contains("from context")

	t.Run("fallback to default", func(t *testing.T) {
		gt.NotNil(t, logging.From(context.Background()))
	})
}

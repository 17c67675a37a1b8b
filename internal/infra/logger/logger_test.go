package logger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, logger.ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.log")
	log, err := logger.New(logger.Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.With(logger.String("service", "eks-demo-app")).Info("Server is running", logger.Int("port", 3000))
	log.Debug("filtered out")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"Server is running"`)
	assert.Contains(t, out, `"service":"eks-demo-app"`)
	assert.Contains(t, out, `"port":3000`)
	assert.NotContains(t, out, "filtered out")
}

func TestNew_ConsoleFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "console.log")
	log, err := logger.New(logger.Config{Format: "console", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.NotContains(t, string(data), `"msg"`)
}

func TestWithContext_FromContext_RoundTrip(t *testing.T) {
	t.Parallel()

	nop := logger.NewNop()
	ctx := logger.WithContext(context.Background(), nop)

	assert.Same(t, nop, logger.FromContext(ctx))
}

func TestFromContext_FallbackIsSingleton(t *testing.T) {
	t.Parallel()

	a := logger.FromContext(context.Background())
	b := logger.FromContext(context.Background())

	require.NotNil(t, a)
	assert.Same(t, a, b)

	// Warn-level fallback must accept every call without panicking.
	a.Debug("debug")
	a.Info("info")
	a.Warn("warn", logger.String("key", "value"))
}

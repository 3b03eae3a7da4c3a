package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/infrastructure/logger"
)

func TestNew_ProdWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("prod", &buf)

	log.Debug("hidden")
	log.Info("visible", slog.String("key", "value"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNew_DevWritesDebugText(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("dev", &buf)

	log.Debug("debug line")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "debug line")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("test", &buf).With(slog.String("component", "router"))

	log.Info("hello")

	assert.Contains(t, buf.String(), "component=router")
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/jwebster45206/fourhills/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_ProductionWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	id := uuid.New()
	log := Setup(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)

	WithMountID(log, id).Info("mounted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "mounted", entry["msg"])
	assert.Equal(t, id.String(), entry["mount_id"])
}

func TestSetup_DevelopmentWritesText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := Setup(&config.Config{Environment: "development", LogLevel: slog.LevelWarn}, &buf)

	log.Info("hidden")
	WithError(log, errors.New("no clipboard")).Warn("copy failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="copy failed"`)
	assert.Contains(t, out, `error="no clipboard"`)
	assert.Same(t, log, slog.Default())
}

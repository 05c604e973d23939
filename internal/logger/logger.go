package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/fourhills/internal/config"
)

// Setup configures the global slog logger based on environment
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithMountID tags log entries with the component instance they came from
func WithMountID(logger *slog.Logger, mountID uuid.UUID) *slog.Logger {
	return logger.With("mount_id", mountID.String())
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string // the terminal belongs to the UI, so logs go here
	AltScreen   bool
	WrapWidth   int
}

func Load() (*Config, error) {
	altScreen, err := strconv.ParseBool(getEnv("ALT_SCREEN", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALT_SCREEN: %w", err)
	}

	wrapWidth, err := strconv.Atoi(getEnv("WRAP_WIDTH", "60"))
	if err != nil || wrapWidth < 0 {
		return nil, fmt.Errorf("invalid WRAP_WIDTH %q", os.Getenv("WRAP_WIDTH"))
	}

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:     getEnv("LOG_FILE", "fourhills.log"),
		AltScreen:   altScreen,
		WrapWidth:   wrapWidth,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jwebster45206/fourhills/internal/config"
	"github.com/jwebster45206/fourhills/internal/host"
	"github.com/jwebster45206/fourhills/internal/logger"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", cfg.LogFile, err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()

	log := logger.Setup(cfg, logFile)

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(host.New(cfg, log), opts...)
	if _, err := p.Run(); err != nil {
		log.Error("Program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/adampresley/photovault/cmd/website/internal/configuration"
	"github.com/charmbracelet/log"
)

func setupLogger(config *configuration.Config, version string) {
	level, err := log.ParseLevel(config.LogLevel)

	if err != nil {
		level = log.InfoLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	slog.SetDefault(slog.New(handler).With("version", version))
}

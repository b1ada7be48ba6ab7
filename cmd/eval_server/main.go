package main

import (
	"log/slog"
	"os"

	"github.com/mpavlovic/retrieval-eval/internal/server"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg)

	slog.Info("Starting evaluation server", "port", cfg.Port)
	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

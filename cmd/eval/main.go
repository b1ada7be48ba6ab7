package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mpavlovic/retrieval-eval/internal/eval"
	"github.com/mpavlovic/retrieval-eval/internal/eval/report"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	p, err := buildPlan(cfg)
	if err != nil {
		slog.Error("Failed to build run plan", "error", err)
		os.Exit(1)
	}

	rep, err := eval.Execute(ctx, p)
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	report.WriteTable(rep, os.Stdout)

	output := cfg.Output
	if output == "" {
		output = p.Output
	}
	if output != "" {
		if err := report.WriteJSON(rep, output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", output)
	}
}

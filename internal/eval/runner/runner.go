// Package runner drives one evaluation run: it executes the fixed
// query ordering against each engine configuration, scores every result
// list against the judgments, and folds the per-query metrics into a
// macro-averaged summary per engine.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mpavlovic/retrieval-eval/internal/engine"
	"github.com/mpavlovic/retrieval-eval/internal/eval/corpus"
	"github.com/mpavlovic/retrieval-eval/internal/eval/metrics"
)

// EngineResult is the scored outcome of one engine's run over the full
// query set.
type EngineResult struct {
	EngineName string
	QueryCount int
	ErrorCount int
	Summary    metrics.Summary
	PerQuery   []metrics.QueryMetrics
	Latency    LatencyStats
}

type Runner struct {
	queries   []corpus.Query
	judgments corpus.Judgments
}

// New builds a runner over a fixed query ordering and its judgments.
// Both are shared read-only across all engines of the run.
func New(queries []corpus.Query, judgments corpus.Judgments) (*Runner, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("run has no queries")
	}
	return &Runner{queries: queries, judgments: judgments}, nil
}

// RunAll evaluates every engine independently, each with its own fresh
// accumulator, and returns the results in engine order.
func (r *Runner) RunAll(ctx context.Context, searchers []engine.Searcher) ([]*EngineResult, error) {
	results := make([]*EngineResult, 0, len(searchers))
	for _, s := range searchers {
		res, err := r.RunEngine(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("run engine %q: %w", s.Name(), err)
		}
		results = append(results, res)
	}
	return results, nil
}

// RunEngine executes the query ordering against one engine. A failed
// query is scored as an empty result list and counted in ErrorCount
// rather than aborting the run; a cancelled context does abort.
func (r *Runner) RunEngine(ctx context.Context, s engine.Searcher) (*EngineResult, error) {
	res := &EngineResult{
		EngineName: s.Name(),
		QueryCount: len(r.queries),
		PerQuery:   make([]metrics.QueryMetrics, 0, len(r.queries)),
	}

	var acc metrics.Accumulator
	var latencies []time.Duration

	for _, q := range r.queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var ranked []int
		exec, err := s.Search(ctx, q.Text)
		if err != nil {
			slog.Warn("query failed", "engine", s.Name(), "query", q.ID, "error", err)
			res.ErrorCount++
		} else {
			ranked = exec.RankedDocIDs
			latencies = append(latencies, exec.Latency)
		}

		qm := metrics.Score(q.ID, ranked, r.judgments.Relevant(q.ID))
		acc.Fold(qm)
		res.PerQuery = append(res.PerQuery, qm)
	}

	res.Summary = acc.Finalize(len(r.queries))
	res.Latency = ComputeLatencyStats(latencies)

	return res, nil
}

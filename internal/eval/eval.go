// Package eval wires a run plan end to end: load the corpus, build the
// engines, execute the fixed query ordering against each of them, and
// assemble the report.
package eval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpavlovic/retrieval-eval/internal/engine"
	"github.com/mpavlovic/retrieval-eval/internal/eval/corpus"
	"github.com/mpavlovic/retrieval-eval/internal/eval/plan"
	"github.com/mpavlovic/retrieval-eval/internal/eval/report"
	"github.com/mpavlovic/retrieval-eval/internal/eval/runner"
)

// Execute runs the whole plan and returns its report. Every engine is
// scored independently with its own fresh accumulator; the query
// ordering and judgments are shared read-only.
func Execute(ctx context.Context, p *plan.Plan) (*report.Report, error) {
	queries, err := corpus.LoadQueries(p.Corpus.Queries)
	if err != nil {
		return nil, fmt.Errorf("load queries: %w", err)
	}

	judgments, err := corpus.LoadJudgments(p.Corpus.Qrels)
	if err != nil {
		return nil, fmt.Errorf("load judgments: %w", err)
	}
	slog.Info("Corpus loaded", "queries", len(queries), "judged_queries", len(judgments), "avg_relevant", avgRelevant(judgments))

	var docs []corpus.Document
	if p.Corpus.Documents != "" {
		if docs, err = corpus.LoadDocuments(p.Corpus.Documents); err != nil {
			return nil, fmt.Errorf("load documents: %w", err)
		}
		slog.Info("Collection loaded", "documents", len(docs))
	}

	var stopwords []string
	if p.Corpus.Stopwords != "" {
		if stopwords, err = corpus.LoadStopwords(p.Corpus.Stopwords); err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
	}

	searchers, cleanup, err := engine.CreateFromPlan(ctx, p, docs, stopwords)
	if err != nil {
		return nil, fmt.Errorf("create engines: %w", err)
	}
	defer cleanup()

	r, err := runner.New(queries, judgments)
	if err != nil {
		return nil, err
	}

	results, err := r.RunAll(ctx, searchers)
	if err != nil {
		return nil, err
	}

	return report.Generate(p.Name, results), nil
}

func avgRelevant(judgments corpus.Judgments) float64 {
	if len(judgments) == 0 {
		return 0
	}
	var total int
	for _, docs := range judgments {
		total += len(docs)
	}
	return float64(total) / float64(len(judgments))
}

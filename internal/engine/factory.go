package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpavlovic/retrieval-eval/internal/analysis"
	"github.com/mpavlovic/retrieval-eval/internal/eval/corpus"
	"github.com/mpavlovic/retrieval-eval/internal/eval/plan"
)

// CreateFromPlan builds one Searcher per plan engine, indexing docs
// into every memory engine. The returned cleanup closes whatever was
// created, including on partial failure.
func CreateFromPlan(
	ctx context.Context,
	p *plan.Plan,
	docs []corpus.Document,
	stopwords []string,
) ([]Searcher, func(), error) {
	searchers := make([]Searcher, 0, len(p.Engines))

	cleanup := func() {
		for _, s := range searchers {
			_ = s.Close()
		}
	}

	for _, eng := range p.Engines {
		switch eng.Type {
		case plan.TypeMemory:
			analyzer, err := analysis.ForName(eng.Analyzer, stopwords)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("engine %q: %w", eng.Name, err)
			}
			mem := NewMemory(eng.Name, analyzer, p.MaxResults)
			mem.Index(docs)
			searchers = append(searchers, mem)

		case plan.TypeElasticsearch:
			index := eng.Index
			if index == "" {
				index = "documents"
			}
			es, err := NewElastic(eng.Name, strings.Split(eng.Connection, ","), index, p.MaxResults)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("engine %q: %w", eng.Name, err)
			}
			searchers = append(searchers, es)

		case plan.TypePostgres:
			pg, err := NewPostgres(ctx, eng.Name, eng.Connection, p.MaxResults)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("engine %q: %w", eng.Name, err)
			}
			searchers = append(searchers, pg)

		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported engine type %q for %q", eng.Type, eng.Name)
		}
	}

	return searchers, cleanup, nil
}

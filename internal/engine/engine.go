// Package engine provides the retrieval engines whose output quality
// the evaluation scores. Every engine returns a ranked, deduplicated
// document list; the scoring core treats it as an opaque collaborator.
package engine

import (
	"context"
	"time"
)

// Execution is the outcome of one query against one engine. RankedDocIDs
// is best-first and free of duplicates.
type Execution struct {
	RankedDocIDs []int
	TotalMatches int64
	Latency      time.Duration
}

// Searcher executes queries against one retrieval configuration.
type Searcher interface {
	Search(ctx context.Context, query string) (*Execution, error)
	Name() string
	Close() error
}

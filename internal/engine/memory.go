package engine

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/mpavlovic/retrieval-eval/internal/analysis"
	"github.com/mpavlovic/retrieval-eval/internal/eval/corpus"
)

const (
	bm25K1 = 1.2
	bm25B  = 0.75
)

// Memory is an in-process inverted index over the document collection,
// tokenized with a pluggable analyzer and ranked with BM25. Queries run
// through the same analyzer as the indexed text.
type Memory struct {
	name       string
	analyzer   analysis.Analyzer
	maxResults int

	mu       sync.RWMutex
	postings map[string]map[int]int // term -> docID -> term frequency
	docLens  map[int]int
	totalLen int
}

func NewMemory(name string, analyzer analysis.Analyzer, maxResults int) *Memory {
	return &Memory{
		name:       name,
		analyzer:   analyzer,
		maxResults: maxResults,
		postings:   make(map[string]map[int]int),
		docLens:    make(map[int]int),
	}
}

// Index tokenizes and indexes the given documents. A document indexed
// twice overwrites its previous postings only additively, so Index is
// meant to be called once per engine.
func (m *Memory) Index(docs []corpus.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range docs {
		terms := m.analyzer.Analyze(doc.Text())
		for _, term := range terms {
			byDoc, ok := m.postings[term]
			if !ok {
				byDoc = make(map[int]int)
				m.postings[term] = byDoc
			}
			byDoc[doc.ID]++
		}
		m.docLens[doc.ID] = len(terms)
		m.totalLen += len(terms)
	}
}

// Search scores every document matching at least one query term and
// returns them best-first. Ties break on ascending document ID so runs
// are reproducible.
func (m *Memory) Search(ctx context.Context, query string) (*Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	docCount := len(m.docLens)
	var avgLen float64
	if docCount > 0 {
		avgLen = float64(m.totalLen) / float64(docCount)
	}

	scores := make(map[int]float64)
	for _, term := range m.analyzer.Analyze(query) {
		byDoc, ok := m.postings[term]
		if !ok {
			continue
		}
		idf := math.Log(1 + (float64(docCount)-float64(len(byDoc))+0.5)/(float64(len(byDoc))+0.5))
		for docID, tf := range byDoc {
			norm := 1 - bm25B + bm25B*float64(m.docLens[docID])/avgLen
			scores[docID] += idf * float64(tf) * (bm25K1 + 1) / (float64(tf) + bm25K1*norm)
		}
	}

	ranked := make([]int, 0, len(scores))
	for docID := range scores {
		ranked = append(ranked, docID)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return ranked[i] < ranked[j]
	})

	total := int64(len(ranked))
	if m.maxResults > 0 && len(ranked) > m.maxResults {
		ranked = ranked[:m.maxResults]
	}

	return &Execution{
		RankedDocIDs: ranked,
		TotalMatches: total,
		Latency:      time.Since(start),
	}, nil
}

func (m *Memory) Name() string { return m.name }
func (m *Memory) Close() error { return nil }

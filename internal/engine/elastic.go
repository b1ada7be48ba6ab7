package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// Elastic runs multi-match queries against an already-indexed remote
// Elasticsearch index whose documents carry a numeric "id" field.
type Elastic struct {
	name       string
	index      string
	maxResults int
	client     *elasticsearch.Client
}

func NewElastic(name string, addresses []string, index string, maxResults int) (*Elastic, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("create es client: %w", err)
	}
	return &Elastic{
		name:       name,
		index:      index,
		maxResults: maxResults,
		client:     client,
	}, nil
}

func (e *Elastic) Search(ctx context.Context, query string) (*Execution, error) {
	body := map[string]any{
		"size":    e.maxResults,
		"_source": []string{"id"},
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title^2", "authors", "summary"},
			},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("es marshal query: %w", err)
	}

	start := time.Now()
	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(payload)),
		e.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("es search: %w", err)
	}
	defer res.Body.Close()
	latency := time.Since(start)

	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.String())
	}

	var esResp esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, fmt.Errorf("es decode response: %w", err)
	}

	seen := make(map[int]struct{}, len(esResp.Hits.Hits))
	ids := make([]int, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		id, err := strconv.Atoi(hit.Source.ID.String())
		if err != nil {
			return nil, fmt.Errorf("es parse doc id %q: %w", hit.Source.ID.String(), err)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return &Execution{
		RankedDocIDs: ids,
		TotalMatches: esResp.Hits.Total.Value,
		Latency:      latency,
	}, nil
}

func (e *Elastic) Name() string { return e.name }
func (e *Elastic) Close() error { return nil }

type esSearchResponse struct {
	Hits esHits `json:"hits"`
}

type esHits struct {
	Total esTotal `json:"total"`
	Hits  []esHit `json:"hits"`
}

type esTotal struct {
	Value int64 `json:"value"`
}

type esHit struct {
	Source esSource `json:"_source"`
}

type esSource struct {
	ID json.Number `json:"id"`
}

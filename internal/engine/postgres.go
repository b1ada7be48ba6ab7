package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// searchSQL ranks documents by full-text relevance against the
// pre-built search_vector column. The trailing id sort keeps runs
// reproducible when ranks tie.
const searchSQL = `
SELECT id
FROM documents
WHERE search_vector @@ websearch_to_tsquery('english', $1)
ORDER BY ts_rank(search_vector, websearch_to_tsquery('english', $1)) DESC, id
LIMIT $2`

// Postgres runs full-text queries against an already-indexed documents
// table.
type Postgres struct {
	name       string
	maxResults int
	pool       *pgxpool.Pool
}

func NewPostgres(ctx context.Context, name, connStr string, maxResults int) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("create pg pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pg: %w", err)
	}
	return &Postgres{name: name, maxResults: maxResults, pool: pool}, nil
}

func (p *Postgres) Search(ctx context.Context, query string) (*Execution, error) {
	start := time.Now()

	rows, err := p.pool.Query(ctx, searchSQL, query, p.maxResults)
	if err != nil {
		return nil, fmt.Errorf("pg search: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("pg scan doc id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pg read rows: %w", err)
	}

	return &Execution{
		RankedDocIDs: ids,
		TotalMatches: int64(len(ids)),
		Latency:      time.Since(start),
	}, nil
}

func (p *Postgres) Name() string { return p.name }

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

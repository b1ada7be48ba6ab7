package plan

import (
	"testing"

	"github.com/mpavlovic/retrieval-eval/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid plan with defaults", func(t *testing.T) {
		doc := `
name: analyzer comparison
corpus:
  queries: evaluation/query.txt
  qrels: evaluation/qrels.txt
  documents: documents/collection.txt
  stopwords: common_words.txt
engines:
  - name: standard
    type: memory
    analyzer: standard
  - name: es-english
    type: elasticsearch
    connection: http://localhost:9200
    index: docs
`
		p, err := Parse([]byte(doc))

		require.NoError(t, err)
		assert.Equal(t, "analyzer comparison", p.Name)
		assert.Len(t, p.Engines, 2)
		assert.Equal(t, DefaultMaxResults, p.MaxResults)
	})

	t.Run("json body parses too", func(t *testing.T) {
		doc := `{"corpus":{"queries":"q.txt","qrels":"r.txt","documents":"d.txt"},"engines":[{"name":"m","type":"memory","analyzer":"english"}]}`

		p, err := Parse([]byte(doc))

		require.NoError(t, err)
		assert.Equal(t, "m", p.Engines[0].Name)
	})

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "no engines",
			doc:     "corpus:\n  queries: q.txt\n  qrels: r.txt\nengines: []\n",
			wantErr: "no engines",
		},
		{
			name:    "no qrels",
			doc:     "corpus:\n  queries: q.txt\nengines:\n  - name: m\n    type: memory\n    analyzer: standard\n",
			wantErr: "no qrels",
		},
		{
			name:    "invalid engine type",
			doc:     "corpus:\n  queries: q.txt\n  qrels: r.txt\nengines:\n  - name: x\n    type: lucene\n",
			wantErr: "invalid type",
		},
		{
			name:    "memory engine without analyzer",
			doc:     "corpus:\n  queries: q.txt\n  qrels: r.txt\n  documents: d.txt\nengines:\n  - name: m\n    type: memory\n",
			wantErr: "no analyzer",
		},
		{
			name:    "memory engine without documents",
			doc:     "corpus:\n  queries: q.txt\n  qrels: r.txt\nengines:\n  - name: m\n    type: memory\n    analyzer: standard\n",
			wantErr: "document collection",
		},
		{
			name:    "remote engine without connection",
			doc:     "corpus:\n  queries: q.txt\n  qrels: r.txt\nengines:\n  - name: pg\n    type: postgres\n",
			wantErr: "no connection",
		},
		{
			name:    "duplicate engine names",
			doc:     "corpus:\n  queries: q.txt\n  qrels: r.txt\n  documents: d.txt\nengines:\n  - name: m\n    type: memory\n    analyzer: standard\n  - name: m\n    type: memory\n    analyzer: english\n",
			wantErr: "duplicate engine name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)

			var verr *apperr.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

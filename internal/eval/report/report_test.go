package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mpavlovic/retrieval-eval/internal/eval/metrics"
	"github.com/mpavlovic/retrieval-eval/internal/eval/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []*runner.EngineResult {
	var acc metrics.Accumulator
	relevant := map[int]struct{}{10: {}, 20: {}}
	q1 := metrics.Score(1, []int{10, 99, 20}, relevant)
	q2 := metrics.Score(2, nil, map[int]struct{}{30: {}})
	acc.Fold(q1)
	acc.Fold(q2)

	return []*runner.EngineResult{
		{
			EngineName: "standard",
			QueryCount: 2,
			Summary:    acc.Finalize(2),
			PerQuery:   []metrics.QueryMetrics{q1, q2},
		},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate("analyzer comparison", sampleResults())

	assert.Equal(t, "analyzer comparison", r.Plan)
	assert.NotZero(t, r.Meta.RunID)
	assert.NotZero(t, r.Meta.Timestamp)
	require.Len(t, r.Engines, 1)
	assert.Equal(t, "standard", r.Engines[0].EngineName)
	assert.Equal(t, 3, r.Engines[0].TotalRetrieved)
	assert.Equal(t, 3, r.Engines[0].TotalRelevant)
	assert.Len(t, r.Engines[0].PerQuery, 2)
}

func TestWriteTable(t *testing.T) {
	r := Generate("", sampleResults())

	var buf bytes.Buffer
	WriteTable(r, &buf)

	out := buf.String()
	assert.Contains(t, out, "Engine: standard")
	assert.Contains(t, out, "Retrieved documents:")
	assert.Contains(t, out, "Mean R-Precision:")
	assert.Contains(t, out, "Mean precision at recall levels:")
	assert.Contains(t, out, "10:")
	assert.Contains(t, out, "Per-query results")
}

func TestWriteTableRendersNaNFMeasure(t *testing.T) {
	var acc metrics.Accumulator
	acc.Fold(metrics.Score(1, nil, nil))

	r := Generate("", []*runner.EngineResult{{
		EngineName: "empty",
		QueryCount: 1,
		Summary:    acc.Finalize(1),
	}})

	var buf bytes.Buffer
	WriteTable(r, &buf)

	assert.Contains(t, buf.String(), "NaN")
}

func TestJSONEncodesNaNFMeasureAsNull(t *testing.T) {
	var acc metrics.Accumulator
	acc.Fold(metrics.Score(1, nil, nil))

	r := Generate("", []*runner.EngineResult{{
		EngineName: "empty",
		QueryCount: 1,
		Summary:    acc.Finalize(1),
	}})

	data, err := json.Marshal(r)

	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	engines := decoded["engines"].([]any)
	entry := engines[0].(map[string]any)
	assert.Nil(t, entry["f_measure"])
}

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func docSet(ids ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		ranked []int
		rel    map[int]struct{}
		check  func(t *testing.T, m QueryMetrics)
	}{
		{
			name:   "relevant at ranks 2 and 3",
			ranked: []int{5, 3, 9},
			rel:    docSet(3, 9),
			check: func(t *testing.T, m QueryMetrics) {
				assert.Equal(t, 3, m.Retrieved)
				assert.Equal(t, 2, m.Relevant)
				assert.Equal(t, 2, m.RetrievedRelevant)
				assert.InDelta(t, 2.0/3.0, m.Precision(), 1e-9)
				assert.InDelta(t, 1.0, m.Recall(), 1e-9)
				// Precision at the two relevant ranks: 1/2 and 2/3.
				assert.InDelta(t, (0.5+2.0/3.0)/2.0, m.AveragePrecision, 1e-9)
				// Only one relevant doc seen among the first two ranks.
				assert.InDelta(t, 0.5, m.RPrecision, 1e-9)
			},
		},
		{
			name:   "empty result list",
			ranked: nil,
			rel:    docSet(1, 2),
			check: func(t *testing.T, m QueryMetrics) {
				assert.Equal(t, 0, m.Retrieved)
				assert.Equal(t, 2, m.Relevant)
				assert.Zero(t, m.RetrievedRelevant)
				assert.Zero(t, m.Precision())
				assert.Zero(t, m.Recall())
				assert.Zero(t, m.AveragePrecision)
				assert.Zero(t, m.RPrecision)
				for i, p := range m.PrecisionAtRecall {
					assert.Zerof(t, p, "level %d", i)
				}
			},
		},
		{
			name:   "no judged-relevant documents",
			ranked: []int{1, 2, 3},
			rel:    docSet(),
			check: func(t *testing.T, m QueryMetrics) {
				assert.Equal(t, 3, m.Retrieved)
				assert.Zero(t, m.Relevant)
				assert.Zero(t, m.Precision())
				assert.Zero(t, m.Recall())
				assert.Zero(t, m.AveragePrecision)
				assert.Zero(t, m.RPrecision)
			},
		},
		{
			name:   "perfect ranking",
			ranked: []int{1, 2},
			rel:    docSet(1, 2),
			check: func(t *testing.T, m QueryMetrics) {
				assert.InDelta(t, 1.0, m.AveragePrecision, 1e-9)
				assert.InDelta(t, 1.0, m.RPrecision, 1e-9)
				for i, p := range m.PrecisionAtRecall {
					assert.InDeltaf(t, 1.0, p, 1e-9, "level %d", i)
				}
			},
		},
		{
			name:   "result list shorter than relevant count leaves r-precision at zero",
			ranked: []int{7},
			rel:    docSet(7, 8, 9),
			check: func(t *testing.T, m QueryMetrics) {
				assert.Equal(t, 1, m.RetrievedRelevant)
				assert.Zero(t, m.RPrecision)
			},
		},
		{
			name:   "duplicate relevant hit double-counts",
			ranked: []int{4, 4},
			rel:    docSet(4),
			check: func(t *testing.T, m QueryMetrics) {
				assert.Equal(t, 2, m.RetrievedRelevant)
				// AP accumulates 1/1 and 2/2, normalized by one relevant doc.
				assert.InDelta(t, 2.0, m.AveragePrecision, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Score(1, tt.ranked, tt.rel))
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	ranked := []int{10, 4, 7, 2, 9, 4}
	rel := docSet(4, 9, 11)

	first := Score(3, ranked, rel)
	second := Score(3, ranked, rel)

	assert.Equal(t, first, second)
}

func TestScoreCurveProperties(t *testing.T) {
	cases := []struct {
		name   string
		ranked []int
		rel    map[int]struct{}
	}{
		{"alternating hits", []int{1, 50, 2, 51, 3, 52}, docSet(1, 2, 3)},
		{"late hits", []int{50, 51, 52, 1, 2}, docSet(1, 2)},
		{"single hit", []int{9}, docSet(9)},
		{"misses only", []int{5, 6, 7}, docSet(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Score(1, tc.ranked, tc.rel)

			if m.Relevant > 0 {
				assert.GreaterOrEqual(t, m.AveragePrecision, 0.0)
				assert.LessOrEqual(t, m.AveragePrecision, 1.0)
				assert.GreaterOrEqual(t, m.RPrecision, 0.0)
				assert.LessOrEqual(t, m.RPrecision, 1.0)
			}

			// Interpolated precision never increases with the recall level,
			// and level 0 dominates the whole curve.
			for i := 1; i < RecallLevels; i++ {
				assert.GreaterOrEqual(t, m.PrecisionAtRecall[i-1], m.PrecisionAtRecall[i])
				assert.GreaterOrEqual(t, m.PrecisionAtRecall[0], m.PrecisionAtRecall[i])
			}
		})
	}
}

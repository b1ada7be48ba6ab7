// Package metrics computes retrieval effectiveness metrics for a single
// ranked result list against a set of judged-relevant documents, and
// macro-averages them across the queries of an evaluation run.
package metrics

// RecallLevels is the number of points on the interpolated
// precision/recall curve (recall 0.0, 0.1, ..., 1.0).
const RecallLevels = 11

// QueryMetrics holds the effectiveness scores of one query. It is fully
// populated by Score and never mutated afterwards.
type QueryMetrics struct {
	QueryID           int                   `json:"query_id"`
	Retrieved         int                   `json:"retrieved"`
	Relevant          int                   `json:"relevant"`
	RetrievedRelevant int                   `json:"retrieved_relevant"`
	AveragePrecision  float64               `json:"average_precision"`
	RPrecision        float64               `json:"r_precision"`
	PrecisionAtRecall [RecallLevels]float64 `json:"precision_at_recall"`
}

// Precision is the fraction of retrieved documents that are relevant,
// 0 when nothing was retrieved.
func (m QueryMetrics) Precision() float64 {
	if m.Retrieved == 0 {
		return 0
	}
	return float64(m.RetrievedRelevant) / float64(m.Retrieved)
}

// Recall is the fraction of relevant documents that were retrieved,
// 0 when the query has no judged-relevant documents.
func (m QueryMetrics) Recall() float64 {
	if m.Relevant == 0 {
		return 0
	}
	return float64(m.RetrievedRelevant) / float64(m.Relevant)
}

// Score walks ranked once in rank order (position 0 is rank 1) and
// produces the per-query metrics:
//
//   - Average precision: the mean of precision values at each rank where
//     a relevant document appears, normalized by the relevant count.
//   - R-Precision: precision at the rank equal to the relevant count.
//     When the result list is shorter than the relevant count the value
//     stays 0.
//   - Interpolated precision at the 11 recall levels: the maximum
//     precision observed at any rank whose recall reaches at least that
//     level.
//
// Duplicates in ranked are not filtered; a duplicated relevant hit
// counts twice. Score is a pure function with no failure modes.
func Score(queryID int, ranked []int, relevant map[int]struct{}) QueryMetrics {
	m := QueryMetrics{
		QueryID:   queryID,
		Retrieved: len(ranked),
		Relevant:  len(relevant),
	}

	var apSum float64
	for i, docID := range ranked {
		if _, ok := relevant[docID]; ok {
			m.RetrievedRelevant++
			apSum += float64(m.RetrievedRelevant) / float64(i+1)
		}

		if m.Relevant > 0 && i == m.Relevant-1 {
			m.RPrecision = float64(m.RetrievedRelevant) / float64(m.Relevant)
		}

		var localRecall float64
		if m.Relevant > 0 {
			localRecall = float64(m.RetrievedRelevant) / float64(m.Relevant)
		}
		localPrecision := float64(m.RetrievedRelevant) / float64(i+1)

		// Levels are increasing thresholds, so the loop can stop at the
		// first one above the current recall.
		for level := 0; level < RecallLevels && float64(level)/10 <= localRecall; level++ {
			if localPrecision > m.PrecisionAtRecall[level] {
				m.PrecisionAtRecall[level] = localPrecision
			}
		}
	}

	if m.Relevant > 0 {
		m.AveragePrecision = apSum / float64(m.Relevant)
	}

	return m
}

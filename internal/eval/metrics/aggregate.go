package metrics

// Accumulator folds per-query metrics into running sums for one
// evaluation run. The zero value is ready to use. An Accumulator must
// not be shared across concurrent runs; each run owns its own.
type Accumulator struct {
	totalRetrieved         int
	totalRelevant          int
	totalRetrievedRelevant int

	precisionSum  float64
	recallSum     float64
	apSum         float64
	rPrecisionSum float64
	curveSum      [RecallLevels]float64
}

// Summary is the macro-averaged result of one evaluation run, produced
// once by Finalize and immutable afterwards.
type Summary struct {
	TotalRetrieved         int     `json:"total_retrieved"`
	TotalRelevant          int     `json:"total_relevant"`
	TotalRetrievedRelevant int     `json:"total_retrieved_relevant"`
	MeanPrecision          float64 `json:"mean_precision"`
	MeanRecall             float64 `json:"mean_recall"`
	FMeasure               float64 `json:"f_measure"`
	MeanAveragePrecision   float64 `json:"mean_average_precision"`
	MeanRPrecision         float64 `json:"mean_r_precision"`

	MeanPrecisionAtRecall [RecallLevels]float64 `json:"mean_precision_at_recall"`
}

// Fold adds one query's metrics to the running sums.
func (a *Accumulator) Fold(m QueryMetrics) {
	a.totalRetrieved += m.Retrieved
	a.totalRelevant += m.Relevant
	a.totalRetrievedRelevant += m.RetrievedRelevant

	a.precisionSum += m.Precision()
	a.recallSum += m.Recall()
	a.apSum += m.AveragePrecision
	a.rPrecisionSum += m.RPrecision

	for i := range m.PrecisionAtRecall {
		a.curveSum[i] += m.PrecisionAtRecall[i]
	}
}

// Finalize macro-averages the folded sums over queryCount queries.
// queryCount must be the number of Fold calls and must be positive;
// zero divides by zero.
//
// F-measure is the harmonic mean of the already-averaged precision and
// recall. When both means are exactly 0 the division yields NaN, which
// propagates to the report unchanged rather than being clamped to 0.
func (a *Accumulator) Finalize(queryCount int) Summary {
	n := float64(queryCount)

	s := Summary{
		TotalRetrieved:         a.totalRetrieved,
		TotalRelevant:          a.totalRelevant,
		TotalRetrievedRelevant: a.totalRetrievedRelevant,
		MeanPrecision:          a.precisionSum / n,
		MeanRecall:             a.recallSum / n,
		MeanAveragePrecision:   a.apSum / n,
		MeanRPrecision:         a.rPrecisionSum / n,
	}

	s.FMeasure = (2 * s.MeanPrecision * s.MeanRecall) / (s.MeanPrecision + s.MeanRecall)

	for i := range a.curveSum {
		s.MeanPrecisionAtRecall[i] = a.curveSum[i] / n
	}

	return s
}

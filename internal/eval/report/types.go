// Package report renders the outcome of an evaluation run as a
// human-readable table and as JSON. It performs no scoring of its own.
package report

import (
	"encoding/json"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/mpavlovic/retrieval-eval/internal/eval/metrics"
	"github.com/mpavlovic/retrieval-eval/internal/eval/runner"
)

type Report struct {
	Meta    Meta          `json:"meta"`
	Plan    string        `json:"plan,omitempty"`
	Engines []EngineEntry `json:"engines"`
}

type Meta struct {
	RunID     uuid.UUID `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	GoVersion string    `json:"go_version"`
	OS        string    `json:"os"`
	Arch      string    `json:"arch"`
	NumCPU    int       `json:"num_cpu"`
}

type EngineEntry struct {
	EngineName string `json:"engine_name"`
	QueryCount int    `json:"query_count"`
	ErrorCount int    `json:"error_count"`

	TotalRetrieved         int `json:"total_retrieved"`
	TotalRelevant          int `json:"total_relevant"`
	TotalRetrievedRelevant int `json:"total_retrieved_relevant"`

	MeanPrecision        float64       `json:"mean_precision"`
	MeanRecall           float64       `json:"mean_recall"`
	FMeasure             nullableFloat `json:"f_measure"`
	MeanAveragePrecision float64       `json:"mean_average_precision"`
	MeanRPrecision       float64       `json:"mean_r_precision"`

	MeanPrecisionAtRecall [metrics.RecallLevels]float64 `json:"mean_precision_at_recall"`

	PerQuery []metrics.QueryMetrics `json:"per_query"`
	Latency  runner.LatencyStats    `json:"latency"`
}

// nullableFloat renders NaN and infinities as JSON null, since JSON has
// no representation for them. The table rendering keeps the raw NaN.
type nullableFloat float64

func (f nullableFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func newMeta() Meta {
	return Meta{
		RunID:     uuid.New(),
		Timestamp: time.Now().UTC(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// Generate assembles the report for one run.
func Generate(planName string, results []*runner.EngineResult) *Report {
	r := &Report{
		Meta: newMeta(),
		Plan: planName,
	}

	for _, res := range results {
		s := res.Summary
		r.Engines = append(r.Engines, EngineEntry{
			EngineName:             res.EngineName,
			QueryCount:             res.QueryCount,
			ErrorCount:             res.ErrorCount,
			TotalRetrieved:         s.TotalRetrieved,
			TotalRelevant:          s.TotalRelevant,
			TotalRetrievedRelevant: s.TotalRetrievedRelevant,
			MeanPrecision:          s.MeanPrecision,
			MeanRecall:             s.MeanRecall,
			FMeasure:               nullableFloat(s.FMeasure),
			MeanAveragePrecision:   s.MeanAveragePrecision,
			MeanRPrecision:         s.MeanRPrecision,
			MeanPrecisionAtRecall:  s.MeanPrecisionAtRecall,
			PerQuery:               res.PerQuery,
			Latency:                res.Latency,
		})
	}

	return r
}

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable renders the report deterministically: engines appear in
// run order, queries in query order, recall levels 0..10.
func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Retrieval Quality Evaluation ===\n")

	for i := range r.Engines {
		writeEngine(tw, &r.Engines[i])
	}

	tw.Flush()
}

func writeEngine(tw *tabwriter.Writer, e *EngineEntry) {
	fmt.Fprintf(tw, "\n--- Engine: %s ---\n\n", e.EngineName)

	fmt.Fprintf(tw, "Queries evaluated:\t%d\n", e.QueryCount)
	if e.ErrorCount > 0 {
		fmt.Fprintf(tw, "Failed queries:\t%d\n", e.ErrorCount)
	}
	fmt.Fprintf(tw, "Retrieved documents:\t%d\n", e.TotalRetrieved)
	fmt.Fprintf(tw, "Relevant documents:\t%d\n", e.TotalRelevant)
	fmt.Fprintf(tw, "Relevant documents retrieved:\t%d\n", e.TotalRetrievedRelevant)
	fmt.Fprintf(tw, "Mean precision:\t%.4f\n", e.MeanPrecision)
	fmt.Fprintf(tw, "Mean recall:\t%.4f\n", e.MeanRecall)
	fmt.Fprintf(tw, "F-measure:\t%.4f\n", float64(e.FMeasure))
	fmt.Fprintf(tw, "MAP:\t%.4f\n", e.MeanAveragePrecision)
	fmt.Fprintf(tw, "Mean R-Precision:\t%.4f\n", e.MeanRPrecision)

	fmt.Fprintf(tw, "\nMean precision at recall levels:\n")
	for i, p := range e.MeanPrecisionAtRecall {
		fmt.Fprintf(tw, "\t%d:\t%.4f\n", i, p)
	}

	if e.Latency.SampleCount > 0 {
		fmt.Fprintf(tw, "\nQuery latency:\tmin %s\tp50 %s\tp95 %s\tmax %s\tmean %s\n",
			e.Latency.Min, e.Latency.P50, e.Latency.P95, e.Latency.Max, e.Latency.Mean)
	}

	writePerQuery(tw, e)
}

func writePerQuery(tw *tabwriter.Writer, e *EngineEntry) {
	fmt.Fprintf(tw, "\nPer-query results\n\n")

	header := []string{"Query", "Retrieved", "Relevant", "RelRetrieved", "AP", "R-Prec"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, q := range e.PerQuery {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.4f\t%.4f\n",
			q.QueryID, q.Retrieved, q.Relevant, q.RetrievedRelevant,
			q.AveragePrecision, q.RPrecision)
	}
}

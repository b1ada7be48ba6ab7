package corpus

import (
	"fmt"
	"strings"
)

const querySeparator = "\t"

// Query is one entry of the ordered query list. IDs are 1-based and
// assigned by file position, so they are unique, dense and contiguous
// within a run.
type Query struct {
	ID   int
	Text string
}

// LoadQueries reads a tab-separated query file. Each line carries a
// label field followed by the query text; the label is ignored and the
// Nth non-empty line becomes QueryID N, matching the ordering the
// judgments were produced against.
func LoadQueries(path string) ([]Query, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}

	queries := make([]Query, 0, len(lines))
	for i, line := range lines {
		fields := strings.SplitN(line, querySeparator, 2)
		if len(fields) != 2 || fields[1] == "" {
			return nil, fmt.Errorf("query file %s line %d: expected <label><TAB><text>, got %q", path, i+1, line)
		}
		queries = append(queries, Query{ID: i + 1, Text: fields[1]})
	}
	return queries, nil
}

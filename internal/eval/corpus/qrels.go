package corpus

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	qrelSeparator = ";"
	docSeparator  = ","
)

// DocSet is a set of document identifiers.
type DocSet map[int]struct{}

// Contains reports whether id is in the set.
func (s DocSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Judgments maps a query ID to the set of documents judged relevant for
// it. Built once per evaluation run and read-only afterwards; safe to
// share across concurrent runs.
type Judgments map[int]DocSet

// Relevant returns the judged-relevant set for queryID. A query absent
// from the judgments has an empty relevant set, not an error.
func (j Judgments) Relevant(queryID int) DocSet {
	return j[queryID]
}

// LoadJudgments reads a qrels file. Each line is
// <query>;<doc>,<doc>,... and repeated lines for the same query merge
// into one set.
func LoadJudgments(path string) (Judgments, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}

	judgments := make(Judgments)
	for i, line := range lines {
		queryField, docsField, ok := strings.Cut(line, qrelSeparator)
		if !ok {
			return nil, fmt.Errorf("qrels file %s line %d: missing %q separator", path, i+1, qrelSeparator)
		}

		queryID, err := strconv.Atoi(strings.TrimSpace(queryField))
		if err != nil {
			return nil, fmt.Errorf("qrels file %s line %d: query id: %w", path, i+1, err)
		}

		docs := judgments[queryID]
		if docs == nil {
			docs = make(DocSet)
			judgments[queryID] = docs
		}

		for _, docField := range strings.Split(docsField, docSeparator) {
			docID, err := strconv.Atoi(strings.TrimSpace(docField))
			if err != nil {
				return nil, fmt.Errorf("qrels file %s line %d: doc id: %w", path, i+1, err)
			}
			docs[docID] = struct{}{}
		}
	}
	return judgments, nil
}

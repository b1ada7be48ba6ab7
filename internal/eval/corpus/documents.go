package corpus

import (
	"fmt"
	"strconv"
	"strings"
)

// Document is one entry of the document collection. Authors and Summary
// may be empty; Title is always present.
type Document struct {
	ID      int
	Authors string
	Title   string
	Summary string
}

// Text is the searchable content of the document.
func (d Document) Text() string {
	return strings.TrimSpace(d.Authors + " " + d.Title + " " + d.Summary)
}

// LoadDocuments reads a tab-separated collection file with lines
// <id><TAB><authors><TAB><title><TAB><summary>.
func LoadDocuments(path string) ([]Document, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(lines))
	for i, line := range lines {
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 3 {
			return nil, fmt.Errorf("collection file %s line %d: expected at least <id><TAB><authors><TAB><title>, got %q", path, i+1, line)
		}

		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("collection file %s line %d: doc id: %w", path, i+1, err)
		}

		doc := Document{ID: id, Authors: fields[1], Title: fields[2]}
		if len(fields) == 4 {
			doc.Summary = fields[3]
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// LoadStopwords reads a stopword file with one word per line.
func LoadStopwords(path string) ([]string, error) {
	return readFileLines(path)
}

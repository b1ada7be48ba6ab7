package analysis

import "strings"

// Whitespace splits on whitespace only, keeping case and punctuation.
// Query and document terms must match exactly.
type Whitespace struct{}

func (Whitespace) Name() string { return WhitespaceName }

func (Whitespace) Analyze(text string) []string {
	return strings.Fields(text)
}

// Package analysis provides the text analyzers the retrieval engines
// tokenize documents and queries with. The run driver picks the
// variant; the scoring core never sees analyzers.
package analysis

import "fmt"

// Analyzer turns raw text into index terms. Implementations are
// stateless after construction and safe for concurrent use.
type Analyzer interface {
	Name() string
	Analyze(text string) []string
}

// Analyzer variant names accepted in run plans.
const (
	WhitespaceName    = "whitespace"
	StandardName      = "standard"
	EnglishName       = "english"
	EnglishCustomName = "english-custom"
)

// ForName builds the analyzer variant with the given name. stopwords is
// only consulted by the english-custom variant, which requires a
// non-empty list.
func ForName(name string, stopwords []string) (Analyzer, error) {
	switch name {
	case WhitespaceName:
		return Whitespace{}, nil
	case StandardName:
		return Standard{}, nil
	case EnglishName:
		return NewEnglish(), nil
	case EnglishCustomName:
		if len(stopwords) == 0 {
			return nil, fmt.Errorf("analyzer %q requires a stopword list", name)
		}
		return NewEnglishWithStopwords(stopwords), nil
	default:
		return nil, fmt.Errorf("unknown analyzer %q", name)
	}
}

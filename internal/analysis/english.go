package analysis

import "github.com/reiver/go-porterstemmer"

// defaultStopwords mirrors the usual English stopword list applied by
// analytic search engines.
var defaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
	"if", "in", "into", "is", "it", "no", "not", "of", "on", "or",
	"such", "that", "the", "their", "then", "there", "these", "they",
	"this", "to", "was", "will", "with",
}

// English applies Standard tokenization, removes stopwords and Porter-stems
// the remaining terms.
type English struct {
	name      string
	stopwords map[string]struct{}
}

// NewEnglish builds the stemming analyzer with the default English
// stopword list.
func NewEnglish() *English {
	return newEnglish(EnglishName, defaultStopwords)
}

// NewEnglishWithStopwords builds the stemming analyzer with a
// caller-supplied stopword list instead of the default one.
func NewEnglishWithStopwords(stopwords []string) *English {
	return newEnglish(EnglishCustomName, stopwords)
}

func newEnglish(name string, stopwords []string) *English {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return &English{name: name, stopwords: set}
}

func (e *English) Name() string { return e.name }

func (e *English) Analyze(text string) []string {
	terms := Standard{}.Analyze(text)
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if _, stop := e.stopwords[term]; stop {
			continue
		}
		stemmed := porterstemmer.StemString(term)
		if stemmed == "" {
			continue
		}
		out = append(out, stemmed)
	}
	return out
}

package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Standard lowercases NFC-normalized text and splits on any rune that
// is neither a letter nor a digit.
type Standard struct{}

func (Standard) Name() string { return StandardName }

func (Standard) Analyze(text string) []string {
	text = norm.NFC.String(strings.ToLower(text))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

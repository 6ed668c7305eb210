// Package tokenizer turns sentence text into normalized word tokens.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text and removes every rune that is not a letter, a
// digit or whitespace. Text is composed to NFC first so that precomposed and
// decomposed accents produce the same token.
func Normalize(text string) string {
	// A Caser keeps state and must not be shared between goroutines.
	lower := cases.Lower(language.Und).String(norm.NFC.String(text))
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lower)
}

// Tokenize returns the whitespace-separated words of the normalized text.
// Duplicates are kept and no length or stopword filtering is applied.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

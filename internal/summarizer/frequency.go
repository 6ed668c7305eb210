package summarizer

import (
	"unicode/utf8"

	"textsum/internal/domain"
	"textsum/internal/stopwords"
	"textsum/internal/tokenizer"
)

// DefaultMinTokenLength is the longest token length that is still too short
// to be counted.
const DefaultMinTokenLength = 2

// FrequencyTable maps a normalized token to its occurrence count across a
// whole document. It is read-only once built.
type FrequencyTable struct {
	counts map[string]int
}

// Count returns the number of occurrences of token; absent tokens count 0.
func (t FrequencyTable) Count(token string) int {
	return t.counts[token]
}

// Len returns the number of distinct counted tokens.
func (t FrequencyTable) Len() int { return len(t.counts) }

// BuildFrequencies counts every token of every sentence, skipping tokens of
// at most minLen runes and stopwords.
func BuildFrequencies(sentences []domain.Sentence, stop stopwords.Set, minLen int) FrequencyTable {
	counts := map[string]int{}
	for _, sent := range sentences {
		for _, tok := range tokenizer.Tokenize(sent.Text) {
			if utf8.RuneCountInString(tok) <= minLen || stop.Contains(tok) {
				continue
			}
			counts[tok]++
		}
	}
	return FrequencyTable{counts: counts}
}

// Package stopwords holds the immutable word sets excluded from frequency
// counting.
package stopwords

import "strings"

// Set is a read-only set of lowercase words. The zero value is an empty set.
// A Set is never modified after construction and is safe for concurrent use.
type Set struct {
	words map[string]struct{}
}

// New builds a set from words, lowercasing and trimming each one. Blank words
// are ignored.
func New(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Default returns the built-in English stopword set.
func Default() Set { return New(defaultWords...) }

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s.words) }

// With returns a new set holding the words of s plus extra.
func (s Set) With(extra ...string) Set {
	all := make([]string, 0, len(s.words)+len(extra))
	for w := range s.words {
		all = append(all, w)
	}
	return New(append(all, extra...)...)
}

var defaultWords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "while", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
}

package segmenter

import (
	"regexp"
	"strings"

	"textsum/internal/domain"
)

// boundary matches a run of terminal punctuation followed by whitespace. The
// sentence ends after the punctuation; the whitespace belongs to neither side.
var boundary = regexp.MustCompile(`[.!?]+(\s+)`)

// SentenceSegmenter splits text after sentence-terminal punctuation.
//
// Segmentation is lenient: a trailing fragment without terminal punctuation is
// kept as the last sentence, and text with no terminal punctuation at all is a
// single sentence.
type SentenceSegmenter struct{}

func New() *SentenceSegmenter { return &SentenceSegmenter{} }

// Segment implements domain.Segmenter.
func (SentenceSegmenter) Segment(text string) []domain.Sentence {
	return Segment(text)
}

// Segment returns the trimmed, non-empty sentences of text in order, indexed
// from 0 after empty fragments are dropped.
func Segment(text string) []domain.Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var sentences []domain.Sentence
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		sentences = append(sentences, domain.Sentence{Index: len(sentences), Text: s})
	}
	start := 0
	for _, m := range boundary.FindAllStringSubmatchIndex(text, -1) {
		// m[2] is where the trailing whitespace begins.
		add(text[start:m[2]])
		start = m[1]
	}
	add(text[start:])
	return sentences
}

// Texts returns the literal texts of sentences.
func Texts(sentences []domain.Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

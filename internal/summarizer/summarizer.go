package summarizer

import (
	"errors"
	"fmt"
	"strings"

	"textsum/internal/domain"
	"textsum/internal/segmenter"
	"textsum/internal/stopwords"
)

// ErrInvalidArgument is returned for a non-positive summary length or an
// unknown option value.
var ErrInvalidArgument = errors.New("invalid argument")

// NoContentMessage is what an empty Summary prints as.
const NoContentMessage = "No valid sentences found in the input text."

// Summary is the result of one Summarize call.
type Summary struct {
	// Text is the selected sentences joined by single spaces, in document order.
	Text string
	// Sentences are the selected sentences with their scores, in document order.
	Sentences []domain.ScoredSentence
	// Total is the number of sentences the text was segmented into.
	Total int
	// Empty is set when the text held no sentences at all.
	Empty bool
}

// String returns the summary text, or NoContentMessage for an empty summary.
func (s Summary) String() string {
	if s.Empty {
		return NoContentMessage
	}
	return s.Text
}

// Options configures a FrequencySummarizer.
type Options struct {
	Stopwords      stopwords.Set
	MinTokenLength int
	Scoring        Scoring
	Segmenter      domain.Segmenter
}

// DefaultOptions returns the built-in stopwords, raw scoring and lenient
// sentence segmentation.
func DefaultOptions() Options {
	return Options{
		Stopwords:      stopwords.Default(),
		MinTokenLength: DefaultMinTokenLength,
		Scoring:        ScoringRaw,
		Segmenter:      segmenter.New(),
	}
}

// FrequencySummarizer ranks sentences by document-wide word frequency
// (stopwords filtered) and keeps the best ones in document order.
// It holds no mutable state; one instance may serve concurrent calls.
type FrequencySummarizer struct {
	opts Options
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer(opts Options) (*FrequencySummarizer, error) {
	if opts.Scoring == "" {
		opts.Scoring = ScoringRaw
	}
	if _, err := ParseScoring(string(opts.Scoring)); err != nil {
		return nil, err
	}
	if opts.MinTokenLength < 0 {
		return nil, fmt.Errorf("%w: min token length %d", ErrInvalidArgument, opts.MinTokenLength)
	}
	if opts.Segmenter == nil {
		opts.Segmenter = segmenter.New()
	}
	return &FrequencySummarizer{opts: opts}, nil
}

// Scoring returns the scoring policy in use.
func (s *FrequencySummarizer) Scoring() Scoring { return s.opts.Scoring }

// Summarize returns the topN highest-scoring sentences of text in their
// original order.
func (s *FrequencySummarizer) Summarize(text string, topN int) (Summary, error) {
	if topN <= 0 {
		return Summary{}, fmt.Errorf("%w: topN must be positive, got %d", ErrInvalidArgument, topN)
	}
	sentences := s.opts.Segmenter.Segment(text)
	if len(sentences) == 0 {
		return Summary{Empty: true}, nil
	}
	// Frequencies cover the whole document before any sentence is scored.
	table := BuildFrequencies(sentences, s.opts.Stopwords, s.opts.MinTokenLength)
	scored := Score(sentences, table, s.opts.Scoring)
	selected := SelectTop(scored, topN)

	parts := make([]string, len(selected))
	for i, sel := range selected {
		parts[i] = sel.Text
	}
	return Summary{
		Text:      strings.TrimSpace(strings.Join(parts, " ")),
		Sentences: selected,
		Total:     len(sentences),
	}, nil
}

// Summarize runs a summarizer with DefaultOptions.
func Summarize(text string, topN int) (Summary, error) {
	s, err := NewFrequencySummarizer(DefaultOptions())
	if err != nil {
		return Summary{}, err
	}
	return s.Summarize(text, topN)
}

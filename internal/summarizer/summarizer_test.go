package summarizer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/domain"
	"textsum/internal/segmenter"
	"textsum/internal/stopwords"
)

const catText = "The cat sat. The cat sat on the mat. Dogs bark loudly at night."

func newTestSummarizer(t *testing.T, scoring Scoring, stop ...string) *FrequencySummarizer {
	t.Helper()
	opts := DefaultOptions()
	opts.Stopwords = stopwords.New(stop...)
	opts.Scoring = scoring
	s, err := NewFrequencySummarizer(opts)
	require.NoError(t, err)
	return s
}

func indices(sel []domain.ScoredSentence) []int {
	out := make([]int, len(sel))
	for i, s := range sel {
		out[i] = s.Index
	}
	return out
}

func TestBuildFrequencies(t *testing.T) {
	sentences := segmenter.Segment(catText)
	table := BuildFrequencies(sentences, stopwords.New("the", "on", "at"), DefaultMinTokenLength)

	assert.Equal(t, 2, table.Count("cat"))
	assert.Equal(t, 2, table.Count("sat"))
	assert.Equal(t, 1, table.Count("mat"))
	assert.Equal(t, 1, table.Count("dogs"))
	assert.Equal(t, 1, table.Count("night"))
	assert.Equal(t, 0, table.Count("the"), "stopword")
	assert.Equal(t, 0, table.Count("unseen"))
	assert.Equal(t, 7, table.Len())
}

func TestBuildFrequenciesSkipsShortTokens(t *testing.T) {
	sentences := segmenter.Segment("Go is ok. Go go go.")
	table := BuildFrequencies(sentences, stopwords.Set{}, DefaultMinTokenLength)
	assert.Equal(t, 0, table.Len())

	table = BuildFrequencies(sentences, stopwords.Set{}, 1)
	assert.Equal(t, 4, table.Count("go"))
	assert.Equal(t, 1, table.Count("is"))
}

func TestScore(t *testing.T) {
	sentences := segmenter.Segment(catText)
	table := BuildFrequencies(sentences, stopwords.New("the", "on", "at"), DefaultMinTokenLength)

	raw := Score(sentences, table, ScoringRaw)
	require.Len(t, raw, 3)
	assert.Equal(t, []float64{4, 5, 4}, []float64{raw[0].Score, raw[1].Score, raw[2].Score})

	mean := Score(sentences, table, ScoringMean)
	assert.InDelta(t, 4.0/3.0, mean[0].Score, 1e-9)
	assert.InDelta(t, 5.0/6.0, mean[1].Score, 1e-9)
	assert.InDelta(t, 4.0/5.0, mean[2].Score, 1e-9)
}

func TestScoreMeanGuardsEmptySentences(t *testing.T) {
	sentences := []domain.Sentence{{Index: 0, Text: "?!"}, {Index: 1, Text: "cats cats."}}
	table := BuildFrequencies(sentences, stopwords.Set{}, DefaultMinTokenLength)
	scored := Score(sentences, table, ScoringMean)
	assert.Equal(t, 0.0, scored[0].Score)
	assert.Equal(t, 2.0, scored[1].Score)
}

func TestParseScoring(t *testing.T) {
	for in, want := range map[string]Scoring{"": ScoringRaw, "raw": ScoringRaw, " Mean ": ScoringMean} {
		got, err := ParseScoring(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseScoring("median")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestSelectTop(t *testing.T) {
	scored := func(scores ...float64) []domain.ScoredSentence {
		out := make([]domain.ScoredSentence, len(scores))
		for i, s := range scores {
			out[i] = domain.ScoredSentence{Sentence: domain.Sentence{Index: i, Text: fmt.Sprint(i)}, Score: s}
		}
		return out
	}
	tests := []struct {
		name   string
		scores []float64
		n      int
		want   []int
	}{
		{name: "none", scores: nil, n: 3, want: []int{}},
		{name: "n zero", scores: []float64{1, 2}, n: 0, want: []int{}},
		{name: "best one", scores: []float64{1, 5, 3}, n: 1, want: []int{1}},
		{name: "restores document order", scores: []float64{1, 5, 3, 4}, n: 2, want: []int{1, 3}},
		{name: "n covers everything", scores: []float64{3, 1, 2}, n: 10, want: []int{0, 1, 2}},
		{name: "ties prefer earlier", scores: []float64{2, 2, 2, 2}, n: 2, want: []int{0, 1}},
		{name: "later tie does not evict", scores: []float64{1, 3, 3, 0, 3}, n: 2, want: []int{1, 2}},
		{name: "higher score evicts earlier tie", scores: []float64{3, 3, 9}, n: 2, want: []int{0, 2}},
		{name: "all zero", scores: []float64{0, 0, 0}, n: 1, want: []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indices(SelectTop(scored(tt.scores...), tt.n))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectTopMatchesFullSort(t *testing.T) {
	// Deterministic pseudo-random scores with many ties.
	scores := make([]domain.ScoredSentence, 200)
	x := uint32(7)
	for i := range scores {
		x = x*1103515245 + 12345
		scores[i] = domain.ScoredSentence{Sentence: domain.Sentence{Index: i}, Score: float64(x>>16) / 8192}
		scores[i].Score = float64(int(scores[i].Score))
	}
	for _, n := range []int{1, 2, 7, 50, 199} {
		ranked := make([]domain.ScoredSentence, len(scores))
		copy(ranked, scores)
		// insertion sort by (score desc, index asc)
		for i := 1; i < len(ranked); i++ {
			for j := i; j > 0 && ranksBelow(ranked[j-1], ranked[j]); j-- {
				ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
			}
		}
		want := ranked[:n]
		sortByIndex(want)
		assert.Equal(t, indices(want), indices(SelectTop(scores, n)), "n=%d", n)
	}
}

func TestSummarizeExample(t *testing.T) {
	s := newTestSummarizer(t, ScoringRaw, "the", "on", "at")
	got, err := s.Summarize(catText, 1)
	require.NoError(t, err)
	assert.False(t, got.Empty)
	assert.Equal(t, "The cat sat on the mat.", got.Text)
	assert.Equal(t, 3, got.Total)
	require.Len(t, got.Sentences, 1)
	assert.Equal(t, 1, got.Sentences[0].Index)
	assert.Equal(t, 5.0, got.Sentences[0].Score)
}

func TestSummarizeMeanScoring(t *testing.T) {
	s := newTestSummarizer(t, ScoringMean, "the", "on", "at")
	got, err := s.Summarize(catText, 1)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.", got.Text)
}

func TestSummarizeAllSentencesWhenTopNExceedsCount(t *testing.T) {
	s := newTestSummarizer(t, ScoringRaw, "the")
	for _, n := range []int{3, 4, 100} {
		got, err := s.Summarize(catText, n)
		require.NoError(t, err)
		assert.Equal(t, catText, got.Text, "n=%d", n)
	}
}

func TestSummarizeInvalidTopN(t *testing.T) {
	s := newTestSummarizer(t, ScoringRaw)
	for _, n := range []int{0, -1, -100} {
		_, err := s.Summarize(catText, n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "n=%d", n)
	}
	_, err := s.Summarize("", 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "argument check precedes empty check")
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := newTestSummarizer(t, ScoringRaw)
	for _, text := range []string{"", "   ", "\n\t"} {
		got, err := s.Summarize(text, 3)
		require.NoError(t, err)
		assert.True(t, got.Empty)
		assert.Equal(t, NoContentMessage, got.String())
		assert.Empty(t, got.Text)
	}
}

func TestSummarizeTextWithoutPunctuation(t *testing.T) {
	got, err := Summarize("no terminal punctuation here", 2)
	require.NoError(t, err)
	assert.False(t, got.Empty)
	assert.Equal(t, "no terminal punctuation here", got.String())
}

func TestSummarizeIsMonotonic(t *testing.T) {
	text := strings.Join([]string{
		"Solar power converts sunlight into electricity.",
		"Panels made of silicon cells capture sunlight.",
		"The weather was pleasant yesterday.",
		"Electricity from solar panels feeds the grid.",
		"Birds sang.",
		"Solar electricity costs have fallen sharply.",
		"Silicon cells age slowly in sunlight.",
	}, " ")
	s := newTestSummarizer(t, ScoringRaw, "the", "of", "into", "from", "have", "in", "was")
	prev := map[int]bool{}
	for k := 1; k <= 8; k++ {
		got, err := s.Summarize(text, k)
		require.NoError(t, err)
		cur := map[int]bool{}
		for _, sel := range got.Sentences {
			cur[sel.Index] = true
		}
		for idx := range prev {
			assert.True(t, cur[idx], "k=%d dropped sentence %d", k, idx)
		}
		assert.Len(t, got.Sentences, min(k, 7))
		prev = cur
	}
}

func TestSummarizeIsDeterministic(t *testing.T) {
	text := "Alpha beta gamma. Beta gamma alpha. Gamma alpha beta. Delta only. Alpha beta gamma."
	s := newTestSummarizer(t, ScoringRaw)
	first, err := s.Summarize(text, 2)
	require.NoError(t, err)
	assert.Equal(t, "Alpha beta gamma. Beta gamma alpha.", first.Text)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Summarize(text, 2)
			assert.NoError(t, err)
			assert.Equal(t, first.Text, got.Text)
		}()
	}
	wg.Wait()
}

func TestNewFrequencySummarizerValidates(t *testing.T) {
	opts := DefaultOptions()
	opts.Scoring = "bogus"
	_, err := NewFrequencySummarizer(opts)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	opts = DefaultOptions()
	opts.MinTokenLength = -1
	_, err = NewFrequencySummarizer(opts)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	s, err := NewFrequencySummarizer(Options{})
	require.NoError(t, err)
	assert.Equal(t, ScoringRaw, s.Scoring())
}

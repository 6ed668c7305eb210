package summarizer

import (
	"fmt"
	"strings"

	"textsum/internal/domain"
	"textsum/internal/tokenizer"
)

// Scoring selects how a sentence's token frequencies become its score.
type Scoring string

const (
	// ScoringRaw sums the document frequency of every token in the sentence.
	ScoringRaw Scoring = "raw"
	// ScoringMean divides the raw sum by the sentence's token count.
	ScoringMean Scoring = "mean"
)

// ParseScoring maps a config value to a Scoring. Empty means ScoringRaw.
func ParseScoring(s string) (Scoring, error) {
	switch Scoring(strings.ToLower(strings.TrimSpace(s))) {
	case ScoringRaw, "":
		return ScoringRaw, nil
	case ScoringMean:
		return ScoringMean, nil
	default:
		return "", fmt.Errorf("%w: unknown scoring policy %q", ErrInvalidArgument, s)
	}
}

// Score assigns each sentence the sum of its tokens' frequencies. Tokens are
// not filtered again here; stopwords and short tokens were never counted and
// contribute 0.
func Score(sentences []domain.Sentence, table FrequencyTable, policy Scoring) []domain.ScoredSentence {
	scored := make([]domain.ScoredSentence, len(sentences))
	for i, sent := range sentences {
		tokens := tokenizer.Tokenize(sent.Text)
		sum := 0
		for _, tok := range tokens {
			sum += table.Count(tok)
		}
		score := float64(sum)
		if policy == ScoringMean {
			if len(tokens) == 0 {
				score = 0
			} else {
				score /= float64(len(tokens))
			}
		}
		scored[i] = domain.ScoredSentence{Sentence: sent, Score: score}
	}
	return scored
}

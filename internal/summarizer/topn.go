package summarizer

import (
	"container/heap"
	"sort"

	"textsum/internal/domain"
)

// ranksBelow reports whether a ranks strictly below b: a lower score, or the
// same score and a later position in the document.
func ranksBelow(a, b domain.ScoredSentence) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Index > b.Index
}

// minHeap keeps the lowest-ranked sentence at the root.
type minHeap []domain.ScoredSentence

func (h minHeap) Len() int { return len(h) }
func (h minHeap) Less(i, j int) bool { return ranksBelow(h[i], h[j]) }
func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any) { *h = append(*h, x.(domain.ScoredSentence)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// SelectTop returns the n best-ranked sentences in ascending index order.
// Higher scores rank first and equal scores prefer the earlier sentence.
// It runs in O(S log n) using a heap bounded at n entries. n <= 0 selects
// nothing.
func SelectTop(scored []domain.ScoredSentence, n int) []domain.ScoredSentence {
	if n <= 0 || len(scored) == 0 {
		return nil
	}
	if n >= len(scored) {
		out := make([]domain.ScoredSentence, len(scored))
		copy(out, scored)
		sortByIndex(out)
		return out
	}
	h := make(minHeap, 0, n)
	for _, s := range scored {
		if h.Len() < n {
			heap.Push(&h, s)
			continue
		}
		if ranksBelow(h[0], s) {
			h[0] = s
			heap.Fix(&h, 0)
		}
	}
	out := []domain.ScoredSentence(h)
	sortByIndex(out)
	return out
}

func sortByIndex(s []domain.ScoredSentence) {
	sort.Slice(s, func(i, j int) bool { return s[i].Index < s[j].Index })
}

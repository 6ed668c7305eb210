package domain

// Document represents a single file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Sentence is a trimmed piece of a document, identified by its position in
// segmentation order.
type Sentence struct {
	Index int
	Text  string
}

// ScoredSentence is a sentence together with its frequency score.
type ScoredSentence struct {
	Sentence
	Score float64
}

// Segmenter splits raw text into sentences in document order.
type Segmenter interface {
	Segment(text string) []Sentence
}

// Loader extracts plain text from a document on disk.
type Loader interface {
	Load(path string) (Document, error)
}

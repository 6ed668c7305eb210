package service

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"textsum/internal/domain"
	"textsum/internal/loader"
	"textsum/internal/summarizer"
)

// Summarizer produces an extractive summary of the provided text.
type Summarizer interface {
	Summarize(text string, topN int) (summarizer.Summary, error)
}

// FileSummary is the summary of one loaded document.
type FileSummary struct {
	Document domain.Document
	Summary  summarizer.Summary
}

// SummaryService loads documents and summarizes them.
type SummaryService struct {
	loader     domain.Loader
	summarizer Summarizer
	logger     *slog.Logger
}

func NewSummaryService(ld domain.Loader, sum Summarizer, logger *slog.Logger) *SummaryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryService{loader: ld, summarizer: sum, logger: logger}
}

// SummarizeText summarizes already extracted text.
func (s *SummaryService) SummarizeText(text string, topN int) (summarizer.Summary, error) {
	start := time.Now()
	sum, err := s.summarizer.Summarize(text, topN)
	if err != nil {
		return summarizer.Summary{}, err
	}
	s.logger.Debug("summarized text",
		slog.Int("sentences", sum.Total),
		slog.Int("selected", len(sum.Sentences)),
		slog.Int("top_n", topN),
		slog.Duration("elapsed", time.Since(start)),
	)
	if sum.Empty {
		s.logger.Info("no sentences in input", slog.Int("bytes", len(text)))
	}
	return sum, nil
}

// LoadText returns the extracted text of the document at path. Read failures
// are returned unchanged.
func (s *SummaryService) LoadText(path string) (domain.Document, error) {
	doc, err := s.loader.Load(path)
	if err != nil {
		s.logger.Error("load document", slog.String("path", path), slog.Any("error", err))
		return domain.Document{}, err
	}
	s.logger.Info("loaded document", slog.String("path", path), slog.Int("bytes", len(doc.Content)))
	return doc, nil
}

// SummarizeFile loads and summarizes one document.
func (s *SummaryService) SummarizeFile(path string, topN int) (FileSummary, error) {
	doc, err := s.LoadText(path)
	if err != nil {
		return FileSummary{}, err
	}
	sum, err := s.SummarizeText(doc.Content, topN)
	if err != nil {
		return FileSummary{}, err
	}
	return FileSummary{Document: doc, Summary: sum}, nil
}

// SummarizeFiles expands glob patterns and summarizes each matching document
// separately. The first failure aborts the run.
func (s *SummaryService) SummarizeFiles(patterns []string, topN int) ([]FileSummary, error) {
	var paths []string
	for _, p := range patterns {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !loader.Supported(m) && len(matches) > 1 {
				s.logger.Debug("skipping unsupported file", slog.String("path", m))
				continue
			}
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents found")
	}
	out := make([]FileSummary, 0, len(paths))
	for _, p := range paths {
		fs, err := s.SummarizeFile(p, topN)
		if err != nil {
			return nil, err
		}
		out = append(out, fs)
	}
	return out, nil
}

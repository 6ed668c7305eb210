// Package loader extracts plain text from document files for summarization.
package loader

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textsum/internal/domain"
)

// ErrUnsupportedFormat reports a file type the loader cannot read.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ReadError wraps any failure to read or decode a document.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// FileLoader reads .txt, .docx and .pdf files from disk.
type FileLoader struct{}

func New() *FileLoader { return &FileLoader{} }

// Load implements domain.Loader.
func (l *FileLoader) Load(path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &ReadError{Path: path, Err: err}
	}
	text, err := ReadText(filepath.Ext(path), data)
	if err != nil {
		return domain.Document{}, &ReadError{Path: path, Err: err}
	}
	return domain.Document{ID: hashString(path), Path: path, Content: text}, nil
}

// Supported reports whether the loader recognizes the file extension of path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md", ".docx", ".pdf":
		return true
	}
	return false
}

// ReadText extracts text from data according to the file extension ext
// (with or without the leading dot).
func ReadText(ext string, data []byte) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "txt", "text", "md", "":
		return string(data), nil
	case "docx":
		return readDocx(data)
	case "pdf":
		return readPDF(data)
	case "doc":
		return "", fmt.Errorf("%w: legacy .doc files must be converted to .docx", ErrUnsupportedFormat)
	default:
		return "", fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}

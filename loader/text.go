package loader

import (
	"context"
	"fmt"
	"maps"
	"os"

	"github.com/ragforge/docqa"
)

// Text loads one document per file from plain text files on disk.
type Text struct {
	paths    []string
	metadata map[string]string
}

// TextOption configures the Text loader.
type TextOption func(*Text)

// WithTextMetadata attaches metadata to every loaded document.
func WithTextMetadata(metadata map[string]string) TextOption {
	return func(l *Text) {
		maps.Copy(l.metadata, metadata)
	}
}

// NewText creates a loader over the given file paths.
func NewText(paths []string, opts ...TextOption) *Text {
	l := &Text{
		paths:    paths,
		metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads each file into a document. The file path becomes the
// document ID and the "source" metadata entry.
func (l *Text) Load(ctx context.Context) ([]docqa.Document, error) {
	documents := make([]docqa.Document, 0, len(l.paths))
	for _, path := range l.paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		metadata := map[string]string{"source": path, "type": "text"}
		maps.Copy(metadata, l.metadata)

		documents = append(documents, docqa.Document{
			ID:       path,
			Content:  string(content),
			Metadata: metadata,
		})
	}
	return documents, nil
}

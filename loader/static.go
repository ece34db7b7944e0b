package loader

import (
	"context"

	"github.com/google/uuid"

	"github.com/ragforge/docqa"
)

// Static serves a fixed list of documents. Useful for demos and tests, or
// when the caller already holds the text.
type Static struct {
	Documents []docqa.Document
}

// NewStatic creates a static loader. Documents without an ID get one
// assigned at load time.
func NewStatic(documents ...docqa.Document) *Static {
	return &Static{Documents: documents}
}

// Load returns the static list, filling in missing IDs.
func (l *Static) Load(ctx context.Context) ([]docqa.Document, error) {
	docs := make([]docqa.Document, len(l.Documents))
	for i, doc := range l.Documents {
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		docs[i] = doc
	}
	return docs, nil
}

package chunk

import (
	"iter"

	"github.com/ragforge/docqa"
)

// DefaultSize and DefaultOverlap match the splitting parameters the
// toolkit's demo applications use.
const (
	DefaultSize    = 1000
	DefaultOverlap = 200
)

// Chunker cuts a document into overlapping rune windows. Size is the
// window length in runes and Overlap the number of runes shared between
// consecutive windows.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker validates the window parameters. Size must be positive and
// overlap must satisfy 0 <= overlap < size.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, docqa.NewConfigurationError("size", "must be positive")
	}
	if overlap < 0 {
		return nil, docqa.NewConfigurationError("overlap", "must not be negative")
	}
	if overlap >= size {
		return nil, docqa.NewConfigurationError("overlap", "must be smaller than size")
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// NewDefaultChunker returns a chunker with the default 1000/200 window.
func NewDefaultChunker() *Chunker {
	c, _ := NewChunker(DefaultSize, DefaultOverlap)
	return c
}

// Size returns the window length in runes.
func (c *Chunker) Size() int { return c.size }

// Overlap returns the number of runes shared between consecutive windows.
func (c *Chunker) Overlap() int { return c.overlap }

// Chunks returns a restartable sequence over the document's windows. The
// sequence is lazy: windows are materialized as the caller iterates, and
// ranging over it twice yields identical chunks.
func (c *Chunker) Chunks(doc docqa.Document) iter.Seq[docqa.Chunk] {
	return func(yield func(docqa.Chunk) bool) {
		runes := []rune(doc.Content)
		stride := c.size - c.overlap

		for pos, start := 0, 0; start < len(runes); pos, start = pos+1, start+stride {
			end := start + c.size
			if end > len(runes) {
				end = len(runes)
			}
			ck := docqa.Chunk{
				DocumentID: doc.ID,
				Content:    string(runes[start:end]),
				Start:      start,
				Pos:        pos,
			}
			if !yield(ck) {
				return
			}
			if end == len(runes) {
				return
			}
		}
	}
}

// Split materializes all windows of a document. An empty document yields
// no chunks.
func (c *Chunker) Split(doc docqa.Document) []docqa.Chunk {
	var chunks []docqa.Chunk
	for ck := range c.Chunks(doc) {
		chunks = append(chunks, ck)
	}
	return chunks
}

// SplitAll chunks every document in order, numbering positions per
// document.
func (c *Chunker) SplitAll(docs []docqa.Document) []docqa.Chunk {
	var chunks []docqa.Chunk
	for _, doc := range docs {
		chunks = append(chunks, c.Split(doc)...)
	}
	return chunks
}

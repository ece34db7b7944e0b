package chunk

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/ragforge/docqa"
)

// LangChainSplitter adapts a langchaingo text splitter to the Chunk shape.
// Unlike Chunker it splits on separators rather than fixed offsets, so
// chunk boundaries follow the document's structure. Start offsets are
// recovered by searching forward for each piece in the source text.
type LangChainSplitter struct {
	splitter textsplitter.TextSplitter
}

// NewLangChainSplitter wraps an arbitrary langchaingo splitter.
func NewLangChainSplitter(splitter textsplitter.TextSplitter) *LangChainSplitter {
	return &LangChainSplitter{splitter: splitter}
}

// NewRecursiveSplitter builds a recursive-character splitter with the given
// window parameters.
func NewRecursiveSplitter(size, overlap int) (*LangChainSplitter, error) {
	if size <= 0 {
		return nil, docqa.NewConfigurationError("size", "must be positive")
	}
	if overlap < 0 || overlap >= size {
		return nil, docqa.NewConfigurationError("overlap", "must satisfy 0 <= overlap < size")
	}
	s := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(size),
		textsplitter.WithChunkOverlap(overlap),
	)
	return &LangChainSplitter{splitter: s}, nil
}

// Split cuts the document along the underlying splitter's separators.
func (l *LangChainSplitter) Split(doc docqa.Document) ([]docqa.Chunk, error) {
	pieces, err := l.splitter.SplitText(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to split document %q: %w", doc.ID, err)
	}

	chunks := make([]docqa.Chunk, 0, len(pieces))
	searchFrom := 0
	for pos, piece := range pieces {
		start := searchFrom
		if idx := strings.Index(doc.Content[searchFrom:], piece); idx >= 0 {
			start = searchFrom + idx
			// Overlapping pieces may begin before the previous piece
			// ends, so only advance past the found start.
			searchFrom = start + 1
		}
		chunks = append(chunks, docqa.Chunk{
			DocumentID: doc.ID,
			Content:    piece,
			Start:      len([]rune(doc.Content[:start])),
			Pos:        pos,
		})
	}
	return chunks, nil
}

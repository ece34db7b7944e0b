package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/ragforge/docqa"
)

// DefaultSystemPrompt instructs the model to stay inside the provided
// context.
const DefaultSystemPrompt = "You are a helpful assistant. Answer the question using only the provided context. If the context does not contain the answer, say you don't know."

// Answerer renders retrieved chunks into a prompt and forwards it to a
// generation service.
type Answerer struct {
	generator docqa.Generator
	system    string
}

// AnswererOption configures an Answerer.
type AnswererOption func(*Answerer)

// WithSystemPrompt overrides the default system prompt.
func WithSystemPrompt(system string) AnswererOption {
	return func(a *Answerer) { a.system = system }
}

// NewAnswerer validates the generator collaborator.
func NewAnswerer(generator docqa.Generator, opts ...AnswererOption) (*Answerer, error) {
	if generator == nil {
		return nil, docqa.NewConfigurationError("generator", "must not be nil")
	}

	a := &Answerer{generator: generator, system: DefaultSystemPrompt}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// RenderPrompt builds the generation prompt from the retrieved chunks and
// the question. Chunks appear verbatim, numbered, in the order given.
func RenderPrompt(sources []docqa.ScoredChunk, question string) string {
	var b strings.Builder
	b.WriteString("Context:\n")
	for i, sc := range sources {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, sc.Chunk.Content)
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n\nAnswer:", question)
	return b.String()
}

// Answer generates a grounded answer from the retrieved chunks. The
// returned Answer carries the sources in retrieval order. A generation
// failure surfaces as ExternalServiceError without retrying.
func (a *Answerer) Answer(ctx context.Context, question string, sources []docqa.ScoredChunk) (docqa.Answer, error) {
	prompt := RenderPrompt(sources, question)

	text, err := a.generator.Generate(ctx, a.system, prompt)
	if err != nil {
		return docqa.Answer{}, docqa.WrapExternal("generator", "generate answer", err)
	}

	return docqa.Answer{Text: text, Sources: sources}, nil
}

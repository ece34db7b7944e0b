package llm

import (
	"context"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"

	"github.com/ragforge/docqa"
)

// LangChainEmbedder adapts a langchaingo embedder to the Embedder
// interface, so any provider langchaingo supports can back the pipeline.
type LangChainEmbedder struct {
	embedder embeddings.Embedder
}

// NewLangChainEmbedder wraps a langchaingo embedder.
func NewLangChainEmbedder(embedder embeddings.Embedder) *LangChainEmbedder {
	return &LangChainEmbedder{embedder: embedder}
}

// EmbedText embeds a single text through the underlying embedder.
func (l *LangChainEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	embedding, err := l.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, docqa.WrapExternal("langchain embedder", "embed query", err)
	}

	result := make([]float32, len(embedding))
	for i, val := range embedding {
		result[i] = float32(val)
	}
	return result, nil
}

// EmbedTexts embeds a batch of texts through the underlying embedder.
func (l *LangChainEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := l.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, docqa.WrapExternal("langchain embedder", "embed documents", err)
	}

	result := make([][]float32, len(vectors))
	for i, vec := range vectors {
		result[i] = make([]float32, len(vec))
		for j, val := range vec {
			result[i][j] = float32(val)
		}
	}
	return result, nil
}

// LangChainModel adapts a langchaingo model to the Generator interface.
type LangChainModel struct {
	model llms.Model
}

// NewLangChainModel wraps a langchaingo model.
func NewLangChainModel(model llms.Model) *LangChainModel {
	return &LangChainModel{model: model}
}

// Generate runs the prompt through the underlying model and returns the
// first choice.
func (l *LangChainModel) Generate(ctx context.Context, system, prompt string) (string, error) {
	var messages []llms.MessageContent
	if system != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	response, err := l.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", docqa.WrapExternal("langchain model", "generate content", err)
	}
	if len(response.Choices) == 0 {
		return "", docqa.WrapExternal("langchain model", "generate content", errNoChoices)
	}
	return response.Choices[0].Content, nil
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ragforge/docqa"
)

// Default OpenAI models.
const (
	DefaultChatModel      = openai.GPT4oMini
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)
)

// OpenAIClient implements both Embedder and Generator on the OpenAI API.
// Failures from the API (authentication, quota, timeouts) surface as
// ExternalServiceError; the client never retries.
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel string
}

// OpenAIOptions configures the client. An empty APIKey falls back to the
// OPENAI_API_KEY environment variable.
type OpenAIOptions struct {
	APIKey         string
	BaseURL        string
	ChatModel      string // Default "gpt-4o-mini"
	EmbeddingModel string // Default "text-embedding-3-small"
}

// NewOpenAIClient validates the options and builds the client.
func NewOpenAIClient(opts OpenAIOptions) (*OpenAIClient, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, docqa.NewConfigurationError("api key", "missing; set OPENAI_API_KEY or pass APIKey")
	}

	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	chatModel := opts.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	embeddingModel := opts.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}

	return &OpenAIClient{
		client:         openai.NewClientWithConfig(cfg),
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
	}, nil
}

// EmbedText embeds a single text.
func (c *OpenAIClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedTexts embeds a batch of texts in one API call, preserving input
// order.
func (c *OpenAIClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		return nil, docqa.WrapExternal("openai", "create embeddings", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, docqa.WrapExternal("openai", "create embeddings",
			&countMismatchError{want: len(texts), got: len(resp.Data)})
	}

	vectors := make([][]float32, len(resp.Data))
	for _, d := range resp.Data {
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

// Generate produces a chat completion for the prompt.
func (c *OpenAIClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.chatModel,
		Messages: messages,
	})
	if err != nil {
		return "", docqa.WrapExternal("openai", "chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", docqa.WrapExternal("openai", "chat completion", errNoChoices)
	}
	return resp.Choices[0].Message.Content, nil
}

var errNoChoices = errors.New("response contained no choices")

type countMismatchError struct {
	want, got int
}

func (e *countMismatchError) Error() string {
	return fmt.Sprintf("embedding count mismatch: sent %d texts, got %d vectors", e.want, e.got)
}

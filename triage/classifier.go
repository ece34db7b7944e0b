package triage

import (
	"context"
	"fmt"
	"strings"

	"github.com/ragforge/docqa"
)

// Ticket is an incoming support request.
type Ticket struct {
	ID      string
	Subject string
	Body    string
}

// Text renders the ticket for classification and response prompts.
func (t Ticket) Text() string {
	if t.Subject == "" {
		return t.Body
	}
	return fmt.Sprintf("Subject: %s\n\n%s", t.Subject, t.Body)
}

// Classifier assigns a category to a ticket. Implementations parse into
// the enum before returning; raw classifier strings never leave this
// boundary.
type Classifier interface {
	Classify(ctx context.Context, ticket Ticket) (Category, error)
}

const classifierSystemPrompt = "You are a support ticket classifier. Reply with exactly one token from the list of categories, nothing else."

// LLMClassifier classifies through a generation service by asking for a
// single category token.
type LLMClassifier struct {
	generator docqa.Generator
}

// NewLLMClassifier validates the generator collaborator.
func NewLLMClassifier(generator docqa.Generator) (*LLMClassifier, error) {
	if generator == nil {
		return nil, docqa.NewConfigurationError("generator", "must not be nil")
	}
	return &LLMClassifier{generator: generator}, nil
}

// Classify asks the model for a category token and parses it. An
// off-list reply degrades to CategoryUnknown rather than failing.
func (c *LLMClassifier) Classify(ctx context.Context, ticket Ticket) (Category, error) {
	tokens := make([]string, 0, len(Categories()))
	for _, cat := range Categories() {
		tokens = append(tokens, cat.String())
	}

	prompt := fmt.Sprintf("Categories: %s\n\nTicket:\n%s\n\nCategory:",
		strings.Join(tokens, ", "), ticket.Text())

	reply, err := c.generator.Generate(ctx, classifierSystemPrompt, prompt)
	if err != nil {
		return CategoryUnknown, docqa.WrapExternal("classifier", "classify ticket", err)
	}
	return ParseCategory(reply), nil
}

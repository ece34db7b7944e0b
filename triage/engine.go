package triage

import (
	"context"

	"github.com/ragforge/docqa"
	"github.com/ragforge/docqa/log"
)

// Resolution is the outcome of triaging one ticket.
type Resolution struct {
	Category Category
	Reply    string

	// Escalated is set when no category handler could serve the ticket
	// and a human needs to pick it up.
	Escalated bool
}

// Per-category responder instructions.
const (
	billingSystemPrompt   = "You are a billing support agent. Resolve invoice, charge and refund questions precisely. Quote amounts and dates when the ticket mentions them."
	technicalSystemPrompt = "You are a technical support engineer. Diagnose the reported issue step by step and give concrete instructions."
	accountSystemPrompt   = "You are an account support agent. Help with login, profile and access issues. Never ask for passwords."
	featureSystemPrompt   = "You are a product manager. Thank the customer for the suggestion, summarize it back, and explain how feature requests are tracked."
	generalSystemPrompt   = "You are a customer support agent. Answer the question helpfully and concisely."

	escalationReply = "This request could not be categorized automatically and has been escalated to a human agent."
)

// Engine classifies a ticket and routes it to the matching responder.
type Engine struct {
	classifier Classifier
	generator  docqa.Generator
	logger     log.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger overrides the package-level default logger.
func WithLogger(logger log.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine validates the collaborators.
func NewEngine(classifier Classifier, generator docqa.Generator, opts ...EngineOption) (*Engine, error) {
	if classifier == nil {
		return nil, docqa.NewConfigurationError("classifier", "must not be nil")
	}
	if generator == nil {
		return nil, docqa.NewConfigurationError("generator", "must not be nil")
	}

	e := &Engine{
		classifier: classifier,
		generator:  generator,
		logger:     log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Triage classifies the ticket and produces a category-appropriate reply.
// Unknown tickets escalate instead of generating a response.
func (e *Engine) Triage(ctx context.Context, ticket Ticket) (Resolution, error) {
	category, err := e.classifier.Classify(ctx, ticket)
	if err != nil {
		return Resolution{}, err
	}
	e.logger.Debug("ticket %s classified as %s", ticket.ID, category)

	var system string
	switch category {
	case CategoryBilling:
		system = billingSystemPrompt
	case CategoryTechnical:
		system = technicalSystemPrompt
	case CategoryAccount:
		system = accountSystemPrompt
	case CategoryFeatureRequest:
		system = featureSystemPrompt
	case CategoryGeneral:
		system = generalSystemPrompt
	case CategoryUnknown:
		e.logger.Warn("ticket %s escalated: no matching category", ticket.ID)
		return Resolution{Category: CategoryUnknown, Reply: escalationReply, Escalated: true}, nil
	default:
		// Unreachable while the enum stays closed; treat like Unknown.
		return Resolution{Category: category, Reply: escalationReply, Escalated: true}, nil
	}

	reply, err := e.generator.Generate(ctx, system, ticket.Text())
	if err != nil {
		return Resolution{}, docqa.WrapExternal("responder", "generate reply", err)
	}
	return Resolution{Category: category, Reply: reply}, nil
}

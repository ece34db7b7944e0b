package review

import (
	"context"
	"fmt"

	"github.com/ragforge/docqa"
)

// Submission is the code under review.
type Submission struct {
	Title       string
	Description string
	Code        string
}

func (s Submission) prompt() string {
	return fmt.Sprintf("Title: %s\n\nDescription: %s\n\nCode:\n%s", s.Title, s.Description, s.Code)
}

// Reviewer examines a submission and reports findings as text.
type Reviewer interface {
	Name() string
	Review(ctx context.Context, sub Submission) (string, error)
}

// LLMReviewer reviews through a generation service with a role-specific
// instruction.
type LLMReviewer struct {
	name      string
	system    string
	generator docqa.Generator
}

// NewLLMReviewer builds a reviewer with the given role name and
// instructions.
func NewLLMReviewer(name, system string, generator docqa.Generator) (*LLMReviewer, error) {
	if name == "" {
		return nil, docqa.NewConfigurationError("name", "must not be empty")
	}
	if generator == nil {
		return nil, docqa.NewConfigurationError("generator", "must not be nil")
	}
	return &LLMReviewer{name: name, system: system, generator: generator}, nil
}

// Name returns the reviewer's role name.
func (r *LLMReviewer) Name() string { return r.name }

// Review runs the submission through the model under this reviewer's
// instructions.
func (r *LLMReviewer) Review(ctx context.Context, sub Submission) (string, error) {
	findings, err := r.generator.Generate(ctx, r.system, sub.prompt())
	if err != nil {
		return "", docqa.WrapExternal("reviewer "+r.name, "review submission", err)
	}
	return findings, nil
}

// Role instructions for the standard panel.
const (
	analyzerSystemPrompt  = "You are a code analyzer. Report correctness issues: bugs, unhandled errors, off-by-one mistakes and misused APIs. Be specific and cite the code."
	architectSystemPrompt = "You are a software architect. Review structure: coupling, interface boundaries, naming and package layout. Suggest concrete restructurings."
	securitySystemPrompt  = "You are a security reviewer. Look for injection, unsafe input handling, secret leakage and missing validation. Flag each finding with its risk."
)

// StandardPanel builds the analyzer, architect and security reviewers, in
// that order.
func StandardPanel(generator docqa.Generator) ([]Reviewer, error) {
	analyzer, err := NewLLMReviewer("analyzer", analyzerSystemPrompt, generator)
	if err != nil {
		return nil, err
	}
	architect, err := NewLLMReviewer("architect", architectSystemPrompt, generator)
	if err != nil {
		return nil, err
	}
	security, err := NewLLMReviewer("security", securitySystemPrompt, generator)
	if err != nil {
		return nil, err
	}
	return []Reviewer{analyzer, architect, security}, nil
}

package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/ragforge/docqa"
	"github.com/ragforge/docqa/log"
)

// Finding is one reviewer's output.
type Finding struct {
	Reviewer string
	Content  string
}

// Report is the merged outcome of a board run. Findings appear in board
// declaration order.
type Report struct {
	Findings []Finding
	Summary  string
}

const synthesisSystemPrompt = "You are a review coordinator. Merge the reviewers' findings into a short, prioritized summary. Keep disagreements visible."

// Board runs reviewers sequentially and synthesizes a report.
type Board struct {
	reviewers []Reviewer
	generator docqa.Generator
	logger    log.Logger
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithLogger overrides the package-level default logger.
func WithLogger(logger log.Logger) BoardOption {
	return func(b *Board) { b.logger = logger }
}

// NewBoard declares the panel. Reviewer order is report order.
func NewBoard(generator docqa.Generator, reviewers []Reviewer, opts ...BoardOption) (*Board, error) {
	if generator == nil {
		return nil, docqa.NewConfigurationError("generator", "must not be nil")
	}
	if len(reviewers) == 0 {
		return nil, docqa.NewConfigurationError("reviewers", "must not be empty")
	}
	for _, r := range reviewers {
		if r == nil {
			return nil, docqa.NewConfigurationError("reviewers", "must not contain nil")
		}
	}

	b := &Board{
		reviewers: reviewers,
		generator: generator,
		logger:    log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// NewStandardBoard declares the analyzer/architect/security panel.
func NewStandardBoard(generator docqa.Generator, opts ...BoardOption) (*Board, error) {
	panel, err := StandardPanel(generator)
	if err != nil {
		return nil, err
	}
	return NewBoard(generator, panel, opts...)
}

// Review runs every reviewer in declaration order, appending findings as
// each one finishes, then synthesizes the summary. A reviewer failure
// aborts the run; there is no partial report.
func (b *Board) Review(ctx context.Context, sub Submission) (Report, error) {
	report := Report{Findings: make([]Finding, 0, len(b.reviewers))}

	for _, reviewer := range b.reviewers {
		b.logger.Debug("running reviewer %s", reviewer.Name())
		content, err := reviewer.Review(ctx, sub)
		if err != nil {
			return Report{}, fmt.Errorf("reviewer %s failed: %w", reviewer.Name(), err)
		}
		report.Findings = append(report.Findings, Finding{
			Reviewer: reviewer.Name(),
			Content:  content,
		})
	}

	summary, err := b.synthesize(ctx, sub, report.Findings)
	if err != nil {
		return Report{}, err
	}
	report.Summary = summary
	return report, nil
}

func (b *Board) synthesize(ctx context.Context, sub Submission, findings []Finding) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Submission: %s\n\nFindings:\n", sub.Title)
	for _, f := range findings {
		fmt.Fprintf(&sb, "--- %s ---\n%s\n", f.Reviewer, f.Content)
	}
	sb.WriteString("\nSummary:")

	summary, err := b.generator.Generate(ctx, synthesisSystemPrompt, sb.String())
	if err != nil {
		return "", docqa.WrapExternal("coordinator", "synthesize report", err)
	}
	return summary, nil
}

package loader

import (
	"context"
	"fmt"
	"html"
	"os"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ragforge/docqa"
)

// Markdown loads markdown files and strips the formatting, so headings,
// lists and emphasis become plain text the chunker can window over.
type Markdown struct {
	paths  []string
	policy *bluemonday.Policy
}

// NewMarkdown creates a loader over the given markdown file paths.
func NewMarkdown(paths ...string) *Markdown {
	return &Markdown{
		paths:  paths,
		policy: bluemonday.StrictPolicy(),
	}
}

// Load renders each file to HTML and strips the tags. The file path
// becomes the document ID.
func (l *Markdown) Load(ctx context.Context) ([]docqa.Document, error) {
	documents := make([]docqa.Document, 0, len(l.paths))
	for _, path := range l.paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		documents = append(documents, docqa.Document{
			ID:       path,
			Content:  l.strip(content),
			Metadata: map[string]string{"source": path, "type": "markdown"},
		})
	}
	return documents, nil
}

// StripText converts markdown source to plain text.
func (l *Markdown) StripText(source string) string {
	return l.strip([]byte(source))
}

func (l *Markdown) strip(source []byte) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{})
	rendered := markdown.ToHTML(source, p, renderer)

	stripped := l.policy.Sanitize(string(rendered))
	return html.UnescapeString(collapseWhitespace(stripped))
}

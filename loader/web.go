package loader

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ragforge/docqa"
)

// Web fetches pages over HTTP and extracts their visible text. Script and
// style elements are dropped and the remainder is sanitized down to plain
// text before it becomes a document.
type Web struct {
	urls   []string
	client *http.Client
	policy *bluemonday.Policy
}

// WebOption configures the Web loader.
type WebOption func(*Web)

// WithHTTPClient overrides the HTTP client, e.g. to set timeouts or a
// proxy.
func WithHTTPClient(client *http.Client) WebOption {
	return func(l *Web) { l.client = client }
}

// NewWeb creates a loader over the given URLs.
func NewWeb(urls []string, opts ...WebOption) *Web {
	l := &Web{
		urls:   urls,
		client: &http.Client{Timeout: 30 * time.Second},
		policy: bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches every URL and yields one document per page. The URL is the
// document ID; the page title, when present, lands in metadata.
func (l *Web) Load(ctx context.Context) ([]docqa.Document, error) {
	documents := make([]docqa.Document, 0, len(l.urls))
	for _, url := range l.urls {
		doc, err := l.loadOne(ctx, url)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}
	return documents, nil
}

func (l *Web) loadOne(ctx context.Context, url string) (docqa.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return docqa.Document{}, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return docqa.Document{}, docqa.WrapExternal("web", "fetch "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return docqa.Document{}, docqa.WrapExternal("web", "fetch "+url,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	page, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return docqa.Document{}, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	page.Find("script, style, noscript").Remove()

	title := strings.TrimSpace(page.Find("title").First().Text())
	body := page.Find("body").Text()
	text := collapseWhitespace(l.policy.Sanitize(body))

	return docqa.Document{
		ID:      url,
		Content: text,
		Metadata: map[string]string{
			"source": url,
			"type":   "web",
			"title":  title,
		},
	}, nil
}

func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

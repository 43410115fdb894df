// Package content extracts full article text ahead of summarization, so the
// LLM sees more than the provider's one-line description.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// Extractor retrieves and extracts article text from URLs using trafilatura
type Extractor struct {
	client        *http.Client
	userAgent     string
	minTextLength int
}

// NewExtractor creates a content extractor
func NewExtractor(timeout time.Duration, userAgent string, minTextLength int) *Extractor {
	return &Extractor{
		client:        &http.Client{Timeout: timeout},
		userAgent:     userAgent,
		minTextLength: minTextLength,
	}
}

// Extract retrieves the page and returns its main text content. Content
// shorter than the configured minimum is treated as a failed extraction, the
// caller keeps the provider description in that case.
func (e *Extractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return "", fmt.Errorf("no content extracted from %s", urlStr)
	}

	text := strings.TrimSpace(result.ContentText)
	if len(text) < e.minTextLength {
		return "", fmt.Errorf("extracted text too short (%d chars) from %s", len(text), urlStr)
	}

	return text, nil
}

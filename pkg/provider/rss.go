package provider

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSProvider serves articles from configured per-category feeds. Feeds are
// not region-aware, the provider acts as a category-level fallback when the
// headline search yields nothing.
type RSSProvider struct {
	feeds   map[string][]string
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewRSSProvider creates an RSS provider over a category -> feed URLs map
func NewRSSProvider(feeds map[string][]string, timeout time.Duration) *RSSProvider {
	return &RSSProvider{
		feeds:   feeds,
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

// Name returns the provider name for logging
func (p *RSSProvider) Name() string { return "rss" }

// Fetch parses the category's feeds in order and returns the first feed's
// items, up to count
func (p *RSSProvider) Fetch(ctx context.Context, region, category string, count int) ([]RawArticle, error) {
	urls := p.feeds[category]
	if len(urls) == 0 {
		return nil, nil
	}

	for _, feedURL := range urls {
		articles, err := p.parseFeed(ctx, feedURL, count)
		if err != nil {
			log.Printf("[WARN] rss feed %s failed for %s/%s: %v", feedURL, region, category, err)
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}
	return nil, nil
}

// parseFeed fetches and converts a single feed
func (p *RSSProvider) parseFeed(ctx context.Context, feedURL string, count int) ([]RawArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	articles := make([]RawArticle, 0, count)
	for _, item := range feed.Items {
		if len(articles) >= count {
			break
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}

		raw := RawArticle{
			Title:       item.Title,
			Description: desc,
			Link:        item.Link,
		}
		if item.Image != nil {
			raw.ImageURL = item.Image.URL
		} else if len(item.Enclosures) > 0 {
			raw.ImageURL = item.Enclosures[0].URL
		}

		articles = append(articles, raw)
	}
	return articles, nil
}

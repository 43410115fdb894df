package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"
)

// Simulated generates deterministic placeholder articles when every real
// upstream is exhausted. Its output is always tagged simulated so the merge
// policy never lets it evict real content.
type Simulated struct {
	regionNames map[string]string
}

// NewSimulated creates the fallback generator, regionNames maps region keys
// to display names used in the generated text
func NewSimulated(regionNames map[string]string) *Simulated {
	return &Simulated{regionNames: regionNames}
}

// Name returns the provider name for logging
func (s *Simulated) Name() string { return "simulated" }

// Fetch produces count placeholder articles for the pair. It never fails.
func (s *Simulated) Fetch(_ context.Context, region, category string, count int) ([]RawArticle, error) {
	regionName := s.regionNames[region]
	if regionName == "" {
		regionName = region
	}
	catText := strings.ReplaceAll(category, "_", " ")
	catTitle := titleCase(catText)

	articles := make([]RawArticle, 0, count)
	for i := 1; i <= count; i++ {
		articles = append(articles, RawArticle{
			Title: fmt.Sprintf("%s Update %d for %s", catTitle, i, regionName),
			Description: fmt.Sprintf("This is a simulated summary of %s related to %s, article number %d. "+
				"It highlights key developments and insights.", catText, regionName, i),
			Link:      fmt.Sprintf("https://example.com/%s/%s/%d", region, category, i),
			ImageURL:  PlaceholderImage(category, fmt.Sprintf("%s/%s/%d", region, category, i)),
			Simulated: true,
		})
	}
	return articles, nil
}

// PlaceholderImage builds a deterministic placeholder image URL encoding the
// category and article identity, colors derive from a hash of the identity
func PlaceholderImage(category, identity string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(category + "|" + identity))
	sum := h.Sum32()
	bg := sum & 0xffffff
	fg := ^sum & 0xffffff
	text := titleCase(strings.ReplaceAll(category, "_", " "))
	return fmt.Sprintf("https://placehold.co/600x400/%06X/%06X?text=%s", bg, fg, url.QueryEscape(text))
}

// titleCase capitalizes each space-separated word, good enough for category keys
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

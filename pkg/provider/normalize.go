package provider

import (
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newsgrid/pkg/domain"
)

// sanitizer strips all markup from provider descriptions
var sanitizer = bluemonday.StrictPolicy()

// Normalize converts a raw provider record into the canonical article shape.
// Records missing title, body or link are rejected. Articles from real
// upstreams start untrusted, enrichment upgrades them.
func Normalize(raw RawArticle) (domain.Article, bool) {
	title := strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(raw.Title)))
	content := strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(raw.Description)))
	link := strings.TrimSpace(raw.Link)

	if title == "" || content == "" || link == "" {
		return domain.Article{}, false
	}

	trust := domain.TrustEnrichment
	if raw.Simulated {
		trust = domain.TrustFallback
	}

	return domain.Article{
		Title:    title,
		Content:  content,
		Link:     link,
		ImageURL: absoluteURL(raw.ImageURL),
		Trust:    trust,
	}, true
}

// NormalizeAll normalizes a batch, silently dropping rejected records
func NormalizeAll(raws []RawArticle) []domain.Article {
	articles := make([]domain.Article, 0, len(raws))
	for _, raw := range raws {
		if a, ok := Normalize(raw); ok {
			articles = append(articles, a)
		}
	}
	return articles
}

// absoluteURL returns the input when it is a syntactically valid absolute
// http(s) URL, empty string otherwise. Raw embedded images are never kept.
func absoluteURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return s
}

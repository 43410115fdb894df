package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HeadlinesClient fetches top headlines from a NewsAPI-compatible endpoint,
// iterating over the region's configured country filters until one yields
// articles.
type HeadlinesClient struct {
	endpoint  string
	apiKey    string
	countries map[string][]string
	client    *http.Client
}

// NewHeadlinesClient creates a headline search provider. An empty apiKey is
// allowed, the provider then degrades to empty results.
func NewHeadlinesClient(endpoint, apiKey string, countries map[string][]string, timeout time.Duration) *HeadlinesClient {
	return &HeadlinesClient{
		endpoint:  endpoint,
		apiKey:    apiKey,
		countries: countries,
		client:    &http.Client{Timeout: timeout},
	}
}

// Name returns the provider name for logging
func (c *HeadlinesClient) Name() string { return "headlines" }

// categoryParams maps our category keys onto the upstream's fixed category
// set, anything unmapped is sent as a keyword query instead
var categoryParams = map[string]string{
	"news":       "general",
	"world":      "general",
	"technology": "technology",
	"finance":    "business",
	"weather":    "science",
}

// Fetch queries the headlines API for the region's countries in order and
// returns the first non-empty result
func (c *HeadlinesClient) Fetch(ctx context.Context, region, category string, count int) ([]RawArticle, error) {
	if c.apiKey == "" {
		log.Printf("[DEBUG] headlines api key not set, skipping")
		return nil, nil
	}

	countries := c.countries[region]
	if len(countries) == 0 {
		countries = []string{""} // single query without a country filter
	}

	for _, country := range countries {
		articles, err := c.query(ctx, country, category, count)
		if err != nil {
			log.Printf("[WARN] headlines query failed for %s/%s country %q: %v", region, category, country, err)
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}
	return nil, nil
}

// query performs a single top-headlines request
func (c *HeadlinesClient) query(ctx context.Context, country, category string, count int) ([]RawArticle, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(count))
	if country != "" {
		q.Set("country", country)
	}
	if mapped, ok := categoryParams[category]; ok {
		q.Set("category", mapped)
	} else {
		q.Set("q", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("headlines fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var raw headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("headlines decode: %w", err)
	}

	articles := make([]RawArticle, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, RawArticle{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.URL,
			ImageURL:    item.URLToImage,
		})
	}
	return articles, nil
}

type headlinesResponse struct {
	Status   string             `json:"status"`
	Articles []headlinesArticle `json:"articles"`
}

type headlinesArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
}

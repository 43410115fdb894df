// Package provider implements the upstream content sources and the fallback
// chain that tries them in priority order for each (region, category) pair.
package provider

import (
	"context"
	"log"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/pacer.go -pkg mocks -skip-ensure -fmt goimports . Pacer

// RawArticle is a provider record before normalization
type RawArticle struct {
	Title       string
	Description string
	Link        string
	ImageURL    string
	Simulated   bool // set by the fallback generator, never by real upstreams
}

// Provider fetches raw articles for a (region, category) pair. An empty
// result without error is a valid outcome.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, region, category string, count int) ([]RawArticle, error)
}

// Pacer gates external calls to keep the aggregate request rate under
// upstream limits
type Pacer interface {
	Wait(ctx context.Context) error
}

// Chain tries providers in priority order and short-circuits on the first
// non-empty result. Provider errors are logged and treated as "no result
// from this attempt", the next scheduled invocation is the retry.
type Chain struct {
	providers []Provider
	pacer     Pacer
}

// NewChain creates a chain over the given providers, highest priority first
func NewChain(pacer Pacer, providers ...Provider) *Chain {
	return &Chain{providers: providers, pacer: pacer}
}

// Fetch returns the first provider's non-empty result, or an empty list when
// every provider comes back empty or failing
func (c *Chain) Fetch(ctx context.Context, region, category string, count int) []RawArticle {
	for _, p := range c.providers {
		if err := c.pacer.Wait(ctx); err != nil {
			log.Printf("[WARN] pacing interrupted for %s/%s: %v", region, category, err)
			return nil
		}

		articles, err := p.Fetch(ctx, region, category, count)
		if err != nil {
			log.Printf("[WARN] provider %s failed for %s/%s: %v", p.Name(), region, category, err)
			continue
		}
		if len(articles) == 0 {
			log.Printf("[DEBUG] provider %s returned nothing for %s/%s", p.Name(), region, category)
			continue
		}
		log.Printf("[DEBUG] provider %s returned %d articles for %s/%s", p.Name(), len(articles), region, category)
		return articles
	}
	return nil
}

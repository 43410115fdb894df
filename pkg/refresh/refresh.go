// Package refresh runs one scheduled pass over the current window of the
// region x category work matrix: fetch, normalize, enrich, merge, publish.
package refresh

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/newsgrid/pkg/archive"
	"github.com/umputun/newsgrid/pkg/config"
	"github.com/umputun/newsgrid/pkg/domain"
	"github.com/umputun/newsgrid/pkg/llm"
	"github.com/umputun/newsgrid/pkg/provider"
	"github.com/umputun/newsgrid/pkg/schedule"
	"github.com/umputun/newsgrid/pkg/store"
)

//go:generate moq --out mocks/fetcher.go --pkg mocks --with-resets --skip-ensure . Fetcher
//go:generate moq --out mocks/summarizer.go --pkg mocks --with-resets --skip-ensure . Summarizer
//go:generate moq --out mocks/extractor.go --pkg mocks --with-resets --skip-ensure . Extractor
//go:generate moq --out mocks/recorder.go --pkg mocks --with-resets --skip-ensure . Recorder

// Fetcher retrieves raw articles for one work item, normally the provider chain
type Fetcher interface {
	Fetch(ctx context.Context, region, category string, count int) []provider.RawArticle
}

// Summarizer turns article text into a display summary, total function
type Summarizer interface {
	Summarize(ctx context.Context, req llm.Request) llm.Result
}

// Extractor pulls full article text from the source page
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (string, error)
}

// Recorder appends run history to the archive
type Recorder interface {
	RecordRun(ctx context.Context, run archive.Run, processed map[domain.WorkItem][]domain.Article) error
}

// Service orchestrates one refresh pass. Extractor and Recorder are optional,
// nil disables the corresponding stage.
type Service struct {
	Fetcher    Fetcher
	Summarizer Summarizer
	Extractor  Extractor
	Recorder   Recorder
	Pacer      provider.Pacer
	Config     *config.Config
	Now        func() time.Time
}

// Run executes one refresh pass for the window containing Now(). It loads the
// published document, processes every work item in the window, merges results
// and writes the document back atomically. Per-item failures are logged and
// leave that item's bucket untouched, only a failed final write is an error.
func (s *Service) Run(ctx context.Context) error {
	now := s.now()
	items := schedule.Matrix(s.Config.Regions, s.Config.Categories)

	batchSize := s.Config.Refresh.BatchSize
	if batchSize == 0 {
		batchSize = schedule.BatchSize(len(items), s.Config.Refresh.WindowsPerDay)
	}
	start, end := schedule.Window(now, s.Config.Refresh.WindowsPerDay, batchSize, len(items))
	windowIdx := schedule.Index(now, s.Config.Refresh.WindowsPerDay)
	log.Printf("[INFO] refresh window %d: items %d..%d of %d", windowIdx, start, end, len(items))

	doc := store.Load(s.Config.Refresh.OutputFile)

	processed := make(map[domain.WorkItem][]domain.Article)
	failures := 0
	for _, item := range items[start:end] {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("refresh interrupted: %w", err)
		}

		articles, failed := s.processItem(ctx, item)
		failures += failed
		if len(articles) == 0 {
			log.Printf("[INFO] no articles for %s, bucket untouched", item)
			continue
		}

		merged := store.Merge(doc.Bucket(item), articles, s.Config.Refresh.MaxPerCategory)
		doc.SetBucket(item, merged)
		processed[item] = articles
		log.Printf("[INFO] %s: %d fresh, %d retained", item, len(articles), len(merged))
	}

	doc.LastUpdatedUTC = s.now().UTC()
	saveErr := store.Save(s.Config.Refresh.OutputFile, doc)
	if saveErr != nil {
		log.Printf("[ERROR] failed to publish document: %v", saveErr)
	}

	if s.Recorder != nil {
		run := archive.Run{StartedAt: now, WindowIndex: windowIdx, Items: end - start, Failures: failures}
		if err := s.Recorder.RecordRun(ctx, run, processed); err != nil {
			log.Printf("[WARN] archive record failed: %v", err)
		}
	}

	total, trusted := doc.Count()
	log.Printf("[INFO] refresh done: %d items, %d summarization failures, document holds %d articles (%d trusted)",
		end-start, failures, total, trusted)

	if saveErr != nil {
		return fmt.Errorf("publish document: %w", saveErr)
	}
	return nil
}

// processItem fetches, normalizes and enriches the articles for one work
// item. It never fails, a broken item just yields fewer (or zero) articles.
func (s *Service) processItem(ctx context.Context, item domain.WorkItem) (articles []domain.Article, failures int) {
	raws := s.Fetcher.Fetch(ctx, item.Region, item.Category, s.Config.Refresh.ArticlesPerItem)

	normalized := provider.NormalizeAll(raws)
	if dropped := len(raws) - len(normalized); dropped > 0 {
		log.Printf("[DEBUG] dropped %d unusable articles for %s", dropped, item)
	}

	for _, article := range normalized {
		// generated filler carries no source page, nothing to enrich
		if article.Trust == domain.TrustFallback {
			articles = append(articles, article)
			continue
		}

		enriched, failed := s.enrich(ctx, item, article)
		if failed {
			failures++
		}
		articles = append(articles, enriched)
	}
	return articles, failures
}

// enrich replaces the article body with full extracted text when available
// and summarizes it. A successful summary upgrades the article to trusted,
// a failed one keeps the normalized description.
func (s *Service) enrich(ctx context.Context, item domain.WorkItem, article domain.Article) (domain.Article, bool) {
	content := article.Content
	if s.Extractor != nil {
		if err := s.Pacer.Wait(ctx); err != nil {
			return withResolvedImage(item, article), true
		}
		text, err := s.Extractor.Extract(ctx, article.Link)
		if err != nil {
			log.Printf("[DEBUG] extraction failed for %s: %v", article.Link, err)
		} else {
			content = text
		}
	}

	if err := s.Pacer.Wait(ctx); err != nil {
		return withResolvedImage(item, article), true
	}
	res := s.Summarizer.Summarize(ctx, llm.Request{
		Title:     article.Title,
		Content:   content,
		Category:  item.Category,
		Link:      article.Link,
		ImageHint: article.ImageURL,
	})

	article.ImageURL = res.ImageURL
	if res.Failed {
		// keep the normalized description, the extracted text is too long to display
		article.Trust = domain.TrustEnrichment
		return article, true
	}
	article.Content = res.Summary
	article.Trust = domain.TrustReal
	return article, false
}

// withResolvedImage backfills the deterministic placeholder when the source
// supplied no usable image, every published article must carry one
func withResolvedImage(item domain.WorkItem, article domain.Article) domain.Article {
	if article.ImageURL == "" {
		article.ImageURL = provider.PlaceholderImage(item.Category, article.Link)
	}
	return article
}

// now returns the injected clock or wall time
func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

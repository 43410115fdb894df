// Package store owns the persisted region->category->articles document and
// the merge policy that folds freshly processed batches into it.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/umputun/newsgrid/pkg/domain"
)

// lastUpdatedKey is the sibling timestamp field in the persisted document,
// the front end treats every other top-level key as a region
const lastUpdatedKey = "last_updated_utc"

// Document is the full persisted state, one bucket of articles per
// (region, category) pair
type Document struct {
	Regions        map[string]map[string][]domain.Article
	LastUpdatedUTC time.Time
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{Regions: map[string]map[string][]domain.Article{}}
}

// Bucket returns the articles for a (region, category) pair, nil when absent
func (d *Document) Bucket(item domain.WorkItem) []domain.Article {
	return d.Regions[item.Region][item.Category]
}

// SetBucket replaces the articles for a (region, category) pair
func (d *Document) SetBucket(item domain.WorkItem, articles []domain.Article) {
	if d.Regions == nil {
		d.Regions = map[string]map[string][]domain.Article{}
	}
	if d.Regions[item.Region] == nil {
		d.Regions[item.Region] = map[string][]domain.Article{}
	}
	d.Regions[item.Region][item.Category] = articles
}

// Count returns total and trusted article counts across all buckets
func (d *Document) Count() (total, trusted int) {
	for _, categories := range d.Regions {
		for _, articles := range categories {
			total += len(articles)
			for _, a := range articles {
				if !a.Trust.Simulated() {
					trusted++
				}
			}
		}
	}
	return total, trusted
}

// MarshalJSON writes region keys at the top level with the sibling
// last_updated_utc timestamp, the shape the front end consumes
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Regions)+1)
	for region, categories := range d.Regions {
		out[region] = categories
	}
	if !d.LastUpdatedUTC.IsZero() {
		out[lastUpdatedKey] = d.LastUpdatedUTC.UTC().Format(time.RFC3339)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the front-end document shape
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Regions = make(map[string]map[string][]domain.Article, len(raw))
	for key, val := range raw {
		if key == lastUpdatedKey {
			var ts string
			if err := json.Unmarshal(val, &ts); err != nil {
				return fmt.Errorf("parse %s: %w", lastUpdatedKey, err)
			}
			parsed, err := time.Parse(time.RFC3339, ts)
			if err != nil {
				return fmt.Errorf("parse %s value %q: %w", lastUpdatedKey, ts, err)
			}
			d.LastUpdatedUTC = parsed
			continue
		}

		var categories map[string][]domain.Article
		if err := json.Unmarshal(val, &categories); err != nil {
			return fmt.Errorf("parse region %q: %w", key, err)
		}
		d.Regions[key] = categories
	}
	return nil
}

// Load reads the document from path. A missing, unreadable or corrupt file
// yields an empty document, the prior on-disk state is simply not usable and
// the run starts fresh.
func Load(path string) *Document {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[INFO] no prior document at %s, starting empty", path)
		} else {
			log.Printf("[WARN] cannot read prior document %s: %v, starting empty", path, err)
		}
		return NewDocument()
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		log.Printf("[WARN] corrupt prior document %s: %v, starting empty", path, err)
		return NewDocument()
	}
	doc.prune()
	return doc
}

// prune drops loaded entries missing required fields, partial legacy records
// are not worth republishing
func (d *Document) prune() {
	for region, categories := range d.Regions {
		for category, articles := range categories {
			kept := articles[:0]
			for _, a := range articles {
				if a.Valid() {
					kept = append(kept, a)
				}
			}
			d.Regions[region][category] = kept
		}
	}
}

// Save writes the document atomically, a temp file in the target directory
// renamed over the destination so readers never observe a partial write
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".updates-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

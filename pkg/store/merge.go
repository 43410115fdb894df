package store

import "github.com/umputun/newsgrid/pkg/domain"

// Merge folds a freshly processed batch into the existing bucket:
//
//  1. a batch with at least one trusted article evicts every untrusted
//     article from the existing bucket before prepending
//  2. an all-untrusted batch prepends ahead of the entire existing bucket,
//     new low-trust content never evicts old trusted content
//  3. articles already present by link are replaced by the fresh version
//  4. the result is truncated to max, keeping the front
//
// An empty batch leaves the bucket untouched.
func Merge(existing, fresh []domain.Article, max int) []domain.Article {
	if len(fresh) == 0 {
		return existing
	}

	trustworthyBatch := false
	seen := make(map[string]struct{}, len(fresh))
	for _, a := range fresh {
		seen[a.Link] = struct{}{}
		if !a.Trust.Simulated() {
			trustworthyBatch = true
		}
	}

	kept := make([]domain.Article, 0, len(existing))
	for _, a := range existing {
		if _, dup := seen[a.Link]; dup {
			continue // refetched article, the fresh version wins
		}
		if trustworthyBatch && a.Trust.Simulated() {
			continue
		}
		kept = append(kept, a)
	}

	merged := make([]domain.Article, 0, len(fresh)+len(kept))
	merged = append(merged, fresh...)
	merged = append(merged, kept...)

	if len(merged) > max {
		merged = merged[:max]
	}
	return merged
}

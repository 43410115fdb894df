package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgrid/pkg/domain"
)

func real(title, link string) domain.Article {
	return domain.Article{Title: title, Content: "c", Link: link, ImageURL: "i", Trust: domain.TrustReal}
}

func simulated(title, link string) domain.Article {
	return domain.Article{Title: title, Content: "c", Link: link, ImageURL: "i", Trust: domain.TrustFallback}
}

func TestMerge_TrustworthyBatchEvictsUntrusted(t *testing.T) {
	existing := []domain.Article{simulated("old sim", "https://example.com/sim")}
	fresh := []domain.Article{real("new real", "https://example.com/real")}

	got := Merge(existing, fresh, 30)

	require.Len(t, got, 1)
	assert.Equal(t, "new real", got[0].Title)
	for _, a := range got {
		assert.False(t, a.Trust.Simulated(), "no untrusted survivors after a trustworthy batch")
	}
}

func TestMerge_TrustworthyBatchKeepsTrustedExisting(t *testing.T) {
	existing := []domain.Article{
		real("old real", "https://example.com/old"),
		simulated("old sim", "https://example.com/sim"),
	}
	fresh := []domain.Article{real("new real", "https://example.com/new")}

	got := Merge(existing, fresh, 30)

	require.Len(t, got, 2)
	assert.Equal(t, "new real", got[0].Title, "fresh batch prepends")
	assert.Equal(t, "old real", got[1].Title)
}

func TestMerge_UntrustedBatchNeverEvicts(t *testing.T) {
	existing := []domain.Article{real("A", "https://example.com/a")}
	fresh := []domain.Article{simulated("B", "https://example.com/b")}

	got := Merge(existing, fresh, 30)

	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Title)
	assert.Equal(t, "A", got[1].Title)

	trustedBefore, trustedAfter := 1, 0
	for _, a := range got {
		if !a.Trust.Simulated() {
			trustedAfter++
		}
	}
	assert.Equal(t, trustedBefore, trustedAfter, "trusted count unchanged by an untrusted batch")
}

func TestMerge_UntrustedBatchKeepsUntrustedExisting(t *testing.T) {
	existing := []domain.Article{
		simulated("old sim", "https://example.com/old"),
		real("old real", "https://example.com/real"),
	}
	fresh := []domain.Article{simulated("new sim", "https://example.com/new")}

	got := Merge(existing, fresh, 30)
	require.Len(t, got, 3, "untrusted batch retains the entire existing bucket")
	assert.Equal(t, "new sim", got[0].Title)
	assert.Equal(t, "old sim", got[1].Title)
	assert.Equal(t, "old real", got[2].Title)
}

func TestMerge_Truncation(t *testing.T) {
	var existing, fresh []domain.Article
	for i := 0; i < 25; i++ {
		existing = append(existing, real("old", "https://example.com/old/"+string(rune('a'+i))))
	}
	for i := 0; i < 10; i++ {
		fresh = append(fresh, real("new", "https://example.com/new/"+string(rune('a'+i))))
	}

	got := Merge(existing, fresh, 30)
	assert.Len(t, got, 30, "bucket never exceeds the retention cap")
	assert.Equal(t, "new", got[0].Title, "front of the bucket is the most recent")
	assert.Equal(t, "old", got[29].Title)
}

func TestMerge_DedupeByLink(t *testing.T) {
	existing := []domain.Article{
		{Title: "stale enrichment", Content: "old", Link: "https://example.com/x", ImageURL: "i", Trust: domain.TrustEnrichment},
		real("keeper", "https://example.com/y"),
	}
	fresh := []domain.Article{real("refreshed", "https://example.com/x")}

	got := Merge(existing, fresh, 30)

	require.Len(t, got, 2)
	assert.Equal(t, "refreshed", got[0].Title, "refetched link replaced by the fresh version")
	assert.Equal(t, "keeper", got[1].Title)
}

func TestMerge_EmptyBatchLeavesBucketUntouched(t *testing.T) {
	existing := []domain.Article{real("A", "https://example.com/a")}
	got := Merge(existing, nil, 30)
	assert.Equal(t, existing, got)
}

func TestMerge_EmptyExisting(t *testing.T) {
	fresh := []domain.Article{simulated("B", "https://example.com/b")}
	got := Merge(nil, fresh, 30)
	assert.Equal(t, fresh, got)
}

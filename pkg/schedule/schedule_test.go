package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgrid/pkg/config"
)

func TestMatrix(t *testing.T) {
	regions := []config.Region{{Key: "europe", Name: "Europe"}, {Key: "asia", Name: "Asia"}}
	categories := []string{"news", "technology"}

	items := Matrix(regions, categories)
	require.Len(t, items, 4)
	assert.Equal(t, "europe", items[0].Region)
	assert.Equal(t, "news", items[0].Category)
	assert.Equal(t, "europe", items[1].Region)
	assert.Equal(t, "technology", items[1].Category)
	assert.Equal(t, "asia", items[2].Region)
	assert.Equal(t, "news", items[2].Category)
}

func TestBatchSize(t *testing.T) {
	assert.Equal(t, 17, BatchSize(98, 6), "14x7 matrix over 6 windows")
	assert.Equal(t, 1, BatchSize(4, 6), "more windows than items")
	assert.Equal(t, 10, BatchSize(10, 1))
	assert.Equal(t, 98, BatchSize(98, 0), "zero windows treated as one")
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 6))
	assert.Equal(t, 2, Index(time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC), 6))
	assert.Equal(t, 5, Index(time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC), 6))
	assert.Equal(t, 0, Index(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), 0), "zero windows treated as one")
}

func TestWindow_Bounds(t *testing.T) {
	const total, windows = 98, 6
	batch := BatchSize(total, windows)

	covered := make([]bool, total)
	prevEnd := 0
	for h := 0; h < 24; h += 4 { // one probe per 4-hour range
		now := time.Date(2025, 6, 1, h, 30, 0, 0, time.UTC)
		start, end := Window(now, windows, batch, total)

		assert.GreaterOrEqual(t, start, 0)
		assert.LessOrEqual(t, end, total)
		assert.Equal(t, prevEnd, start, "windows must tile without gaps or overlap")
		prevEnd = end

		for i := start; i < end; i++ {
			assert.False(t, covered[i], "item %d selected twice", i)
			covered[i] = true
		}
	}

	for i, c := range covered {
		assert.True(t, c, "item %d never selected", i)
	}
}

func TestWindow_DeterministicWithinRange(t *testing.T) {
	const total, windows = 98, 6
	batch := BatchSize(total, windows)

	// 4-hour range starting at 08:00, probe its edges
	s1, e1 := Window(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), windows, batch, total)
	s2, e2 := Window(time.Date(2025, 6, 1, 11, 59, 0, 0, time.UTC), windows, batch, total)
	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)

	// next range selects the next slice
	s3, _ := Window(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), windows, batch, total)
	assert.Equal(t, e1, s3)
}

func TestWindow_ShortFinalWindow(t *testing.T) {
	// 10 items over 4 windows, batch 3: last window holds a single item
	batch := BatchSize(10, 4)
	require.Equal(t, 3, batch)

	start, end := Window(time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC), 4, batch, 10)
	assert.Equal(t, 9, start)
	assert.Equal(t, 10, end)
}

func TestWindow_EmptyPastMatrix(t *testing.T) {
	// oversized batch configuration must clamp, not error
	start, end := Window(time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC), 4, 50, 10)
	assert.Equal(t, 10, start)
	assert.Equal(t, 10, end)
}

func TestWindow_NonUTCClock(t *testing.T) {
	// window selection follows UTC regardless of the clock's zone
	loc := time.FixedZone("plus5", 5*3600)
	utc := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s1, e1 := Window(utc, 6, 17, 98)
	s2, e2 := Window(utc.In(loc), 6, 17, 98)
	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)
}

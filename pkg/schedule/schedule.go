// Package schedule maps wall-clock time to a slice of the region x category
// work matrix, so each invocation refreshes a bounded batch and the full
// matrix is covered over a day of scheduled runs.
package schedule

import (
	"time"

	"github.com/umputun/newsgrid/pkg/config"
	"github.com/umputun/newsgrid/pkg/domain"
)

// Matrix builds the static ordered list of all work items, regions in
// configured order crossed with categories in configured order.
func Matrix(regions []config.Region, categories []string) []domain.WorkItem {
	items := make([]domain.WorkItem, 0, len(regions)*len(categories))
	for _, r := range regions {
		for _, c := range categories {
			items = append(items, domain.WorkItem{Region: r.Key, Category: c})
		}
	}
	return items
}

// BatchSize derives items per window as ceil(total/windows)
func BatchSize(total, windowsPerDay int) int {
	if windowsPerDay < 1 {
		windowsPerDay = 1
	}
	return (total + windowsPerDay - 1) / windowsPerDay
}

// Index returns the zero-based window containing now. The UTC day is
// partitioned into windowsPerDay equal ranges.
func Index(now time.Time, windowsPerDay int) int {
	if windowsPerDay < 1 {
		windowsPerDay = 1
	}
	utc := now.UTC()
	minuteOfDay := utc.Hour()*60 + utc.Minute()
	return minuteOfDay * windowsPerDay / (24 * 60)
}

// Window returns the [start, end) slice bounds of the work matrix for the
// given UTC time, every call within the same window selects the same slice.
func Window(now time.Time, windowsPerDay, batchSize, total int) (start, end int) {
	start = Index(now, windowsPerDay) * batchSize
	if start > total {
		start = total
	}
	end = start + batchSize
	if end > total {
		end = total
	}
	return start, end
}

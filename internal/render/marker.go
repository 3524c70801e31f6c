package render

import (
	"sort"
	"time"

	"github.com/omerga/whereabouts-backend-go/internal/models"
)

// sizeRanker maps a sample's timestamp to a small/medium/large tier based
// on its chronological rank among the same person's timestamps. The tier is
// a visual proxy for early/middle/late in the day, not a time bucket.
type sizeRanker struct {
	sorted []string
}

// newSizeRanker sorts the person's timestamps ascending. A lexical sort is
// correct here because all timestamps in a result share the same
// fixed-offset ISO 8601 representation.
func newSizeRanker(timestamps []string) sizeRanker {
	sorted := make([]string, len(timestamps))
	copy(sorted, timestamps)
	sort.Strings(sorted)
	return sizeRanker{sorted: sorted}
}

// SizeFor classifies one timestamp. Rank ratio below 0.3 is small, above
// 0.8 large, otherwise medium; a single-sample set is always medium.
func (r sizeRanker) SizeFor(timestamp string) string {
	n := len(r.sorted)
	if n <= 1 {
		return models.SizeMedium
	}

	rank := sort.SearchStrings(r.sorted, timestamp)
	ratio := float64(rank) / float64(n-1)

	switch {
	case ratio < 0.3:
		return models.SizeSmall
	case ratio > 0.8:
		return models.SizeLarge
	default:
		return models.SizeMedium
	}
}

// latestSample finds the chronologically last valid sample across the whole
// result, by parsed-time comparison rather than string order. It gets the
// distinct current-position treatment. Returns false when no sample parses.
func latestSample(samples []models.LocationSample) (models.LocationSample, bool) {
	var (
		latest   models.LocationSample
		latestAt time.Time
		found    bool
	)
	for _, s := range samples {
		t := s.Time()
		if t.IsZero() {
			continue
		}
		if !found || t.After(latestAt) {
			latest = s
			latestAt = t
			found = true
		}
	}
	return latest, found
}

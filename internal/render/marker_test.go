package render

import (
	"fmt"
	"testing"

	"github.com/omerga/whereabouts-backend-go/internal/models"
)

func TestSizeForTenEvenTimestamps(t *testing.T) {
	var timestamps []string
	for i := 0; i < 10; i++ {
		timestamps = append(timestamps, fmt.Sprintf("2025-07-29T%02d:00:00Z", 8+i))
	}
	ranker := newSizeRanker(timestamps)

	want := []string{
		models.SizeSmall, models.SizeSmall, models.SizeSmall, // ratios 0, .11, .22
		models.SizeMedium, models.SizeMedium, models.SizeMedium,
		models.SizeMedium, models.SizeMedium, // up to .78
		models.SizeLarge, models.SizeLarge, // .89, 1.0
	}
	for i, ts := range timestamps {
		if got := ranker.SizeFor(ts); got != want[i] {
			t.Errorf("rank %d (%s): got %s, want %s", i, ts, got, want[i])
		}
	}
}

func TestSizeForSingleSampleIsMedium(t *testing.T) {
	ranker := newSizeRanker([]string{"2025-07-29T12:00:00Z"})
	if got := ranker.SizeFor("2025-07-29T12:00:00Z"); got != models.SizeMedium {
		t.Errorf("got %s, want medium", got)
	}
}

func TestSizeForUnsortedInput(t *testing.T) {
	ranker := newSizeRanker([]string{
		"2025-07-29T20:00:00Z",
		"2025-07-29T08:00:00Z",
		"2025-07-29T12:00:00Z",
	})
	if got := ranker.SizeFor("2025-07-29T08:00:00Z"); got != models.SizeSmall {
		t.Errorf("earliest: got %s, want small", got)
	}
	if got := ranker.SizeFor("2025-07-29T20:00:00Z"); got != models.SizeLarge {
		t.Errorf("latest: got %s, want large", got)
	}
}

func TestLatestSampleByChronology(t *testing.T) {
	samples := []models.LocationSample{
		{Timestamp: "2025-07-29T23:45:00Z", Latitude: 32.1, Longitude: 34.8},
		{Timestamp: "2025-07-29T08:00:00Z", Latitude: 32.0, Longitude: 34.7},
		// Different offset, but chronologically the latest instant.
		{Timestamp: "2025-07-30T02:00:00+02:00", Latitude: 32.2, Longitude: 34.9},
	}

	latest, ok := latestSample(samples)
	if !ok {
		t.Fatal("expected a latest sample")
	}
	if latest.Timestamp != "2025-07-30T02:00:00+02:00" {
		t.Errorf("got %s, want the +02:00 timestamp", latest.Timestamp)
	}
}

func TestLatestSampleEmpty(t *testing.T) {
	if _, ok := latestSample(nil); ok {
		t.Error("no samples should yield no latest")
	}
}

package analysis

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/akeller/spotify-history-tools/internal/history"
)

func TestComputeBasicStats_empty(t *testing.T) {
	stats := ComputeBasicStats(nil)
	if stats.TotalStreams != 0 || stats.TotalHours != 0 {
		t.Fatalf("Expected zero stats for empty input, got %+v", stats)
	}
	if !stats.FirstTS.IsZero() || !stats.LastTS.IsZero() {
		t.Fatalf("Expected zero timestamps for empty input, got %v / %v", stats.FirstTS, stats.LastTS)
	}
	if stats.ListeningByYear != nil {
		t.Fatalf("Expected no year series for empty input, got %v", stats.ListeningByYear)
	}
}

func TestComputeBasicStats_totals(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2022-03-01T10:00:00Z", 2*hourMs, "Track A", "Artist A"),
		musicPlay(t, "2022-06-01T10:00:00Z", hourMs, "Track B", "Artist A"),
		musicPlay(t, "2023-01-15T22:00:00Z", hourMs, "Track A", "Artist B"),
	}

	stats := ComputeBasicStats(events)

	if stats.TotalStreams != 3 {
		t.Errorf("Expected 3 streams, got %d", stats.TotalStreams)
	}
	if stats.TotalHours != 4 {
		t.Errorf("Expected 4 hours, got %f", stats.TotalHours)
	}
	if stats.TotalDays != 4.0/24 {
		t.Errorf("Expected %f days, got %f", 4.0/24, stats.TotalDays)
	}
	if stats.DistinctArtists != 2 {
		t.Errorf("Expected 2 distinct artists, got %d", stats.DistinctArtists)
	}
	// Track identity here is the name alone, so Track A counts once even
	// though two artists played it.
	if stats.DistinctTracks != 2 {
		t.Errorf("Expected 2 distinct tracks, got %d", stats.DistinctTracks)
	}

	expectedFirst, _ := time.Parse(time.RFC3339, "2022-03-01T10:00:00Z")
	if !stats.FirstTS.Equal(expectedFirst) {
		t.Errorf("Expected first stream %v, got %v", expectedFirst, stats.FirstTS)
	}
	expectedLast, _ := time.Parse(time.RFC3339, "2023-01-15T22:00:00Z")
	if !stats.LastTS.Equal(expectedLast) {
		t.Errorf("Expected last stream %v, got %v", expectedLast, stats.LastTS)
	}

	expectedYears := []YearStat{
		{Year: 2022, Hours: 3, Streams: 2},
		{Year: 2023, Hours: 1, Streams: 1},
	}
	if diff := cmp.Diff(expectedYears, stats.ListeningByYear); diff != "" {
		t.Errorf("Year series mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBasicStats_eventsWithoutTimestamps(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "", hourMs, "Track A", "Artist A"),
		musicPlay(t, "2022-03-01T10:00:00Z", hourMs, "Track B", "Artist B"),
	}

	stats := ComputeBasicStats(events)

	// Untimestamped events count towards the totals but not the calendar
	// series.
	if stats.TotalStreams != 2 {
		t.Errorf("Expected 2 streams, got %d", stats.TotalStreams)
	}
	if stats.TotalHours != 2 {
		t.Errorf("Expected 2 hours, got %f", stats.TotalHours)
	}
	if len(stats.ListeningByYear) != 1 || stats.ListeningByYear[0].Streams != 1 {
		t.Errorf("Expected one year with one stream, got %v", stats.ListeningByYear)
	}
}

func TestComputeMusicPodcastSplit(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2022-03-01T10:00:00Z", 3*hourMs, "Track A", "Artist A"),
		podcastPlay(t, "2022-03-01T12:00:00Z", hourMs, "Some Show", "Episode 1"),
	}

	split := ComputeMusicPodcastSplit(events)

	if split.MusicHours != 3 {
		t.Errorf("Expected 3 music hours, got %f", split.MusicHours)
	}
	if split.PodcastHours != 1 {
		t.Errorf("Expected 1 podcast hour, got %f", split.PodcastHours)
	}
	if split.PodcastRatio != 0.25 {
		t.Errorf("Expected podcast ratio 0.25, got %f", split.PodcastRatio)
	}
}

func TestComputeMusicPodcastSplit_empty(t *testing.T) {
	split := ComputeMusicPodcastSplit(nil)
	if split.PodcastRatio != 0 {
		t.Errorf("Expected ratio 0 for empty input, got %f", split.PodcastRatio)
	}
}

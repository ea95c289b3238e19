package analysis

import (
	"testing"

	"github.com/akeller/spotify-history-tools/internal/history"
)

func TestComputeSkipping_rate(t *testing.T) {
	events := []history.PlayEvent{
		skippedPlay(t, "2022-03-01T10:00:00Z", 10000, "Track A", "Artist A", true),
		skippedPlay(t, "2022-03-01T10:05:00Z", 200000, "Track B", "Artist A", false),
		skippedPlay(t, "2022-03-01T10:10:00Z", 20000, "Track C", "Artist A", true),
		skippedPlay(t, "2022-03-01T10:15:00Z", 180000, "Track D", "Artist A", false),
	}

	skips := ComputeSkipping(events, DefaultSkipConfig())

	if skips.SkipRate != 0.5 {
		t.Errorf("Expected skip rate 0.5, got %f", skips.SkipRate)
	}
	// Two skips of 10s and 20s average to 15 seconds.
	if skips.AvgSecondsBeforeSkip == nil || *skips.AvgSecondsBeforeSkip != 15 {
		t.Errorf("Expected average of 15 seconds, got %v", skips.AvgSecondsBeforeSkip)
	}
}

func TestComputeSkipping_flagBeatsDuration(t *testing.T) {
	// Flagged not-skipped despite a very short play.
	events := []history.PlayEvent{
		skippedPlay(t, "2022-03-01T10:00:00Z", 5000, "Track A", "Artist A", false),
	}

	skips := ComputeSkipping(events, DefaultSkipConfig())
	if skips.SkipRate != 0 {
		t.Errorf("Expected the explicit flag to win, got rate %f", skips.SkipRate)
	}
}

func TestComputeSkipping_thresholdFallback(t *testing.T) {
	// No flag at all; the duration heuristic decides.
	events := []history.PlayEvent{
		musicPlay(t, "2022-03-01T10:00:00Z", 5000, "Track A", "Artist A"),
		musicPlay(t, "2022-03-01T10:05:00Z", 200000, "Track B", "Artist A"),
	}

	skips := ComputeSkipping(events, DefaultSkipConfig())
	if skips.SkipRate != 0.5 {
		t.Errorf("Expected threshold heuristic rate 0.5, got %f", skips.SkipRate)
	}
}

func TestComputeSkipping_neverSkippedIsMonotonic(t *testing.T) {
	events := []history.PlayEvent{
		// Track A starts clean, later gets skipped once. One skip anywhere
		// permanently disqualifies it.
		skippedPlay(t, "2022-03-01T10:00:00Z", 200000, "Track A", "Artist A", false),
		skippedPlay(t, "2022-03-02T10:00:00Z", 5000, "Track A", "Artist A", true),
		skippedPlay(t, "2022-03-03T10:00:00Z", 200000, "Track A", "Artist A", false),
		// Track B is never skipped.
		skippedPlay(t, "2022-03-01T11:00:00Z", 200000, "Track B", "Artist A", false),
	}

	skips := ComputeSkipping(events, DefaultSkipConfig())
	if len(skips.NeverSkipped) != 1 {
		t.Fatalf("Expected exactly one never-skipped track, got %v", skips.NeverSkipped)
	}
	if skips.NeverSkipped[0].Track != "Track B" {
		t.Errorf("Expected Track B, got %q", skips.NeverSkipped[0].Track)
	}
}

func TestComputeSkipping_podcastsExcluded(t *testing.T) {
	events := []history.PlayEvent{
		podcastPlay(t, "2022-03-01T10:00:00Z", 1000, "Show A", "Episode 1"),
	}

	skips := ComputeSkipping(events, DefaultSkipConfig())
	if skips.SkipRate != 0 {
		t.Errorf("Expected podcasts to be excluded, got rate %f", skips.SkipRate)
	}
	if len(skips.NeverSkipped) != 0 {
		t.Errorf("Expected no never-skipped entries from podcasts, got %v", skips.NeverSkipped)
	}
}

func TestComputeSkipping_rateByYear(t *testing.T) {
	events := []history.PlayEvent{
		skippedPlay(t, "2021-03-01T10:00:00Z", 5000, "Track A", "Artist A", true),
		skippedPlay(t, "2021-03-02T10:00:00Z", 200000, "Track B", "Artist A", false),
		skippedPlay(t, "2022-03-01T10:00:00Z", 200000, "Track C", "Artist A", false),
	}

	skips := ComputeSkipping(events, DefaultSkipConfig())
	if len(skips.RateByYear) != 2 {
		t.Fatalf("Expected 2 years, got %v", skips.RateByYear)
	}
	if skips.RateByYear[0].Year != 2021 || skips.RateByYear[0].Rate != 0.5 {
		t.Errorf("Expected 2021 at 0.5, got %+v", skips.RateByYear[0])
	}
	if skips.RateByYear[1].Year != 2022 || skips.RateByYear[1].Rate != 0 {
		t.Errorf("Expected 2022 at 0, got %+v", skips.RateByYear[1])
	}
}

func TestComputeSkipping_avgSkipsZeroDuration(t *testing.T) {
	events := []history.PlayEvent{
		skippedPlay(t, "2022-03-01T10:00:00Z", 0, "Track A", "Artist A", true),
	}

	skips := ComputeSkipping(events, DefaultSkipConfig())
	if skips.AvgSecondsBeforeSkip != nil {
		t.Errorf("Expected no average when every skip has zero duration, got %v", skips.AvgSecondsBeforeSkip)
	}
}

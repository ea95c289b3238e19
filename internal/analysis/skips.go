package analysis

import (
	"math"
	"sort"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// DefaultSkipThresholdMs is the duration below which a play counts as
// skipped when no explicit flag is consulted.
const DefaultSkipThresholdMs = 30000

// SkipConfig selects how a music play is classified as skipped: the export's
// explicit flag when PreferFlag is set and the flag is present, otherwise a
// duration heuristic against ThresholdMs.
type SkipConfig struct {
	PreferFlag  bool
	ThresholdMs int64
}

// DefaultSkipConfig prefers the explicit flag and falls back to the 30s
// heuristic for records that predate it.
func DefaultSkipConfig() SkipConfig {
	return SkipConfig{PreferFlag: true, ThresholdMs: DefaultSkipThresholdMs}
}

func (c SkipConfig) skipped(e history.PlayEvent) bool {
	if c.PreferFlag && e.Skipped != nil {
		return *e.Skipped
	}
	return e.MsPlayed < c.ThresholdMs
}

// YearSkipRate is the skip rate over music plays for one UTC year.
type YearSkipRate struct {
	Year int     `yaml:"year"`
	Rate float64 `yaml:"rate"`
}

// NeverSkippedTrack identifies a track no play of which was ever skipped.
type NeverSkippedTrack struct {
	Track  string `yaml:"track"`
	Artist string `yaml:"artist,omitempty"`
}

// SkipAnalytics covers skip behavior over music events only; podcast events
// are excluded entirely.
type SkipAnalytics struct {
	// SkipRate is skipped plays over all music plays, 0 for empty input.
	SkipRate float64 `yaml:"skip_rate"`
	// AvgSecondsBeforeSkip averages the duration of skipped plays that had
	// positive duration; nil when no such play exists.
	AvgSecondsBeforeSkip *int `yaml:"avg_seconds_before_skip,omitempty"`
	// NeverSkipped lists tracks with zero skipped plays across the whole
	// dataset, in first-encountered order. One skip anywhere permanently
	// disqualifies a track.
	NeverSkipped []NeverSkippedTrack `yaml:"never_skipped"`
	RateByYear   []YearSkipRate      `yaml:"rate_by_year"`
}

// ComputeSkipping classifies every music play under the given config and
// derives the overall rate, the average seconds before a skip, the
// never-skipped track set and the per-year rates.
func ComputeSkipping(events []history.PlayEvent, cfg SkipConfig) SkipAnalytics {
	var total, skipped, skipsWithMs int
	var skipMs int64

	everSkipped := make(map[trackKey]bool)
	var keyOrder []trackKey

	type yearAccum struct {
		total   int
		skipped int
	}
	byYear := make(map[int]*yearAccum)

	for _, e := range events {
		if e.IsPodcast() {
			continue
		}
		total++

		isSkip := cfg.skipped(e)
		if isSkip {
			skipped++
			if e.MsPlayed > 0 {
				skipMs += e.MsPlayed
				skipsWithMs++
			}
		}

		key := trackKey{Track: e.TrackName, Artist: e.ArtistName}
		if _, seen := everSkipped[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		everSkipped[key] = everSkipped[key] || isSkip

		if e.HasTimestamp() {
			year := yearOf(e)
			accum := byYear[year]
			if accum == nil {
				accum = &yearAccum{}
				byYear[year] = accum
			}
			accum.total++
			if isSkip {
				accum.skipped++
			}
		}
	}

	analytics := SkipAnalytics{}
	if total > 0 {
		analytics.SkipRate = float64(skipped) / float64(total)
	}
	if skipsWithMs > 0 {
		avg := int(math.Round(float64(skipMs) / float64(skipsWithMs) / 1000))
		analytics.AvgSecondsBeforeSkip = &avg
	}

	for _, key := range keyOrder {
		if !everSkipped[key] {
			analytics.NeverSkipped = append(analytics.NeverSkipped, NeverSkippedTrack{Track: key.Track, Artist: key.Artist})
		}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		accum := byYear[year]
		analytics.RateByYear = append(analytics.RateByYear, YearSkipRate{
			Year: year,
			Rate: float64(accum.skipped) / float64(accum.total),
		})
	}

	return analytics
}

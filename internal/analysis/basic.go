package analysis

import (
	"sort"
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// YearStat is one row of the year-bucketed listening series.
type YearStat struct {
	Year    int     `yaml:"year"`
	Hours   float64 `yaml:"hours"`
	Streams int     `yaml:"streams"`
}

// BasicStats summarizes the whole dataset in a single pass. Empty input
// yields the zero value, not an error.
type BasicStats struct {
	TotalStreams int     `yaml:"total_streams"`
	TotalMs      int64   `yaml:"total_ms"`
	TotalHours   float64 `yaml:"total_hours"`
	TotalDays    float64 `yaml:"total_days"`

	// FirstTS and LastTS are the earliest and latest event timestamps;
	// zero when no event carries one.
	FirstTS time.Time `yaml:"first_ts,omitempty"`
	LastTS  time.Time `yaml:"last_ts,omitempty"`

	// Distinct counts only consider events carrying a non-empty name;
	// unnamed events still contribute to the totals above.
	DistinctArtists int `yaml:"distinct_artists"`
	DistinctTracks  int `yaml:"distinct_tracks"`

	ListeningByYear []YearStat `yaml:"listening_by_year"`
}

// ComputeBasicStats produces totals, the first/last timestamp, distinct
// artist and track cardinalities, and the per-year series.
func ComputeBasicStats(events []history.PlayEvent) BasicStats {
	stats := BasicStats{TotalStreams: len(events)}

	artists := make(map[string]bool)
	tracks := make(map[string]bool)

	type yearAccum struct {
		ms      int64
		streams int
	}
	byYear := make(map[int]*yearAccum)

	for _, e := range events {
		stats.TotalMs += e.MsPlayed

		if e.ArtistName != "" {
			artists[e.ArtistName] = true
		}
		if e.TrackName != "" {
			tracks[e.TrackName] = true
		}

		if !e.HasTimestamp() {
			continue
		}
		if stats.FirstTS.IsZero() || e.Timestamp.Before(stats.FirstTS) {
			stats.FirstTS = e.Timestamp
		}
		if stats.LastTS.IsZero() || e.Timestamp.After(stats.LastTS) {
			stats.LastTS = e.Timestamp
		}

		year := yearOf(e)
		accum := byYear[year]
		if accum == nil {
			accum = &yearAccum{}
			byYear[year] = accum
		}
		accum.ms += e.MsPlayed
		accum.streams++
	}

	stats.TotalHours = msToHours(stats.TotalMs)
	stats.TotalDays = stats.TotalHours / 24
	stats.DistinctArtists = len(artists)
	stats.DistinctTracks = len(tracks)

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		stats.ListeningByYear = append(stats.ListeningByYear, YearStat{
			Year:    year,
			Hours:   msToHours(byYear[year].ms),
			Streams: byYear[year].streams,
		})
	}

	return stats
}

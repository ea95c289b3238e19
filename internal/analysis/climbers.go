package analysis

import (
	"sort"

	"github.com/akeller/spotify-history-tools/internal/history"
)

const (
	// DefaultClimbThresholdHours is the year-over-year gain that counts as
	// a climb. Heuristic, kept configurable.
	DefaultClimbThresholdHours = 50.0

	climberResultCap = 20
)

// ClimberRow records an artist whose listening spiked in a given year
// relative to their previous active year.
type ClimberRow struct {
	Artist     string  `yaml:"artist"`
	Year       int     `yaml:"year"`
	DeltaHours float64 `yaml:"delta_hours"`
}

// ComputeClimbers compares each artist's totals between consecutive active
// years and reports every gain of at least thresholdHours, sorted descending
// by the gain and capped to 20.
func ComputeClimbers(events []history.PlayEvent, thresholdHours float64) []ClimberRow {
	msByArtistYear := make(map[string]map[int]int64)
	for _, e := range events {
		if e.ArtistName == "" || !e.HasTimestamp() {
			continue
		}
		inner := msByArtistYear[e.ArtistName]
		if inner == nil {
			inner = make(map[int]int64)
			msByArtistYear[e.ArtistName] = inner
		}
		inner[yearOf(e)] += e.MsPlayed
	}

	var rows []ClimberRow
	for artist, inner := range msByArtistYear {
		years := make([]int, 0, len(inner))
		for year := range inner {
			years = append(years, year)
		}
		sort.Ints(years)
		for i := 1; i < len(years); i++ {
			delta := msToHours(inner[years[i]] - inner[years[i-1]])
			if delta >= thresholdHours {
				rows = append(rows, ClimberRow{Artist: artist, Year: years[i], DeltaHours: delta})
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DeltaHours != rows[j].DeltaHours {
			return rows[i].DeltaHours > rows[j].DeltaHours
		}
		if rows[i].Artist != rows[j].Artist {
			return rows[i].Artist < rows[j].Artist
		}
		return rows[i].Year < rows[j].Year
	})
	if len(rows) > climberResultCap {
		rows = rows[:climberResultCap]
	}
	return rows
}

package analysis

import (
	"sort"

	"github.com/akeller/spotify-history-tools/internal/history"
)

const ghostedResultCap = 20

// GhostedArtistRow is an artist with sustained past activity and nothing
// recent.
type GhostedArtistRow struct {
	Artist      string `yaml:"artist"`
	LastYear    int    `yaml:"last_year"`
	YearsActive int    `yaml:"years_active"`
}

// ComputeGhostedArtists finds artists whose latest active year is at least
// cutoffYears behind the dataset's newest year and who were active in at
// least cutoffYears distinct years. Results sort ascending by last active
// year (longest-ghosted first), capped to 20.
func ComputeGhostedArtists(events []history.PlayEvent, cutoffYears int) []GhostedArtistRow {
	yearsByArtist := make(map[string]map[int]bool)
	maxYear := 0
	for _, e := range events {
		if e.ArtistName == "" || !e.HasTimestamp() {
			continue
		}
		year := yearOf(e)
		if year > maxYear {
			maxYear = year
		}
		years := yearsByArtist[e.ArtistName]
		if years == nil {
			years = make(map[int]bool)
			yearsByArtist[e.ArtistName] = years
		}
		years[year] = true
	}

	threshold := maxYear - cutoffYears
	var rows []GhostedArtistRow
	for artist, years := range yearsByArtist {
		lastYear := 0
		for year := range years {
			if year > lastYear {
				lastYear = year
			}
		}
		if lastYear <= threshold && len(years) >= cutoffYears {
			rows = append(rows, GhostedArtistRow{Artist: artist, LastYear: lastYear, YearsActive: len(years)})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LastYear != rows[j].LastYear {
			return rows[i].LastYear < rows[j].LastYear
		}
		return rows[i].Artist < rows[j].Artist
	})
	if len(rows) > ghostedResultCap {
		rows = rows[:ghostedResultCap]
	}
	return rows
}

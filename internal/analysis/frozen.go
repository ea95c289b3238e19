package analysis

import (
	"sort"

	"github.com/akeller/spotify-history-tools/internal/history"
)

const (
	// earlySkipMs bounds how far into a track a play may get and still
	// count as abandoned.
	earlySkipMs = 30000

	frozenResultCap = 50
)

// FrozenTrackRow is a track that was abandoned early on every single play:
// flagged skipped and under 30 seconds each time. Contrast with the
// never-skipped set, which a single skip is enough to leave.
type FrozenTrackRow struct {
	Track  string `yaml:"track"`
	Artist string `yaml:"artist"`
}

// ComputeFrozenTracks finds tracks whose every occurrence was both flagged
// skipped and shorter than 30 seconds. Capped to 50, sorted by track then
// artist.
func ComputeFrozenTracks(events []history.PlayEvent) []FrozenTrackRow {
	plays := make(map[trackKey]int)
	earlySkips := make(map[trackKey]int)

	for _, e := range events {
		if e.TrackName == "" || e.ArtistName == "" {
			continue
		}
		key := trackKey{Track: e.TrackName, Artist: e.ArtistName}
		plays[key]++
		if e.Skipped != nil && *e.Skipped && e.MsPlayed < earlySkipMs {
			earlySkips[key]++
		}
	}

	var rows []FrozenTrackRow
	for key, count := range plays {
		if earlySkips[key] == count {
			rows = append(rows, FrozenTrackRow{Track: key.Track, Artist: key.Artist})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Track != rows[j].Track {
			return rows[i].Track < rows[j].Track
		}
		return rows[i].Artist < rows[j].Artist
	})
	if len(rows) > frozenResultCap {
		rows = rows[:frozenResultCap]
	}
	return rows
}

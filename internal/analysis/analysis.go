// Package analysis computes descriptive statistics and derived insights over
// a loaded streaming history. Every function here is a pure pass over the
// event slice: no shared state, nothing mutated, results recomputed in full
// on each call. All calendar grouping is UTC.
package analysis

import (
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// trackKey identifies a track by name and artist. Album is deliberately not
// part of the identity: the same song on different albums counts as one
// track, while the same title by two artists counts as two.
type trackKey struct {
	Track  string
	Artist string
}

const (
	msPerHour = 1000 * 60 * 60
	dayFormat = "2006-01-02"
)

func msToHours(ms int64) float64 {
	return float64(ms) / msPerHour
}

func dayOf(t time.Time) string {
	return t.UTC().Format(dayFormat)
}

func yearOf(e history.PlayEvent) int {
	return e.Timestamp.UTC().Year()
}

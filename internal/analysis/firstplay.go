package analysis

import (
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// FirstPlay identifies the earliest play in the history.
type FirstPlay struct {
	Track  string    `yaml:"track"`
	Artist string    `yaml:"artist"`
	When   time.Time `yaml:"when,omitempty"`
}

// ComputeFirstPlay returns the earliest timestamped event's track and
// artist, or nil for an empty history. Unnamed fields fall back to Unknown.
func ComputeFirstPlay(events []history.PlayEvent) *FirstPlay {
	if len(events) == 0 {
		return nil
	}

	earliest := events[0]
	for _, e := range events[1:] {
		if e.HasTimestamp() && (!earliest.HasTimestamp() || e.Timestamp.Before(earliest.Timestamp)) {
			earliest = e
		}
	}

	fp := &FirstPlay{Track: earliest.TrackName, Artist: earliest.ArtistName, When: earliest.Timestamp}
	if fp.Track == "" {
		fp.Track = "Unknown track"
	}
	if fp.Artist == "" {
		fp.Artist = "Unknown artist"
	}
	return fp
}

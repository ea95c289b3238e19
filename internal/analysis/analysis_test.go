package analysis

import (
	"testing"
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

const hourMs = 60 * 60 * 1000

func musicPlay(t *testing.T, ts string, ms int64, track string, artist string) history.PlayEvent {
	t.Helper()
	e := history.PlayEvent{
		MsPlayed:   ms,
		TrackName:  track,
		ArtistName: artist,
	}
	if ts != "" {
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			t.Fatalf("Parsing timestamp %q: %v", ts, err)
		}
		e.RawTS = ts
		e.Timestamp = parsed.UTC()
	}
	return e
}

func podcastPlay(t *testing.T, ts string, ms int64, show string, episode string) history.PlayEvent {
	t.Helper()
	e := musicPlay(t, ts, ms, "", "")
	e.ShowName = show
	e.EpisodeName = episode
	return e
}

func skippedPlay(t *testing.T, ts string, ms int64, track string, artist string, skipped bool) history.PlayEvent {
	t.Helper()
	e := musicPlay(t, ts, ms, track, artist)
	e.Skipped = &skipped
	return e
}

// Package history models Spotify extended-streaming-history exports: the
// per-play records and the loader that expands archives into them.
package history

import (
	"time"

	"github.com/tidwall/gjson"
)

// PlayEvent is one logged play from the export. All fields are optional in
// the source JSON; absent strings stay empty, absent durations are zero and
// an absent timestamp is the zero time. Fields the schema doesn't know about
// are preserved in Extra rather than rejected.
type PlayEvent struct {
	RawTS     string
	Timestamp time.Time
	MsPlayed  int64

	TrackName  string
	ArtistName string
	AlbumName  string

	EpisodeName string
	ShowName    string

	Platform    string
	ConnCountry string

	Shuffle   *bool
	Skipped   *bool
	Offline   *bool
	Incognito *bool

	Extra map[string]any

	// SourceFile records which export file the event came from. It is
	// provenance only and never feeds a computation.
	SourceFile string
}

// IsPodcast reports whether the event is a podcast play. Presence of either
// episode field decides it; an event is podcast or music, never both, and
// music is the default even when no track name is present.
func (e PlayEvent) IsPodcast() bool {
	return e.EpisodeName != "" || e.ShowName != ""
}

// HasTimestamp reports whether the event carries a usable timestamp. Events
// without one contribute to totals but are excluded from any time-based
// grouping.
func (e PlayEvent) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}

var knownKeys = map[string]bool{
	"ts":                                true,
	"ms_played":                         true,
	"master_metadata_track_name":        true,
	"master_metadata_album_artist_name": true,
	"master_metadata_album_album_name":  true,
	"episode_name":                      true,
	"episode_show_name":                 true,
	"platform":                          true,
	"conn_country":                      true,
	"shuffle":                           true,
	"skipped":                           true,
	"offline":                           true,
	"incognito_mode":                    true,
}

func eventFromJSON(rec gjson.Result, sourceFile string) PlayEvent {
	e := PlayEvent{
		RawTS:       rec.Get("ts").String(),
		MsPlayed:    rec.Get("ms_played").Int(),
		TrackName:   rec.Get("master_metadata_track_name").String(),
		ArtistName:  rec.Get("master_metadata_album_artist_name").String(),
		AlbumName:   rec.Get("master_metadata_album_album_name").String(),
		EpisodeName: rec.Get("episode_name").String(),
		ShowName:    rec.Get("episode_show_name").String(),
		Platform:    rec.Get("platform").String(),
		ConnCountry: rec.Get("conn_country").String(),
		SourceFile:  sourceFile,
	}
	if e.MsPlayed < 0 {
		e.MsPlayed = 0
	}

	if e.RawTS != "" {
		if ts, err := time.Parse(time.RFC3339, e.RawTS); err == nil {
			e.Timestamp = ts.UTC()
		}
	}

	e.Shuffle = optionalBool(rec, "shuffle")
	e.Skipped = optionalBool(rec, "skipped")
	e.Offline = optionalBool(rec, "offline")
	e.Incognito = optionalBool(rec, "incognito_mode")

	rec.ForEach(func(key, value gjson.Result) bool {
		if !knownKeys[key.String()] {
			if e.Extra == nil {
				e.Extra = make(map[string]any)
			}
			e.Extra[key.String()] = value.Value()
		}
		return true
	})

	return e
}

func optionalBool(rec gjson.Result, key string) *bool {
	v := rec.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	b := v.Bool()
	return &b
}

package analysis

import (
	"sort"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// TopArtistRow is one row of an artist ranking.
type TopArtistRow struct {
	Artist  string  `yaml:"artist"`
	Hours   float64 `yaml:"hours"`
	Streams int     `yaml:"streams"`
}

// TopTrackRow is one row of a track ranking.
type TopTrackRow struct {
	Track   string  `yaml:"track"`
	Artist  string  `yaml:"artist"`
	Hours   float64 `yaml:"hours"`
	Streams int     `yaml:"streams"`
}

// TopShowRow is one row of a podcast show ranking. Episodes is the number of
// podcast plays attributed to the show, not distinct episodes.
type TopShowRow struct {
	Show     string  `yaml:"show"`
	Hours    float64 `yaml:"hours"`
	Episodes int     `yaml:"episodes"`
}

// TopEpisodeRow is one row of a podcast episode ranking.
type TopEpisodeRow struct {
	Show    string  `yaml:"show"`
	Episode string  `yaml:"episode"`
	Hours   float64 `yaml:"hours"`
	Plays   int     `yaml:"plays"`
}

// ForeverTop holds the all-time artist and track rankings, computed together
// in one pass.
type ForeverTop struct {
	Artists []TopArtistRow `yaml:"artists"`
	Tracks  []TopTrackRow  `yaml:"tracks"`
}

type accum struct {
	ms    int64
	plays int
}

// Rankings sort descending by hours. Ties break by play count descending,
// then by name ascending, so output is deterministic regardless of map
// iteration order.

// ComputeTopArtists ranks artists by summed listening time. Events without
// an artist name are skipped.
func ComputeTopArtists(events []history.PlayEvent, limit int) []TopArtistRow {
	byArtist := make(map[string]*accum)
	for _, e := range events {
		if e.ArtistName == "" {
			continue
		}
		a := byArtist[e.ArtistName]
		if a == nil {
			a = &accum{}
			byArtist[e.ArtistName] = a
		}
		a.ms += e.MsPlayed
		a.plays++
	}
	return artistRows(byArtist, limit)
}

func artistRows(byArtist map[string]*accum, limit int) []TopArtistRow {
	rows := make([]TopArtistRow, 0, len(byArtist))
	for artist, a := range byArtist {
		rows = append(rows, TopArtistRow{Artist: artist, Hours: msToHours(a.ms), Streams: a.plays})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		if rows[i].Streams != rows[j].Streams {
			return rows[i].Streams > rows[j].Streams
		}
		return rows[i].Artist < rows[j].Artist
	})
	return truncateArtists(rows, limit)
}

// ComputeTopTracks ranks (track, artist) pairs by summed listening time.
// Events missing either name are skipped.
func ComputeTopTracks(events []history.PlayEvent, limit int) []TopTrackRow {
	byTrack := make(map[trackKey]*accum)
	for _, e := range events {
		if e.TrackName == "" || e.ArtistName == "" {
			continue
		}
		key := trackKey{Track: e.TrackName, Artist: e.ArtistName}
		a := byTrack[key]
		if a == nil {
			a = &accum{}
			byTrack[key] = a
		}
		a.ms += e.MsPlayed
		a.plays++
	}
	return trackRows(byTrack, limit)
}

func trackRows(byTrack map[trackKey]*accum, limit int) []TopTrackRow {
	rows := make([]TopTrackRow, 0, len(byTrack))
	for key, a := range byTrack {
		rows = append(rows, TopTrackRow{Track: key.Track, Artist: key.Artist, Hours: msToHours(a.ms), Streams: a.plays})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		if rows[i].Streams != rows[j].Streams {
			return rows[i].Streams > rows[j].Streams
		}
		if rows[i].Track != rows[j].Track {
			return rows[i].Track < rows[j].Track
		}
		return rows[i].Artist < rows[j].Artist
	})
	return truncateTracks(rows, limit)
}

// ComputeForeverTop ranks artists and tracks over the full history in a
// single pass over the events.
func ComputeForeverTop(events []history.PlayEvent, limit int) ForeverTop {
	byArtist := make(map[string]*accum)
	byTrack := make(map[trackKey]*accum)

	for _, e := range events {
		if e.ArtistName != "" {
			a := byArtist[e.ArtistName]
			if a == nil {
				a = &accum{}
				byArtist[e.ArtistName] = a
			}
			a.ms += e.MsPlayed
			a.plays++
		}
		if e.ArtistName != "" && e.TrackName != "" {
			key := trackKey{Track: e.TrackName, Artist: e.ArtistName}
			t := byTrack[key]
			if t == nil {
				t = &accum{}
				byTrack[key] = t
			}
			t.ms += e.MsPlayed
			t.plays++
		}
	}

	return ForeverTop{
		Artists: artistRows(byArtist, limit),
		Tracks:  trackRows(byTrack, limit),
	}
}

// ComputeTopShows ranks podcast shows by summed listening time. Only podcast
// events participate; a missing show name falls back to "Unknown Show".
func ComputeTopShows(events []history.PlayEvent, limit int) []TopShowRow {
	byShow := make(map[string]*accum)
	for _, e := range events {
		if !e.IsPodcast() {
			continue
		}
		show := e.ShowName
		if show == "" {
			show = "Unknown Show"
		}
		a := byShow[show]
		if a == nil {
			a = &accum{}
			byShow[show] = a
		}
		a.ms += e.MsPlayed
		a.plays++
	}

	rows := make([]TopShowRow, 0, len(byShow))
	for show, a := range byShow {
		rows = append(rows, TopShowRow{Show: show, Hours: msToHours(a.ms), Episodes: a.plays})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		if rows[i].Episodes != rows[j].Episodes {
			return rows[i].Episodes > rows[j].Episodes
		}
		return rows[i].Show < rows[j].Show
	})
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// ComputeTopEpisodes ranks (show, episode) pairs by summed listening time
// over podcast events.
func ComputeTopEpisodes(events []history.PlayEvent, limit int) []TopEpisodeRow {
	type episodeKey struct {
		Show    string
		Episode string
	}
	byEpisode := make(map[episodeKey]*accum)
	for _, e := range events {
		if !e.IsPodcast() {
			continue
		}
		key := episodeKey{Show: e.ShowName, Episode: e.EpisodeName}
		if key.Show == "" {
			key.Show = "Unknown Show"
		}
		if key.Episode == "" {
			key.Episode = "Unknown Episode"
		}
		a := byEpisode[key]
		if a == nil {
			a = &accum{}
			byEpisode[key] = a
		}
		a.ms += e.MsPlayed
		a.plays++
	}

	rows := make([]TopEpisodeRow, 0, len(byEpisode))
	for key, a := range byEpisode {
		rows = append(rows, TopEpisodeRow{Show: key.Show, Episode: key.Episode, Hours: msToHours(a.ms), Plays: a.plays})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		if rows[i].Plays != rows[j].Plays {
			return rows[i].Plays > rows[j].Plays
		}
		if rows[i].Show != rows[j].Show {
			return rows[i].Show < rows[j].Show
		}
		return rows[i].Episode < rows[j].Episode
	})
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func truncateArtists(rows []TopArtistRow, limit int) []TopArtistRow {
	if limit >= 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func truncateTracks(rows []TopTrackRow, limit int) []TopTrackRow {
	if limit >= 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

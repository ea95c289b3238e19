package analysis

import (
	"sort"

	"github.com/akeller/spotify-history-tools/internal/history"
)

const (
	championHoursCap   = 5
	championPlaysFloor = 100
	championPlaysCap   = 10
)

// TrackHoursRow ranks a track by total listening time.
type TrackHoursRow struct {
	Track  string  `yaml:"track"`
	Artist string  `yaml:"artist"`
	Hours  float64 `yaml:"hours"`
}

// DayPlaysRow records how often a track was played on a single day.
type DayPlaysRow struct {
	Track  string `yaml:"track"`
	Artist string `yaml:"artist"`
	Day    string `yaml:"day"`
	Plays  int    `yaml:"plays"`
}

// TrackPlaysRow ranks a track by lifetime play count.
type TrackPlaysRow struct {
	Track  string `yaml:"track"`
	Artist string `yaml:"artist"`
	Plays  int    `yaml:"plays"`
}

// RepeatChampions collects the heaviest-rotation tracks: top five by hours,
// every track tied for the highest same-day play count, and every track with
// at least 100 lifetime plays.
type RepeatChampions struct {
	HighestHours      []TrackHoursRow `yaml:"highest_hours"`
	MostPlaysInOneDay []DayPlaysRow   `yaml:"most_plays_in_one_day"`
	Played100Plus     []TrackPlaysRow `yaml:"played_100_plus"`
}

// ComputeRepeatChampions aggregates per-track totals and per-track-per-day
// play counts in one pass. Ties for the busiest day are all included, not
// just the first.
func ComputeRepeatChampions(events []history.PlayEvent) RepeatChampions {
	type dayKey struct {
		trackKey
		Day string
	}

	totals := make(map[trackKey]*accum)
	dayPlays := make(map[dayKey]int)

	for _, e := range events {
		if e.TrackName == "" || e.ArtistName == "" {
			continue
		}
		key := trackKey{Track: e.TrackName, Artist: e.ArtistName}
		a := totals[key]
		if a == nil {
			a = &accum{}
			totals[key] = a
		}
		a.ms += e.MsPlayed
		a.plays++

		if e.HasTimestamp() {
			dayPlays[dayKey{trackKey: key, Day: dayOf(e.Timestamp)}]++
		}
	}

	var champions RepeatChampions

	byHours := make([]TrackHoursRow, 0, len(totals))
	for key, a := range totals {
		byHours = append(byHours, TrackHoursRow{Track: key.Track, Artist: key.Artist, Hours: msToHours(a.ms)})
	}
	sort.Slice(byHours, func(i, j int) bool {
		if byHours[i].Hours != byHours[j].Hours {
			return byHours[i].Hours > byHours[j].Hours
		}
		if byHours[i].Track != byHours[j].Track {
			return byHours[i].Track < byHours[j].Track
		}
		return byHours[i].Artist < byHours[j].Artist
	})
	if len(byHours) > championHoursCap {
		byHours = byHours[:championHoursCap]
	}
	champions.HighestHours = byHours

	maxPlays := 0
	for _, plays := range dayPlays {
		if plays > maxPlays {
			maxPlays = plays
		}
	}
	for key, plays := range dayPlays {
		if plays == maxPlays {
			champions.MostPlaysInOneDay = append(champions.MostPlaysInOneDay, DayPlaysRow{
				Track:  key.Track,
				Artist: key.Artist,
				Day:    key.Day,
				Plays:  plays,
			})
		}
	}
	sort.Slice(champions.MostPlaysInOneDay, func(i, j int) bool {
		a, b := champions.MostPlaysInOneDay[i], champions.MostPlaysInOneDay[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Track != b.Track {
			return a.Track < b.Track
		}
		return a.Artist < b.Artist
	})

	var heavy []TrackPlaysRow
	for key, a := range totals {
		if a.plays >= championPlaysFloor {
			heavy = append(heavy, TrackPlaysRow{Track: key.Track, Artist: key.Artist, Plays: a.plays})
		}
	}
	sort.Slice(heavy, func(i, j int) bool {
		if heavy[i].Plays != heavy[j].Plays {
			return heavy[i].Plays > heavy[j].Plays
		}
		if heavy[i].Track != heavy[j].Track {
			return heavy[i].Track < heavy[j].Track
		}
		return heavy[i].Artist < heavy[j].Artist
	})
	if len(heavy) > championPlaysCap {
		heavy = heavy[:championPlaysCap]
	}
	champions.Played100Plus = heavy

	return champions
}

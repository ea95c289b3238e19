package analysis

import (
	"sort"
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// LoopConfig holds the obsession-detection minima.
type LoopConfig struct {
	MinDailyPlays   int
	MinMonthlyPlays int
	MinStreakWeeks  int
}

// DefaultLoopConfig returns the standard minima: 50 plays in a day, 100 in a
// month, 3 consecutive weeks.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{MinDailyPlays: 50, MinMonthlyPlays: 100, MinStreakWeeks: 3}
}

// DayPlays counts plays of one track on one UTC day.
type DayPlays struct {
	Date  string `yaml:"date"`
	Plays int    `yaml:"plays"`
}

// MonthPlays counts plays of one track in one UTC month.
type MonthPlays struct {
	Month string `yaml:"month"`
	Plays int    `yaml:"plays"`
}

// WeekStreak is a run of consecutive weeks each containing at least one
// play. Start and End are the Mondays of the first and last week.
type WeekStreak struct {
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	Weeks      int    `yaml:"weeks"`
	TotalPlays int    `yaml:"total_plays"`
}

// Obsession describes a track looped hard enough to trip at least one of
// the minima. Score ranks obsessions against each other: three points per
// heavy day, five per heavy month, one per streak week.
type Obsession struct {
	Track       string       `yaml:"track"`
	Artist      string       `yaml:"artist"`
	HeavyDays   []DayPlays   `yaml:"heavy_days,omitempty"`
	HeavyMonths []MonthPlays `yaml:"heavy_months,omitempty"`
	WeekStreaks []WeekStreak `yaml:"week_streaks,omitempty"`
	Score       int          `yaml:"score"`
}

// ComputeObsessiveLoops finds tracks with heavy single days, heavy months,
// or long unbroken weekly runs, sorted by score descending.
func ComputeObsessiveLoops(events []history.PlayEvent, cfg LoopConfig) []Obsession {
	type perTrack struct {
		days   map[string]int
		months map[string]int
		weeks  map[time.Time]int
	}

	byTrack := make(map[trackKey]*perTrack)
	for _, e := range events {
		if e.TrackName == "" || !e.HasTimestamp() {
			continue
		}
		artist := e.ArtistName
		if artist == "" {
			artist = "Unknown Artist"
		}
		key := trackKey{Track: e.TrackName, Artist: artist}
		agg := byTrack[key]
		if agg == nil {
			agg = &perTrack{
				days:   make(map[string]int),
				months: make(map[string]int),
				weeks:  make(map[time.Time]int),
			}
			byTrack[key] = agg
		}
		ts := e.Timestamp.UTC()
		agg.days[dayOf(ts)]++
		agg.months[ts.Format("2006-01")]++
		agg.weeks[weekStart(ts)]++
	}

	var results []Obsession
	for key, agg := range byTrack {
		o := Obsession{Track: key.Track, Artist: key.Artist}

		for day, plays := range agg.days {
			if plays >= cfg.MinDailyPlays {
				o.HeavyDays = append(o.HeavyDays, DayPlays{Date: day, Plays: plays})
			}
		}
		sort.Slice(o.HeavyDays, func(i, j int) bool { return o.HeavyDays[i].Date < o.HeavyDays[j].Date })

		for month, plays := range agg.months {
			if plays >= cfg.MinMonthlyPlays {
				o.HeavyMonths = append(o.HeavyMonths, MonthPlays{Month: month, Plays: plays})
			}
		}
		sort.Slice(o.HeavyMonths, func(i, j int) bool { return o.HeavyMonths[i].Month < o.HeavyMonths[j].Month })

		streakWeeks := 0
		for _, streak := range weekStreaks(agg.weeks, cfg.MinStreakWeeks) {
			o.WeekStreaks = append(o.WeekStreaks, streak)
			streakWeeks += streak.Weeks
		}

		if len(o.HeavyDays) == 0 && len(o.HeavyMonths) == 0 && len(o.WeekStreaks) == 0 {
			continue
		}
		o.Score = len(o.HeavyDays)*3 + len(o.HeavyMonths)*5 + streakWeeks
		results = append(results, o)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Track != results[j].Track {
			return results[i].Track < results[j].Track
		}
		return results[i].Artist < results[j].Artist
	})
	return results
}

// weekStart truncates a time to the Monday of its week, UTC midnight.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0
	return day.AddDate(0, 0, -offset)
}

// weekStreaks walks the played weeks in order and collects runs of
// back-to-back weeks at least minWeeks long.
func weekStreaks(weeks map[time.Time]int, minWeeks int) []WeekStreak {
	if len(weeks) == 0 {
		return nil
	}

	mondays := make([]time.Time, 0, len(weeks))
	for monday := range weeks {
		mondays = append(mondays, monday)
	}
	sort.Slice(mondays, func(i, j int) bool { return mondays[i].Before(mondays[j]) })

	var streaks []WeekStreak
	start := mondays[0]
	prev := mondays[0]
	total := weeks[mondays[0]]
	length := 1

	flush := func() {
		if length >= minWeeks {
			streaks = append(streaks, WeekStreak{
				Start:      start.Format(dayFormat),
				End:        prev.Format(dayFormat),
				Weeks:      length,
				TotalPlays: total,
			})
		}
	}

	for _, monday := range mondays[1:] {
		if monday.Equal(prev.AddDate(0, 0, 7)) {
			length++
			total += weeks[monday]
		} else {
			flush()
			start = monday
			total = weeks[monday]
			length = 1
		}
		prev = monday
	}
	flush()

	return streaks
}

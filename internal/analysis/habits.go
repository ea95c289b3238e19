package analysis

import (
	"sort"
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// HourStat is total listening for one UTC hour of day (0-23).
type HourStat struct {
	Hour  int     `yaml:"hour"`
	Hours float64 `yaml:"hours"`
}

// WeekdayStat is total listening for one UTC weekday.
type WeekdayStat struct {
	Weekday string  `yaml:"weekday"`
	Hours   float64 `yaml:"hours"`
}

// ListeningHabits buckets total duration by hour of day and by weekday.
// Only buckets with at least one event appear; weekdays keep a fixed
// Monday-first order. Zero-filling gaps is the renderer's choice.
type ListeningHabits struct {
	ByHour    []HourStat    `yaml:"by_hour"`
	ByWeekday []WeekdayStat `yaml:"by_weekday"`
}

var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ComputeListeningHabits buckets duration by UTC hour-of-day and weekday.
func ComputeListeningHabits(events []history.PlayEvent) ListeningHabits {
	hourMs := make(map[int]int64)
	weekdayMs := make(map[time.Weekday]int64)

	for _, e := range events {
		if !e.HasTimestamp() {
			continue
		}
		ts := e.Timestamp.UTC()
		hourMs[ts.Hour()] += e.MsPlayed
		weekdayMs[ts.Weekday()] += e.MsPlayed
	}

	var habits ListeningHabits

	hours := make([]int, 0, len(hourMs))
	for hour := range hourMs {
		hours = append(hours, hour)
	}
	sort.Ints(hours)
	for _, hour := range hours {
		habits.ByHour = append(habits.ByHour, HourStat{Hour: hour, Hours: msToHours(hourMs[hour])})
	}

	for _, day := range weekdayOrder {
		if ms, ok := weekdayMs[day]; ok {
			habits.ByWeekday = append(habits.ByWeekday, WeekdayStat{Weekday: day.String(), Hours: msToHours(ms)})
		}
	}

	return habits
}

package analysis

import (
	"sort"
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// DayStat is total listening for one UTC calendar day.
type DayStat struct {
	Date  string  `yaml:"date"`
	Hours float64 `yaml:"hours"`
}

// ComputeListeningByDay sums duration per UTC calendar day across all events,
// music and podcast alike. Days without events do not appear; see YearDays
// for the dense form the heatmap wants.
func ComputeListeningByDay(events []history.PlayEvent) []DayStat {
	byDay := make(map[string]int64)
	for _, e := range events {
		if !e.HasTimestamp() {
			continue
		}
		byDay[dayOf(e.Timestamp)] += e.MsPlayed
	}

	days := make([]DayStat, 0, len(byDay))
	for day, ms := range byDay {
		days = append(days, DayStat{Date: day, Hours: msToHours(ms)})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// YearDays expands a day series into a dense list covering every calendar
// day of the given year, zero-filling days with no listening.
func YearDays(days []DayStat, year int) []DayStat {
	known := make(map[string]float64, len(days))
	for _, d := range days {
		known[d.Date] = d.Hours
	}

	var out []DayStat
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		key := d.Format(dayFormat)
		out = append(out, DayStat{Date: key, Hours: known[key]})
	}
	return out
}

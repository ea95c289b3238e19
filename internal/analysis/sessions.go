package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// DefaultSessionGap is the maximum inactivity between two events that still
// belong to the same session.
const DefaultSessionGap = 30 * time.Minute

// Session is a contiguous run of events bounded by the timestamps of its
// first and last event. A single-event session has zero duration.
type Session struct {
	Start time.Time
	End   time.Time
}

// SessionStats summarizes the segmented sessions. Count == 0 means no
// timestamped events existed and the remaining fields are meaningless.
type SessionStats struct {
	Count          int     `yaml:"count"`
	AvgMinutes     int     `yaml:"avg_minutes"`
	LongestMinutes int     `yaml:"longest_minutes"`
	PerDayAvg      float64 `yaml:"per_day_avg"`
}

// SegmentSessions sorts timestamped events ascending and clusters them with
// a single forward scan: an event within gap of the current session's end
// extends it, anything further starts a new session. The final open session
// is always emitted. Events without timestamps are discarded.
func SegmentSessions(events []history.PlayEvent, gap time.Duration) []Session {
	times := make([]time.Time, 0, len(events))
	for _, e := range events {
		if e.HasTimestamp() {
			times = append(times, e.Timestamp)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	var sessions []Session
	var current *Session
	for _, ts := range times {
		if current == nil {
			current = &Session{Start: ts, End: ts}
			continue
		}
		if ts.Sub(current.End) <= gap {
			current.End = ts
			continue
		}
		sessions = append(sessions, *current)
		current = &Session{Start: ts, End: ts}
	}
	if current != nil {
		sessions = append(sessions, *current)
	}
	return sessions
}

// ComputeSessionStats segments the events and derives the average and
// longest session length in minutes plus the sessions-per-active-day
// average (rounded to two decimals).
func ComputeSessionStats(events []history.PlayEvent, gap time.Duration) SessionStats {
	sessions := SegmentSessions(events, gap)
	if len(sessions) == 0 {
		return SessionStats{}
	}

	var totalMinutes, longest float64
	daySessions := make(map[string]int)
	for _, s := range sessions {
		minutes := s.End.Sub(s.Start).Minutes()
		totalMinutes += minutes
		if minutes > longest {
			longest = minutes
		}
		daySessions[dayOf(s.Start)]++
	}

	perDay := float64(len(sessions)) / float64(len(daySessions))

	return SessionStats{
		Count:          len(sessions),
		AvgMinutes:     int(math.Round(totalMinutes / float64(len(sessions)))),
		LongestMinutes: int(math.Round(longest)),
		PerDayAvg:      math.Round(perDay*100) / 100,
	}
}

package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// milestoneHoursTarget is the cumulative listening total whose crossing year
// gets its own milestone.
const milestoneHoursTarget = 10000

// Milestone is a single notable fact about the history. TS, when set, is
// either an RFC 3339 instant or a calendar day, whichever the milestone is
// about.
type Milestone struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	TS    string `yaml:"ts,omitempty"`
}

// ComputeMilestones derives the first stream, the year cumulative listening
// crossed 10k hours (if ever), the most intense calendar day and the longest
// run of consecutive days with any listening.
func ComputeMilestones(stats BasicStats, events []history.PlayEvent) []Milestone {
	if stats.TotalStreams == 0 {
		return nil
	}

	var milestones []Milestone

	if !stats.FirstTS.IsZero() {
		milestones = append(milestones, Milestone{
			ID:    "first-stream",
			Label: "First stream",
			Value: "Started listening",
			TS:    stats.FirstTS.UTC().Format(time.RFC3339),
		})
	}

	var cumulative float64
	for _, y := range stats.ListeningByYear {
		cumulative += y.Hours
		if cumulative >= milestoneHoursTarget {
			milestones = append(milestones, Milestone{
				ID:    "10k-hours",
				Label: "10k hours reached",
				Value: fmt.Sprintf("%d", y.Year),
			})
			break
		}
	}

	dayMs := make(map[string]int64)
	activeDays := make(map[string]bool)
	for _, e := range events {
		if !e.HasTimestamp() {
			continue
		}
		day := dayOf(e.Timestamp)
		dayMs[day] += e.MsPlayed
		if e.MsPlayed > 0 {
			activeDays[day] = true
		}
	}

	// Most intense day; on equal hours the earliest day wins.
	days := make([]string, 0, len(dayMs))
	for day := range dayMs {
		days = append(days, day)
	}
	sort.Strings(days)
	var bestDay string
	bestHours := -1.0
	for _, day := range days {
		if hrs := msToHours(dayMs[day]); hrs > bestHours {
			bestHours = hrs
			bestDay = day
		}
	}
	if bestDay != "" {
		milestones = append(milestones, Milestone{
			ID:    "most-intense-day",
			Label: "Most intense day",
			Value: fmt.Sprintf("%.1f h", bestHours),
			TS:    bestDay,
		})
	}

	if streak := longestDayStreak(activeDays); streak > 0 {
		milestones = append(milestones, Milestone{
			ID:    "longest-streak",
			Label: "Longest streak",
			Value: fmt.Sprintf("%d days", streak),
		})
	}

	return milestones
}

// longestDayStreak finds the longest run of consecutive UTC calendar days;
// a gap of more than one day resets the run.
func longestDayStreak(activeDays map[string]bool) int {
	days := make([]string, 0, len(activeDays))
	for day := range activeDays {
		days = append(days, day)
	}
	sort.Strings(days)

	var longest, current int
	var prev time.Time
	for _, day := range days {
		curr, err := time.Parse(dayFormat, day)
		if err != nil {
			continue
		}
		if !prev.IsZero() && curr.Sub(prev) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = curr
	}
	return longest
}

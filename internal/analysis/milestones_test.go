package analysis

import (
	"testing"

	"github.com/akeller/spotify-history-tools/internal/history"
)

func findMilestone(milestones []Milestone, id string) *Milestone {
	for i := range milestones {
		if milestones[i].ID == id {
			return &milestones[i]
		}
	}
	return nil
}

func TestComputeMilestones_firstStream(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2020-02-01T10:00:00Z", hourMs, "Track B", "Artist A"),
		musicPlay(t, "2019-06-01T08:30:00Z", hourMs, "Track A", "Artist A"),
	}
	stats := ComputeBasicStats(events)

	milestones := ComputeMilestones(stats, events)
	first := findMilestone(milestones, "first-stream")
	if first == nil {
		t.Fatalf("Expected a first-stream milestone, got %v", milestones)
	}
	if first.TS != "2019-06-01T08:30:00Z" {
		t.Errorf("Expected the earliest timestamp, got %q", first.TS)
	}
}

func TestComputeMilestones_tenThousandHours(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2019-06-01T10:00:00Z", 6000*hourMs, "Track A", "Artist A"),
		musicPlay(t, "2020-06-01T10:00:00Z", 5000*hourMs, "Track A", "Artist A"),
	}
	stats := ComputeBasicStats(events)

	milestones := ComputeMilestones(stats, events)
	tenK := findMilestone(milestones, "10k-hours")
	if tenK == nil {
		t.Fatalf("Expected the 10k-hours milestone, got %v", milestones)
	}
	if tenK.Value != "2020" {
		t.Errorf("Expected the crossing year 2020, got %q", tenK.Value)
	}
}

func TestComputeMilestones_mostIntenseDayEarliestWins(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2020-05-10T10:00:00Z", 3*hourMs, "Track A", "Artist A"),
		musicPlay(t, "2020-05-02T10:00:00Z", 3*hourMs, "Track A", "Artist A"),
	}
	stats := ComputeBasicStats(events)

	milestones := ComputeMilestones(stats, events)
	intense := findMilestone(milestones, "most-intense-day")
	if intense == nil {
		t.Fatalf("Expected a most-intense-day milestone, got %v", milestones)
	}
	if intense.TS != "2020-05-02" {
		t.Errorf("Expected the earlier of two tied days, got %q", intense.TS)
	}
	if intense.Value != "3.0 h" {
		t.Errorf("Expected value %q, got %q", "3.0 h", intense.Value)
	}
}

func TestComputeMilestones_longestStreak(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2020-05-01T10:00:00Z", hourMs, "Track A", "Artist A"),
		musicPlay(t, "2020-05-02T10:00:00Z", hourMs, "Track A", "Artist A"),
		musicPlay(t, "2020-05-03T10:00:00Z", hourMs, "Track A", "Artist A"),
		// Gap, then a lone day.
		musicPlay(t, "2020-05-10T10:00:00Z", hourMs, "Track A", "Artist A"),
	}
	stats := ComputeBasicStats(events)

	milestones := ComputeMilestones(stats, events)
	streak := findMilestone(milestones, "longest-streak")
	if streak == nil {
		t.Fatalf("Expected a longest-streak milestone, got %v", milestones)
	}
	if streak.Value != "3 days" {
		t.Errorf("Expected a 3 day streak, got %q", streak.Value)
	}
}

func TestComputeMilestones_empty(t *testing.T) {
	if milestones := ComputeMilestones(BasicStats{}, nil); milestones != nil {
		t.Fatalf("Expected no milestones for empty input, got %v", milestones)
	}
}

package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akeller/spotify-history-tools/internal/history"
)

func TestComputeListeningHabits(t *testing.T) {
	events := []history.PlayEvent{
		// 2022-03-01 is a Tuesday.
		musicPlay(t, "2022-03-01T22:00:00Z", 2*hourMs, "Track A", "Artist A"),
		musicPlay(t, "2022-03-01T22:30:00Z", hourMs, "Track B", "Artist A"),
		// 2022-03-05 is a Saturday.
		musicPlay(t, "2022-03-05T09:00:00Z", hourMs, "Track C", "Artist A"),
		musicPlay(t, "", hourMs, "Track D", "Artist A"),
	}

	habits := ComputeListeningHabits(events)

	expectedHours := []HourStat{
		{Hour: 9, Hours: 1},
		{Hour: 22, Hours: 3},
	}
	if diff := cmp.Diff(expectedHours, habits.ByHour); diff != "" {
		t.Errorf("Hour buckets mismatch (-want +got):\n%s", diff)
	}

	// Weekday order is fixed Monday-first; only active days appear.
	expectedWeekdays := []WeekdayStat{
		{Weekday: "Tuesday", Hours: 3},
		{Weekday: "Saturday", Hours: 1},
	}
	if diff := cmp.Diff(expectedWeekdays, habits.ByWeekday); diff != "" {
		t.Errorf("Weekday buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeListeningHabits_empty(t *testing.T) {
	habits := ComputeListeningHabits(nil)
	if len(habits.ByHour) != 0 || len(habits.ByWeekday) != 0 {
		t.Fatalf("Expected empty habits for empty input, got %+v", habits)
	}
}

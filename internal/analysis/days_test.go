package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akeller/spotify-history-tools/internal/history"
)

func TestComputeListeningByDay(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2022-03-01T10:00:00Z", hourMs, "Track A", "Artist A"),
		musicPlay(t, "2022-03-01T20:00:00Z", hourMs, "Track B", "Artist A"),
		podcastPlay(t, "2022-03-03T10:00:00Z", hourMs, "Show A", "Episode 1"),
		musicPlay(t, "", hourMs, "Track C", "Artist A"),
	}

	days := ComputeListeningByDay(events)

	expected := []DayStat{
		{Date: "2022-03-01", Hours: 2},
		{Date: "2022-03-03", Hours: 1},
	}
	if diff := cmp.Diff(expected, days); diff != "" {
		t.Errorf("Day series mismatch (-want +got):\n%s", diff)
	}
}

func TestYearDays_dense(t *testing.T) {
	days := []DayStat{
		{Date: "2022-03-01", Hours: 2},
		{Date: "2021-12-31", Hours: 5},
	}

	dense := YearDays(days, 2022)
	if len(dense) != 365 {
		t.Fatalf("Expected 365 days for 2022, got %d", len(dense))
	}
	if dense[0].Date != "2022-01-01" || dense[0].Hours != 0 {
		t.Errorf("Expected a zero-filled January 1st, got %+v", dense[0])
	}
	if dense[59].Date != "2022-03-01" || dense[59].Hours != 2 {
		t.Errorf("Expected March 1st to carry 2 hours, got %+v", dense[59])
	}
	if dense[len(dense)-1].Date != "2022-12-31" {
		t.Errorf("Expected the series to end on December 31st, got %q", dense[len(dense)-1].Date)
	}
}

func TestYearDays_leapYear(t *testing.T) {
	dense := YearDays(nil, 2024)
	if len(dense) != 366 {
		t.Fatalf("Expected 366 days for 2024, got %d", len(dense))
	}
}

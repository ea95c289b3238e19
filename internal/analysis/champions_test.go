package analysis

import (
	"fmt"
	"testing"

	"github.com/akeller/spotify-history-tools/internal/history"
)

func TestComputeRepeatChampions_highestHours(t *testing.T) {
	events := []history.PlayEvent{
		musicPlay(t, "2022-03-01T10:00:00Z", 5*hourMs, "Anthem", "Artist A"),
		musicPlay(t, "2022-03-01T16:00:00Z", hourMs, "Filler", "Artist A"),
	}

	champions := ComputeRepeatChampions(events)
	if len(champions.HighestHours) != 2 {
		t.Fatalf("Expected 2 hour rankings, got %v", champions.HighestHours)
	}
	if champions.HighestHours[0].Track != "Anthem" || champions.HighestHours[0].Hours != 5 {
		t.Errorf("Expected Anthem on top with 5 hours, got %+v", champions.HighestHours[0])
	}
}

func TestComputeRepeatChampions_mostPlaysInOneDayIncludesTies(t *testing.T) {
	var events []history.PlayEvent
	for i := 0; i < 3; i++ {
		events = append(events, musicPlay(t, fmt.Sprintf("2022-03-01T1%d:00:00Z", i), 200000, "Morning Loop", "Artist A"))
		events = append(events, musicPlay(t, fmt.Sprintf("2022-03-02T1%d:00:00Z", i), 200000, "Evening Loop", "Artist B"))
	}

	champions := ComputeRepeatChampions(events)
	if len(champions.MostPlaysInOneDay) != 2 {
		t.Fatalf("Expected both tied tracks, got %v", champions.MostPlaysInOneDay)
	}
	for _, row := range champions.MostPlaysInOneDay {
		if row.Plays != 3 {
			t.Errorf("Expected 3 plays per tied row, got %+v", row)
		}
	}
	// Deterministic order: earlier day first.
	if champions.MostPlaysInOneDay[0].Day != "2022-03-01" {
		t.Errorf("Expected the earlier day first, got %v", champions.MostPlaysInOneDay)
	}
}

func TestComputeRepeatChampions_played100Plus(t *testing.T) {
	var events []history.PlayEvent
	for i := 0; i < 100; i++ {
		events = append(events, musicPlay(t, "2022-03-01T10:00:00Z", 200000, "Heavy Rotation", "Artist A"))
	}
	for i := 0; i < 99; i++ {
		events = append(events, musicPlay(t, "2022-03-01T10:00:00Z", 200000, "Almost There", "Artist A"))
	}

	champions := ComputeRepeatChampions(events)
	if len(champions.Played100Plus) != 1 {
		t.Fatalf("Expected one track past 100 plays, got %v", champions.Played100Plus)
	}
	if champions.Played100Plus[0].Track != "Heavy Rotation" || champions.Played100Plus[0].Plays != 100 {
		t.Errorf("Unexpected heavy rotation row: %+v", champions.Played100Plus[0])
	}
}

func TestComputeRepeatChampions_empty(t *testing.T) {
	champions := ComputeRepeatChampions(nil)
	if len(champions.HighestHours) != 0 || len(champions.MostPlaysInOneDay) != 0 || len(champions.Played100Plus) != 0 {
		t.Fatalf("Expected empty champions, got %+v", champions)
	}
}

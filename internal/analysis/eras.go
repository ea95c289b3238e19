package analysis

import (
	"fmt"

	"github.com/akeller/spotify-history-tools/internal/history"
)

// EraChapter is a heuristically labeled year in the listening history.
type EraChapter struct {
	Year        int    `yaml:"year"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// hoursTolerance absorbs float accumulation noise when comparing a year
// against the series peak or low.
const hoursTolerance = 1e-6

// ComputeEras assigns one chapter per year of the basic stats series. Label
// priority, first match wins: first year, peak year, quietest year, top
// artist changed, big year-over-year jump, big drop, otherwise a generic
// solid year.
func ComputeEras(stats BasicStats, events []history.PlayEvent) []EraChapter {
	byYear := stats.ListeningByYear
	if len(byYear) == 0 {
		return nil
	}

	topArtistByYear := topArtistPerYear(events)

	maxHours := byYear[0].Hours
	minHours := byYear[0].Hours
	for _, y := range byYear {
		if y.Hours > maxHours {
			maxHours = y.Hours
		}
		if y.Hours < minHours {
			minHours = y.Hours
		}
	}

	chapters := make([]EraChapter, 0, len(byYear))
	for i, curr := range byYear {
		label := "A solid year"
		description := "Steady listening without extreme spikes."

		var yoy float64
		var prevTop string
		if i > 0 {
			yoy = curr.Hours - byYear[i-1].Hours
			prevTop = topArtistByYear[byYear[i-1].Year]
		}
		topArtist := topArtistByYear[curr.Year]
		changedTop := i > 0 && topArtist != "" && prevTop != "" && topArtist != prevTop

		switch {
		case i == 0:
			label = "Discovery begins"
			description = "Your Spotify journey kicks off."
		case curr.Hours >= maxHours-hoursTolerance:
			label = "Peak hours year"
			description = "You spent the most time listening this year."
		case curr.Hours <= minHours+hoursTolerance:
			label = "Quietest year"
			description = "Listening dipped to a low ebb."
		case changedTop:
			label = fmt.Sprintf("New obsession: %s", topArtist)
			description = "Your top artist changed—fresh phases and tastes."
		case yoy >= curr.Hours*0.25:
			label = "Big jump in listening"
			description = "A notable rise in total hours."
		case yoy <= -curr.Hours*0.25:
			label = "Big drop in listening"
			description = "A notable fall in total hours."
		}

		chapters = append(chapters, EraChapter{Year: curr.Year, Label: label, Description: description})
	}

	return chapters
}

// topArtistPerYear picks each year's most-listened artist by summed
// duration. Ties break by artist name ascending.
func topArtistPerYear(events []history.PlayEvent) map[int]string {
	msByYearArtist := make(map[int]map[string]int64)
	for _, e := range events {
		if e.ArtistName == "" || !e.HasTimestamp() {
			continue
		}
		year := yearOf(e)
		inner := msByYearArtist[year]
		if inner == nil {
			inner = make(map[string]int64)
			msByYearArtist[year] = inner
		}
		inner[e.ArtistName] += e.MsPlayed
	}

	top := make(map[int]string, len(msByYearArtist))
	for year, inner := range msByYearArtist {
		var bestArtist string
		bestMs := int64(-1)
		for artist, ms := range inner {
			if ms > bestMs || (ms == bestMs && artist < bestArtist) {
				bestMs = ms
				bestArtist = artist
			}
		}
		top[year] = bestArtist
	}
	return top
}

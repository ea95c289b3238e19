package analysis

import (
	"fmt"
	"time"
)

// Personality thresholds. A ratio fires its trait independently of the
// others; if none fires a single balanced trait stands in.
const (
	nightRatioThreshold     = 0.6
	morningRatioThreshold   = 0.6
	weekPartRatioThreshold  = 0.55
	topArtistShareThreshold = 0.3
	artistPerStreamMinimum  = 0.2
)

// PersonalityTrait is one descriptive habit label.
type PersonalityTrait struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// PersonalitySummary titles the listener from their strongest traits.
type PersonalitySummary struct {
	Title   string             `yaml:"title"`
	Tagline string             `yaml:"tagline"`
	Traits  []PersonalityTrait `yaml:"traits"`
}

// ComputePersonality maps habit ratios and ranking concentration into
// descriptive traits. Returns nil when the dataset has no hours or no
// streams at all.
func ComputePersonality(stats BasicStats, habits ListeningHabits, topArtists []TopArtistRow) *PersonalitySummary {
	if stats.TotalHours <= 0 || stats.TotalStreams <= 0 {
		return nil
	}

	var traits []PersonalityTrait

	var nightHours, morningHours float64
	for _, row := range habits.ByHour {
		if row.Hour >= 20 || row.Hour <= 3 {
			nightHours += row.Hours
		}
		if row.Hour >= 5 && row.Hour <= 11 {
			morningHours += row.Hours
		}
	}

	if nightHours/stats.TotalHours >= nightRatioThreshold {
		traits = append(traits, PersonalityTrait{
			ID:          "night-owl",
			Label:       "Night Owl",
			Description: "Most of your listening happens late in the evening and after dark.",
		})
	} else if morningHours/stats.TotalHours >= morningRatioThreshold {
		traits = append(traits, PersonalityTrait{
			ID:          "early-bird",
			Label:       "Early Bird",
			Description: "You tend to listen in the mornings more than any other time.",
		})
	}

	var weekdayHours, weekendHours float64
	for _, row := range habits.ByWeekday {
		switch row.Weekday {
		case time.Saturday.String(), time.Sunday.String():
			weekendHours += row.Hours
		default:
			weekdayHours += row.Hours
		}
	}
	weekTotal := weekdayHours + weekendHours
	if weekTotal > 0 {
		if weekendHours/weekTotal >= weekPartRatioThreshold {
			traits = append(traits, PersonalityTrait{
				ID:          "weekend-warrior",
				Label:       "Weekend Listener",
				Description: "You listen more on weekends than during the work week.",
			})
		} else if weekdayHours/weekTotal >= weekPartRatioThreshold {
			traits = append(traits, PersonalityTrait{
				ID:          "weekday-listener",
				Label:       "Workday Listener",
				Description: "Most of your listening happens on weekdays—music keeps you company during the grind.",
			})
		}
	}

	if len(topArtists) > 0 && topArtists[0].Hours/stats.TotalHours >= topArtistShareThreshold {
		traits = append(traits, PersonalityTrait{
			ID:          "loyalist",
			Label:       "The Loyalist",
			Description: "A big share of your time goes to your very favorite artists.",
		})
	}

	if float64(stats.DistinctArtists)/float64(stats.TotalStreams) >= artistPerStreamMinimum {
		traits = append(traits, PersonalityTrait{
			ID:          "explorer",
			Label:       "The Explorer",
			Description: "You hop between lots of different artists instead of looping the same few.",
		})
	}

	if len(traits) == 0 {
		traits = append(traits, PersonalityTrait{
			ID:          "balanced",
			Label:       "The All-Rounder",
			Description: "Your listening is pretty balanced—no extreme habits stand out.",
		})
	}

	title := traits[0].Label
	if len(traits) > 1 {
		title = fmt.Sprintf("%s · %s", traits[0].Label, traits[1].Label)
	}

	return &PersonalitySummary{
		Title:   title,
		Tagline: "A quick snapshot of how you tend to use Spotify over time.",
		Traits:  traits,
	}
}

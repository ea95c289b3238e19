package analysis

import "github.com/akeller/spotify-history-tools/internal/history"

// BadgeConfig holds the badge thresholds. They are heuristics, not facts
// about listeners, so they stay tunable.
type BadgeConfig struct {
	// RepeatPlays is the single-track play count earning Repeat Offender.
	RepeatPlays int
	// Countries is the distinct country-code count earning Country Hopper.
	Countries int
	// Platforms is the distinct platform count earning Device Juggler.
	Platforms int
}

// DefaultBadgeConfig returns the standard thresholds.
func DefaultBadgeConfig() BadgeConfig {
	return BadgeConfig{RepeatPlays: 500, Countries: 10, Platforms: 6}
}

// Badge is an earned achievement. The three badges are evaluated
// independently; a dataset can earn none, some, or all of them.
type Badge struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// ComputeBadges evaluates the badge heuristics over the full event set.
func ComputeBadges(events []history.PlayEvent, cfg BadgeConfig) []Badge {
	if len(events) == 0 {
		return nil
	}

	trackPlays := make(map[trackKey]int)
	countries := make(map[string]bool)
	platforms := make(map[string]bool)

	for _, e := range events {
		if e.TrackName != "" && e.ArtistName != "" {
			trackPlays[trackKey{Track: e.TrackName, Artist: e.ArtistName}]++
		}
		if e.ConnCountry != "" {
			countries[e.ConnCountry] = true
		}
		if e.Platform != "" {
			platforms[e.Platform] = true
		}
	}

	var badges []Badge

	for _, plays := range trackPlays {
		if plays >= cfg.RepeatPlays {
			badges = append(badges, Badge{
				ID:          "repeat-offender",
				Label:       "Repeat Offender",
				Description: "One track was played an outrageous number of times.",
			})
			break
		}
	}

	if len(countries) >= cfg.Countries {
		badges = append(badges, Badge{
			ID:          "country-hopper",
			Label:       "Country Hopper",
			Description: "You listened across many countries.",
		})
	}

	if len(platforms) >= cfg.Platforms {
		badges = append(badges, Badge{
			ID:          "device-juggler",
			Label:       "Device Juggler",
			Description: "You've used lots of different platforms to listen.",
		})
	}

	return badges
}

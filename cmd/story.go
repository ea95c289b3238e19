package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/akeller/spotify-history-tools/internal/analysis"
)

var (
	ghostCutoffYears    int
	climbThresholdHours float64
	badgeRepeatPlays    int
	badgeCountries      int
	badgePlatforms      int
	loopDailyPlays      int
	loopMonthlyPlays    int
	loopStreakWeeks     int
)

// StoryReport is the full narrative report, printed as YAML.
type StoryReport struct {
	Eras       []analysis.EraChapter       `yaml:"eras"`
	FirstPlay  *analysis.FirstPlay         `yaml:"first_play,omitempty"`
	Milestones []analysis.Milestone        `yaml:"milestones"`
	Badges     []analysis.Badge            `yaml:"badges"`
	Ghosted    []analysis.GhostedArtistRow `yaml:"ghosted_artists"`
	Climbers   []analysis.ClimberRow       `yaml:"climbers"`
	Frozen     []analysis.FrozenTrackRow   `yaml:"frozen_tracks"`
	Champions  analysis.RepeatChampions    `yaml:"repeat_champions"`
	Loops      []analysis.Obsession        `yaml:"obsessive_loops"`
}

var storyCmd = &cobra.Command{
	Use:   "story [from] [to (optional)]",
	Short: "Generates a narrative report of your listening history",
	Long: `Turns the history into a YAML story: yearly eras, the first play,
milestones, badges, ghosted artists, climbers, frozen tracks, repeat
champions, and obsessive loops.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printStory(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(storyCmd)
	storyCmd.Flags().IntVar(&ghostCutoffYears, "ghost-cutoff-years", 2, "Years of silence before an artist counts as ghosted")
	storyCmd.Flags().Float64Var(&climbThresholdHours, "climb-threshold-hours", analysis.DefaultClimbThresholdHours, "Year-over-year hours gain that makes an artist a climber")
	storyCmd.Flags().IntVar(&badgeRepeatPlays, "badge-repeat-plays", 0, "Plays of one track needed for the repeat-offender badge")
	storyCmd.Flags().IntVar(&badgeCountries, "badge-countries", 0, "Countries needed for the country-hopper badge")
	storyCmd.Flags().IntVar(&badgePlatforms, "badge-platforms", 0, "Platforms needed for the device-juggler badge")
	storyCmd.Flags().IntVar(&loopDailyPlays, "loop-daily-plays", 0, "Plays of one track in a day that count as a heavy day")
	storyCmd.Flags().IntVar(&loopMonthlyPlays, "loop-monthly-plays", 0, "Plays of one track in a month that count as a heavy month")
	storyCmd.Flags().IntVar(&loopStreakWeeks, "loop-streak-weeks", 0, "Consecutive weeks of plays that count as a streak")
}

func storyBadgeConfig() analysis.BadgeConfig {
	cfg := analysis.DefaultBadgeConfig()
	if badgeRepeatPlays > 0 {
		cfg.RepeatPlays = badgeRepeatPlays
	}
	if badgeCountries > 0 {
		cfg.Countries = badgeCountries
	}
	if badgePlatforms > 0 {
		cfg.Platforms = badgePlatforms
	}
	return cfg
}

func storyLoopConfig() analysis.LoopConfig {
	cfg := analysis.DefaultLoopConfig()
	if loopDailyPlays > 0 {
		cfg.MinDailyPlays = loopDailyPlays
	}
	if loopMonthlyPlays > 0 {
		cfg.MinMonthlyPlays = loopMonthlyPlays
	}
	if loopStreakWeeks > 0 {
		cfg.MinStreakWeeks = loopStreakWeeks
	}
	return cfg
}

func printStory(args []string) error {
	events, err := loadEvents(args)
	if err != nil {
		return err
	}

	stats := analysis.ComputeBasicStats(events)
	report := StoryReport{
		Eras:       analysis.ComputeEras(stats, events),
		FirstPlay:  analysis.ComputeFirstPlay(events),
		Milestones: analysis.ComputeMilestones(stats, events),
		Badges:     analysis.ComputeBadges(events, storyBadgeConfig()),
		Ghosted:    analysis.ComputeGhostedArtists(events, ghostCutoffYears),
		Climbers:   analysis.ComputeClimbers(events, climbThresholdHours),
		Frozen:     analysis.ComputeFrozenTracks(events),
		Champions:  analysis.ComputeRepeatChampions(events),
		Loops:      analysis.ComputeObsessiveLoops(events, storyLoopConfig()),
	}

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	err = encoder.Encode(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}

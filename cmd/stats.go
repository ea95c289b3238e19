package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/akeller/spotify-history-tools/internal/analysis"
)

var statsCmd = &cobra.Command{
	Use:   "stats [from] [to (optional)]",
	Short: "Prints overall listening statistics",
	Long: `Prints stream counts, total listening time, distinct artist and track
counts, the first and last stream, and a per-year breakdown. With no date
arguments the whole history is covered.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printStats(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printStats(out io.Writer, args []string) error {
	events, err := loadEvents(args)
	if err != nil {
		return err
	}

	stats := analysis.ComputeBasicStats(events)
	split := analysis.ComputeMusicPodcastSplit(events)

	fmt.Fprintf(out, "Total streams: %d\n", stats.TotalStreams)
	fmt.Fprintf(out, "Total listening: %.1f hours (%.1f days)\n", stats.TotalHours, stats.TotalDays)
	fmt.Fprintf(out, "Distinct artists: %d\n", stats.DistinctArtists)
	fmt.Fprintf(out, "Distinct tracks: %d\n", stats.DistinctTracks)
	if !stats.FirstTS.IsZero() {
		fmt.Fprintf(out, "First stream: %s\n", stats.FirstTS.Format("2006-01-02"))
		fmt.Fprintf(out, "Last stream: %s\n", stats.LastTS.Format("2006-01-02"))
	}
	fmt.Fprintf(out, "Music: %.1f hours, podcasts: %.1f hours (%.0f%% podcast)\n\n",
		split.MusicHours, split.PodcastHours, split.PodcastRatio*100)

	if len(stats.ListeningByYear) > 0 {
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Year", "Hours", "Streams"})
		for _, y := range stats.ListeningByYear {
			table.Append([]string{
				fmt.Sprintf("%d", y.Year),
				fmt.Sprintf("%.1f", y.Hours),
				fmt.Sprintf("%d", y.Streams),
			})
		}
		table.Render()
	}

	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akeller/spotify-history-tools/internal/analysis"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [from] [to (optional)]",
	Short: "Summarizes listening sessions",
	Long: `Groups consecutive streams into sessions. A new session starts when
more than the configured gap (--gap-minutes) passes between streams.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printSessions(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func printSessions(out io.Writer, args []string) error {
	events, err := loadEvents(args)
	if err != nil {
		return err
	}

	gap := time.Duration(viper.GetInt("gap-minutes")) * time.Minute
	if gap <= 0 {
		gap = analysis.DefaultSessionGap
	}

	stats := analysis.ComputeSessionStats(events, gap)
	if stats.Count == 0 {
		fmt.Fprintln(out, "No sessions found.")
		return nil
	}

	fmt.Fprintf(out, "Sessions: %d\n", stats.Count)
	fmt.Fprintf(out, "Average length: %d minutes\n", stats.AvgMinutes)
	fmt.Fprintf(out, "Longest: %d minutes\n", stats.LongestMinutes)
	fmt.Fprintf(out, "Sessions per active day: %.2f\n", stats.PerDayAvg)

	return nil
}

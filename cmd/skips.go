package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akeller/spotify-history-tools/internal/analysis"
)

var neverSkippedLimit int

var skipsCmd = &cobra.Command{
	Use:   "skips [from] [to (optional)]",
	Short: "Analyzes skipping behavior",
	Long: `Computes the overall skip rate, the average time before a skip,
tracks that were never skipped, and the per-year skip rate. Only music
streams participate. A play counts as skipped when the export's flag says
so, or (with --skip-use-flag=false, or when the flag is absent) when it
ran shorter than --skip-threshold-ms.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printSkips(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(skipsCmd)
	skipsCmd.Flags().IntVar(&neverSkippedLimit, "never-skipped", 10, "Number of never-skipped tracks to show")
}

func skipConfigFromFlags() analysis.SkipConfig {
	cfg := analysis.DefaultSkipConfig()
	cfg.PreferFlag = viper.GetBool("skip-use-flag")
	if t := viper.GetInt64("skip-threshold-ms"); t > 0 {
		cfg.ThresholdMs = t
	}
	return cfg
}

func printSkips(out io.Writer, args []string) error {
	events, err := loadEvents(args)
	if err != nil {
		return err
	}

	skips := analysis.ComputeSkipping(events, skipConfigFromFlags())

	fmt.Fprintf(out, "Skip rate: %.1f%%\n", skips.SkipRate*100)
	if skips.AvgSecondsBeforeSkip != nil {
		fmt.Fprintf(out, "Average time before a skip: %d seconds\n", *skips.AvgSecondsBeforeSkip)
	}
	fmt.Fprintln(out)

	if neverSkippedLimit > 0 && len(skips.NeverSkipped) > 0 {
		rows := skips.NeverSkipped
		if len(rows) > neverSkippedLimit {
			rows = rows[:neverSkippedLimit]
		}
		fmt.Fprintln(out, "## Never skipped")
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Track", "Artist"})
		for _, r := range rows {
			table.Append([]string{r.Track, r.Artist})
		}
		table.Render()
		fmt.Fprintln(out)
	}

	if len(skips.RateByYear) > 0 {
		fmt.Fprintln(out, "## Skip rate by year")
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Year", "Rate"})
		for _, y := range skips.RateByYear {
			table.Append([]string{fmt.Sprintf("%d", y.Year), fmt.Sprintf("%.1f%%", y.Rate*100)})
		}
		table.Render()
	}

	return nil
}

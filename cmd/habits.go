package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/akeller/spotify-history-tools/internal/analysis"
)

var heatmapYear int

var habitsCmd = &cobra.Command{
	Use:   "habits [from] [to (optional)]",
	Short: "Shows when listening happens, by hour of day and day of week",
	Long: `Aggregates listening time into hour-of-day and day-of-week buckets
(UTC). With --heatmap-year it also prints a dense per-day series for that
calendar year, zero-filled, suitable for a contribution-style heatmap.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printHabits(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(habitsCmd)
	habitsCmd.Flags().IntVar(&heatmapYear, "heatmap-year", 0, "Print a zero-filled per-day series for this year")
}

func printHabits(out io.Writer, args []string) error {
	events, err := loadEvents(args)
	if err != nil {
		return err
	}

	habits := analysis.ComputeListeningHabits(events)

	fmt.Fprintln(out, "## Listening by hour of day (UTC)")
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Hour", "Hours"})
	for _, h := range habits.ByHour {
		table.Append([]string{fmt.Sprintf("%02d", h.Hour), fmt.Sprintf("%.1f", h.Hours)})
	}
	table.Render()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "## Listening by day of week")
	table = tablewriter.NewWriter(out)
	table.Header([]string{"Weekday", "Hours"})
	for _, w := range habits.ByWeekday {
		table.Append([]string{w.Weekday, fmt.Sprintf("%.1f", w.Hours)})
	}
	table.Render()

	if heatmapYear > 0 {
		days := analysis.YearDays(analysis.ComputeListeningByDay(events), heatmapYear)
		fmt.Fprintf(out, "\n## Daily listening, %d\n", heatmapYear)
		for _, d := range days {
			fmt.Fprintf(out, "%s %.2f\n", d.Date, d.Hours)
		}
	}

	return nil
}

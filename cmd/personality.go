package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/akeller/spotify-history-tools/internal/analysis"
	"github.com/akeller/spotify-history-tools/internal/report"
)

var (
	aiReport    bool
	reportTone  string
	reportWords int
)

var personalityCmd = &cobra.Command{
	Use:   "personality [from] [to (optional)]",
	Short: "Classifies your listening personality",
	Long: `Derives personality traits (night owl, binge listener, explorer, and
so on) from the aggregate numbers. With --ai it additionally asks OpenAI to
write a short prose report; set openai_api_key in the config file or via
the flag.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printPersonality(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(personalityCmd)
	personalityCmd.Flags().BoolVar(&aiReport, "ai", false, "Also generate a prose report via OpenAI")
	personalityCmd.Flags().StringVar(&reportTone, "tone", "", "Tone for the AI report")
	personalityCmd.Flags().IntVar(&reportWords, "words", 0, "Approximate word count for the AI report")
}

func printPersonality(out io.Writer, args []string) error {
	events, err := loadEvents(args)
	if err != nil {
		return err
	}

	stats := analysis.ComputeBasicStats(events)
	habits := analysis.ComputeListeningHabits(events)
	topArtists := analysis.ComputeTopArtists(events, 10)

	summary := analysis.ComputePersonality(stats, habits, topArtists)
	if summary == nil {
		fmt.Fprintln(out, "Not enough listening history to classify.")
		return nil
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	err = encoder.Encode(summary)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	if aiReport {
		key := viper.GetString("openai_api_key")
		if key == "" {
			return fmt.Errorf("No OpenAI API key set. Use --openai_api_key or the config file.")
		}
		client := openai.NewClient(option.WithAPIKey(key))
		generator := report.NewGenerator(&client, viper.GetString("openai_model"))

		style := report.DefaultStyle()
		if reportTone != "" {
			style.Tone = reportTone
		}
		if reportWords > 0 {
			style.TargetWords = reportWords
		}

		payload := report.Payload{
			Stats:      stats,
			Habits:     habits,
			TopArtists: topArtists,
			TopTracks:  analysis.ComputeTopTracks(events, 10),
		}
		text, err := generator.Generate(context.Background(), payload, style)
		if err != nil {
			return fmt.Errorf("generating report: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, text)
	}

	return nil
}

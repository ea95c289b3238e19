package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akeller/spotify-history-tools/internal/analysis"
	"github.com/akeller/spotify-history-tools/internal/images"
	"github.com/akeller/spotify-history-tools/internal/store"
)

var (
	topArtists   int
	topTracks    int
	topShows     int
	topEpisodes  int
	foreverTop   bool
	artistImages bool
)

var topCmd = &cobra.Command{
	Use:   "top [from] [to (optional)]",
	Short: "Gets the most-listened artists, tracks, shows and episodes",
	Long: `Ranks artists and tracks by listening hours, with play counts as the
tie-break. Podcast shows and episodes are ranked separately. Date strings
look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTop(os.Stdout, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVar(&topArtists, "artists", 10, "Number of top artists to show")
	topCmd.Flags().IntVar(&topTracks, "tracks", 10, "Number of top tracks to show")
	topCmd.Flags().IntVar(&topShows, "shows", 5, "Number of top podcast shows to show")
	topCmd.Flags().IntVar(&topEpisodes, "episodes", 5, "Number of top podcast episodes to show")
	topCmd.Flags().BoolVar(&foreverTop, "forever", false, "Also show the single all-time top artist and track")
	topCmd.Flags().BoolVar(&artistImages, "images", false, "Look up artist images via the Spotify API (needs credentials)")
}

func printTop(out io.Writer, args []string) error {
	events, err := loadEvents(args)
	if err != nil {
		return err
	}

	var imageClient *images.Client
	if artistImages {
		cache, err := store.New(viper.GetString("image_cache"))
		if err != nil {
			return fmt.Errorf("opening image cache: %w", err)
		}
		defer cache.Close()

		imageClient, err = images.New(context.Background(),
			viper.GetString("spotify_client_id"), viper.GetString("spotify_client_secret"), cache)
		if err != nil {
			return fmt.Errorf("creating Spotify client: %w", err)
		}
	}

	if topArtists > 0 {
		rows := analysis.ComputeTopArtists(events, topArtists)
		fmt.Fprintf(out, "## Top %d Artists\n", topArtists)
		table := tablewriter.NewWriter(out)
		if imageClient != nil {
			table.Header([]string{"Artist", "Hours", "Plays", "Image"})
		} else {
			table.Header([]string{"Artist", "Hours", "Plays"})
		}
		for _, r := range rows {
			row := []string{r.Artist, fmt.Sprintf("%.1f", r.Hours), strconv.Itoa(r.Streams)}
			if imageClient != nil {
				url, err := imageClient.ArtistImageURL(context.Background(), r.Artist)
				if err != nil {
					return fmt.Errorf("looking up image for %q: %w", r.Artist, err)
				}
				row = append(row, url)
			}
			table.Append(row)
		}
		table.Render()
		fmt.Fprintln(out)
	}

	if topTracks > 0 {
		rows := analysis.ComputeTopTracks(events, topTracks)
		fmt.Fprintf(out, "## Top %d Tracks\n", topTracks)
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Track", "Artist", "Hours", "Streams"})
		for _, r := range rows {
			table.Append([]string{r.Track, r.Artist, fmt.Sprintf("%.1f", r.Hours), strconv.Itoa(r.Streams)})
		}
		table.Render()
		fmt.Fprintln(out)
	}

	if topShows > 0 {
		rows := analysis.ComputeTopShows(events, topShows)
		if len(rows) > 0 {
			fmt.Fprintf(out, "## Top %d Shows\n", topShows)
			table := tablewriter.NewWriter(out)
			table.Header([]string{"Show", "Hours", "Episodes"})
			for _, r := range rows {
				table.Append([]string{r.Show, fmt.Sprintf("%.1f", r.Hours), strconv.Itoa(r.Episodes)})
			}
			table.Render()
			fmt.Fprintln(out)
		}
	}

	if topEpisodes > 0 {
		rows := analysis.ComputeTopEpisodes(events, topEpisodes)
		if len(rows) > 0 {
			fmt.Fprintf(out, "## Top %d Episodes\n", topEpisodes)
			table := tablewriter.NewWriter(out)
			table.Header([]string{"Episode", "Show", "Hours", "Plays"})
			for _, r := range rows {
				table.Append([]string{r.Episode, r.Show, fmt.Sprintf("%.1f", r.Hours), strconv.Itoa(r.Plays)})
			}
			table.Render()
			fmt.Fprintln(out)
		}
	}

	if foreverTop {
		forever := analysis.ComputeForeverTop(events, 1)
		if len(forever.Artists) > 0 {
			a := forever.Artists[0]
			fmt.Fprintf(out, "All-time artist: %s (%.1f hours, %d streams)\n", a.Artist, a.Hours, a.Streams)
		}
		if len(forever.Tracks) > 0 {
			t := forever.Tracks[0]
			fmt.Fprintf(out, "All-time track: %s - %s (%.1f hours, %d streams)\n", t.Track, t.Artist, t.Hours, t.Streams)
		}
	}

	return nil
}

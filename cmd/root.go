package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-history-tools",
	Short: "Performs analysis on a Spotify streaming history export",
	Long: `Computes listening statistics, rankings, habits, sessions, skip behavior
and storytelling insights from a Spotify extended streaming history export
(the JSON files, or the .zip they arrive in). Nothing is uploaded; all
analysis happens locally.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.spotify-history-tools.yaml)")

	var exportPaths []string
	rootCmd.PersistentFlags().StringSliceVarP(
		&exportPaths, "export", "e", nil, "Export files, directories or .zip archives to analyze")
	viper.BindPFlag("export", rootCmd.PersistentFlags().Lookup("export"))

	var gapMinutes int
	rootCmd.PersistentFlags().IntVar(&gapMinutes, "gap-minutes", 30, "Maximum inactivity (minutes) within a listening session")
	viper.BindPFlag("gap-minutes", rootCmd.PersistentFlags().Lookup("gap-minutes"))

	var skipThresholdMs int64
	rootCmd.PersistentFlags().Int64Var(&skipThresholdMs, "skip-threshold-ms", 30000, "Plays shorter than this count as skipped when no flag is present")
	viper.BindPFlag("skip-threshold-ms", rootCmd.PersistentFlags().Lookup("skip-threshold-ms"))

	var skipUseFlag bool
	rootCmd.PersistentFlags().BoolVar(&skipUseFlag, "skip-use-flag", true, "Prefer the export's explicit skipped flag over the duration heuristic")
	viper.BindPFlag("skip-use-flag", rootCmd.PersistentFlags().Lookup("skip-use-flag"))

	var openaiKey string
	rootCmd.PersistentFlags().StringVar(&openaiKey, "openai_api_key", "", "OpenAI API key (for the AI personality report)")
	viper.BindPFlag("openai_api_key", rootCmd.PersistentFlags().Lookup("openai_api_key"))

	var openaiModel string
	rootCmd.PersistentFlags().StringVar(&openaiModel, "openai_model", "", "OpenAI model for the AI personality report")
	viper.BindPFlag("openai_model", rootCmd.PersistentFlags().Lookup("openai_model"))

	var spotifyID string
	rootCmd.PersistentFlags().StringVar(&spotifyID, "spotify_client_id", "", "Spotify client ID (for artist image lookups)")
	viper.BindPFlag("spotify_client_id", rootCmd.PersistentFlags().Lookup("spotify_client_id"))

	var spotifySecret string
	rootCmd.PersistentFlags().StringVar(&spotifySecret, "spotify_client_secret", "", "Spotify client secret (for artist image lookups)")
	viper.BindPFlag("spotify_client_secret", rootCmd.PersistentFlags().Lookup("spotify_client_secret"))

	var cachePath string
	rootCmd.PersistentFlags().StringVar(&cachePath, "image_cache", "./artist-images.db", "Path to the artist-image cache database")
	viper.BindPFlag("image_cache", rootCmd.PersistentFlags().Lookup("image_cache"))

	var sendgridKey string
	rootCmd.PersistentFlags().StringVar(&sendgridKey, "sendgrid_api_key", "", "SendGrid API key (for the email command)")
	viper.BindPFlag("sendgrid_api_key", rootCmd.PersistentFlags().Lookup("sendgrid_api_key"))

	var from string
	rootCmd.PersistentFlags().StringVar(&from, "from", "", "From email address")
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".spotify-history-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".spotify-history-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

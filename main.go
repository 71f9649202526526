package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/stderr"
)

// options holds the command-line flags.
type options struct {
	configPath string
	search     string
	genre      string
	logLevel   string
	noRestore  bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "harmony",
		Short: "Stream Jamendo tracks from the terminal",
		Long: `Harmony is a terminal music player for the Jamendo catalog.

It opens with popular tracks, lets you search or browse by genre, and
keeps the play queue between sessions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "extra config file, read after the default ones")
	f.StringVarP(&opts.search, "search", "s", "", "start with search results for this query")
	f.StringVarP(&opts.genre, "genre", "g", "", "start with tracks tagged with this genre")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.BoolVar(&opts.noRestore, "no-restore", false, "ignore the saved session")
	cmd.MarkFlagsMutuallyExclusive("search", "genre")

	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		stderr.WriteOriginal("harmony: " + errmsg.Message(err) + "\n")
		os.Exit(1)
	}
}

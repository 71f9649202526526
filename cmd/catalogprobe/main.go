// Command catalogprobe queries the Jamendo API directly and prints the
// tracks it returns. Useful to check a client ID or a genre tag.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/config"
	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/jamendo"
	"github.com/llehouerou/harmony/internal/playlist"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var (
		limit   int
		verbose bool
	)

	root := &cobra.Command{
		Use:   "catalogprobe",
		Short: "Query the Jamendo catalog without the player",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVarP(&limit, "limit", "n", 0, "number of tracks (default from config)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	probe := func(op errmsg.Op, fetch func(ctx context.Context, c *jamendo.Client, n int) ([]catalog.Track, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			jc := cfg.GetJamendoConfig()
			n := jc.Limit
			if limit > 0 {
				n = limit
			}
			c := jamendo.New(jc.ClientID,
				jamendo.WithBaseURL(jc.BaseURL),
				jamendo.WithLimit(n),
				jamendo.WithHTTPClient(&http.Client{Timeout: jc.Timeout()}),
			)

			start := time.Now()
			tracks, err := fetch(cmd.Context(), c, n)
			log.WithFields(logrus.Fields{
				"command": cmd.Name(),
				"tracks":  len(tracks),
				"elapsed": time.Since(start).Round(time.Millisecond),
			}).Debug("request done")
			if err != nil {
				return errmsg.Wrap(op, err)
			}
			printTracks(tracks)
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "search <query>",
			Short: "Full-text search",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return probe(errmsg.OpCatalogSearch, func(ctx context.Context, c *jamendo.Client, _ int) ([]catalog.Track, error) {
					return c.SearchTracks(ctx, args[0])
				})(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "popular",
			Short: "Most popular tracks",
			Args:  cobra.NoArgs,
			RunE: probe(errmsg.OpCatalogPopular, func(ctx context.Context, c *jamendo.Client, n int) ([]catalog.Track, error) {
				return c.PopularTracks(ctx, n)
			}),
		},
		&cobra.Command{
			Use:   "genre <tag>",
			Short: "Tracks tagged with a genre",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return probe(errmsg.OpCatalogGenre, func(ctx context.Context, c *jamendo.Client, n int) ([]catalog.Track, error) {
					return c.TracksByGenre(ctx, args[0], n)
				})(cmd, args)
			},
		},
	)

	if err := root.Execute(); err != nil {
		log.Error(errmsg.Message(err))
		os.Exit(1)
	}
}

func printTracks(tracks []catalog.Track) {
	if len(tracks) == 0 {
		fmt.Println("no tracks")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "ID", "Length", "Artist", "Title", "Album"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 6, WidthMax: 30},
	})
	for i := range tracks {
		tr := &tracks[i]
		t.AppendRow(table.Row{
			i + 1,
			tr.ID,
			playlist.FormatDuration(tr.Duration),
			tr.ArtistName,
			tr.Name,
			tr.AlbumName,
		})
	}
	t.AppendFooter(table.Row{"", "", playlist.FormatDuration(playlist.TotalDuration(tracks))})
	t.Render()
}

// Package cmd implements the mediax command-line interface.
package cmd

import (
	"fmt"
	"strings"

	"github.com/mediax-cli/mediax/bookmark"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/query"
	"github.com/mediax-cli/mediax/service"
	"github.com/mediax-cli/mediax/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	listingFlags(searchCmd)

	searchCmd.Flags().StringSliceP("filter", "f", []string{}, "Restrict results to a content kind (e.g., videos, channels, playlists)")
	lo.Must0(searchCmd.RegisterFlagCompletionFunc("filter", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		s, ok := service.Get(newServices(), args[0])
		if !ok {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return s.SearchLinks().Filters(), cobra.ShellCompDirectiveNoFileComp
	}))
}

func completionSearch(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return completionServices(cmd, args, toComplete)
	}
	return query.SuggestMany(strings.ToLower(args[0]), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// searchCmd searches one service.
var searchCmd = &cobra.Command{
	Use:               "search <service> <query>",
	Short:             "Search a service for streams, channels and playlists",
	Example:           "mediax search bandcamp night shift --filter albums",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionSearch,
	Run: func(cmd *cobra.Command, args []string) {
		s := serviceByName(newServices(), args[0])
		q := strings.Join(args[1:], " ")
		filters := lo.Must(cmd.Flags().GetStringSlice("filter"))

		e, err := s.Search(q, filters...)
		handleErr(err)

		if err := query.Remember(s.ID(), q, 1); err != nil {
			log.Warnf("could not remember query: %s", err)
		}

		start := startPage(cmd)
		p := newPager(cmd, listing{serviceID: s.ID(), kind: bookmark.ListingSearch, target: q, filters: filters})
		p.print = func(b *extractor.Batch[media.Item], offset int) error {
			// The suggestion belongs to the first results page, which a resumed search never fetches.
			if offset == 0 && start.IsAbsent() {
				if suggestion, err := e.Suggestion(); err == nil && suggestion != "" {
					fmt.Fprintf(p.out, "%s %s %s\n", icon.Get(icon.Question), style.Faint("did you mean"), style.Bold(suggestion))
				}
			}
			return p.render.Batch(p.out, b, offset)
		}

		handleErr(p.run(e, start))
	},
}

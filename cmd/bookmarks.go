// Package cmd implements the mediax command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/mediax-cli/mediax/bookmark"
	"github.com/mediax-cli/mediax/color"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/render"
	"github.com/mediax-cli/mediax/service"
	"github.com/mediax-cli/mediax/style"
	"github.com/mediax-cli/mediax/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bookmarksCmd)
}

// bookmarksCmd is the parent of the bookmark commands.
var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage saved listing positions",
}

func completionBookmarks(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	saved, err := bookmark.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return lo.Map(saved, func(b *bookmark.Bookmark, _ int) string {
		return b.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

// openBookmarked recreates the listing a bookmark was taken from.
func openBookmarked(services []service.Service, b *bookmark.Bookmark) (extractor.ListExtractor[media.Item], error) {
	s, ok := service.Get(services, b.ServiceID)
	if !ok {
		return nil, service.ErrUnknown(services, b.ServiceID)
	}

	switch b.Listing {
	case bookmark.ListingSearch:
		return s.Search(b.Target, b.Filters...)
	case bookmark.ListingKiosk:
		return s.Kiosk(b.Target)
	case bookmark.ListingComments:
		e, err := s.Comments(b.Target)
		if err != nil {
			return nil, err
		}
		return extractor.Items[*media.CommentItem](e), nil
	default:
		m, err := service.ForURL([]service.Service{s}, b.Target)
		if err != nil {
			return nil, err
		}
		return m.Listing(b.Target)
	}
}

func init() {
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksListCmd.SetOut(os.Stdout)
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display every saved bookmark, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := bookmark.List()
		handleErr(err)

		if asJSON(cmd) {
			handleErr(render.JSON(cmd.OutOrStdout(), saved))
			return
		}

		if len(saved) == 0 {
			cmd.Println(style.Faint("no bookmarks"))
			return
		}

		for _, b := range saved {
			cmd.Printf(
				"%s %s %s\n",
				icon.Get(icon.Bookmark),
				style.Fg(color.Yellow)(b.Name),
				style.Faint(fmt.Sprintf(
					"%s · %s · %s fetched · %s",
					b.ServiceID,
					b.Listing,
					util.Quantify(b.Fetched, "page", "pages"),
					b.SavedAt.Format("2006-01-02 15:04"),
				)),
			)
			cmd.Printf("  %s\n", b.Target)
		}
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksResumeCmd)
	listingFlags(bookmarksResumeCmd)
	lo.Must0(bookmarksResumeCmd.Flags().MarkHidden("page"))
}

var bookmarksResumeCmd = &cobra.Command{
	Use:               "resume <name>",
	Short:             "Continue a listing from a bookmark",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBookmarks,
	Run: func(cmd *cobra.Command, args []string) {
		b, err := bookmark.Find(args[0])
		handleErr(err)

		page, err := b.Page()
		handleErr(err)

		e, err := openBookmarked(newServices(), b)
		handleErr(err)

		p := newPager(cmd, listing{serviceID: b.ServiceID, kind: b.Listing, target: b.Target, filters: b.Filters})
		if !cmd.Flags().Changed("bookmark") {
			p.bookmark = b.Name
		}
		p.fetched = b.Fetched

		handleErr(p.run(e, mo.Some(page)))
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:               "remove <name>",
	Short:             "Forget a bookmark",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionBookmarks,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(bookmark.Remove(args[0]))
		fmt.Printf("%s removed bookmark %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(args[0]))
	},
}

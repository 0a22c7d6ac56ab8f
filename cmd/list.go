// Package cmd implements the mediax command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mediax-cli/mediax/bookmark"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/render"
	"github.com/mediax-cli/mediax/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// autoBookmark is the bookmark written when bookmarks.auto_save is on and no name is given.
const autoBookmark = "last"

func listingFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("page", "p", "", "Start from an encoded page token printed by a previous run")
	cmd.Flags().IntP("pages", "n", 1, "Number of pages to fetch, 0 fetches every page")
	cmd.Flags().BoolP("interactive", "i", false, "Ask before fetching each further page")
	cmd.Flags().StringP("bookmark", "b", "", "Save the next page under this bookmark name")
	cmd.MarkFlagsMutuallyExclusive("pages", "interactive")
	cmd.SetOut(os.Stdout)
}

// listing identifies what a pager walks through, for bookmarking.
type listing struct {
	serviceID string
	kind      bookmark.Listing
	target    string
	filters   []string
}

type pager struct {
	listing

	out         io.Writer
	json        bool
	pages       int
	interactive bool
	bookmark    string
	fetched     int
	render      render.Options

	// print overrides the default batch rendering.
	print func(b *extractor.Batch[media.Item], offset int) error
}

func newPager(cmd *cobra.Command, l listing) *pager {
	name := lo.Must(cmd.Flags().GetString("bookmark"))
	if name == "" && viper.GetBool(key.BookmarksAutoSave) {
		name = autoBookmark
	}

	return &pager{
		listing:     l,
		out:         cmd.OutOrStdout(),
		json:        asJSON(cmd),
		pages:       lo.Must(cmd.Flags().GetInt("pages")),
		interactive: lo.Must(cmd.Flags().GetBool("interactive")),
		bookmark:    name,
		render:      render.FromConfig(),
	}
}

// startPage decodes the --page flag.
func startPage(cmd *cobra.Command) mo.Option[media.Page] {
	token := lo.Must(cmd.Flags().GetString("page"))
	if token == "" {
		return mo.None[media.Page]()
	}

	page, err := media.DecodePage(token)
	handleErr(err)
	return mo.Some(page)
}

// run prints batches from start, or from the initial page when start is absent.
func (p *pager) run(e extractor.ListExtractor[media.Item], start mo.Option[media.Page]) error {
	var (
		batch  *extractor.Batch[media.Item]
		err    error
		offset int
		pages  int
	)

	if page, ok := start.Get(); ok {
		batch, err = e.GetPage(page)
	} else {
		batch, err = e.InitialPage()
	}

	for {
		if err != nil {
			return err
		}

		pages++
		p.fetched++
		for _, issue := range batch.Errors {
			log.WithField("service", p.serviceID).Warn(issue)
		}

		if err := p.printBatch(batch, offset); err != nil {
			return err
		}
		offset += len(batch.Items)

		if !batch.HasNext() {
			p.finish()
			return nil
		}

		next := batch.Next.MustGet()
		if err := p.save(next); err != nil {
			return err
		}

		if !p.more(pages) {
			return nil
		}

		batch, err = e.GetPage(next)
	}
}

func (p *pager) printBatch(b *extractor.Batch[media.Item], offset int) error {
	switch {
	case p.json:
		return render.JSON(p.out, b)
	case p.print != nil:
		return p.print(b, offset)
	default:
		return p.render.Batch(p.out, b, offset)
	}
}

func (p *pager) more(pages int) bool {
	if p.interactive {
		var response bool
		confirm := survey.Confirm{
			Message: fmt.Sprintf("Fetch page %d?", pages+1),
			Default: true,
		}
		handleErr(survey.AskOne(&confirm, &response))
		return response
	}

	return p.pages <= 0 || pages < p.pages
}

func (p *pager) save(next media.Page) error {
	if p.bookmark == "" {
		return nil
	}

	b, err := bookmark.New(p.bookmark, p.serviceID, p.kind, p.target, next)
	if err != nil {
		return err
	}
	b.Filters = p.filters
	b.Fetched = p.fetched

	return bookmark.Save(b)
}

func (p *pager) finish() {
	if p.bookmark == "" {
		return
	}

	if err := bookmark.Remove(p.bookmark); err == nil && !p.json && p.bookmark != autoBookmark {
		_, _ = fmt.Fprintf(p.out, "%s %s\n", icon.Get(icon.Bookmark), style.Faint("listing finished, removed bookmark "+p.bookmark))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listingFlags(listCmd)
}

// listCmd walks the items of a channel, a playlist or the comments of a stream.
var listCmd = &cobra.Command{
	Use:   "list <url>",
	Short: "List the items of a channel or playlist, or the comments of a stream",
	Long: `List the items of a channel or playlist, or the comments of a stream.

Every page ends with the token of the next one. Pass it to --page to continue later,
or use --bookmark to keep it under a name.`,
	Example: "mediax list https://framatube.org/c/framasoft_channel --pages 3",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		m := resolveURL(newServices(), url)

		e, err := m.Listing(url)
		handleErr(err)

		kind := lo.Ternary(m.Kind == media.KindStream, bookmark.ListingComments, bookmark.ListingResource)
		p := newPager(cmd, listing{serviceID: m.Service.ID(), kind: kind, target: url})
		handleErr(p.run(e, startPage(cmd)))
	},
}

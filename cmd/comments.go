// Package cmd implements the mediax command-line interface.
package cmd

import (
	"fmt"

	"github.com/mediax-cli/mediax/bookmark"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/render"
	"github.com/mediax-cli/mediax/style"
	"github.com/mediax-cli/mediax/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commentsCmd)
	listingFlags(commentsCmd)
	commentsCmd.Flags().BoolP("expand", "e", false, "Fetch the replies of every comment")
}

// thread is a comment with its fetched replies.
type thread struct {
	Comment *media.CommentItem `json:"comment"`
	Replies []*thread          `json:"replies,omitempty"`
	Errors  media.Issues       `json:"errors,omitempty"`
}

type threadBatch struct {
	Threads []*thread             `json:"threads"`
	Errors  media.Issues          `json:"errors"`
	Next    mo.Option[media.Page] `json:"next"`
}

// expandThreads fetches the replies of every comment, depth first.
func expandThreads(e extractor.CommentsExtractor, comments []*media.CommentItem) ([]*thread, error) {
	roots := lo.Map(comments, func(c *media.CommentItem, _ int) *thread {
		return &thread{Comment: c}
	})

	var stack util.Stack[*thread]
	for _, root := range roots {
		stack.Push(root)
	}

	for stack.Len() > 0 {
		t := stack.Pop()

		page, ok := t.Comment.Replies.Get()
		for ok {
			batch, err := e.GetPage(page)
			if err != nil {
				return nil, err
			}

			for _, reply := range batch.Items {
				child := &thread{Comment: reply}
				t.Replies = append(t.Replies, child)
				stack.Push(child)
			}
			t.Errors = append(t.Errors, batch.Errors...)

			if !batch.HasNext() {
				break
			}
			page = batch.Next.MustGet()
		}
	}

	return roots, nil
}

func printThreads(p *pager, threads []*thread, depth int) {
	for _, t := range threads {
		p.render.Comment(p.out, t.Comment, depth)
		for _, err := range t.Errors {
			fmt.Fprintf(p.out, "%s %s\n", icon.Get(icon.Warn), style.Faint(err.Error()))
		}
		printThreads(p, t.Replies, depth+1)
	}
}

// commentsCmd lists the comments of a stream.
var commentsCmd = &cobra.Command{
	Use:     "comments <url>",
	Short:   "List the comments of a stream",
	Example: "mediax comments https://nightshift.bandcamp.com/album/after-hours --expand",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		m := resolveURL(newServices(), url)

		e, err := m.Service.Comments(url)
		handleErr(err)

		p := newPager(cmd, listing{serviceID: m.Service.ID(), kind: bookmark.ListingComments, target: url})

		if lo.Must(cmd.Flags().GetBool("expand")) {
			jsonOut := p.json
			p.json = false
			p.print = func(b *extractor.Batch[media.Item], _ int) error {
				comments := lo.FilterMap(b.Items, func(item media.Item, _ int) (*media.CommentItem, bool) {
					c, ok := item.(*media.CommentItem)
					return c, ok
				})

				threads, err := expandThreads(e, comments)
				if err != nil {
					return err
				}

				if jsonOut {
					return render.JSON(p.out, threadBatch{Threads: threads, Errors: b.Errors, Next: b.Next})
				}
				printThreads(p, threads, 0)
				return p.render.Footer(p.out, b)
			}
		}

		handleErr(p.run(extractor.Items[*media.CommentItem](e), startPage(cmd)))
	},
}

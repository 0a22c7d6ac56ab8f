// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

type commentMode int

const (
	topLevel commentMode = iota
	reply
)

// modeOf tells from the url shape whether it addresses the threads of a video or the replies of
// one thread.
func modeOf(url string) commentMode {
	if threadPattern.MatchString(url) {
		return reply
	}
	return topLevel
}

// Comments lists the comment threads of a video, or the replies of one thread.
//
// Top-level threads are paged by offset. A thread is returned by the server with its whole reply
// tree, so replies that already arrived nested in a thread are handed out as pages carrying those
// children in their body and expand without a request.
type Comments struct {
	extractor.Base
	mode commentMode
	page extractor.Cell[bool]
}

var _ extractor.CommentsExtractor = (*Comments)(nil)

func newComments(s *Service, link extractor.Link) *Comments {
	return &Comments{Base: s.base(link), mode: modeOf(link.URL)}
}

// FetchPage reads whether the video accepts comments.
func (c *Comments) FetchPage() error {
	return c.page.Load(func() (bool, error) {
		video, err := get(c.Downloader(), api(c.Link(), "/videos/%s", c.ID()))
		if err != nil {
			return false, err
		}

		enabled, err := jsonparser.GetBoolean(video, "commentsEnabled")
		if err != nil {
			return true, nil
		}
		return !enabled, nil
	})
}

func (c *Comments) Name() (string, error) { return "Comments", nil }

func (c *Comments) CommentsDisabled() (bool, error) {
	return c.page.Get(), nil
}

func (c *Comments) InitialPage() (*extractor.Batch[*media.CommentItem], error) {
	if err := c.FetchPage(); err != nil {
		return nil, err
	}
	if c.page.Get() {
		return extractor.Last[*media.CommentItem](), nil
	}

	if c.mode == reply {
		return c.GetPage(media.NewPage(c.URL()))
	}
	return c.GetPage(firstPage(c.URL()))
}

// GetPage expands a page of either mode. The mode is read from the page url, so a replies page
// can be replayed on an extractor created for the video.
func (c *Comments) GetPage(page media.Page) (*extractor.Batch[*media.CommentItem], error) {
	if err := extractor.RequireURL(page); err != nil {
		return nil, err
	}

	if modeOf(page.URL) == reply {
		return c.replies(page)
	}

	offset, err := extractor.OffsetOf(page, startParam)
	if err != nil {
		return nil, err
	}

	body, err := get(c.Downloader(), page.URL)
	if err != nil {
		return nil, err
	}
	return offsetBatch[*media.CommentItem](page, offset, body, func(comment []byte) (extractor.Entry, error) {
		return c.entry(comment, nil)
	})
}

// replies returns the children of a thread or of one comment inside it. The children come from
// the page body when present and from the thread endpoint otherwise. A page with one id addresses
// the replies of that nested comment.
func (c *Comments) replies(page media.Page) (*extractor.Batch[*media.CommentItem], error) {
	if len(page.IDs) > 1 {
		return nil, extractor.InvalidPage("expected at most 1 id, got %d", len(page.IDs))
	}

	children := page.Body
	if !page.HasBody() {
		thread, err := get(c.Downloader(), page.URL)
		if err != nil {
			return nil, err
		}
		var ok bool
		if children, ok = raw(thread, "children"); !ok {
			return nil, extractor.Malformedf("children", "thread without children")
		}
		if len(page.IDs) == 1 {
			if children, ok = subtree(children, page.IDs[0]); !ok {
				return nil, extractor.Malformedf("children", "comment %s not found in thread", page.IDs[0])
			}
		}
	}

	collector := extractor.NewCollector[*media.CommentItem](ServiceID)
	_, err := jsonparser.ArrayEach(children, func(node []byte, _ jsonparser.ValueType, _ int, _ error) {
		comment, ok := raw(node, "comment")
		if !ok {
			collector.Fail(extractor.Malformedf("comment", "reply node without comment"))
			return
		}
		nested, _ := raw(node, "children")
		collector.Classified(c.entry(comment, nested))
	})
	if err != nil {
		return nil, extractor.Malformed("children", err)
	}

	return collector.Batch(mo.None[media.Page]()), nil
}

// subtree finds the children array of comment id inside a thread tree.
func subtree(children []byte, id string) ([]byte, bool) {
	var (
		found []byte
		done  bool
	)
	_, _ = jsonparser.ArrayEach(children, func(node []byte, _ jsonparser.ValueType, _ int, _ error) {
		if done {
			return
		}
		nested, hasChildren := raw(node, "children")
		if cid, err := idString(node, "comment", "id"); err == nil && cid == id {
			found, done = nested, true
			if !hasChildren {
				found = []byte(`[]`)
			}
			return
		}
		if hasChildren {
			found, done = subtree(nested, id)
		}
	})
	return found, done
}

// entry classifies one comment. Deleted comments yield neither an entry nor an error.
func (c *Comments) entry(comment, children []byte) (extractor.Entry, error) {
	if deleted, _ := jsonparser.GetBoolean(comment, "isDeleted"); deleted {
		return nil, nil
	}
	return extractor.CommentEntry{CommentItemExtractor: commentItem{
		base:     c.BaseURL(),
		video:    c.ID(),
		data:     comment,
		children: children,
	}}, nil
}

// commentItem reads one comment. children holds the nested replies embedded next to a comment
// that arrived inside a thread, and is nil when the payload carried no children array.
type commentItem struct {
	extractor.CommentItemDefaults
	base     string
	video    string
	data     []byte
	children []byte
}

func (i commentItem) CommentID() (string, error) { return idString(i.data, "id") }
func (i commentItem) Name() (string, error) { return str(i.data, "account", "displayName") }

// URL points at the comment in the web interface.
func (i commentItem) URL() (string, error) {
	thread, err := idString(i.data, "threadId")
	if err != nil {
		return "", err
	}
	return watchURL(i.base, i.video) + ";threadId=" + thread, nil
}

func (i commentItem) Thumbnails() ([]media.Image, error) { return i.UploaderAvatars() }

func (i commentItem) Text() (media.Description, error) {
	text, err := str(i.data, "text")
	if err != nil {
		return media.EmptyDescription, err
	}
	return media.HTMLDescription(text), nil
}

func (i commentItem) UploaderURL() (string, error) { return accountURL(i.base, i.data, "account") }
func (i commentItem) UploaderAvatars() ([]media.Image, error) { return avatars(i.base, i.data, "account") }
func (i commentItem) UploadDate() (time.Time, error) { return date(i.data, "createdAt") }
func (i commentItem) TextualUploadDate() (string, error) { return str(i.data, "createdAt") }

func (i commentItem) childCount() int {
	n := 0
	_, _ = jsonparser.ArrayEach(i.children, func([]byte, jsonparser.ValueType, int, error) { n++ })
	return n
}

// ReplyCount prefers the embedded children over totalReplies, which servers report as 0 for
// nested replies.
func (i commentItem) ReplyCount() (int64, error) {
	if n := i.childCount(); n > 0 {
		return int64(n), nil
	}
	return integer(i.data, "totalReplies")
}

// Replies carries the embedded children in the page body. Without them the page addresses the
// thread endpoint, and a nested comment adds its own id.
func (i commentItem) Replies() (mo.Option[media.Page], error) {
	thread, err := idString(i.data, "threadId")
	if err != nil {
		return mo.None[media.Page](), err
	}
	url := threadURL(i.base, i.video, thread)

	if i.childCount() > 0 {
		return mo.Some(media.NewPage(url).WithBody(i.children)), nil
	}

	if total, err := integer(i.data, "totalReplies"); err != nil || total == 0 {
		return mo.None[media.Page](), nil
	}

	page := media.NewPage(url)
	if id, err := idString(i.data, "id"); err == nil && id != thread {
		page = page.WithIDs(id)
	}
	return mo.Some(page), nil
}

func (i commentItem) HasCreatorReply() (bool, error) {
	n, err := jsonparser.GetInt(i.data, "totalRepliesFromVideoAuthor")
	if err != nil {
		return false, nil
	}
	return n > 0, nil
}

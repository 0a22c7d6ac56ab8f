// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

type reviewsPage struct {
	tralbum
	collectors []byte
}

// Comments lists the reviews buyers attach to a track or an album. The first reviews are embedded
// in the page; further ones are fetched from the collectors API by the token of the last review.
//
// Continuation pages carry the reviews API url and exactly three ids: the tralbum type ("t" or
// "a"), the tralbum id and the token.
type Comments struct {
	extractor.Base
	page extractor.Cell[reviewsPage]
}

var _ extractor.CommentsExtractor = (*Comments)(nil)

func (c *Comments) FetchPage() error {
	return c.page.Load(func() (reviewsPage, error) {
		t, err := fetchTralbum(c.Downloader(), c.URL())
		if err != nil {
			return reviewsPage{}, err
		}

		collectors, err := blob(t.doc, "#collectors-data", "data-blob")
		if err != nil {
			collectors = []byte(`{}`)
		}
		return reviewsPage{tralbum: t, collectors: collectors}, nil
	})
}

func (c *Comments) Name() (string, error) { return "Reviews", nil }

// CommentsDisabled is always false: every release accepts reviews.
func (c *Comments) CommentsDisabled() (bool, error) { return false, nil }

func (c *Comments) InitialPage() (*extractor.Batch[*media.CommentItem], error) {
	if err := c.FetchPage(); err != nil {
		return nil, err
	}

	p := c.page.Get()
	kind, err := p.kind()
	if err != nil {
		return nil, err
	}
	id, err := idString(p.data, "id")
	if err != nil {
		return nil, err
	}

	more, _ := jsonparser.GetBoolean(p.collectors, "more_reviews_available")
	return reviewsBatch(p.collectors, more, "reviews", kind, id)
}

type reviewsRequest struct {
	TralbumType   string  `json:"tralbum_type"`
	TralbumID     int64   `json:"tralbum_id"`
	Token         string  `json:"token"`
	Count         int     `json:"count"`
	ExcludeFanIDs []int64 `json:"exclude_fan_ids"`
}

func (c *Comments) GetPage(page media.Page) (*extractor.Batch[*media.CommentItem], error) {
	if err := extractor.RequireURL(page); err != nil {
		return nil, err
	}
	if err := extractor.RequireIDs(page, 3); err != nil {
		return nil, err
	}

	kind, id, token := page.IDs[0], page.IDs[1], page.IDs[2]
	tralbumID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, extractor.InvalidPage("bad tralbum id %q", id)
	}

	request, err := json.Marshal(reviewsRequest{
		TralbumType:   kind,
		TralbumID:     tralbumID,
		Token:         token,
		Count:         reviewsPerPage,
		ExcludeFanIDs: []int64{},
	})
	if err != nil {
		return nil, err
	}

	body, err := post(c.Downloader(), page.URL, request)
	if err != nil {
		return nil, err
	}

	more, _ := jsonparser.GetBoolean(body, "more_available")
	return reviewsBatch(body, more, "results", kind, id)
}

// reviewsBatch collects the reviews at key. The next page continues after the last review's token.
func reviewsBatch(body []byte, more bool, key, kind, id string) (*extractor.Batch[*media.CommentItem], error) {
	c := extractor.NewCollector[*media.CommentItem](ServiceID)

	var token string
	_, err := jsonparser.ArrayEach(body, func(r []byte, _ jsonparser.ValueType, _ int, _ error) {
		token = optStr(r, "token")
		c.Commit(extractor.CommentEntry{CommentItemExtractor: review{r}})
	}, key)
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, extractor.Malformed(key, err)
	}

	next := mo.None[media.Page]()
	if more && token != "" {
		next = mo.Some(media.NewPage(reviewsURL).WithIDs(kind, id, token))
	}
	return c.Batch(next), nil
}

// review reads one collector review. Its url is the reviewer's fan page.
type review struct {
	data []byte
}

func (r review) CommentID() (string, error) { return idString(r.data, "fan_id") }
func (r review) Name() (string, error) { return str(r.data, "name") }

func (r review) URL() (string, error) {
	username, err := str(r.data, "username")
	if err != nil {
		return "", err
	}
	return baseURL + "/" + username, nil
}

func (r review) Thumbnails() ([]media.Image, error) { return r.UploaderAvatars() }
func (r review) Text() (media.Description, error) { return media.PlainDescription(optStr(r.data, "why")), nil }
func (r review) UploaderURL() (string, error) { return r.URL() }

func (r review) UploaderAvatars() ([]media.Image, error) {
	id, _ := jsonparser.GetInt(r.data, "image_id")
	return bandImages(id), nil
}

func (r review) UploaderVerified() (bool, error) { return false, nil }

// Reviews carry no date, likes or replies.
func (r review) UploadDate() (time.Time, error) { return time.Time{}, nil }
func (r review) TextualUploadDate() (string, error) { return "", nil }
func (r review) LikeCount() (int64, error) { return media.Unknown, nil }
func (r review) ReplyCount() (int64, error) { return 0, nil }
func (r review) Replies() (mo.Option[media.Page], error) { return mo.None[media.Page](), nil }
func (r review) Pinned() (bool, error) { return false, nil }
func (r review) HeartedByUploader() (bool, error) { return false, nil }
func (r review) ByChannelOwner() (bool, error) { return false, nil }
func (r review) HasCreatorReply() (bool, error) { return false, nil }

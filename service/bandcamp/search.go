// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

// Search scrapes the search result pages. Each row declares its type, which picks the kind of
// the result; the "next" link carries the following page.
type Search struct {
	extractor.Base
	page extractor.Cell[*goquery.Document]
}

var _ extractor.SearchExtractor = (*Search)(nil)

func (s *Search) FetchPage() error {
	return s.page.Load(func() (*goquery.Document, error) {
		return getDocument(s.Downloader(), s.URL())
	})
}

func (s *Search) Name() (string, error) { return s.ID(), nil }
func (s *Search) SearchString() string { return s.ID() }

// Suggestion is always empty: the result pages carry no spelling suggestion.
func (s *Search) Suggestion() (string, error) { return "", nil }

func (s *Search) InitialPage() (*extractor.Batch[media.Item], error) {
	if err := s.FetchPage(); err != nil {
		return nil, err
	}
	return searchBatch(s.page.Get()), nil
}

func (s *Search) GetPage(page media.Page) (*extractor.Batch[media.Item], error) {
	if err := extractor.RequireURL(page); err != nil {
		return nil, err
	}

	doc, err := getDocument(s.Downloader(), page.URL)
	if err != nil {
		return nil, err
	}
	return searchBatch(doc), nil
}

func searchBatch(doc *goquery.Document) *extractor.Batch[media.Item] {
	c := extractor.NewCollector[media.Item](ServiceID)
	doc.Find("li.searchresult").Each(func(_ int, row *goquery.Selection) {
		c.Classified(classifyResult(result{row}))
	})

	next := mo.None[media.Page]()
	if href := doc.Find("a.next").First().AttrOr("href", ""); href != "" {
		next = mo.Some(media.NewPage(absolute(baseURL, href)))
	}
	return c.Batch(next)
}

func classifyResult(r result) (extractor.Entry, error) {
	switch kind := strings.ToUpper(text(r.row.Find(".itemtype"))); kind {
	case "ARTIST", "LABEL":
		return extractor.ChannelEntry{ChannelItemExtractor: resultArtist{r}}, nil
	case "ALBUM":
		return extractor.PlaylistEntry{PlaylistItemExtractor: resultAlbum{r}}, nil
	case "TRACK":
		return extractor.StreamEntry{StreamItemExtractor: resultTrack{result: r}}, nil
	case "FAN":
		log.Debugf("bandcamp: skipping fan search result")
		return nil, nil
	default:
		return nil, extractor.Malformedf("itemtype", "unknown search result type %q", kind)
	}
}

// result reads one row of a search result page.
type result struct {
	row *goquery.Selection
}

func (r result) Name() (string, error) {
	name := text(r.row.Find(".heading a").First())
	if name == "" {
		return "", extractor.Malformed("heading", nil)
	}
	return name, nil
}

// URL prefers the displayed item url, which has no tracking parameters.
func (r result) URL() (string, error) {
	if u := text(r.row.Find(".itemurl a").First()); u != "" {
		return absolute(baseURL, u), nil
	}
	href := r.row.Find(".heading a").First().AttrOr("href", "")
	if href == "" {
		return "", extractor.Malformed("itemurl", nil)
	}
	return absolute(baseURL, stripQuery(href)), nil
}

func (r result) Thumbnails() ([]media.Image, error) {
	src := r.row.Find(".art img").First().AttrOr("src", "")
	if src == "" {
		return []media.Image{}, nil
	}
	return []media.Image{media.NewImage(src, media.UnknownDimension, media.UnknownDimension)}, nil
}

// uploader reads the artist from the "by <artist>" or "from <album> by <artist>" subhead.
func (r result) uploader() string {
	subhead := text(r.row.Find(".subhead"))
	if i := strings.LastIndex(subhead, "by "); i >= 0 {
		return strings.TrimSpace(subhead[i+len("by "):])
	}
	return ""
}

// uploaderURL is the artist page the item url lives on.
func (r result) uploaderURL() string {
	u, err := r.URL()
	if err != nil {
		return ""
	}
	if i := strings.Index(u, ".bandcamp.com"); i >= 0 {
		return u[:i+len(".bandcamp.com")]
	}
	return ""
}

func (r result) released() (time.Time, string, error) {
	raw := strings.TrimPrefix(text(r.row.Find(".released")), "released ")
	if raw == "" {
		return time.Time{}, "", nil
	}
	t, err := parseDate(raw)
	return t, raw, err
}

type resultArtist struct{ result }

// Description is the artist's location.
func (r resultArtist) Description() (string, error) { return text(r.row.Find(".subhead")), nil }
func (resultArtist) SubscriberCount() (int64, error) { return media.Unknown, nil }
func (resultArtist) StreamCount() (int64, error) { return media.Unknown, nil }
func (resultArtist) Verified() (bool, error) { return false, nil }

type resultAlbum struct{ result }

func (r resultAlbum) UploaderName() (string, error) { return r.uploader(), nil }
func (r resultAlbum) UploaderURL() (string, error) { return r.uploaderURL(), nil }
func (resultAlbum) UploaderVerified() (bool, error) { return false, nil }
func (resultAlbum) Description() (media.Description, error) { return media.EmptyDescription, nil }

// StreamCount reads the leading number of "10 tracks, 45 minutes".
func (r resultAlbum) StreamCount() (int64, error) {
	length := text(r.row.Find(".length"))
	if length == "" {
		return media.Unknown, nil
	}
	n, err := atoi(strings.Fields(length)[0])
	if err != nil {
		return media.Unknown, extractor.Malformed("length", err)
	}
	return int64(n), nil
}

type resultTrack struct {
	extractor.StreamItemDefaults
	result
}

func (resultTrack) StreamType() (media.StreamType, error) { return media.StreamAudio, nil }
func (r resultTrack) UploaderName() (string, error) { return r.uploader(), nil }
func (r resultTrack) UploaderURL() (string, error) { return r.uploaderURL(), nil }

func (r resultTrack) UploadDate() (time.Time, error) {
	t, _, err := r.released()
	return t, err
}

func (r resultTrack) TextualUploadDate() (string, error) {
	_, raw, _ := r.released()
	return raw, nil
}

// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

type artistPage struct {
	doc     *goquery.Document
	details []byte
}

// Channel extracts an artist or label. Fetching takes two requests: the discography page, which
// holds the band id and the releases, then the band details API for that id.
type Channel struct {
	extractor.Base
	page extractor.Cell[artistPage]
}

var _ extractor.ChannelExtractor = (*Channel)(nil)

func (c *Channel) FetchPage() error {
	return c.page.Load(func() (artistPage, error) {
		doc, err := getDocument(c.Downloader(), c.URL())
		if err != nil {
			return artistPage{}, err
		}

		band, err := blob(doc, "[data-band]", "data-band")
		if err != nil {
			return artistPage{}, err
		}
		id, err := integer(band, "id")
		if err != nil {
			return artistPage{}, err
		}

		details, err := post(c.Downloader(), bandDetailsURL, []byte(fmt.Sprintf(`{"band_id":%d}`, id)))
		if err != nil {
			return artistPage{}, err
		}
		return artistPage{doc: doc, details: details}, nil
	})
}

func (c *Channel) details() []byte { return c.page.Get().details }

func (c *Channel) Name() (string, error) { return str(c.details(), "name") }

func (c *Channel) Avatars() ([]media.Image, error) {
	id, _ := jsonparser.GetInt(c.details(), "bio_image_id")
	return bandImages(id), nil
}

// Banners reads the custom header image of the page.
func (c *Channel) Banners() ([]media.Image, error) {
	src := c.page.Get().doc.Find("#customHeader img").First().AttrOr("src", "")
	if src == "" {
		return []media.Image{}, nil
	}
	return []media.Image{media.NewImage(absolute(c.BaseURL(), src), media.UnknownDimension, media.UnknownDimension)}, nil
}

func (c *Channel) Description() (string, error) { return optStr(c.details(), "bio"), nil }
func (c *Channel) SubscriberCount() (int64, error) { return media.Unknown, nil }
func (c *Channel) Verified() (bool, error) { return false, nil }
func (c *Channel) ParentName() (string, error) { return "", nil }
func (c *Channel) ParentURL() (string, error) { return "", nil }

// InitialPage lists the discography. Rows are albums or tracks depending on the prefix of their
// data-item-id.
func (c *Channel) InitialPage() (*extractor.Batch[media.Item], error) {
	if err := c.FetchPage(); err != nil {
		return nil, err
	}

	artist, _ := c.Name()
	collector := extractor.NewCollector[media.Item](ServiceID)

	c.page.Get().doc.Find("#music-grid li[data-item-id]").Each(func(_ int, s *goquery.Selection) {
		collector.Classified(classifyRelease(release{base: c.BaseURL(), row: s, artist: artist}))
	})

	return collector.Batch(mo.None[media.Page]()), nil
}

func (c *Channel) GetPage(media.Page) (*extractor.Batch[media.Item], error) {
	return nil, extractor.InvalidPage("the discography has no further pages")
}

func classifyRelease(r release) (extractor.Entry, error) {
	id := r.row.AttrOr("data-item-id", "")
	switch {
	case strings.HasPrefix(id, "album-"):
		return extractor.PlaylistEntry{PlaylistItemExtractor: releaseAlbum{r}}, nil
	case strings.HasPrefix(id, "track-"):
		return extractor.StreamEntry{StreamItemExtractor: releaseTrack{release: r}}, nil
	default:
		return nil, extractor.Malformedf("data-item-id", "unknown release %q", id)
	}
}

// release is one row of the discography grid.
type release struct {
	base   string
	row    *goquery.Selection
	artist string
}

// Name is the first text of the title; a nested span names a different artist.
func (r release) Name() (string, error) {
	name := strings.TrimSpace(r.row.Find("p.title").Contents().First().Text())
	if name == "" {
		return "", extractor.Malformed("title", nil)
	}
	return name, nil
}

func (r release) URL() (string, error) {
	href, ok := r.row.Find("a").First().Attr("href")
	if !ok || href == "" {
		return "", extractor.Malformed("href", nil)
	}
	return absolute(r.base, href), nil
}

// Thumbnails prefers data-original, which lazily loaded rows use instead of src.
func (r release) Thumbnails() ([]media.Image, error) {
	img := r.row.Find("img").First()
	src := img.AttrOr("data-original", "")
	if src == "" {
		src = img.AttrOr("src", "")
	}
	if src == "" || strings.HasPrefix(src, "data:") {
		return []media.Image{}, nil
	}
	return []media.Image{media.NewImage(absolute(r.base, src), media.UnknownDimension, media.UnknownDimension)}, nil
}

func (r release) UploaderName() (string, error) {
	if override := text(r.row.Find("span.artist-override")); override != "" {
		return override, nil
	}
	return r.artist, nil
}

func (r release) UploaderURL() (string, error) { return r.base, nil }
func (r release) UploaderVerified() (bool, error) { return false, nil }

type releaseAlbum struct{ release }

func (releaseAlbum) StreamCount() (int64, error) { return media.Unknown, nil }
func (releaseAlbum) Description() (media.Description, error) { return media.EmptyDescription, nil }

type releaseTrack struct {
	extractor.StreamItemDefaults
	release
}

func (releaseTrack) StreamType() (media.StreamType, error) { return media.StreamAudio, nil }

// UploaderVerified is promoted by both embedded types.
func (releaseTrack) UploaderVerified() (bool, error) { return false, nil }

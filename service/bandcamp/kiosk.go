// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

// Kiosk is the featured feed of the mobile app. The first stories come with the bootstrap data;
// older ones are paged by a cursor built from the last story seen.
type Kiosk struct {
	extractor.Base
	page extractor.Cell[[]byte]
}

var _ extractor.KioskExtractor = (*Kiosk)(nil)

func (k *Kiosk) FetchPage() error {
	return k.page.Load(func() ([]byte, error) {
		return post(k.Downloader(), bootstrapURL, []byte(`{"platform":"","version":0}`))
	})
}

func (k *Kiosk) Name() (string, error) { return KioskFeatured, nil }

func (k *Kiosk) InitialPage() (*extractor.Batch[media.Item], error) {
	if err := k.FetchPage(); err != nil {
		return nil, err
	}
	return featuredBatch(k.page.Get(), "feed_content", "stories", "featured")
}

func (k *Kiosk) GetPage(page media.Page) (*extractor.Batch[media.Item], error) {
	if err := extractor.RequireURL(page); err != nil {
		return nil, err
	}

	body, err := get(k.Downloader(), page.URL)
	if err != nil {
		return nil, err
	}
	return featuredBatch(body, "stories", "featured")
}

func featuredBatch(body []byte, keys ...string) (*extractor.Batch[media.Item], error) {
	c := extractor.NewCollector[media.Item](ServiceID)

	var last []byte
	_, err := jsonparser.ArrayEach(body, func(story []byte, _ jsonparser.ValueType, _ int, _ error) {
		last = story
		c.Classified(classifyStory(story))
	}, keys...)
	if err != nil {
		return nil, extractor.Malformed("stories", err)
	}

	if last == nil {
		return extractor.Last[media.Item](), nil
	}
	return c.Batch(featuredCursor(last)), nil
}

// featuredCursor addresses the stories older than last.
func featuredCursor(last []byte) mo.Option[media.Page] {
	date, errDate := idString(last, "story_date")
	typ, errType := str(last, "story_type")
	ntid, errID := idString(last, "ntid")
	if errDate != nil || errType != nil || errID != nil {
		log.Debugf("bandcamp: featured story without cursor fields, stopping")
		return mo.None[media.Page]()
	}

	return mo.Some(media.NewPage(fmt.Sprintf("%s?story_groups=featured:%s:%s:%s", featuredURL, date, typ, ntid)))
}

func classifyStory(story []byte) (extractor.Entry, error) {
	switch typ := optStr(story, "item_type"); typ {
	case "a":
		return extractor.PlaylistEntry{PlaylistItemExtractor: featuredAlbum{featured: featured{story}}}, nil
	case "t":
		return extractor.StreamEntry{StreamItemExtractor: featuredTrack{featured: featured{story}}}, nil
	default:
		return nil, extractor.Malformedf("item_type", "unknown featured item %q", typ)
	}
}

// featured reads one story of the feed.
type featured struct {
	data []byte
}

func (f featured) Name() (string, error) { return str(f.data, "title") }

func (f featured) URL() (string, error) {
	u, err := str(f.data, "item_url")
	if err != nil {
		return "", err
	}
	return absolute(baseURL, u), nil
}

func (f featured) Thumbnails() ([]media.Image, error) {
	id, _ := jsonparser.GetInt(f.data, "art_id")
	return artImages(id), nil
}

func (f featured) UploaderName() (string, error) { return str(f.data, "band_name") }

func (f featured) UploaderURL() (string, error) {
	return absolute(baseURL, optStr(f.data, "band_url")), nil
}

func (f featured) UploaderVerified() (bool, error) { return false, nil }

type featuredAlbum struct{ featured }

func (f featuredAlbum) StreamCount() (int64, error) {
	n, err := jsonparser.GetInt(f.data, "num_streamable_tracks")
	if err != nil {
		return media.Unknown, nil
	}
	return n, nil
}

func (f featuredAlbum) Description() (media.Description, error) {
	if genre := optStr(f.data, "genre_text"); genre != "" {
		return media.PlainDescription(genre), nil
	}
	return media.EmptyDescription, nil
}

type featuredTrack struct {
	extractor.StreamItemDefaults
	featured
}

func (featuredTrack) StreamType() (media.StreamType, error) { return media.StreamAudio, nil }
func (featuredTrack) UploaderVerified() (bool, error) { return false, nil }

func (f featuredTrack) Duration() (int64, error) {
	if _, ok := raw(f.data, "duration"); !ok {
		return media.Unknown, nil
	}
	return seconds(f.data, "duration")
}

// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

// Playlist extracts an album. All of its tracks are on the album page, so the listing has a
// single batch.
type Playlist struct {
	extractor.Base
	page extractor.Cell[tralbum]
}

var _ extractor.PlaylistExtractor = (*Playlist)(nil)

func (p *Playlist) FetchPage() error {
	return p.page.Load(func() (tralbum, error) {
		return fetchTralbum(p.Downloader(), p.URL())
	})
}

func (p *Playlist) tralbum() tralbum { return p.page.Get() }

func (p *Playlist) Name() (string, error) { return p.tralbum().title() }
func (p *Playlist) Thumbnails() ([]media.Image, error) { return p.tralbum().art(), nil }
func (p *Playlist) Description() (media.Description, error) { return p.tralbum().description(), nil }
func (p *Playlist) UploaderName() (string, error) { return p.tralbum().artist() }
func (p *Playlist) UploaderURL() (string, error) { return p.BaseURL(), nil }
func (p *Playlist) UploaderAvatars() ([]media.Image, error) { return p.tralbum().bandImages(), nil }
func (p *Playlist) StreamCount() (int64, error) { return count(p.tralbum().data, "trackinfo"), nil }

func (p *Playlist) InitialPage() (*extractor.Batch[*media.StreamItem], error) {
	if err := p.FetchPage(); err != nil {
		return nil, err
	}

	t := p.tralbum()
	artist, _ := t.artist()
	c := extractor.NewCollector[*media.StreamItem](ServiceID)

	_, err := jsonparser.ArrayEach(t.data, func(track []byte, _ jsonparser.ValueType, _ int, _ error) {
		c.Commit(extractor.StreamEntry{StreamItemExtractor: albumTrack{
			base:   p.BaseURL(),
			data:   track,
			artist: artist,
			art:    t.art(),
		}})
	}, "trackinfo")
	if err != nil {
		return nil, extractor.Malformed("trackinfo", err)
	}

	return c.Batch(mo.None[media.Page]()), nil
}

func (p *Playlist) GetPage(media.Page) (*extractor.Batch[*media.StreamItem], error) {
	return nil, extractor.InvalidPage("album tracks have no further pages")
}

// albumTrack reads one trackinfo entry of an album page. Tracks share the album art.
type albumTrack struct {
	extractor.StreamItemDefaults
	base   string
	data   []byte
	artist string
	art    []media.Image
}

func (t albumTrack) Name() (string, error) { return str(t.data, "title") }

// URL fails for tracks not yet released, which have no page.
func (t albumTrack) URL() (string, error) {
	href, err := str(t.data, "title_link")
	if err != nil {
		return "", err
	}
	return absolute(t.base, href), nil
}

func (t albumTrack) Thumbnails() ([]media.Image, error) { return t.art, nil }
func (t albumTrack) StreamType() (media.StreamType, error) { return media.StreamAudio, nil }
func (t albumTrack) Duration() (int64, error) { return seconds(t.data, "duration") }
func (t albumTrack) UploaderName() (string, error) { return t.artist, nil }
func (t albumTrack) UploaderURL() (string, error) { return t.base, nil }
func (t albumTrack) UploadDate() (time.Time, error) { return time.Time{}, nil }

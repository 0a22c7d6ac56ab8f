// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

type Playlist struct {
	extractor.Base
	page extractor.Cell[[]byte]
}

var _ extractor.PlaylistExtractor = (*Playlist)(nil)

func newPlaylist(s *Service, link extractor.Link) *Playlist {
	return &Playlist{Base: s.base(link)}
}

func (p *Playlist) FetchPage() error {
	return p.page.Load(func() ([]byte, error) {
		return get(p.Downloader(), api(p.Link(), "/video-playlists/%s", p.ID()))
	})
}

func (p *Playlist) Name() (string, error) { return str(p.page.Get(), "displayName") }
func (p *Playlist) Thumbnails() ([]media.Image, error) { return thumbnails(p.BaseURL(), p.page.Get()) }
func (p *Playlist) UploaderName() (string, error) { return str(p.page.Get(), "ownerAccount", "displayName") }
func (p *Playlist) StreamCount() (int64, error) { return integer(p.page.Get(), "videosLength") }

func (p *Playlist) UploaderURL() (string, error) {
	return accountURL(p.BaseURL(), p.page.Get(), "ownerAccount")
}

func (p *Playlist) UploaderAvatars() ([]media.Image, error) {
	return avatars(p.BaseURL(), p.page.Get(), "ownerAccount")
}

func (p *Playlist) Description() (media.Description, error) {
	return playlistItem{data: p.page.Get()}.Description()
}

func (p *Playlist) InitialPage() (*extractor.Batch[*media.StreamItem], error) {
	return p.GetPage(firstPage(api(p.Link(), "/video-playlists/%s/videos", p.ID())))
}

// GetPage lists playlist elements. An element whose video was deleted or made private has a null
// video and is recorded as an error.
func (p *Playlist) GetPage(page media.Page) (*extractor.Batch[*media.StreamItem], error) {
	offset, err := extractor.OffsetOf(page, startParam)
	if err != nil {
		return nil, err
	}

	body, err := get(p.Downloader(), page.URL)
	if err != nil {
		return nil, err
	}

	return offsetBatch[*media.StreamItem](page, offset, body, func(element []byte) (extractor.Entry, error) {
		video, ok := raw(element, "video")
		if !ok {
			return nil, extractor.Malformedf("video", "playlist element without video")
		}
		return extractor.StreamEntry{StreamItemExtractor: streamItem{base: p.BaseURL(), data: video}}, nil
	})
}

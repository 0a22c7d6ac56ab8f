// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

// Search queries one of the search endpoints. The content filter picks the endpoint and with it
// the kind of every result.
type Search struct {
	extractor.Base
	page extractor.Cell[[]byte]
}

var _ extractor.SearchExtractor = (*Search)(nil)

func newSearch(s *Service, link extractor.Link) *Search {
	return &Search{Base: s.base(link)}
}

func (s *Search) filter() string {
	if filters := s.Link().Filters; len(filters) > 0 {
		return filters[0]
	}
	return FilterVideos
}

// FetchPage loads the first result page.
func (s *Search) FetchPage() error {
	return s.page.Load(func() ([]byte, error) {
		return get(s.Downloader(), firstPage(s.URL()).URL)
	})
}

func (s *Search) Name() (string, error) { return s.ID(), nil }
func (s *Search) SearchString() string { return s.ID() }

// Suggestion is always empty: PeerTube has no spelling suggestions.
func (s *Search) Suggestion() (string, error) { return "", nil }

func (s *Search) InitialPage() (*extractor.Batch[media.Item], error) {
	if err := s.FetchPage(); err != nil {
		return nil, err
	}
	return offsetBatch[media.Item](firstPage(s.URL()), 0, s.page.Get(), s.classify)
}

func (s *Search) GetPage(page media.Page) (*extractor.Batch[media.Item], error) {
	offset, err := extractor.OffsetOf(page, startParam)
	if err != nil {
		return nil, err
	}

	body, err := get(s.Downloader(), page.URL)
	if err != nil {
		return nil, err
	}
	return offsetBatch[media.Item](page, offset, body, s.classify)
}

func (s *Search) classify(entry []byte) (extractor.Entry, error) {
	switch s.filter() {
	case FilterChannels:
		return extractor.ChannelEntry{ChannelItemExtractor: channelItem{base: s.BaseURL(), data: entry}}, nil
	case FilterPlaylists:
		return extractor.PlaylistEntry{PlaylistItemExtractor: playlistItem{base: s.BaseURL(), data: entry}}, nil
	default:
		return extractor.StreamEntry{StreamItemExtractor: streamItem{base: s.BaseURL(), data: entry}}, nil
	}
}

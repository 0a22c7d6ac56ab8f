// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"fmt"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

const (
	KioskTrending      = "Trending"
	KioskMostLiked     = "Most liked"
	KioskRecentlyAdded = "Recently added"
	KioskLocal         = "Local"
)

var kioskIDs = []string{KioskTrending, KioskMostLiked, KioskRecentlyAdded, KioskLocal}

var kioskQueries = map[string]string{
	KioskTrending:      "sort=-trending",
	KioskMostLiked:     "sort=-likes",
	KioskRecentlyAdded: "sort=-publishedAt",
	KioskLocal:         "sort=-publishedAt&isLocal=true",
}

func kioskLink(base, id string) (extractor.Link, error) {
	query, ok := kioskQueries[id]
	if !ok {
		return extractor.Link{}, fmt.Errorf("peertube: unknown kiosk %q", id)
	}
	return extractor.Link{
		ID:      id,
		URL:     base + "/api/v1/videos?" + query,
		BaseURL: base,
	}, nil
}

// Kiosk lists instance-wide video feeds.
type Kiosk struct {
	extractor.Base
	page extractor.Cell[[]byte]
}

var _ extractor.KioskExtractor = (*Kiosk)(nil)

func newKiosk(s *Service, link extractor.Link) *Kiosk {
	return &Kiosk{Base: s.base(link)}
}

func (k *Kiosk) FetchPage() error {
	return k.page.Load(func() ([]byte, error) {
		return get(k.Downloader(), firstPage(k.URL()).URL)
	})
}

func (k *Kiosk) Name() (string, error) { return k.ID(), nil }

func (k *Kiosk) InitialPage() (*extractor.Batch[media.Item], error) {
	if err := k.FetchPage(); err != nil {
		return nil, err
	}
	return offsetBatch[media.Item](firstPage(k.URL()), 0, k.page.Get(), videoEntry(k.BaseURL()))
}

func (k *Kiosk) GetPage(page media.Page) (*extractor.Batch[media.Item], error) {
	offset, err := extractor.OffsetOf(page, startParam)
	if err != nil {
		return nil, err
	}

	body, err := get(k.Downloader(), page.URL)
	if err != nil {
		return nil, err
	}
	return offsetBatch[media.Item](page, offset, body, videoEntry(k.BaseURL()))
}

// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"strings"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

// Channel extracts a video channel or an account. Both list their videos the same way; only a
// channel has a parent, its owner account.
type Channel struct {
	extractor.Base
	page extractor.Cell[[]byte]
}

var _ extractor.ChannelExtractor = (*Channel)(nil)

func newChannel(s *Service, link extractor.Link) *Channel {
	return &Channel{Base: s.base(link)}
}

func (c *Channel) account() bool {
	return strings.HasPrefix(c.ID(), "accounts/")
}

func (c *Channel) FetchPage() error {
	return c.page.Load(func() ([]byte, error) {
		return get(c.Downloader(), api(c.Link(), "/%s", c.ID()))
	})
}

func (c *Channel) Name() (string, error) { return str(c.page.Get(), "displayName") }
func (c *Channel) Avatars() ([]media.Image, error) { return avatars(c.BaseURL(), c.page.Get()) }
func (c *Channel) Banners() ([]media.Image, error) { return banners(c.BaseURL(), c.page.Get()) }
func (c *Channel) Description() (string, error) { return optStr(c.page.Get(), "description") }
func (c *Channel) SubscriberCount() (int64, error) { return integer(c.page.Get(), "followersCount") }
func (c *Channel) Verified() (bool, error) { return false, nil }

func (c *Channel) ParentName() (string, error) {
	if c.account() {
		return "", nil
	}
	return str(c.page.Get(), "ownerAccount", "displayName")
}

func (c *Channel) ParentURL() (string, error) {
	if c.account() {
		return "", nil
	}
	return accountURL(c.BaseURL(), c.page.Get(), "ownerAccount")
}

// InitialPage lists the newest videos. It does not need FetchPage.
func (c *Channel) InitialPage() (*extractor.Batch[media.Item], error) {
	return c.GetPage(firstPage(api(c.Link(), "/%s/videos", c.ID())))
}

func (c *Channel) GetPage(page media.Page) (*extractor.Batch[media.Item], error) {
	offset, err := extractor.OffsetOf(page, startParam)
	if err != nil {
		return nil, err
	}

	body, err := get(c.Downloader(), page.URL)
	if err != nil {
		return nil, err
	}
	return offsetBatch[media.Item](page, offset, body, videoEntry(c.BaseURL()))
}

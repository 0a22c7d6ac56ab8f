// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"fmt"

	"github.com/mediax-cli/mediax/extractor"
)

const (
	ServiceID = "peertube"

	// pageSize is the count requested by every offset listing.
	pageSize = 12

	startParam = "start"
	countParam = "count"
)

// Instance is the PeerTube server a Service talks to.
type Instance struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var DefaultInstance = Instance{Name: "Framatube", URL: "https://framatube.org"}

type Service struct {
	instance   Instance
	downloader extractor.Downloader
}

func New(instance Instance, downloader extractor.Downloader) *Service {
	if instance.URL == "" {
		instance = DefaultInstance
	}
	instance.URL = trimSlash(instance.URL)
	return &Service{instance: instance, downloader: downloader}
}

func (s *Service) ID() string { return ServiceID }
func (s *Service) Name() string { return "PeerTube" }
func (s *Service) BaseURL() string { return s.instance.URL }
func (s *Service) Instance() Instance { return s.instance }

func (s *Service) Capabilities() []extractor.Capability {
	return []extractor.Capability{extractor.CapabilityVideo, extractor.CapabilityLive, extractor.CapabilityComments}
}

func (s *Service) StreamLinks() extractor.LinkHandler { return streamLinks{base: s.instance.URL} }
func (s *Service) ChannelLinks() extractor.LinkHandler { return channelLinks{base: s.instance.URL} }
func (s *Service) PlaylistLinks() extractor.LinkHandler { return playlistLinks{base: s.instance.URL} }
func (s *Service) CommentsLinks() extractor.LinkHandler { return commentsLinks{base: s.instance.URL} }
func (s *Service) SearchLinks() extractor.SearchLinkHandler { return searchLinks{base: s.instance.URL} }

func (s *Service) Stream(url string) (extractor.StreamExtractor, error) {
	link, err := s.StreamLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return newStream(s, link), nil
}

// Channel accepts both video-channel and account urls.
func (s *Service) Channel(url string) (extractor.ChannelExtractor, error) {
	link, err := s.ChannelLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return newChannel(s, link), nil
}

func (s *Service) Playlist(url string) (extractor.PlaylistExtractor, error) {
	link, err := s.PlaylistLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return newPlaylist(s, link), nil
}

// Comments accepts a video url for its top-level comments or a thread url for one thread.
func (s *Service) Comments(url string) (extractor.CommentsExtractor, error) {
	link, err := s.CommentsLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return newComments(s, link), nil
}

func (s *Service) Search(query string, filters ...string) (extractor.SearchExtractor, error) {
	link, err := s.SearchLinks().FromQuery(query, filters...)
	if err != nil {
		return nil, err
	}
	return newSearch(s, link), nil
}

func (s *Service) Kiosks() []string {
	return kioskIDs
}

func (s *Service) Kiosk(id string) (extractor.KioskExtractor, error) {
	if id == "" {
		id = KioskTrending
	}

	link, err := kioskLink(s.instance.URL, id)
	if err != nil {
		return nil, err
	}
	return newKiosk(s, link), nil
}

func (s *Service) base(link extractor.Link) extractor.Base {
	return extractor.NewBase(ServiceID, link, s.downloader)
}

// api builds an absolute API url on the instance of link.
func api(link extractor.Link, format string, args ...any) string {
	return link.BaseURL + "/api/v1" + fmt.Sprintf(format, args...)
}

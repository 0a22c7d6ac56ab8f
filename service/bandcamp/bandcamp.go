// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"fmt"

	"github.com/mediax-cli/mediax/extractor"
)

const (
	ServiceID = "bandcamp"

	baseURL        = "https://bandcamp.com"
	bandDetailsURL = baseURL + "/api/mobile/22/band_details"
	bootstrapURL   = baseURL + "/api/mobile/24/bootstrap_data"
	featuredURL    = baseURL + "/api/mobile/24/feed_older_logged_out"
	reviewsURL     = baseURL + "/api/tralbumcollectors/2/reviews"

	// reviewsPerPage is the count the reviews API is asked for.
	reviewsPerPage = 7
)

const KioskFeatured = "Featured"

type Service struct {
	downloader extractor.Downloader
}

func New(downloader extractor.Downloader) *Service {
	return &Service{downloader: downloader}
}

func (s *Service) ID() string { return ServiceID }
func (s *Service) Name() string { return "Bandcamp" }
func (s *Service) BaseURL() string { return baseURL }

func (s *Service) Capabilities() []extractor.Capability {
	return []extractor.Capability{extractor.CapabilityAudio, extractor.CapabilityComments}
}

func (s *Service) StreamLinks() extractor.LinkHandler { return trackLinks{} }
func (s *Service) ChannelLinks() extractor.LinkHandler { return artistLinks{} }
func (s *Service) PlaylistLinks() extractor.LinkHandler { return albumLinks{} }
func (s *Service) CommentsLinks() extractor.LinkHandler { return reviewsLinks{} }
func (s *Service) SearchLinks() extractor.SearchLinkHandler { return searchLinks{} }

func (s *Service) Stream(url string) (extractor.StreamExtractor, error) {
	link, err := s.StreamLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return &Stream{Base: s.base(link)}, nil
}

func (s *Service) Channel(url string) (extractor.ChannelExtractor, error) {
	link, err := s.ChannelLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return &Channel{Base: s.base(link)}, nil
}

func (s *Service) Playlist(url string) (extractor.PlaylistExtractor, error) {
	link, err := s.PlaylistLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return &Playlist{Base: s.base(link)}, nil
}

// Comments lists the reviews left by buyers of a track or an album.
func (s *Service) Comments(url string) (extractor.CommentsExtractor, error) {
	link, err := s.CommentsLinks().FromURL(url)
	if err != nil {
		return nil, err
	}
	return &Comments{Base: s.base(link)}, nil
}

func (s *Service) Search(query string, filters ...string) (extractor.SearchExtractor, error) {
	link, err := s.SearchLinks().FromQuery(query, filters...)
	if err != nil {
		return nil, err
	}
	return &Search{Base: s.base(link)}, nil
}

func (s *Service) Kiosks() []string {
	return []string{KioskFeatured}
}

func (s *Service) Kiosk(id string) (extractor.KioskExtractor, error) {
	if id != "" && id != KioskFeatured {
		return nil, fmt.Errorf("bandcamp: unknown kiosk %q", id)
	}
	link := extractor.Link{ID: KioskFeatured, URL: bootstrapURL, BaseURL: baseURL}
	return &Kiosk{Base: s.base(link)}, nil
}

func (s *Service) base(link extractor.Link) extractor.Base {
	return extractor.NewBase(ServiceID, link, s.downloader)
}

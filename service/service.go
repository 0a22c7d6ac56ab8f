// Package service is the closed registry of compiled-in services.
package service

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/service/bandcamp"
	"github.com/mediax-cli/mediax/service/peertube"
	"github.com/samber/lo"
)

// Service is one site adapter.
type Service interface {
	ID() string
	Name() string
	BaseURL() string
	Capabilities() []extractor.Capability

	StreamLinks() extractor.LinkHandler
	ChannelLinks() extractor.LinkHandler
	PlaylistLinks() extractor.LinkHandler
	CommentsLinks() extractor.LinkHandler
	SearchLinks() extractor.SearchLinkHandler

	Stream(url string) (extractor.StreamExtractor, error)
	Channel(url string) (extractor.ChannelExtractor, error)
	Playlist(url string) (extractor.PlaylistExtractor, error)
	Comments(url string) (extractor.CommentsExtractor, error)
	Search(query string, filters ...string) (extractor.SearchExtractor, error)

	Kiosks() []string
	Kiosk(id string) (extractor.KioskExtractor, error)
}

var (
	_ Service = (*peertube.Service)(nil)
	_ Service = (*bandcamp.Service)(nil)
)

// Options configures the built-in services.
type Options struct {
	Downloader extractor.Downloader
	PeerTube   peertube.Instance
}

// Builtins returns every compiled-in service.
func Builtins(opts Options) []Service {
	return []Service{
		peertube.New(opts.PeerTube, opts.Downloader),
		bandcamp.New(opts.Downloader),
	}
}

// IDs returns the ids of the built-in services.
func IDs() []string {
	return []string{peertube.ServiceID, bandcamp.ServiceID}
}

// Get finds a service by id or display name, ignoring case.
func Get(services []Service, name string) (Service, bool) {
	return lo.Find(services, func(s Service) bool {
		return strings.EqualFold(s.ID(), name) || strings.EqualFold(s.Name(), name)
	})
}

// Closest returns the id of the service whose id is nearest to name.
func Closest(services []Service, name string) string {
	if len(services) == 0 {
		return ""
	}

	name = strings.ToLower(name)
	return lo.MinBy(services, func(a, b Service) bool {
		return levenshtein.Distance(name, a.ID()) < levenshtein.Distance(name, b.ID())
	}).ID()
}

// ErrUnknown returns an error naming the closest known service.
func ErrUnknown(services []Service, name string) error {
	return fmt.Errorf("unknown service %s, did you mean %s?", name, Closest(services, name))
}

// Match is a url resolved to a service and the kind of resource it names.
type Match struct {
	Service Service
	Kind    media.Kind
}

// ForURL finds the service and resource kind a url belongs to.
// Playlists are tried before streams because both share url prefixes on some services.
func ForURL(services []Service, url string) (Match, error) {
	for _, s := range services {
		switch {
		case s.PlaylistLinks().Accepts(url):
			return Match{Service: s, Kind: media.KindPlaylist}, nil
		case s.StreamLinks().Accepts(url):
			return Match{Service: s, Kind: media.KindStream}, nil
		case s.ChannelLinks().Accepts(url):
			return Match{Service: s, Kind: media.KindChannel}, nil
		}
	}

	return Match{}, fmt.Errorf("%w: no service handles %s", extractor.ErrUnsupportedURL, url)
}

// Listing opens the paginated extractor for a url: a channel, a playlist or the comments of a stream.
func (m Match) Listing(url string) (extractor.ListExtractor[media.Item], error) {
	switch m.Kind {
	case media.KindChannel:
		return m.Service.Channel(url)
	case media.KindPlaylist:
		l, err := m.Service.Playlist(url)
		if err != nil {
			return nil, err
		}
		return extractor.Items[*media.StreamItem](l), nil
	default:
		l, err := m.Service.Comments(url)
		if err != nil {
			return nil, err
		}
		return extractor.Items[*media.CommentItem](l), nil
	}
}

// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/util"
)

var (
	streamPattern   = regexp.MustCompile(`^(?P<base>https?://[^/]+)/(?:videos/(?:watch|embed)|w)/(?P<id>[^/?&#;]+)`)
	channelPattern  = regexp.MustCompile(`^(?P<base>https?://[^/]+)/(?:api/v1/)?(?P<kind>video-channels|accounts|c|a)/(?P<id>[^/?&#]+)`)
	playlistPattern = regexp.MustCompile(`^(?P<base>https?://[^/]+)/(?:videos/watch/playlist|w/p|api/v1/video-playlists|video-playlists)/(?P<id>[^/?&#]+)`)
	commentsPattern = regexp.MustCompile(`^(?P<base>https?://[^/]+)/api/v1/videos/(?P<id>[^/?&#]+)/comment-threads(?:/(?P<thread>\d+))?`)
	threadPattern   = regexp.MustCompile(`/comment-threads/(\d+)`)
)

func match(pattern *regexp.Regexp, rawURL string) (map[string]string, error) {
	groups := util.ReGroups(pattern, rawURL)
	if groups["id"] == "" {
		return nil, fmt.Errorf("%w: %s", extractor.ErrUnsupportedURL, rawURL)
	}
	return groups, nil
}

type streamLinks struct{ base string }

// Playlist urls share the /w/ and /videos/watch/ prefixes with videos.
func (h streamLinks) Accepts(url string) bool {
	return streamPattern.MatchString(url) && !playlistPattern.MatchString(url)
}

func (h streamLinks) FromURL(rawURL string) (extractor.Link, error) {
	if playlistPattern.MatchString(rawURL) {
		return extractor.Link{}, fmt.Errorf("%w: %s is a playlist", extractor.ErrUnsupportedURL, rawURL)
	}

	groups, err := match(streamPattern, rawURL)
	if err != nil {
		return extractor.Link{}, err
	}
	return extractor.Link{
		ID:          groups["id"],
		URL:         watchURL(groups["base"], groups["id"]),
		OriginalURL: rawURL,
		BaseURL:     groups["base"],
	}, nil
}

func (h streamLinks) FromID(id string) (string, error) {
	return watchURL(h.base, id), nil
}

func watchURL(base, id string) string {
	return base + "/videos/watch/" + id
}

// channelLinks handles video channels and accounts. The id keeps the kind, as in
// "video-channels/name@host" or "accounts/name@host".
type channelLinks struct{ base string }

func (h channelLinks) Accepts(url string) bool { return channelPattern.MatchString(url) }

func (h channelLinks) FromURL(rawURL string) (extractor.Link, error) {
	groups, err := match(channelPattern, rawURL)
	if err != nil {
		return extractor.Link{}, err
	}

	kind := groups["kind"]
	switch kind {
	case "c":
		kind = "video-channels"
	case "a":
		kind = "accounts"
	}

	id := kind + "/" + groups["id"]
	return extractor.Link{
		ID:          id,
		URL:         groups["base"] + "/" + id,
		OriginalURL: rawURL,
		BaseURL:     groups["base"],
	}, nil
}

func (h channelLinks) FromID(id string) (string, error) {
	if !strings.HasPrefix(id, "video-channels/") && !strings.HasPrefix(id, "accounts/") {
		return "", fmt.Errorf("%w: channel id %q has no kind", extractor.ErrUnsupportedURL, id)
	}
	return h.base + "/" + id, nil
}

type playlistLinks struct{ base string }

func (h playlistLinks) Accepts(url string) bool { return playlistPattern.MatchString(url) }

func (h playlistLinks) FromURL(rawURL string) (extractor.Link, error) {
	groups, err := match(playlistPattern, rawURL)
	if err != nil {
		return extractor.Link{}, err
	}
	return extractor.Link{
		ID:          groups["id"],
		URL:         groups["base"] + "/w/p/" + groups["id"],
		OriginalURL: rawURL,
		BaseURL:     groups["base"],
	}, nil
}

func (h playlistLinks) FromID(id string) (string, error) {
	return h.base + "/w/p/" + id, nil
}

// commentsLinks maps a video url to its comment threads. A comment-threads API url that names a
// thread addresses that thread's replies.
type commentsLinks struct{ base string }

func (h commentsLinks) Accepts(url string) bool {
	return commentsPattern.MatchString(url) || streamLinks(h).Accepts(url)
}

func (h commentsLinks) FromURL(rawURL string) (extractor.Link, error) {
	groups := util.ReGroups(commentsPattern, rawURL)
	if groups["id"] == "" {
		video, err := streamLinks(h).FromURL(rawURL)
		if err != nil {
			return extractor.Link{}, err
		}
		groups = map[string]string{"id": video.ID, "base": video.BaseURL}
	}

	link := extractor.Link{
		ID:          groups["id"],
		URL:         threadsURL(groups["base"], groups["id"]),
		OriginalURL: rawURL,
		BaseURL:     groups["base"],
	}
	if thread := groups["thread"]; thread != "" {
		link.URL = threadURL(groups["base"], groups["id"], thread)
	}
	return link, nil
}

func (h commentsLinks) FromID(id string) (string, error) {
	return threadsURL(h.base, id), nil
}

func threadsURL(base, videoID string) string {
	return base + "/api/v1/videos/" + videoID + "/comment-threads"
}

func threadURL(base, videoID, threadID string) string {
	return threadsURL(base, videoID) + "/" + threadID
}

// Search content filters.
const (
	FilterVideos    = "videos"
	FilterChannels  = "channels"
	FilterPlaylists = "playlists"
)

var searchEndpoints = map[string]string{
	FilterVideos:    "videos",
	FilterChannels:  "video-channels",
	FilterPlaylists: "video-playlists",
}

type searchLinks struct{ base string }

func (h searchLinks) Filters() []string {
	return []string{FilterVideos, FilterChannels, FilterPlaylists}
}

func (h searchLinks) FromQuery(query string, filters ...string) (extractor.Link, error) {
	filter := FilterVideos
	if len(filters) > 0 && filters[0] != "" {
		filter = filters[0]
	}
	if !slices.Contains(h.Filters(), filter) {
		return extractor.Link{}, fmt.Errorf("peertube: unknown search filter %q", filter)
	}

	u := h.base + "/api/v1/search/" + searchEndpoints[filter] + "?search=" + url.QueryEscape(query)
	return extractor.Link{
		ID:      query,
		URL:     u,
		BaseURL: h.base,
		Filters: []string{filter},
	}, nil
}

// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

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
	trackPattern  = regexp.MustCompile(`^https?://(?P<artist>[a-z0-9-]+)\.bandcamp\.com/track/(?P<slug>[^/?#]+)`)
	albumPattern  = regexp.MustCompile(`^https?://(?P<artist>[a-z0-9-]+)\.bandcamp\.com/album/(?P<slug>[^/?#]+)`)
	artistPattern = regexp.MustCompile(`^https?://(?P<artist>[a-z0-9-]+)\.bandcamp\.com(?:/(?:music|releases)?)?/?(?:[?#].*)?$`)
)

// Subdomains that are not artists.
var reserved = []string{"www", "daily", "m"}

func artistBase(artist string) string {
	return "https://" + artist + ".bandcamp.com"
}

func unsupported(rawURL string) error {
	return fmt.Errorf("%w: %s", extractor.ErrUnsupportedURL, rawURL)
}

// tralbumLink matches a track or album url. Its id is "artist/slug".
func tralbumLink(pattern *regexp.Regexp, kind, rawURL string) (extractor.Link, error) {
	groups := util.ReGroups(pattern, rawURL)
	if groups["slug"] == "" || slices.Contains(reserved, groups["artist"]) {
		return extractor.Link{}, unsupported(rawURL)
	}

	base := artistBase(groups["artist"])
	return extractor.Link{
		ID:          groups["artist"] + "/" + groups["slug"],
		URL:         base + "/" + kind + "/" + groups["slug"],
		OriginalURL: rawURL,
		BaseURL:     base,
	}, nil
}

func tralbumURL(kind, id string) (string, error) {
	artist, slug, ok := strings.Cut(id, "/")
	if !ok || artist == "" || slug == "" {
		return "", fmt.Errorf("%w: %s id %q", extractor.ErrUnsupportedURL, kind, id)
	}
	return artistBase(artist) + "/" + kind + "/" + slug, nil
}

type trackLinks struct{}

func (trackLinks) Accepts(url string) bool { return trackPattern.MatchString(url) }

func (trackLinks) FromURL(rawURL string) (extractor.Link, error) {
	return tralbumLink(trackPattern, "track", rawURL)
}

func (trackLinks) FromID(id string) (string, error) { return tralbumURL("track", id) }

type albumLinks struct{}

func (albumLinks) Accepts(url string) bool { return albumPattern.MatchString(url) }

func (albumLinks) FromURL(rawURL string) (extractor.Link, error) {
	return tralbumLink(albumPattern, "album", rawURL)
}

func (albumLinks) FromID(id string) (string, error) { return tralbumURL("album", id) }

// artistLinks points at the discography page of an artist or label.
type artistLinks struct{}

func (artistLinks) Accepts(url string) bool {
	groups := util.ReGroups(artistPattern, url)
	return groups["artist"] != "" && !slices.Contains(reserved, groups["artist"])
}

func (h artistLinks) FromURL(rawURL string) (extractor.Link, error) {
	if !h.Accepts(rawURL) {
		return extractor.Link{}, unsupported(rawURL)
	}

	artist := util.ReGroups(artistPattern, rawURL)["artist"]
	return extractor.Link{
		ID:          artist,
		URL:         artistBase(artist) + "/music",
		OriginalURL: rawURL,
		BaseURL:     artistBase(artist),
	}, nil
}

func (artistLinks) FromID(id string) (string, error) {
	return artistBase(id) + "/music", nil
}

// reviewsLinks accepts both tracks and albums. The id is the canonical page url, which carries
// the kind.
type reviewsLinks struct{}

func (reviewsLinks) Accepts(url string) bool {
	return trackPattern.MatchString(url) || albumPattern.MatchString(url)
}

func (reviewsLinks) FromURL(rawURL string) (extractor.Link, error) {
	link, err := trackLinks{}.FromURL(rawURL)
	if err != nil {
		if link, err = (albumLinks{}).FromURL(rawURL); err != nil {
			return extractor.Link{}, err
		}
	}
	link.ID = link.URL
	return link, nil
}

func (reviewsLinks) FromID(id string) (string, error) { return id, nil }

// Search content filters.
const (
	FilterAll     = "all"
	FilterArtists = "artists"
	FilterAlbums  = "albums"
	FilterTracks  = "tracks"
)

var itemTypes = map[string]string{
	FilterAll:     "",
	FilterArtists: "b",
	FilterAlbums:  "a",
	FilterTracks:  "t",
}

type searchLinks struct{}

func (searchLinks) Filters() []string {
	return []string{FilterAll, FilterArtists, FilterAlbums, FilterTracks}
}

func (h searchLinks) FromQuery(query string, filters ...string) (extractor.Link, error) {
	filter := FilterAll
	if len(filters) > 0 && filters[0] != "" {
		filter = filters[0]
	}
	if !slices.Contains(h.Filters(), filter) {
		return extractor.Link{}, fmt.Errorf("bandcamp: unknown search filter %q", filter)
	}

	return extractor.Link{
		ID:      query,
		URL:     searchURL(query, itemTypes[filter], 1),
		BaseURL: baseURL,
		Filters: []string{filter},
	}, nil
}

func searchURL(query, itemType string, page int) string {
	values := url.Values{}
	values.Set("q", query)
	values.Set("page", fmt.Sprint(page))
	if itemType != "" {
		values.Set("item_type", itemType)
	}
	return baseURL + "/search?" + values.Encode()
}

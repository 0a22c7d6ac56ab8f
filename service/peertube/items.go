// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

// streamItem reads one video object of a listing.
type streamItem struct {
	base string
	data []byte
}

func (i streamItem) Name() (string, error) { return str(i.data, "name") }

func (i streamItem) URL() (string, error) {
	id, err := str(i.data, "uuid")
	if err != nil {
		return "", err
	}
	return watchURL(i.base, id), nil
}

func (i streamItem) Thumbnails() ([]media.Image, error) { return thumbnails(i.base, i.data) }

func (i streamItem) StreamType() (media.StreamType, error) {
	if live, _ := jsonparser.GetBoolean(i.data, "isLive"); live {
		return media.StreamLive, nil
	}
	return media.StreamVideo, nil
}

func (i streamItem) Duration() (int64, error) { return integer(i.data, "duration") }
func (i streamItem) ViewCount() (int64, error) { return integer(i.data, "views") }
func (i streamItem) UploaderName() (string, error) { return str(i.data, "account", "displayName") }
func (i streamItem) UploaderURL() (string, error) { return accountURL(i.base, i.data, "account") }

func (i streamItem) UploaderAvatars() ([]media.Image, error) {
	return avatars(i.base, i.data, "account")
}

func (i streamItem) UploaderVerified() (bool, error) { return false, nil }
func (i streamItem) UploadDate() (time.Time, error) { return date(i.data, "publishedAt") }
func (i streamItem) TextualUploadDate() (string, error) { return str(i.data, "publishedAt") }

func (i streamItem) ShortDescription() (string, error) {
	if s, err := optStr(i.data, "truncatedDescription"); err != nil || s != "" {
		return s, err
	}
	return optStr(i.data, "description")
}

// channelItem reads one video-channel object of a search result.
type channelItem struct {
	base string
	data []byte
}

func (i channelItem) Name() (string, error) { return str(i.data, "displayName") }
func (i channelItem) URL() (string, error) { return channelURL(i.base, i.data) }
func (i channelItem) Thumbnails() ([]media.Image, error) { return avatars(i.base, i.data) }
func (i channelItem) Description() (string, error) { return optStr(i.data, "description") }
func (i channelItem) SubscriberCount() (int64, error) { return integer(i.data, "followersCount") }
func (i channelItem) StreamCount() (int64, error) { return media.Unknown, nil }
func (i channelItem) Verified() (bool, error) { return false, nil }

// playlistItem reads one video-playlist object of a search result.
type playlistItem struct {
	base string
	data []byte
}

func (i playlistItem) Name() (string, error) { return str(i.data, "displayName") }

func (i playlistItem) URL() (string, error) {
	id, err := str(i.data, "uuid")
	if err != nil {
		return "", err
	}
	return i.base + "/w/p/" + id, nil
}

func (i playlistItem) Thumbnails() ([]media.Image, error) { return thumbnails(i.base, i.data) }
func (i playlistItem) UploaderName() (string, error) { return str(i.data, "ownerAccount", "displayName") }
func (i playlistItem) UploaderURL() (string, error) { return accountURL(i.base, i.data, "ownerAccount") }
func (i playlistItem) UploaderVerified() (bool, error) { return false, nil }
func (i playlistItem) StreamCount() (int64, error) { return integer(i.data, "videosLength") }

func (i playlistItem) Description() (media.Description, error) {
	s, err := optStr(i.data, "description")
	if err != nil || s == "" {
		return media.EmptyDescription, err
	}
	return media.MarkdownDescription(s), nil
}

// eachData runs fn over the elements of the listing's data array.
func eachData(body []byte, fn func(entry []byte)) error {
	_, err := jsonparser.ArrayEach(body, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		fn(value)
	}, "data")
	if err != nil {
		return extractor.Malformed("data", err)
	}
	return nil
}

// offsetBatch commits every entry of an offset listing response and computes the next page.
// The offset is validated by the caller before the request is made.
func offsetBatch[T media.Item](page media.Page, offset int64, body []byte, classify func(entry []byte) (extractor.Entry, error)) (*extractor.Batch[T], error) {
	total, err := integer(body, "total")
	if err != nil {
		return nil, err
	}

	c := extractor.NewCollector[T](ServiceID)
	if err := eachData(body, func(entry []byte) { c.Classified(classify(entry)) }); err != nil {
		return nil, err
	}

	return c.Batch(extractor.NextOffset(page, startParam, offset, pageSize, total)), nil
}

func videoEntry(base string) func([]byte) (extractor.Entry, error) {
	return func(entry []byte) (extractor.Entry, error) {
		return extractor.StreamEntry{StreamItemExtractor: streamItem{base: base, data: entry}}, nil
	}
}

// firstPage is the initial offset page of a listing endpoint.
func firstPage(endpoint string) media.Page {
	u := extractor.WithQuery(endpoint, startParam, "0")
	return media.NewPage(extractor.WithQuery(u, countParam, formatInt(pageSize)))
}

// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
//
// An extractor is created for one resource, fetched once with FetchPage and then read through its
// accessors. Calling an accessor before FetchPage panics. Listings never keep continuation state in
// the extractor: any Page returned in a Batch can be replayed with GetPage on a new instance.
package extractor

import (
	"time"

	"github.com/mediax-cli/mediax/media"
)

// Capability is a kind of content a service offers.
type Capability string

const (
	CapabilityAudio    Capability = "audio"
	CapabilityVideo    Capability = "video"
	CapabilityLive     Capability = "live"
	CapabilityComments Capability = "comments"
)

// Extractor is the part of the contract shared by every resource.
type Extractor interface {
	// FetchPage performs the network round trips for the resource. It is idempotent:
	// a second call returns the outcome of the first.
	FetchPage() error

	ServiceID() string
	ID() string
	URL() string
	OriginalURL() string
	BaseURL() string
	Name() (string, error)
}

// Base implements the identity part of Extractor.
type Base struct {
	service    string
	link       Link
	downloader Downloader
}

func NewBase(service string, link Link, downloader Downloader) Base {
	return Base{service: service, link: link, downloader: downloader}
}

func (b *Base) ServiceID() string { return b.service }
func (b *Base) ID() string { return b.link.ID }
func (b *Base) URL() string { return b.link.URL }
func (b *Base) BaseURL() string { return b.link.BaseURL }
func (b *Base) Link() Link { return b.link }
func (b *Base) Downloader() Downloader { return b.downloader }

func (b *Base) OriginalURL() string {
	if b.link.OriginalURL != "" {
		return b.link.OriginalURL
	}
	return b.link.URL
}

// ListExtractor yields a resource's items in batches.
//
// InitialPage fetches the resource if needed. GetPage rejects a page missing the fields the
// listing needs with *InvalidPageError and does not require FetchPage.
type ListExtractor[T media.Item] interface {
	Extractor
	InitialPage() (*Batch[T], error)
	GetPage(page media.Page) (*Batch[T], error)
}

type StreamExtractor interface {
	Extractor
	StreamType() (media.StreamType, error)
	Description() (media.Description, error)
	Thumbnails() ([]media.Image, error)
	Duration() (int64, error)
	ViewCount() (int64, error)
	LikeCount() (int64, error)
	DislikeCount() (int64, error)
	UploaderName() (string, error)
	UploaderURL() (string, error)
	UploaderAvatars() ([]media.Image, error)
	ChannelName() (string, error)
	ChannelURL() (string, error)
	UploadDate() (time.Time, error)
	TextualUploadDate() (string, error)
	Tags() ([]string, error)
	Category() (string, error)
	Licence() (string, error)
	Language() (string, error)
	Privacy() (string, error)
	SupportInfo() (string, error)
	AgeLimit() (int, error)
	HLSURL() (string, error)
	AudioStreams() ([]media.AudioStream, error)
	VideoStreams() ([]media.VideoStream, error)
	VideoOnlyStreams() ([]media.VideoStream, error)
	Subtitles() ([]media.SubtitleStream, error)
}

type ChannelExtractor interface {
	ListExtractor[media.Item]
	Avatars() ([]media.Image, error)
	Banners() ([]media.Image, error)
	Description() (string, error)
	SubscriberCount() (int64, error)
	Verified() (bool, error)
	ParentName() (string, error)
	ParentURL() (string, error)
}

type PlaylistExtractor interface {
	ListExtractor[*media.StreamItem]
	Thumbnails() ([]media.Image, error)
	Description() (media.Description, error)
	UploaderName() (string, error)
	UploaderURL() (string, error)
	UploaderAvatars() ([]media.Image, error)
	StreamCount() (int64, error)
}

type CommentsExtractor interface {
	ListExtractor[*media.CommentItem]
	CommentsDisabled() (bool, error)
}

type SearchExtractor interface {
	ListExtractor[media.Item]
	SearchString() string
	Suggestion() (string, error)
}

type KioskExtractor interface {
	ListExtractor[media.Item]
}

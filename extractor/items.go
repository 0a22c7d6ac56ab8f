// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import (
	"time"

	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

// An item extractor wraps one raw record and reads it without network access.
// Every accessor fails on its own.

type InfoItemExtractor interface {
	Name() (string, error)
	URL() (string, error)
	Thumbnails() ([]media.Image, error)
}

type StreamItemExtractor interface {
	InfoItemExtractor
	StreamType() (media.StreamType, error)
	Duration() (int64, error)
	ViewCount() (int64, error)
	UploaderName() (string, error)
	UploaderURL() (string, error)
	UploaderAvatars() ([]media.Image, error)
	UploaderVerified() (bool, error)
	UploadDate() (time.Time, error)
	TextualUploadDate() (string, error)
	ShortDescription() (string, error)
}

type ChannelItemExtractor interface {
	InfoItemExtractor
	Description() (string, error)
	SubscriberCount() (int64, error)
	StreamCount() (int64, error)
	Verified() (bool, error)
}

type PlaylistItemExtractor interface {
	InfoItemExtractor
	UploaderName() (string, error)
	UploaderURL() (string, error)
	UploaderVerified() (bool, error)
	StreamCount() (int64, error)
	Description() (media.Description, error)
}

// CommentItemExtractor reads one comment. Name is the author's display name.
type CommentItemExtractor interface {
	InfoItemExtractor
	CommentID() (string, error)
	Text() (media.Description, error)
	UploaderURL() (string, error)
	UploaderAvatars() ([]media.Image, error)
	UploaderVerified() (bool, error)
	UploadDate() (time.Time, error)
	TextualUploadDate() (string, error)
	LikeCount() (int64, error)
	ReplyCount() (int64, error)
	Replies() (mo.Option[media.Page], error)
	Pinned() (bool, error)
	HeartedByUploader() (bool, error)
	ByChannelOwner() (bool, error)
	HasCreatorReply() (bool, error)
}

// errNotProvided is returned by the defaults below for fields a service does not have.
var errNotProvided = Malformedf("", "not provided by this service")

// StreamItemDefaults can be embedded by item extractors for the fields their service lacks.
type StreamItemDefaults struct{}

func (StreamItemDefaults) StreamType() (media.StreamType, error) { return media.StreamVideo, nil }
func (StreamItemDefaults) Duration() (int64, error) { return media.Unknown, nil }
func (StreamItemDefaults) ViewCount() (int64, error) { return media.Unknown, nil }
func (StreamItemDefaults) UploaderAvatars() ([]media.Image, error) { return nil, nil }
func (StreamItemDefaults) UploaderVerified() (bool, error) { return false, nil }
func (StreamItemDefaults) UploadDate() (time.Time, error) { return time.Time{}, errNotProvided }
func (StreamItemDefaults) TextualUploadDate() (string, error) { return "", nil }
func (StreamItemDefaults) ShortDescription() (string, error) { return "", nil }

// CommentItemDefaults can be embedded by comment item extractors.
type CommentItemDefaults struct{}

func (CommentItemDefaults) UploaderAvatars() ([]media.Image, error) { return nil, nil }
func (CommentItemDefaults) UploaderVerified() (bool, error) { return false, nil }
func (CommentItemDefaults) UploadDate() (time.Time, error) { return time.Time{}, errNotProvided }
func (CommentItemDefaults) TextualUploadDate() (string, error) { return "", nil }
func (CommentItemDefaults) LikeCount() (int64, error) { return media.Unknown, nil }
func (CommentItemDefaults) ReplyCount() (int64, error) { return media.UnknownReplyCount, nil }
func (CommentItemDefaults) Replies() (mo.Option[media.Page], error) { return mo.None[media.Page](), nil }
func (CommentItemDefaults) Pinned() (bool, error) { return false, nil }
func (CommentItemDefaults) HeartedByUploader() (bool, error) { return false, nil }
func (CommentItemDefaults) ByChannelOwner() (bool, error) { return false, nil }
func (CommentItemDefaults) HasCreatorReply() (bool, error) { return false, nil }

// Package media defines the record model shared by every service: listing items, images,
// audio/video/subtitle streams and the continuation Page.
package media

import (
	"time"

	"github.com/samber/mo"
)

// StreamType distinguishes on-demand and live audio/video.
type StreamType int

const (
	StreamNone StreamType = iota
	StreamVideo
	StreamAudio
	StreamLive
	StreamAudioLive
)

func (t StreamType) String() string {
	switch t {
	case StreamVideo:
		return "video"
	case StreamAudio:
		return "audio"
	case StreamLive:
		return "live"
	case StreamAudioLive:
		return "audio_live"
	default:
		return "none"
	}
}

func (t StreamType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsLive reports whether the stream has no progressive file.
func (t StreamType) IsLive() bool {
	return t == StreamLive || t == StreamAudioLive
}

// StreamItem is a single video or track in a listing.
type StreamItem struct {
	Record
	StreamType        StreamType           `json:"stream_type"`
	Duration          int64                `json:"duration"`
	ViewCount         int64                `json:"view_count"`
	UploaderName      string               `json:"uploader_name"`
	UploaderURL       string               `json:"uploader_url"`
	UploaderAvatars   []Image              `json:"uploader_avatars"`
	UploaderVerified  bool                 `json:"uploader_verified"`
	UploadDate        mo.Option[time.Time] `json:"upload_date"`
	TextualUploadDate string               `json:"textual_upload_date"`
	ShortDescription  string               `json:"short_description"`
}

func (*StreamItem) Kind() Kind { return KindStream }

// ChannelItem is a channel, account or artist in a listing.
type ChannelItem struct {
	Record
	Description     string `json:"description"`
	SubscriberCount int64  `json:"subscriber_count"`
	StreamCount     int64  `json:"stream_count"`
	Verified        bool   `json:"verified"`
}

func (*ChannelItem) Kind() Kind { return KindChannel }

// PlaylistItem is a playlist or album in a listing.
type PlaylistItem struct {
	Record
	UploaderName     string      `json:"uploader_name"`
	UploaderURL      string      `json:"uploader_url"`
	UploaderVerified bool        `json:"uploader_verified"`
	StreamCount      int64       `json:"stream_count"`
	Description      Description `json:"description"`
}

func (*PlaylistItem) Kind() Kind { return KindPlaylist }

// CommentItem is one comment. Name holds the author's display name.
//
// Replies is present when the comment has children. The Page either addresses the thread on the
// server or carries the already-fetched children in its body; callers expand both the same way.
type CommentItem struct {
	Record
	CommentID         string               `json:"comment_id"`
	Text              Description          `json:"text"`
	UploaderURL       string               `json:"uploader_url"`
	UploaderAvatars   []Image              `json:"uploader_avatars"`
	UploaderVerified  bool                 `json:"uploader_verified"`
	UploadDate        mo.Option[time.Time] `json:"upload_date"`
	TextualUploadDate string               `json:"textual_upload_date"`
	LikeCount         int64                `json:"like_count"`
	ReplyCount        int64                `json:"reply_count"`
	Replies           mo.Option[Page]      `json:"replies"`
	Pinned            bool                 `json:"pinned"`
	HeartedByUploader bool                 `json:"hearted_by_uploader"`
	ByChannelOwner    bool                 `json:"by_channel_owner"`
	HasCreatorReply   bool                 `json:"has_creator_reply"`
}

func (*CommentItem) Kind() Kind { return KindComment }

// Uploader is the author's display name.
func (c *CommentItem) Uploader() string {
	return c.Name
}

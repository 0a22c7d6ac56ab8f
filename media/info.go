// Package media defines the record model shared by every service: listing items, images,
// audio/video/subtitle streams and the continuation Page.
package media

import (
	"time"

	"github.com/samber/mo"
)

// StreamInfo is the full detail of one stream. Errors lists the optional fields that could not be
// extracted; those fields hold their unknown value.
type StreamInfo struct {
	Record
	ID                string               `json:"id"`
	StreamType        StreamType           `json:"stream_type"`
	Description       Description          `json:"description"`
	Duration          int64                `json:"duration"`
	ViewCount         int64                `json:"view_count"`
	LikeCount         int64                `json:"like_count"`
	DislikeCount      int64                `json:"dislike_count"`
	UploaderName      string               `json:"uploader_name"`
	UploaderURL       string               `json:"uploader_url"`
	UploaderAvatars   []Image              `json:"uploader_avatars"`
	ChannelName       string               `json:"channel_name"`
	ChannelURL        string               `json:"channel_url"`
	UploadDate        mo.Option[time.Time] `json:"upload_date"`
	TextualUploadDate string               `json:"textual_upload_date"`
	Tags              []string             `json:"tags"`
	Category          string               `json:"category"`
	Licence           string               `json:"licence"`
	Language          string               `json:"language"`
	Privacy           string               `json:"privacy"`
	SupportInfo       string               `json:"support_info"`
	AgeLimit          int                  `json:"age_limit"`
	HLSURL            string               `json:"hls_url"`
	AudioStreams      []AudioStream        `json:"audio_streams"`
	VideoStreams      []VideoStream        `json:"video_streams"`
	VideoOnlyStreams  []VideoStream        `json:"video_only_streams"`
	Subtitles         []SubtitleStream     `json:"subtitles"`
	Errors            Issues               `json:"errors"`
}

func (*StreamInfo) Kind() Kind { return KindStream }

type ChannelInfo struct {
	Record
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Avatars         []Image `json:"avatars"`
	Banners         []Image `json:"banners"`
	SubscriberCount int64   `json:"subscriber_count"`
	Verified        bool    `json:"verified"`
	ParentName      string  `json:"parent_name"`
	ParentURL       string  `json:"parent_url"`
	Errors          Issues  `json:"errors"`
}

func (*ChannelInfo) Kind() Kind { return KindChannel }

type PlaylistInfo struct {
	Record
	ID              string      `json:"id"`
	Description     Description `json:"description"`
	UploaderName    string      `json:"uploader_name"`
	UploaderURL     string      `json:"uploader_url"`
	UploaderAvatars []Image     `json:"uploader_avatars"`
	StreamCount     int64       `json:"stream_count"`
	Errors          Issues      `json:"errors"`
}

func (*PlaylistInfo) Kind() Kind { return KindPlaylist }

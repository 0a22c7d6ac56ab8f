// Package media defines the record model shared by every service: listing items, images,
// audio/video/subtitle streams and the continuation Page.
package media

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DeliveryMethod is the transport shape of a stream.
type DeliveryMethod int

const (
	DeliveryProgressiveHTTP DeliveryMethod = iota
	DeliveryHLS
	DeliveryTorrent
	DeliveryDASH
)

func (d DeliveryMethod) String() string {
	switch d {
	case DeliveryHLS:
		return "hls"
	case DeliveryTorrent:
		return "torrent"
	case DeliveryDASH:
		return "dash"
	default:
		return "progressive_http"
	}
}

func (d DeliveryMethod) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MediaFormat is a container or subtitle format.
type MediaFormat struct {
	Name     string `json:"name"`
	Suffix   string `json:"suffix"`
	MimeType string `json:"mime_type"`
}

var (
	FormatUnknown = MediaFormat{}

	FormatMPEG4 = MediaFormat{"MPEG-4", "mp4", "video/mp4"}
	FormatWebM  = MediaFormat{"WebM", "webm", "video/webm"}
	FormatMKV   = MediaFormat{"Matroska", "mkv", "video/x-matroska"}
	FormatMP3   = MediaFormat{"MP3", "mp3", "audio/mpeg"}
	FormatM4A   = MediaFormat{"m4a", "m4a", "audio/mp4"}
	FormatOGG   = MediaFormat{"ogg", "ogg", "audio/ogg"}
	FormatOpus  = MediaFormat{"opus", "opus", "audio/opus"}
	FormatFLAC  = MediaFormat{"FLAC", "flac", "audio/flac"}
	FormatWAV   = MediaFormat{"WAV", "wav", "audio/wav"}
	FormatVTT   = MediaFormat{"WebVTT", "vtt", "text/vtt"}
	FormatSRT   = MediaFormat{"SubRip", "srt", "text/srt"}
	FormatTTML  = MediaFormat{"Timed Text Markup Language", "ttml", "application/ttml+xml"}
	FormatM3U8  = MediaFormat{"HLS playlist", "m3u8", "application/vnd.apple.mpegurl"}
)

var formats = []MediaFormat{
	FormatMPEG4, FormatWebM, FormatMKV,
	FormatMP3, FormatM4A, FormatOGG, FormatOpus, FormatFLAC, FormatWAV,
	FormatVTT, FormatSRT, FormatTTML,
	FormatM3U8,
}

// FormatFromSuffix looks a format up by file extension, with or without the leading dot.
func FormatFromSuffix(suffix string) (MediaFormat, bool) {
	suffix = strings.ToLower(strings.TrimPrefix(suffix, "."))
	return lo.Find(formats, func(f MediaFormat) bool {
		return f.Suffix == suffix
	})
}

// FormatFromMime looks a format up by mime type, ignoring parameters.
func FormatFromMime(mime string) (MediaFormat, bool) {
	mime, _, _ = strings.Cut(mime, ";")
	mime = strings.ToLower(strings.TrimSpace(mime))
	return lo.Find(formats, func(f MediaFormat) bool {
		return f.MimeType == mime
	})
}

func (f MediaFormat) IsUnknown() bool {
	return f == FormatUnknown
}

// StreamKey is the dedup key of a stream: two streams with equal keys are similar.
type StreamKey struct {
	Resolution string
	Format     string
	Delivery   DeliveryMethod
}

// Keyed is implemented by every stream record.
type Keyed interface {
	Key() StreamKey
}

// ContainsSimilar reports whether list already holds a stream similar to s.
func ContainsSimilar[S Keyed](list []S, s S) bool {
	key := s.Key()
	return lo.ContainsBy(list, func(other S) bool {
		return other.Key() == key
	})
}

// AudioStream is one audio-only rendition. Quality carries the service's label for it.
type AudioStream struct {
	ID          string         `json:"id"`
	Content     string         `json:"content"`
	Delivery    DeliveryMethod `json:"delivery_method"`
	Format      MediaFormat    `json:"media_format"`
	Quality     string         `json:"quality"`
	Bitrate     int            `json:"bitrate"`
	ManifestURL string         `json:"manifest_url,omitempty"`
}

func (s AudioStream) Key() StreamKey {
	return StreamKey{Resolution: s.Quality, Format: s.Format.Suffix, Delivery: s.Delivery}
}

// VideoStream is one video rendition, muxed with audio unless VideoOnly is set.
type VideoStream struct {
	ID          string         `json:"id"`
	Content     string         `json:"content"`
	Delivery    DeliveryMethod `json:"delivery_method"`
	Format      MediaFormat    `json:"media_format"`
	Resolution  string         `json:"resolution"`
	VideoOnly   bool           `json:"is_video_only"`
	ManifestURL string         `json:"manifest_url,omitempty"`
}

func (s VideoStream) Key() StreamKey {
	return StreamKey{Resolution: s.Resolution, Format: s.Format.Suffix, Delivery: s.Delivery}
}

type SubtitleStream struct {
	ID            string         `json:"id"`
	Content       string         `json:"content"`
	Delivery      DeliveryMethod `json:"delivery_method"`
	Format        MediaFormat    `json:"media_format"`
	LanguageCode  string         `json:"language_code"`
	Language      string         `json:"language"`
	AutoGenerated bool           `json:"auto_generated"`
}

func (s SubtitleStream) Key() StreamKey {
	return StreamKey{Resolution: s.LanguageCode, Format: s.Format.Suffix, Delivery: s.Delivery}
}

// Height reads the pixel height from labels such as "1080p" or "720p60". It is 0 when unknown.
func (s VideoStream) Height() int {
	digits := strings.TrimLeftFunc(s.Resolution, func(r rune) bool { return r < '0' || r > '9' })
	end := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' })
	if end >= 0 {
		digits = digits[:end]
	}

	h, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return h
}

// Playable reports whether a player can open the stream by url. Torrents need a client.
func (d DeliveryMethod) Playable() bool {
	return d != DeliveryTorrent
}

// BestVideo picks the playable stream with the greatest height. On ties the earlier stream wins,
// so services list their preferred delivery first.
func BestVideo(streams []VideoStream) (VideoStream, bool) {
	playable := lo.Filter(streams, func(s VideoStream, _ int) bool {
		return s.Delivery.Playable()
	})
	if len(playable) == 0 {
		return VideoStream{}, false
	}

	return lo.MaxBy(playable, func(a, b VideoStream) bool {
		return a.Height() > b.Height()
	}), true
}

// BestAudio picks the playable stream with the highest bitrate, the earlier one on ties.
func BestAudio(streams []AudioStream) (AudioStream, bool) {
	playable := lo.Filter(streams, func(s AudioStream, _ int) bool {
		return s.Delivery.Playable()
	})
	if len(playable) == 0 {
		return AudioStream{}, false
	}

	return lo.MaxBy(playable, func(a, b AudioStream) bool {
		return a.Bitrate > b.Bitrate
	}), true
}

// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
)

// descriptionLimit is the length at which the video endpoint truncates descriptions.
const descriptionLimit = 250

type videoPayload struct {
	video       []byte
	description string
	captions    []byte
	captionsErr error
}

type Stream struct {
	extractor.Base
	page extractor.Cell[videoPayload]
}

var _ extractor.StreamExtractor = (*Stream)(nil)

func newStream(s *Service, link extractor.Link) *Stream {
	return &Stream{Base: s.base(link)}
}

// FetchPage loads the video, its full description when the video payload truncates it, and its
// captions. Failing to load the description or captions only affects those fields.
func (s *Stream) FetchPage() error {
	return s.page.Load(func() (videoPayload, error) {
		var p videoPayload

		video, err := get(s.Downloader(), api(s.Link(), "/videos/%s", s.ID()))
		if err != nil {
			return p, err
		}
		if err := checkBlacklisted(video); err != nil {
			return p, err
		}
		p.video = video

		p.description, _ = optStr(video, "description")
		if truncated(p.description) {
			full, err := get(s.Downloader(), api(s.Link(), "/videos/%s/description", s.ID()))
			if err == nil {
				p.description, _ = optStr(full, "description")
			} else {
				log.Debugf("peertube: %s: keeping truncated description: %v", s.ID(), err)
			}
		}

		p.captions, p.captionsErr = get(s.Downloader(), api(s.Link(), "/videos/%s/captions", s.ID()))
		return p, nil
	})
}

func truncated(description string) bool {
	return len(description) >= descriptionLimit && strings.HasSuffix(description, "...")
}

func (s *Stream) video() []byte {
	return s.page.Get().video
}

func (s *Stream) Name() (string, error) { return str(s.video(), "name") }

func (s *Stream) StreamType() (media.StreamType, error) {
	live, err := boolean(s.video(), "isLive")
	if err != nil {
		return media.StreamNone, err
	}
	if live {
		return media.StreamLive, nil
	}
	return media.StreamVideo, nil
}

func (s *Stream) Description() (media.Description, error) {
	if d := s.page.Get().description; d != "" {
		return media.MarkdownDescription(d), nil
	}
	return media.EmptyDescription, nil
}

func (s *Stream) Thumbnails() ([]media.Image, error) { return thumbnails(s.BaseURL(), s.video()) }
func (s *Stream) Duration() (int64, error) { return integer(s.video(), "duration") }
func (s *Stream) ViewCount() (int64, error) { return integer(s.video(), "views") }
func (s *Stream) LikeCount() (int64, error) { return integer(s.video(), "likes") }
func (s *Stream) DislikeCount() (int64, error) { return integer(s.video(), "dislikes") }
func (s *Stream) UploaderName() (string, error) { return str(s.video(), "account", "displayName") }
func (s *Stream) UploaderURL() (string, error) { return accountURL(s.BaseURL(), s.video(), "account") }

func (s *Stream) UploaderAvatars() ([]media.Image, error) {
	return avatars(s.BaseURL(), s.video(), "account")
}

func (s *Stream) ChannelName() (string, error) { return str(s.video(), "channel", "displayName") }
func (s *Stream) ChannelURL() (string, error) { return channelURL(s.BaseURL(), s.video(), "channel") }
func (s *Stream) UploadDate() (time.Time, error) { return date(s.video(), "publishedAt") }
func (s *Stream) TextualUploadDate() (string, error) { return str(s.video(), "publishedAt") }
func (s *Stream) Tags() ([]string, error) { return stringList(s.video(), "tags") }
func (s *Stream) Category() (string, error) { return optStr(s.video(), "category", "label") }
func (s *Stream) Licence() (string, error) { return optStr(s.video(), "licence", "label") }
func (s *Stream) Language() (string, error) { return optStr(s.video(), "language", "label") }
func (s *Stream) Privacy() (string, error) { return optStr(s.video(), "privacy", "label") }
func (s *Stream) SupportInfo() (string, error) { return optStr(s.video(), "support") }

func (s *Stream) AgeLimit() (int, error) {
	nsfw, err := boolean(s.video(), "nsfw")
	if err != nil {
		return 0, err
	}
	if nsfw {
		return 18, nil
	}
	return 0, nil
}

// HLSURL is the master playlist of the first streaming playlist, or "" without one.
func (s *Stream) HLSURL() (string, error) {
	return optStr(s.video(), "streamingPlaylists", "[0]", "playlistUrl")
}

func (s *Stream) resolve() (*streams, error) {
	typ, err := s.StreamType()
	if err != nil {
		return nil, err
	}
	if typ.IsLive() {
		return resolveLive(s.video()), nil
	}
	return resolveStreams(s.video()), nil
}

func (s *Stream) AudioStreams() ([]media.AudioStream, error) {
	r, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return r.audio, nil
}

func (s *Stream) VideoStreams() ([]media.VideoStream, error) {
	r, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return r.video, nil
}

func (s *Stream) VideoOnlyStreams() ([]media.VideoStream, error) {
	r, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return r.videoOnly, nil
}

func (s *Stream) Subtitles() ([]media.SubtitleStream, error) {
	p := s.page.Get()
	if p.captionsErr != nil {
		return nil, extractor.Malformed("captions", p.captionsErr)
	}

	subtitles := []media.SubtitleStream{}
	err := eachData(p.captions, func(caption []byte) {
		path, _ := optStr(caption, "fileUrl")
		if path == "" {
			path, _ = optStr(caption, "captionPath")
		}
		code, _ := optStr(caption, "language", "id")
		if path == "" || code == "" {
			log.Debugf("peertube: %s: skipping caption without file or language", s.ID())
			return
		}

		format, ok := media.FormatFromSuffix(path[strings.LastIndex(path, ".")+1:])
		if !ok {
			format = media.FormatVTT
		}
		label, _ := optStr(caption, "language", "label")
		auto, _ := jsonparser.GetBoolean(caption, "automaticallyGenerated")

		subtitles = append(subtitles, media.SubtitleStream{
			ID:            code + "-" + format.Suffix,
			Content:       absolute(s.BaseURL(), path),
			Delivery:      media.DeliveryProgressiveHTTP,
			Format:        format,
			LanguageCode:  code,
			Language:      label,
			AutoGenerated: auto,
		})
	})
	if err != nil {
		return nil, err
	}
	return subtitles, nil
}

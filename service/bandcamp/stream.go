// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"sort"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

// Stream extracts a track. Bandcamp serves one or more progressive mp3 files per track and
// nothing for tracks that must be bought first.
type Stream struct {
	extractor.Base
	page extractor.Cell[tralbum]
}

var _ extractor.StreamExtractor = (*Stream)(nil)

func (s *Stream) FetchPage() error {
	return s.page.Load(func() (tralbum, error) {
		t, err := fetchTralbum(s.Downloader(), s.URL())
		if err != nil {
			return t, err
		}
		if _, ok := raw(t.data, "trackinfo", "[0]", "file"); !ok {
			return t, extractor.Paid("this track has to be bought before it can be played")
		}
		return t, nil
	})
}

func (s *Stream) tralbum() tralbum { return s.page.Get() }

func (s *Stream) Name() (string, error) { return s.tralbum().title() }
func (s *Stream) StreamType() (media.StreamType, error) { return media.StreamAudio, nil }
func (s *Stream) Description() (media.Description, error) { return s.tralbum().description(), nil }
func (s *Stream) Thumbnails() ([]media.Image, error) { return s.tralbum().art(), nil }

func (s *Stream) Duration() (int64, error) {
	return seconds(s.tralbum().data, "trackinfo", "[0]", "duration")
}

func (s *Stream) ViewCount() (int64, error) { return media.Unknown, nil }
func (s *Stream) LikeCount() (int64, error) { return media.Unknown, nil }
func (s *Stream) DislikeCount() (int64, error) { return media.Unknown, nil }
func (s *Stream) UploaderName() (string, error) { return s.tralbum().artist() }
func (s *Stream) UploaderURL() (string, error) { return s.BaseURL(), nil }
func (s *Stream) UploaderAvatars() ([]media.Image, error) { return s.tralbum().bandImages(), nil }

// ChannelName and ChannelURL point at the album the track belongs to, if any.
func (s *Stream) ChannelName() (string, error) {
	return optStr(s.tralbum().data, "album_title"), nil
}

func (s *Stream) ChannelURL() (string, error) {
	if href := optStr(s.tralbum().data, "album_url"); href != "" {
		return absolute(s.BaseURL(), href), nil
	}
	return "", nil
}

func (s *Stream) UploadDate() (time.Time, error) {
	date, err := s.tralbum().releaseDate()
	if err != nil {
		return time.Time{}, err
	}
	return parseDate(date)
}

func (s *Stream) TextualUploadDate() (string, error) { return s.tralbum().releaseDate() }
func (s *Stream) Tags() ([]string, error) { return s.tralbum().tags(), nil }
func (s *Stream) Category() (string, error) { return "", nil }
func (s *Stream) Licence() (string, error) { return s.tralbum().licence() }
func (s *Stream) Language() (string, error) { return "", nil }
func (s *Stream) Privacy() (string, error) { return "", nil }
func (s *Stream) SupportInfo() (string, error) { return "", nil }
func (s *Stream) AgeLimit() (int, error) { return 0, nil }
func (s *Stream) HLSURL() (string, error) { return "", nil }

// AudioStreams returns one stream per entry of the file object, keyed like "mp3-128".
func (s *Stream) AudioStreams() ([]media.AudioStream, error) {
	file, _ := raw(s.tralbum().data, "trackinfo", "[0]", "file")

	streams := []media.AudioStream{}
	err := jsonparser.ObjectEach(file, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		if typ != jsonparser.String {
			return nil
		}

		u, err := jsonparser.ParseString(value)
		if err != nil || u == "" {
			return nil
		}

		id := string(key)
		codec, rate, _ := strings.Cut(id, "-")
		format, ok := media.FormatFromSuffix(codec)
		if !ok {
			format = media.FormatMP3
		}

		stream := media.AudioStream{
			ID:       id,
			Content:  absolute(baseURL, u),
			Delivery: media.DeliveryProgressiveHTTP,
			Format:   format,
			Quality:  rate,
		}
		if bitrate, err := atoi(rate); err == nil {
			stream.Bitrate, stream.Quality = bitrate, rate+" kbps"
		}
		if !media.ContainsSimilar(streams, stream) {
			streams = append(streams, stream)
		}
		return nil
	})
	if err != nil {
		return nil, extractor.Malformed("file", err)
	}

	sort.SliceStable(streams, func(i, j int) bool { return streams[i].Bitrate > streams[j].Bitrate })
	return streams, nil
}

func (s *Stream) VideoStreams() ([]media.VideoStream, error) { return []media.VideoStream{}, nil }
func (s *Stream) VideoOnlyStreams() ([]media.VideoStream, error) { return []media.VideoStream{}, nil }
func (s *Stream) Subtitles() ([]media.SubtitleStream, error) { return []media.SubtitleStream{}, nil }

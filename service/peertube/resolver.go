// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
)

// masterSuffix marks playlists of servers that store HLS renditions as fragmented mp4 files next to
// per-resolution playlists. Older servers name per-resolution playlists after the master playlist.
const masterSuffix = "-master.m3u8"

var errNoFile = errors.New("neither fileUrl nor fileDownloadUrl")

type streams struct {
	audio     []media.AudioStream
	video     []media.VideoStream
	videoOnly []media.VideoStream
	ids       map[string]int
}

func newStreams() *streams {
	return &streams{
		audio:     []media.AudioStream{},
		video:     []media.VideoStream{},
		videoOnly: []media.VideoStream{},
		ids:       map[string]int{},
	}
}

// id makes base unique within the resolved list.
func (s *streams) id(base string) string {
	s.ids[base]++
	if n := s.ids[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}

// descriptor is one entry of a files array.
type descriptor struct {
	url          string
	label        string
	resolutionID int64
	ext          string
	torrent      string
	videoOnly    bool
}

func (d descriptor) audio() bool {
	return strings.Contains(strings.ToLower(d.label), "audio")
}

func (d descriptor) format() media.MediaFormat {
	if f, ok := media.FormatFromSuffix(d.ext); ok {
		return f
	}
	return media.MediaFormat{Name: d.ext, Suffix: d.ext}
}

func parseDescriptor(file []byte) (descriptor, error) {
	var d descriptor

	d.url, _ = optStr(file, "fileUrl")
	if d.url == "" {
		d.url, _ = optStr(file, "fileDownloadUrl")
	}
	if d.url == "" {
		return d, extractor.Malformed("fileUrl", errNoFile)
	}

	u, err := url.Parse(d.url)
	if err != nil {
		return d, extractor.Malformed("fileUrl", err)
	}
	d.ext = strings.TrimPrefix(path.Ext(u.Path), ".")

	if d.label, err = str(file, "resolution", "label"); err != nil {
		return d, err
	}
	if d.resolutionID, err = integer(file, "resolution", "id"); err != nil {
		return d, err
	}

	d.torrent, _ = optStr(file, "torrentUrl")
	if hasAudio, err := jsonparser.GetBoolean(file, "hasAudio"); err == nil {
		d.videoOnly = !hasAudio
	}
	return d, nil
}

// fragmentedHLSURL derives a rendition playlist from its fragmented mp4 file:
// ".../360-fragmented.mp4" becomes ".../360.m3u8".
func fragmentedHLSURL(fileURL, ext string) (string, bool) {
	suffix := "-fragmented." + ext
	if !strings.HasSuffix(fileURL, suffix) {
		return "", false
	}
	return strings.TrimSuffix(fileURL, suffix) + ".m3u8", true
}

// masterHLSURL derives a rendition playlist from the master playlist by replacing every
// "master" with the resolution id: ".../abc-master.m3u8" becomes ".../abc-720.m3u8".
func masterHLSURL(playlistURL string, resolutionID int64) string {
	return strings.ReplaceAll(playlistURL, "master", formatInt(resolutionID))
}

// hlsURL picks the derivation by the master playlist name. The suffix test follows a server change
// and is a heuristic; new server layouts may need more branches.
func hlsURL(playlistURL string, d descriptor) (string, bool) {
	if strings.HasSuffix(playlistURL, masterSuffix) {
		return fragmentedHLSURL(d.url, d.ext)
	}
	return masterHLSURL(playlistURL, d.resolutionID), true
}

// resolveStreams turns the files of an on-demand video into progressive, HLS and torrent
// streams. Malformed files are skipped.
func resolveStreams(video []byte) *streams {
	s := newStreams()

	s.addFiles(video, "", "files")
	_, _ = jsonparser.ArrayEach(video, func(playlist []byte, _ jsonparser.ValueType, _ int, _ error) {
		playlistURL, _ := optStr(playlist, "playlistUrl")
		s.addFiles(playlist, playlistURL, "files")
	}, "streamingPlaylists")

	return s
}

func (s *streams) addFiles(data []byte, playlistURL string, keys ...string) {
	_, _ = jsonparser.ArrayEach(data, func(file []byte, _ jsonparser.ValueType, _ int, _ error) {
		d, err := parseDescriptor(file)
		if err != nil {
			log.Debugf("peertube: skipping stream file: %v", err)
			return
		}
		s.add(d, playlistURL)
	}, keys...)
}

func (s *streams) add(d descriptor, playlistURL string) {
	format := d.format()
	idBase := d.label + "-" + format.Suffix

	if d.audio() {
		s.addAudio(media.AudioStream{
			Content:  d.url,
			Delivery: media.DeliveryProgressiveHTTP,
			Format:   format,
			Quality:  d.label,
		}, idBase)

		if playlistURL != "" {
			if u, ok := hlsURL(playlistURL, d); ok {
				s.addAudio(media.AudioStream{
					Content:     u,
					Delivery:    media.DeliveryHLS,
					Format:      format,
					Quality:     d.label,
					ManifestURL: playlistURL,
				}, idBase)
			}
		}

		if d.torrent != "" {
			s.audio = append(s.audio, media.AudioStream{
				ID:       s.id(idBase + "-" + media.DeliveryTorrent.String()),
				Content:  d.torrent,
				Delivery: media.DeliveryTorrent,
				Format:   format,
				Quality:  d.label,
			})
		}
		return
	}

	s.addVideo(media.VideoStream{
		Content:    d.url,
		Delivery:   media.DeliveryProgressiveHTTP,
		Format:     format,
		Resolution: d.label,
		VideoOnly:  d.videoOnly,
	}, idBase)

	if playlistURL != "" {
		if u, ok := hlsURL(playlistURL, d); ok {
			s.addVideo(media.VideoStream{
				Content:     u,
				Delivery:    media.DeliveryHLS,
				Format:      format,
				Resolution:  d.label,
				VideoOnly:   d.videoOnly,
				ManifestURL: playlistURL,
			}, idBase)
		}
	}

	if d.torrent != "" {
		torrent := media.VideoStream{
			ID:         s.id(idBase + "-" + media.DeliveryTorrent.String()),
			Content:    d.torrent,
			Delivery:   media.DeliveryTorrent,
			Format:     format,
			Resolution: d.label,
			VideoOnly:  d.videoOnly,
		}
		if d.videoOnly {
			s.videoOnly = append(s.videoOnly, torrent)
		} else {
			s.video = append(s.video, torrent)
		}
	}
}

// addAudio appends stream unless a similar one is already present.
func (s *streams) addAudio(stream media.AudioStream, idBase string) {
	if media.ContainsSimilar(s.audio, stream) {
		return
	}
	stream.ID = s.id(idBase + "-" + stream.Delivery.String())
	s.audio = append(s.audio, stream)
}

func (s *streams) addVideo(stream media.VideoStream, idBase string) {
	list := &s.video
	if stream.VideoOnly {
		list = &s.videoOnly
	}
	if media.ContainsSimilar(*list, stream) {
		return
	}
	stream.ID = s.id(idBase + "-" + stream.Delivery.String())
	*list = append(*list, stream)
}

// resolveLive returns one HLS stream per streaming playlist of a live video. Live videos have no
// files, so there are no progressive or torrent streams.
func resolveLive(video []byte) *streams {
	s := newStreams()

	_, _ = jsonparser.ArrayEach(video, func(playlist []byte, _ jsonparser.ValueType, _ int, _ error) {
		playlistURL, _ := optStr(playlist, "playlistUrl")
		if playlistURL == "" {
			log.Debugf("peertube: skipping live playlist without url")
			return
		}
		s.video = append(s.video, media.VideoStream{
			ID:          s.id(fmt.Sprintf("live-%d", len(s.video))),
			Content:     playlistURL,
			Delivery:    media.DeliveryHLS,
			Format:      media.FormatMPEG4,
			ManifestURL: playlistURL,
		})
	}, "streamingPlaylists")

	return s
}

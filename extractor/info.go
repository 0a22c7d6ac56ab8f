// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import (
	"time"

	"github.com/mediax-cli/mediax/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// collect reads one optional field, recording its failure in issues.
func collect[V any](issues *media.Issues, get func() (V, error), fallback V) V {
	v, err := get()
	if err != nil {
		*issues = append(*issues, err)
		return fallback
	}
	return v
}

func collectDate(issues *media.Issues, get func() (time.Time, error)) mo.Option[time.Time] {
	t, err := get()
	if err != nil {
		*issues = append(*issues, err)
		return mo.None[time.Time]()
	}
	if t.IsZero() {
		return mo.None[time.Time]()
	}
	return mo.Some(t)
}

// StreamInfoOf fetches e and reads all of its fields. Resource-level failures are returned;
// field failures are kept in the info's Errors.
func StreamInfoOf(e StreamExtractor) (*media.StreamInfo, error) {
	if err := e.FetchPage(); err != nil {
		return nil, err
	}

	name, err := e.Name()
	if err != nil {
		return nil, asParsing("name", err)
	}

	var issues media.Issues
	info := &media.StreamInfo{
		Record: media.Record{
			Service:    e.ServiceID(),
			URL:        e.URL(),
			Name:       name,
			Thumbnails: collect(&issues, e.Thumbnails, []media.Image{}),
		},
		ID:                e.ID(),
		StreamType:        collect(&issues, e.StreamType, media.StreamNone),
		Description:       collect(&issues, e.Description, media.EmptyDescription),
		Duration:          collect(&issues, e.Duration, media.Unknown),
		ViewCount:         collect(&issues, e.ViewCount, media.Unknown),
		LikeCount:         collect(&issues, e.LikeCount, media.Unknown),
		DislikeCount:      collect(&issues, e.DislikeCount, media.Unknown),
		UploaderName:      collect(&issues, e.UploaderName, ""),
		UploaderURL:       collect(&issues, e.UploaderURL, ""),
		UploaderAvatars:   collect(&issues, e.UploaderAvatars, []media.Image{}),
		ChannelName:       collect(&issues, e.ChannelName, ""),
		ChannelURL:        collect(&issues, e.ChannelURL, ""),
		UploadDate:        collectDate(&issues, e.UploadDate),
		TextualUploadDate: collect(&issues, e.TextualUploadDate, ""),
		Tags:              collect(&issues, e.Tags, []string{}),
		Category:          collect(&issues, e.Category, ""),
		Licence:           collect(&issues, e.Licence, ""),
		Language:          collect(&issues, e.Language, ""),
		Privacy:           collect(&issues, e.Privacy, ""),
		SupportInfo:       collect(&issues, e.SupportInfo, ""),
		AgeLimit:          collect(&issues, e.AgeLimit, 0),
		HLSURL:            collect(&issues, e.HLSURL, ""),
		AudioStreams:      collect(&issues, e.AudioStreams, []media.AudioStream{}),
		VideoStreams:      collect(&issues, e.VideoStreams, []media.VideoStream{}),
		VideoOnlyStreams:  collect(&issues, e.VideoOnlyStreams, []media.VideoStream{}),
		Subtitles:         collect(&issues, e.Subtitles, []media.SubtitleStream{}),
	}

	if len(info.AudioStreams)+len(info.VideoStreams)+len(info.VideoOnlyStreams) == 0 && info.HLSURL == "" {
		issues = append(issues, Malformed("streams", errEmpty))
	}

	info.Errors = lo.Ternary(len(issues) == 0, media.Issues{}, issues)
	return info, nil
}

func ChannelInfoOf(e ChannelExtractor) (*media.ChannelInfo, error) {
	if err := e.FetchPage(); err != nil {
		return nil, err
	}

	name, err := e.Name()
	if err != nil {
		return nil, asParsing("name", err)
	}

	var issues media.Issues
	avatars := collect(&issues, e.Avatars, []media.Image{})
	info := &media.ChannelInfo{
		Record: media.Record{
			Service:    e.ServiceID(),
			URL:        e.URL(),
			Name:       name,
			Thumbnails: avatars,
		},
		ID:              e.ID(),
		Description:     collect(&issues, e.Description, ""),
		Avatars:         avatars,
		Banners:         collect(&issues, e.Banners, []media.Image{}),
		SubscriberCount: collect(&issues, e.SubscriberCount, media.Unknown),
		Verified:        collect(&issues, e.Verified, false),
		ParentName:      collect(&issues, e.ParentName, ""),
		ParentURL:       collect(&issues, e.ParentURL, ""),
	}

	info.Errors = lo.Ternary(len(issues) == 0, media.Issues{}, issues)
	return info, nil
}

func PlaylistInfoOf(e PlaylistExtractor) (*media.PlaylistInfo, error) {
	if err := e.FetchPage(); err != nil {
		return nil, err
	}

	name, err := e.Name()
	if err != nil {
		return nil, asParsing("name", err)
	}

	var issues media.Issues
	info := &media.PlaylistInfo{
		Record: media.Record{
			Service:    e.ServiceID(),
			URL:        e.URL(),
			Name:       name,
			Thumbnails: collect(&issues, e.Thumbnails, []media.Image{}),
		},
		ID:              e.ID(),
		Description:     collect(&issues, e.Description, media.EmptyDescription),
		UploaderName:    collect(&issues, e.UploaderName, ""),
		UploaderURL:     collect(&issues, e.UploaderURL, ""),
		UploaderAvatars: collect(&issues, e.UploaderAvatars, []media.Image{}),
		StreamCount:     collect(&issues, e.StreamCount, media.Unknown),
	}

	info.Errors = lo.Ternary(len(issues) == 0, media.Issues{}, issues)
	return info, nil
}

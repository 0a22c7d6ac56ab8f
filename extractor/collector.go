// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import (
	"errors"
	"time"

	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

var errEmpty = errors.New("empty value")

// Collector turns classified entries into records.
//
// An entry is committed only when its name and url extract. Other fields degrade to their unknown
// value. A failing entry is recorded and skipped; it never aborts the batch.
type Collector[T media.Item] struct {
	service string
	items   []T
	errs    []error
}

func NewCollector[T media.Item](service string) *Collector[T] {
	return &Collector[T]{service: service, items: []T{}}
}

// Commit extracts entry and keeps the record if it is complete.
func (c *Collector[T]) Commit(entry Entry) {
	item, err := c.build(entry)
	if err != nil {
		c.Fail(err)
		return
	}

	typed, ok := item.(T)
	if !ok {
		c.Fail(Malformedf("kind", "unexpected %s in this listing", item.Kind()))
		return
	}

	c.items = append(c.items, typed)
}

// Classified commits entry, or records err when classification failed. A nil entry without an
// error is a row the service filters out, such as a deleted comment.
func (c *Collector[T]) Classified(entry Entry, err error) {
	switch {
	case err != nil:
		c.Fail(err)
	case entry != nil:
		c.Commit(entry)
	}
}

// Fail records a per-item failure.
func (c *Collector[T]) Fail(err error) {
	log.Warnf("%s: skipping item: %v", c.service, err)
	c.errs = append(c.errs, err)
}

func (c *Collector[T]) Items() []T {
	return c.items
}

func (c *Collector[T]) Errors() []error {
	return c.errs
}

// Batch returns the collected records with next.
func (c *Collector[T]) Batch(next mo.Option[media.Page]) *Batch[T] {
	return &Batch[T]{
		Items:  c.items,
		Errors: c.errs,
		Next:   next,
	}
}

func (c *Collector[T]) build(entry Entry) (media.Item, error) {
	switch e := entry.(type) {
	case StreamEntry:
		return c.stream(e)
	case ChannelEntry:
		return c.channel(e)
	case PlaylistEntry:
		return c.playlist(e)
	case CommentEntry:
		return c.comment(e)
	default:
		return nil, Malformedf("entry", "unclassified entry %T", entry)
	}
}

func (c *Collector[T]) record(e InfoItemExtractor) (media.Record, error) {
	name, err := e.Name()
	if err != nil {
		return media.Record{}, asParsing("name", err)
	}

	url, err := e.URL()
	if err != nil {
		return media.Record{}, asParsing("url", err)
	}
	if url == "" {
		return media.Record{}, Malformed("url", errEmpty)
	}

	return media.Record{
		Service:    c.service,
		URL:        url,
		Name:       name,
		Thumbnails: optional(url, "thumbnails", e.Thumbnails, []media.Image{}),
	}, nil
}

func (c *Collector[T]) stream(e StreamEntry) (*media.StreamItem, error) {
	rec, err := c.record(e)
	if err != nil {
		return nil, err
	}

	return &media.StreamItem{
		Record:            rec,
		StreamType:        optional(rec.URL, "stream type", e.StreamType, media.StreamNone),
		Duration:          optional(rec.URL, "duration", e.Duration, media.Unknown),
		ViewCount:         optional(rec.URL, "view count", e.ViewCount, media.Unknown),
		UploaderName:      optional(rec.URL, "uploader name", e.UploaderName, ""),
		UploaderURL:       optional(rec.URL, "uploader url", e.UploaderURL, ""),
		UploaderAvatars:   optional(rec.URL, "uploader avatars", e.UploaderAvatars, []media.Image{}),
		UploaderVerified:  optional(rec.URL, "uploader verified", e.UploaderVerified, false),
		UploadDate:        optionalDate(rec.URL, e.UploadDate),
		TextualUploadDate: optional(rec.URL, "textual upload date", e.TextualUploadDate, ""),
		ShortDescription:  optional(rec.URL, "short description", e.ShortDescription, ""),
	}, nil
}

func (c *Collector[T]) channel(e ChannelEntry) (*media.ChannelItem, error) {
	rec, err := c.record(e)
	if err != nil {
		return nil, err
	}

	return &media.ChannelItem{
		Record:          rec,
		Description:     optional(rec.URL, "description", e.Description, ""),
		SubscriberCount: optional(rec.URL, "subscriber count", e.SubscriberCount, media.Unknown),
		StreamCount:     optional(rec.URL, "stream count", e.StreamCount, media.Unknown),
		Verified:        optional(rec.URL, "verified", e.Verified, false),
	}, nil
}

func (c *Collector[T]) playlist(e PlaylistEntry) (*media.PlaylistItem, error) {
	rec, err := c.record(e)
	if err != nil {
		return nil, err
	}

	return &media.PlaylistItem{
		Record:           rec,
		UploaderName:     optional(rec.URL, "uploader name", e.UploaderName, ""),
		UploaderURL:      optional(rec.URL, "uploader url", e.UploaderURL, ""),
		UploaderVerified: optional(rec.URL, "uploader verified", e.UploaderVerified, false),
		StreamCount:      optional(rec.URL, "stream count", e.StreamCount, media.Unknown),
		Description:      optional(rec.URL, "description", e.Description, media.EmptyDescription),
	}, nil
}

func (c *Collector[T]) comment(e CommentEntry) (*media.CommentItem, error) {
	rec, err := c.record(e)
	if err != nil {
		return nil, err
	}

	id, err := e.CommentID()
	if err != nil {
		return nil, asParsing("comment id", err)
	}

	return &media.CommentItem{
		Record:            rec,
		CommentID:         id,
		Text:              optional(rec.URL, "text", e.Text, media.EmptyDescription),
		UploaderURL:       optional(rec.URL, "uploader url", e.UploaderURL, ""),
		UploaderAvatars:   optional(rec.URL, "uploader avatars", e.UploaderAvatars, []media.Image{}),
		UploaderVerified:  optional(rec.URL, "uploader verified", e.UploaderVerified, false),
		UploadDate:        optionalDate(rec.URL, e.UploadDate),
		TextualUploadDate: optional(rec.URL, "textual upload date", e.TextualUploadDate, ""),
		LikeCount:         optional(rec.URL, "like count", e.LikeCount, media.Unknown),
		ReplyCount:        optional(rec.URL, "reply count", e.ReplyCount, media.UnknownReplyCount),
		Replies:           optional(rec.URL, "replies", e.Replies, mo.None[media.Page]()),
		Pinned:            optional(rec.URL, "pinned", e.Pinned, false),
		HeartedByUploader: optional(rec.URL, "hearted", e.HeartedByUploader, false),
		ByChannelOwner:    optional(rec.URL, "by channel owner", e.ByChannelOwner, false),
		HasCreatorReply:   optional(rec.URL, "creator reply", e.HasCreatorReply, false),
	}, nil
}

// optional reads one field and falls back to its unknown value on failure.
func optional[V any](url, field string, get func() (V, error), fallback V) V {
	v, err := get()
	if err != nil {
		log.Debugf("%s: %s unavailable: %v", url, field, err)
		return fallback
	}
	return v
}

func optionalDate(url string, get func() (time.Time, error)) mo.Option[time.Time] {
	t, err := get()
	if err != nil || t.IsZero() {
		if err != nil {
			log.Debugf("%s: upload date unavailable: %v", url, err)
		}
		return mo.None[time.Time]()
	}
	return mo.Some(t)
}

func asParsing(field string, err error) error {
	var parsing *ParsingError
	if errors.As(err, &parsing) {
		return err
	}
	return Malformed(field, err)
}

// Package render prints infos and listing batches as JSON or as styled terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/style"
	"github.com/mediax-cli/mediax/util"
	"github.com/samber/lo"
)

const indent = "  "

// Item renders a listing item on one line.
func (o Options) Item(item media.Item) string {
	header := item.Header()
	name := lo.Ternary(header.Name == "", style.Faint("(untitled)"), style.Bold(header.Name))
	line := icon.Get(icon.ForKind(item.Kind())) + " " + name

	if details := itemDetails(item); len(details) > 0 {
		line += " " + style.Faint(strings.Join(details, " · "))
	}

	return line
}

func itemDetails(item media.Item) []string {
	var details []string
	add := func(cond bool, s string) {
		if cond {
			details = append(details, s)
		}
	}

	switch it := item.(type) {
	case *media.StreamItem:
		add(it.UploaderName != "", it.UploaderName)
		add(it.StreamType.IsLive(), "live")
		add(!it.StreamType.IsLive() && it.Duration >= 0, util.FormatDuration(it.Duration))
		add(it.ViewCount >= 0, util.FormatCount(it.ViewCount)+" views")
		add(it.UploadDate.IsPresent(), it.UploadDate.OrEmpty().Format("2006-01-02"))
	case *media.ChannelItem:
		add(it.SubscriberCount >= 0, util.FormatCount(it.SubscriberCount)+" subscribers")
		add(it.StreamCount >= 0, util.Quantify(int(it.StreamCount), "stream", "streams"))
	case *media.PlaylistItem:
		add(it.UploaderName != "", it.UploaderName)
		add(it.StreamCount >= 0, util.Quantify(int(it.StreamCount), "stream", "streams"))
	case *media.CommentItem:
		add(it.LikeCount >= 0, util.FormatCount(it.LikeCount)+" likes")
		add(it.ReplyCount > 0, util.Quantify(int(it.ReplyCount), "reply", "replies"))
		add(it.Pinned, "pinned")
	}

	return details
}

// Batch renders the items of b numbered from offset+1, then its per-item errors and next page token.
func (o Options) Batch(w io.Writer, b *extractor.Batch[media.Item], offset int) error {
	for i, item := range b.Items {
		if c, ok := item.(*media.CommentItem); ok {
			o.Comment(w, c, 0)
			continue
		}

		fmt.Fprintf(w, "%s %s\n", style.Faint(fmt.Sprintf("%3d.", offset+i+1)), o.Item(item))
		fmt.Fprintf(w, "%s%s\n", indent+indent, style.Faint(item.Header().URL))
	}

	return o.Footer(w, b)
}

// Footer renders the per-item errors of b and its next page token.
func (o Options) Footer(w io.Writer, b *extractor.Batch[media.Item]) error {
	for _, err := range b.Errors {
		fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Warn), style.Fg(style.WarningColor)(err.Error()))
	}

	if !b.HasNext() {
		return nil
	}

	token, err := b.Next.MustGet().Encode()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s %s\n", icon.Get(icon.Next), style.Faint("next page:"), token)
	return nil
}

// Comment renders a comment and its text indented by depth.
func (o Options) Comment(w io.Writer, c *media.CommentItem, depth int) {
	prefix := strings.Repeat(indent, depth)
	fmt.Fprintf(w, "%s%s\n", prefix, o.Item(c))

	text := o
	if text.Width > 0 {
		text.Width = util.Max(text.Width-len(prefix)-len(indent), 20)
	}
	for _, line := range strings.Split(text.Text(c.Text), "\n") {
		fmt.Fprintf(w, "%s%s%s\n", prefix, indent, line)
	}
}

func field(w io.Writer, name string, value any) {
	s := fmt.Sprint(value)
	if s == "" {
		return
	}
	fmt.Fprintf(w, "%s %s\n", style.Fg(style.AccentColor)(name+":"), s)
}

func (o Options) issues(w io.Writer, issues media.Issues) {
	for _, err := range issues {
		fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Warn), style.Faint(err.Error()))
	}
}

func (o Options) description(w io.Writer, d media.Description) {
	if text := o.Text(d); text != "" {
		fmt.Fprintf(w, "\n%s\n\n", text)
	}
}

func largest(images []media.Image) string {
	image, ok := media.Largest(images)
	return lo.Ternary(ok, image.URL, "")
}

// Stream renders a stream info.
func (o Options) Stream(w io.Writer, info *media.StreamInfo) {
	fmt.Fprintln(w, style.Title(info.Name))
	field(w, "URL", info.URL)
	field(w, "Type", info.StreamType)
	field(w, "Uploader", info.UploaderName)
	field(w, "Channel", info.ChannelName)
	if !info.StreamType.IsLive() {
		field(w, "Duration", util.FormatDuration(info.Duration))
	}
	field(w, "Views", util.FormatCount(info.ViewCount))
	if info.LikeCount >= 0 {
		field(w, "Likes", util.FormatCount(info.LikeCount))
	}
	if info.UploadDate.IsPresent() {
		field(w, "Uploaded", info.UploadDate.MustGet().Format("2006-01-02"))
	} else {
		field(w, "Uploaded", info.TextualUploadDate)
	}
	field(w, "Tags", strings.Join(info.Tags, ", "))
	field(w, "Category", info.Category)
	field(w, "Licence", info.Licence)
	field(w, "Language", info.Language)
	if info.AgeLimit > 0 {
		field(w, "Age limit", info.AgeLimit)
	}
	field(w, "Thumbnail", largest(info.Thumbnails))
	o.description(w, info.Description)

	for _, s := range info.VideoStreams {
		fmt.Fprintf(w, "%s %s %s %s\n", icon.Get(icon.Stream), s.Resolution, style.Faint(s.Format.Suffix+" "+s.Delivery.String()), s.Content)
	}
	for _, s := range info.VideoOnlyStreams {
		fmt.Fprintf(w, "%s %s %s %s\n", icon.Get(icon.Stream), s.Resolution, style.Faint(s.Format.Suffix+" "+s.Delivery.String()+" video only"), s.Content)
	}
	for _, s := range info.AudioStreams {
		fmt.Fprintf(w, "%s %s %s %s\n", icon.Get(icon.Stream), s.Quality, style.Faint(s.Format.Suffix+" "+s.Delivery.String()), s.Content)
	}
	if info.HLSURL != "" {
		fmt.Fprintf(w, "%s %s %s\n", icon.Get(icon.Stream), style.Faint("hls"), info.HLSURL)
	}
	for _, s := range info.Subtitles {
		fmt.Fprintf(w, "%s %s %s %s\n", icon.Get(icon.Comment), s.LanguageCode, style.Faint(s.Format.Suffix), s.Content)
	}

	o.issues(w, info.Errors)
}

// Channel renders a channel info.
func (o Options) Channel(w io.Writer, info *media.ChannelInfo) {
	fmt.Fprintln(w, style.Title(info.Name))
	field(w, "URL", info.URL)
	if info.SubscriberCount >= 0 {
		field(w, "Subscribers", util.FormatCount(info.SubscriberCount))
	}
	field(w, "Parent", info.ParentName)
	field(w, "Avatar", largest(info.Avatars))
	field(w, "Banner", largest(info.Banners))
	o.description(w, media.PlainDescription(info.Description))
	o.issues(w, info.Errors)
}

// Playlist renders a playlist info.
func (o Options) Playlist(w io.Writer, info *media.PlaylistInfo) {
	fmt.Fprintln(w, style.Title(info.Name))
	field(w, "URL", info.URL)
	field(w, "Uploader", info.UploaderName)
	if info.StreamCount >= 0 {
		field(w, "Streams", info.StreamCount)
	}
	field(w, "Thumbnail", largest(info.Thumbnails))
	o.description(w, info.Description)
	o.issues(w, info.Errors)
}

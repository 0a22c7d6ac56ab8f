package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestText(t *testing.T) {
	Convey("Given an HTML description", t, func() {
		d := media.HTMLDescription("<p>Recorded <strong>live</strong> at the hall.</p>")

		Convey("When rendering markdown", func() {
			text := Options{Markdown: true}.Text(d)
			Convey("Then tags should become markdown", func() {
				So(text, ShouldEqual, "Recorded **live** at the hall.")
			})
		})

		Convey("When rendering plain text", func() {
			text := Options{}.Text(d)
			Convey("Then markup should be stripped", func() {
				So(text, ShouldEqual, "Recorded live at the hall.")
			})
		})
	})

	Convey("Given a plain description and a width", t, func() {
		d := media.PlainDescription("one two three four five six seven")
		text := Options{Width: 10}.Text(d)

		Convey("Then no line should exceed the width", func() {
			for _, line := range strings.Split(text, "\n") {
				So(len(line), ShouldBeLessThanOrEqualTo, 10)
			}
			So(strings.Fields(text), ShouldHaveLength, 7)
		})
	})

	Convey("Markdown descriptions are kept as they are", t, func() {
		So(Options{}.Text(media.MarkdownDescription(" **x** ")), ShouldEqual, "**x**")
	})
}

func TestBatch(t *testing.T) {
	Convey("Given a batch with items, an error and a next page", t, func() {
		next := media.NewPage("https://peertube.test/api/v1/videos?start=12&count=12")
		b := &extractor.Batch[media.Item]{
			Items: []media.Item{
				&media.StreamItem{
					Record:    media.Record{Name: "Sintel", URL: "https://peertube.test/w/1"},
					Duration:  888,
					ViewCount: 1500,
				},
				&media.ChannelItem{
					Record:          media.Record{Name: "Blender", URL: "https://peertube.test/c/blender"},
					SubscriberCount: media.Unknown,
					StreamCount:     1,
				},
			},
			Errors: media.Issues{errors.New("could not extract name")},
			Next:   mo.Some(next),
		}

		var out bytes.Buffer
		So(Options{}.Batch(&out, b, 12), ShouldBeNil)
		text := out.String()

		Convey("Then items should be numbered from the offset", func() {
			So(text, ShouldContainSubstring, " 13.")
			So(text, ShouldContainSubstring, " 14.")
			So(text, ShouldContainSubstring, "Sintel")
			So(text, ShouldContainSubstring, "14:48")
			So(text, ShouldContainSubstring, "1.5K views")
			So(text, ShouldContainSubstring, "1 stream")
			So(text, ShouldNotContainSubstring, "subscribers")
		})

		Convey("Then the error and the next token should follow", func() {
			token, err := next.Encode()
			So(err, ShouldBeNil)
			So(text, ShouldContainSubstring, "could not extract name")
			So(text, ShouldContainSubstring, token)
		})
	})

	Convey("An empty batch prints no next token", t, func() {
		b := &extractor.Batch[media.Item]{Next: mo.Some(media.NewPage("https://x.test/?start=24"))}

		var out bytes.Buffer
		So(Options{}.Batch(&out, b, 0), ShouldBeNil)
		So(out.String(), ShouldNotContainSubstring, "next page")
	})
}

func TestComment(t *testing.T) {
	Convey("Given a nested comment", t, func() {
		c := &media.CommentItem{
			Record:     media.Record{Name: "ana"},
			Text:       media.HTMLDescription("<p>first line</p>"),
			ReplyCount: 2,
			LikeCount:  media.Unknown,
		}

		var out bytes.Buffer
		Options{}.Comment(&out, c, 2)

		Convey("Then it should be indented by depth", func() {
			lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			So(lines, ShouldHaveLength, 2)
			So(lines[0], ShouldStartWith, "    ")
			So(lines[0], ShouldContainSubstring, "2 replies")
			So(lines[1], ShouldEqual, "      first line")
		})
	})
}

func TestJSON(t *testing.T) {
	Convey("Given a stream info", t, func() {
		info := &media.StreamInfo{
			Record:     media.Record{Service: "peertube", Name: "A & B"},
			StreamType: media.StreamVideo,
			Errors:     media.Issues{errors.New("no tags")},
		}

		var out bytes.Buffer
		So(JSON(&out, info), ShouldBeNil)

		Convey("Then enums and issues should serialize as text", func() {
			So(out.String(), ShouldContainSubstring, `"stream_type": "video"`)
			So(out.String(), ShouldContainSubstring, `"no tags"`)
			So(out.String(), ShouldContainSubstring, `"A & B"`)
		})
	})
}

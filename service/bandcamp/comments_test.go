package bandcamp

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func fans(items []*media.CommentItem) []string {
	return lo.Map(items, func(c *media.CommentItem, _ int) string { return c.Name })
}

func TestComments(t *testing.T) {
	Convey("Given the reviews of an album", t, func() {
		d := newFake().
			serve(artistURL+"/album/neon-hours", "album.html").
			serve(reviewsURL, "reviews.json")
		c, err := New(d).Comments(artistURL + "/album/neon-hours")
		So(err, ShouldBeNil)

		batch, err := c.InitialPage()
		So(err, ShouldBeNil)

		Convey("Then the embedded reviews come first", func() {
			So(fans(batch.Items), ShouldResemble, []string{"Fan One", "Fan Two"})
			So(batch.Errors, ShouldHaveLength, 1)

			first := batch.Items[0]
			So(first.CommentID, ShouldEqual, "501")
			So(first.URL, ShouldEqual, "https://bandcamp.com/fanone")
			So(first.Text, ShouldResemble, media.PlainDescription("Perfect for late drives."))
			So(first.UploaderAvatars, ShouldHaveLength, 3)
			So(first.Replies.IsPresent(), ShouldBeFalse)
			So(batch.Items[1].UploaderAvatars, ShouldBeEmpty)
		})

		Convey("Then the next page carries the type, id and last token", func() {
			next := batch.Next.MustGet()
			So(next.URL, ShouldEqual, reviewsURL)
			So(next.IDs, ShouldResemble, []string{"a", "4004", "1709700000:503:a::"})
		})

		Convey("When the next page is fetched", func() {
			more, err := c.GetPage(batch.Next.MustGet())
			So(err, ShouldBeNil)

			Convey("Then the reviews API is asked after the token", func() {
				var sent map[string]any
				So(json.Unmarshal([]byte(d.calls[1].body), &sent), ShouldBeNil)
				So(sent["tralbum_type"], ShouldEqual, "a")
				So(sent["tralbum_id"], ShouldEqual, float64(4004))
				So(sent["token"], ShouldEqual, "1709700000:503:a::")
				So(sent["count"], ShouldEqual, float64(reviewsPerPage))
				So(sent["exclude_fan_ids"], ShouldBeEmpty)
			})

			Convey("Then the listing ends when no more are available", func() {
				So(fans(more.Items), ShouldResemble, []string{"Fan Four"})
				So(more.HasNext(), ShouldBeFalse)
			})
		})
	})

	Convey("A release without reviews has an empty listing", t, func() {
		d := newFake().serve(artistURL+"/album/quiet-hours", "album_no_reviews.html")
		c, _ := New(d).Comments(artistURL + "/album/quiet-hours")

		batch, err := c.InitialPage()
		So(err, ShouldBeNil)
		So(batch.Empty(), ShouldBeTrue)
		So(batch.HasNext(), ShouldBeFalse)

		disabled, _ := c.CommentsDisabled()
		So(disabled, ShouldBeFalse)
	})

	Convey("Review pages need exactly three ids", t, func() {
		c, _ := New(newFake()).Comments(artistURL + "/track/midnight-drive")

		_, err := c.GetPage(media.NewPage(reviewsURL).WithIDs("t", "2002"))
		So(errors.Is(err, extractor.ErrInvalidPage), ShouldBeTrue)

		_, err = c.GetPage(media.NewPage(reviewsURL).WithIDs("t", "two", "token"))
		So(errors.Is(err, extractor.ErrInvalidPage), ShouldBeTrue)
	})
}

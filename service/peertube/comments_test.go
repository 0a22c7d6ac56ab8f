package peertube

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func commentIDs(items []*media.CommentItem) []string {
	return lo.Map(items, func(c *media.CommentItem, _ int) string { return c.CommentID })
}

func commentsFake() *fakeDownloader {
	return newFake().
		serve(testBase+"/api/v1/videos/uuid-01", "video_comments.json").
		serve(listingURL("/videos/uuid-01/comment-threads", 0), "threads_0.json").
		serve(testBase+"/api/v1/videos/uuid-01/comment-threads/10", "thread_10.json")
}

func TestComments(t *testing.T) {
	Convey("Given the comments of a video", t, func() {
		d := commentsFake()
		c, err := newTestService(d).Comments(testBase + "/w/uuid-01")
		So(err, ShouldBeNil)

		threads, err := c.InitialPage()
		So(err, ShouldBeNil)

		Convey("Then deleted comments are left out without an error", func() {
			So(commentIDs(threads.Items), ShouldResemble, []string{"10", "12"})
			So(threads.Errors, ShouldBeEmpty)
			So(threads.HasNext(), ShouldBeFalse)
		})

		Convey("Then a top-level comment reads its thread summary", func() {
			first := threads.Items[0]
			So(first.Name, ShouldEqual, "User 10")
			So(first.URL, ShouldEqual, testBase+"/videos/watch/uuid-01;threadId=10")
			So(first.Text, ShouldResemble, media.HTMLDescription("<p>Comment 10</p>"))
			So(first.ReplyCount, ShouldEqual, 2)
			So(first.HasCreatorReply, ShouldBeTrue)
			So(first.Replies.MustGet().URL, ShouldEqual, testBase+"/api/v1/videos/uuid-01/comment-threads/10")
			So(first.Replies.MustGet().HasBody(), ShouldBeFalse)

			So(threads.Items[1].Replies.IsPresent(), ShouldBeFalse)
			So(threads.Items[1].HasCreatorReply, ShouldBeFalse)
		})

		Convey("When a thread is expanded", func() {
			replies, err := c.GetPage(threads.Items[0].Replies.MustGet())
			So(err, ShouldBeNil)

			Convey("Then its direct replies are listed", func() {
				So(commentIDs(replies.Items), ShouldResemble, []string{"20", "21"})
				So(replies.HasNext(), ShouldBeFalse)
			})

			Convey("Then the reply count comes from the nested children", func() {
				So(replies.Items[0].ReplyCount, ShouldEqual, 3)
				So(replies.Items[1].ReplyCount, ShouldEqual, 0)
				So(replies.Items[1].Replies.IsPresent(), ShouldBeFalse)
			})

			Convey("Then nested replies expand without another request", func() {
				calls := len(d.calls)

				nested, err := c.GetPage(replies.Items[0].Replies.MustGet())
				So(err, ShouldBeNil)
				So(commentIDs(nested.Items), ShouldResemble, []string{"30", "31", "32"})
				So(nested.Items[2].ReplyCount, ShouldEqual, 1)
				So(d.calls, ShouldHaveLength, calls)

				deepest, err := c.GetPage(nested.Items[2].Replies.MustGet())
				So(err, ShouldBeNil)
				So(commentIDs(deepest.Items), ShouldResemble, []string{"40"})
				So(d.calls, ShouldHaveLength, calls)
			})

			Convey("Then an embedded page replays on a fresh extractor", func() {
				page := replies.Items[0].Replies.MustGet()
				encoded, err := page.Encode()
				So(err, ShouldBeNil)
				decoded, err := media.DecodePage(encoded)
				So(err, ShouldBeNil)

				fresh, _ := newTestService(newFake()).Comments(testBase + "/w/uuid-01")
				nested, err := fresh.GetPage(decoded)
				So(err, ShouldBeNil)
				So(commentIDs(nested.Items), ShouldResemble, []string{"30", "31", "32"})
			})
		})
	})

	Convey("Given a thread url", t, func() {
		c, err := newTestService(commentsFake()).Comments(testBase + "/api/v1/videos/uuid-01/comment-threads/10")
		So(err, ShouldBeNil)

		Convey("Then the initial page lists the thread's replies", func() {
			batch, err := c.InitialPage()
			So(err, ShouldBeNil)
			So(commentIDs(batch.Items), ShouldResemble, []string{"20", "21"})
		})
	})

	Convey("Given a video with comments turned off", t, func() {
		d := newFake().serve(testBase+"/api/v1/videos/uuid-05", "video_comments_disabled.json")
		c, _ := newTestService(d).Comments(testBase + "/videos/watch/uuid-05")

		Convey("Then the listing is empty and threads are not requested", func() {
			batch, err := c.InitialPage()
			So(err, ShouldBeNil)
			So(batch.Items, ShouldBeEmpty)
			So(batch.HasNext(), ShouldBeFalse)

			disabled, err := c.CommentsDisabled()
			So(err, ShouldBeNil)
			So(disabled, ShouldBeTrue)
			So(d.calls, ShouldHaveLength, 1)
		})
	})

	Convey("Given a first page where every thread was deleted", t, func() {
		d := newFake().
			serve(testBase+"/api/v1/videos/uuid-01", "video_comments.json").
			serve(listingURL("/videos/uuid-01/comment-threads", 0), "threads_deleted_0.json").
			serve(listingURL("/videos/uuid-01/comment-threads", 12), "threads_deleted_12.json")
		c, _ := newTestService(d).Comments(testBase + "/w/uuid-01")

		Convey("Then the empty page still leads to the rest of the threads", func() {
			first, err := c.InitialPage()
			So(err, ShouldBeNil)
			So(first.Items, ShouldBeEmpty)
			So(first.Errors, ShouldBeEmpty)
			So(first.HasNext(), ShouldBeTrue)

			second, err := c.GetPage(first.Next.MustGet())
			So(err, ShouldBeNil)
			So(commentIDs(second.Items), ShouldResemble, []string{"112"})
			So(second.HasNext(), ShouldBeFalse)
		})
	})

	Convey("Given nested replies that arrived without their children", t, func() {
		thread := testBase + "/api/v1/videos/uuid-01/comment-threads/50"
		d := newFake().serve(thread, "thread_50.json")
		c, _ := newTestService(d).Comments(testBase + "/w/uuid-01")

		body := []byte(`[
			{"comment": {"id": 60, "threadId": 50, "text": "<p>Comment 60</p>", "totalReplies": 2, "account": {"displayName": "User 60"}}},
			{"comment": {"id": 61, "threadId": 50, "text": "<p>Comment 61</p>", "totalReplies": 1, "account": {"displayName": "User 61"}}, "children": []}
		]`)
		replies, err := c.GetPage(media.NewPage(thread).WithBody(body))
		So(err, ShouldBeNil)
		So(d.calls, ShouldBeEmpty)

		Convey("Then the reply count falls back to totalReplies", func() {
			So(replies.Items[0].ReplyCount, ShouldEqual, 2)
			So(replies.Items[1].ReplyCount, ShouldEqual, 1)
		})

		Convey("Then the replies address the comment inside its thread", func() {
			page := replies.Items[0].Replies.MustGet()
			So(page.URL, ShouldEqual, thread)
			So(page.IDs, ShouldResemble, []string{"60"})
			So(page.HasBody(), ShouldBeFalse)
			So(replies.Items[1].Replies.MustGet().IDs, ShouldResemble, []string{"61"})

			nested, err := c.GetPage(page)
			So(err, ShouldBeNil)
			So(commentIDs(nested.Items), ShouldResemble, []string{"70", "71"})
			So(d.calls, ShouldHaveLength, 1)
		})

		Convey("Then a page with more than one id is rejected", func() {
			_, err := c.GetPage(media.NewPage(thread).WithIDs("60", "61"))
			So(errors.Is(err, extractor.ErrInvalidPage), ShouldBeTrue)
		})
	})
}

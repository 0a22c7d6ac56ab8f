package peertube

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLinks(t *testing.T) {
	service := newTestService(nil)

	Convey("Video urls", t, func() {
		links := service.StreamLinks()

		for _, u := range []string{
			testBase + "/w/uuid-01",
			testBase + "/videos/watch/uuid-01",
			testBase + "/videos/embed/uuid-01?autoplay=1",
		} {
			link, err := links.FromURL(u)
			So(err, ShouldBeNil)
			So(link.ID, ShouldEqual, "uuid-01")
			So(link.URL, ShouldEqual, testBase+"/videos/watch/uuid-01")
			So(link.BaseURL, ShouldEqual, testBase)
			So(link.OriginalURL, ShouldEqual, u)
		}

		So(links.Accepts(testBase+"/w/p/pl-1"), ShouldBeFalse)
		_, err := links.FromURL(testBase + "/w/p/pl-1")
		So(errors.Is(err, extractor.ErrUnsupportedURL), ShouldBeTrue)

		_, err = links.FromURL(testBase + "/about")
		So(errors.Is(err, extractor.ErrUnsupportedURL), ShouldBeTrue)

		u, err := links.FromID("uuid-01")
		So(err, ShouldBeNil)
		So(u, ShouldEqual, testBase+"/videos/watch/uuid-01")
	})

	Convey("Channel urls keep their kind in the id", t, func() {
		links := service.ChannelLinks()

		link, err := links.FromURL(testBase + "/c/" + channelHandle + "/videos")
		So(err, ShouldBeNil)
		So(link.ID, ShouldEqual, "video-channels/"+channelHandle)
		So(link.URL, ShouldEqual, testBase+"/video-channels/"+channelHandle)

		link, err = links.FromURL(testBase + "/api/v1/accounts/blender@peertube.test")
		So(err, ShouldBeNil)
		So(link.ID, ShouldEqual, "accounts/blender@peertube.test")

		_, err = links.FromID("blender")
		So(err, ShouldNotBeNil)
	})

	Convey("Playlist urls", t, func() {
		link, err := service.PlaylistLinks().FromURL(testBase + "/w/p/pl-1")
		So(err, ShouldBeNil)
		So(link.ID, ShouldEqual, "pl-1")
		So(link.URL, ShouldEqual, testBase+"/w/p/pl-1")
	})

	Convey("Comment urls address a video or a thread", t, func() {
		links := service.CommentsLinks()

		link, err := links.FromURL(testBase + "/w/uuid-01")
		So(err, ShouldBeNil)
		So(link.URL, ShouldEqual, testBase+"/api/v1/videos/uuid-01/comment-threads")
		So(modeOf(link.URL), ShouldEqual, topLevel)

		link, err = links.FromURL(testBase + "/api/v1/videos/uuid-01/comment-threads/10")
		So(err, ShouldBeNil)
		So(link.ID, ShouldEqual, "uuid-01")
		So(modeOf(link.URL), ShouldEqual, reply)
	})

	Convey("Search queries pick the endpoint by filter", t, func() {
		links := service.SearchLinks()

		link, err := links.FromQuery("open movie")
		So(err, ShouldBeNil)
		So(link.URL, ShouldEqual, testBase+"/api/v1/search/videos?search=open+movie")
		So(link.Filters, ShouldResemble, []string{FilterVideos})

		link, err = links.FromQuery("open movie", FilterChannels)
		So(err, ShouldBeNil)
		So(link.URL, ShouldEqual, testBase+"/api/v1/search/video-channels?search=open+movie")
	})

	Convey("The default instance is used without one", t, func() {
		So(New(Instance{}, nil).BaseURL(), ShouldEqual, DefaultInstance.URL)
		So(service.BaseURL(), ShouldEqual, testBase)
	})
}

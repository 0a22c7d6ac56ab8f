package bandcamp

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLinks(t *testing.T) {
	service := New(nil)

	Convey("Track and album urls", t, func() {
		link, err := service.StreamLinks().FromURL("http://nightshift.bandcamp.com/track/midnight-drive?from=search")
		So(err, ShouldBeNil)
		So(link.ID, ShouldEqual, "nightshift/midnight-drive")
		So(link.URL, ShouldEqual, artistURL+"/track/midnight-drive")
		So(link.BaseURL, ShouldEqual, artistURL)

		u, err := service.PlaylistLinks().FromID("nightshift/neon-hours")
		So(err, ShouldBeNil)
		So(u, ShouldEqual, artistURL+"/album/neon-hours")

		So(service.StreamLinks().Accepts(artistURL+"/album/neon-hours"), ShouldBeFalse)
		_, err = service.StreamLinks().FromURL("https://daily.bandcamp.com/track/feature")
		So(errors.Is(err, extractor.ErrUnsupportedURL), ShouldBeTrue)
		_, err = service.PlaylistLinks().FromID("neon-hours")
		So(err, ShouldNotBeNil)
	})

	Convey("Artist urls point at the discography", t, func() {
		links := service.ChannelLinks()

		for _, u := range []string{artistURL, artistURL + "/", artistURL + "/music", artistURL + "/releases?x=1"} {
			link, err := links.FromURL(u)
			So(err, ShouldBeNil)
			So(link.ID, ShouldEqual, "nightshift")
			So(link.URL, ShouldEqual, artistURL+"/music")
		}

		So(links.Accepts(artistURL+"/track/midnight-drive"), ShouldBeFalse)
		So(links.Accepts("https://bandcamp.com"), ShouldBeFalse)
		So(links.Accepts("https://daily.bandcamp.com"), ShouldBeFalse)
	})

	Convey("Review urls keep the release url as id", t, func() {
		link, err := service.CommentsLinks().FromURL(artistURL + "/album/neon-hours#reviews")
		So(err, ShouldBeNil)
		So(link.ID, ShouldEqual, artistURL+"/album/neon-hours")
		So(link.URL, ShouldEqual, artistURL+"/album/neon-hours")
	})

	Convey("Search urls", t, func() {
		link, err := service.SearchLinks().FromQuery("night shift", FilterTracks)
		So(err, ShouldBeNil)
		So(link.URL, ShouldEqual, baseURL+"/search?item_type=t&page=1&q=night+shift")
		So(link.ID, ShouldEqual, "night shift")
	})
}

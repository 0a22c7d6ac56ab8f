package bandcamp

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestChannel(t *testing.T) {
	Convey("Given an artist", t, func() {
		d := newFake().
			serve(artistURL+"/music", "artist.html").
			serve(bandDetailsURL, "band_details.json")
		c, err := New(d).Channel(artistURL)
		So(err, ShouldBeNil)

		info, err := extractor.ChannelInfoOf(c)
		So(err, ShouldBeNil)

		Convey("Then the page and the band details are requested in order", func() {
			So(d.urls(), ShouldResemble, []string{artistURL + "/music", bandDetailsURL})
			So(d.calls[1].body, ShouldEqual, `{"band_id":1001}`)
		})

		Convey("Then the details fill the info", func() {
			So(info.Name, ShouldEqual, "Night Shift")
			So(info.Description, ShouldEqual, "Synth duo from Berlin.")
			So(info.Avatars[0].URL, ShouldEqual, "https://f4.bcbits.com/img/0000007001_10.jpg")
			So(info.Banners, ShouldHaveLength, 1)
			So(info.SubscriberCount, ShouldEqual, media.Unknown)
			So(info.ParentName, ShouldBeEmpty)
		})

		Convey("Then the discography is split by release kind", func() {
			batch, err := c.InitialPage()
			So(err, ShouldBeNil)
			So(batch.Items, ShouldHaveLength, 2)
			So(batch.Errors, ShouldHaveLength, 1)

			album := batch.Items[0].(*media.PlaylistItem)
			So(album.Name, ShouldEqual, "Neon Hours")
			So(album.URL, ShouldEqual, artistURL+"/album/neon-hours")
			So(album.UploaderName, ShouldEqual, "Night Shift")

			track := batch.Items[1].(*media.StreamItem)
			So(track.Name, ShouldEqual, "Midnight Drive")
			So(track.UploaderName, ShouldEqual, "Night Shift & Friends")
			So(track.Thumbnails[0].URL, ShouldEqual, "https://f4.bcbits.com/img/a0000003004_2.jpg")
			So(track.StreamType, ShouldEqual, media.StreamAudio)
		})

		Convey("Then there are no further pages", func() {
			_, err := c.GetPage(media.NewPage(artistURL + "/music"))
			So(errors.Is(err, extractor.ErrInvalidPage), ShouldBeTrue)
		})
	})

	Convey("An unknown band is unavailable", t, func() {
		d := newFake().
			serve(artistURL+"/music", "artist.html").
			serve(bandDetailsURL, "band_missing.json")
		c, _ := New(d).Channel(artistURL + "/music")

		err := c.FetchPage()
		So(errors.Is(err, extractor.ErrContentUnavailable), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "No such band")
	})
}

package bandcamp

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func kinds(items []media.Item) []media.Kind {
	return lo.Map(items, func(i media.Item, _ int) media.Kind { return i.Kind() })
}

func TestSearch(t *testing.T) {
	const (
		first  = baseURL + "/search?page=1&q=night+shift"
		second = baseURL + "/search?item_type&page=2&q=night+shift"
	)

	Convey("Given a search over every result type", t, func() {
		d := newFake().serve(first, "search_1.html").serve(second, "search_2.html")
		s, err := New(d).Search("night shift")
		So(err, ShouldBeNil)

		batch, err := s.InitialPage()
		So(err, ShouldBeNil)

		Convey("Then each row becomes the kind it declares", func() {
			So(kinds(batch.Items), ShouldResemble, []media.Kind{media.KindChannel, media.KindPlaylist, media.KindStream})
		})

		Convey("Then fans are skipped and unknown rows are errors", func() {
			So(batch.Errors, ShouldHaveLength, 1)
			So(batch.Errors[0].Error(), ShouldContainSubstring, "MERCH")
		})

		Convey("Then the rows are read", func() {
			artist := batch.Items[0].(*media.ChannelItem)
			So(artist.Name, ShouldEqual, "Night Shift")
			So(artist.URL, ShouldEqual, artistURL)
			So(artist.Description, ShouldEqual, "Berlin, Germany")

			album := batch.Items[1].(*media.PlaylistItem)
			So(album.URL, ShouldEqual, artistURL+"/album/neon-hours")
			So(album.UploaderName, ShouldEqual, "Night Shift")
			So(album.UploaderURL, ShouldEqual, artistURL)
			So(album.StreamCount, ShouldEqual, 10)

			track := batch.Items[2].(*media.StreamItem)
			So(track.UploaderName, ShouldEqual, "Night Shift")
			So(track.TextualUploadDate, ShouldEqual, "March 9, 2024")
			So(track.UploadDate.IsPresent(), ShouldBeTrue)
			So(track.Thumbnails, ShouldHaveLength, 1)
		})

		Convey("When the next link is followed", func() {
			So(batch.Next.MustGet().URL, ShouldEqual, second)

			next, err := s.GetPage(batch.Next.MustGet())
			So(err, ShouldBeNil)

			Convey("Then the last page has no next link", func() {
				So(kinds(next.Items), ShouldResemble, []media.Kind{media.KindChannel})
				So(next.HasNext(), ShouldBeFalse)
			})
		})
	})

	Convey("Filters select the item type", t, func() {
		d := newFake().serve(baseURL+"/search?item_type=a&page=1&q=night+shift", "search_empty.html")
		s, err := New(d).Search("night shift", FilterAlbums)
		So(err, ShouldBeNil)

		batch, err := s.InitialPage()
		So(err, ShouldBeNil)
		So(batch.Empty(), ShouldBeTrue)
		So(batch.HasNext(), ShouldBeFalse)

		_, err = New(d).Search("night shift", "fans")
		So(err, ShouldNotBeNil)
	})

	Convey("A page without a url is rejected", t, func() {
		s, _ := New(newFake()).Search("night shift")
		_, err := s.GetPage(media.Page{})
		So(errors.Is(err, extractor.ErrInvalidPage), ShouldBeTrue)
	})
}

package bookmark

import (
	"testing"
	"time"

	"github.com/mediax-cli/mediax/filesystem"
	"github.com/mediax-cli/mediax/media"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestBookmark(t *testing.T) {
	Convey("Given a continuation page", t, func() {
		page := media.NewPage("https://bandcamp.com/api/tralbumcollectors/2/reviews").
			WithIDs("a", "1234", "1699990000:77")

		b, err := New("reviews", "bandcamp", ListingComments, "https://nightshift.bandcamp.com/album/after-hours", page)
		So(err, ShouldBeNil)

		Convey("Then the token should decode to the same page", func() {
			decoded, err := b.Page()
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, page)
		})

		Convey("When saving it", func() {
			So(Save(b), ShouldBeNil)

			Convey("Then it should be found by name", func() {
				found, err := Find("reviews")
				So(err, ShouldBeNil)
				So(found.Target, ShouldEqual, b.Target)
				So(found.Listing, ShouldEqual, ListingComments)
				So(found.ServiceID, ShouldEqual, "bandcamp")

				decoded, err := found.Page()
				So(err, ShouldBeNil)
				So(decoded.IDs, ShouldResemble, []string{"a", "1234", "1699990000:77"})
			})

			Convey("And removing it should forget it", func() {
				So(Remove("reviews"), ShouldBeNil)
				_, err := Find("reviews")
				So(err, ShouldNotBeNil)
				So(Remove("reviews"), ShouldNotBeNil)
			})
		})
	})

	Convey("Given two bookmarks saved at different times", t, func() {
		older, _ := New("older", "peertube", ListingResource, "https://peertube.test/c/a", media.NewPage("https://peertube.test/x?start=12"))
		older.SavedAt = time.Now().Add(-time.Hour)
		newer, _ := New("newer", "peertube", ListingResource, "https://peertube.test/c/b", media.NewPage("https://peertube.test/y?start=24"))

		So(Save(older), ShouldBeNil)
		So(Save(newer), ShouldBeNil)

		Convey("Then the list should be newest first", func() {
			list, err := List()
			So(err, ShouldBeNil)
			So(len(list), ShouldBeGreaterThanOrEqualTo, 2)
			So(list[0].Name, ShouldEqual, "newer")
		})

		Convey("And saving the same listing again keeps the fetched count", func() {
			newer.Fetched = 5
			So(Save(newer), ShouldBeNil)

			again, _ := New("newer", "peertube", ListingResource, "https://peertube.test/c/b", media.NewPage("https://peertube.test/y?start=36"))
			So(Save(again), ShouldBeNil)

			found, err := Find("newer")
			So(err, ShouldBeNil)
			So(found.Fetched, ShouldEqual, 5)
		})
	})

	Convey("Names are sanitized on save and lookup", t, func() {
		b, err := New("late night/mix", "bandcamp", ListingKiosk, "featured", media.NewPage("https://bandcamp.com/api/mobile/24/bootstrap_data"))
		So(err, ShouldBeNil)
		So(b.Name, ShouldEqual, "late_night_mix")
		So(Save(b), ShouldBeNil)

		found, err := Find("late night/mix")
		So(err, ShouldBeNil)
		So(found.Target, ShouldEqual, "featured")
		So(Remove("late night/mix"), ShouldBeNil)
	})
}

package extractor

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOffsetPagination(t *testing.T) {
	Convey("Given a listing of 30 items in pages of 12", t, func() {
		page := media.NewPage("https://example.org/api/v1/videos?count=12&start=0")
		var sizes []int64

		for steps := 0; steps < 10; steps++ {
			offset, err := OffsetOf(page, "start")
			So(err, ShouldBeNil)
			sizes = append(sizes, min(12, 30-offset))

			next := NextOffset(page, "start", offset, 12, 30)
			if next.IsAbsent() {
				break
			}
			page = next.MustGet()
		}

		Convey("Then it takes three pages of 12, 12 and 6", func() {
			So(sizes, ShouldResemble, []int64{12, 12, 6})
		})

		Convey("Then the last page keeps the other parameters", func() {
			So(page.URL, ShouldContainSubstring, "count=12")
			So(page.URL, ShouldContainSubstring, "start=24")
		})
	})

	Convey("An exact multiple ends on the last full page", t, func() {
		next := NextOffset(media.NewPage("u?start=12"), "start", 12, 12, 24)
		So(next.IsAbsent(), ShouldBeTrue)
	})
}

func TestPageValidation(t *testing.T) {
	Convey("Structurally invalid pages are rejected", t, func() {
		So(errors.Is(RequireURL(media.Page{}), ErrInvalidPage), ShouldBeTrue)
		So(errors.Is(RequireIDs(media.NewPage("u").WithIDs("a"), 3), ErrInvalidPage), ShouldBeTrue)
		So(RequireIDs(media.NewPage("u").WithIDs("a", "b", "c"), 3), ShouldBeNil)

		_, err := OffsetOf(media.NewPage("https://example.org/x"), "start")
		So(errors.Is(err, ErrInvalidPage), ShouldBeTrue)

		_, err = OffsetOf(media.NewPage("https://example.org/x?start=-4"), "start")
		So(errors.Is(err, ErrInvalidPage), ShouldBeTrue)

		_, err = OffsetOf(media.NewPage("https://example.org/x?start=abc"), "start")
		So(errors.Is(err, ErrInvalidPage), ShouldBeTrue)
	})
}

func TestBatch(t *testing.T) {
	Convey("The last batch has no next page", t, func() {
		b := Last[*media.StreamItem]()
		So(b.Empty(), ShouldBeTrue)
		So(b.HasNext(), ShouldBeFalse)
	})

	Convey("An empty offset batch keeps paging until the total is reached", t, func() {
		b := Last[*media.StreamItem]()
		b.Next = NextOffset(media.NewPage("u?start=0"), "start", 0, 12, 30)
		So(b.Empty(), ShouldBeTrue)
		So(b.HasNext(), ShouldBeTrue)

		b.Next = NextOffset(media.NewPage("u?start=24"), "start", 24, 12, 30)
		So(b.HasNext(), ShouldBeFalse)
	})
}

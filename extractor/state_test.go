package extractor

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCell(t *testing.T) {
	Convey("Given an empty cell", t, func() {
		var cell Cell[string]
		calls := 0

		Convey("Reading it before a fetch panics", func() {
			So(func() { cell.Get() }, ShouldPanic)
			So(cell.Fetched(), ShouldBeFalse)
		})

		Convey("When it is loaded twice", func() {
			load := func() (string, error) {
				calls++
				return "payload", nil
			}
			So(cell.Load(load), ShouldBeNil)
			So(cell.Load(load), ShouldBeNil)

			Convey("Then the fetch runs once", func() {
				So(calls, ShouldEqual, 1)
				So(cell.Get(), ShouldEqual, "payload")
				So(cell.Fetched(), ShouldBeTrue)
			})
		})

		Convey("When the fetch fails", func() {
			boom := errors.New("boom")
			err := cell.Load(func() (string, error) {
				calls++
				return "", boom
			})
			So(err, ShouldEqual, boom)

			Convey("Then it stays failed and does not fetch again", func() {
				err = cell.Load(func() (string, error) {
					calls++
					return "late", nil
				})
				So(err, ShouldEqual, boom)
				So(calls, ShouldEqual, 1)
				So(func() { cell.Get() }, ShouldPanic)
			})
		})
	})
}

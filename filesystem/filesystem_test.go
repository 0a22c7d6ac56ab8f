package filesystem

import (
	"os"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})

	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("Touch creates a missing file once", func() {
			So(Touch("/logs/today.log"), ShouldBeNil)
			So(lo.Must(API().Exists("/logs/today.log")), ShouldBeTrue)

			lo.Must0(API().WriteFile("/logs/today.log", []byte("kept"), os.ModePerm))
			So(Touch("/logs/today.log"), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/logs/today.log"))), ShouldEqual, "kept")
		})

		Convey("GacheFs writes through the active backend", func() {
			var fs GacheFs
			So(fs.MkdirAll("/cache", os.ModePerm), ShouldBeNil)

			f, err := fs.OpenFile("/cache/x.json", os.O_CREATE|os.O_RDWR, 0644)
			So(err, ShouldBeNil)
			_, _ = f.Write([]byte("{}"))
			So(f.Close(), ShouldBeNil)

			So(string(lo.Must(API().ReadFile("/cache/x.json"))), ShouldEqual, "{}")
		})
	})
}

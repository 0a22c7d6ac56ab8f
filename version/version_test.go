package version

import (
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type releases struct {
	body  string
	calls int
}

func (r *releases) Get(url string, _ map[string]string) (*extractor.Response, error) {
	r.calls++
	return &extractor.Response{Status: 200, URL: url, Body: []byte(r.body)}, nil
}

func (r *releases) PostJSON(url string, _ map[string]string, _ []byte) (*extractor.Response, error) {
	return r.Get(url, nil)
}

func TestCompare(t *testing.T) {
	Convey("Versions are ordered by major, minor and patch", t, func() {
		c, err := Compare("v1.2.3", "1.2.3")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, 0)

		c, err = Compare("0.2.0", "0.1.9")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, 1)

		c, _ = Compare("1.0.0", "1.0.1")
		So(c, ShouldEqual, -1)

		_, err = Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given the release API answers", t, func() {
		d := &releases{body: `{"tag_name":"v0.4.1"}`}

		Convey("Then the tag is returned without prefix and cached", func() {
			ver, err := Latest(d)
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "0.4.1")

			ver, err = Latest(d)
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "0.4.1")
			So(d.calls, ShouldBeLessThanOrEqualTo, 1)
		})
	})
}

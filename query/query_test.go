package query

import (
	"testing"

	"github.com/mediax-cli/mediax/filesystem"
	"github.com/mediax-cli/mediax/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		Convey("When remembering queries", func() {
			So(Remember("bandcamp", "night shift", 1), ShouldBeNil)
			So(Remember("bandcamp", "nightcore", 10), ShouldBeNil)
			So(Remember("peertube", "night sky", 100), ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				s := SuggestMany("bandcamp", "night")
				So(s, ShouldResemble, []string{"nightcore", "night shift"})
				So(Suggest("bandcamp", "nit").OrEmpty(), ShouldEqual, "nightcore")
			})

			Convey("Then other services should not leak into suggestions", func() {
				So(SuggestMany("peertube", "night"), ShouldResemble, []string{"night sky"})
			})

			Convey("Then nothing should be suggested for unknown prefixes", func() {
				So(Suggest("bandcamp", "zzz").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("When suggestions are turned off", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)
			So(SuggestMany("bandcamp", "night"), ShouldBeEmpty)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  NIGHT Shift  "), ShouldEqual, "night shift")
			So(Remember("bandcamp", "   ", 1), ShouldBeNil)
		})
	})
}

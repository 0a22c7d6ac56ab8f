package media

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPage(t *testing.T) {
	Convey("Given a page carrying every field", t, func() {
		page := NewPage("https://example.org/api/v1/videos?start=12&count=12").
			WithIDs("a", "123", "tok:en").
			WithCookies(map[string]string{"session": "x"}).
			WithBody([]byte(`[{"comment":{"id":1},"children":[]}]`))

		Convey("When it is encoded and decoded", func() {
			token, err := page.Encode()
			So(err, ShouldBeNil)

			decoded, err := DecodePage(token)
			So(err, ShouldBeNil)

			Convey("Then every field survives byte for byte", func() {
				So(decoded.URL, ShouldEqual, page.URL)
				So(decoded.IDs, ShouldResemble, page.IDs)
				So(decoded.Cookies, ShouldResemble, page.Cookies)
				So(string(decoded.Body), ShouldEqual, string(page.Body))
			})
		})

		Convey("When the source slices change afterwards", func() {
			body := []byte("abc")
			p := NewPage("u").WithBody(body)
			body[0] = 'x'

			Convey("Then the page keeps its own copy", func() {
				So(string(p.Body), ShouldEqual, "abc")
			})
		})
	})

	Convey("An empty body is absent", t, func() {
		p := NewPage("u").WithBody([]byte{})
		So(p.HasBody(), ShouldBeFalse)
		So(p.HasURL(), ShouldBeTrue)
	})

	Convey("A broken token does not decode", t, func() {
		_, err := DecodePage("%%%")
		So(err, ShouldNotBeNil)
	})
}

func TestImage(t *testing.T) {
	Convey("Resolution levels follow the height", t, func() {
		So(LevelFromHeight(0), ShouldEqual, LevelUnknown)
		So(LevelFromHeight(-1), ShouldEqual, LevelUnknown)
		So(LevelFromHeight(100), ShouldEqual, LevelLow)
		So(LevelFromHeight(175), ShouldEqual, LevelMedium)
		So(LevelFromHeight(480), ShouldEqual, LevelMedium)
		So(LevelFromHeight(720), ShouldEqual, LevelHigh)
	})

	Convey("An image needs a url", t, func() {
		So(Image{Height: 10}.Validate(), ShouldNotBeNil)
		So(NewImage("u", UnknownDimension, UnknownDimension).Validate(), ShouldBeNil)
	})

	Convey("Largest prefers the highest level and keeps order on ties", t, func() {
		img, ok := Largest([]Image{
			NewImage("a", 100, 100),
			NewImage("b", 480, 850),
			NewImage("c", 500, 900),
		})
		So(ok, ShouldBeTrue)
		So(img.URL, ShouldEqual, "b")

		_, ok = Largest(nil)
		So(ok, ShouldBeFalse)
	})
}

func TestFormats(t *testing.T) {
	Convey("Formats resolve by suffix and mime type", t, func() {
		f, ok := FormatFromSuffix(".MP4")
		So(ok, ShouldBeTrue)
		So(f, ShouldResemble, FormatMPEG4)

		f, ok = FormatFromMime("audio/mpeg; charset=binary")
		So(ok, ShouldBeTrue)
		So(f, ShouldResemble, FormatMP3)

		_, ok = FormatFromSuffix("exe")
		So(ok, ShouldBeFalse)
	})
}

func TestContainsSimilar(t *testing.T) {
	Convey("Given a progressive 720p stream", t, func() {
		list := []VideoStream{{
			ID:         "720p-mp4-progressive",
			Resolution: "720p",
			Format:     FormatMPEG4,
			Delivery:   DeliveryProgressiveHTTP,
		}}

		Convey("The same resolution, format and delivery is similar", func() {
			So(ContainsSimilar(list, VideoStream{ID: "other", Resolution: "720p", Format: FormatMPEG4}), ShouldBeTrue)
		})

		Convey("A different delivery method is not similar", func() {
			So(ContainsSimilar(list, VideoStream{Resolution: "720p", Format: FormatMPEG4, Delivery: DeliveryHLS}), ShouldBeFalse)
		})

		Convey("A different resolution is not similar", func() {
			So(ContainsSimilar(list, VideoStream{Resolution: "480p", Format: FormatMPEG4}), ShouldBeFalse)
		})
	})
}

func TestKind(t *testing.T) {
	Convey("Kinds round trip through their names", t, func() {
		for _, k := range []Kind{KindStream, KindPlaylist, KindChannel, KindComment} {
			parsed, ok := ParseKind(k.String())
			So(ok, ShouldBeTrue)
			So(parsed, ShouldEqual, k)
		}

		_, ok := ParseKind("podcast")
		So(ok, ShouldBeFalse)
	})
}

func TestIssues(t *testing.T) {
	Convey("Issues serialize as messages", t, func() {
		data, err := json.Marshal(Issues{errors.New("a"), errors.New("b")})
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `["a","b"]`)

		data, err = json.Marshal(Issues(nil))
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `[]`)
	})
}

func TestBest(t *testing.T) {
	Convey("Given video streams of several heights and deliveries", t, func() {
		streams := []VideoStream{
			{ID: "720-torrent", Resolution: "720p", Delivery: DeliveryTorrent},
			{ID: "480", Resolution: "480p", Delivery: DeliveryProgressiveHTTP},
			{ID: "1080-torrent", Resolution: "1080p", Delivery: DeliveryTorrent},
			{ID: "720", Resolution: "720p60", Delivery: DeliveryProgressiveHTTP},
			{ID: "720-hls", Resolution: "720p", Delivery: DeliveryHLS},
		}

		Convey("Then the tallest playable stream should win, first on ties", func() {
			best, ok := BestVideo(streams)
			So(ok, ShouldBeTrue)
			So(best.ID, ShouldEqual, "720")
		})

		Convey("Then torrents alone are not playable", func() {
			_, ok := BestVideo(streams[:1])
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Heights are read from resolution labels", t, func() {
		So(VideoStream{Resolution: "1080p"}.Height(), ShouldEqual, 1080)
		So(VideoStream{Resolution: "720p60"}.Height(), ShouldEqual, 720)
		So(VideoStream{Resolution: "Audio"}.Height(), ShouldEqual, 0)
	})

	Convey("The highest bitrate audio should win", t, func() {
		best, ok := BestAudio([]AudioStream{
			{ID: "mp3-128", Bitrate: 128},
			{ID: "mp3-v0", Bitrate: 245},
			{ID: "flac", Bitrate: 900, Delivery: DeliveryTorrent},
		})
		So(ok, ShouldBeTrue)
		So(best.ID, ShouldEqual, "mp3-v0")
	})
}

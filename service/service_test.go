package service

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/service/peertube"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	services := Builtins(Options{})

	Convey("When trying to get an invalid service", t, func() {
		_, ok := Get(services, "kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})

		Convey("And the closest id should be suggested", func() {
			So(Closest(services, "bandcam"), ShouldEqual, "bandcamp")
			So(ErrUnknown(services, "peertub").Error(), ShouldContainSubstring, "did you mean peertube?")
		})
	})

	Convey("When getting a service by name", t, func() {
		s, ok := Get(services, "PeerTube")
		So(ok, ShouldBeTrue)
		So(s.ID(), ShouldEqual, peertube.ServiceID)

		s, ok = Get(services, "BANDCAMP")
		So(ok, ShouldBeTrue)
		So(s.Name(), ShouldEqual, "Bandcamp")
	})

	Convey("Builtins should match the registered ids", t, func() {
		ids := make([]string, len(services))
		for i, s := range services {
			ids[i] = s.ID()
		}
		So(ids, ShouldResemble, IDs())
	})

	Convey("The PeerTube instance should come from the options", t, func() {
		s := Builtins(Options{PeerTube: peertube.Instance{Name: "Tube", URL: "https://tube.example/"}})[0]
		So(s.BaseURL(), ShouldEqual, "https://tube.example")
	})
}

func TestForURL(t *testing.T) {
	services := Builtins(Options{})

	Convey("Given urls of every kind", t, func() {
		cases := []struct {
			url     string
			service string
			kind    media.Kind
		}{
			{"https://framatube.org/w/9c9de5e8-0a1e-484a-b099-e80766180a6d", "peertube", media.KindStream},
			{"https://framatube.org/w/p/96b0ee2b-a5a7-4794-8769-58d8ccbb8cc9", "peertube", media.KindPlaylist},
			{"https://framatube.org/c/framasoft_channel/videos", "peertube", media.KindChannel},
			{"https://framatube.org/a/framasoft", "peertube", media.KindChannel},
			{"https://nightshift.bandcamp.com/track/glow", "bandcamp", media.KindStream},
			{"https://nightshift.bandcamp.com/album/after-hours", "bandcamp", media.KindPlaylist},
			{"https://nightshift.bandcamp.com/", "bandcamp", media.KindChannel},
		}

		for _, c := range cases {
			Convey("Then "+c.url+" should resolve", func() {
				m, err := ForURL(services, c.url)
				So(err, ShouldBeNil)
				So(m.Service.ID(), ShouldEqual, c.service)
				So(m.Kind, ShouldEqual, c.kind)
			})
		}
	})

	Convey("An unknown url should be unsupported", t, func() {
		_, err := ForURL(services, "https://example.com/nothing/here")
		So(errors.Is(err, extractor.ErrUnsupportedURL), ShouldBeTrue)
	})

	Convey("Listing should open the extractor for the kind", t, func() {
		url := "https://nightshift.bandcamp.com/album/after-hours"
		m, err := ForURL(services, url)
		So(err, ShouldBeNil)

		l, err := m.Listing(url)
		So(err, ShouldBeNil)
		So(l.ID(), ShouldEqual, "nightshift/after-hours")
		So(l.ServiceID(), ShouldEqual, "bandcamp")
	})
}

package peertube

import (
	"errors"
	"testing"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const channelHandle = "blender_open_movies@peertube.test"

func channelFake() *fakeDownloader {
	videos := "/video-channels/" + channelHandle + "/videos"
	return newFake().
		serve(testBase+"/api/v1/video-channels/"+channelHandle, "channel.json").
		serve(listingURL(videos, 0), "channel_videos_0.json").
		serve(listingURL(videos, 12), "channel_videos_12.json").
		serve(listingURL(videos, 24), "channel_videos_24.json")
}

func names[T media.Item](items []T) []string {
	return lo.Map(items, func(item T, _ int) string { return item.Header().Name })
}

func TestChannelPagination(t *testing.T) {
	Convey("Given a channel with 30 videos", t, func() {
		d := channelFake()
		c, err := newTestService(d).Channel(testBase + "/c/" + channelHandle)
		So(err, ShouldBeNil)

		Convey("When the listing is walked to its end", func() {
			var sizes []int
			var pages []media.Page

			batch, err := c.InitialPage()
			So(err, ShouldBeNil)
			sizes = append(sizes, len(batch.Items))

			for batch.HasNext() {
				next := batch.Next.MustGet()
				pages = append(pages, next)
				batch, err = c.GetPage(next)
				So(err, ShouldBeNil)
				sizes = append(sizes, len(batch.Items))
			}

			Convey("Then the pages hold 12, 12 and 6 videos", func() {
				So(sizes, ShouldResemble, []int{12, 12, 6})
				So(batch.Next.IsPresent(), ShouldBeFalse)
				So(names(batch.Items)[0], ShouldEqual, "Video 24")
			})

			Convey("Then the continuation pages are offsets of the listing", func() {
				So(pages, ShouldHaveLength, 2)
				So(pages[0].URL, ShouldEqual, listingURL("/video-channels/"+channelHandle+"/videos", 12))
				So(pages[1].URL, ShouldEqual, listingURL("/video-channels/"+channelHandle+"/videos", 24))
			})

			Convey("Then replaying a page on a fresh extractor yields the same batch", func() {
				fresh, _ := newTestService(channelFake()).Channel(testBase + "/video-channels/" + channelHandle)
				replayed, err := fresh.GetPage(pages[0])
				So(err, ShouldBeNil)

				original, _ := c.GetPage(pages[0])
				So(names(replayed.Items), ShouldResemble, names(original.Items))
				So(replayed.Next, ShouldResemble, original.Next)
			})

			Convey("Then the channel itself is never fetched", func() {
				So(d.calls, ShouldNotContain, testBase+"/api/v1/video-channels/"+channelHandle)
			})
		})

		Convey("Then a page without a valid offset is rejected before any request", func() {
			videos := testBase + "/api/v1/video-channels/" + channelHandle + "/videos"
			for _, page := range []media.Page{
				media.NewPage(videos),
				media.NewPage(videos + "?start=-12&count=12"),
				media.NewPage(videos + "?start=twelve&count=12"),
				{},
			} {
				_, err := c.GetPage(page)
				So(errors.Is(err, extractor.ErrInvalidPage), ShouldBeTrue)
			}
			So(d.calls, ShouldBeEmpty)
		})

		Convey("Then listed videos carry their uploader", func() {
			batch, _ := c.InitialPage()
			item := batch.Items[0].(*media.StreamItem)
			So(item.URL, ShouldEqual, testBase+"/videos/watch/uuid-00")
			So(item.UploaderURL, ShouldEqual, testBase+"/accounts/blender@peertube.test")
			So(item.StreamType, ShouldEqual, media.StreamVideo)
		})
	})
}

func TestChannel(t *testing.T) {
	Convey("Given a video channel", t, func() {
		c, _ := newTestService(channelFake()).Channel(testBase + "/video-channels/" + channelHandle)

		info, err := extractor.ChannelInfoOf(c)
		So(err, ShouldBeNil)

		Convey("Then its owner account is the parent", func() {
			So(info.Name, ShouldEqual, "Blender Open Movies")
			So(info.ID, ShouldEqual, "video-channels/"+channelHandle)
			So(info.SubscriberCount, ShouldEqual, 4521)
			So(info.Avatars, ShouldHaveLength, 2)
			So(info.Banners, ShouldHaveLength, 1)
			So(info.ParentName, ShouldEqual, "Blender")
			So(info.ParentURL, ShouldEqual, testBase+"/accounts/blender@peertube.test")
			So(info.Errors, ShouldBeEmpty)
		})
	})

	Convey("Given an account from an older server", t, func() {
		d := newFake().serve(testBase+"/api/v1/accounts/blender@peertube.test", "account_legacy.json")
		c, _ := newTestService(d).Channel(testBase + "/a/blender@peertube.test")

		info, err := extractor.ChannelInfoOf(c)
		So(err, ShouldBeNil)

		Convey("Then the single avatar object is read", func() {
			So(info.Avatars, ShouldHaveLength, 1)
			So(info.Avatars[0].URL, ShouldEqual, testBase+"/lazy-static/avatars/old.png")
			So(info.Avatars[0].Height, ShouldEqual, media.UnknownDimension)
		})

		Convey("Then an account has no parent", func() {
			So(info.ParentName, ShouldBeEmpty)
			So(info.ParentURL, ShouldBeEmpty)
			So(info.Description, ShouldBeEmpty)
		})
	})

	Convey("Given a terminated account", t, func() {
		d := newFake().serveStatus(testBase+"/api/v1/accounts/spammer@peertube.test", 410, "account_terminated.json")
		c, _ := newTestService(d).Channel(testBase + "/accounts/spammer@peertube.test")

		Convey("Then fetching it fails with a policy violation", func() {
			err := c.FetchPage()
			So(errors.Is(err, extractor.ErrContentUnavailable), ShouldBeTrue)

			var unavailable *extractor.UnavailableError
			So(errors.As(err, &unavailable), ShouldBeTrue)
			So(unavailable.Reason, ShouldEqual, extractor.ReasonAccountTerminated)
			So(unavailable.Termination, ShouldEqual, extractor.TerminationPolicyViolation)
		})

		Convey("Then the failure is remembered", func() {
			So(c.FetchPage(), ShouldNotBeNil)
			So(c.FetchPage(), ShouldNotBeNil)
			So(d.calls, ShouldHaveLength, 1)
		})
	})
}

func TestPlaylist(t *testing.T) {
	Convey("Given a playlist with an unavailable element", t, func() {
		d := newFake().
			serve(testBase+"/api/v1/video-playlists/pl-1", "playlist.json").
			serve(listingURL("/video-playlists/pl-1/videos", 0), "playlist_videos_0.json")
		p, err := newTestService(d).Playlist(testBase + "/videos/watch/playlist/pl-1")
		So(err, ShouldBeNil)
		So(p.URL(), ShouldEqual, testBase+"/w/p/pl-1")

		Convey("Then the info reads the playlist", func() {
			info, err := extractor.PlaylistInfoOf(p)
			So(err, ShouldBeNil)
			So(info.Name, ShouldEqual, "Shorts")
			So(info.StreamCount, ShouldEqual, 3)
			So(info.Description, ShouldResemble, media.MarkdownDescription("Short *films*"))
			So(info.UploaderURL, ShouldEqual, testBase+"/accounts/blender@peertube.test")
		})

		Convey("Then the missing video is an error beside the others", func() {
			batch, err := p.InitialPage()
			So(err, ShouldBeNil)
			So(names(batch.Items), ShouldResemble, []string{"Video 1", "Video 2"})
			So(batch.Errors, ShouldHaveLength, 1)
			So(errors.Is(batch.Errors[0], extractor.ErrMalformed), ShouldBeTrue)
			So(batch.HasNext(), ShouldBeFalse)
		})
	})
}

func TestSearch(t *testing.T) {
	searchURL := func(endpoint, query string) string {
		return extractor.WithQuery(listingURL("/search/"+endpoint, 0), "search", query)
	}

	Convey("Given a video search with one broken result", t, func() {
		d := newFake().serve(searchURL("videos", "blender"), "search_videos_0.json")
		s, err := newTestService(d).Search("blender")
		So(err, ShouldBeNil)

		batch, err := s.InitialPage()
		So(err, ShouldBeNil)

		Convey("Then the other results survive", func() {
			So(names(batch.Items), ShouldResemble, []string{"Video 7", "Video 8"})
			So(batch.Errors, ShouldHaveLength, 1)
			So(batch.Items[0].Kind(), ShouldEqual, media.KindStream)
		})

		Convey("Then the first page is requested once", func() {
			So(s.FetchPage(), ShouldBeNil)
			So(d.calls, ShouldHaveLength, 1)
		})

		Convey("Then there is no suggestion", func() {
			suggestion, err := s.Suggestion()
			So(err, ShouldBeNil)
			So(suggestion, ShouldBeEmpty)
			So(s.SearchString(), ShouldEqual, "blender")
		})
	})

	Convey("The content filter picks the kind of the results", t, func() {
		d := newFake().
			serve(searchURL("video-channels", "blender"), "search_channels_0.json").
			serve(searchURL("video-playlists", "blender"), "search_playlists_0.json")
		service := newTestService(d)

		channels, _ := service.Search("blender", FilterChannels)
		batch, err := channels.InitialPage()
		So(err, ShouldBeNil)
		So(batch.Items, ShouldHaveLength, 1)
		So(batch.Items[0].Kind(), ShouldEqual, media.KindChannel)
		So(batch.Items[0].Header().URL, ShouldEqual, testBase+"/video-channels/"+channelHandle)

		playlists, _ := service.Search("blender", FilterPlaylists)
		batch, err = playlists.InitialPage()
		So(err, ShouldBeNil)
		So(batch.Items, ShouldHaveLength, 1)
		So(batch.Items[0].(*media.PlaylistItem).StreamCount, ShouldEqual, 2)

		_, err = service.Search("blender", "users")
		So(err, ShouldNotBeNil)
	})
}

func TestKiosk(t *testing.T) {
	Convey("Given the trending kiosk", t, func() {
		d := newFake().serve(extractor.WithQuery(listingURL("/videos", 0), "sort", "-trending"), "kiosk_trending_0.json")
		service := newTestService(d)

		k, err := service.Kiosk("")
		So(err, ShouldBeNil)

		Convey("Then it lists the videos of the instance", func() {
			name, _ := k.Name()
			So(name, ShouldEqual, KioskTrending)

			batch, err := k.InitialPage()
			So(err, ShouldBeNil)
			So(names(batch.Items), ShouldResemble, []string{"Video 1", "Video 2"})
			So(batch.HasNext(), ShouldBeFalse)
		})

		Convey("Then unknown kiosks are rejected", func() {
			So(service.Kiosks(), ShouldContain, KioskLocal)
			_, err := service.Kiosk("Popular")
			So(err, ShouldNotBeNil)
		})
	})
}

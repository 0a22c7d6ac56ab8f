// Package cmd implements the mediax command-line interface.
package cmd

import (
	"os"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.SetOut(os.Stdout)
}

// infoCmd prints the details of a stream, channel or playlist.
var infoCmd = &cobra.Command{
	Use:     "info <url>",
	Short:   "Display the details of a stream, channel or playlist",
	Example: "mediax info https://framatube.org/w/9c9de5e8-0a1e-484a-b099-e80766180a6d",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		m := resolveURL(newServices(), url)
		log.WithField("service", m.Service.ID()).Infof("info %s %s", m.Kind, url)

		var (
			info  media.Item
			pretty func(render.Options)
		)

		switch m.Kind {
		case media.KindChannel:
			e, err := m.Service.Channel(url)
			handleErr(err)
			channel, err := extractor.ChannelInfoOf(e)
			handleErr(err)
			info = channel
			pretty = func(o render.Options) { o.Channel(cmd.OutOrStdout(), channel) }
		case media.KindPlaylist:
			e, err := m.Service.Playlist(url)
			handleErr(err)
			playlist, err := extractor.PlaylistInfoOf(e)
			handleErr(err)
			info = playlist
			pretty = func(o render.Options) { o.Playlist(cmd.OutOrStdout(), playlist) }
		default:
			e, err := m.Service.Stream(url)
			handleErr(err)
			stream, err := extractor.StreamInfoOf(e)
			handleErr(err)
			info = stream
			pretty = func(o render.Options) { o.Stream(cmd.OutOrStdout(), stream) }
		}

		if asJSON(cmd) {
			handleErr(render.JSON(cmd.OutOrStdout(), info))
			return
		}
		pretty(render.FromConfig())
	},
}

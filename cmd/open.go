// Package cmd implements the mediax command-line interface.
package cmd

import (
	"errors"
	"fmt"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/open"
	"github.com/mediax-cli/mediax/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringP("app", "a", "", "Open with this application (e.g., mpv) instead of the system handler")
	openCmd.Flags().Bool("audio", false, "Prefer the best audio stream")
	openCmd.Flags().Bool("print", false, "Print the chosen stream url instead of opening it")
}

// bestStream picks what to hand to a player: the tallest playable video, the HLS master playlist,
// then the best audio. preferAudio puts audio first.
func bestStream(info *media.StreamInfo, preferAudio bool) (string, error) {
	audio := func() (string, bool) {
		s, ok := media.BestAudio(info.AudioStreams)
		return s.Content, ok
	}
	video := func() (string, bool) {
		s, ok := media.BestVideo(info.VideoStreams)
		return s.Content, ok
	}
	hls := func() (string, bool) {
		return info.HLSURL, info.HLSURL != ""
	}

	order := []func() (string, bool){video, hls, audio}
	if preferAudio {
		order = []func() (string, bool){audio, video, hls}
	}

	for _, pick := range order {
		if url, ok := pick(); ok {
			return url, nil
		}
	}
	return "", errors.New("no playable stream")
}

// openCmd opens a stream in a player, or any other resource in the browser.
var openCmd = &cobra.Command{
	Use:     "open <url>",
	Short:   "Open the best stream of a url in a player",
	Example: "mediax open https://framatube.org/w/9c9de5e8-0a1e-484a-b099-e80766180a6d --app mpv",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			url       = args[0]
			app       = lo.Must(cmd.Flags().GetString("app"))
			printOnly = lo.Must(cmd.Flags().GetBool("print"))
		)

		m := resolveURL(newServices(), url)
		target := url

		if m.Kind == media.KindStream {
			e, err := m.Service.Stream(url)
			handleErr(err)

			info, err := extractor.StreamInfoOf(e)
			handleErr(err)

			target, err = bestStream(info, lo.Must(cmd.Flags().GetBool("audio")))
			handleErr(err)
		}

		if printOnly {
			fmt.Println(target)
			return
		}

		if app != "" {
			checkDependency(app)
		}

		log.Infof("opening %s", target)
		handleErr(open.Start(target, app))
		fmt.Printf("%s opened %s\n", icon.Get(icon.Success), style.Faint(target))
	},
}

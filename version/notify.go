// Package version checks GitHub for a newer mediax release.
package version

import (
	"fmt"

	"github.com/mediax-cli/mediax/color"
	"github.com/mediax-cli/mediax/constant"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/style"
	"github.com/mediax-cli/mediax/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release exists. Lookup failures are silent.
func Notify(d extractor.Downloader) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Question)))
	latest, err := Latest(d)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/mediax-cli/mediax/releases/tag/v"+latest),
	)
}

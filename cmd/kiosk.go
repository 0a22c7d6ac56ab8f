// Package cmd implements the mediax command-line interface.
package cmd

import (
	"github.com/mediax-cli/mediax/bookmark"
	"github.com/mediax-cli/mediax/service"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(kioskCmd)
	listingFlags(kioskCmd)
}

func completionKiosks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completionServices(cmd, args, toComplete)
	case 1:
		s, ok := service.Get(newServices(), args[0])
		if !ok {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return s.Kiosks(), cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// kioskCmd lists a curated feed of a service.
var kioskCmd = &cobra.Command{
	Use:               "kiosk <service> [kiosk]",
	Short:             "List a curated feed of a service, such as trending or featured",
	Long:              "List a curated feed of a service. Without a kiosk name the service's default feed is listed.",
	Example:           "mediax kiosk peertube \"Most liked\"",
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completionKiosks,
	Run: func(cmd *cobra.Command, args []string) {
		s := serviceByName(newServices(), args[0])

		var id string
		if len(args) > 1 {
			id = args[1]
		}

		e, err := s.Kiosk(id)
		handleErr(err)

		p := newPager(cmd, listing{serviceID: s.ID(), kind: bookmark.ListingKiosk, target: id})
		handleErr(p.run(e, startPage(cmd)))
	},
}

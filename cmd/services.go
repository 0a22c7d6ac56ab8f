// Package cmd implements the mediax command-line interface.
package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/mediax-cli/mediax/color"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/network"
	"github.com/mediax-cli/mediax/render"
	"github.com/mediax-cli/mediax/service"
	"github.com/mediax-cli/mediax/service/peertube"
	"github.com/mediax-cli/mediax/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDownloader() *network.Downloader {
	return network.New(network.Options{
		UserAgent:   viper.GetString(key.NetworkUserAgent),
		Timeout:     time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		RateLimit:   viper.GetFloat64(key.NetworkRateLimit),
		Fingerprint: viper.GetBool(key.NetworkFingerprint),
	})
}

func newServices() []service.Service {
	return service.Builtins(service.Options{
		Downloader: newDownloader(),
		PeerTube: peertube.Instance{
			Name: viper.GetString(key.PeerTubeInstanceName),
			URL:  viper.GetString(key.PeerTubeInstance),
		},
	})
}

func serviceByName(services []service.Service, name string) service.Service {
	s, ok := service.Get(services, name)
	if !ok {
		handleErr(service.ErrUnknown(services, name))
	}
	return s
}

func resolveURL(services []service.Service, url string) service.Match {
	m, err := service.ForURL(services, url)
	handleErr(err)
	return m
}

func completionServices(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return service.IDs(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.Flags().BoolP("raw", "r", false, "Print only the service ids")
	servicesCmd.SetOut(os.Stdout)
}

type serviceSummary struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	BaseURL       string                 `json:"base_url"`
	Capabilities  []extractor.Capability `json:"capabilities"`
	Kiosks        []string               `json:"kiosks"`
	SearchFilters []string               `json:"search_filters"`
}

// servicesCmd lists the compiled-in services.
var servicesCmd = &cobra.Command{
	Use:     "services",
	Short:   "Display the supported services and what they offer",
	Aliases: []string{"sources"},
	Run: func(cmd *cobra.Command, args []string) {
		summaries := lo.Map(newServices(), func(s service.Service, _ int) serviceSummary {
			return serviceSummary{
				ID:            s.ID(),
				Name:          s.Name(),
				BaseURL:       s.BaseURL(),
				Capabilities:  s.Capabilities(),
				Kiosks:        s.Kiosks(),
				SearchFilters: s.SearchLinks().Filters(),
			}
		})

		if asJSON(cmd) {
			handleErr(render.JSON(cmd.OutOrStdout(), summaries))
			return
		}

		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		for i, s := range summaries {
			if raw {
				cmd.Println(s.ID)
				continue
			}

			cmd.Printf("%s %s\n", headerStyle(s.Name), style.Faint("("+s.ID+")"))
			cmd.Printf("  %s %s\n", style.Faint("url:"), s.BaseURL)
			cmd.Printf("  %s %s\n", style.Faint("offers:"), strings.Join(lo.Map(s.Capabilities, func(c extractor.Capability, _ int) string {
				return string(c)
			}), ", "))
			cmd.Printf("  %s %s\n", style.Faint("kiosks:"), strings.Join(s.Kiosks, ", "))
			cmd.Printf("  %s %s\n", style.Faint("search filters:"), strings.Join(s.SearchFilters, ", "))

			if i < len(summaries)-1 {
				cmd.Println()
			}
		}
	},
}

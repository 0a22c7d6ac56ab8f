// Package cmd implements the mediax command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mediax-cli/mediax/color"
	"github.com/mediax-cli/mediax/constant"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/icon"
	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/style"
	"github.com/mediax-cli/mediax/util"
	"github.com/mediax-cli/mediax/version"
	"github.com/mediax-cli/mediax/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("instance", "P", "", "Base URL of the PeerTube instance to query")
	lo.Must0(viper.BindPFlag(key.PeerTubeInstance, rootCmd.PersistentFlags().Lookup("instance")))

	rootCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as JSON")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(newDownloader())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd is the entry point of mediax.
var rootCmd = &cobra.Command{
	Use:   constant.Mediax,
	Short: "Extract metadata, streams and comments from media services",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Extract metadata, streams and comments from media services"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))

	var captcha *extractor.CaptchaError
	if errors.As(err, &captcha) {
		_, _ = fmt.Fprintf(
			os.Stderr,
			"%s open %s in a browser, solve the challenge and try again later\n",
			icon.Get(icon.Warn),
			style.Fg(color.Yellow)(captcha.URL),
		)
	}

	os.Exit(1)
}

func asJSON(cmd *cobra.Command) bool {
	return lo.Must(cmd.Flags().GetBool("json"))
}

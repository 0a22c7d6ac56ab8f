// Package cmd implements the mediax command-line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/mediax-cli/mediax/bookmark"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/render"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var schemaTargets = map[string]any{
	"page":     media.Page{},
	"batch":    extractor.Batch[media.Item]{},
	"stream":   media.StreamInfo{},
	"channel":  media.ChannelInfo{},
	"playlist": media.PlaylistInfo{},
	"comment":  media.CommentItem{},
	"thread":   threadBatch{},
	"bookmark": bookmark.Bookmark{},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of the --json outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema [target]",
	Short: "Generate the JSON schema of a structured output",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		targets := lo.Keys(schemaTargets)
		sort.Strings(targets)
		return targets, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		target := "batch"
		if len(args) > 0 {
			target = args[0]
		}

		v, ok := schemaTargets[target]
		if !ok {
			targets := lo.Keys(schemaTargets)
			sort.Strings(targets)
			handleErr(fmt.Errorf("unknown schema %s, available: %s", target, strings.Join(targets, ", ")))
		}

		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return filepath.Base(t.PkgPath()) + "." + t.Name()
		}

		handleErr(render.JSON(cmd.OutOrStdout(), reflector.Reflect(v)))
	},
}

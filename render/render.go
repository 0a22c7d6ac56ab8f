// Package render prints infos and listing batches as JSON or as styled terminal text.
package render

import (
	"encoding/json"
	"io"

	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/util"
	"github.com/spf13/viper"
)

// Options shape the pretty output.
type Options struct {
	// Width wraps descriptions and comments. Zero disables wrapping.
	Width int
	// Markdown converts HTML descriptions to markdown instead of stripping them to text.
	Markdown bool
}

// FromConfig reads the render.* keys and the terminal size.
func FromConfig() Options {
	opts := Options{Markdown: viper.GetBool(key.RenderMarkdown)}

	if viper.GetBool(key.RenderWrap) {
		if width, _, err := util.TerminalSize(); err == nil && width > 0 {
			opts.Width = width
		} else {
			opts.Width = 80
		}
	}

	return opts
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// Package render prints infos and listing batches as JSON or as styled terminal text.
package render

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/mediax-cli/mediax/log"
	"github.com/mediax-cli/mediax/media"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Text converts a description to terminal text. HTML becomes markdown; markdown and plain text
// are kept as they are.
func (o Options) Text(d media.Description) string {
	content := strings.TrimSpace(d.Content)

	if d.Type == media.DescriptionHTML && content != "" {
		converted, err := htmltomarkdown.ConvertString(content)
		if err != nil {
			log.Warnf("could not convert html description: %s", err)
		} else {
			content = strings.TrimSpace(converted)
		}

		if !o.Markdown {
			content = stripMarkdown(content)
		}
	}

	return o.wrap(content)
}

func (o Options) wrap(s string) string {
	if o.Width <= 0 {
		return s
	}
	// wordwrap keeps words whole; wrap then hard-breaks anything still too long, such as urls.
	return wrap.String(wordwrap.String(s, o.Width), o.Width)
}

var markdownMarks = strings.NewReplacer("**", "", "__", "", "`", "", "\\", "")

func stripMarkdown(s string) string {
	lines := strings.Split(markdownMarks.Replace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, "#> ")
	}
	return strings.Join(lines, "\n")
}

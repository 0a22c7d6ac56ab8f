// Package media defines the record model shared by every service: listing items, images,
// audio/video/subtitle streams and the continuation Page.
package media

// DescriptionType tells how Description.Content is marked up.
type DescriptionType int

const (
	DescriptionPlain DescriptionType = iota
	DescriptionHTML
	DescriptionMarkdown
)

func (t DescriptionType) String() string {
	switch t {
	case DescriptionHTML:
		return "html"
	case DescriptionMarkdown:
		return "markdown"
	default:
		return "plain"
	}
}

func (t DescriptionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

type Description struct {
	Content string          `json:"content"`
	Type    DescriptionType `json:"type"`
}

// EmptyDescription is returned when a service exposes no description.
var EmptyDescription = Description{Type: DescriptionPlain}

func PlainDescription(s string) Description {
	return Description{Content: s, Type: DescriptionPlain}
}

func HTMLDescription(s string) Description {
	return Description{Content: s, Type: DescriptionHTML}
}

func MarkdownDescription(s string) Description {
	return Description{Content: s, Type: DescriptionMarkdown}
}

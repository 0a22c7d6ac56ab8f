// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

// Link is a resolved url: a stable id and the canonical url for it.
type Link struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	OriginalURL string   `json:"original_url"`
	BaseURL     string   `json:"base_url"`
	Filters     []string `json:"content_filters,omitempty"`
}

// LinkHandler maps human urls to ids and back. It never performs I/O.
type LinkHandler interface {
	Accepts(url string) bool
	FromURL(url string) (Link, error)
	FromID(id string) (string, error)
}

// SearchLinkHandler builds search links. The query is the Link's ID.
type SearchLinkHandler interface {
	FromQuery(query string, filters ...string) (Link, error)
	Filters() []string
}

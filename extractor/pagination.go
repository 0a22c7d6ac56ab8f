// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import (
	"net/url"
	"strconv"

	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

// RequireURL rejects a page without a url.
func RequireURL(page media.Page) error {
	if !page.HasURL() {
		return InvalidPage("missing url")
	}
	if _, err := url.Parse(page.URL); err != nil {
		return InvalidPage("unparsable url %q", page.URL)
	}
	return nil
}

// RequireIDs rejects a page that does not carry exactly n ids.
func RequireIDs(page media.Page, n int) error {
	if len(page.IDs) != n {
		return InvalidPage("expected %d ids, got %d", n, len(page.IDs))
	}
	return nil
}

// OffsetOf reads the non-negative integer query parameter param of the page url.
func OffsetOf(page media.Page, param string) (int64, error) {
	if err := RequireURL(page); err != nil {
		return 0, err
	}

	u, _ := url.Parse(page.URL)
	raw := u.Query().Get(param)
	if raw == "" {
		return 0, InvalidPage("missing %s parameter", param)
	}

	offset, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || offset < 0 {
		return 0, InvalidPage("bad %s parameter %q", param, raw)
	}
	return offset, nil
}

// WithQuery returns rawURL with param set to value, keeping the other parameters.
func WithQuery(rawURL, param, value string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	q.Set(param, value)
	u.RawQuery = q.Encode()
	return u.String()
}

// NextOffset advances an offset listing by pageSize. There is no next page once
// offset+pageSize reaches total.
func NextOffset(page media.Page, param string, offset, pageSize, total int64) mo.Option[media.Page] {
	if offset+pageSize >= total {
		return mo.None[media.Page]()
	}

	next := offset + pageSize
	return mo.Some(media.NewPage(WithQuery(page.URL, param, strconv.FormatInt(next, 10))))
}

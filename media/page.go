// Package media defines the record model shared by every service: listing items, images,
// audio/video/subtitle streams and the continuation Page.
package media

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// Page is a continuation token: everything needed to fetch one further batch of a listing.
//
// A Page is self-sufficient. Replaying it against a freshly constructed extractor yields the same
// batch as replaying it against the extractor that produced it. Each listing documents which of the
// fields it fills; an absent field is its zero value.
type Page struct {
	URL     string            `json:"url,omitempty"`
	IDs     []string          `json:"ids,omitempty"`
	Cookies map[string]string `json:"cookies,omitempty"`
	Body    []byte            `json:"body,omitempty"`
}

func NewPage(url string) Page {
	return Page{URL: url}
}

// WithIDs returns a copy of p carrying ids.
func (p Page) WithIDs(ids ...string) Page {
	p.IDs = append([]string(nil), ids...)
	return p
}

// WithBody returns a copy of p carrying a copy of body. An empty body is treated as absent.
func (p Page) WithBody(body []byte) Page {
	if len(body) == 0 {
		p.Body = nil
		return p
	}
	p.Body = append([]byte(nil), body...)
	return p
}

// WithCookies returns a copy of p carrying cookies.
func (p Page) WithCookies(cookies map[string]string) Page {
	if len(cookies) == 0 {
		p.Cookies = nil
		return p
	}
	p.Cookies = lo.Assign(cookies)
	return p
}

func (p Page) HasURL() bool {
	return p.URL != ""
}

func (p Page) HasBody() bool {
	return len(p.Body) > 0
}

func (p Page) String() string {
	switch {
	case p.HasBody():
		return fmt.Sprintf("page %s (+%d byte body)", p.URL, len(p.Body))
	case len(p.IDs) > 0:
		return fmt.Sprintf("page %s %v", p.URL, p.IDs)
	default:
		return "page " + p.URL
	}
}

// Encode returns a URL-safe text form of the page, suitable for command lines and storage.
func (p Page) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodePage parses the output of Page.Encode.
func DecodePage(token string) (Page, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Page{}, fmt.Errorf("decode page token: %w", err)
	}

	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return Page{}, fmt.Errorf("decode page token: %w", err)
	}
	return p, nil
}

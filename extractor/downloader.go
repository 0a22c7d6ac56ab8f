// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import "net/http"

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte

	// URL is the final url after redirects.
	URL string
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Downloader performs the network round trips of extractors.
//
// Implementations return network failures as errors and report a verification challenge as
// *CaptchaError. Any other status is returned in Response for the extractor to interpret.
type Downloader interface {
	Get(url string, headers map[string]string) (*Response, error)
	PostJSON(url string, headers map[string]string, body []byte) (*Response, error)
}

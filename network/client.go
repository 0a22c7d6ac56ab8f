// Package network implements extractor.Downloader over net/http.
package network

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
)

// newTransport returns a pooled transport tuned for many small API requests to few hosts.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	t.DisableCompression = true
	return t
}

func newClient(opts Options) *http.Client {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	var transport http.RoundTripper = newTransport()
	if opts.Fingerprint {
		transport = newFingerprintTransport(opts.Timeout, transport)
	}

	return &http.Client{
		Timeout:       opts.Timeout,
		Transport:     transport,
		Jar:           jar,
		CheckRedirect: checkRedirect,
	}
}

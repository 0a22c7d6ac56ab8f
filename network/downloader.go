// Package network implements extractor.Downloader over net/http.
package network

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/mediax-cli/mediax/constant"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/log"
	"golang.org/x/time/rate"
)

// Options configure a Downloader. Zero values fall back to the package defaults.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	// RateLimit is the number of requests per second. Zero or less disables limiting.
	RateLimit float64
	// Fingerprint sends https requests with a Chrome TLS ClientHello.
	Fingerprint bool
}

const defaultTimeout = 20 * time.Second

// Downloader is the shared HTTP client handed to every service. Cookies persist for its lifetime.
type Downloader struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

var _ extractor.Downloader = (*Downloader)(nil)

func New(opts Options) *Downloader {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = constant.UserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &Downloader{
		client:    newClient(opts),
		limiter:   limiter,
		userAgent: opts.UserAgent,
	}
}

func (d *Downloader) Get(url string, headers map[string]string) (*extractor.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return d.do(req, headers)
}

func (d *Downloader) PostJSON(url string, headers map[string]string, body []byte) (*extractor.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.do(req, headers)
}

func (d *Downloader) do(req *http.Request, headers map[string]string) (*extractor.Response, error) {
	if err := d.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	log.Tracef("%s %s", req.Method, req.URL)
	resp, err := d.client.Do(req)
	if err != nil {
		var captcha *extractor.CaptchaError
		if errors.As(err, &captcha) {
			return nil, captcha
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &extractor.CaptchaError{URL: req.URL.String()}
	}

	body, err := decode(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.URL, err)
	}

	return &extractor.Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   body,
		URL:    resp.Request.URL.String(),
	}, nil
}

func decode(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body

	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "br":
		r = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	resp.Header.Del("Content-Encoding")
	return io.ReadAll(r)
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return errors.New("stopped after 10 redirects")
	}

	location := strings.ToLower(req.URL.String())
	if strings.Contains(location, "/sorry/") || strings.Contains(location, "captcha") {
		return &extractor.CaptchaError{URL: req.URL.String()}
	}
	return nil
}

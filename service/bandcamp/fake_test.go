package bandcamp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/samber/lo"
)

const artistURL = "https://nightshift.bandcamp.com"

type request struct {
	url  string
	body string
}

// fakeDownloader serves testdata fixtures by exact url and records every request.
type fakeDownloader struct {
	routes   map[string]string
	statuses map[string]int
	calls    []request
}

func newFake() *fakeDownloader {
	return &fakeDownloader{routes: map[string]string{}, statuses: map[string]int{}}
}

func (f *fakeDownloader) serve(url, fixture string) *fakeDownloader {
	f.routes[url] = fixture
	return f
}

func (f *fakeDownloader) status(url string, status int) *fakeDownloader {
	f.statuses[url] = status
	return f
}

func (f *fakeDownloader) respond(url string, body []byte) (*extractor.Response, error) {
	f.calls = append(f.calls, request{url: url, body: string(body)})

	fixture, ok := f.routes[url]
	if !ok {
		return nil, fmt.Errorf("unexpected request to %s", url)
	}
	return &extractor.Response{
		Status: lo.ValueOr(f.statuses, url, 200),
		Body:   lo.Must(os.ReadFile(filepath.Join("testdata", fixture))),
		URL:    url,
	}, nil
}

func (f *fakeDownloader) Get(url string, _ map[string]string) (*extractor.Response, error) {
	return f.respond(url, nil)
}

func (f *fakeDownloader) PostJSON(url string, _ map[string]string, body []byte) (*extractor.Response, error) {
	return f.respond(url, body)
}

func (f *fakeDownloader) urls() []string {
	return lo.Map(f.calls, func(r request, _ int) string { return r.url })
}

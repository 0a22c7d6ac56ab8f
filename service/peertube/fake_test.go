package peertube

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mediax-cli/mediax/extractor"
	"github.com/samber/lo"
)

const testBase = "https://peertube.test"

type route struct {
	status  int
	fixture string
}

// fakeDownloader serves testdata fixtures by exact url and records every request.
type fakeDownloader struct {
	routes map[string]route
	calls  []string
}

func newFake() *fakeDownloader {
	return &fakeDownloader{routes: map[string]route{}}
}

func (f *fakeDownloader) serve(url, fixture string) *fakeDownloader {
	return f.serveStatus(url, 200, fixture)
}

func (f *fakeDownloader) serveStatus(url string, status int, fixture string) *fakeDownloader {
	f.routes[url] = route{status: status, fixture: fixture}
	return f
}

func (f *fakeDownloader) Get(url string, _ map[string]string) (*extractor.Response, error) {
	f.calls = append(f.calls, url)

	r, ok := f.routes[url]
	if !ok {
		return nil, fmt.Errorf("unexpected request to %s", url)
	}
	return &extractor.Response{
		Status: r.status,
		Body:   lo.Must(os.ReadFile(filepath.Join("testdata", r.fixture))),
		URL:    url,
	}, nil
}

func (f *fakeDownloader) PostJSON(url string, headers map[string]string, _ []byte) (*extractor.Response, error) {
	return f.Get(url, headers)
}

func newTestService(d extractor.Downloader) *Service {
	return New(Instance{Name: "Test", URL: testBase + "/"}, d)
}

// listingURL builds the offset listing url the extractors request.
func listingURL(endpoint string, start int) string {
	u := extractor.WithQuery(testBase+"/api/v1"+endpoint, startParam, fmt.Sprint(start))
	return extractor.WithQuery(u, countParam, "12")
}

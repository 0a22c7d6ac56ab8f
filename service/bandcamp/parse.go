// Package bandcamp extracts tracks, albums, artists, search results, the featured feed and album
// reviews from Bandcamp. Pages are HTML with embedded JSON blobs; artist details, the featured
// feed and further reviews come from the mobile API.
package bandcamp

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

const imageHost = "https://f4.bcbits.com/img/"

// Image formats served by the image host, largest first.
var imageSizes = []struct {
	format int
	side   int
}{
	{10, 1200},
	{2, 350},
	{3, 100},
}

// artImages returns album or track art. Ids of 0 mean no art.
func artImages(id int64) []media.Image {
	return images("a%010d_%d.jpg", id)
}

// bandImages returns artist, label or fan pictures.
func bandImages(id int64) []media.Image {
	return images("%010d_%d.jpg", id)
}

func images(format string, id int64) []media.Image {
	if id <= 0 {
		return []media.Image{}
	}

	out := make([]media.Image, 0, len(imageSizes))
	for _, size := range imageSizes {
		out = append(out, media.NewImage(imageHost+fmt.Sprintf(format, id, size.format), size.side, size.side))
	}
	return out
}

// checkResponse maps the statuses Bandcamp answers with for missing pages and API errors.
func checkResponse(resp *extractor.Response) error {
	switch {
	case resp.Status == http.StatusNotFound, resp.Status == http.StatusGone:
		return extractor.Unavailable("page not found")
	case !resp.OK():
		return fmt.Errorf("bandcamp: %s: status %d", resp.URL, resp.Status)
	}

	if failed, _ := jsonparser.GetBoolean(resp.Body, "error"); failed {
		message, _ := jsonparser.GetString(resp.Body, "error_message")
		return extractor.Unavailable(message)
	}
	return nil
}

func get(d extractor.Downloader, url string) ([]byte, error) {
	resp, err := d.Get(url, nil)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func post(d extractor.Downloader, url string, body []byte) ([]byte, error) {
	resp, err := d.PostJSON(url, nil, body)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func getDocument(d extractor.Downloader, url string) (*goquery.Document, error) {
	body, err := get(d, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, extractor.Malformed("html", err)
	}
	return doc, nil
}

// blob reads the JSON stored in an attribute of the first element matching selector.
func blob(doc *goquery.Document, selector, attr string) ([]byte, error) {
	value, ok := doc.Find(selector).First().Attr(attr)
	if !ok || strings.TrimSpace(value) == "" {
		return nil, extractor.Malformedf(attr, "no %s blob", attr)
	}
	return []byte(value), nil
}

func field(keys []string) string {
	return strings.Join(keys, ".")
}

func str(data []byte, keys ...string) (string, error) {
	v, err := jsonparser.GetString(data, keys...)
	if err != nil {
		return "", extractor.Malformed(field(keys), err)
	}
	return v, nil
}

// optStr returns "" for a missing or null value.
func optStr(data []byte, keys ...string) string {
	v, err := jsonparser.GetString(data, keys...)
	if err != nil {
		return ""
	}
	return v
}

func integer(data []byte, keys ...string) (int64, error) {
	v, err := jsonparser.GetInt(data, keys...)
	if err != nil {
		return 0, extractor.Malformed(field(keys), err)
	}
	return v, nil
}

// idString reads an id stored as a number or a string.
func idString(data []byte, keys ...string) (string, error) {
	v, typ, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		return "", extractor.Malformed(field(keys), err)
	}

	switch typ {
	case jsonparser.Number:
		return string(v), nil
	case jsonparser.String:
		return jsonparser.ParseString(v)
	default:
		return "", extractor.Malformedf(field(keys), "unexpected %s id", typ)
	}
}

// seconds reads a fractional duration and rounds it to whole seconds.
func seconds(data []byte, keys ...string) (int64, error) {
	v, err := jsonparser.GetFloat(data, keys...)
	if err != nil {
		return media.Unknown, extractor.Malformed(field(keys), err)
	}
	return int64(math.Round(v)), nil
}

func raw(data []byte, keys ...string) ([]byte, bool) {
	v, typ, _, err := jsonparser.Get(data, keys...)
	if err != nil || typ == jsonparser.Null {
		return nil, false
	}
	return v, true
}

func count(data []byte, keys ...string) int64 {
	var n int64
	_, _ = jsonparser.ArrayEach(data, func([]byte, jsonparser.ValueType, int, error) { n++ }, keys...)
	return n
}

var errNoDate = errors.New("no date")

// parseDate reads the date formats used across pages and APIs.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, extractor.Malformed("date", errNoDate)
	}

	for _, layout := range []string{"02 Jan 2006 15:04:05 MST", "January 2, 2006", "2 January 2006", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, extractor.Malformedf("date", "unknown date format %q", value)
}

// absolute resolves an href found on a page of base.
func absolute(base, href string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "http://"):
		return "https://" + strings.TrimPrefix(href, "http://")
	case strings.HasPrefix(href, "https://"):
		return href
	default:
		return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(href, "/")
	}
}

// stripQuery drops the tracking parameters search results append to urls.
func stripQuery(u string) string {
	u, _, _ = strings.Cut(u, "?")
	return u
}

// text is the trimmed text of a selection with runs of whitespace collapsed.
func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

package bandcamp

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

// tralbum is a track or album page: the parsed document and the data-tralbum and data-band
// blobs embedded in it. The band blob is missing on some label pages.
type tralbum struct {
	doc  *goquery.Document
	data []byte
	band []byte
}

func fetchTralbum(d extractor.Downloader, url string) (tralbum, error) {
	doc, err := getDocument(d, url)
	if err != nil {
		return tralbum{}, err
	}

	data, err := blob(doc, "[data-tralbum]", "data-tralbum")
	if err != nil {
		return tralbum{}, err
	}
	band, _ := blob(doc, "[data-band]", "data-band")

	return tralbum{doc: doc, data: data, band: band}, nil
}

func (t tralbum) title() (string, error) { return str(t.data, "current", "title") }
func (t tralbum) artist() (string, error) { return str(t.data, "artist") }

func (t tralbum) art() []media.Image {
	id, _ := jsonparser.GetInt(t.data, "art_id")
	return artImages(id)
}

func (t tralbum) bandImages() []media.Image {
	id, _ := jsonparser.GetInt(t.band, "image_id")
	return bandImages(id)
}

// kind is the short tralbum type the reviews API takes: "t" or "a".
func (t tralbum) kind() (string, error) {
	itemType, err := str(t.data, "item_type")
	if err != nil {
		return "", err
	}

	switch itemType {
	case "track":
		return "t", nil
	case "album":
		return "a", nil
	default:
		return "", extractor.Malformedf("item_type", "unknown tralbum type %q", itemType)
	}
}

// description joins the about, lyrics and credits texts that are present.
func (t tralbum) description() media.Description {
	parts := make([]string, 0, 3)
	for _, keys := range [][]string{
		{"current", "about"},
		{"trackinfo", "[0]", "lyrics"},
		{"current", "credits"},
	} {
		if s := strings.TrimSpace(optStr(t.data, keys...)); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return media.EmptyDescription
	}
	return media.PlainDescription(strings.Join(parts, "\n\n"))
}

func (t tralbum) releaseDate() (string, error) {
	if s := optStr(t.data, "current", "release_date"); s != "" {
		return s, nil
	}
	return str(t.data, "current", "publish_date")
}

func (t tralbum) tags() []string {
	tags := []string{}
	t.doc.Find("a.tag").Each(func(_ int, s *goquery.Selection) {
		if tag := text(s); tag != "" {
			tags = append(tags, tag)
		}
	})
	return tags
}

// licences maps license_type to its name.
var licences = map[int64]string{
	1: "All rights reserved",
	2: "CC BY-NC-ND 3.0",
	3: "CC BY-NC-SA 3.0",
	4: "CC BY-NC 3.0",
	5: "CC BY-ND 3.0",
	6: "CC BY 3.0",
	8: "CC BY-SA 3.0",
}

func (t tralbum) licence() (string, error) {
	typ, err := jsonparser.GetInt(t.data, "current", "license_type")
	if err != nil {
		return licences[1], nil
	}
	if name, ok := licences[typ]; ok {
		return name, nil
	}
	return "", extractor.Malformedf("license_type", "unknown licence %d", typ)
}

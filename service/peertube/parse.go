// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/media"
)

var errNoImage = errors.New("no image")

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

// optStr returns "" for a missing or null string.
func optStr(data []byte, keys ...string) (string, error) {
	v, typ, _, err := jsonparser.Get(data, keys...)
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError), typ == jsonparser.Null:
		return "", nil
	case err != nil:
		return "", extractor.Malformed(field(keys), err)
	case typ != jsonparser.String:
		return "", extractor.Malformedf(field(keys), "expected string, got %s", typ)
	}

	s, err := jsonparser.ParseString(v)
	if err != nil {
		return "", extractor.Malformed(field(keys), err)
	}
	return s, nil
}

func integer(data []byte, keys ...string) (int64, error) {
	v, err := jsonparser.GetInt(data, keys...)
	if err != nil {
		return 0, extractor.Malformed(field(keys), err)
	}
	return v, nil
}

func boolean(data []byte, keys ...string) (bool, error) {
	v, err := jsonparser.GetBoolean(data, keys...)
	if err != nil {
		return false, extractor.Malformed(field(keys), err)
	}
	return v, nil
}

func date(data []byte, keys ...string) (time.Time, error) {
	raw, err := str(data, keys...)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, extractor.Malformed(field(keys), err)
	}
	return t, nil
}

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

func raw(data []byte, keys ...string) ([]byte, bool) {
	v, typ, _, err := jsonparser.Get(data, keys...)
	if err != nil || typ == jsonparser.Null {
		return nil, false
	}
	return v, true
}

func stringList(data []byte, keys ...string) ([]string, error) {
	values := []string{}
	_, err := jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, _ error) {
		if typ == jsonparser.String {
			if s, err := jsonparser.ParseString(value); err == nil {
				values = append(values, s)
			}
		}
	}, keys...)
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, extractor.Malformed(field(keys), err)
	}
	return values, nil
}

func trimSlash(url string) string {
	return strings.TrimRight(url, "/")
}

// absolute prefixes relative instance paths with base.
func absolute(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// thumbnails reads the fixed-size thumbnail and preview of a video or playlist.
func thumbnails(base string, data []byte) ([]media.Image, error) {
	var images []media.Image
	if path, _ := optStr(data, "thumbnailPath"); path != "" {
		images = append(images, media.NewImage(absolute(base, path), 157, 280))
	}
	if path, _ := optStr(data, "previewPath"); path != "" {
		images = append(images, media.NewImage(absolute(base, path), 480, 850))
	}

	if len(images) == 0 {
		return nil, extractor.Malformed("thumbnails", errNoImage)
	}
	return images, nil
}

// avatars reads the sized avatars array at keys, falling back to the single avatar object that
// servers before v6 send. A missing avatar is not an error.
func avatars(base string, data []byte, keys ...string) ([]media.Image, error) {
	return pictures(base, data, "avatars", "avatar", keys...)
}

func banners(base string, data []byte, keys ...string) ([]media.Image, error) {
	return pictures(base, data, "banners", "banner", keys...)
}

func pictures(base string, data []byte, plural, single string, keys ...string) ([]media.Image, error) {
	images := []media.Image{}

	_, err := jsonparser.ArrayEach(data, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		path, err := jsonparser.GetString(value, "path")
		if err != nil || path == "" {
			return
		}
		width, err := jsonparser.GetInt(value, "width")
		if err != nil {
			width = media.UnknownDimension
		}
		images = append(images, media.NewSquareImage(absolute(base, path), int(width)))
	}, append(keys, plural)...)

	if err == nil && len(images) > 0 {
		return images, nil
	}

	if path, _ := optStr(data, append(keys, single, "path")...); path != "" {
		images = append(images, media.NewSquareImage(absolute(base, path), media.UnknownDimension))
	}
	return images, nil
}

// handle returns name@host of the account or channel object at keys.
func handle(data []byte, keys ...string) (string, error) {
	name, err := str(data, append(keys, "name")...)
	if err != nil {
		return "", err
	}
	host, err := str(data, append(keys, "host")...)
	if err != nil {
		return "", err
	}
	return name + "@" + host, nil
}

func accountURL(base string, data []byte, keys ...string) (string, error) {
	h, err := handle(data, keys...)
	if err != nil {
		return "", err
	}
	return base + "/accounts/" + h, nil
}

func channelURL(base string, data []byte, keys ...string) (string, error) {
	h, err := handle(data, keys...)
	if err != nil {
		return "", err
	}
	return base + "/video-channels/" + h, nil
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

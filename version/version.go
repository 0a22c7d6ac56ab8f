// Package version checks GitHub for a newer mediax release.
package version

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
	"github.com/mediax-cli/mediax/filesystem"
	"github.com/mediax-cli/mediax/where"
	"github.com/metafates/gache"
)

const latestReleaseURL = "https://api.github.com/repos/mediax-cli/mediax/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the leading "v". The answer is cached for
// two days.
func Latest(d extractor.Downloader) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}
	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := d.Get(latestReleaseURL, map[string]string{"Accept": "application/vnd.github+json"})
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", fmt.Errorf("release lookup: status %d", resp.Status)
	}

	tag, err := jsonparser.GetString(resp.Body, "tag_name")
	if err != nil {
		return "", fmt.Errorf("release lookup: %w", err)
	}
	if tag == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(tag, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}

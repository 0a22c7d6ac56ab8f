// Package peertube extracts videos, channels, accounts, playlists, comments, search results and
// kiosks from one PeerTube instance through its REST API.
package peertube

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/mediax-cli/mediax/extractor"
)

// get fetches url and maps PeerTube error payloads to the extractor error taxonomy.
func get(d extractor.Downloader, url string) ([]byte, error) {
	resp, err := d.Get(url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func errorMessage(body []byte) string {
	for _, key := range []string{"error", "detail"} {
		if msg, err := jsonparser.GetString(body, key); err == nil && msg != "" {
			return msg
		}
	}
	return ""
}

func checkResponse(resp *extractor.Response) error {
	message := errorMessage(resp.Body)
	if resp.OK() && message == "" {
		return nil
	}

	lower := strings.ToLower(message)
	switch {
	case resp.Status == http.StatusUnavailableForLegalReasons:
		return extractor.GeoRestricted(message)
	case strings.Contains(lower, "terminated"),
		strings.Contains(lower, "account") && (strings.Contains(lower, "blocked") || strings.Contains(lower, "suspended")):
		return extractor.Terminated(extractor.TerminationUnspecified, message)
	case resp.Status == http.StatusForbidden && (strings.Contains(lower, "private") || strings.Contains(lower, "password")):
		return extractor.Private(message)
	case resp.Status == http.StatusNotFound, resp.Status == http.StatusGone:
		return extractor.Unavailable(message)
	case resp.Status >= http.StatusInternalServerError:
		return fmt.Errorf("peertube: %s: status %d", resp.URL, resp.Status)
	default:
		return fmt.Errorf("peertube: %s: status %d: %s", resp.URL, resp.Status, message)
	}
}

// checkBlacklisted rejects a video removed by the instance moderators.
func checkBlacklisted(video []byte) error {
	if blocked, _ := jsonparser.GetBoolean(video, "blacklisted"); !blocked {
		return nil
	}

	reason, _ := jsonparser.GetString(video, "blacklistedReason")
	if reason == "" {
		reason = "blocked by the instance"
	}
	return extractor.Unavailable(reason)
}

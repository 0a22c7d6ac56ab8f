// Package bookmark persists named continuation pages so a listing can be resumed after a restart.
package bookmark

import (
	"fmt"
	"strings"
	"time"

	"github.com/mediax-cli/mediax/media"
	"github.com/mediax-cli/mediax/util"
)

// Listing names the kind of listing a bookmark belongs to.
type Listing string

const (
	ListingResource Listing = "resource"
	ListingComments Listing = "comments"
	ListingSearch   Listing = "search"
	ListingKiosk    Listing = "kiosk"
)

// Bookmark is a saved position inside a listing. Target is the url of a resource or comment
// listing, the query of a search and the id of a kiosk.
type Bookmark struct {
	Name      string    `json:"name"`
	ServiceID string    `json:"service_id"`
	Listing   Listing   `json:"listing"`
	Target    string    `json:"target"`
	Filters   []string  `json:"filters,omitempty"`
	Token     string    `json:"token"`
	Fetched   int       `json:"fetched"`
	SavedAt   time.Time `json:"saved_at"`
}

// New bookmarks page of a listing. The name is sanitized the way Find and Remove expect it.
func New(name, serviceID string, listing Listing, target string, page media.Page) (*Bookmark, error) {
	token, err := page.Encode()
	if err != nil {
		return nil, err
	}

	return &Bookmark{
		Name:      util.SanitizeFilename(name),
		ServiceID: serviceID,
		Listing:   listing,
		Target:    target,
		Token:     token,
		SavedAt:   time.Now(),
	}, nil
}

// Page decodes the saved continuation page.
func (b *Bookmark) Page() (media.Page, error) {
	return media.DecodePage(b.Token)
}

func (b *Bookmark) String() string {
	target := b.Target
	if len(b.Filters) > 0 {
		target += " [" + strings.Join(b.Filters, ",") + "]"
	}
	return fmt.Sprintf("%s : %s %s (%s)", b.Name, b.Listing, target, b.ServiceID)
}

// Package media defines the record model shared by every service: listing items, images,
// audio/video/subtitle streams and the continuation Page.
//
// Records are plain data. They are created fresh per extraction call and never mutated afterwards.
package media

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
)

// Unknown marks a count, duration or dimension that could not be derived from the payload.
const Unknown int64 = -1

// UnknownReplyCount marks a comment whose reply count is not derivable from the current payload.
const UnknownReplyCount int64 = -1

// Kind identifies the record variant of an Item.
type Kind int

const (
	KindStream Kind = iota
	KindPlaylist
	KindChannel
	KindComment
)

var kindNames = map[Kind]string{
	KindStream:   "stream",
	KindPlaylist: "playlist",
	KindChannel:  "channel",
	KindComment:  "comment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return lo.FindKeyBy(kindNames, func(_ Kind, name string) bool {
		return name == s
	})
}

// Record carries the identity and display fields every item has.
type Record struct {
	Service    string  `json:"service"`
	URL        string  `json:"url"`
	Name       string  `json:"name"`
	Thumbnails []Image `json:"thumbnails"`
}

// Header returns the shared identity part of an item.
func (r *Record) Header() *Record {
	return r
}

// Item is any record a listing can yield.
type Item interface {
	Kind() Kind
	Header() *Record
}

// Issues is a list of recoverable errors that serializes as strings.
type Issues []error

func (i Issues) MarshalJSON() ([]byte, error) {
	messages := lo.Map(i, func(err error, _ int) string {
		return err.Error()
	})

	return json.Marshal(messages)
}

// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import (
	"github.com/mediax-cli/mediax/media"
	"github.com/samber/mo"
)

// Batch is one page of a listing: the committed items in upstream order, the per-item failures and
// the page to fetch next. Offset listings may return an empty batch with a next page when every
// entry of the response was filtered. Cursor listings without a server total return no next page
// once the upstream payload comes back empty.
type Batch[T media.Item] struct {
	Items  []T                   `json:"items"`
	Errors media.Issues          `json:"errors"`
	Next   mo.Option[media.Page] `json:"next"`
}

// HasNext reports whether another page should be requested.
func (b *Batch[T]) HasNext() bool {
	return b.Next.IsPresent()
}

// Empty reports a batch without items and without errors.
func (b *Batch[T]) Empty() bool {
	return len(b.Items) == 0 && len(b.Errors) == 0
}

// Last returns a batch with no items and no next page.
func Last[T media.Item]() *Batch[T] {
	return &Batch[T]{
		Items: []T{},
		Next:  mo.None[media.Page](),
	}
}

// Widen converts a typed batch into a batch of items.
func Widen[T media.Item](b *Batch[T]) *Batch[media.Item] {
	items := make([]media.Item, len(b.Items))
	for i, item := range b.Items {
		items[i] = item
	}
	return &Batch[media.Item]{Items: items, Errors: b.Errors, Next: b.Next}
}

type widened[T media.Item] struct {
	ListExtractor[T]
}

func (w widened[T]) InitialPage() (*Batch[media.Item], error) {
	b, err := w.ListExtractor.InitialPage()
	if err != nil {
		return nil, err
	}
	return Widen(b), nil
}

func (w widened[T]) GetPage(page media.Page) (*Batch[media.Item], error) {
	b, err := w.ListExtractor.GetPage(page)
	if err != nil {
		return nil, err
	}
	return Widen(b), nil
}

// Items adapts a typed listing to one yielding media.Item.
func Items[T media.Item](l ListExtractor[T]) ListExtractor[media.Item] {
	if same, ok := any(l).(ListExtractor[media.Item]); ok {
		return same
	}
	return widened[T]{l}
}

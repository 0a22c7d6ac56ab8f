// Package extractor defines the contract every service adapter implements: one-shot page fetching,
// independently failing accessors, item extractors, the collector and continuation-based listings.
package extractor

import "fmt"

type fetchState uint8

const (
	notFetched fetchState = iota
	ready
	failed
)

// Cell holds the payload an extractor fetches once. It moves from not-fetched to ready or failed
// exactly once and never back.
type Cell[T any] struct {
	state fetchState
	value T
	err   error
}

// Load runs fetch on the first call only. Later calls return the outcome of the first one.
func (c *Cell[T]) Load(fetch func() (T, error)) error {
	switch c.state {
	case ready:
		return nil
	case failed:
		return c.err
	}

	value, err := fetch()
	if err != nil {
		c.state, c.err = failed, err
		return err
	}

	c.state, c.value = ready, value
	return nil
}

// Get returns the fetched payload. Calling it before a successful Load is a programming error.
func (c *Cell[T]) Get() T {
	switch c.state {
	case ready:
		return c.value
	case failed:
		panic(fmt.Sprintf("extractor: accessor called after failed fetch: %v", c.err))
	default:
		panic("extractor: accessor called before FetchPage")
	}
}

// Fetched reports whether Load succeeded.
func (c *Cell[T]) Fetched() bool {
	return c.state == ready
}

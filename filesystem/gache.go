// Package filesystem is the single entry point for disk access.
package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache caches (bookmarks, queries, version check) persist through API.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}

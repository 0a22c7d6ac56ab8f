// Package filesystem is the single entry point for disk access.
//
// Everything that touches disk (config, logs, bookmarks, query history, version cache) goes through
// API so tests can swap in an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Touch creates path if it does not exist yet.
func Touch(path string) error {
	exists, err := backend.Exists(path)
	if err != nil || exists {
		return err
	}

	f, err := backend.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}

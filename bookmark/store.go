// Package bookmark persists named continuation pages so a listing can be resumed after a restart.
package bookmark

import (
	"fmt"
	"sort"

	"github.com/mediax-cli/mediax/filesystem"
	"github.com/mediax-cli/mediax/util"
	"github.com/mediax-cli/mediax/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

var cacher = gache.New[map[string]*Bookmark](
	&gache.Options{
		Path:       where.Bookmarks(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved bookmark by name.
func Get() (map[string]*Bookmark, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Bookmark), nil
	}
	return cached, nil
}

// List returns the bookmarks, most recently saved first.
func List() ([]*Bookmark, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	list := lo.Values(saved)
	sort.Slice(list, func(i, j int) bool {
		return list[i].SavedAt.After(list[j].SavedAt)
	})
	return list, nil
}

// Find returns the bookmark called name.
func Find(name string) (*Bookmark, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	b, ok := saved[util.SanitizeFilename(name)]
	if !ok {
		return nil, fmt.Errorf("no bookmark named %q", name)
	}
	return b, nil
}

// Save stores b, replacing any bookmark with the same name. The fetched count accumulates
// when the same listing is saved again.
func Save(b *Bookmark) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if existing, ok := saved[b.Name]; ok && existing.Listing == b.Listing && existing.Target == b.Target && b.Fetched == 0 {
		b.Fetched = existing.Fetched
	}

	saved[b.Name] = b
	return cacher.Set(saved)
}

// Remove deletes the bookmark called name.
func Remove(name string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	name = util.SanitizeFilename(name)
	if _, ok := saved[name]; !ok {
		return fmt.Errorf("no bookmark named %q", name)
	}

	delete(saved, name)
	return cacher.Set(saved)
}

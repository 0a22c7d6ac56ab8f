// Package where resolves the directories and files mediax keeps on disk.
package where

import (
	"os"
	"path/filepath"

	"github.com/mediax-cli/mediax/constant"
	"github.com/mediax-cli/mediax/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "MEDIAX_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory, $XDG_CONFIG_HOME/mediax or the platform equivalent unless
// MEDIAX_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Mediax))
}

// Cache is the cache directory. It falls back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Mediax))
}

func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Bookmarks is the file holding saved continuation pages.
func Bookmarks() string {
	return filepath.Join(Config(), "bookmarks.json")
}

// Queries is the file holding the search history.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Mediax))
}

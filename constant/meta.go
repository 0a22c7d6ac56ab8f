// Package constant holds application-wide identifiers.
package constant

const (
	// Mediax names the binary, the config file, the env prefix and the app directories.
	Mediax = "mediax"

	Version = "0.1.0"

	// UserAgent is sent by the downloader unless network.user_agent overrides it.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, set with -ldflags "-X github.com/mediax-cli/mediax/constant.Revision=...".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

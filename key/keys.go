// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Network - these keys configure the shared downloader handed to every service.
const (
	NetworkUserAgent   = "network.user_agent"
	NetworkTimeout     = "network.timeout"
	NetworkRateLimit   = "network.rate_limit"
	NetworkFingerprint = "network.fingerprint"
)

// PeerTube - the instance the PeerTube service talks to.
const (
	PeerTubeInstance     = "peertube.instance"
	PeerTubeInstanceName = "peertube.instance_name"
)

// Search Interaction - these keys define the parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Rendering - these keys shape the pretty output of infos and listings.
const (
	RenderWrap     = "render.wrap"
	RenderMarkdown = "render.markdown"
)

// Bookmarks
const (
	BookmarksAutoSave = "bookmarks.auto_save"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

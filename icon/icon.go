// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/mediax-cli/mediax/key"
	"github.com/mediax-cli/mediax/media"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every accepted icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Question
	Stream
	Channel
	Playlist
	Comment
	Bookmark
	Next
)

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "+", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "", plain: "x", kaomoji: "(×_×)", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(・_・;)", squares: "🟨"},
	Question: {emoji: "❓", nerd: "", plain: "?", kaomoji: "(・・?)", squares: "🟦"},
	Stream:   {emoji: "🎬", nerd: "", plain: ">", kaomoji: "(▶)", squares: "🟪"},
	Channel:  {emoji: "👤", nerd: "", plain: "@", kaomoji: "(•‿•)", squares: "🟫"},
	Playlist: {emoji: "📃", nerd: "", plain: "#", kaomoji: "(≡)", squares: "⬛"},
	Comment:  {emoji: "💬", nerd: "", plain: "\"", kaomoji: "(・ω・)", squares: "⬜"},
	Bookmark: {emoji: "🔖", nerd: "", plain: "*", kaomoji: "(＊)", squares: "🟧"},
	Next:     {emoji: "➡️", nerd: "", plain: "->", kaomoji: "(→)", squares: "▶"},
}

// Get renders i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}

// ForKind returns the icon of a listing item kind.
func ForKind(k media.Kind) Icon {
	switch k {
	case media.KindChannel:
		return Channel
	case media.KindPlaylist:
		return Playlist
	case media.KindComment:
		return Comment
	default:
		return Stream
	}
}

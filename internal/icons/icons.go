// Package icons holds the glyph sets used to mark tracks.
package icons

// Style is an icon set name, as set by the icons config key.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs of one style.
type Icons struct {
	Favorite string // pinned track
	Artwork  string // track with resolved artwork
	Calendar string // date range prefix, with its trailing space
}

var (
	nerdIcons = Icons{
		Favorite: "󰓎", // nf-md-star
		Artwork:  "󰋩", // nf-md-image
		Calendar: " ", // nf-fa-calendar
	}

	unicodeIcons = Icons{
		Favorite: "★",
		Artwork:  "◆",
		Calendar: "",
	}

	noneIcons = Icons{
		Favorite: "*",
		Artwork:  "+",
		Calendar: "",
	}

	current = unicodeIcons
)

// Init selects the icon set. Empty or unknown styles use unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Favorite returns the favorite marker.
func Favorite() string {
	return current.Favorite
}

// Artwork returns the marker of tracks with known artwork.
func Artwork() string {
	return current.Artwork
}

// FormatRange prefixes a date range with the calendar icon, if the style
// has one.
func FormatRange(r string) string {
	return current.Calendar + r
}

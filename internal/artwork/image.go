// Package artwork picks a cover image for ranked tracks.
package artwork

import "strings"

// Size is a Last.fm image size variant.
type Size string

// Size variants as returned by Last.fm, smallest first.
const (
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extralarge"
	SizeMega       Size = "mega"
)

// PlaceholderHash identifies the star image Last.fm serves when a track has
// no artwork.
const PlaceholderHash = "2a96cbd8b46e442fc41c2b86b821562f"

// Preferred is the order in which size variants are tried.
var Preferred = []Size{SizeExtraLarge, SizeLarge}

// Image is one size variant of an artwork.
type Image struct {
	Size Size
	URL  string
}

// IsPlaceholder reports whether url is the "no artwork" image.
func IsPlaceholder(url string) bool {
	return strings.Contains(url, PlaceholderHash)
}

// Usable reports whether url points to real artwork.
func Usable(url string) bool {
	return url != "" && !IsPlaceholder(url)
}

// Pick returns the URL of the first size in prefs that has a usable image,
// or "" when there is none.
func Pick(images []Image, prefs []Size) string {
	for _, size := range prefs {
		for _, img := range images {
			if img.Size == size && Usable(img.URL) {
				return img.URL
			}
		}
	}
	return ""
}

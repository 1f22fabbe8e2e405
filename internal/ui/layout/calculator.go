// Package layout provides pure functions for screen dimension calculations.
package layout

import "github.com/llehouerou/topplays/internal/ui"

// ShortThreshold is the terminal height below which the favorites strip is
// hidden so the main panel keeps usable rows.
const ShortThreshold = 20

// ContentOpts contains the heights stacked around the main panel.
type ContentOpts struct {
	HeaderHeight    int
	FavoritesHeight int // 0 when the strip is hidden
	StatusHeight    int
}

// ContentHeight returns the height left for the top list or the chart.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.FavoritesHeight
	height -= opts.StatusHeight
	return max(height, 0)
}

// IsShort reports whether the terminal is too short for the favorites strip.
func IsShort(windowHeight int) bool {
	return windowHeight < ShortThreshold
}

// FavoritesHeight returns the strip height, 0 on short terminals.
func FavoritesHeight(windowHeight int) int {
	if IsShort(windowHeight) {
		return 0
	}
	return ui.FavoritesHeight
}

// Main returns the main panel height for a terminal of windowHeight rows.
func Main(windowHeight int) int {
	return ContentHeight(windowHeight, ContentOpts{
		HeaderHeight:    ui.HeaderBarHeight,
		FavoritesHeight: FavoritesHeight(windowHeight),
		StatusHeight:    ui.StatusBarHeight,
	})
}

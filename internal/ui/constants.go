// Package ui holds layout constants and helpers shared by the panels.
package ui

const (
	// ScrollMargin is the number of rows kept visible around the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space of a panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space of a panel border.
	BorderWidth = 2

	// HeaderHeight is a panel title plus its separator.
	HeaderHeight = 2

	// PanelOverhead is subtracted from a panel height to get its list rows.
	PanelOverhead = BorderHeight + HeaderHeight

	// HeaderBarHeight is the range tabs line at the top of the screen.
	HeaderBarHeight = 1

	// StatusBarHeight is the status line at the bottom of the screen.
	StatusBarHeight = 1

	// FavoritesHeight is the favorites strip including its border.
	FavoritesHeight = 3 + BorderHeight

	// MinChartWidth is the narrowest chart that still draws columns.
	MinChartWidth = 20
)

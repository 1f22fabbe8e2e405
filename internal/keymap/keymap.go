package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "ranges", "tracks", "favorites", "history"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionRefresh, []string{"R"}, "Refetch current range", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Ranges
	{ActionRangeWeek, []string{"1"}, "Last 7 days", "ranges"},
	{ActionRangeMonth, []string{"2"}, "Last 30 days", "ranges"},
	{ActionRangeQuarter, []string{"3"}, "Last 90 days", "ranges"},
	{ActionRangeYear, []string{"4"}, "Last 365 days", "ranges"},
	{ActionCustomRange, []string{"/"}, "Custom range", "ranges"},

	// Top tracks list
	{ActionMoveDown, []string{"j", "down"}, "Move down", "tracks"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "tracks"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "tracks"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "tracks"},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", "tracks"},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Half page up", "tracks"},
	{ActionSelect, []string{"enter"}, "Show daily history", "tracks"},
	{ActionToggleFavorite, []string{"f"}, "Toggle favorite", "tracks"},

	// Favorites strip
	{ActionMoveLeft, []string{"h", "left"}, "Previous favorite", "favorites"},
	{ActionMoveRight, []string{"l", "right"}, "Next favorite", "favorites"},
	{ActionRemoveFavorite, []string{"x"}, "Remove favorite", "favorites"},

	// History view
	{ActionBack, []string{"esc"}, "Back to top tracks", "history"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

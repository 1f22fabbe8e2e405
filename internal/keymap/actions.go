// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"
	ActionRefresh     Action = "refresh"

	// Range selection
	ActionRangeWeek    Action = "range_week"
	ActionRangeMonth   Action = "range_month"
	ActionRangeQuarter Action = "range_quarter"
	ActionRangeYear    Action = "range_year"
	ActionCustomRange  Action = "custom_range"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - open the track's history
	ActionBack   Action = "back"   // esc - close the history view

	// Favorites
	ActionToggleFavorite Action = "toggle_favorite" // f
	ActionRemoveFavorite Action = "remove_favorite" // x, favorites strip only
)

// Quick ranges by action, in days before today.
var rangeDays = map[Action]int{
	ActionRangeWeek:    7,
	ActionRangeMonth:   30,
	ActionRangeQuarter: 90,
	ActionRangeYear:    365,
}

// RangeDays returns the length of a quick range action, or false for any
// other action.
func RangeDays(a Action) (int, bool) {
	days, ok := rangeDays[a]
	return days, ok
}

// RangePreset returns the 1-based quick range number of a, or 0.
func RangePreset(a Action) int {
	switch a { //nolint:exhaustive // only quick ranges have a preset
	case ActionRangeWeek:
		return 1
	case ActionRangeMonth:
		return 2
	case ActionRangeQuarter:
		return 3
	case ActionRangeYear:
		return 4
	}
	return 0
}

// PresetAction returns the quick range action of a 1-based preset number.
func PresetAction(preset int) (Action, bool) {
	actions := []Action{ActionRangeWeek, ActionRangeMonth, ActionRangeQuarter, ActionRangeYear}
	if preset < 1 || preset > len(actions) {
		return "", false
	}
	return actions[preset-1], true
}

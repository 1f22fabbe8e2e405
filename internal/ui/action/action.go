// Package action carries actions from UI components up to the app.
package action

// Action is something a component asks the app to do. ActionType names it
// in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that raised it.
type Msg struct {
	Source string // "helpbindings", "rangeinput", ...
	Action Action
}

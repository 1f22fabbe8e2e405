package rangeinput

import (
	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/ui/action"
)

// Submit carries a parsed custom range.
type Submit struct {
	Range history.Range
}

func (Submit) ActionType() string { return "rangeinput.submit" }

// Cancel means the user left without choosing a range.
type Cancel struct{}

func (Cancel) ActionType() string { return "rangeinput.cancel" }

func actionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "rangeinput", Action: a}
}

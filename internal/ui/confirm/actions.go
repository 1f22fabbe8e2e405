package confirm

import (
	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/ui/action"
)

// Result is the user's answer.
type Result struct {
	Confirmed bool
	Track     history.TrackIdentity
}

func (Result) ActionType() string { return "confirm.result" }

func actionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/plays"
)

// LoadMessage is implemented by results of pipeline requests. Each carries
// the generation of the request that produced it.
type LoadMessage interface {
	tea.Msg
	loadMessage()
}

// TopTracksLoadedMsg is the outcome of a top tracks request.
type TopTracksLoadedMsg struct {
	Gen    int
	Result *plays.TopTracks
	Err    error
}

func (TopTracksLoadedMsg) loadMessage() {}

// HistogramLoadedMsg is the outcome of a track history request.
type HistogramLoadedMsg struct {
	Gen    int
	Result *plays.Histogram
	Err    error
}

func (HistogramLoadedMsg) loadMessage() {}

// ArtworkResolvedMsg carries artwork looked up on demand for one track.
type ArtworkResolvedMsg struct {
	Gen int // top tracks generation the track belongs to
	Key history.Key
	URL string
}

func (ArtworkResolvedMsg) loadMessage() {}

// clearErrorMsg hides the status line error it was scheduled for.
type clearErrorMsg struct {
	Gen int
}

// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/popup"
	"github.com/llehouerou/topplays/internal/ui/render"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Model asks the user to confirm an operation on one track.
type Model struct {
	ui.Base
	title   string
	message string
	track   history.TrackIdentity
}

// New creates a confirmation about track.
func New(title, message string, track history.TrackIdentity) Model {
	return Model{title: title, message: message, track: track}
}

// Track returns the track the confirmation is about.
func (m Model) Track() history.TrackIdentity {
	return m.track
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m, m.result(true)
	case "esc", "n", "N", "q":
		return m, m.result(false)
	}
	return m, nil
}

func (m *Model) result(confirmed bool) tea.Cmd {
	r := Result{Confirmed: confirmed, Track: m.track}
	return func() tea.Msg { return actionMsg(r) }
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	width := max(m.Width()/2, 30)
	title := s.Title.Render(m.title)
	message := s.Base.Render(render.Truncate(m.message, width))
	hint := s.Subtle.Render("enter/y confirm · esc/n cancel")

	return title + "\n\n" + message + "\n\n" + hint
}

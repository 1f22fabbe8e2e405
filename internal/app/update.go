package app

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/errmsg"
	"github.com/llehouerou/topplays/internal/ui/action"
	"github.com/llehouerou/topplays/internal/ui/confirm"
	"github.com/llehouerou/topplays/internal/ui/headerbar"
	"github.com/llehouerou/topplays/internal/ui/helpbindings"
	"github.com/llehouerou/topplays/internal/ui/rangeinput"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case LoadMessage:
		return m.handleLoadMessage(msg)

	case clearErrorMsg:
		if msg.Gen == m.errGen {
			m.ErrorMsg = ""
		}
		return m, nil

	case action.Msg:
		return m.handleActionMsg(msg)

	case tea.KeyMsg:
		if m.Popup != nil {
			var cmd tea.Cmd
			m.Popup, cmd = m.Popup.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.Popup != nil {
		var cmd tea.Cmd
		m.Popup, cmd = m.Popup.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLoadMessage(msg LoadMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TopTracksLoadedMsg:
		if msg.Gen != m.topGen {
			m.logger.Debug("dropping stale top tracks", slog.Int("gen", msg.Gen))
			return m, nil
		}
		m.Loading = false
		m.cancelTop = nil
		if msg.Err != nil {
			m.Tracks.SetResult(nil)
			return m, m.showError(errmsg.Format(errmsg.OpTopTracksLoad, msg.Err))
		}
		m.Tracks.SetResult(msg.Result)
		return m, nil

	case HistogramLoadedMsg:
		if msg.Gen != m.histGen {
			m.logger.Debug("dropping stale histogram", slog.Int("gen", msg.Gen))
			return m, nil
		}
		m.LoadingHistory = false
		m.cancelHist = nil
		if msg.Err != nil {
			m.Screen = ScreenTop
			m.applyFocus()
			return m, m.showError(errmsg.Format(errmsg.OpHistoryLoad, msg.Err))
		}
		m.Chart.SetHistogram(msg.Result)
		return m, nil

	case ArtworkResolvedMsg:
		if msg.Gen == m.topGen {
			m.Tracks.SetImage(msg.Key, msg.URL)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleActionMsg(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popup = nil
	case rangeinput.Cancel:
		m.Popup = nil
	case rangeinput.Submit:
		m.Popup = nil
		return m, m.setRange(headerbar.Custom, a.Range)
	case confirm.Result:
		m.Popup = nil
		if a.Confirmed {
			return m.removeFavorite(a.Track)
		}
	}
	return m, nil
}

// startTopTracks cancels any running top tracks request and starts one for
// the current range.
func (m *Model) startTopTracks() tea.Cmd {
	if m.cancelTop != nil {
		m.cancelTop()
	}
	wasBusy := m.busy()

	m.topGen++
	m.Loading = true
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelTop = cancel

	cmd := loadTopTracksCmd(ctx, m.plays, m.Range, m.topGen)
	if wasBusy {
		return cmd
	}
	return tea.Batch(cmd, m.Spinner.Tick)
}

// cancelHistory drops any running track history request.
func (m *Model) cancelHistory() {
	if m.cancelHist != nil {
		m.cancelHist()
		m.cancelHist = nil
	}
	m.histGen++
	m.LoadingHistory = false
}

func (m Model) busy() bool {
	return m.Loading || m.LoadingHistory
}

// showError puts msg in the status line and schedules its removal.
func (m *Model) showError(msg string) tea.Cmd {
	m.logger.Error("ui error", slog.String("message", msg))
	m.errGen++
	m.ErrorMsg = msg
	return clearErrorCmd(m.errGen)
}

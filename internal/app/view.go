package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/headerbar"
	"github.com/llehouerou/topplays/internal/ui/popup"
	"github.com/llehouerou/topplays/internal/ui/render"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

// View renders the screen.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	main := m.Tracks.View()
	if m.Screen == ScreenHistory {
		main = m.historyView()
	}

	parts := []string{headerbar.Render(m.Preset, m.Range, m.Width), main}
	if m.favoritesVisible() {
		parts = append(parts, m.Favorites.View())
	}
	parts = append(parts, m.statusLine())
	base := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.Popup == nil {
		return base
	}
	return popup.Compose(base, popup.RenderBordered("", m.Popup.View(), m.Width, m.Height), m.Width)
}

func (m Model) historyView() string {
	if !m.LoadingHistory && m.Chart.Histogram() != nil {
		return m.Chart.View()
	}
	t := styles.T()
	inner := max(m.Width-ui.BorderWidth, 0)
	lines := []string{t.S().Muted.Render(m.Spinner.View() + " Fetching play history…")}
	for len(lines) < m.mainHeight()-ui.BorderHeight {
		lines = append(lines, "")
	}
	return t.PanelStyle(true).Width(inner).Render(strings.Join(lines, "\n"))
}

func (m Model) statusLine() string {
	s := styles.T().S()

	var left string
	switch {
	case m.ErrorMsg != "":
		left = s.Error.Render(render.Truncate(m.ErrorMsg, max(m.Width-20, 10)))
	case m.Loading:
		left = s.Muted.Render(m.Spinner.View() + " Fetching scrobbles…")
	case m.Screen == ScreenHistory:
		left = s.Subtle.Render("esc back · f favorite")
	default:
		left = s.Subtle.Render("enter history · f favorite · tab focus")
	}
	return render.Row(left, s.Subtle.Render("? help · q quit"), m.Width)
}

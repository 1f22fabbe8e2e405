package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/ui/layout"
	"github.com/llehouerou/topplays/internal/ui/popup"
)

// mainHeight is the height left for the top list or the chart.
func (m Model) mainHeight() int {
	return layout.Main(m.Height)
}

func (m Model) favoritesVisible() bool {
	return !layout.IsShort(m.Height)
}

func (m *Model) resize() {
	h := m.mainHeight()
	m.Tracks.SetSize(m.Width, h)
	m.Chart.SetSize(m.Width, h)
	m.Favorites.SetSize(m.Width, layout.FavoritesHeight(m.Height))
	if !m.favoritesVisible() && m.Focus == FocusFavorites {
		m.Focus = FocusTracks
		m.applyFocus()
	}
	if m.Popup != nil {
		m.Popup.SetSize(m.Width, m.Height)
	}
}

func (m *Model) applyFocus() {
	m.Tracks.SetFocused(m.Screen == ScreenTop && m.Focus == FocusTracks)
	m.Chart.SetFocused(m.Screen == ScreenHistory)
	m.Favorites.SetFocused(m.Screen == ScreenTop && m.Focus == FocusFavorites)
}

func (m *Model) openPopup(p popup.Popup) tea.Cmd {
	p.SetSize(m.Width, m.Height)
	m.Popup = p
	return p.Init()
}

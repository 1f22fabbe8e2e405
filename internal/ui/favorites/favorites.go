// Package favorites renders the strip of pinned tracks.
package favorites

import (
	"strings"
	"time"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/icons"
	"github.com/llehouerou/topplays/internal/keymap"
	"github.com/llehouerou/topplays/internal/state"
	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/cursor"
	"github.com/llehouerou/topplays/internal/ui/render"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

// Model is a horizontal strip of favorite cards.
type Model struct {
	ui.Base
	items  []state.Favorite
	cursor cursor.Cursor
	now    func() time.Time
}

func New() Model {
	return Model{cursor: cursor.New(0), now: time.Now}
}

// SetFavorites replaces the strip content.
func (m *Model) SetFavorites(items []state.Favorite) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
}

func (m Model) Len() int {
	return len(m.items)
}

// Keys returns the identity keys of the pinned tracks.
func (m Model) Keys() map[history.Key]bool {
	keys := make(map[history.Key]bool, len(m.items))
	for _, f := range m.items {
		keys[f.Track.Key()] = true
	}
	return keys
}

// Selected returns the favorite under the cursor.
func (m Model) Selected() (state.Favorite, bool) {
	if m.cursor.Pos() >= len(m.items) {
		return state.Favorite{}, false
	}
	return m.items[m.cursor.Pos()], true
}

// HandleAction moves between cards while focused.
func (m *Model) HandleAction(a keymap.Action) bool {
	if !m.IsFocused() {
		return false
	}
	n := len(m.items)
	return m.cursor.HandleAction(a, n, n)
}

func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()
	inner := m.InnerWidth()

	var lines []string
	if len(m.items) == 0 {
		lines = []string{
			s.Title.Render("Favorites"),
			s.Muted.Render("Press f on a track to pin it"),
			"",
		}
	} else {
		cardWidth := max(inner/len(m.items)-1, 4)
		titles := make([]string, len(m.items))
		artists := make([]string, len(m.items))
		added := make([]string, len(m.items))
		for i, f := range m.items {
			style := s.Base
			if m.IsFocused() && i == m.cursor.Pos() {
				style = s.Cursor
			}
			titles[i] = style.Render(render.TruncateAndPad(icons.Favorite()+" "+f.Track.Track, cardWidth))
			artists[i] = s.Muted.Render(render.TruncateAndPad("  "+f.Track.DisplayArtist(), cardWidth))
			added[i] = s.Subtle.Render(render.TruncateAndPad("  "+render.Ago(f.AddedAt, m.now()), cardWidth))
		}
		lines = []string{
			strings.Join(titles, " "),
			strings.Join(artists, " "),
			strings.Join(added, " "),
		}
	}

	return t.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

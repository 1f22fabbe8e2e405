// Package toplist renders the ranked tracks panel.
package toplist

import (
	"fmt"
	"strings"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/icons"
	"github.com/llehouerou/topplays/internal/plays"
	"github.com/llehouerou/topplays/internal/toptracks"
	"github.com/llehouerou/topplays/internal/ui"
	"github.com/llehouerou/topplays/internal/ui/list"
	"github.com/llehouerou/topplays/internal/ui/render"
	"github.com/llehouerou/topplays/internal/ui/styles"
)

const (
	rankWidth  = 4
	playsWidth = 10
	markWidth  = 4 // star and artwork marker
)

// Model is the top tracks panel.
type Model struct {
	list.Model[toptracks.Aggregate]
	result    *plays.TopTracks
	favorites map[history.Key]bool
}

func New() Model {
	return Model{Model: list.New[toptracks.Aggregate](ui.PanelOverhead)}
}

// SetResult shows a new ranking and moves the cursor back to the top.
func (m *Model) SetResult(res *plays.TopTracks) {
	m.result = res
	if res == nil {
		m.SetItems(nil)
		return
	}
	m.SetItems(res.Ranked)
	m.ResetCursor()
}

// SetImage records artwork resolved after the ranking arrived.
func (m *Model) SetImage(key history.Key, url string) {
	if m.result == nil || url == "" {
		return
	}
	if m.result.Images == nil {
		m.result.Images = make(map[history.Key]string)
	}
	m.result.Images[key] = url
}

// SetFavorites marks which ranked tracks carry a star.
func (m *Model) SetFavorites(keys map[history.Key]bool) {
	m.favorites = keys
}

// Result returns the ranking on screen, nil before the first load.
func (m Model) Result() *plays.TopTracks {
	return m.result
}

// ImageFor returns the artwork known for agg.
func (m Model) ImageFor(agg toptracks.Aggregate) string {
	if m.result == nil {
		return ""
	}
	return m.result.ImageFor(agg)
}

func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()
	inner := m.InnerWidth()

	header := s.Title.Render("Top tracks")
	if m.result != nil {
		header = render.Row(header, s.Muted.Render(render.Count(m.result.Scrobbles)+" scrobbles"), inner)
	}

	lines := []string{header, s.Subtle.Render(render.Separator(inner))}

	if m.Len() == 0 {
		lines = append(lines, s.Muted.Render("No plays in this range"))
	}

	start, end := m.VisibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, inner))
	}

	for len(lines) < m.Height()-ui.BorderHeight {
		lines = append(lines, "")
	}

	return t.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(i, width int) string {
	s := styles.T().S()
	agg := m.Items()[i]

	rank := render.PadLeft(fmt.Sprintf("%d.", i+1), rankWidth-1) + " "
	count := render.PadLeft(render.Plays(agg.Plays), playsWidth)

	mark := "  "
	if m.ImageFor(agg) != "" {
		mark = render.Pad(icons.Artwork(), 1) + " "
	}
	star := "  "
	if m.favorites[agg.Key()] {
		star = s.Favorite.Render(render.Pad(icons.Favorite(), 1) + " ")
	}

	nameWidth := max(width-rankWidth-playsWidth-markWidth-1, 1)
	name := agg.Track.Track + " - " + agg.Track.DisplayArtist()
	name = render.TruncateAndPad(name, nameWidth)

	selected := m.IsFocused() && i == m.SelectedIndex()
	switch {
	case selected:
		return s.Cursor.Render(rank+star+mark+name+" "+count)
	case i == 0:
		return s.Active.Render(rank) + star + s.Muted.Render(mark) + s.Base.Render(name) + " " + s.Muted.Render(count)
	default:
		return s.Muted.Render(rank) + star + s.Muted.Render(mark) + s.Base.Render(name) + " " + s.Muted.Render(count)
	}
}

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/errmsg"
	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/keymap"
	"github.com/llehouerou/topplays/internal/state"
	"github.com/llehouerou/topplays/internal/ui/confirm"
	"github.com/llehouerou/topplays/internal/ui/helpbindings"
	"github.com/llehouerou/topplays/internal/ui/rangeinput"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.Resolve(msg.String())
	if a == "" {
		return m, nil
	}

	if days, ok := keymap.RangeDays(a); ok {
		return m, m.setRange(keymap.RangePreset(a), history.LastDays(days, m.now()))
	}

	switch a { //nolint:exhaustive // navigation falls through to the focused panel
	case keymap.ActionQuit:
		if m.cancelTop != nil {
			m.cancelTop()
		}
		m.cancelHistory()
		return m, tea.Quit

	case keymap.ActionHelp:
		help := helpbindings.New()
		return m, m.openPopup(&help)

	case keymap.ActionCustomRange:
		in := rangeinput.New(m.Range)
		return m, m.openPopup(&in)

	case keymap.ActionRefresh:
		m.Screen = ScreenTop
		m.cancelHistory()
		m.applyFocus()
		return m, m.startTopTracks()

	case keymap.ActionSwitchFocus:
		if m.Screen == ScreenTop && m.favoritesVisible() {
			if m.Focus == FocusTracks {
				m.Focus = FocusFavorites
			} else {
				m.Focus = FocusTracks
			}
			m.applyFocus()
		}
		return m, nil

	case keymap.ActionBack:
		if m.Screen == ScreenHistory {
			m.cancelHistory()
			m.Screen = ScreenTop
			m.applyFocus()
		}
		return m, nil

	case keymap.ActionSelect:
		return m.handleSelect()

	case keymap.ActionToggleFavorite:
		return m.handleToggleFavorite()

	case keymap.ActionRemoveFavorite:
		return m.handleRemoveFavorite()
	}

	if m.Screen == ScreenTop {
		switch m.Focus {
		case FocusTracks:
			m.Tracks.HandleAction(a)
		case FocusFavorites:
			m.Favorites.HandleAction(a)
		}
	}
	return m, nil
}

// setRange switches to r, remembers it and reloads the ranking.
func (m *Model) setRange(preset int, r history.Range) tea.Cmd {
	m.Preset = preset
	m.Range = r
	m.state.SaveRange(state.RangeState{
		Preset: preset,
		Start:  r.Start.Format(history.DayLayout),
		End:    r.End.Format(history.DayLayout),
	})
	m.cancelHistory()
	m.Screen = ScreenTop
	m.applyFocus()
	return m.startTopTracks()
}

func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	if m.Screen != ScreenTop {
		return m, nil
	}

	switch m.Focus {
	case FocusTracks:
		agg, ok := m.Tracks.Selected()
		if !ok {
			return m, nil
		}
		cmd := m.openHistory(agg.Track)
		if m.Tracks.ImageFor(agg) == "" {
			cmd = tea.Batch(cmd, resolveArtworkCmd(context.Background(), m.plays, agg, m.topGen))
		}
		return m, cmd

	case FocusFavorites:
		fav, ok := m.Favorites.Selected()
		if !ok {
			return m, nil
		}
		return m, m.openHistory(fav.Track)
	}
	return m, nil
}

// openHistory shows the history screen and requests id's daily series over
// the current range.
func (m *Model) openHistory(id history.TrackIdentity) tea.Cmd {
	m.cancelHistory()
	wasBusy := m.busy()

	m.Screen = ScreenHistory
	m.LoadingHistory = true
	m.Chart.SetHistogram(nil)
	m.applyFocus()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelHist = cancel
	cmd := loadHistogramCmd(ctx, m.plays, id, m.Range, m.histGen)
	if wasBusy {
		return cmd
	}
	return tea.Batch(cmd, m.Spinner.Tick)
}

func (m Model) handleToggleFavorite() (tea.Model, tea.Cmd) {
	var id history.TrackIdentity
	var image string

	switch {
	case m.Screen == ScreenHistory && m.Chart.Histogram() != nil:
		id = m.Chart.Histogram().Track
		image = m.imageForIdentity(id)
	case m.Screen == ScreenTop && m.Focus == FocusTracks:
		agg, ok := m.Tracks.Selected()
		if !ok {
			return m, nil
		}
		id = agg.Track
		image = m.Tracks.ImageFor(agg)
	default:
		return m, nil
	}

	if _, err := m.state.ToggleFavorite(id, image); err != nil {
		return m, m.showError(errmsg.FormatWith(errmsg.OpFavoriteToggle, id.Track, err))
	}
	return m, m.reloadFavoritesCmd()
}

func (m Model) handleRemoveFavorite() (tea.Model, tea.Cmd) {
	if m.Screen != ScreenTop || m.Focus != FocusFavorites {
		return m, nil
	}
	fav, ok := m.Favorites.Selected()
	if !ok {
		return m, nil
	}
	c := confirm.New("Remove favorite", fav.Track.Track+" by "+fav.Track.DisplayArtist(), fav.Track)
	return m, m.openPopup(&c)
}

func (m Model) removeFavorite(id history.TrackIdentity) (tea.Model, tea.Cmd) {
	if err := m.state.RemoveFavorite(id); err != nil {
		return m, m.showError(errmsg.FormatWith(errmsg.OpFavoriteRemove, id.Track, err))
	}
	return m, m.reloadFavoritesCmd()
}

// imageForIdentity finds artwork for id among the ranked tracks.
func (m Model) imageForIdentity(id history.TrackIdentity) string {
	res := m.Tracks.Result()
	if res == nil {
		return ""
	}
	for _, agg := range res.Ranked {
		if agg.Key() == id.Key() {
			return res.ImageFor(agg)
		}
	}
	return ""
}

// reloadFavorites refreshes the strip and the stars from storage. It
// returns an error message for the status line, or "".
func (m *Model) reloadFavorites() string {
	favs, err := m.state.ListFavorites()
	if err != nil {
		return errmsg.Format(errmsg.OpFavoritesLoad, err)
	}
	m.Favorites.SetFavorites(favs)
	m.Tracks.SetFavorites(m.Favorites.Keys())
	return ""
}

func (m *Model) reloadFavoritesCmd() tea.Cmd {
	if msg := m.reloadFavorites(); msg != "" {
		return m.showError(msg)
	}
	return nil
}

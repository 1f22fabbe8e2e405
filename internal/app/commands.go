package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/toptracks"
)

// errorDisplayTime is how long an error stays in the status line.
const errorDisplayTime = 6 * time.Second

func loadTopTracksCmd(ctx context.Context, p Plays, r history.Range, gen int) tea.Cmd {
	return func() tea.Msg {
		res, err := p.TopTracks(ctx, r)
		return TopTracksLoadedMsg{Gen: gen, Result: res, Err: err}
	}
}

func loadHistogramCmd(ctx context.Context, p Plays, id history.TrackIdentity, r history.Range, gen int) tea.Cmd {
	return func() tea.Msg {
		res, err := p.DailyHistogram(ctx, id, r)
		return HistogramLoadedMsg{Gen: gen, Result: res, Err: err}
	}
}

func resolveArtworkCmd(ctx context.Context, p Plays, agg toptracks.Aggregate, gen int) tea.Cmd {
	return func() tea.Msg {
		return ArtworkResolvedMsg{Gen: gen, Key: agg.Key(), URL: p.Artwork(ctx, agg)}
	}
}

func clearErrorCmd(gen int) tea.Cmd {
	return tea.Tick(errorDisplayTime, func(time.Time) tea.Msg {
		return clearErrorMsg{Gen: gen}
	})
}

package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/lastfm"
	"github.com/llehouerou/topplays/internal/plays"
	"github.com/llehouerou/topplays/internal/state"
	"github.com/llehouerou/topplays/internal/toptracks"
	"github.com/llehouerou/topplays/internal/ui/action"
	"github.com/llehouerou/topplays/internal/ui/headerbar"
	"github.com/llehouerou/topplays/internal/ui/helpbindings"
	"github.com/llehouerou/topplays/internal/ui/rangeinput"
	"github.com/llehouerou/topplays/internal/ui/testutil"
)

var testNow = time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

type fakePlays struct {
	mu         sync.Mutex
	top        *plays.TopTracks
	topErr     error
	hist       *plays.Histogram
	ranges     []history.Range
	histFor    []history.TrackIdentity
	artworkFor []toptracks.Aggregate
}

func (f *fakePlays) TopTracks(_ context.Context, r history.Range) (*plays.TopTracks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ranges = append(f.ranges, r)
	return f.top, f.topErr
}

func (f *fakePlays) DailyHistogram(_ context.Context, id history.TrackIdentity, _ history.Range) (*plays.Histogram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.histFor = append(f.histFor, id)
	return f.hist, nil
}

func (f *fakePlays) Artwork(_ context.Context, agg toptracks.Aggregate) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.artworkFor = append(f.artworkFor, agg)
	return "https://img/" + agg.Track.Track + ".png"
}

func ranked() *plays.TopTracks {
	return &plays.TopTracks{
		Ranked: []toptracks.Aggregate{
			{Track: history.TrackIdentity{Track: "Hit", Artist: "Band"}, Plays: 9},
			{Track: history.TrackIdentity{Track: "Other", Artist: "Band"}, Plays: 4},
		},
		Scrobbles: 13,
	}
}

func newTestModel(t *testing.T) (Model, *fakePlays, *state.Mock) {
	t.Helper()
	fp := &fakePlays{top: ranked()}
	st := state.NewMock()
	m := New(fp, st, Options{Now: func() time.Time { return testNow }})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, TopTracksLoadedMsg{Gen: m.topGen, Result: fp.top})
	return m, fp, st
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return result
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return result, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// collect runs cmd and flattens batches into their messages, skipping
// timers.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNew_DefaultsToLast30Days(t *testing.T) {
	m := New(&fakePlays{}, state.NewMock(), Options{Now: func() time.Time { return testNow }})

	if m.Preset != 2 {
		t.Errorf("Preset = %d, want 2", m.Preset)
	}
	if got := rangeinput.Format(m.Range); got != "2024-05-16 2024-06-15" {
		t.Errorf("Range = %s", got)
	}
	if !m.Loading {
		t.Error("first load should be pending")
	}
}

func TestNew_RestoresSavedRange(t *testing.T) {
	tests := []struct {
		name       string
		saved      state.RangeState
		wantPreset int
		wantRange  string
	}{
		{"quick range recomputed", state.RangeState{Preset: 1, Start: "2020-01-01", End: "2020-01-08"}, 1, "2024-06-08 2024-06-15"},
		{"custom kept", state.RangeState{Preset: headerbar.Custom, Start: "2023-01-01", End: "2023-12-31"}, headerbar.Custom, "2023-01-01 2023-12-31"},
		{"broken custom falls back", state.RangeState{Preset: headerbar.Custom, Start: "junk", End: ""}, 2, "2024-05-16 2024-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := state.NewMock()
			st.SetRange(&tt.saved)

			m := New(&fakePlays{}, st, Options{Now: func() time.Time { return testNow }})
			if m.Preset != tt.wantPreset {
				t.Errorf("Preset = %d, want %d", m.Preset, tt.wantPreset)
			}
			if got := rangeinput.Format(m.Range); got != tt.wantRange {
				t.Errorf("Range = %s, want %s", got, tt.wantRange)
			}
		})
	}
}

func TestInit_LoadsTopTracks(t *testing.T) {
	fp := &fakePlays{top: ranked()}
	m := New(fp, state.NewMock(), Options{Now: func() time.Time { return testNow }})

	var loaded *TopTracksLoadedMsg
	for _, msg := range collect(m.Init()) {
		if l, ok := msg.(TopTracksLoadedMsg); ok {
			loaded = &l
		}
	}
	if loaded == nil {
		t.Fatal("Init did not load top tracks")
	}
	if loaded.Gen != m.topGen || loaded.Result != fp.top {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestTopTracksLoaded_ShowsRanking(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.Loading {
		t.Error("Loading should be cleared")
	}
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "Hit - Band") || !strings.Contains(view, "13 scrobbles") {
		t.Errorf("ranking not rendered:\n%s", view)
	}
}

func TestQuickRange_ReloadsAndSaves(t *testing.T) {
	m, fp, st := newTestModel(t)
	gen := m.topGen

	m, cmd := updateCmd(t, m, keyMsg("1"))

	if m.Preset != 1 || !m.Loading || m.topGen != gen+1 {
		t.Errorf("Preset=%d Loading=%v gen=%d", m.Preset, m.Loading, m.topGen)
	}
	saved, _ := st.GetRange()
	if saved == nil || saved.Preset != 1 || saved.Start != "2024-06-08" || saved.End != "2024-06-15" {
		t.Errorf("saved = %+v", saved)
	}

	collect(cmd)
	if got := fp.ranges[len(fp.ranges)-1]; rangeinput.Format(got) != "2024-06-08 2024-06-15" {
		t.Errorf("requested range = %s", got)
	}
}

func TestStaleTopTracksDropped(t *testing.T) {
	m, _, _ := newTestModel(t)
	stale := m.topGen
	m = update(t, m, keyMsg("3"))

	m = update(t, m, TopTracksLoadedMsg{Gen: stale, Result: &plays.TopTracks{}})

	if !m.Loading {
		t.Error("stale result must not end the current load")
	}
	if m.Tracks.Len() != 2 {
		t.Errorf("stale result replaced the list: %d items", m.Tracks.Len())
	}
}

func TestTopTracksError_ShowsServiceMessage(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, keyMsg("R"))

	m = update(t, m, TopTracksLoadedMsg{Gen: m.topGen, Err: &history.CollectionError{
		Page: 2,
		Err:  &lastfm.ServiceError{Code: lastfm.CodeInvalidParameters, Message: "User not found"},
	}})

	if m.ErrorMsg != "Last.fm error: User not found" {
		t.Errorf("ErrorMsg = %q", m.ErrorMsg)
	}
	if m.Tracks.Len() != 0 {
		t.Error("a failed collection must not leave a ranking on screen")
	}
}

func TestClearError(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, TopTracksLoadedMsg{Gen: m.topGen, Err: errors.New("boom")})
	gen := m.errGen

	m = update(t, m, clearErrorMsg{Gen: gen - 1})
	if m.ErrorMsg == "" {
		t.Fatal("older clear must not hide a newer error")
	}
	m = update(t, m, clearErrorMsg{Gen: gen})
	if m.ErrorMsg != "" {
		t.Errorf("ErrorMsg = %q, want cleared", m.ErrorMsg)
	}
}

func TestSelect_OpensHistoryAndResolvesArtwork(t *testing.T) {
	m, fp, _ := newTestModel(t)
	fp.hist = &plays.Histogram{Track: history.TrackIdentity{Track: "Hit", Artist: "Band"}, Range: m.Range, Matched: true, Total: 9}

	m, cmd := updateCmd(t, m, keyMsg("enter"))
	if m.Screen != ScreenHistory || !m.LoadingHistory {
		t.Fatalf("Screen=%v LoadingHistory=%v", m.Screen, m.LoadingHistory)
	}

	for _, msg := range collect(cmd) {
		if _, ok := msg.(LoadMessage); ok {
			m = update(t, m, msg)
		}
	}

	if len(fp.histFor) != 1 || fp.histFor[0].Track != "Hit" {
		t.Errorf("histogram requested for %+v", fp.histFor)
	}
	if m.LoadingHistory || m.Chart.Histogram() != fp.hist {
		t.Error("histogram not shown")
	}
	if len(fp.artworkFor) != 1 {
		t.Errorf("artwork lookups = %d, want 1", len(fp.artworkFor))
	}
	agg, _ := m.Tracks.Selected()
	if m.Tracks.ImageFor(agg) != "https://img/Hit.png" {
		t.Errorf("image = %q", m.Tracks.ImageFor(agg))
	}

	m = update(t, m, keyMsg("esc"))
	if m.Screen != ScreenTop {
		t.Error("esc should return to the ranking")
	}
}

func TestHistory_StaleResultDropped(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, keyMsg("enter"))
	gen := m.histGen
	m = update(t, m, keyMsg("esc"))

	m = update(t, m, HistogramLoadedMsg{Gen: gen, Result: &plays.Histogram{}})
	if m.Chart.Histogram() != nil {
		t.Error("result of a closed history view was applied")
	}
}

func TestToggleFavorite(t *testing.T) {
	m, _, st := newTestModel(t)

	m = update(t, m, keyMsg("f"))
	favs, _ := st.ListFavorites()
	if len(favs) != 1 || favs[0].Track.Track != "Hit" {
		t.Fatalf("favorites = %+v", favs)
	}
	if m.Favorites.Len() != 1 {
		t.Errorf("strip has %d favorites", m.Favorites.Len())
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "★") {
		t.Error("expected a star in the view")
	}

	m = update(t, m, keyMsg("f"))
	if m.Favorites.Len() != 0 {
		t.Errorf("toggle should unpin, strip has %d", m.Favorites.Len())
	}
}

func TestRemoveFavorite_FromStrip(t *testing.T) {
	m, _, st := newTestModel(t)
	m = update(t, m, keyMsg("f"))
	m = update(t, m, keyMsg("j"))
	m = update(t, m, keyMsg("f"))

	m = update(t, m, keyMsg("x"))
	if m.Favorites.Len() != 2 {
		t.Fatalf("x outside the strip removed a favorite")
	}

	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("x"))
	if m.Popup == nil {
		t.Fatal("x should ask for confirmation")
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "Remove favorite") {
		t.Error("confirmation not rendered")
	}

	// Declining keeps the favorite.
	m, cmd := updateCmd(t, m, keyMsg("n"))
	for _, msg := range collect(cmd) {
		m = update(t, m, msg)
	}
	if m.Popup != nil || m.Favorites.Len() != 2 {
		t.Fatalf("cancel removed a favorite or left the popup open")
	}

	m = update(t, m, keyMsg("x"))
	m, cmd = updateCmd(t, m, keyMsg("y"))
	for _, msg := range collect(cmd) {
		m = update(t, m, msg)
	}
	if m.Popup != nil {
		t.Error("popup should close after confirming")
	}

	favs, _ := st.ListFavorites()
	if len(favs) != 1 || favs[0].Track.Track != "Other" {
		t.Errorf("favorites = %+v, want only Other", favs)
	}
	if m.Favorites.Len() != 1 {
		t.Errorf("strip has %d favorites", m.Favorites.Len())
	}
}

func TestCustomRangePopup(t *testing.T) {
	m, _, st := newTestModel(t)

	m = update(t, m, keyMsg("/"))
	if _, ok := m.Popup.(*rangeinput.Model); !ok {
		t.Fatalf("Popup = %T, want range input", m.Popup)
	}

	// keys go to the popup while it is open
	m = update(t, m, keyMsg("q"))
	if m.Popup == nil {
		t.Fatal("q closed the popup")
	}

	r, err := history.ParseRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatal(err)
	}
	m = update(t, m, action.Msg{Source: "rangeinput", Action: rangeinput.Submit{Range: r}})

	if m.Popup != nil || m.Preset != headerbar.Custom || !m.Range.Equal(r) || !m.Loading {
		t.Errorf("Popup=%v Preset=%d Range=%s Loading=%v", m.Popup, m.Preset, m.Range, m.Loading)
	}
	if saved, _ := st.GetRange(); saved.Preset != headerbar.Custom || saved.Start != "2024-01-01" {
		t.Errorf("saved = %+v", saved)
	}
}

func TestHelpPopup(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, keyMsg("?"))
	if _, ok := m.Popup.(*helpbindings.Model); !ok {
		t.Fatalf("Popup = %T, want help", m.Popup)
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "Key Bindings") {
		t.Error("help popup not drawn")
	}

	m = update(t, m, action.Msg{Source: "helpbindings", Action: helpbindings.Close{}})
	if m.Popup != nil {
		t.Error("help popup still open")
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := updateCmd(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestShortTerminal_HidesFavorites(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, keyMsg("f"))
	m = update(t, m, keyMsg("tab"))
	if m.Focus != FocusFavorites {
		t.Fatal("tab should focus the strip")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 12})
	if m.Focus != FocusTracks {
		t.Error("hiding the strip should move focus back to the tracks")
	}
	m = update(t, m, keyMsg("tab"))
	if m.Focus != FocusTracks {
		t.Error("tab should not focus a hidden strip")
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, want 12", lines)
	}
}

// Package app is the bubbletea model of the topplays terminal UI.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/keymap"
	"github.com/llehouerou/topplays/internal/plays"
	"github.com/llehouerou/topplays/internal/state"
	"github.com/llehouerou/topplays/internal/toptracks"
	"github.com/llehouerou/topplays/internal/ui/chart"
	"github.com/llehouerou/topplays/internal/ui/favorites"
	"github.com/llehouerou/topplays/internal/ui/headerbar"
	"github.com/llehouerou/topplays/internal/ui/popup"
	"github.com/llehouerou/topplays/internal/ui/styles"
	"github.com/llehouerou/topplays/internal/ui/toplist"
)

// Plays is the pipeline the UI reads from. *plays.Service implements it.
type Plays interface {
	TopTracks(ctx context.Context, r history.Range) (*plays.TopTracks, error)
	DailyHistogram(ctx context.Context, id history.TrackIdentity, r history.Range) (*plays.Histogram, error)
	Artwork(ctx context.Context, agg toptracks.Aggregate) string
}

var _ Plays = (*plays.Service)(nil)

// Focus is the panel receiving navigation keys.
type Focus int

const (
	FocusTracks Focus = iota
	FocusFavorites
)

// Screen is the main area content.
type Screen int

const (
	ScreenTop Screen = iota
	ScreenHistory
)

// defaultPreset is used on first run: the last 30 days.
const defaultPreset = 2

// Options configures a Model.
type Options struct {
	Now    func() time.Time
	Logger *slog.Logger
}

// Model is the root TUI model.
type Model struct {
	plays  Plays
	state  state.Interface
	keys   *keymap.Resolver
	logger *slog.Logger
	now    func() time.Time

	Width, Height int
	Focus         Focus
	Screen        Screen

	Preset int // 1-4, or headerbar.Custom
	Range  history.Range

	Tracks    toplist.Model
	Chart     chart.Model
	Favorites favorites.Model
	Popup     popup.Popup // nil when no popup is open

	Spinner        spinner.Model
	Loading        bool
	LoadingHistory bool
	ErrorMsg       string

	// Generations tag requests so results of superseded ones are dropped.
	topGen     int
	histGen    int
	errGen     int
	cancelTop  context.CancelFunc
	cancelHist context.CancelFunc

	initCmd tea.Cmd
}

// New creates the model, restores the last range and queues the first
// load. Init starts it.
func New(p Plays, st state.Interface, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Active

	m := Model{
		plays:     p,
		state:     st,
		keys:      keymap.Default(),
		logger:    logger,
		now:       now,
		Tracks:    toplist.New(),
		Chart:     chart.New(),
		Favorites: favorites.New(),
		Spinner:   sp,
	}
	m.Preset, m.Range = restoreRange(st, now(), logger)
	m.ErrorMsg = m.reloadFavorites()
	m.applyFocus()
	m.initCmd = m.startTopTracks()
	return m
}

// Init starts the first top tracks load.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// restoreRange returns the saved range, recomputing quick ranges against
// now, or the default when nothing usable was saved.
func restoreRange(st state.Interface, now time.Time, logger *slog.Logger) (int, history.Range) {
	saved, err := st.GetRange()
	if err != nil {
		logger.Warn("reading saved range failed", slog.String("error", err.Error()))
	}
	if saved != nil {
		if a, ok := keymap.PresetAction(saved.Preset); ok {
			days, _ := keymap.RangeDays(a)
			return saved.Preset, history.LastDays(days, now)
		}
		if saved.Preset == headerbar.Custom {
			if r, err := history.ParseRange(saved.Start, saved.End); err == nil {
				return headerbar.Custom, r
			}
		}
	}
	a, _ := keymap.PresetAction(defaultPreset)
	days, _ := keymap.RangeDays(a)
	return defaultPreset, history.LastDays(days, now)
}

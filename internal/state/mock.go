package state

import (
	"time"

	"github.com/llehouerou/topplays/internal/history"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	rangeState *RangeState
	favorites  []Favorite
	max        int
	nextID     int64
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{max: DefaultMaxFavorites}
}

func (m *Mock) GetRange() (*RangeState, error) {
	return m.rangeState, nil
}

func (m *Mock) SaveRange(state RangeState) {
	m.rangeState = &state
}

func (m *Mock) ListFavorites() ([]Favorite, error) {
	return append([]Favorite(nil), m.favorites...), nil
}

func (m *Mock) IsFavorite(id history.TrackIdentity) (bool, error) {
	return m.index(id) >= 0, nil
}

func (m *Mock) ToggleFavorite(id history.TrackIdentity, imageURL string) (bool, error) {
	if i := m.index(id); i >= 0 {
		m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
		return false, nil
	}
	if len(m.favorites) >= m.max {
		m.favorites = m.favorites[len(m.favorites)-m.max+1:]
	}
	m.nextID++
	m.favorites = append(m.favorites, Favorite{ID: m.nextID, Track: id, ImageURL: imageURL, AddedAt: time.Now()})
	return true, nil
}

func (m *Mock) RemoveFavorite(id history.TrackIdentity) error {
	if i := m.index(id); i >= 0 {
		m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
	}
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

func (m *Mock) index(id history.TrackIdentity) int {
	for i, f := range m.favorites {
		if f.Track.Matches(id) {
			return i
		}
	}
	return -1
}

// Test helpers

func (m *Mock) SetRange(state *RangeState) { m.rangeState = state }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

package state

import (
	"github.com/llehouerou/topplays/internal/history"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetRange() (*RangeState, error)
	SaveRange(state RangeState)
	ListFavorites() ([]Favorite, error)
	IsFavorite(id history.TrackIdentity) (bool, error)
	ToggleFavorite(id history.TrackIdentity, imageURL string) (bool, error)
	RemoveFavorite(id history.TrackIdentity) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

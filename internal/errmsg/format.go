// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/lastfm"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// History operations
	OpTopTracksLoad Op = "load top tracks"
	OpHistoryLoad   Op = "load track history"

	// Range input
	OpRangeParse Op = "parse date range"

	// Favorites
	OpFavoriteToggle Op = "update favorites"
	OpFavoriteRemove Op = "remove favorite"
	OpFavoritesLoad  Op = "load favorites"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message. Errors reported by Last.fm
// itself are shown with the service's own message, an inverted range on its
// own.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	if svcErr, ok := lastfm.IsServiceError(err); ok {
		return "Last.fm error: " + svcErr.Message
	}
	if errors.Is(err, history.ErrInvalidRange) {
		return "Invalid date range: " + history.ErrInvalidRange.Error()
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if _, ok := lastfm.IsServiceError(err); ok || context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

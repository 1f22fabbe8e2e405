// Package toptracks counts plays per track and ranks the result.
package toptracks

import (
	"sort"

	"github.com/llehouerou/topplays/internal/history"
)

// DefaultLimit is the length of a ranked list.
const DefaultLimit = 50

// Aggregate is the play count of one track.
type Aggregate struct {
	Track    history.TrackIdentity // spelling of the first play seen
	Plays    int
	ImageURL string // embedded artwork of the first play seen
}

// Key returns the aggregate's grouping key.
func (a Aggregate) Key() history.Key {
	return a.Track.Key()
}

// Count groups timestamped events by track. The result is in order of
// each track's first occurrence in events. Now-playing events are skipped.
func Count(events []history.PlayEvent) []Aggregate {
	var result []Aggregate
	index := make(map[history.Key]int)

	for i := range events {
		e := &events[i]
		if e.NowPlaying() {
			continue
		}

		id := e.Identity()
		key := id.Key()
		if pos, ok := index[key]; ok {
			result[pos].Plays++
			continue
		}

		index[key] = len(result)
		result = append(result, Aggregate{
			Track:    id,
			Plays:    1,
			ImageURL: e.ImageURL,
		})
	}

	return result
}

// Rank sorts aggregates by play count, highest first, keeping input order
// among equal counts, and keeps at most limit entries. The input slice is not
// modified.
func Rank(aggs []Aggregate, limit int) []Aggregate {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]Aggregate, len(aggs))
	copy(ranked, aggs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Plays > ranked[j].Plays
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Total returns the sum of play counts.
func Total(aggs []Aggregate) int {
	n := 0
	for _, a := range aggs {
		n += a.Plays
	}
	return n
}

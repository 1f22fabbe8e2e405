// Package histogram builds a per-day play count series for one track.
package histogram

import (
	"time"

	"github.com/llehouerou/topplays/internal/history"
)

// Bucket is the play count of one UTC day.
type Bucket struct {
	Date  time.Time // UTC midnight
	Plays int
}

// Day returns the bucket's date as YYYY-MM-DD.
func (b Bucket) Day() string {
	return b.Date.Format(history.DayLayout)
}

// Build counts the timestamped plays of target per UTC day and returns one
// bucket per day of r, in ascending order, with zero buckets for days
// without plays. Tracks match case-insensitively on title and artist.
//
// matched is false when no event matches target at all; buckets is nil in
// that case so callers can tell "never played" from "no plays in range".
func Build(events []history.PlayEvent, target history.TrackIdentity, r history.Range) (buckets []Bucket, matched bool) {
	key := target.Key()
	counts := make(map[string]int)

	for i := range events {
		e := &events[i]
		if e.NowPlaying() || e.Identity().Key() != key {
			continue
		}
		matched = true
		counts[e.PlayedAt.UTC().Format(history.DayLayout)]++
	}

	if !matched {
		return nil, false
	}

	days := r.Days()
	buckets = make([]Bucket, 0, max(days, 0))
	for i := range days {
		day := r.Start.AddDate(0, 0, i)
		buckets = append(buckets, Bucket{
			Date:  day,
			Plays: counts[day.Format(history.DayLayout)],
		})
	}

	return buckets, true
}

// Total returns the sum of plays across buckets.
func Total(buckets []Bucket) int {
	n := 0
	for _, b := range buckets {
		n += b.Plays
	}
	return n
}

// Peak returns the highest single-day count.
func Peak(buckets []Bucket) int {
	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Plays)
	}
	return peak
}

// Package history fetches a user's raw listening history for a date range.
package history

import (
	"time"

	"golang.org/x/text/cases"
)

// UnknownArtist is shown in place of an empty artist name.
const UnknownArtist = "Unknown Artist"

// TrackIdentity names a track by title and artist as returned by Last.fm.
type TrackIdentity struct {
	Track  string
	Artist string
}

// Key is the grouping key for a TrackIdentity. Both fields are case-folded,
// so "Song" by "ARTIST" and "song" by "artist" share a key.
type Key struct {
	Track  string
	Artist string
}

// Key returns the case-folded grouping key.
func (id TrackIdentity) Key() Key {
	return Key{
		Track:  cases.Fold().String(id.Track),
		Artist: cases.Fold().String(id.Artist),
	}
}

// Matches reports whether both identities share a key.
func (id TrackIdentity) Matches(other TrackIdentity) bool {
	return id.Key() == other.Key()
}

// DisplayArtist returns the artist name, or UnknownArtist when it is empty.
func (id TrackIdentity) DisplayArtist() string {
	if id.Artist == "" {
		return UnknownArtist
	}
	return id.Artist
}

// PlayEvent is one scrobble.
type PlayEvent struct {
	Track    string
	Artist   string
	PlayedAt time.Time // zero for a now-playing entry
	ImageURL string    // embedded artwork, may be empty
}

// Identity returns the event's track identity.
func (e PlayEvent) Identity() TrackIdentity {
	return TrackIdentity{Track: e.Track, Artist: e.Artist}
}

// NowPlaying reports whether the event is still in progress. Such events
// carry no timestamp and never count as a play.
func (e PlayEvent) NowPlaying() bool {
	return e.PlayedAt.IsZero()
}

// Page is one page of recent tracks.
type Page struct {
	Events     []PlayEvent
	TotalPages int
}

package lastfm

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/topplays/internal/artwork"
	"github.com/llehouerou/topplays/internal/history"
)

// recentTracksResponse is the JSON body of user.getrecenttracks.
type recentTracksResponse struct {
	RecentTracks json.RawMessage `json:"recenttracks"`
}

type recentTracks struct {
	Tracks trackList `json:"track"`
	Attr   struct {
		TotalPages looseInt `json:"totalPages"`
	} `json:"@attr"`
}

type recentTrack struct {
	Name   string      `json:"name"`
	Artist looseArtist `json:"artist"`
	Image  []struct {
		Size string `json:"size"`
		URL  string `json:"#text"`
	} `json:"image"`
	Date *struct {
		UTS looseInt `json:"uts"`
	} `json:"date"`
	Attr *struct {
		NowPlaying string `json:"nowplaying"`
	} `json:"@attr"`
}

// parseRecentTracks decodes one page. A body that is not JSON is a
// ParseError. A JSON body without a usable recenttracks object yields an
// empty page claiming a single page in total.
func parseRecentTracks(body []byte) (history.Page, error) {
	var resp recentTracksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return history.Page{}, &ParseError{Err: err}
	}

	var rt recentTracks
	if len(resp.RecentTracks) == 0 || json.Unmarshal(resp.RecentTracks, &rt) != nil {
		return history.Page{TotalPages: 1}, nil
	}

	events := make([]history.PlayEvent, 0, len(rt.Tracks))
	for i := range rt.Tracks {
		events = append(events, rt.Tracks[i].toEvent())
	}

	return history.Page{
		Events:     events,
		TotalPages: max(int(rt.Attr.TotalPages), 1),
	}, nil
}

func (t *recentTrack) toEvent() history.PlayEvent {
	images := make([]artwork.Image, 0, len(t.Image))
	for _, img := range t.Image {
		images = append(images, artwork.Image{Size: artwork.Size(img.Size), URL: img.URL})
	}

	e := history.PlayEvent{
		Track:    t.Name,
		Artist:   string(t.Artist),
		ImageURL: artwork.Pick(images, artwork.Preferred),
	}

	nowPlaying := t.Attr != nil && strings.EqualFold(t.Attr.NowPlaying, "true")
	if !nowPlaying && t.Date != nil && t.Date.UTS > 0 {
		e.PlayedAt = time.Unix(int64(t.Date.UTS), 0).UTC()
	}
	return e
}

// trackList accepts either an array of tracks or a single track object,
// which Last.fm sends when a page holds exactly one entry.
type trackList []recentTrack

func (l *trackList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case len(data) > 0 && data[0] == '{':
		var single recentTrack
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*l = trackList{single}
		return nil
	default:
		var many []recentTrack
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*l = many
		return nil
	}
}

// looseArtist accepts a bare string, {"#text": ...} (the default shape) or
// {"name": ...} (the extended shape). Anything else decodes as "".
type looseArtist string

func (a *looseArtist) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = looseArtist(s)
		return nil
	}

	var obj struct {
		Text string `json:"#text"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.Text != "" {
			*a = looseArtist(obj.Text)
		} else {
			*a = looseArtist(obj.Name)
		}
		return nil
	}

	*a = ""
	return nil
}

// looseInt accepts a JSON number or a numeric string. Anything else decodes
// as 0.
type looseInt int64

func (n *looseInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*n = 0
		return nil //nolint:nilerr // malformed counts default to zero
	}
	*n = looseInt(v)
	return nil
}

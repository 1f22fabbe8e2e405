// Package plays wires history collection, ranking, artwork resolution and
// histograms into the operations the interfaces call.
package plays

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/llehouerou/topplays/internal/artwork"
	"github.com/llehouerou/topplays/internal/histogram"
	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/toptracks"
)

// Options configures a Service.
type Options struct {
	TopLimit     int // ranked list length, defaults to toptracks.DefaultLimit
	ArtworkCount int // ranked entries resolved up front, defaults to artwork.DefaultHead
	Logger       *slog.Logger
}

// Service runs the top tracks and histogram pipelines against one history
// source.
type Service struct {
	fetcher  history.PageFetcher
	resolver *artwork.Resolver
	topLimit int
	logger   *slog.Logger

	mu        sync.Mutex
	lastRange history.Range
	hasRange  bool
}

// New creates a service reading history from fetcher and artwork from
// lookup.
func New(fetcher history.PageFetcher, lookup artwork.Lookup, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	topLimit := opts.TopLimit
	if topLimit <= 0 {
		topLimit = toptracks.DefaultLimit
	}

	return &Service{
		fetcher:  fetcher,
		resolver: artwork.NewResolver(lookup, artwork.NewCache(), opts.ArtworkCount, logger),
		topLimit: topLimit,
		logger:   logger,
	}
}

// TopTracks is the outcome of a top tracks query.
type TopTracks struct {
	Range     history.Range
	Ranked    []toptracks.Aggregate
	Images    artwork.Images
	Scrobbles int // timestamped plays in the range, ranked or not
}

// ImageFor returns the artwork of agg: the resolved URL when the head
// resolution produced one, else the aggregate's own embedded image.
func (t *TopTracks) ImageFor(agg toptracks.Aggregate) string {
	if url := t.Images[agg.Key()]; url != "" {
		return url
	}
	if artwork.Usable(agg.ImageURL) {
		return agg.ImageURL
	}
	return ""
}

// TopTracks collects the range, ranks its tracks and resolves artwork for
// the head of the ranking. A different range than the previous call starts a
// new artwork session.
func (s *Service) TopTracks(ctx context.Context, r history.Range) (*TopTracks, error) {
	start := time.Now()
	s.logger.Info("fetching top tracks", slog.String("range", r.String()))

	s.beginSession(r)

	events, err := history.Collect(ctx, s.fetcher, r)
	if err != nil {
		s.logger.Error("top tracks failed",
			slog.String("range", r.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	aggs := toptracks.Count(events)
	ranked := toptracks.Rank(aggs, s.topLimit)
	images := s.resolver.Resolve(ctx, ranked)

	result := &TopTracks{
		Range:     r,
		Ranked:    ranked,
		Images:    images,
		Scrobbles: toptracks.Total(aggs),
	}

	s.logger.Info("top tracks ready",
		slog.String("range", r.String()),
		slog.Int("events", len(events)),
		slog.Int("distinct", len(aggs)),
		slog.Int("ranked", len(ranked)),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

// Histogram is the daily play series of one track.
type Histogram struct {
	Track   history.TrackIdentity
	Range   history.Range
	Buckets []histogram.Bucket
	Matched bool // false when the track was never played in the range
	Total   int
}

// DailyHistogram collects the range and builds the daily series of id.
func (s *Service) DailyHistogram(ctx context.Context, id history.TrackIdentity, r history.Range) (*Histogram, error) {
	start := time.Now()
	s.logger.Info("fetching track history",
		slog.String("track", id.Track),
		slog.String("artist", id.Artist),
		slog.String("range", r.String()))

	events, err := history.Collect(ctx, s.fetcher, r)
	if err != nil {
		s.logger.Error("track history failed",
			slog.String("track", id.Track),
			slog.String("error", err.Error()))
		return nil, err
	}

	buckets, matched := histogram.Build(events, id, r)
	result := &Histogram{
		Track:   id,
		Range:   r,
		Buckets: buckets,
		Matched: matched,
		Total:   histogram.Total(buckets),
	}

	s.logger.Info("track history ready",
		slog.String("track", id.Track),
		slog.Int("events", len(events)),
		slog.Bool("matched", matched),
		slog.Int("plays", result.Total),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

// Artwork resolves the artwork of a single ranked track through the
// session cache.
func (s *Service) Artwork(ctx context.Context, agg toptracks.Aggregate) string {
	return s.resolver.ResolveOne(ctx, agg)
}

// beginSession resets the artwork cache when r differs from the previous
// top tracks range.
func (s *Service) beginSession(r history.Range) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasRange && s.lastRange.Equal(r) {
		return
	}
	if s.hasRange {
		s.logger.Debug("range changed, clearing artwork cache",
			slog.String("from", s.lastRange.String()),
			slog.String("to", r.String()))
	}
	s.resolver.Reset()
	s.lastRange = r
	s.hasRange = true
}

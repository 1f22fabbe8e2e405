package artwork

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/topplays/internal/history"
	"github.com/llehouerou/topplays/internal/toptracks"
)

// DefaultHead is how many ranked tracks get artwork resolved up front.
const DefaultHead = 20

// Lookup fetches the artwork variants of a track.
type Lookup interface {
	TrackImages(ctx context.Context, id history.TrackIdentity) ([]Image, error)
}

// Images maps a track key to its artwork URL. An empty URL means none was
// found.
type Images map[history.Key]string

// Resolver resolves artwork for ranked tracks through a Cache.
type Resolver struct {
	lookup Lookup
	cache  *Cache
	head   int
	logger *slog.Logger
}

// NewResolver creates a resolver. A head of zero or less uses DefaultHead.
func NewResolver(lookup Lookup, cache *Cache, head int, logger *slog.Logger) *Resolver {
	if head <= 0 {
		head = DefaultHead
	}
	if cache == nil {
		cache = NewCache()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		lookup: lookup,
		cache:  cache,
		head:   head,
		logger: logger,
	}
}

// Reset forgets every resolved image.
func (r *Resolver) Reset() {
	r.cache.Reset()
}

// Resolve resolves the first head entries of ranked concurrently and waits
// for all of them. A failed lookup yields an empty URL for that track only.
func (r *Resolver) Resolve(ctx context.Context, ranked []toptracks.Aggregate) Images {
	head := ranked[:min(len(ranked), r.head)]
	images := make(Images, len(head))

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for _, agg := range head {
		g.Go(func() error {
			url := r.resolve(ctx, agg)
			mu.Lock()
			images[agg.Key()] = url
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // tasks never return errors

	return images
}

// ResolveOne resolves a single track, reusing any cached outcome.
func (r *Resolver) ResolveOne(ctx context.Context, agg toptracks.Aggregate) string {
	return r.resolve(ctx, agg)
}

func (r *Resolver) resolve(ctx context.Context, agg toptracks.Aggregate) string {
	key := agg.Key()
	if url, ok := r.cache.Get(key); ok {
		return url
	}

	if Usable(agg.ImageURL) {
		return r.cache.Put(key, agg.ImageURL)
	}

	images, err := r.lookup.TrackImages(ctx, agg.Track)
	if err != nil {
		r.logger.Warn("artwork lookup failed",
			slog.String("track", agg.Track.Track),
			slog.String("artist", agg.Track.Artist),
			slog.String("error", err.Error()))
		if ctx.Err() != nil {
			// Cancelled: leave the key unattempted so a later call retries.
			return ""
		}
		return r.cache.Put(key, "")
	}

	return r.cache.Put(key, Pick(images, Preferred))
}

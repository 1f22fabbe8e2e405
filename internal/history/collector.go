package history

import (
	"context"
	"fmt"
)

// PageSize is the number of events requested per page.
const PageSize = 200

// PageFetcher retrieves one 1-based page of recent tracks for a range.
type PageFetcher interface {
	RecentTracks(ctx context.Context, r Range, page int) (Page, error)
}

// CollectionError reports the page whose fetch aborted a collection.
type CollectionError struct {
	Page int
	Err  error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collect recent tracks: page %d: %v", e.Page, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// Pager walks the pages of a range in order. The total page count is taken
// from the first page and not re-read afterwards.
//
//	p := history.NewPager(fetcher, r)
//	for p.Next(ctx) {
//		use(p.Events())
//	}
//	if err := p.Err(); err != nil { ... }
type Pager struct {
	fetcher    PageFetcher
	rng        Range
	page       int // last fetched page
	totalPages int // 0 until the first page arrives
	events     []PlayEvent
	err        error
}

// NewPager returns a pager positioned before page 1.
func NewPager(fetcher PageFetcher, r Range) *Pager {
	return &Pager{fetcher: fetcher, rng: r}
}

// Next fetches the next page. It returns false when every page has been
// read or a fetch failed.
func (p *Pager) Next(ctx context.Context) bool {
	if p.err != nil {
		return false
	}
	if p.totalPages > 0 && p.page >= p.totalPages {
		return false
	}

	next := p.page + 1
	res, err := p.fetcher.RecentTracks(ctx, p.rng, next)
	if err != nil {
		p.err = &CollectionError{Page: next, Err: err}
		p.events = nil
		return false
	}

	p.page = next
	if p.totalPages == 0 {
		p.totalPages = max(res.TotalPages, 1)
	}
	p.events = res.Events
	return true
}

// Events returns the events of the current page.
func (p *Pager) Events() []PlayEvent {
	return p.events
}

// Page returns the number of the current page.
func (p *Pager) Page() int {
	return p.page
}

// TotalPages returns the page count reported by the first page, or 0 before
// it was fetched.
func (p *Pager) TotalPages() int {
	return p.totalPages
}

// Err returns the error that stopped the pager, if any.
func (p *Pager) Err() error {
	return p.err
}

// Collect fetches every page of the range and returns the events in the
// order the pages were received. On error nothing is returned.
func Collect(ctx context.Context, fetcher PageFetcher, r Range) ([]PlayEvent, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var events []PlayEvent
	p := NewPager(fetcher, r)
	for p.Next(ctx) {
		events = append(events, p.Events()...)
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

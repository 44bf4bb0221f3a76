package skylift

import (
	"context"
	"fmt"
	"time"
)

// PageFunc fetches one page of a paginated collection. Implementations are
// usually thin closures over a typed List method, for example:
//
//	fetch := func(ctx context.Context, page int) ([]skylift.Server, *skylift.Pagination, error) {
//	    list, err := client.Servers().List(ctx, &skylift.ServerListParams{
//	        ListParams: skylift.ListParams{Page: page},
//	    })
//	    if err != nil {
//	        return nil, nil, err
//	    }
//	    return list.Servers, list.Meta.Pagination, nil
//	}
type PageFunc[T any] func(ctx context.Context, page int) ([]T, *Pagination, error)

// PageOptions controls how a paginated collection is walked.
// The zero value starts at the first page, follows next_page links until the
// server reports no further page, and fetches back to back without delay.
type PageOptions struct {
	// StartPage is the first page to request. Values below 1 mean page 1.
	StartPage int
	// MaxPages caps how many pages are fetched. Zero means no cap.
	MaxPages int
	// PageDelay is the pause between consecutive page fetches. The first
	// fetch is never delayed. Zero means no pause.
	PageDelay time.Duration
}

// PageIterator walks a paginated collection one page at a time. Pages are
// fetched lazily: no request is issued until Next is called, and iteration
// follows the server's next_page marker rather than guessing page counts.
type PageIterator[T any] struct {
	fetch    PageFunc[T]
	page     int
	fetched  int
	maxPages int
	delay    time.Duration
	done     bool
}

// NewPageIterator creates an iterator over the collection served by fetch.
// A nil opts uses the PageOptions zero value.
func NewPageIterator[T any](fetch PageFunc[T], opts *PageOptions) *PageIterator[T] {
	if opts == nil {
		opts = &PageOptions{}
	}

	startPage := opts.StartPage
	if startPage < 1 {
		startPage = 1
	}

	return &PageIterator[T]{
		fetch:    fetch,
		page:     startPage,
		maxPages: opts.MaxPages,
		delay:    opts.PageDelay,
	}
}

// HasNext reports whether another page can be fetched. It is true before the
// first fetch even for collections that turn out to be empty; only a fetched
// page with no next_page marker, or reaching MaxPages, ends iteration.
func (it *PageIterator[T]) HasNext() bool {
	return !it.done
}

// Next fetches the next page and returns its items. An empty slice with a nil
// error is a valid page. After the last page has been consumed, Next returns
// ErrNoMoreItems.
func (it *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if it.fetch == nil {
		return nil, ErrNilPageFunc
	}

	if it.done {
		return nil, ErrNoMoreItems
	}

	if it.fetched > 0 && it.delay > 0 {
		if err := sleepContext(ctx, it.delay); err != nil {
			return nil, err
		}
	}

	items, pagination, err := it.fetch(ctx, it.page)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", it.page, err)
	}

	it.fetched++

	switch {
	case pagination == nil || pagination.NextPage == nil:
		it.done = true
	case it.maxPages > 0 && it.fetched >= it.maxPages:
		it.done = true
	default:
		it.page = *pagination.NextPage
	}

	return items, nil
}

// All eagerly fetches every remaining page and returns the concatenated
// items in server order.
func (it *PageIterator[T]) All(ctx context.Context) ([]T, error) {
	var all []T

	for it.HasNext() {
		items, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)
	}

	return all, nil
}

// ForEach applies fn to every remaining item across all pages, fetching
// pages as needed. Iteration stops at the first error from fn or from a
// page fetch.
func (it *PageIterator[T]) ForEach(ctx context.Context, fn func(item T) error) error {
	for it.HasNext() {
		items, err := it.Next(ctx)
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := fn(item); err != nil {
				return err
			}
		}
	}

	return nil
}

// CollectPages fetches every page served by fetch and returns the
// concatenated items. It is shorthand for NewPageIterator(fetch, opts).All(ctx).
func CollectPages[T any](ctx context.Context, fetch PageFunc[T], opts *PageOptions) ([]T, error) {
	return NewPageIterator(fetch, opts).All(ctx)
}

// PageResult carries one page of a streamed listing. Err is non-nil when the
// page fetch failed, in which case Items is nil and the stream ends.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages in a background goroutine and delivers them on
// the returned channel. The channel is closed after the last page, after a
// fetch error, or when ctx is cancelled.
func StreamPages[T any](ctx context.Context, fetch PageFunc[T], opts *PageOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		iterator := NewPageIterator(fetch, opts)
		for iterator.HasNext() {
			items, err := iterator.Next(ctx)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: items}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}

// sleepContext pauses for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting between pages: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

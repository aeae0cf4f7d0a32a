package paged

import "context"

// LoadResult describes the outcome of one settled load attempt.
type LoadResult[T any] struct {
	// Items are the items this attempt appended. Nil when the attempt failed.
	Items []T

	// OldLength is the collection length snapshotted before the attempt.
	OldLength int

	// NewLength is the collection length after the attempt settled.
	NewLength int

	// FirstQuery reports whether this was the first successful load
	// following a refresh and it yielded at least one item.
	FirstQuery bool

	// Err carries the query error when the attempt failed, uninterpreted.
	// The future still settles normally in that case; see Failed.
	Err error
}

// Failed reports whether the attempt failed.
func (r LoadResult[T]) Failed() bool {
	return r.Err != nil
}

// Load is the future for one load attempt. Every caller coalesced onto
// the same attempt holds the same *Load and observes the same result.
type Load[T any] struct {
	done   chan struct{}
	result LoadResult[T]
}

func newLoad[T any]() *Load[T] {
	return &Load[T]{done: make(chan struct{})}
}

// Done returns a channel that is closed when the attempt settles.
func (l *Load[T]) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the attempt settles or ctx is done. The returned
// error comes from ctx only; a failed query settles the future with the
// error in LoadResult.Err. Abandoning Wait does not stop the attempt.
func (l *Load[T]) Wait(ctx context.Context) (LoadResult[T], error) {
	select {
	case <-l.done:
		return l.result, nil
	case <-ctx.Done():
		return LoadResult[T]{}, ctx.Err()
	}
}

// Result returns the result and true once the attempt has settled.
func (l *Load[T]) Result() (LoadResult[T], bool) {
	select {
	case <-l.done:
		return l.result, true
	default:
		return LoadResult[T]{}, false
	}
}

// settle must be called exactly once.
func (l *Load[T]) settle(r LoadResult[T]) {
	l.result = r
	close(l.done)
}

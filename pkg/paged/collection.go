package paged

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Query is the caller-supplied paged data source. It receives the number
// of items the collection already holds and returns the next batch. An
// empty batch signals that no more items are available; the collection
// does not interpret that beyond the FirstQuery computation. The source
// must not retain or mutate the returned slice after returning it.
type Query[T any] func(ctx context.Context, offset int) ([]T, error)

// ErrSuperseded settles the waiters of a load attempt that was discarded
// because a Refresh happened while it was in flight. Only produced when
// the collection was built with WithRefreshInvalidation.
var ErrSuperseded = errors.New("pagedload: load superseded by refresh")

// Collection is an ordered, growable sequence of items fed by a Query.
// All methods are safe for concurrent use. Sequence access goes through
// Len, At, Items and All; the backing slice is never exposed.
type Collection[T any] struct {
	query Query[T]
	cfg   config

	mu      sync.Mutex
	items   []T
	state   State
	pending *Load[T]
	gen     uint64
}

// New creates a Collection over query. Unless WithAutoStart(false) is
// given, it immediately triggers a Refresh; construction never blocks on
// the load.
func New[T any](query Query[T], opts ...Option) *Collection[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Collection[T]{
		query: query,
		cfg:   cfg,
	}

	if cfg.autoStart {
		c.Refresh(cfg.background())
	}

	return c
}

// Len returns the number of items currently in the collection.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// At returns the item at index i. It panics if i is out of range, like a
// slice index.
func (c *Collection[T]) At(i int) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[i]
}

// Items returns a copy of the current sequence.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// All returns an iterator over a snapshot of the sequence taken when
// iteration starts. Loads settling during iteration are not observed.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range c.Items() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// State returns the current loading state.
func (c *Collection[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LoadMore requests the next batch of items. If an attempt is already in
// flight, the call coalesces onto it and returns the identical *Load; no
// new query is issued. Otherwise a fresh attempt starts with the current
// length as offset, using ctx for the query call. Coalesced callers
// share the originating caller's context.
func (c *Collection[T]) LoadMore(ctx context.Context) *Load[T] {
	c.mu.Lock()
	if c.pending != nil {
		l := c.pending
		c.mu.Unlock()

		coalescedLoadsTotal.WithLabelValues(c.cfg.name).Inc()
		c.cfg.logger.Debug().
			Str("collection", c.cfg.name).
			Msg("Coalesced onto in-flight load")
		return l
	}

	l := newLoad[T]()
	offset := len(c.items)
	stateBefore := c.state
	gen := c.gen
	c.state = StateLoading
	c.pending = l
	c.mu.Unlock()

	c.cfg.logger.Debug().
		Str("collection", c.cfg.name).
		Int("offset", offset).
		Msg("Starting load")

	go c.run(ctx, l, offset, stateBefore, gen)

	return l
}

// Refresh synchronously truncates the sequence to empty and sets the
// state to Loading, then starts a new load at offset zero. A reader
// inspecting the collection right after Refresh returns sees the reset.
// An attempt already in flight is not cancelled; see
// WithRefreshInvalidation for how its settlement is treated.
func (c *Collection[T]) Refresh(ctx context.Context) *Load[T] {
	c.mu.Lock()
	c.items = nil
	c.state = StateLoading
	// Drop the in-flight slot so the delegated LoadMore starts a new
	// attempt instead of coalescing onto the stale one.
	c.pending = nil
	c.gen++
	c.mu.Unlock()

	refreshesTotal.WithLabelValues(c.cfg.name).Inc()
	c.cfg.logger.Debug().
		Str("collection", c.cfg.name).
		Msg("Refreshing collection")

	return c.LoadMore(ctx)
}

// run executes one load attempt and settles l.
func (c *Collection[T]) run(ctx context.Context, l *Load[T], offset int, stateBefore State, gen uint64) {
	start := time.Now()
	newItems, err := c.query(ctx, offset)
	elapsed := time.Since(start)

	c.mu.Lock()
	if c.cfg.invalidate && gen != c.gen {
		// A refresh happened while this attempt was in flight. Discard
		// the items and leave state and the newer pending slot alone.
		if c.pending == l {
			c.pending = nil
		}
		result := LoadResult[T]{
			OldLength: offset,
			NewLength: len(c.items),
			Err:       ErrSuperseded,
		}
		c.mu.Unlock()

		l.settle(result)
		loadsTotal.WithLabelValues(c.cfg.name, resultSuperseded).Inc()
		c.cfg.logger.Debug().
			Str("collection", c.cfg.name).
			Int("offset", offset).
			Dur("duration", elapsed).
			Msg("Discarded superseded load")
		return
	}

	var result LoadResult[T]
	if err != nil {
		c.state = StateFailed
		result = LoadResult[T]{
			OldLength: offset,
			NewLength: len(c.items),
			Err:       err,
		}
	} else {
		c.items = append(c.items, newItems...)
		c.state = StateLoaded
		result = LoadResult[T]{
			Items:      newItems,
			OldLength:  offset,
			NewLength:  len(c.items),
			FirstQuery: stateBefore == StateLoading && len(c.items) > 0,
		}
	}
	// Cleared regardless of a refresh having replaced the slot meanwhile,
	// so the next LoadMore always starts a fresh attempt.
	c.pending = nil
	c.mu.Unlock()

	l.settle(result)

	loadsTotal.WithLabelValues(c.cfg.name, lo.Ternary(err != nil, resultFailed, resultLoaded)).Inc()
	loadDuration.WithLabelValues(c.cfg.name).Observe(elapsed.Seconds())

	if err != nil {
		c.cfg.logger.Warn().
			Err(err).
			Str("collection", c.cfg.name).
			Int("offset", offset).
			Dur("duration", elapsed).
			Msg("Load failed")
		return
	}

	itemsAppendedTotal.WithLabelValues(c.cfg.name).Add(float64(len(newItems)))
	c.cfg.logger.Debug().
		Str("collection", c.cfg.name).
		Int("offset", offset).
		Int("count", len(newItems)).
		Int("length", result.NewLength).
		Dur("duration", elapsed).
		Msg("Load complete")
}

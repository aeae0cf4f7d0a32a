// Package paged turns an offset-based data source into a growable,
// observable collection with a well-defined loading state.
//
// A Collection owns an ordered sequence of items and feeds it from a
// caller-supplied Query function. It guarantees:
//
// - Single-flight loading: concurrent LoadMore calls issued while an
//   attempt is in flight coalesce onto that attempt and receive the
//   identical *Load future
// - A three-valued loading state (Loading/Loaded/Failed) for UI bindings
// - Refresh that synchronously resets the sequence and restarts loading
//
// # Basic Usage
//
//	query := func(ctx context.Context, offset int) ([]Article, error) {
//		return api.ListArticles(ctx, offset, 20)
//	}
//
//	col := paged.New(query, paged.WithName("articles"))
//
//	// Wait for the auto-started initial load.
//	res, err := col.LoadMore(ctx).Wait(ctx)
//	if err != nil {
//		return err // ctx expired; the load itself keeps running
//	}
//	if res.Failed() {
//		// query failed; col.State() == paged.StateFailed
//	}
//
//	// Fetch the next page when the user scrolls.
//	col.LoadMore(ctx)
//
//	// Discard everything and start over.
//	col.Refresh(ctx)
//
// # Failure Handling
//
// A failed query does not reject the returned future. The future settles
// normally with the error carried in LoadResult.Err, and the collection
// state moves to StateFailed. Callers inspect the state or the result,
// not failure control flow. There is no built-in retry; call LoadMore
// again to make a fresh attempt.
//
// # Refresh While Loading
//
// Refresh does not cancel an in-flight attempt. By default the prior
// attempt still runs its completion when it settles, appending its items
// after the reset. Construct the collection with WithRefreshInvalidation
// to discard such superseded attempts instead; their waiters receive
// ErrSuperseded.
//
// # Metrics
//
// The package exports Prometheus metrics, labeled with the collection
// name set via WithName:
//
//   - pagedload_loads_total{collection, result} - Settled attempts
//   - pagedload_load_duration_seconds{collection} - Attempt duration
//   - pagedload_coalesced_loads_total{collection} - Coalesced LoadMore calls
//   - pagedload_refreshes_total{collection} - Refresh calls
//   - pagedload_items_appended_total{collection} - Items appended
package paged

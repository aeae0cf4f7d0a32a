// Package source provides ready-made Query implementations and
// decorators for paged collections.
//
// The core collection treats its data source as an opaque function; this
// package supplies the common shapes of that function:
//
//   - FromSlice: fixed in-memory items, paged by offset
//   - HTTPJSON: a JSON endpoint taking offset/limit query parameters
//   - RedisList: an LRANGE window over a Redis list
//
// plus decorators that wrap an existing Query:
//
//   - WithBreaker: circuit breaker around a flaky source
//
// There is deliberately no retry or page-cache decorator here. The
// collection reports a failed attempt and waits for the caller to ask
// again; retry policy and caching belong to the application.
//
// # Basic Usage
//
//	q := source.HTTPJSON[Article](nil, "https://feeds.example.com/v1/items", 20)
//	q = source.WithBreaker(q, gobreaker.Settings{Name: "feed"})
//
//	col := paged.New(q, paged.WithName("articles"))
package source

package source

import (
	"context"

	"github.com/sony/gobreaker"

	"github.com/hverr/pagedload/pkg/paged"
)

// WithBreaker wraps q in a circuit breaker. While the breaker is open,
// calls fail fast with gobreaker.ErrOpenState without reaching the
// underlying source; the collection records those as failed attempts
// like any other query error.
func WithBreaker[T any](q paged.Query[T], settings gobreaker.Settings) paged.Query[T] {
	cb := gobreaker.NewCircuitBreaker(settings)

	return func(ctx context.Context, offset int) ([]T, error) {
		v, err := cb.Execute(func() (interface{}, error) {
			return q(ctx, offset)
		})
		if err != nil {
			return nil, err
		}
		return v.([]T), nil
	}
}

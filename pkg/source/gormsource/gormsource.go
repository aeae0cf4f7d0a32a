// Package gormsource adapts a GORM query into a paged Query using
// LIMIT/OFFSET pagination.
//
// The offset handed to the source is the number of items the collection
// already holds, so a stable ordering is required for pages not to skip
// or repeat rows; set one with WithOrder.
//
//	q := gormsource.New[Article](db,
//		gormsource.WithOrder("published_at DESC, id DESC"),
//		gormsource.WithPageSize(50),
//	)
//	col := paged.New(q, paged.WithName("articles"))
package gormsource

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hverr/pagedload/pkg/paged"
	"github.com/hverr/pagedload/pkg/source"
)

type settings struct {
	pageSize int
	order    string
	scope    func(*gorm.DB) *gorm.DB
}

// Option configures the adapter.
type Option func(*settings)

// WithPageSize sets the page size. Defaults to source.DefaultPageSize.
func WithPageSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithOrder sets the ORDER BY clause. Defaults to "id".
func WithOrder(order string) Option {
	return func(s *settings) {
		if order != "" {
			s.order = order
		}
	}
}

// WithScope applies an extra scope (joins, filters) to every page query.
func WithScope(scope func(*gorm.DB) *gorm.DB) Option {
	return func(s *settings) { s.scope = scope }
}

// New returns a Query fetching pages of T from db. The table is inferred
// from T by GORM's usual conventions.
func New[T any](db *gorm.DB, opts ...Option) paged.Query[T] {
	s := settings{
		pageSize: source.DefaultPageSize,
		order:    "id",
	}
	for _, opt := range opts {
		opt(&s)
	}

	return func(ctx context.Context, offset int) ([]T, error) {
		tx := db.WithContext(ctx)
		if s.scope != nil {
			tx = s.scope(tx)
		}

		var items []T
		err := tx.
			Order(s.order).
			Offset(offset).
			Limit(s.pageSize).
			Find(&items).Error
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}
		return items, nil
	}
}

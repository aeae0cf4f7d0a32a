package source

import (
	"context"

	"github.com/hverr/pagedload/pkg/paged"
)

// DefaultPageSize is used by sources constructed with a non-positive
// page size.
const DefaultPageSize = 20

// FromSlice returns a Query serving fixed items in pages of pageSize.
// Offsets at or past the end yield an empty batch. Each page is a copy,
// so callers may mutate the results freely.
func FromSlice[T any](items []T, pageSize int) paged.Query[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return func(ctx context.Context, offset int) ([]T, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if offset < 0 || offset >= len(items) {
			return nil, nil
		}

		end := min(offset+pageSize, len(items))
		page := make([]T, end-offset)
		copy(page, items[offset:end])
		return page, nil
	}
}

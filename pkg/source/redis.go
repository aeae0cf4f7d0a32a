package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hverr/pagedload/pkg/paged"
)

// RedisList returns a Query serving pages from a Redis list stored under
// key, windowed with LRANGE. Each element is passed through decode; use
// JSONDecoder for JSON-encoded elements or a plain conversion for raw
// strings.
func RedisList[T any](client *redis.Client, key string, pageSize int, decode func(string) (T, error)) paged.Query[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return func(ctx context.Context, offset int) ([]T, error) {
		raw, err := client.LRange(ctx, key, int64(offset), int64(offset+pageSize-1)).Result()
		if err != nil {
			return nil, fmt.Errorf("lrange %s: %w", key, err)
		}

		items := make([]T, 0, len(raw))
		for i, s := range raw {
			v, err := decode(s)
			if err != nil {
				return nil, fmt.Errorf("decode element %d of %s: %w", offset+i, key, err)
			}
			items = append(items, v)
		}
		return items, nil
	}
}

// JSONDecoder returns a decode function unmarshalling each list element
// as JSON, for use with RedisList.
func JSONDecoder[T any]() func(string) (T, error) {
	return func(s string) (T, error) {
		var v T
		err := json.Unmarshal([]byte(s), &v)
		return v, err
	}
}

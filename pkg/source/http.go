package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hverr/pagedload/pkg/paged"
)

// HTTPJSON returns a Query fetching pages from endpoint with offset and
// limit query parameters, expecting a JSON array body. A nil client uses
// http.DefaultClient; set timeouts there or via the load context.
func HTTPJSON[T any](client *http.Client, endpoint string, pageSize int) paged.Query[T] {
	if client == nil {
		client = http.DefaultClient
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return func(ctx context.Context, offset int) ([]T, error) {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		q := u.Query()
		q.Set("offset", strconv.Itoa(offset))
		q.Set("limit", strconv.Itoa(pageSize))
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch page at offset %d: unexpected status %d", offset, resp.StatusCode)
		}

		var items []T
		if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
			return nil, fmt.Errorf("decode page at offset %d: %w", offset, err)
		}
		return items, nil
	}
}

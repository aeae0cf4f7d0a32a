//go:build integration

// Package integration exercises a paged collection end to end against a
// real HTTP feed and a real Redis instance.
package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hverr/pagedload/internal/testutil"
	"github.com/hverr/pagedload/pkg/paged"
	"github.com/hverr/pagedload/pkg/source"
)

// setupRedis creates a Redis container for integration testing.
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get Redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	cleanup := func() {
		client.Close()
		container.Terminate(ctx)
	}

	return client, cleanup
}

func wait5s(t *testing.T, l *paged.Load[testutil.Item]) paged.LoadResult[testutil.Item] {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	return res
}

func TestCollection_OverHTTPFeed(t *testing.T) {
	feed := testutil.NewMockFeed(testutil.GenerateItems(7))
	defer feed.Close()

	query := source.HTTPJSON[testutil.Item](
		&http.Client{Timeout: 5 * time.Second},
		feed.URL(),
		3,
	)
	col := paged.New(query, paged.WithName("integration-http"), paged.WithAutoStart(false))

	res := wait5s(t, col.Refresh(context.Background()))
	if res.Failed() {
		t.Fatalf("Initial load failed: %v", res.Err)
	}
	if col.Len() != 3 {
		t.Errorf("Len() after initial load = %d, want 3", col.Len())
	}
	if !res.FirstQuery {
		t.Error("Expected FirstQuery on the load after refresh")
	}

	// Page through the rest.
	wait5s(t, col.LoadMore(context.Background()))
	wait5s(t, col.LoadMore(context.Background()))
	if col.Len() != 7 {
		t.Errorf("Len() after paging = %d, want 7", col.Len())
	}

	// Past the end: empty page, still a successful load.
	res = wait5s(t, col.LoadMore(context.Background()))
	if res.Failed() || len(res.Items) != 0 {
		t.Errorf("Past-end load = %+v, want empty success", res)
	}
	if got := col.State(); got != paged.StateLoaded {
		t.Errorf("State() = %s, want loaded", got)
	}

	if got := feed.SeenOffsets(); len(got) != 4 || got[0] != 0 || got[1] != 3 || got[2] != 6 || got[3] != 7 {
		t.Errorf("Feed saw offsets %v, want [0 3 6 7]", got)
	}
}

func TestCollection_HTTPFailureThenRetry(t *testing.T) {
	feed := testutil.NewMockFeed(testutil.GenerateItems(2))
	defer feed.Close()
	feed.FailNext(http.StatusInternalServerError)

	query := source.HTTPJSON[testutil.Item](nil, feed.URL(), 10)
	col := paged.New(query, paged.WithAutoStart(false))

	res := wait5s(t, col.LoadMore(context.Background()))
	if !res.Failed() {
		t.Fatal("Expected the first load to fail")
	}
	if got := col.State(); got != paged.StateFailed {
		t.Errorf("State() = %s, want failed", got)
	}

	// The failure cleared the pending slot, so the retry issues a fresh query.
	res = wait5s(t, col.LoadMore(context.Background()))
	if res.Failed() {
		t.Fatalf("Retry failed: %v", res.Err)
	}
	if col.Len() != 2 {
		t.Errorf("Len() after retry = %d, want 2", col.Len())
	}
}

func TestCollection_OverRedisList(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	const key = "pagedload:integration:items"

	for i := 1; i <= 5; i++ {
		payload, _ := json.Marshal(testutil.Item{ID: i, Title: "redis item"})
		if err := client.RPush(ctx, key, string(payload)).Err(); err != nil {
			t.Fatalf("Failed to seed list: %v", err)
		}
	}

	query := source.RedisList(client, key, 2, source.JSONDecoder[testutil.Item]())
	col := paged.New(query, paged.WithName("integration-redis"), paged.WithAutoStart(false))

	wait5s(t, col.Refresh(ctx))
	wait5s(t, col.LoadMore(ctx))
	wait5s(t, col.LoadMore(ctx))

	if col.Len() != 5 {
		t.Errorf("Len() = %d, want 5", col.Len())
	}
	if got := col.At(4).ID; got != 5 {
		t.Errorf("At(4).ID = %d, want 5", got)
	}

	// Refresh resets and reloads from offset zero.
	res := wait5s(t, col.Refresh(ctx))
	if !res.FirstQuery {
		t.Error("Expected FirstQuery on the load after refresh")
	}
	if col.Len() != 2 {
		t.Errorf("Len() after refresh = %d, want 2", col.Len())
	}
}

//go:build integration

package source

import (
	"context"
	"strconv"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis starts a Redis container and returns a client
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get Redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	cleanup := func() {
		client.Close()
		redisContainer.Terminate(ctx)
	}

	return client, cleanup
}

func TestRedisList_Integration_Paging(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	const key = "pagedload:test:items"

	for i := 1; i <= 7; i++ {
		if err := client.RPush(ctx, key, strconv.Itoa(i)).Err(); err != nil {
			t.Fatalf("Failed to seed list: %v", err)
		}
	}

	q := RedisList(client, key, 3, func(s string) (int, error) {
		return strconv.Atoi(s)
	})

	first, err := q(ctx, 0)
	if err != nil {
		t.Fatalf("First page failed: %v", err)
	}
	if len(first) != 3 || first[0] != 1 || first[2] != 3 {
		t.Errorf("First page = %v, want [1 2 3]", first)
	}

	last, err := q(ctx, 6)
	if err != nil {
		t.Fatalf("Last page failed: %v", err)
	}
	if len(last) != 1 || last[0] != 7 {
		t.Errorf("Last page = %v, want [7]", last)
	}

	past, err := q(ctx, 7)
	if err != nil {
		t.Fatalf("Past-end page failed: %v", err)
	}
	if len(past) != 0 {
		t.Errorf("Past-end page = %v, want empty", past)
	}
}

func TestRedisList_Integration_JSONDecoder(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	const key = "pagedload:test:json"

	if err := client.RPush(ctx, key, `{"id":1,"title":"first"}`, `{"id":2,"title":"second"}`).Err(); err != nil {
		t.Fatalf("Failed to seed list: %v", err)
	}

	type record struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}

	q := RedisList(client, key, 10, JSONDecoder[record]())

	page, err := q(ctx, 0)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if len(page) != 2 || page[1].Title != "second" {
		t.Errorf("Page = %+v, want two decoded records", page)
	}
}

// Package testutil provides testing utilities for pagedload.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// Item is the record type served by MockFeed.
type Item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// GenerateItems returns n sequential items for seeding a feed.
func GenerateItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i + 1, Title: "item " + strconv.Itoa(i+1)}
	}
	return items
}

// MockFeed is a configurable paged feed server for testing. It serves
// GET <URL>?offset=N&limit=M from a fixed item list as a JSON array, and
// supports failure injection and response delay.
type MockFeed struct {
	server *httptest.Server

	mu    sync.Mutex
	items []Item
	delay time.Duration
	fail  []int // queued status codes, consumed one per request

	// Tracking
	RequestCount int
	Offsets      []int
}

// NewMockFeed creates a started mock feed serving the given items.
func NewMockFeed(items []Item) *MockFeed {
	mock := &MockFeed{items: items}
	mock.server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

// URL returns the feed endpoint URL.
func (m *MockFeed) URL() string {
	return m.server.URL
}

// Close shuts the server down.
func (m *MockFeed) Close() {
	m.server.Close()
}

// SetDelay makes every subsequent response wait d before answering.
func (m *MockFeed) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// FailNext queues a non-200 status for the next request. Multiple calls
// queue multiple failures, consumed in order.
func (m *MockFeed) FailNext(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = append(m.fail, status)
}

// SetItems replaces the served item list.
func (m *MockFeed) SetItems(items []Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
}

// SeenOffsets returns the offsets of all requests received so far.
func (m *MockFeed) SeenOffsets() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.Offsets))
	copy(out, m.Offsets)
	return out
}

func (m *MockFeed) handle(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	m.mu.Lock()
	m.RequestCount++
	m.Offsets = append(m.Offsets, offset)
	delay := m.delay
	status := 0
	if len(m.fail) > 0 {
		status = m.fail[0]
		m.fail = m.fail[1:]
	}
	items := m.items
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	page := []Item{}
	if offset >= 0 && offset < len(items) {
		end := offset + limit
		if end > len(items) {
			end = len(items)
		}
		page = items[offset:end]
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

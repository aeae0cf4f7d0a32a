// feedd is a demo paged feed server for pagedload. It serves a
// TOML-configured item set at GET /v1/items?offset=N&limit=M as a JSON
// array, the shape expected by source.HTTPJSON.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hverr/pagedload/pkg/logging"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: getEnv("LOG_PRETTY", "") != "",
		Output: os.Stderr,
	})

	cfg, err := LoadConfig(getEnv("FEEDD_CONFIG", "feedd.toml"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
	if addr := os.Getenv("FEEDD_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if len(cfg.Items) == 0 {
		cfg.Items = SampleItems(250)
		logger.Info().Int("count", len(cfg.Items)).Msg("No items configured, serving sample items")
	}

	r := newRouter(cfg)

	logger.Info().
		Str("addr", cfg.Addr).
		Int("items", len(cfg.Items)).
		Msg("Starting feed server")

	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func newRouter(cfg Config) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/items", itemsHandler(cfg.Items, cfg.MaxLimit)).Methods("GET")
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// itemsHandler serves the offset/limit window of items as a JSON array.
// Out-of-range offsets yield an empty array, not an error, matching the
// Query contract that an empty batch means "no more items".
func itemsHandler(items []Item, maxLimit int) http.HandlerFunc {
	logger := logging.NewLogger("feedd")

	return func(w http.ResponseWriter, r *http.Request) {
		offset, err := parseIntParam(r, "offset", 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		limit, err := parseIntParam(r, "limit", 20)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if limit <= 0 {
			limit = 20
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		page := []Item{}
		if offset >= 0 && offset < len(items) {
			end := offset + limit
			if end > len(items) {
				end = len(items)
			}
			page = items[offset:end]
		}

		logger.Debug().
			Int("offset", offset).
			Int("limit", limit).
			Int("count", len(page)).
			Msg("Serving page")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			logger.Warn().Err(err).Msg("Failed to encode page")
		}
	}
}

func parseIntParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return v, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

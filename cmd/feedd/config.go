package main

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Item is one record served by the feed.
type Item struct {
	ID    int64  `toml:"id" json:"id"`
	Title string `toml:"title" json:"title"`
}

// Config captures the feedd settings read from the TOML config file.
type Config struct {
	Addr     string `toml:"addr"`
	MaxLimit int    `toml:"max_limit"`
	Items    []Item `toml:"items"`
}

const (
	defaultAddr     = ":8080"
	defaultMaxLimit = 100
)

// LoadConfig parses the config at path, falling back to defaults when
// the file is missing.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Addr: defaultAddr, MaxLimit: defaultMaxLimit}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = defaultMaxLimit
	}

	return cfg, nil
}

// SampleItems returns a generated item set used when the config defines
// none, so the server is usable out of the box.
func SampleItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: int64(i + 1), Title: fmt.Sprintf("Sample item %d", i+1)}
	}
	return items
}

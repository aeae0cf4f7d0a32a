package paged

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	name       string
	autoStart  bool
	invalidate bool
	logger     zerolog.Logger
	background func() context.Context
}

func defaultConfig() config {
	return config{
		name:       "default",
		autoStart:  true,
		logger:     log.With().Str("component", "pagedload").Logger(),
		background: context.Background,
	}
}

// Option configures a Collection at construction time.
type Option func(*config)

// WithName sets the collection name used as the metric and log label.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithAutoStart controls whether New immediately triggers a Refresh.
// Enabled by default.
func WithAutoStart(enabled bool) Option {
	return func(c *config) { c.autoStart = enabled }
}

// WithLogger sets the logger used by the collection.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithBackgroundContextProvider sets the context factory used for loads
// the collection starts on its own, i.e. the auto-start load. Defaults
// to context.Background.
func WithBackgroundContextProvider(provider func() context.Context) Option {
	return func(c *config) {
		if provider != nil {
			c.background = provider
		}
	}
}

// WithRefreshInvalidation enables generation-based invalidation of loads
// that were in flight when Refresh was called. A superseded attempt
// discards its items instead of appending them after the reset, leaves
// the collection state untouched, and settles its waiters with
// ErrSuperseded.
//
// Without this option the collection keeps the historical behavior: a
// superseded attempt still appends its items and updates the state when
// it settles.
func WithRefreshInvalidation() Option {
	return func(c *config) { c.invalidate = true }
}

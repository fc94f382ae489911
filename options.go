package pocketcube

import "github.com/rs/zerolog"

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	logger   zerolog.Logger
	parallel bool
	maxDepth int
	progress func(Progress)
}

// DefaultMaxDepth bounds the number of levels each frontier may advance.
// Every 2x2x2 position is within 14 quarter turns, so the frontiers meet by
// level 7; the default allows one level more.
const DefaultMaxDepth = 8

func defaultConfig() *config {
	return &config{
		logger:   zerolog.Nop(),
		parallel: true,
		maxDepth: DefaultMaxDepth,
	}
}

// WithLogger sets the logger used for per-level search events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithParallel enables or disables expanding both frontiers concurrently.
// Frontiers always advance in lock-step one level at a time.
func WithParallel(enabled bool) Option {
	return func(c *config) {
		c.parallel = enabled
	}
}

// WithMaxDepth sets the maximum number of levels per frontier.
// Values <= 0 remove the limit.
func WithMaxDepth(levels int) Option {
	return func(c *config) {
		c.maxDepth = levels
	}
}

// WithProgress registers a callback invoked after every level.
// The callback runs on the solving goroutine.
func WithProgress(fn func(Progress)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

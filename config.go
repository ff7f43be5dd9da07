package stablepool

import "github.com/rs/zerolog"

// DefaultFirstBlockSize is the slot count of a pool's first block when no
// WithFirstBlockSize option is given.
const DefaultFirstBlockSize = 16

// config carries pool construction parameters.
type config struct {
	firstBlockSize int
	log            zerolog.Logger
}

func defaultConfig() config {
	return config{
		firstBlockSize: DefaultFirstBlockSize,
		log:            zerolog.Nop(),
	}
}

// Option adjusts pool construction.
type Option func(*config)

// WithFirstBlockSize sets the slot count of the first block. Later blocks
// still follow the growth policy. Values below 1 fall back to
// DefaultFirstBlockSize.
func WithFirstBlockSize(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = DefaultFirstBlockSize
		}
		if n > maxBlockSize {
			n = maxBlockSize
		}
		c.firstBlockSize = n
	}
}

// WithLogger attaches a logger to the pool. Block appends and teardown are
// logged at debug level; the default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

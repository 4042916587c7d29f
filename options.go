package hashid

import (
	"crypto/rand"
	"io"
	"time"
)

// Clock supplies the instant captured when an Identifier is constructed.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option configures construction of an Identifier.
type Option func(*config)

// config holds the ambient capabilities construction depends on.
type config struct {
	clock   Clock
	entropy io.Reader
}

// WithClock sets the clock used to capture the construction instant.
// If not provided, the system wall clock is used.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithEntropy sets the source of random input material for Rand32 and
// Rand64. If not provided, crypto/rand is used.
func WithEntropy(r io.Reader) Option {
	return func(cfg *config) {
		cfg.entropy = r
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		clock:   systemClock{},
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

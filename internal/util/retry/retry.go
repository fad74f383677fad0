package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Delay doubles after each failed attempt, capped at Config.MaxDelay.
const backoffMultiplier = 2

// Config bounds a retry loop. Defaults are applied by
// WithExponentialBackoff.
type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Option adjusts a Config.
type Option func(*Config)

// WithMaxRetries sets how many times the operation is retried after the
// first failure.
func WithMaxRetries(n int) Option {
	return func(c *Config) { c.MaxRetries = n }
}

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) { c.InitialDelay = d }
}

// WithMaxDelay caps the delay between retries.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) { c.MaxDelay = d }
}

// WithExponentialBackoff runs op until it succeeds, fails fatally, or the
// attempts run out. The delay between attempts doubles up to the
// configured maximum, and ctx cancellation is honored while waiting.
//
// Errors wrapped with Fatal stop the loop immediately: a dial that failed
// authentication will not succeed on the sixth try either.
func WithExponentialBackoff(ctx context.Context, op func() error, opts ...Option) error {
	cfg := Config{
		MaxRetries:   5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	delay := cfg.InitialDelay
	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if IsFatal(err) {
			return fmt.Errorf("not retrying: %w", err)
		}
		if attempt == cfg.MaxRetries {
			return fmt.Errorf("giving up after %d attempts: %w", attempt+1, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("canceled after %d attempts: %w", attempt+1, ctx.Err())
		case <-time.After(delay):
		}

		if delay *= backoffMultiplier; delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

// fatalError marks an error as pointless to retry.
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }

func (e *fatalError) Unwrap() error { return e.err }

// Fatal marks err as non-retryable. WithExponentialBackoff returns it
// without running the operation again. Fatal of nil is nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

// IsFatal reports whether err, anywhere in its chain, was marked with
// Fatal.
func IsFatal(err error) bool {
	var fe *fatalError
	return errors.As(err, &fe)
}

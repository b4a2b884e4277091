package xfix

import (
	"errors"
	"fmt"

	"github.com/mhr3/xfix/internal/fold"
)

// Errors returned by New.
var (
	ErrInvalidThreshold   = errors.New("threshold must be greater than 0")
	ErrInvalidWorkers     = errors.New("workers must be greater than 0")
	ErrConflictingOptions = errors.New("WithWorkers and WithSequential are mutually exclusive")
)

const DefaultThreshold = fold.DefaultThreshold

// Option configures a Finder.
type Option func(*config) error

type config struct {
	threshold  int
	workers    int
	sequential bool
}

func (c *config) validate() error {
	if c.threshold <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, c.threshold)
	}

	if c.workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.workers)
	}

	if c.workers > 0 && c.sequential {
		return ErrConflictingOptions
	}

	return nil
}

// WithThreshold sets the largest sub-collection folded on one goroutine.
func WithThreshold(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidThreshold, n)
		}

		c.threshold = n

		return nil
	}
}

// WithWorkers gives the Finder its own pool of n workers.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidWorkers, n)
		}

		c.workers = n

		return nil
	}
}

// WithSequential makes the Finder fold on the calling goroutine only.
func WithSequential() Option {
	return func(c *config) error {
		c.sequential = true

		return nil
	}
}

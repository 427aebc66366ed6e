// options.go: functional options for Cache construction
//
// Grounded on iris's options.go (loggerOptions + Option func(*T)
// pattern): an unexported, immutable-after-construction options struct
// assembled by applying a variadic slice of Option functions over a
// set of defaults.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import "github.com/agilira/slotcache/internal/slotstore"

// config holds the assembled, immutable configuration for a Cache.
type config struct {
	writerSpin slotstore.SpinStrategy
	searchSpin slotstore.SpinStrategy
	logger     Logger
}

// defaultConfig returns the configuration used when no Option is
// supplied: pure spinning on both the writer-exclusion wait and the
// free-slot search, and no diagnostic logging.
func defaultConfig() config {
	return config{
		writerSpin: slotstore.NewSpinningStrategy(),
		searchSpin: slotstore.NewSpinningStrategy(),
	}
}

// Option configures a Cache at construction time.
type Option func(*config)

// WithWriterSpin overrides the strategy a writer uses while waiting
// for the exclusion flag to clear. The zero value of strategy is
// never valid; passing nil leaves the default in place.
func WithWriterSpin(strategy slotstore.SpinStrategy) Option {
	return func(c *config) {
		if strategy != nil {
			c.writerSpin = strategy
		}
	}
}

// WithSearchSpin overrides the strategy a writer uses while searching
// for a slot with zero readers. Passing nil leaves the default in
// place.
func WithSearchSpin(strategy slotstore.SpinStrategy) Option {
	return func(c *config) {
		if strategy != nil {
			c.searchSpin = strategy
		}
	}
}

// WithLogger attaches a diagnostic Logger. The logger is only called
// from Cache construction and Close, never from Get or Update.
func WithLogger(logger Logger) Option {
	return func(c *config) { c.logger = logger }
}

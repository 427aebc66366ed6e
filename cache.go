// cache.go: the public Cache[T] API
//
// Grounded on iris's iris.go (a top-level type wrapping an
// internal engine, validating configuration before delegating to it)
// and on original_source/src/cache/mod.rs for the exact three
// operations this type exposes.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/agilira/slotcache/internal/slotstore"
)

// Clone is the constraint a cached value must satisfy: it must be
// able to produce an independent copy of itself for a reader to own.
// This is the Go equivalent of the original Rust implementation's
// `T: Clone` trait bound.
type Clone[T any] interface {
	Clone() T
}

// Cache publishes successive versions of a single logical value of
// type T to many concurrent readers. See the package doc for the
// concurrency model.
type Cache[T Clone[T]] struct {
	store  *slotstore.Store[T]
	logger Logger

	// writes and lastWriteID are updated after store.Update has
	// already released its internal exclusion flag, so concurrent
	// Update calls race on them independently of the store's own
	// writer serialization; both stay atomic so Stats can read them
	// while Update runs on another goroutine.
	writes      atomic.Uint64
	lastWriteID atomic.Pointer[uuid.UUID]
}

// New constructs a Cache with slots slots (must be a power of two,
// >= 2) and initial as the first published value. Options configure
// idle strategies and an optional diagnostic Logger; see options.go.
func New[T Clone[T]](slots int, initial T, opts ...Option) (*Cache[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	store, err := slotstore.New[T](slots, initial, cfg.writerSpin, cfg.searchSpin)
	if err != nil {
		return nil, wrapConstructionError(err, slots)
	}

	c := &Cache[T]{store: store, logger: cfg.logger}
	if c.logger != nil {
		c.logger.Infow("slotcache constructed", "slots", slots)
	}
	return c, nil
}

// Get returns an owned clone of the most recently published value
// observable at call entry, or any value published during the call.
// It never blocks and never fails, and is safe to call from any
// number of goroutines concurrently.
func (c *Cache[T]) Get() T {
	return c.store.Get()
}

// Update installs newValue as the new published version. It blocks
// until no other writer is in progress and some slot other than the
// current one has zero readers. Safe to call from any number of
// goroutines concurrently; writers are serialized internally.
func (c *Cache[T]) Update(newValue T) {
	c.store.Update(newValue)
	id := uuid.New()
	c.lastWriteID.Store(&id)
	c.writes.Add(1)
}

// Close releases every currently-full slot's value. After the first
// N-1 updates every slot is full, so closing a long-lived Cache
// releases N values. Not safe to call concurrently with Get or
// Update.
func (c *Cache[T]) Close() {
	c.store.Close()
	if c.logger != nil {
		c.logger.Infow("slotcache closed", "writes", c.writes.Load())
	}
}

// stats.go: point-in-time diagnostics for a Cache
//
// Grounded on iris's ZephyrosLight.Stats() map[string]int64
// (internal/zephyroslite/zephyros.go), turned into a typed struct —
// a small, fixed public API surface reads better as named fields than
// as a map the caller has to index by string key.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import "github.com/google/uuid"

// Stats is a snapshot of a Cache's operational state. It is safe to
// call Stats concurrently with Get and Update; PublishedSlot reads
// only the atomic index, and the counters are monotonically
// increasing approximations (a concurrent Update may or may not be
// reflected), which is sufficient for observability purposes.
type Stats struct {
	// Slots is the configured slot count.
	Slots int
	// PublishedSlot is the slot index readers currently observe.
	PublishedSlot uint64
	// Writes is the total number of completed Update calls.
	Writes uint64
	// SearchRetries is the cumulative number of occupied-slot probes
	// a writer had to skip past across every Update call so far.
	SearchRetries uint64
	// LastWriteID tags the most recent Update with an opaque
	// generation identifier, for correlating a publication with
	// external logs. The zero UUID if no Update has occurred yet.
	LastWriteID uuid.UUID
}

// Stats returns a snapshot of the cache's current counters.
func (c *Cache[T]) Stats() Stats {
	var lastWriteID uuid.UUID
	if id := c.lastWriteID.Load(); id != nil {
		lastWriteID = *id
	}
	return Stats{
		Slots:         c.store.Len(),
		PublishedSlot: c.store.PublishedIndex(),
		Writes:        c.writes.Load(),
		SearchRetries: c.store.SearchRetries(),
		LastWriteID:   lastWriteID,
	}
}

// store.go: the lock-free, read-optimized multi-slot store
//
// This is the entire concurrent publication protocol: an atomic
// published-slot index, a writer exclusion flag, and N independently
// padded slots each with its own atomic reader counter. Readers never
// block. Writers serialize on the exclusion flag and then spin until
// they find a slot other than the currently published one with zero
// readers.
//
// Grounded on original_source/src/cache/mod.rs for the exact protocol
// (probe order, when the replaced value is dropped) and on the
// teacher's internal/zephyroslite for Go idiom: a generic struct over
// T, cache-line-padded atomic fields as named struct members.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotstore

// Cloner is the constraint a stored value must satisfy: it can
// produce an independent copy of itself for a reader to own.
type Cloner[T any] interface {
	Clone() T
}

// Releasable is an optional interface a stored value may implement.
// Where the original Rust implementation relies on T's Drop impl to
// release the previously-occupied cell (original_source/src/cache/mod.rs:
// `drop((*self.items[next_index].data.get()).replace(data))`), Go has
// no deterministic destructor; this is the explicit equivalent. A
// value that does not implement Releasable is simply dereferenced and
// left to the garbage collector, which is the idiomatic Go default.
type Releasable interface {
	Release()
}

func releaseIfSupported[T any](v T) {
	if r, ok := any(v).(Releasable); ok {
		r.Release()
	}
}

// slot is one versioned storage cell: an atomic reader-occupancy
// counter and the mutable cell it guards. The counter and the cell
// live in the same struct but are never raced on the same memory:
// the cell is only read under a reader's own count++ / count--
// bracket, or mutated by the one writer that has both the exclusion
// flag and has observed count == 0.
type slot[T Cloner[T]] struct {
	count PaddedUint64
	full  bool
	value T

	// Padding so two adjacent slots' `full`/`value` fields don't share
	// a cache line through the compiler's struct layout; the counter
	// itself is already padded by PaddedUint64.
	_ [cacheLineSize]byte
}

// Store is the N-slot publication engine. Exactly one logical value
// is ever published; readers clone it without blocking, and a single
// writer at a time installs a new version into a currently-unread
// slot before republishing the index.
type Store[T Cloner[T]] struct {
	index   PaddedUint64
	writing PaddedBool
	mask    uint64
	slots   []slot[T]

	// writerSpin is a prototype: every Update call takes its own
	// Fresh() copy before any goroutine has been serialized against
	// the others, so concurrent acquire attempts never share mutable
	// backoff state.
	writerSpin SpinStrategy
	// searchStrategy is safe to share: it is only ever touched by the
	// one goroutine currently holding the exclusion flag.
	searchStrategy SpinStrategy

	// searchRetries counts failed probes across every Update call,
	// for Stats() in the public package. Diagnostic only; not part
	// of the correctness protocol.
	searchRetries PaddedUint64
}

// New constructs a Store with n slots (n must be a power of two, n
// >= 2) and initial published value in slot 0. writerSpin governs the
// exclusion-flag wait; searchSpin governs the free-slot search.
// Either may be nil, in which case a pure SpinningStrategy is used
// for that point.
func New[T Cloner[T]](n int, initial T, writerSpin, searchSpin SpinStrategy) (*Store[T], error) {
	if n < 2 {
		return nil, ErrTooFewSlots
	}
	if n&(n-1) != 0 {
		return nil, ErrInvalidSlotCount
	}
	if writerSpin == nil {
		writerSpin = NewSpinningStrategy()
	}
	if searchSpin == nil {
		searchSpin = NewSpinningStrategy()
	}

	s := &Store[T]{
		mask:           uint64(n - 1),
		slots:          make([]slot[T], n),
		writerSpin:     writerSpin,
		searchStrategy: searchSpin,
	}
	s.slots[0].full = true
	s.slots[0].value = initial
	return s, nil
}

// Get returns an owned clone of whatever value is published at the
// moment of entry. It never blocks and never fails.
//
// The decrement is deferred so that a panic inside Clone still
// releases the slot; otherwise a panicking reader would leave the
// counter permanently elevated and starve every future writer
// targeting that slot.
func (s *Store[T]) Get() T {
	i := s.index.Load() & s.mask
	sl := &s.slots[i]

	// Release on the increment: the writer's acquire-load of this
	// count (in findFreeSlot) will observe our presence before it
	// can decide this slot is free. The writer never targets the
	// slot currently named by index, so this slot is guaranteed
	// Full for the duration of the clone below.
	sl.count.Add(1)
	defer sl.count.Add(-1) // released even on panic unwind

	return sl.value.Clone()
}

// Update installs newValue as the new published version. It blocks
// until no other writer is in progress and some slot other than the
// currently published one has zero readers. The value previously
// held in the chosen slot, if any, is released: if it implements
// Releasable its Release method runs; otherwise it is simply
// dereferenced and left to the garbage collector.
//
// The exclusion-flag clear is deferred so a panic during installation
// still releases the flag for the next writer, rather than wedging
// every future Update forever.
func (s *Store[T]) Update(newValue T) {
	// Step 1: acquire writer exclusion. Multiple goroutines may reach
	// this loop before any of them has acquired the flag, so each gets
	// its own Fresh() copy of the prototype rather than mutating
	// s.writerSpin directly.
	writerSpin := s.writerSpin.Fresh()
	for s.writing.Swap(true) {
		writerSpin.Spin()
	}
	defer s.writing.Store(false) // step 6, released even on panic unwind

	// Step 2: read the current index.
	current := s.index.Load() & s.mask

	// Step 3: search for a target slot with zero readers.
	next := s.findFreeSlot(current)

	// Step 4: install under exclusive access (no reader can be
	// present: findFreeSlot only returned once it observed count==0
	// on a slot that is not `current`, and readers only ever enter
	// the slot named by `index`, which still names `current`).
	sl := &s.slots[next]
	if sl.full {
		releaseIfSupported(sl.value)
	}
	sl.value = newValue
	sl.full = true

	// Step 5: publish.
	s.index.Store(next)
}

// Close releases every currently-full slot's value, not only the
// currently published one. After the first N-1 updates every slot is
// full, so closing a long-lived Store releases N values. Close is not
// safe to call concurrently with Get or Update.
func (s *Store[T]) Close() {
	for i := range s.slots {
		if s.slots[i].full {
			releaseIfSupported(s.slots[i].value)
			s.slots[i].full = false
		}
	}
}

// findFreeSlot probes every slot but current, in order, until it
// finds one with a zero reader count. Readers occupy a slot only for
// the duration of one clone, so this loop always terminates as long
// as T.Clone() terminates.
func (s *Store[T]) findFreeSlot(current uint64) uint64 {
	next := current
	for {
		next = (next + 1) & s.mask
		if next == current {
			continue
		}
		if s.slots[next].count.Load() == 0 {
			s.searchStrategy.Reset()
			return next
		}
		// Candidate still occupied; back off before the next probe.
		s.searchRetries.Add(1)
		s.searchStrategy.Spin()
	}
}

// Len returns the configured slot count.
func (s *Store[T]) Len() int { return int(s.mask) + 1 }

// SearchRetries returns the cumulative number of occupied-slot probes
// across every Update call so far. Diagnostic only.
func (s *Store[T]) SearchRetries() uint64 { return s.searchRetries.Load() }

// PublishedIndex returns the slot index currently named by the
// published index, safe to call concurrently with Get and Update
// (unlike Snapshot, it reads only the atomic index).
func (s *Store[T]) PublishedIndex() uint64 { return s.index.Load() & s.mask }

// Snapshot returns the currently published slot index and, for
// diagnostics, whether every slot has been filled at least once. It
// reads the `full` markers without synchronization and is intended
// for use once all writers have quiesced (tests, post-run stats),
// not as a point-in-time view under concurrent Update calls.
func (s *Store[T]) Snapshot() (publishedIndex uint64, allFull bool) {
	publishedIndex = s.index.Load() & s.mask
	allFull = true
	for i := range s.slots {
		if !s.slots[i].full {
			allFull = false
			break
		}
	}
	return publishedIndex, allFull
}

// Package slotcache provides a lock-free, read-optimized, single-writer
// multi-slot cache that publishes successive versions of a single
// logical value to many concurrent readers with minimal read-side
// contention.
//
// Readers never block and never wait on a writer; writers serialize
// among themselves and wait only for readers holding the specific
// prior slot they intend to overwrite.
//
// # Core design
//
//   - An atomic index names the slot currently published to readers.
//   - An atomic exclusion flag serializes writers.
//   - N independently cache-line-padded slots, each with its own
//     atomic reader counter and a mutable value cell.
//
// A reader loads the index, enters the named slot by incrementing its
// counter, clones the value, and decrements on the way out. A writer
// takes the exclusion flag, finds a slot other than the current one
// with zero readers, installs the new value there, republishes the
// index, and releases the flag.
//
//	type Config struct{ Value string }
//
//	func (c Config) Clone() Config { return c }
//
//	cache, err := slotcache.New(4, Config{Value: "initial"})
//	if err != nil {
//		// N not a power of two, or N < 2
//	}
//	defer cache.Close()
//
//	go func() {
//		cache.Update(Config{Value: "next version"})
//	}()
//
//	value := cache.Get() // never blocks
//
// # Non-goals
//
// This is not a multi-key map (exactly one logical value exists at
// any moment), not a multi-writer structure (writers are mutually
// exclusive), and provides no durability, eviction, TTLs, or capacity
// policy.
package slotcache

// idle_strategy.go: Configurable spin strategies for writer contention
//
// A writer spins in two places: waiting to acquire the exclusion flag,
// and searching for a slot with zero readers. Both are genuinely
// unbounded retry loops, so the strategy used between attempts
// controls the latency/CPU trade-off under contention. This is a
// repurposing of iris's consumer idle-strategy family for writer-side
// spinning rather than empty-queue waiting: see DESIGN.md.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotstore

import (
	"runtime"
	"time"
)

// SpinStrategy controls what a writer does between unsuccessful probes
// of the exclusion flag or a slot's reader count.
type SpinStrategy interface {
	// Spin is called after a failed attempt. It returns before the
	// caller retries.
	Spin()

	// Reset clears any accumulated backoff state. Called once a
	// probe succeeds.
	Reset()

	// String returns a human-readable strategy name.
	String() string

	// Fresh returns a new instance configured the same way as the
	// receiver (same maxSpins/sleepFor, etc.) but with backoff state
	// reset to zero. Spin/Reset mutate unexported counters, so an
	// instance must never be shared between goroutines that have not
	// yet been serialized against each other; Fresh gives each such
	// goroutine its own copy to mutate.
	Fresh() SpinStrategy
}

// SpinningStrategy keeps no backoff state: after every failed attempt
// it calls runtime.Gosched, letting other goroutines run before the
// caller retries, and it never sleeps. This is the no-backoff default.
type SpinningStrategy struct{}

// NewSpinningStrategy creates a pure busy-wait strategy.
func NewSpinningStrategy() *SpinningStrategy {
	return &SpinningStrategy{}
}

func (s *SpinningStrategy) Spin() {
	runtime.Gosched()
}

func (s *SpinningStrategy) Reset() {}

func (s *SpinningStrategy) String() string { return "spinning" }

func (s *SpinningStrategy) Fresh() SpinStrategy { return &SpinningStrategy{} }

// YieldingStrategy spins a fixed number of times before yielding to
// the Go scheduler on every subsequent attempt. Smooths contention
// against a long-held slot without sleeping.
type YieldingStrategy struct {
	spins    int
	maxSpins int
}

// NewYieldingStrategy creates a strategy that busy-spins for maxSpins
// attempts, then calls runtime.Gosched() on every attempt after that.
func NewYieldingStrategy(maxSpins int) *YieldingStrategy {
	if maxSpins <= 0 {
		maxSpins = 64
	}
	return &YieldingStrategy{maxSpins: maxSpins}
}

func (s *YieldingStrategy) Spin() {
	if s.spins < s.maxSpins {
		s.spins++
		return
	}
	runtime.Gosched()
}

func (s *YieldingStrategy) Reset() { s.spins = 0 }

func (s *YieldingStrategy) String() string { return "yielding" }

func (s *YieldingStrategy) Fresh() SpinStrategy {
	return &YieldingStrategy{maxSpins: s.maxSpins}
}

// SleepingStrategy spins briefly, then sleeps for a fixed duration.
// Lowest CPU usage of the three; only appropriate when writer latency
// is not on a hot path.
type SleepingStrategy struct {
	sleepFor time.Duration
	maxSpins int
	spins    int
}

// NewSleepingStrategy creates a strategy that spins maxSpins times
// then sleeps sleepFor before every subsequent attempt.
func NewSleepingStrategy(sleepFor time.Duration, maxSpins int) *SleepingStrategy {
	if sleepFor <= 0 {
		sleepFor = time.Microsecond
	}
	if maxSpins < 0 {
		maxSpins = 0
	}
	return &SleepingStrategy{sleepFor: sleepFor, maxSpins: maxSpins}
}

func (s *SleepingStrategy) Spin() {
	if s.spins < s.maxSpins {
		s.spins++
		return
	}
	time.Sleep(s.sleepFor)
}

func (s *SleepingStrategy) Reset() { s.spins = 0 }

func (s *SleepingStrategy) String() string { return "sleeping" }

func (s *SleepingStrategy) Fresh() SpinStrategy {
	return &SleepingStrategy{sleepFor: s.sleepFor, maxSpins: s.maxSpins}
}

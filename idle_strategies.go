// idle_strategies.go: public spin-strategy constructors
//
// Re-exports internal/slotstore's SpinStrategy family so callers can
// build WithWriterSpin/WithSearchSpin arguments without importing the
// internal package directly.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import (
	"time"

	"github.com/agilira/slotcache/internal/slotstore"
)

// SpinStrategy controls what a writer does between unsuccessful
// probes of the exclusion flag or a slot's reader count.
type SpinStrategy = slotstore.SpinStrategy

// NewSpinningStrategy creates a pure busy-wait strategy. This is the
// default used when no Option overrides it.
func NewSpinningStrategy() SpinStrategy {
	return slotstore.NewSpinningStrategy()
}

// NewYieldingStrategy creates a strategy that busy-spins for maxSpins
// attempts, then yields to the Go scheduler on every attempt after
// that. maxSpins <= 0 defaults to 64.
func NewYieldingStrategy(maxSpins int) SpinStrategy {
	return slotstore.NewYieldingStrategy(maxSpins)
}

// NewSleepingStrategy creates a strategy that spins maxSpins times
// then sleeps sleepFor before every subsequent attempt. Lowest CPU
// usage of the three; appropriate only when writer latency is not on
// a hot path.
func NewSleepingStrategy(sleepFor time.Duration, maxSpins int) SpinStrategy {
	return slotstore.NewSleepingStrategy(sleepFor, maxSpins)
}

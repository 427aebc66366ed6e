// config.go: declarative Cache configuration
//
// Grounded on calvinalkan-agent-task's config.go for the Config
// struct / DefaultConfig() shape (a plain struct with json tags,
// loaded independently of the functional Option type so a cache's
// shape can live in a file alongside the process's other settings).
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import "time"

// IdleStrategyKind names one of the built-in SpinStrategy
// implementations, for use in a declarative Config.
type IdleStrategyKind string

const (
	IdleStrategySpinning IdleStrategyKind = "spinning"
	IdleStrategyYielding IdleStrategyKind = "yielding"
	IdleStrategySleeping IdleStrategyKind = "sleeping"
)

// Config is the declarative, file-loadable counterpart to the
// functional Options. It describes a Cache's shape without
// referencing any value type, so it can be parsed from a JSONC file
// before the caller knows what T is.
type Config struct {
	// Slots is the slot count; must be a power of two, >= 2.
	Slots int `json:"slots"`

	// WriterIdleStrategy governs the exclusion-flag wait.
	WriterIdleStrategy IdleStrategyKind `json:"writer_idle_strategy,omitempty"`
	// SearchIdleStrategy governs the free-slot search.
	SearchIdleStrategy IdleStrategyKind `json:"search_idle_strategy,omitempty"`

	// MaxSpins bounds the busy-spin phase of the yielding and
	// sleeping strategies. Ignored by IdleStrategySpinning.
	MaxSpins int `json:"max_spins,omitempty"`
	// SleepFor is the sleep duration of IdleStrategySleeping, parsed
	// by time.ParseDuration (e.g. "50us", "1ms").
	SleepFor string `json:"sleep_for,omitempty"`
}

// DefaultConfig returns the configuration used when no config file is
// present: 4 slots and pure spinning on both waits.
func DefaultConfig() Config {
	return Config{
		Slots:              4,
		WriterIdleStrategy: IdleStrategySpinning,
		SearchIdleStrategy: IdleStrategySpinning,
	}
}

// Options translates a Config into the Option slice New accepts. It
// never sets WithLogger; attach logging separately.
func (c Config) Options() ([]Option, error) {
	writerSpin, err := c.buildStrategy(c.WriterIdleStrategy)
	if err != nil {
		return nil, err
	}
	searchSpin, err := c.buildStrategy(c.SearchIdleStrategy)
	if err != nil {
		return nil, err
	}
	return []Option{WithWriterSpin(writerSpin), WithSearchSpin(searchSpin)}, nil
}

func (c Config) buildStrategy(kind IdleStrategyKind) (SpinStrategy, error) {
	switch kind {
	case "", IdleStrategySpinning:
		return NewSpinningStrategy(), nil
	case IdleStrategyYielding:
		return NewYieldingStrategy(c.MaxSpins), nil
	case IdleStrategySleeping:
		sleepFor := time.Microsecond
		if c.SleepFor != "" {
			parsed, err := time.ParseDuration(c.SleepFor)
			if err != nil {
				return nil, wrapConstructionError(err, c.Slots)
			}
			sleepFor = parsed
		}
		return NewSleepingStrategy(sleepFor, c.MaxSpins), nil
	default:
		return nil, wrapConstructionError(ErrUnknownIdleStrategy, c.Slots)
	}
}

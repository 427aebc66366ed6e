// options_test.go: Tests for functional options
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigSpins(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "spinning", cfg.writerSpin.String())
	assert.Equal(t, "spinning", cfg.searchSpin.String())
	assert.Nil(t, cfg.logger)
}

func TestWithWriterSpinIgnoresNil(t *testing.T) {
	cfg := defaultConfig()
	WithWriterSpin(nil)(&cfg)
	assert.Equal(t, "spinning", cfg.writerSpin.String())
}

func TestWithSearchSpinOverrides(t *testing.T) {
	cfg := defaultConfig()
	WithSearchSpin(NewYieldingStrategy(8))(&cfg)
	assert.Equal(t, "yielding", cfg.searchSpin.String())
}

func TestWithLoggerAttaches(t *testing.T) {
	cfg := defaultConfig()
	logger := &recordingLogger{}
	WithLogger(logger)(&cfg)
	assert.Same(t, logger, cfg.logger)
}

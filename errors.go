// errors.go: Error handling for the slotcache construction path
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import (
	stderrors "errors"

	"github.com/agilira/go-errors"

	"github.com/agilira/slotcache/internal/slotstore"
)

// ErrUnknownIdleStrategy is returned when a Config names an
// IdleStrategyKind this package does not recognize.
var ErrUnknownIdleStrategy = stderrors.New("unknown idle strategy kind")

// Error codes for slotcache construction failures. Get and Update
// never fail at runtime; the only error surface is structural misuse
// at construction time.
const (
	ErrCodeInvalidSlotCount errors.ErrorCode = "SLOTCACHE_INVALID_SLOT_COUNT"
	ErrCodeTooFewSlots      errors.ErrorCode = "SLOTCACHE_TOO_FEW_SLOTS"
	ErrCodeInvalidConfig    errors.ErrorCode = "SLOTCACHE_INVALID_CONFIG"
)

// wrapConstructionError translates an internal slotstore sentinel
// error into a *errors.Error carrying a stable code and the
// requested slot count as context, mirroring iris's
// NewLoggerError helper.
func wrapConstructionError(err error, slots int) error {
	if err == nil {
		return nil
	}

	// slotstore.New returns its sentinels directly, unwrapped, so a
	// plain comparison is sufficient here.
	var code errors.ErrorCode
	switch err {
	case slotstore.ErrInvalidSlotCount:
		code = ErrCodeInvalidSlotCount
	case slotstore.ErrTooFewSlots:
		code = ErrCodeTooFewSlots
	default:
		code = ErrCodeInvalidConfig
	}

	return errors.Wrap(err, code, "invalid slotcache configuration").
		WithContext("component", "slotcache").
		WithContext("requested_slots", slots)
}

// errors.go: Error definitions for the internal slot store
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotstore

import "errors"

// Core errors for slot store construction. The public slotcache
// package wraps these into go-errors domain codes; see ../../errors.go.
var (
	// ErrInvalidSlotCount is returned when the slot count is not a
	// power of two.
	ErrInvalidSlotCount = errors.New("slot count must be a power of two")

	// ErrTooFewSlots is returned when the slot count leaves no
	// alternative slot for a writer to target.
	ErrTooFewSlots = errors.New("slot count must be at least 2")
)

// logger.go: optional diagnostic logging hook
//
// The cache never logs on the Get/Update hot path — matching this
// module's own internal/slotstore engine, which contains no logging
// calls at all. Logger is invoked only on cold paths: construction
// and Close. Grounded on zmux-server's services, which thread a
// *zap.Logger through cache-like components, and on iris's
// benchmarks/go.mod, which exercises go.uber.org/zap as a real
// dependency.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import "go.uber.org/zap"

// Logger is the minimal structured-logging surface a Cache accepts.
// *zap.SugaredLogger satisfies it directly.
type Logger interface {
	Infow(msg string, keysAndValues ...any)
}

// NewZapLogger adapts a *zap.Logger into the Logger interface
// expected by WithLogger.
func NewZapLogger(l *zap.Logger) Logger {
	return l.Sugar()
}

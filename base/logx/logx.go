// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger with a user-controlled
// verbosity level and colored level names on terminals that support it.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level are shown. The default is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] for the given user flag options:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so if both vv and q are
// specified the result is still [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger installs a [Handler] writing to stderr at [UserLevel]
// as the [slog] default logger.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

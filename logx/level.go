// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog configuration used by
// the chessground tools, with user-selectable verbosity.
package logx

import "log/slog"

// UserLevel is the lowest level the chessground handler prints.
// Builds with the debug tag start at [slog.LevelDebug], others at
// [slog.LevelWarn], so a plain run prints only problems.
var UserLevel = defaultUserLevel

// LevelFromFlags maps the -vv, -v and -q command line flags to a level.
// The noisiest flag given wins: -vv shows board build details,
// -v adds a line per rendered board, and -q keeps only errors.
// With no flags it returns the build's default level.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return defaultUserLevel
	}
}

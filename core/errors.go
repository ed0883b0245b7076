// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/errors.go
// Summary: Construction-error sentinels shared across the toolkit.

package core

import "errors"

var (
	// ErrTerminalTooSmall is returned when the terminal cannot host the
	// requested grid (fewer than three cells per row or column).
	ErrTerminalTooSmall = errors.New("terminal too small for grid")

	// ErrOutOfBounds is returned when a widget placement exceeds the grid.
	ErrOutOfBounds = errors.New("placement outside grid bounds")

	// ErrInvalidValue is returned for out-of-range initial values, such
	// as a slider start value outside [min, max].
	ErrInvalidValue = errors.New("invalid initial value")

	// ErrDuplicateField is returned when a form declares two fields with
	// the same key.
	ErrDuplicateField = errors.New("duplicate field key")

	// ErrNoDriver is returned when a controller is started without a
	// screen driver bound.
	ErrNoDriver = errors.New("no screen driver bound")
)

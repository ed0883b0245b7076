// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/border.go
// Summary: Border character sets and the process-wide default selection.

package core

// BorderSet holds the six characters used to frame widgets and popups.
type BorderSet struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// BorderSetASCII is the plain seven-bit framing set.
var BorderSetASCII = BorderSet{
	TopLeft:     '+',
	TopRight:    '+',
	BottomLeft:  '+',
	BottomRight: '+',
	Horizontal:  '-',
	Vertical:    '|',
}

// BorderSetRounded is the Unicode rounded framing set.
var BorderSetRounded = BorderSet{
	TopLeft:     '╭',
	TopRight:    '╮',
	BottomLeft:  '╰',
	BottomRight: '╯',
	Horizontal:  '─',
	Vertical:    '│',
}

var defaultBorders = BorderSetRounded

// SetBorderSet changes the set applied to all subsequent draws.
func SetBorderSet(b BorderSet) {
	defaultBorders = b
}

// Borders returns the active border set.
func Borders() BorderSet {
	return defaultBorders
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Color-pair registry. Pairs are small integer ids resolved to
// tcell styles through a cache, with a pre-registered base palette.

package theme

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// MaxPairs is the registration ceiling, matching common terminal
// pair-count limits.
const MaxPairs = 256

// Pair id 0 is reserved and never registered.
const ReservedPair = 0

var baseForegrounds = []tcell.Color{
	tcell.ColorBlack,
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorSilver,
}

var baseBackgrounds = []tcell.Color{
	tcell.ColorBlack,
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
}

// Base palette ids: 1 + fgIndex*len(baseBackgrounds) + bgIndex.
const (
	BlackOnBlack = 1 + iota
	BlackOnRed
	BlackOnGreen
	BlackOnYellow
	BlackOnBlue
	BlackOnMagenta
	BlackOnCyan
)

const (
	RedOnBlack     = 1 + 1*7
	GreenOnBlack   = 1 + 2*7
	YellowOnBlack  = 1 + 3*7
	BlueOnBlack    = 1 + 4*7
	MagentaOnBlack = 1 + 5*7
	CyanOnBlack    = 1 + 6*7
	WhiteOnBlack   = 1 + 7*7
)

type pairDef struct {
	fg, bg tcell.Color
}

type styleKey struct {
	pair            int
	bold, underline bool
	reverse         bool
}

var (
	mu         sync.RWMutex
	once       sync.Once
	pairs      map[int]pairDef
	styleCache map[styleKey]tcell.Style
	nextID     int
)

func initRegistry() {
	pairs = make(map[int]pairDef, MaxPairs)
	styleCache = make(map[styleKey]tcell.Style)
	id := 1
	for _, fg := range baseForegrounds {
		for _, bg := range baseBackgrounds {
			pairs[id] = pairDef{fg: fg, bg: bg}
			id++
		}
	}
	nextID = id
}

// RegisterPair adds a custom foreground/background combination and
// returns its id. Fails once MaxPairs registrations exist.
func RegisterPair(fg, bg tcell.Color) (int, error) {
	once.Do(initRegistry)
	mu.Lock()
	defer mu.Unlock()
	if nextID >= MaxPairs {
		return 0, fmt.Errorf("color pair limit %d reached", MaxPairs)
	}
	id := nextID
	pairs[id] = pairDef{fg: fg, bg: bg}
	nextID++
	return id, nil
}

// PairCount returns the number of registered pairs.
func PairCount() int {
	once.Do(initRegistry)
	mu.RLock()
	defer mu.RUnlock()
	return len(pairs)
}

// Colors returns the foreground and background of a pair. Unknown pairs
// (including the reserved id 0) fall back to the terminal defaults.
func Colors(pair int) (tcell.Color, tcell.Color) {
	once.Do(initRegistry)
	mu.RLock()
	defer mu.RUnlock()
	if def, ok := pairs[pair]; ok {
		return def.fg, def.bg
	}
	return tcell.ColorDefault, tcell.ColorDefault
}

// Style resolves a pair id to a tcell style.
func Style(pair int) tcell.Style {
	return StyleAttrs(pair, false, false, false)
}

// StyleAttrs resolves a pair id with attribute flags, caching the
// composed style per combination.
func StyleAttrs(pair int, bold, underline, reverse bool) tcell.Style {
	once.Do(initRegistry)
	key := styleKey{pair: pair, bold: bold, underline: underline, reverse: reverse}
	mu.RLock()
	st, ok := styleCache[key]
	mu.RUnlock()
	if ok {
		return st
	}

	mu.Lock()
	defer mu.Unlock()
	if st, ok := styleCache[key]; ok {
		return st
	}
	fg := tcell.ColorDefault
	bg := tcell.ColorDefault
	if def, ok := pairs[pair]; ok {
		fg, bg = def.fg, def.bg
	}
	st = tcell.StyleDefault.Foreground(fg).Background(bg)
	if bold {
		st = st.Bold(true)
	}
	if underline {
		st = st.Underline(true)
	}
	if reverse {
		st = st.Reverse(true)
	}
	styleCache[key] = st
	return st
}

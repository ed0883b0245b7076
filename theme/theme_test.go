// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBasePalette(t *testing.T) {
	if n := PairCount(); n < 56 {
		t.Fatalf("pair count = %d, want at least 56 base pairs", n)
	}
	fg, bg := Colors(WhiteOnBlack)
	if fg != tcell.ColorSilver || bg != tcell.ColorBlack {
		t.Errorf("WhiteOnBlack = (%v,%v), want (silver,black)", fg, bg)
	}
	fg, bg = Colors(RedOnBlack)
	if fg != tcell.ColorMaroon || bg != tcell.ColorBlack {
		t.Errorf("RedOnBlack = (%v,%v), want (maroon,black)", fg, bg)
	}
}

func TestReservedPairFallsBack(t *testing.T) {
	fg, bg := Colors(ReservedPair)
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("reserved pair = (%v,%v), want terminal defaults", fg, bg)
	}
}

func TestRegisterPair(t *testing.T) {
	id, err := RegisterPair(tcell.NewRGBColor(10, 20, 30), tcell.ColorBlack)
	if err != nil {
		t.Fatalf("RegisterPair: %v", err)
	}
	if id <= 56 {
		t.Errorf("custom pair id = %d, want above the base palette", id)
	}
	fg, _ := Colors(id)
	if fg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("fg = %v, want the registered RGB color", fg)
	}
}

func TestStyleAttrsCacheConsistency(t *testing.T) {
	a := StyleAttrs(GreenOnBlack, true, false, false)
	b := StyleAttrs(GreenOnBlack, true, false, false)
	if a != b {
		t.Error("repeated lookups should return the identical style")
	}
	plain := Style(GreenOnBlack)
	if plain == a {
		t.Error("bold style should differ from the plain style")
	}
	fg, bg, attrs := a.Decompose()
	if fg != tcell.ColorGreen || bg != tcell.ColorBlack {
		t.Errorf("style colors = (%v,%v), want (green,black)", fg, bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute missing")
	}
}

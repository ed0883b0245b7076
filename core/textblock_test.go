// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import "testing"

func linesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTextBlockNewlineSplitsInPlace(t *testing.T) {
	b := NewTextBlockState("Hello\nWorld", 20, 10)
	b.End() // cursor to end of "Hello"
	b.Newline()
	linesEqual(t, b.Lines(), []string{"Hello", "", "World"})
	if b.CursorX != 0 || b.CursorY != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", b.CursorX, b.CursorY)
	}
}

func TestTextBlockNewlineMidLine(t *testing.T) {
	b := NewTextBlockState("HelloWorld", 20, 10)
	b.SetCursor(5, 0)
	b.Newline()
	linesEqual(t, b.Lines(), []string{"Hello", "World"})
}

func TestTextBlockBackspaceJoinsAtColumnZero(t *testing.T) {
	b := NewTextBlockState("Hello\nWorld", 20, 10)
	b.SetCursor(0, 1)
	b.Backspace()
	linesEqual(t, b.Lines(), []string{"HelloWorld"})
	if b.CursorX != 5 || b.CursorY != 0 {
		t.Errorf("cursor = (%d,%d), want (5,0)", b.CursorX, b.CursorY)
	}
}

func TestTextBlockDeleteJoinsAtLineEnd(t *testing.T) {
	b := NewTextBlockState("Hello\nWorld", 20, 10)
	b.End()
	b.Delete()
	linesEqual(t, b.Lines(), []string{"HelloWorld"})
}

func TestTextBlockVerticalClamp(t *testing.T) {
	b := NewTextBlockState("a long line\nab", 20, 10)
	b.SetCursor(8, 0)
	b.MoveDown()
	if b.CursorX != 2 || b.CursorY != 1 {
		t.Errorf("cursor = (%d,%d), want (2,1)", b.CursorX, b.CursorY)
	}
	b.MoveDown() // already on last line
	if b.CursorY != 1 {
		t.Errorf("cursor y = %d, want 1", b.CursorY)
	}
}

func TestTextBlockHorizontalWrap(t *testing.T) {
	b := NewTextBlockState("ab\ncd", 20, 10)
	b.End()
	b.MoveRight()
	if b.CursorX != 0 || b.CursorY != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", b.CursorX, b.CursorY)
	}
	b.MoveLeft()
	if b.CursorX != 2 || b.CursorY != 0 {
		t.Errorf("cursor = (%d,%d), want (2,0)", b.CursorX, b.CursorY)
	}
}

func TestTextBlockViewportFollowsCursor(t *testing.T) {
	b := NewTextBlockState("one\ntwo\nthree\nfour\nfive", 20, 3)
	for i := 0; i < 4; i++ {
		b.MoveDown()
	}
	if b.OffY != 2 {
		t.Errorf("offY = %d, want 2", b.OffY)
	}
	linesEqual(t, b.VisibleLines(), []string{"three", "four", "five"})
	for i := 0; i < 4; i++ {
		b.MoveUp()
	}
	if b.OffY != 0 {
		t.Errorf("offY after return = %d, want 0", b.OffY)
	}
	cx, cy := b.ScreenCursor()
	if cx != 0 || cy != 0 {
		t.Errorf("screen cursor = (%d,%d), want (0,0)", cx, cy)
	}
}

func TestTextBlockHorizontalViewport(t *testing.T) {
	b := NewTextBlockState("abcdefghij", 5, 3)
	b.End()
	if b.OffX != 6 {
		t.Errorf("offX = %d, want 6", b.OffX)
	}
	b.Home()
	if b.OffX != 0 {
		t.Errorf("offX after Home = %d, want 0", b.OffX)
	}
}

func TestTextBlockRoundTrip(t *testing.T) {
	const text = "alpha\nbeta\n\ngamma"
	b := NewTextBlockState(text, 20, 10)
	if got := b.Text(); got != text {
		t.Errorf("Text() = %q, want %q", got, text)
	}
}

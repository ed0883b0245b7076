// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/textblock.go
// Summary: Multi-line text editing state: cursor addressing over a line
// list, line split/join, and independent vertical/horizontal viewport
// offsets.

package core

import "strings"

// TextBlockState edits an ordered list of lines viewed through a W×H
// window. (CursorX, CursorY) addresses a rune; the viewport offsets
// advance only when the cursor would leave the visible window and shrink
// back toward zero as it re-enters.
type TextBlockState struct {
	lines      []string
	CursorX    int
	CursorY    int
	OffX       int
	OffY       int
	viewWidth  int
	viewHeight int
}

// NewTextBlockState creates a block editor over the given initial text.
func NewTextBlockState(text string, viewWidth, viewHeight int) *TextBlockState {
	t := &TextBlockState{}
	t.SetViewSize(viewWidth, viewHeight)
	t.SetText(text)
	return t
}

// SetViewSize updates the viewport dimensions after a resize.
func (t *TextBlockState) SetViewSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	t.viewWidth = w
	t.viewHeight = h
	t.ensureVisible()
}

// SetText replaces the contents, splitting on newlines, and rewinds the
// cursor and viewport.
func (t *TextBlockState) SetText(text string) {
	t.lines = strings.Split(text, "\n")
	t.CursorX, t.CursorY = 0, 0
	t.OffX, t.OffY = 0, 0
}

// Text joins the lines back into a single newline-separated string.
func (t *TextBlockState) Text() string { return strings.Join(t.lines, "\n") }

// Lines returns the underlying line list.
func (t *TextBlockState) Lines() []string { return t.lines }

// LineCount returns the number of lines (at least one).
func (t *TextBlockState) LineCount() int { return len(t.lines) }

func (t *TextBlockState) currentLine() []rune { return []rune(t.lines[t.CursorY]) }

// clampCursor keeps the cursor on an existing line and within that
// line's length. Vertical movement onto a shorter line clamps x.
func (t *TextBlockState) clampCursor() {
	if t.CursorY < 0 {
		t.CursorY = 0
	}
	if t.CursorY >= len(t.lines) {
		t.CursorY = len(t.lines) - 1
	}
	if t.CursorX < 0 {
		t.CursorX = 0
	}
	if n := len(t.currentLine()); t.CursorX > n {
		t.CursorX = n
	}
}

// ensureVisible advances an offset only when the cursor left the window
// and pulls it back when the cursor re-entered above/left of it.
func (t *TextBlockState) ensureVisible() {
	if len(t.lines) == 0 {
		t.lines = []string{""}
	}
	if t.CursorX < t.OffX {
		t.OffX = t.CursorX
	}
	if t.CursorX >= t.OffX+t.viewWidth {
		t.OffX = t.CursorX - t.viewWidth + 1
	}
	if t.CursorY < t.OffY {
		t.OffY = t.CursorY
	}
	if t.CursorY >= t.OffY+t.viewHeight {
		t.OffY = t.CursorY - t.viewHeight + 1
	}
	if t.OffX < 0 {
		t.OffX = 0
	}
	if t.OffY < 0 {
		t.OffY = 0
	}
}

// SetCursor jumps the cursor to (x, y), clamping onto existing text.
func (t *TextBlockState) SetCursor(x, y int) {
	t.CursorX, t.CursorY = x, y
	t.clampCursor()
	t.ensureVisible()
}

// MoveUp moves the cursor one line up, preserving x when possible.
func (t *TextBlockState) MoveUp() {
	t.CursorY--
	t.clampCursor()
	t.ensureVisible()
}

// MoveDown moves the cursor one line down, preserving x when possible.
func (t *TextBlockState) MoveDown() {
	t.CursorY++
	t.clampCursor()
	t.ensureVisible()
}

// MoveLeft steps back one rune, wrapping to the previous line end.
func (t *TextBlockState) MoveLeft() {
	if t.CursorX > 0 {
		t.CursorX--
	} else if t.CursorY > 0 {
		t.CursorY--
		t.CursorX = len(t.currentLine())
	}
	t.ensureVisible()
}

// MoveRight steps forward one rune, wrapping to the next line start.
func (t *TextBlockState) MoveRight() {
	if t.CursorX < len(t.currentLine()) {
		t.CursorX++
	} else if t.CursorY < len(t.lines)-1 {
		t.CursorY++
		t.CursorX = 0
	}
	t.ensureVisible()
}

// Home jumps to the start of the current line. Offsets are recomputed
// directly, not walked incrementally.
func (t *TextBlockState) Home() {
	t.CursorX = 0
	t.OffX = 0
	t.ensureVisible()
}

// End jumps past the last rune of the current line.
func (t *TextBlockState) End() {
	t.CursorX = len(t.currentLine())
	t.ensureVisible()
}

// PageUp moves the cursor up one viewport height.
func (t *TextBlockState) PageUp() {
	t.CursorY -= t.viewHeight
	t.clampCursor()
	t.ensureVisible()
}

// PageDown moves the cursor down one viewport height.
func (t *TextBlockState) PageDown() {
	t.CursorY += t.viewHeight
	t.clampCursor()
	t.ensureVisible()
}

// InsertRune inserts r at the cursor and advances it.
func (t *TextBlockState) InsertRune(r rune) {
	line := t.currentLine()
	line = append(line[:t.CursorX], append([]rune{r}, line[t.CursorX:]...)...)
	t.lines[t.CursorY] = string(line)
	t.CursorX++
	t.ensureVisible()
}

// Newline splits the current line at the cursor into two lines inserted
// in place and moves the cursor to the start of the second.
func (t *TextBlockState) Newline() {
	line := t.currentLine()
	head := string(line[:t.CursorX])
	tail := string(line[t.CursorX:])
	t.lines[t.CursorY] = head
	t.lines = append(t.lines[:t.CursorY+1], append([]string{tail}, t.lines[t.CursorY+1:]...)...)
	t.CursorY++
	t.CursorX = 0
	t.ensureVisible()
}

// Backspace removes the rune before the cursor. At column zero of a
// non-first line it joins the current line onto the end of the previous
// one and removes the current line.
func (t *TextBlockState) Backspace() {
	if t.CursorX > 0 {
		line := t.currentLine()
		t.lines[t.CursorY] = string(append(line[:t.CursorX-1], line[t.CursorX:]...))
		t.CursorX--
	} else if t.CursorY > 0 {
		prev := []rune(t.lines[t.CursorY-1])
		t.CursorX = len(prev)
		t.lines[t.CursorY-1] = string(prev) + t.lines[t.CursorY]
		t.lines = append(t.lines[:t.CursorY], t.lines[t.CursorY+1:]...)
		t.CursorY--
	}
	t.ensureVisible()
}

// Delete removes the rune under the cursor. At end-of-line it joins the
// next line onto the current one.
func (t *TextBlockState) Delete() {
	line := t.currentLine()
	if t.CursorX < len(line) {
		t.lines[t.CursorY] = string(append(line[:t.CursorX], line[t.CursorX+1:]...))
	} else if t.CursorY < len(t.lines)-1 {
		t.lines[t.CursorY] = string(line) + t.lines[t.CursorY+1]
		t.lines = append(t.lines[:t.CursorY+1], t.lines[t.CursorY+2:]...)
	}
	t.ensureVisible()
}

// VisibleLines returns the slice of lines inside the vertical viewport.
func (t *TextBlockState) VisibleLines() []string {
	end := t.OffY + t.viewHeight
	if end > len(t.lines) {
		end = len(t.lines)
	}
	if t.OffY >= len(t.lines) {
		return nil
	}
	return t.lines[t.OffY:end]
}

// ScreenCursor returns the cursor position relative to the viewport
// origin.
func (t *TextBlockState) ScreenCursor() (int, int) {
	return t.CursorX - t.OffX, t.CursorY - t.OffY
}

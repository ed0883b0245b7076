// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/texteditor.go
// Summary: Single-line text editing state: cursor and horizontal
// viewport arithmetic shared by text boxes and form fields.

package core

// TextEditorState edits one line of text viewed through a fixed-width
// window. The cursor index always stays within [0, len(text)]. While the
// text fits the viewport the screen cursor tracks the text cursor; once
// it overflows, the screen position pins at the viewport edge and the
// text scrolls underneath.
type TextEditorState struct {
	text      []rune
	cursor    int
	viewWidth int
}

// NewTextEditorState creates an editor over the given initial text.
func NewTextEditorState(text string, viewWidth int) *TextEditorState {
	t := &TextEditorState{viewWidth: viewWidth}
	t.SetText(text)
	return t
}

// SetViewWidth updates the viewport width after a resize.
func (t *TextEditorState) SetViewWidth(w int) {
	if w < 1 {
		w = 1
	}
	t.viewWidth = w
}

// Text returns the current contents.
func (t *TextEditorState) Text() string { return string(t.text) }

// Len returns the text length in runes.
func (t *TextEditorState) Len() int { return len(t.text) }

// CursorIndex returns the cursor's rune index.
func (t *TextEditorState) CursorIndex() int { return t.cursor }

// SetText replaces the contents. A shorter replacement clamps the cursor
// down to the new length.
func (t *TextEditorState) SetText(s string) {
	t.text = []rune(s)
	if t.cursor > len(t.text) {
		t.cursor = len(t.text)
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// Clear empties the editor and rewinds the cursor.
func (t *TextEditorState) Clear() {
	t.text = t.text[:0]
	t.cursor = 0
}

// InsertRune inserts r at the cursor and advances it.
func (t *TextEditorState) InsertRune(r rune) {
	t.text = append(t.text[:t.cursor], append([]rune{r}, t.text[t.cursor:]...)...)
	t.cursor++
}

// Backspace removes the rune before the cursor, if any.
func (t *TextEditorState) Backspace() {
	if t.cursor == 0 {
		return
	}
	t.text = append(t.text[:t.cursor-1], t.text[t.cursor:]...)
	t.cursor--
}

// Delete removes the rune under the cursor, if any.
func (t *TextEditorState) Delete() {
	if t.cursor >= len(t.text) {
		return
	}
	t.text = append(t.text[:t.cursor], t.text[t.cursor+1:]...)
}

// MoveLeft steps the cursor back one rune, flooring at 0.
func (t *TextEditorState) MoveLeft() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// MoveRight steps the cursor forward one rune, ceiling at the text end.
func (t *TextEditorState) MoveRight() {
	if t.cursor < len(t.text) {
		t.cursor++
	}
}

// Home jumps to the start of the line.
func (t *TextEditorState) Home() { t.cursor = 0 }

// End jumps past the last rune.
func (t *TextEditorState) End() { t.cursor = len(t.text) }

// ViewOffset returns the index of the first visible rune. It is derived
// from the cursor position rather than tracked incrementally, so jumps
// (Home/End/SetText) need no special casing.
func (t *TextEditorState) ViewOffset() int {
	if t.cursor < t.viewWidth {
		return 0
	}
	return t.cursor - t.viewWidth + 1
}

// ScreenCursorX returns the cursor's x position relative to the viewport
// origin. It advances with the cursor until the text overflows, then
// pins at the last column.
func (t *TextEditorState) ScreenCursorX() int {
	return t.cursor - t.ViewOffset()
}

// VisibleText returns the slice of text shown in the viewport.
func (t *TextEditorState) VisibleText() string {
	off := t.ViewOffset()
	end := off + t.viewWidth
	if end > len(t.text) {
		end = len(t.text)
	}
	if off > len(t.text) {
		off = len(t.text)
	}
	return string(t.text[off:end])
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import "testing"

func TestTextEditorEditing(t *testing.T) {
	ed := NewTextEditorState("", 10)
	for _, r := range "helo" {
		ed.InsertRune(r)
	}
	ed.MoveLeft()
	ed.MoveLeft()
	ed.InsertRune('l')
	if got := ed.Text(); got != "hello" {
		t.Errorf("text = %q, want hello", got)
	}
	if ed.CursorIndex() != 3 {
		t.Errorf("cursor = %d, want 3", ed.CursorIndex())
	}
	ed.End()
	ed.Backspace()
	if got := ed.Text(); got != "hell" {
		t.Errorf("text = %q, want hell", got)
	}
	ed.Home()
	ed.Delete()
	if got := ed.Text(); got != "ell" {
		t.Errorf("text = %q, want ell", got)
	}
}

func TestTextEditorBoundaries(t *testing.T) {
	ed := NewTextEditorState("ab", 10)
	ed.Backspace() // cursor at 0, no-op
	if ed.Text() != "ab" {
		t.Errorf("text = %q, want ab", ed.Text())
	}
	ed.MoveLeft() // already at 0
	if ed.CursorIndex() != 0 {
		t.Errorf("cursor = %d, want 0", ed.CursorIndex())
	}
	ed.End()
	ed.Delete() // cursor past last rune, no-op
	if ed.Text() != "ab" {
		t.Errorf("text = %q, want ab", ed.Text())
	}
	ed.MoveRight() // already at end
	if ed.CursorIndex() != 2 {
		t.Errorf("cursor = %d, want 2", ed.CursorIndex())
	}
}

func TestTextEditorViewportPinsAtEdge(t *testing.T) {
	ed := NewTextEditorState("", 5)
	for _, r := range "abcdefgh" {
		ed.InsertRune(r)
	}
	if off := ed.ViewOffset(); off != 4 {
		t.Errorf("offset = %d, want 4", off)
	}
	if x := ed.ScreenCursorX(); x != 4 {
		t.Errorf("screen cursor = %d, want 4 (pinned)", x)
	}
	if got := ed.VisibleText(); got != "efgh" {
		t.Errorf("visible = %q, want efgh", got)
	}
	ed.Home()
	if off := ed.ViewOffset(); off != 0 {
		t.Errorf("offset after Home = %d, want 0", off)
	}
	if got := ed.VisibleText(); got != "abcde" {
		t.Errorf("visible after Home = %q, want abcde", got)
	}
}

func TestTextEditorSetTextClampsCursor(t *testing.T) {
	ed := NewTextEditorState("abcdef", 10)
	ed.End()
	ed.SetText("ab")
	if ed.CursorIndex() != 2 {
		t.Errorf("cursor = %d, want 2", ed.CursorIndex())
	}
	ed.Clear()
	if ed.Len() != 0 || ed.CursorIndex() != 0 {
		t.Errorf("after Clear: len=%d cursor=%d, want 0/0", ed.Len(), ed.CursorIndex())
	}
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/textbox.go
// Summary: Single-line text entry widget over core.TextEditorState.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// TextBox is a single-line editor bound to a grid cell.
type TextBox struct {
	Widget
	Editor *core.TextEditorState
	// PasswordMode masks the text with asterisks.
	PasswordMode bool
	// OnSubmit fires with the text when Enter is pressed.
	OnSubmit func(text string)
}

// NewTextBox creates a text box with initial text.
func NewTextBox(grid *core.Grid, title string, row, col, rowSpan, colSpan int, initial string) (*TextBox, error) {
	t := &TextBox{}
	if err := t.Init(grid, title, row, col, rowSpan, colSpan, 0, 0); err != nil {
		return nil, err
	}
	t.Editor = core.NewTextEditorState(initial, 1)
	t.SetSelectable(true)
	t.SetHelpText("Focus mode on TextBox. Type to edit, Esc to exit focus mode.")
	t.UpdateDimensions()
	return t, nil
}

// UpdateDimensions re-derives the rectangle and pushes the new viewport
// width into the editor.
func (t *TextBox) UpdateDimensions() {
	t.Widget.UpdateDimensions()
	if t.Editor != nil {
		w := t.InnerRect().W
		if w < 1 {
			w = 1
		}
		t.Editor.SetViewWidth(w)
	}
}

func (t *TextBox) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		t.Editor.MoveLeft()
	case tcell.KeyRight:
		t.Editor.MoveRight()
	case tcell.KeyHome:
		t.Editor.Home()
	case tcell.KeyEnd:
		t.Editor.End()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.Editor.Backspace()
	case tcell.KeyDelete:
		t.Editor.Delete()
	case tcell.KeyEnter:
		if t.OnSubmit != nil {
			t.OnSubmit(t.Editor.Text())
		}
	case tcell.KeyRune:
		t.Editor.InsertRune(ev.Rune())
	}
}

func (t *TextBox) HandleMouse(x, y int, ev *tcell.EventMouse) {
	inner := t.InnerRect()
	if ev.Buttons()&tcell.Button1 != 0 && inner.Contains(x, y) {
		idx := t.Editor.ViewOffset() + (x - inner.X)
		if idx > t.Editor.Len() {
			idx = t.Editor.Len()
		}
		for t.Editor.CursorIndex() < idx {
			t.Editor.MoveRight()
		}
		for t.Editor.CursorIndex() > idx {
			t.Editor.MoveLeft()
		}
	}
}

func (t *TextBox) Draw(p *core.Painter) {
	t.DrawFrame(p)
	style := t.Style()
	inner := t.InnerRect()
	text := t.Editor.VisibleText()
	if t.PasswordMode {
		masked := make([]rune, len([]rune(text)))
		for i := range masked {
			masked[i] = '*'
		}
		text = string(masked)
	}
	p.WithClip(inner).DrawText(inner.X, inner.Y, text, style)
}

// CursorPos returns the hardware-cursor position while selected.
func (t *TextBox) CursorPos() (int, int, bool) {
	if !t.Selected() {
		return 0, 0, false
	}
	inner := t.InnerRect()
	return inner.X + t.Editor.ScreenCursorX(), inner.Y, true
}

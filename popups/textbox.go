// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/textbox.go
// Summary: Single-line text entry popup.

package popups

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// TextBoxPopup prompts for one line of text. Enter submits, Escape
// cancels without firing the handler.
type TextBoxPopup struct {
	Popup
	Editor   *core.TextEditorState
	OnSubmit func(text string)
	// PasswordMode masks the entered text.
	PasswordMode bool
}

// NewTextBoxPopup creates a text entry popup with initial contents.
func NewTextBoxPopup(title, initial string, onSubmit func(string)) *TextBoxPopup {
	t := &TextBoxPopup{OnSubmit: onSubmit}
	t.Init(title, 60, 5)
	t.Editor = core.NewTextEditorState(initial, 56)
	t.SetHelpText("Type text, Enter to submit, Esc to cancel.")
	return t
}

// UpdateDimensions re-derives the rectangle and the editor's viewport.
func (t *TextBoxPopup) UpdateDimensions() {
	t.Popup.UpdateDimensions()
	if t.Editor != nil {
		w := t.Rect().Inset(2, 1).W
		if w < 1 {
			w = 1
		}
		t.Editor.SetViewWidth(w)
	}
}

func (t *TextBoxPopup) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		t.Close()
	case tcell.KeyEnter:
		if t.OnSubmit != nil {
			t.OnSubmit(t.Editor.Text())
		}
		t.Close()
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
	case tcell.KeyRune:
		t.Editor.InsertRune(ev.Rune())
	}
}

func (t *TextBoxPopup) Draw(p *core.Painter) {
	t.DrawFrame(p)
	style := t.Style()
	inner := t.Rect().Inset(2, 1)
	text := t.Editor.VisibleText()
	if t.PasswordMode {
		masked := make([]rune, len([]rune(text)))
		for i := range masked {
			masked[i] = '*'
		}
		text = string(masked)
	}
	p.WithClip(inner).DrawText(inner.X, inner.Y+inner.H/2, text, style)
}

// CursorPos returns the hardware-cursor position inside the popup.
func (t *TextBoxPopup) CursorPos() (int, int, bool) {
	inner := t.Rect().Inset(2, 1)
	return inner.X + t.Editor.ScreenCursorX(), inner.Y + inner.H/2, true
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/message.go
// Summary: Message and warning popups dismissed by any confirm key.

package popups

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

// MessagePopup shows a wrapped text message until dismissed with Enter,
// Escape or Space.
type MessagePopup struct {
	Popup
	message string
}

// NewMessagePopup creates a message popup.
func NewMessagePopup(title, message string) *MessagePopup {
	m := &MessagePopup{message: message}
	m.Init(title, 60, 8)
	m.SetHelpText("Press Enter or Esc to dismiss.")
	return m
}

// NewWarningPopup creates a message popup pre-colored for errors.
func NewWarningPopup(title, message string) *MessagePopup {
	m := NewMessagePopup(title, message)
	m.Color = theme.RedOnBlack
	m.SelectedColor = theme.RedOnBlack
	return m
}

// Message returns the display text.
func (m *MessagePopup) Message() string { return m.message }

func (m *MessagePopup) HandleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyEscape, ev.Rune() == ' ':
		m.Close()
	}
}

func (m *MessagePopup) HandleMouse(x, y int, ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 != 0 {
		m.Close()
	}
}

func (m *MessagePopup) Draw(p *core.Painter) {
	m.DrawFrame(p)
	style := m.Style()
	inner := m.Rect().Inset(2, 1)
	cp := p.WithClip(inner)
	for i, line := range wrapText(m.message, inner.W) {
		if i >= inner.H {
			break
		}
		cp.DrawText(inner.X, inner.Y+i, line, style)
	}
}

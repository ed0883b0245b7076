// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/button.go
// Summary: Push-button widget firing a callback on Enter, Space or click.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

// Button fires its command when activated. Buttons carry the
// click-activation capability, so the controller invokes the command on
// a mouse press even when the button is not the focused element.
type Button struct {
	Widget
	Command func()
}

// NewButton creates a button spanning the given cells.
func NewButton(grid *core.Grid, title string, row, col, rowSpan, colSpan int, command func()) (*Button, error) {
	b := &Button{Command: command}
	if err := b.Init(grid, title, row, col, rowSpan, colSpan, 0, 0); err != nil {
		return nil, err
	}
	b.SetSelectable(true)
	b.SelectedColor = theme.CyanOnBlack
	b.SetHelpText("Focus mode on Button. Press Enter to press button. Esc to exit focus mode.")
	return b, nil
}

// ActivatesOnClick marks the button for immediate mouse activation.
func (b *Button) ActivatesOnClick() bool { return true }

func (b *Button) Draw(p *core.Painter) {
	style := b.Style()
	r := b.Rect()
	p.Fill(r, ' ', style)
	p.DrawBorder(r, "", style)
	text := b.Title()
	tw := runewidth.StringWidth(text)
	x := r.X + (r.W-tw)/2
	if x <= r.X {
		x = r.X + 1
	}
	p.DrawTextWidth(x, r.Y+r.H/2, text, r.W-2, style)
}

func (b *Button) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter || ev.Rune() == ' ' {
		b.Press()
	}
}

func (b *Button) HandleMouse(x, y int, ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 != 0 && b.Rect().Contains(x, y) {
		b.Press()
	}
}

// Press invokes the command, if any.
func (b *Button) Press() {
	if b.Command != nil {
		b.Command()
	}
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/textblock.go
// Summary: Multi-line text editor widget over core.TextBlockState, with
// optional color-rule rendering.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/colorize"
	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

// TextBlock is a multi-line editor bound to a grid cell. When Rules are
// set, visible lines are split into colored fragments; the widget's own
// pair applies to inherited fragments.
type TextBlock struct {
	Widget
	Block *core.TextBlockState
	Rules []colorize.Rule
}

// NewTextBlock creates a block editor with initial text.
func NewTextBlock(grid *core.Grid, title string, row, col, rowSpan, colSpan int, initial string) (*TextBlock, error) {
	t := &TextBlock{}
	if err := t.Init(grid, title, row, col, rowSpan, colSpan, 0, 0); err != nil {
		return nil, err
	}
	t.Block = core.NewTextBlockState(initial, 1, 1)
	t.SetSelectable(true)
	t.SetHelpText("Focus mode on TextBlock. Type to edit, arrows to move, Esc to exit focus mode.")
	t.UpdateDimensions()
	return t, nil
}

// UpdateDimensions re-derives the rectangle and pushes the new viewport
// size into the block state.
func (t *TextBlock) UpdateDimensions() {
	t.Widget.UpdateDimensions()
	if t.Block != nil {
		inner := t.InnerRect()
		w, h := inner.W, inner.H
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		t.Block.SetViewSize(w, h)
	}
}

func (t *TextBlock) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		t.Block.MoveUp()
	case tcell.KeyDown:
		t.Block.MoveDown()
	case tcell.KeyLeft:
		t.Block.MoveLeft()
	case tcell.KeyRight:
		t.Block.MoveRight()
	case tcell.KeyHome:
		t.Block.Home()
	case tcell.KeyEnd:
		t.Block.End()
	case tcell.KeyPgUp:
		t.Block.PageUp()
	case tcell.KeyPgDn:
		t.Block.PageDown()
	case tcell.KeyEnter:
		t.Block.Newline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.Block.Backspace()
	case tcell.KeyDelete:
		t.Block.Delete()
	case tcell.KeyTab:
		for i := 0; i < 4; i++ {
			t.Block.InsertRune(' ')
		}
	case tcell.KeyRune:
		t.Block.InsertRune(ev.Rune())
	}
}

func (t *TextBlock) HandleMouse(x, y int, ev *tcell.EventMouse) {
	inner := t.InnerRect()
	btn := ev.Buttons()
	if btn&tcell.WheelUp != 0 {
		t.Block.MoveUp()
		return
	}
	if btn&tcell.WheelDown != 0 {
		t.Block.MoveDown()
		return
	}
	if btn&tcell.Button1 != 0 && inner.Contains(x, y) {
		t.Block.SetCursor(t.Block.OffX+(x-inner.X), t.Block.OffY+(y-inner.Y))
	}
}

func (t *TextBlock) Draw(p *core.Painter) {
	t.DrawFrame(p)
	style := t.Style()
	inner := t.InnerRect()
	cp := p.WithClip(inner)
	for i, line := range t.Block.VisibleLines() {
		runes := []rune(line)
		if t.Block.OffX >= len(runes) {
			continue
		}
		visible := string(runes[t.Block.OffX:])
		if len(t.Rules) == 0 {
			cp.DrawTextWidth(inner.X, inner.Y+i, visible, inner.W, style)
			continue
		}
		x := inner.X
		for _, frag := range colorize.ApplyAll(t.Rules, visible) {
			fragStyle := style
			if frag.Pair > 0 {
				fragStyle = theme.StyleAttrs(frag.Pair, frag.Bold, false, false)
			}
			x = cp.DrawText(x, inner.Y+i, frag.Text, fragStyle)
			if x >= inner.X+inner.W {
				break
			}
		}
	}
}

// ConsumesTab keeps Tab as an editing key (indent) instead of a focus
// cycle while this widget holds the focus.
func (t *TextBlock) ConsumesTab() bool { return true }

// CursorPos returns the hardware-cursor position while selected.
func (t *TextBlock) CursorPos() (int, int, bool) {
	if !t.Selected() {
		return 0, 0, false
	}
	inner := t.InnerRect()
	cx, cy := t.Block.ScreenCursor()
	return inner.X + cx, inner.Y + cy, true
}

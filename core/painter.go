// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/painter.go
// Summary: Clipped drawing helper over a ScreenDriver. All widget and
// popup draw routines go through a Painter.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws characters through a ScreenDriver, confined to a clip
// rectangle. Writes outside the clip are dropped rather than failing, so
// a draw pass can never crash the render loop.
type Painter struct {
	drv  ScreenDriver
	clip Rect
}

// NewPainter creates a painter clipped to the given rectangle.
func NewPainter(drv ScreenDriver, clip Rect) *Painter {
	return &Painter{drv: drv, clip: clip}
}

// Clip returns the painter's clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// WithClip returns a painter for the same driver restricted to the
// intersection of the current clip and r.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{drv: p.drv, clip: p.clip.Intersect(r)}
}

// SetCell writes one rune if (x, y) is inside the clip.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.drv.SetContent(x, y, ch, nil, style)
}

// Fill covers the intersection of r and the clip with ch.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	r = r.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.drv.SetContent(x, y, ch, nil, style)
		}
	}
}

// DrawText writes a string starting at (x, y), advancing by display
// width so wide runes occupy two cells. Returns the x position after the
// last rune drawn. Text never wraps; it clips at the edge.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		// A wide rune that would straddle the clip edge degrades to a space.
		if w == 2 && x+1 >= p.clip.X+p.clip.W && p.clip.Contains(x, y) {
			p.drv.SetContent(x, y, ' ', nil, style)
			return x + 1
		}
		p.SetCell(x, y, r, style)
		x += w
		if x >= p.clip.X+p.clip.W {
			break
		}
	}
	return x
}

// DrawTextWidth writes text truncated to at most maxWidth display cells,
// appending an ellipsis when truncated.
func (p *Painter) DrawTextWidth(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return x
	}
	if runewidth.StringWidth(text) > maxWidth {
		text = runewidth.Truncate(text, maxWidth, "…")
	}
	return p.DrawText(x, y, text, style)
}

// DrawHLine draws a horizontal run of the active border set's horizontal
// character.
func (p *Painter) DrawHLine(x, y, w int, style tcell.Style) {
	b := Borders()
	for i := 0; i < w; i++ {
		p.SetCell(x+i, y, b.Horizontal, style)
	}
}

// DrawVLine draws a vertical run of the active border set's vertical
// character.
func (p *Painter) DrawVLine(x, y, h int, style tcell.Style) {
	b := Borders()
	for i := 0; i < h; i++ {
		p.SetCell(x, y+i, b.Vertical, style)
	}
}

// DrawBorder frames r with the active border set. A non-empty title is
// embedded into the top edge, truncated to fit.
func (p *Painter) DrawBorder(r Rect, title string, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	b := Borders()
	x1 := r.X + r.W - 1
	y1 := r.Y + r.H - 1

	p.SetCell(r.X, r.Y, b.TopLeft, style)
	p.SetCell(x1, r.Y, b.TopRight, style)
	p.SetCell(r.X, y1, b.BottomLeft, style)
	p.SetCell(x1, y1, b.BottomRight, style)
	p.DrawHLine(r.X+1, r.Y, r.W-2, style)
	p.DrawHLine(r.X+1, y1, r.W-2, style)
	p.DrawVLine(r.X, r.Y+1, r.H-2, style)
	p.DrawVLine(x1, r.Y+1, r.H-2, style)

	if title != "" && r.W > 6 {
		label := " " + title + " "
		maxW := r.W - 4
		if runewidth.StringWidth(label) > maxW {
			label = runewidth.Truncate(label, maxW, "… ")
		}
		p.DrawText(r.X+2, r.Y, label, style)
	}
}

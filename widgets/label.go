// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/label.go
// Summary: Static text widget. Not selectable.

package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/tessera/core"
)

// Label shows its title centered in its cell. Labels never take focus.
type Label struct {
	Widget
	// DrawBorder frames the label when set; plain labels draw text only.
	WithBorder bool
}

// NewLabel creates a label spanning the given cells.
func NewLabel(grid *core.Grid, title string, row, col, rowSpan, colSpan int) (*Label, error) {
	l := &Label{}
	if err := l.Init(grid, title, row, col, rowSpan, colSpan, 0, 0); err != nil {
		return nil, err
	}
	l.SetSelectable(false)
	return l, nil
}

func (l *Label) Draw(p *core.Painter) {
	style := l.Style()
	r := l.Rect()
	p.Fill(r, ' ', style)
	if l.WithBorder {
		p.DrawBorder(r, "", style)
	}
	text := l.Title()
	tw := runewidth.StringWidth(text)
	x := r.X + (r.W-tw)/2
	if x < r.X {
		x = r.X
	}
	y := r.Y + r.H/2
	p.DrawTextWidth(x, y, text, r.W, style)
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/widget.go
// Summary: Grid-bound widget base: placement validation and absolute
// position resolution through the owning grid.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

// Widget is the base for every element bound to a grid cell. It resolves
// its absolute rectangle through the owning grid, so a grid resize
// followed by UpdateDimensions is all a terminal resize requires.
type Widget struct {
	core.BaseElement
	grid    *core.Grid
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

type gridResolver struct {
	w *Widget
}

func (r gridResolver) StartPos() (int, int) {
	cell := r.w.grid.CellRect(r.w.Row, r.w.Col, r.w.RowSpan, r.w.ColSpan)
	return cell.X, cell.Y
}

func (r gridResolver) StopPos() (int, int) {
	cell := r.w.grid.CellRect(r.w.Row, r.w.Col, r.w.RowSpan, r.w.ColSpan)
	return cell.X + cell.W, cell.Y + cell.H
}

// Init validates the placement and binds the widget to its grid. An
// out-of-bounds placement is a construction error, never deferred to
// draw time.
func (w *Widget) Init(grid *core.Grid, title string, row, col, rowSpan, colSpan, padX, padY int) error {
	if err := grid.CheckBounds(row, col, rowSpan, colSpan); err != nil {
		return err
	}
	w.grid = grid
	w.Row, w.Col, w.RowSpan, w.ColSpan = row, col, rowSpan, colSpan
	w.PadX, w.PadY = padX, padY
	w.SetTitle(title)
	w.Color = theme.WhiteOnBlack
	w.SelectedColor = theme.GreenOnBlack
	w.SetResolver(gridResolver{w: w})
	w.UpdateDimensions()
	return nil
}

// Grid returns the owning grid (shared, not owned by the widget).
func (w *Widget) Grid() *core.Grid { return w.grid }

// Placement returns the grid coordinates and spans of this widget.
func (w *Widget) Placement() (row, col, rowSpan, colSpan int) {
	return w.Row, w.Col, w.RowSpan, w.ColSpan
}

// Style resolves the widget's active color pair.
func (w *Widget) Style() tcell.Style {
	return theme.Style(w.ActivePair())
}

// DrawFrame paints the widget's border and title in the active pair.
func (w *Widget) DrawFrame(p *core.Painter) {
	style := w.Style()
	p.Fill(w.Rect(), ' ', style)
	p.DrawBorder(w.Rect(), w.Title(), style)
}

// CursorPositioner is implemented by widgets that place the hardware
// cursor while selected (text boxes and text blocks).
type CursorPositioner interface {
	CursorPos() (int, int, bool)
}

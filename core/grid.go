// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/grid.go
// Summary: Row/column layout manager mapping logical cells to terminal
// character rectangles.

package core

import "fmt"

// Grid partitions a terminal area into rows×cols cells. Integer division
// leaves remainder characters; those are absorbed by cells touching the
// last row or column so the grid exactly tiles the terminal.
type Grid struct {
	rows, cols     int
	height, width  int
	rowHeight      int
	colWidth       int
	offsetX        int // width mod cols
	offsetY        int // height mod rows
	titleBarOffset int // 0 or 1
}

// NewGrid builds a grid over a height×width character area. Every cell
// must be at least three characters tall and wide.
func NewGrid(rows, cols, height, width int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrInvalidValue)
	}
	g := &Grid{rows: rows, cols: cols}
	if err := g.Resize(height, width); err != nil {
		return nil, err
	}
	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Height returns the terminal height the grid currently covers.
func (g *Grid) Height() int { return g.height }

// Width returns the terminal width the grid currently covers.
func (g *Grid) Width() int { return g.width }

// CellDimensions returns the (rowHeight, colWidth) of a single cell.
func (g *Grid) CellDimensions() (int, int) { return g.rowHeight, g.colWidth }

// Offsets returns the remainder characters (offsetY, offsetX) left over
// by integer division, absorbed by the last row and column.
func (g *Grid) Offsets() (int, int) { return g.offsetY, g.offsetX }

// SetTitleBarOffset shifts every cell down by one row when a title bar
// occupies the top line of the grid area.
func (g *Grid) SetTitleBarOffset(on bool) {
	if on {
		g.titleBarOffset = 1
	} else {
		g.titleBarOffset = 0
	}
}

// TitleBarOffset returns the current vertical shift (0 or 1).
func (g *Grid) TitleBarOffset() int { return g.titleBarOffset }

// Resize recomputes cell dimensions for a new terminal size. On failure
// the grid keeps its previous dimensions.
func (g *Grid) Resize(height, width int) error {
	if 3*g.rows >= height || 3*g.cols >= width {
		return fmt.Errorf("grid %dx%d in %dx%d: %w", g.rows, g.cols, height, width, ErrTerminalTooSmall)
	}
	g.height = height
	g.width = width
	g.rowHeight = height / g.rows
	g.colWidth = width / g.cols
	g.offsetY = height % g.rows
	g.offsetX = width % g.cols
	return nil
}

// CellRect resolves a (row, col, rowSpan, colSpan) placement to an
// absolute character rectangle. Cells whose far edge coincides with the
// grid's far edge absorb the remainder so the last row and column always
// reach the true terminal boundary.
func (g *Grid) CellRect(row, col, rowSpan, colSpan int) Rect {
	x := col * g.colWidth
	y := row*g.rowHeight + g.titleBarOffset
	w := colSpan * g.colWidth
	h := rowSpan * g.rowHeight
	if col+colSpan == g.cols {
		w += g.offsetX
	}
	if row+rowSpan == g.rows {
		h += g.offsetY
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// CheckBounds validates a placement against the grid extents.
func (g *Grid) CheckBounds(row, col, rowSpan, colSpan int) error {
	if row < 0 || col < 0 || rowSpan < 1 || colSpan < 1 {
		return fmt.Errorf("placement (%d,%d) span (%d,%d): %w", row, col, rowSpan, colSpan, ErrInvalidValue)
	}
	if row+rowSpan > g.rows || col+colSpan > g.cols {
		return fmt.Errorf("placement (%d,%d) span (%d,%d) in %dx%d grid: %w",
			row, col, rowSpan, colSpan, g.rows, g.cols, ErrOutOfBounds)
	}
	return nil
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/rect.go
// Summary: Integer rectangle primitive shared by the grid, elements and painter.

package core

// Rect is an axis-aligned rectangle in terminal character coordinates.
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a rectangle, clamping negative dimensions to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Intersect returns the overlapping region of two rectangles, or an
// empty rectangle when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks the rectangle by dx columns on each side and dy rows on
// top and bottom. Over-insetting collapses to an empty rectangle.
func (r Rect) Inset(dx, dy int) Rect {
	return NewRect(r.X+dx, r.Y+dy, r.W-2*dx, r.H-2*dy)
}

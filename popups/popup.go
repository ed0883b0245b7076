// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/popup.go
// Summary: Base for modal popups: terminal-proportional centering, close
// signalling, and the parent-relative resolver for popup sub-fields.

package popups

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

// TerminalSizer provides the current terminal dimensions. The Root
// controller implements it and binds itself when a popup opens.
type TerminalSizer interface {
	TerminalSize() (int, int)
}

// Popup is the base for modal elements centered over the whole screen.
// Exactly one popup is active at a time; it owns all input while open
// and signals its own dismissal through Close.
type Popup struct {
	core.BaseElement
	sizer  TerminalSizer
	width  int // desired outer width
	height int // desired outer height
	closed bool
}

type centeredResolver struct {
	p *Popup
}

func (r centeredResolver) StartPos() (int, int) {
	tw, th := 80, 24
	if r.p.sizer != nil {
		tw, th = r.p.sizer.TerminalSize()
	}
	w, h := r.p.clampedSize(tw, th)
	return (tw - w) / 2, (th - h) / 2
}

func (r centeredResolver) StopPos() (int, int) {
	x, y := r.StartPos()
	tw, th := 80, 24
	if r.p.sizer != nil {
		tw, th = r.p.sizer.TerminalSize()
	}
	w, h := r.p.clampedSize(tw, th)
	return x + w, y + h
}

func (p *Popup) clampedSize(tw, th int) (int, int) {
	w, h := p.width, p.height
	if w > tw-2 {
		w = tw - 2
	}
	if h > th-2 {
		h = th - 2
	}
	if w < 4 {
		w = 4
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

// Init sets up the base popup with a desired outer size.
func (p *Popup) Init(title string, width, height int) {
	p.SetTitle(title)
	p.width = width
	p.height = height
	p.Color = theme.WhiteOnBlack
	p.SelectedColor = theme.WhiteOnBlack
	p.SetResolver(centeredResolver{p: p})
}

// Bind attaches the terminal sizer and recomputes dimensions. Called by
// the controller when the popup is shown.
func (p *Popup) Bind(sizer TerminalSizer) {
	p.sizer = sizer
	p.UpdateDimensions()
}

// Close marks the popup for dismissal; the controller removes it after
// the current dispatch.
func (p *Popup) Close() { p.closed = true }

// Closed reports whether the popup asked to be dismissed.
func (p *Popup) Closed() bool { return p.closed }

// IgnoresInput reports whether key input should be discarded while this
// popup is open. Loading popups override this.
func (p *Popup) IgnoresInput() bool { return false }

// Style resolves the popup's color pair.
func (p *Popup) Style() tcell.Style { return theme.Style(p.ActivePair()) }

// DrawFrame fills and frames the popup rectangle.
func (p *Popup) DrawFrame(painter *core.Painter) {
	style := p.Style()
	painter.Fill(p.Rect(), ' ', style)
	painter.DrawBorder(p.Rect(), p.Title(), style)
}

// fieldResolver positions popup sub-fields (form fields, dialog
// buttons) relative to their parent popup's rectangle.
type fieldResolver struct {
	parent *Popup
	dx, dy int
	w, h   int
}

func (r fieldResolver) StartPos() (int, int) {
	pr := r.parent.Rect()
	return pr.X + r.dx, pr.Y + r.dy
}

func (r fieldResolver) StopPos() (int, int) {
	x, y := r.StartPos()
	return x + r.w, y + r.h
}

// wrapText greedily wraps text into lines of at most width runes.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range splitLines(text) {
		runes := []rune(para)
		for len(runes) > width {
			cut := width
			for i := width; i > 0; i-- {
				if runes[i-1] == ' ' {
					cut = i
					break
				}
			}
			lines = append(lines, string(runes[:cut]))
			runes = runes[cut:]
		}
		lines = append(lines, string(runes))
	}
	return lines
}

func splitLines(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '\n' {
			out = append(out, text[start:i])
			start = i + 1
		}
	}
	return append(out, text[start:])
}

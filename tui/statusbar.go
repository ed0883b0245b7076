// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/statusbar.go
// Summary: Title and status bars framing the widget grid.

package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

const defaultStatusText = "Arrows to move, Enter to focus, Tab to cycle, Ctrl-Q to quit."

// drawTitleBar paints the application title centered on the top row.
func drawTitleBar(p *core.Painter, width int, title string) {
	style := theme.StyleAttrs(theme.WhiteOnBlack, false, false, true)
	bar := core.NewRect(0, 0, width, 1)
	p.Fill(bar, ' ', style)
	x := (width - runewidth.StringWidth(title)) / 2
	if x < 0 {
		x = 0
	}
	p.WithClip(bar).DrawTextWidth(x, 0, title, width, style.Bold(true))
}

// drawStatusBar paints contextual help on the bottom row.
func drawStatusBar(p *core.Painter, width, height int, text string) {
	if text == "" {
		text = defaultStatusText
	}
	style := theme.StyleAttrs(theme.WhiteOnBlack, false, false, true)
	bar := core.NewRect(0, height-1, width, 1)
	p.Fill(bar, ' ', style)
	p.WithClip(bar).DrawTextWidth(1, height-1, text, width-2, style)
}

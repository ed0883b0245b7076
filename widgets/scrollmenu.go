// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/scrollmenu.go
// Summary: Scrollable single-select menu widget over core.ListState.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// ScrollMenu shows a scrollable list of items with one selection.
type ScrollMenu struct {
	Widget
	List *core.ListState
	// OnSelect fires with the selected item when Enter is pressed.
	OnSelect func(item string)
}

// NewScrollMenu creates an empty menu spanning the given cells.
func NewScrollMenu(grid *core.Grid, title string, row, col, rowSpan, colSpan int) (*ScrollMenu, error) {
	m := &ScrollMenu{List: core.NewListState()}
	if err := m.Init(grid, title, row, col, rowSpan, colSpan, 0, 0); err != nil {
		return nil, err
	}
	m.SetSelectable(true)
	m.SetHelpText("Focus mode on ScrollMenu. Use up/down to scroll, Enter to select, Esc to exit focus mode.")
	return m, nil
}

// viewportHeight is the number of item rows inside border and padding.
func (m *ScrollMenu) viewportHeight() int {
	h := m.InnerRect().H
	if h < 1 {
		h = 1
	}
	return h
}

func (m *ScrollMenu) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		m.List.ScrollUp()
	case tcell.KeyDown:
		m.List.ScrollDown(m.viewportHeight())
	case tcell.KeyHome:
		m.List.SetSelectedIndex(0, m.viewportHeight())
	case tcell.KeyEnd:
		m.List.SetSelectedIndex(m.List.Len()-1, m.viewportHeight())
	case tcell.KeyPgUp:
		for i := 0; i < m.viewportHeight(); i++ {
			m.List.ScrollUp()
		}
	case tcell.KeyPgDn:
		for i := 0; i < m.viewportHeight(); i++ {
			m.List.ScrollDown(m.viewportHeight())
		}
	case tcell.KeyEnter:
		if item, ok := m.List.Get(); ok && m.OnSelect != nil {
			m.OnSelect(item)
		}
	}
}

func (m *ScrollMenu) HandleMouse(x, y int, ev *tcell.EventMouse) {
	inner := m.InnerRect()
	btn := ev.Buttons()
	if btn&tcell.WheelUp != 0 {
		m.List.ScrollUp()
		return
	}
	if btn&tcell.WheelDown != 0 {
		m.List.ScrollDown(m.viewportHeight())
		return
	}
	if btn&tcell.Button1 != 0 && inner.Contains(x, y) {
		idx := m.List.TopIndex() + (y - inner.Y)
		if idx < m.List.Len() {
			m.List.SetSelectedIndex(idx, m.viewportHeight())
		}
	}
}

func (m *ScrollMenu) Draw(p *core.Painter) {
	m.DrawFrame(p)
	style := m.Style()
	inner := m.InnerRect()
	cp := p.WithClip(inner)
	for i, item := range m.List.VisibleItems(m.viewportHeight()) {
		lineStyle := style
		if m.List.TopIndex()+i == m.List.SelectedIndex() && m.Selected() {
			lineStyle = style.Reverse(true)
		}
		cp.DrawTextWidth(inner.X, inner.Y+i, item, inner.W, lineStyle)
	}
}

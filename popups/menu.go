// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/menu.go
// Summary: Scrollable selection popup.

package popups

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// MenuPopup offers a scrollable list of choices. Enter fires the handler
// with the selected item and closes; Escape cancels.
type MenuPopup struct {
	Popup
	List     *core.ListState
	OnSelect func(item string)
}

// NewMenuPopup creates a menu popup over the given items.
func NewMenuPopup(title string, items []string, onSelect func(string)) *MenuPopup {
	m := &MenuPopup{List: core.NewListState(), OnSelect: onSelect}
	m.List.AddItemList(items)
	h := len(items) + 4
	if h > 20 {
		h = 20
	}
	m.Init(title, 50, h)
	m.SetHelpText("Use up/down to scroll, Enter to select, Esc to cancel.")
	return m
}

func (m *MenuPopup) viewportHeight() int {
	h := m.Rect().Inset(2, 1).H
	if h < 1 {
		h = 1
	}
	return h
}

func (m *MenuPopup) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.Close()
	case tcell.KeyUp:
		m.List.ScrollUp()
	case tcell.KeyDown:
		m.List.ScrollDown(m.viewportHeight())
	case tcell.KeyEnter:
		if item, ok := m.List.Get(); ok && m.OnSelect != nil {
			m.OnSelect(item)
		}
		m.Close()
	}
}

func (m *MenuPopup) HandleMouse(x, y int, ev *tcell.EventMouse) {
	inner := m.Rect().Inset(2, 1)
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

func (m *MenuPopup) Draw(p *core.Painter) {
	m.DrawFrame(p)
	style := m.Style()
	inner := m.Rect().Inset(2, 1)
	cp := p.WithClip(inner)
	for i, item := range m.List.VisibleItems(m.viewportHeight()) {
		lineStyle := style
		if m.List.TopIndex()+i == m.List.SelectedIndex() {
			lineStyle = style.Reverse(true)
		}
		cp.DrawTextWidth(inner.X, inner.Y+i, item, inner.W, lineStyle)
	}
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/checkboxmenu.go
// Summary: Multi-select menu widget: ListState plus a checked set.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// CheckBoxMenu is a scrollable menu where any number of items may be
// checked independently of the selection.
type CheckBoxMenu struct {
	ScrollMenu
	checked map[string]bool
	// CheckedRune marks checked items, 'X' by default.
	CheckedRune rune
}

// NewCheckBoxMenu creates an empty checkbox menu spanning the given cells.
func NewCheckBoxMenu(grid *core.Grid, title string, row, col, rowSpan, colSpan int) (*CheckBoxMenu, error) {
	m := &CheckBoxMenu{checked: make(map[string]bool), CheckedRune: 'X'}
	if err := m.Init(grid, title, row, col, rowSpan, colSpan, 0, 0); err != nil {
		return nil, err
	}
	m.List = core.NewListState()
	m.SetSelectable(true)
	m.SetHelpText("Focus mode on CheckBoxMenu. Use up/down to scroll, Enter to toggle, Esc to exit focus mode.")
	return m, nil
}

// Toggle flips the checked state of the selected item.
func (m *CheckBoxMenu) Toggle() {
	if item, ok := m.List.Get(); ok {
		m.checked[item] = !m.checked[item]
	}
}

// Checked reports whether an item is checked.
func (m *CheckBoxMenu) Checked(item string) bool { return m.checked[item] }

// CheckedItems returns the checked items in list order.
func (m *CheckBoxMenu) CheckedItems() []string {
	var out []string
	for _, item := range m.List.Items() {
		if m.checked[item] {
			out = append(out, item)
		}
	}
	return out
}

func (m *CheckBoxMenu) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter || ev.Rune() == ' ' {
		m.Toggle()
		return
	}
	m.ScrollMenu.HandleKey(ev)
}

func (m *CheckBoxMenu) Draw(p *core.Painter) {
	m.DrawFrame(p)
	style := m.Style()
	inner := m.InnerRect()
	cp := p.WithClip(inner)
	for i, item := range m.List.VisibleItems(m.viewportHeight()) {
		lineStyle := style
		if m.List.TopIndex()+i == m.List.SelectedIndex() && m.Selected() {
			lineStyle = style.Reverse(true)
		}
		mark := ' '
		if m.checked[item] {
			mark = m.CheckedRune
		}
		line := "[" + string(mark) + "] " + item
		cp.DrawTextWidth(inner.X, inner.Y+i, line, inner.W, lineStyle)
	}
}

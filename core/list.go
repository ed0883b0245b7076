// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/list.go
// Summary: Scrollable-selection state shared by menus and dialogs:
// selected index plus top-of-viewport bookkeeping.

package core

// ListState tracks an ordered item list, the selected index and the
// index of the item shown at the top of the viewport. Operations on an
// empty list are silent no-ops; Get reports ok=false instead of failing.
type ListState struct {
	items    []string
	selected int
	top      int
}

// NewListState creates an empty list.
func NewListState() *ListState { return &ListState{} }

// AddItem appends one item.
func (l *ListState) AddItem(item string) {
	l.items = append(l.items, item)
}

// AddItemList appends items preserving order.
func (l *ListState) AddItemList(items []string) {
	l.items = append(l.items, items...)
}

// Items returns the item list in order.
func (l *ListState) Items() []string { return l.items }

// Len returns the number of items.
func (l *ListState) Len() int { return len(l.items) }

// Clear removes every item and resets selection and viewport.
func (l *ListState) Clear() {
	l.items = nil
	l.selected = 0
	l.top = 0
}

// SelectedIndex returns the selected index. Its value is meaningless
// while the list is empty.
func (l *ListState) SelectedIndex() int { return l.selected }

// TopIndex returns the index of the first visible item.
func (l *ListState) TopIndex() int { return l.top }

// Get returns the selected item, or ok=false on an empty list.
func (l *ListState) Get() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	return l.items[l.selected], true
}

// SetSelectedIndex jumps the selection, clamping into bounds. The top
// index is recomputed so the selection stays visible for the given
// viewport height.
func (l *ListState) SetSelectedIndex(idx, viewportHeight int) {
	if len(l.items) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(l.items) {
		idx = len(l.items) - 1
	}
	l.selected = idx
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if l.selected < l.top {
		l.top = l.selected
	}
	if l.selected >= l.top+viewportHeight {
		l.top = l.selected - viewportHeight + 1
	}
}

// ScrollUp moves the selection up one item, flooring at zero. The top
// index follows only when the selection was exactly the visible-top item.
func (l *ListState) ScrollUp() {
	if len(l.items) == 0 {
		return
	}
	if l.selected == l.top && l.top > 0 {
		l.top--
	}
	if l.selected > 0 {
		l.selected--
	}
}

// ScrollDown moves the selection down one item, ceiling at the last. The
// top index advances only once the selection passes the bottom of the
// viewport.
func (l *ListState) ScrollDown(viewportHeight int) {
	if len(l.items) == 0 {
		return
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if l.selected < len(l.items)-1 {
		l.selected++
	}
	if l.selected >= l.top+viewportHeight {
		l.top++
	}
}

// RemoveSelected deletes the item at the selected index, re-clamping the
// selection when it falls off the end. No-op on an empty list.
func (l *ListState) RemoveSelected() {
	if len(l.items) == 0 {
		return
	}
	l.items = append(l.items[:l.selected], l.items[l.selected+1:]...)
	if l.selected >= len(l.items) && l.selected > 0 {
		l.selected = len(l.items) - 1
	}
	if l.top > l.selected {
		l.top = l.selected
	}
}

// VisibleItems returns the items inside the viewport window.
func (l *ListState) VisibleItems(viewportHeight int) []string {
	if len(l.items) == 0 || viewportHeight < 1 {
		return nil
	}
	end := l.top + viewportHeight
	if end > len(l.items) {
		end = len(l.items)
	}
	if l.top >= len(l.items) {
		return nil
	}
	return l.items[l.top:end]
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/widgetset.go
// Summary: WidgetSet: a swappable screen of {grid, widgets, keybindings}.

package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/widgets"
)

// KeyStroke identifies a key for binding purposes: either a special key
// or a printable rune.
type KeyStroke struct {
	Key  tcell.Key
	Rune rune
}

// StrokeOf normalizes an event into a KeyStroke.
func StrokeOf(ev *tcell.EventKey) KeyStroke {
	if ev.Key() == tcell.KeyRune {
		return KeyStroke{Key: tcell.KeyRune, Rune: ev.Rune()}
	}
	return KeyStroke{Key: ev.Key()}
}

// ParseStroke resolves a configured key name into a KeyStroke. Accepted
// forms: "ctrl-q", "esc"/"escape", "f1".."f12", or a single printable
// character.
func ParseStroke(name string) (KeyStroke, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "":
		return KeyStroke{}, false
	case name == "esc" || name == "escape":
		return KeyStroke{Key: tcell.KeyEscape}, true
	case strings.HasPrefix(name, "ctrl-") && len(name) == 6:
		if c := name[5]; c >= 'a' && c <= 'z' {
			return KeyStroke{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}, true
		}
		return KeyStroke{}, false
	case strings.HasPrefix(name, "f") && len(name) > 1:
		if n, err := strconv.Atoi(name[1:]); err == nil && n >= 1 && n <= 12 {
			return KeyStroke{Key: tcell.KeyF1 + tcell.Key(n-1)}, true
		}
		return KeyStroke{}, false
	}
	if r := []rune(name); len(r) == 1 {
		return KeyStroke{Key: tcell.KeyRune, Rune: r[0]}, true
	}
	return KeyStroke{}, false
}

// GridBound is implemented by elements placed in grid cells; the
// controller uses it for neighbor navigation.
type GridBound interface {
	Placement() (row, col, rowSpan, colSpan int)
}

// WidgetSet is a named collection of grid, widgets and keybindings that
// the Root controller swaps in as a unit. Widget ids are assigned
// sequentially and never reused within the set's lifetime; lookups with
// stale ids report ok=false instead of returning a hole.
type WidgetSet struct {
	grid        *core.Grid
	byID        map[uint64]core.Element
	order       []uint64
	nextID      uint64
	keybindings map[KeyStroke]func()
	selectedID  uint64
	hasSelected bool
}

// NewWidgetSet creates a set with its own grid over the given area.
func NewWidgetSet(rows, cols, height, width int) (*WidgetSet, error) {
	grid, err := core.NewGrid(rows, cols, height, width)
	if err != nil {
		return nil, err
	}
	grid.SetTitleBarOffset(true)
	return &WidgetSet{
		grid:        grid,
		byID:        make(map[uint64]core.Element),
		keybindings: make(map[KeyStroke]func()),
	}, nil
}

// Grid returns the set's grid.
func (ws *WidgetSet) Grid() *core.Grid { return ws.grid }

// AddElement registers any element, assigning the next id. The element
// is owned by exactly this set.
func (ws *WidgetSet) AddElement(el core.Element) uint64 {
	ws.nextID++
	id := ws.nextID
	el.SetID(id)
	ws.byID[id] = el
	ws.order = append(ws.order, id)
	if !ws.hasSelected && el.Selectable() {
		ws.selectWidget(id)
	}
	return id
}

// Widget returns the element for an id. Stale or unknown ids report
// ok=false.
func (ws *WidgetSet) Widget(id uint64) (core.Element, bool) {
	el, ok := ws.byID[id]
	return el, ok
}

// Widgets returns the live elements in creation order.
func (ws *WidgetSet) Widgets() []core.Element {
	out := make([]core.Element, 0, len(ws.byID))
	for _, id := range ws.order {
		if el, ok := ws.byID[id]; ok {
			out = append(out, el)
		}
	}
	return out
}

// ForgetWidget removes a widget from the set. Its id is retired, never
// reassigned. Returns false for stale ids.
func (ws *WidgetSet) ForgetWidget(id uint64) bool {
	if _, ok := ws.byID[id]; !ok {
		return false
	}
	delete(ws.byID, id)
	for i, oid := range ws.order {
		if oid == id {
			ws.order = append(ws.order[:i], ws.order[i+1:]...)
			break
		}
	}
	if ws.hasSelected && ws.selectedID == id {
		ws.hasSelected = false
		ws.selectFirstSelectable()
	}
	return true
}

// BindKey attaches a callback to a key while this set is active and the
// controller is in overview mode.
func (ws *WidgetSet) BindKey(ks KeyStroke, fn func()) {
	ws.keybindings[ks] = fn
}

// BindRune is BindKey for a printable key.
func (ws *WidgetSet) BindRune(r rune, fn func()) {
	ws.BindKey(KeyStroke{Key: tcell.KeyRune, Rune: r}, fn)
}

// SelectedWidget returns the selected element, if any.
func (ws *WidgetSet) SelectedWidget() (core.Element, bool) {
	if !ws.hasSelected {
		return nil, false
	}
	return ws.Widget(ws.selectedID)
}

// selectWidget moves the selection flag, clearing the previous holder.
func (ws *WidgetSet) selectWidget(id uint64) {
	if prev, ok := ws.SelectedWidget(); ok {
		prev.SetSelected(false)
	}
	el, ok := ws.byID[id]
	if !ok || !el.Selectable() {
		return
	}
	el.SetSelected(true)
	ws.selectedID = id
	ws.hasSelected = true
}

func (ws *WidgetSet) selectFirstSelectable() {
	for _, id := range ws.order {
		if el, ok := ws.byID[id]; ok && el.Selectable() {
			ws.selectWidget(id)
			return
		}
	}
}

// cycleSelection advances the selection through creation order, skipping
// unselectable elements.
func (ws *WidgetSet) cycleSelection(forward bool) {
	ids := make([]uint64, 0, len(ws.byID))
	for _, id := range ws.order {
		if el, ok := ws.byID[id]; ok && el.Selectable() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}
	cur := -1
	for i, id := range ids {
		if ws.hasSelected && id == ws.selectedID {
			cur = i
			break
		}
	}
	var next int
	if forward {
		next = (cur + 1) % len(ids)
	} else {
		next = (cur - 1 + len(ids)) % len(ids)
	}
	ws.selectWidget(ids[next])
}

// updateDimensions re-derives every element's cached rectangle.
func (ws *WidgetSet) updateDimensions() {
	for _, el := range ws.Widgets() {
		el.UpdateDimensions()
	}
}

// Convenience constructors mirroring the widgets package, binding the
// new widget to this set's grid and registering it.

// AddLabel creates and registers a Label.
func (ws *WidgetSet) AddLabel(title string, row, col, rowSpan, colSpan int) (*widgets.Label, error) {
	w, err := widgets.NewLabel(ws.grid, title, row, col, rowSpan, colSpan)
	if err != nil {
		return nil, err
	}
	ws.AddElement(w)
	return w, nil
}

// AddButton creates and registers a Button.
func (ws *WidgetSet) AddButton(title string, row, col, rowSpan, colSpan int, command func()) (*widgets.Button, error) {
	w, err := widgets.NewButton(ws.grid, title, row, col, rowSpan, colSpan, command)
	if err != nil {
		return nil, err
	}
	ws.AddElement(w)
	return w, nil
}

// AddScrollMenu creates and registers a ScrollMenu.
func (ws *WidgetSet) AddScrollMenu(title string, row, col, rowSpan, colSpan int) (*widgets.ScrollMenu, error) {
	w, err := widgets.NewScrollMenu(ws.grid, title, row, col, rowSpan, colSpan)
	if err != nil {
		return nil, err
	}
	ws.AddElement(w)
	return w, nil
}

// AddCheckBoxMenu creates and registers a CheckBoxMenu.
func (ws *WidgetSet) AddCheckBoxMenu(title string, row, col, rowSpan, colSpan int) (*widgets.CheckBoxMenu, error) {
	w, err := widgets.NewCheckBoxMenu(ws.grid, title, row, col, rowSpan, colSpan)
	if err != nil {
		return nil, err
	}
	ws.AddElement(w)
	return w, nil
}

// AddTextBox creates and registers a TextBox.
func (ws *WidgetSet) AddTextBox(title string, row, col, rowSpan, colSpan int, initial string) (*widgets.TextBox, error) {
	w, err := widgets.NewTextBox(ws.grid, title, row, col, rowSpan, colSpan, initial)
	if err != nil {
		return nil, err
	}
	ws.AddElement(w)
	return w, nil
}

// AddTextBlock creates and registers a TextBlock.
func (ws *WidgetSet) AddTextBlock(title string, row, col, rowSpan, colSpan int, initial string) (*widgets.TextBlock, error) {
	w, err := widgets.NewTextBlock(ws.grid, title, row, col, rowSpan, colSpan, initial)
	if err != nil {
		return nil, err
	}
	ws.AddElement(w)
	return w, nil
}

// AddSlider creates and registers a Slider.
func (ws *WidgetSet) AddSlider(title string, row, col, rowSpan, colSpan, min, max, step, initial int) (*widgets.Slider, error) {
	w, err := widgets.NewSlider(ws.grid, title, row, col, rowSpan, colSpan, min, max, step, initial)
	if err != nil {
		return nil, err
	}
	ws.AddElement(w)
	return w, nil
}

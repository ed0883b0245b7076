// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/root.go
// Summary: Root controller: active widget set, modal popup slot, focus
// state and input dispatch.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/popups"
	"github.com/framegrace/tessera/theme"
	"github.com/framegrace/tessera/widgets"
)

// FocusMode describes where key input is routed when no popup is open.
type FocusMode int

const (
	// Overview routes arrows to selection movement and runes to the
	// active set's keybindings.
	Overview FocusMode = iota
	// Focused forwards everything except Escape to the selected widget.
	Focused
)

// PopupElement is what the controller needs from a modal popup beyond
// the element contract.
type PopupElement interface {
	core.Element
	Bind(sizer popups.TerminalSizer)
	Closed() bool
	IgnoresInput() bool
}

// tabConsumer marks widgets that use Tab as an editing key.
type tabConsumer interface {
	ConsumesTab() bool
}

// Root drives the terminal: it owns the driver, the active widget set,
// at most one popup and the render loop. Widget sets are prepared
// offline and swapped in atomically with ApplyWidgetSet.
type Root struct {
	drv      core.ScreenDriver
	title    string
	set      *WidgetSet
	popup    PopupElement
	mode     FocusMode
	exitKey  KeyStroke
	stopping bool
	tooSmall bool

	// fired once when a loading popup closes itself
	postLoading func()

	logger    *RingLogger
	userLog   Logger
	liveDebug bool

	refreshCh chan struct{}
}

// NewRoot creates a controller over the given driver. A nil driver is
// rejected at Start, not here, so tests can assemble partial roots.
func NewRoot(drv core.ScreenDriver, title string) *Root {
	return &Root{
		drv:       drv,
		title:     title,
		exitKey:   KeyStroke{Key: tcell.KeyCtrlQ},
		logger:    NewRingLogger(nil),
		refreshCh: make(chan struct{}, 1),
	}
}

// SetExitKey replaces the key that stops the loop from overview mode.
func (r *Root) SetExitKey(ks KeyStroke) { r.exitKey = ks }

// SetLogger tees controller logging to the given logger. The in-memory
// ring keeps feeding the debug overlay either way.
func (r *Root) SetLogger(l Logger) { r.userLog = l }

// ToggleLiveDebug flips the log overlay on the next draw.
func (r *Root) ToggleLiveDebug() { r.liveDebug = !r.liveDebug }

// Logf writes to the ring logger and any injected logger.
func (r *Root) Logf(format string, args ...any) {
	r.logger.Printf(format, args...)
	if r.userLog != nil {
		r.userLog.Printf(format, args...)
	}
}

// TerminalSize implements popups.TerminalSizer.
func (r *Root) TerminalSize() (int, int) {
	if r.drv == nil {
		return 80, 24
	}
	return r.drv.Size()
}

// FocusMode returns the current input routing mode.
func (r *Root) FocusMode() FocusMode { return r.mode }

// ActiveSet returns the widget set currently shown.
func (r *Root) ActiveSet() *WidgetSet { return r.set }

// NewWidgetSet builds a set sized to the controller's grid area (the
// terminal minus the title and status bars).
func (r *Root) NewWidgetSet(rows, cols int) (*WidgetSet, error) {
	w, h := r.TerminalSize()
	return NewWidgetSet(rows, cols, h-2, w)
}

// ApplyWidgetSet swaps the active set in atomically between dispatches.
// The incoming set's grid is resized to the current terminal before any
// of its widgets draw.
func (r *Root) ApplyWidgetSet(ws *WidgetSet) error {
	w, h := r.TerminalSize()
	if err := ws.grid.Resize(h-2, w); err != nil {
		return err
	}
	ws.updateDimensions()
	r.set = ws
	r.mode = Overview
	r.requestRefresh()
	return nil
}

// Popup returns the open popup, if any.
func (r *Root) Popup() (PopupElement, bool) {
	return r.popup, r.popup != nil
}

// ShowPopup opens a popup, replacing any open one. The popup is bound
// to the controller for terminal-proportional sizing.
func (r *Root) ShowPopup(p PopupElement) {
	p.Bind(r)
	// Bind resolves only the popup frame; sub-fields re-derive here.
	p.UpdateDimensions()
	r.popup = p
	r.requestRefresh()
}

// ClosePopup dismisses the open popup without waiting for it to close
// itself.
func (r *Root) ClosePopup() {
	r.popup = nil
	r.postLoading = nil
	r.requestRefresh()
}

// ShowMessagePopup opens a standard message box.
func (r *Root) ShowMessagePopup(title, message string) *popups.MessagePopup {
	p := popups.NewMessagePopup(title, message)
	r.ShowPopup(p)
	return p
}

// ShowWarningPopup opens a red-on-black message box.
func (r *Root) ShowWarningPopup(title, message string) *popups.MessagePopup {
	p := popups.NewWarningPopup(title, message)
	r.ShowPopup(p)
	return p
}

// ShowYesNoPopup opens a binary-choice popup.
func (r *Root) ShowYesNoPopup(title, question string, onAnswer func(bool)) *popups.YesNoPopup {
	p := popups.NewYesNoPopup(title, question, onAnswer)
	r.ShowPopup(p)
	return p
}

// ShowTextBoxPopup opens a single-line entry popup.
func (r *Root) ShowTextBoxPopup(title, initial string, onSubmit func(string)) *popups.TextBoxPopup {
	p := popups.NewTextBoxPopup(title, initial, onSubmit)
	r.ShowPopup(p)
	return p
}

// ShowMenuPopup opens a scrollable choice popup.
func (r *Root) ShowMenuPopup(title string, items []string, onSelect func(string)) *popups.MenuPopup {
	p := popups.NewMenuPopup(title, items, onSelect)
	r.ShowPopup(p)
	return p
}

// ShowFormPopup opens a multi-field form. Duplicate field keys are a
// construction error.
func (r *Root) ShowFormPopup(title string, fields []string, onSubmit func(map[string]string)) (*popups.FormPopup, error) {
	p, err := popups.NewFormPopup(title, fields, onSubmit)
	if err != nil {
		return nil, err
	}
	r.ShowPopup(p)
	return p, nil
}

// ShowFileDialogPopup opens a filesystem picker rooted at startDir.
func (r *Root) ShowFileDialogPopup(title, startDir string, mode popups.DialogMode, onChoose func(string)) *popups.FileDialogPopup {
	p := popups.NewFileDialogPopup(title, startDir, mode, onChoose)
	r.ShowPopup(p)
	return p
}

// ShowLoadingIconPopup opens a spinner driven by an external worker
// through the returned popup's Progress. onDone fires on the loop
// goroutine once the worker marks completion.
func (r *Root) ShowLoadingIconPopup(title, message string, onDone func()) *popups.LoadingIconPopup {
	p := popups.NewLoadingIconPopup(title, message, &popups.Progress{})
	r.postLoading = onDone
	r.ShowPopup(p)
	return p
}

// ShowLoadingBarPopup opens a numeric progress bar expecting total
// increments from an external worker.
func (r *Root) ShowLoadingBarPopup(title string, total int64, onDone func()) *popups.LoadingBarPopup {
	p := popups.NewLoadingBarPopup(title, total, &popups.Progress{})
	r.postLoading = onDone
	r.ShowPopup(p)
	return p
}

// loading reports whether an input-discarding popup is open.
func (r *Root) loading() bool {
	return r.popup != nil && r.popup.IgnoresInput()
}

// checkPopupClosed clears a popup that asked to be dismissed and fires
// the pending post-loading callback exactly once.
func (r *Root) checkPopupClosed() {
	if r.popup == nil || !r.popup.Closed() {
		return
	}
	r.popup = nil
	if fn := r.postLoading; fn != nil {
		r.postLoading = nil
		fn()
	}
	r.requestRefresh()
}

// requestRefresh schedules a redraw without blocking.
func (r *Root) requestRefresh() {
	select {
	case r.refreshCh <- struct{}{}:
	default:
	}
}

// handleResize recomputes the grid and every cached rectangle. A
// terminal too small for the active grid raises a recoverable banner
// instead of failing.
func (r *Root) handleResize() {
	w, h := r.TerminalSize()
	if r.set != nil {
		if err := r.set.grid.Resize(h-2, w); err != nil {
			r.Logf("resize %dx%d: %v", w, h, err)
			r.tooSmall = true
			return
		}
		r.tooSmall = false
		r.set.updateDimensions()
	}
	if r.popup != nil {
		r.popup.UpdateDimensions()
	}
	r.drv.Sync()
}

// handleKey is the single key dispatch point. Popup first, then the
// focused widget, then overview navigation and keybindings.
func (r *Root) handleKey(ev *tcell.EventKey) {
	if r.popup != nil {
		if r.popup.IgnoresInput() {
			return
		}
		r.popup.HandleKey(ev)
		r.checkPopupClosed()
		return
	}
	if r.set == nil {
		if StrokeOf(ev) == r.exitKey {
			r.Stop()
		}
		return
	}
	if r.mode == Focused {
		r.handleFocusedKey(ev)
		return
	}
	r.handleOverviewKey(ev)
}

func (r *Root) handleFocusedKey(ev *tcell.EventKey) {
	sel, ok := r.set.SelectedWidget()
	if !ok {
		r.mode = Overview
		return
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		r.mode = Overview
		return
	case tcell.KeyTab:
		if tc, ok := sel.(tabConsumer); !ok || !tc.ConsumesTab() {
			r.set.cycleSelection(true)
			return
		}
	case tcell.KeyBacktab:
		r.set.cycleSelection(false)
		return
	}
	sel.HandleKey(ev)
}

func (r *Root) handleOverviewKey(ev *tcell.EventKey) {
	stroke := StrokeOf(ev)
	if stroke == r.exitKey {
		r.Stop()
		return
	}
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		r.moveSelection(ev.Key())
		return
	case tcell.KeyTab:
		r.set.cycleSelection(true)
		return
	case tcell.KeyBacktab:
		r.set.cycleSelection(false)
		return
	case tcell.KeyEnter:
		if sel, ok := r.set.SelectedWidget(); ok {
			if sel.ActivatesOnClick() {
				sel.HandleKey(ev)
				return
			}
			r.mode = Focused
		}
		return
	}
	if fn, ok := r.set.keybindings[stroke]; ok {
		fn()
	}
}

// moveSelection walks the grid toward a neighbor in the arrow's
// direction. The nearest widget whose near edge lies past the current
// widget's far edge wins; ties break by reading order.
func (r *Root) moveSelection(key tcell.Key) {
	cur, ok := r.set.SelectedWidget()
	if !ok {
		r.set.selectFirstSelectable()
		return
	}
	curGB, ok := cur.(GridBound)
	if !ok {
		r.set.cycleSelection(true)
		return
	}
	row, col, rowSpan, colSpan := curGB.Placement()

	best := uint64(0)
	bestDist := -1
	for _, el := range r.set.Widgets() {
		if el.ID() == cur.ID() || !el.Selectable() {
			continue
		}
		gb, ok := el.(GridBound)
		if !ok {
			continue
		}
		cr, cc, crs, ccs := gb.Placement()
		var dist int
		switch key {
		case tcell.KeyRight:
			if cc < col+colSpan || cr+crs <= row || cr >= row+rowSpan {
				continue
			}
			dist = cc - (col + colSpan)
		case tcell.KeyLeft:
			if cc+ccs > col || cr+crs <= row || cr >= row+rowSpan {
				continue
			}
			dist = col - (cc + ccs)
		case tcell.KeyDown:
			if cr < row+rowSpan || cc+ccs <= col || cc >= col+colSpan {
				continue
			}
			dist = cr - (row + rowSpan)
		case tcell.KeyUp:
			if cr+crs > row || cc+ccs <= col || cc >= col+colSpan {
				continue
			}
			dist = row - (cr + crs)
		}
		if bestDist < 0 || dist < bestDist {
			best = el.ID()
			bestDist = dist
		}
	}
	if bestDist >= 0 {
		r.set.selectWidget(best)
	}
}

// handleMouse routes a mouse event to the popup or the widget under the
// pointer. Clicking a widget selects it; click-activated widgets fire
// without entering focus mode, everything else focuses on click.
func (r *Root) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if r.popup != nil {
		if r.popup.IgnoresInput() {
			return
		}
		r.popup.HandleMouse(x, y, ev)
		r.checkPopupClosed()
		return
	}
	if r.set == nil {
		return
	}
	for _, el := range r.set.Widgets() {
		if !el.Rect().Contains(x, y) {
			continue
		}
		if el.Selectable() {
			r.set.selectWidget(el.ID())
			if ev.Buttons()&tcell.Button1 != 0 && !el.ActivatesOnClick() {
				r.mode = Focused
			}
		}
		el.HandleMouse(x, y, ev)
		return
	}
}

// statusText picks what the status bar shows: popup help first, then
// the selected widget's help in focus mode, then the defaults.
func (r *Root) statusText() string {
	if r.popup != nil {
		return r.popup.HelpText()
	}
	if r.mode == Focused {
		if sel, ok := r.set.SelectedWidget(); ok {
			return sel.HelpText()
		}
	}
	return ""
}

// draw renders one full frame: bars, unselected widgets, the selected
// widget, the popup, then the debug overlay. A panicking widget Draw is
// logged and skipped rather than tearing the terminal down.
func (r *Root) draw() {
	w, h := r.TerminalSize()
	p := core.NewPainter(r.drv, core.NewRect(0, 0, w, h))
	p.Fill(core.NewRect(0, 0, w, h), ' ', theme.Style(theme.WhiteOnBlack))

	if r.tooSmall {
		msg := "Terminal too small. Resize to continue."
		p.DrawTextWidth((w-len(msg))/2, h/2, msg, w, theme.Style(theme.RedOnBlack).Bold(true))
		r.drv.HideCursor()
		r.drv.Show()
		return
	}

	drawTitleBar(p, w, r.title)
	drawStatusBar(p, w, h, r.statusText())

	if r.set != nil {
		var selected core.Element
		for _, el := range r.set.Widgets() {
			if el.Selected() {
				selected = el
				continue
			}
			r.drawElement(p, el)
		}
		if selected != nil {
			r.drawElement(p, selected)
		}
	}
	if r.popup != nil {
		r.drawElement(p, r.popup)
		r.checkPopupClosed()
	}
	if r.liveDebug {
		r.drawDebugOverlay(p, w, h)
	}

	r.placeCursor()
	r.drv.Show()
}

func (r *Root) drawElement(p *core.Painter, el core.Element) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Logf("draw widget %d (%s): panic: %v", el.ID(), el.Title(), rec)
		}
	}()
	el.Draw(p)
}

// placeCursor shows the hardware cursor when the input target wants it.
func (r *Root) placeCursor() {
	var target any
	if r.popup != nil {
		target = r.popup
	} else if r.set != nil && r.mode == Focused {
		if sel, ok := r.set.SelectedWidget(); ok {
			target = sel
		}
	}
	if cp, ok := target.(widgets.CursorPositioner); ok {
		if x, y, show := cp.CursorPos(); show {
			r.drv.ShowCursor(x, y)
			return
		}
	}
	r.drv.HideCursor()
}

// drawDebugOverlay paints the retained log tail over the lower half of
// the screen.
func (r *Root) drawDebugOverlay(p *core.Painter, w, h int) {
	lines := r.logger.Lines()
	rows := h / 2
	if rows < 3 {
		rows = 3
	}
	area := core.NewRect(0, h-1-rows, w, rows)
	style := theme.Style(theme.YellowOnBlack)
	p.Fill(area, ' ', style)
	p.DrawBorder(area, "Debug Log", style)
	inner := area.Inset(1, 1)
	start := len(lines) - inner.H
	if start < 0 {
		start = 0
	}
	cp := p.WithClip(inner)
	for i, line := range lines[start:] {
		cp.DrawTextWidth(inner.X, inner.Y+i, line, inner.W, style)
	}
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/loop.go
// Summary: The render loop: event pump goroutine, dispatch, redraw.

package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

// loadingTick paces spinner and progress-bar redraws while a loading
// popup is open and no events arrive.
const loadingTick = 250 * time.Millisecond

// Start initializes the driver and runs the loop until Stop or the exit
// key. It owns the calling goroutine; widget callbacks and keybindings
// run on it, so only the loading Progress contract is safe to touch
// from workers.
func (r *Root) Start() error {
	if r.drv == nil {
		return core.ErrNoDriver
	}
	if err := r.drv.Init(); err != nil {
		return fmt.Errorf("init driver: %w", err)
	}
	defer r.drv.Fini()

	r.drv.SetStyle(theme.Style(theme.WhiteOnBlack))
	r.drv.EnableMouse()
	r.stopping = false
	r.handleResize()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := r.drv.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for !r.stopping {
		r.draw()
		if r.loading() {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				r.dispatch(ev)
			case <-r.refreshCh:
			case <-time.After(loadingTick):
			}
			continue
		}
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			r.dispatch(ev)
		case <-r.refreshCh:
		}
	}
	return nil
}

// Stop ends the loop after the current dispatch. Safe to call from
// widget callbacks; workers should go through a loading popup instead.
func (r *Root) Stop() {
	r.stopping = true
	r.requestRefresh()
	if r.drv != nil {
		r.drv.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// dispatch routes one terminal event.
func (r *Root) dispatch(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		r.handleResize()
	case *tcell.EventKey:
		r.handleKey(tev)
	case *tcell.EventMouse:
		r.handleMouse(tev)
	case *tcell.EventInterrupt:
	}
}

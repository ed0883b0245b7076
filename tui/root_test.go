// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

func newTestRoot(t *testing.T) *Root {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init sim screen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)
	return NewRoot(core.NewTcellDriver(sim), "test")
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestRootArrowNavigation(t *testing.T) {
	r := newTestRoot(t)
	ws, err := r.NewWidgetSet(3, 3)
	if err != nil {
		t.Fatalf("NewWidgetSet: %v", err)
	}
	b00, _ := ws.AddButton("a", 0, 0, 1, 1, nil)
	b01, _ := ws.AddButton("b", 0, 1, 1, 1, nil)
	b10, _ := ws.AddButton("c", 1, 0, 1, 1, nil)
	if err := r.ApplyWidgetSet(ws); err != nil {
		t.Fatalf("ApplyWidgetSet: %v", err)
	}

	sel, _ := ws.SelectedWidget()
	if sel.ID() != b00.ID() {
		t.Fatalf("initial selection = %d, want first button", sel.ID())
	}
	r.handleKey(key(tcell.KeyRight, 0))
	if sel, _ = ws.SelectedWidget(); sel.ID() != b01.ID() {
		t.Errorf("right: selected %d, want %d", sel.ID(), b01.ID())
	}
	r.handleKey(key(tcell.KeyLeft, 0))
	if sel, _ = ws.SelectedWidget(); sel.ID() != b00.ID() {
		t.Errorf("left: selected %d, want %d", sel.ID(), b00.ID())
	}
	r.handleKey(key(tcell.KeyDown, 0))
	if sel, _ = ws.SelectedWidget(); sel.ID() != b10.ID() {
		t.Errorf("down: selected %d, want %d", sel.ID(), b10.ID())
	}
	r.handleKey(key(tcell.KeyUp, 0))
	if sel, _ = ws.SelectedWidget(); sel.ID() != b00.ID() {
		t.Errorf("up: selected %d, want %d", sel.ID(), b00.ID())
	}
	// No neighbor in that direction: selection stays put.
	r.handleKey(key(tcell.KeyUp, 0))
	if sel, _ = ws.SelectedWidget(); sel.ID() != b00.ID() {
		t.Errorf("up at edge: selected %d, want %d", sel.ID(), b00.ID())
	}
}

func TestRootArrowNavigationTieBreak(t *testing.T) {
	r := newTestRoot(t)
	ws, _ := r.NewWidgetSet(3, 3)
	top0, _ := ws.AddButton("a", 0, 0, 1, 1, nil)
	top1, _ := ws.AddButton("b", 0, 1, 1, 1, nil)
	wide, _ := ws.AddButton("c", 1, 0, 1, 2, nil)
	r.ApplyWidgetSet(ws)

	// Both top-row buttons sit at distance zero above the wide button;
	// creation order decides.
	ws.selectWidget(wide.ID())
	r.handleKey(key(tcell.KeyUp, 0))
	sel, _ := ws.SelectedWidget()
	if sel.ID() != top0.ID() {
		t.Errorf("equidistant neighbors: selected %d, want %d (creation order)", sel.ID(), top0.ID())
	}
	_ = top1
}

func TestRootConfiguredExitKey(t *testing.T) {
	r := newTestRoot(t)
	ks, ok := ParseStroke("ctrl-x")
	if !ok {
		t.Fatal("ParseStroke rejected ctrl-x")
	}
	r.SetExitKey(ks)
	r.handleKey(key(tcell.KeyCtrlQ, 0))
	if r.stopping {
		t.Fatal("default exit key still stops after SetExitKey")
	}
	r.handleKey(key(tcell.KeyCtrlX, 0))
	if !r.stopping {
		t.Error("configured exit key did not stop the loop")
	}
}

func TestRootEnterActivatesButtonWithoutFocus(t *testing.T) {
	r := newTestRoot(t)
	ws, _ := r.NewWidgetSet(3, 3)
	pressed := 0
	ws.AddButton("go", 0, 0, 1, 1, func() { pressed++ })
	r.ApplyWidgetSet(ws)

	r.handleKey(key(tcell.KeyEnter, 0))
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}
	if r.FocusMode() != Overview {
		t.Error("button activation should not enter focus mode")
	}
}

func TestRootFocusModeRouting(t *testing.T) {
	r := newTestRoot(t)
	ws, _ := r.NewWidgetSet(3, 3)
	tb, _ := ws.AddTextBox("name", 0, 0, 1, 1, "")
	r.ApplyWidgetSet(ws)

	r.handleKey(key(tcell.KeyEnter, 0))
	if r.FocusMode() != Focused {
		t.Fatal("Enter on a text box should enter focus mode")
	}
	for _, ch := range "hi" {
		r.handleKey(key(tcell.KeyRune, ch))
	}
	if got := tb.Editor.Text(); got != "hi" {
		t.Errorf("text = %q, want hi", got)
	}
	// Overview keybindings must not fire in focus mode.
	fired := false
	ws.BindRune('x', func() { fired = true })
	r.handleKey(key(tcell.KeyRune, 'x'))
	if fired {
		t.Error("keybinding fired while focused")
	}
	if got := tb.Editor.Text(); got != "hix" {
		t.Errorf("text = %q, want hix", got)
	}
	r.handleKey(key(tcell.KeyEscape, 0))
	if r.FocusMode() != Overview {
		t.Error("Escape should return to overview")
	}
	r.handleKey(key(tcell.KeyRune, 'x'))
	if !fired {
		t.Error("keybinding did not fire in overview")
	}
}

func TestRootTabInFocusModeCyclesUnlessConsumed(t *testing.T) {
	r := newTestRoot(t)
	ws, _ := r.NewWidgetSet(3, 3)
	tb, _ := ws.AddTextBox("name", 0, 0, 1, 1, "")
	block, _ := ws.AddTextBlock("notes", 0, 1, 1, 1, "")
	r.ApplyWidgetSet(ws)

	r.handleKey(key(tcell.KeyEnter, 0)) // focus the text box
	r.handleKey(key(tcell.KeyTab, 0))   // text boxes give Tab up
	sel, _ := ws.SelectedWidget()
	if sel.ID() != block.ID() {
		t.Fatalf("Tab did not cycle: selected %d, want %d", sel.ID(), block.ID())
	}
	r.handleKey(key(tcell.KeyTab, 0)) // text blocks keep Tab as indent
	if sel, _ = ws.SelectedWidget(); sel.ID() != block.ID() {
		t.Error("Tab cycled away from a tab-consuming widget")
	}
	if got := block.Block.Text(); got != "    " {
		t.Errorf("block text = %q, want four spaces", got)
	}
	_ = tb
}

func TestRootPopupOwnsInput(t *testing.T) {
	r := newTestRoot(t)
	ws, _ := r.NewWidgetSet(3, 3)
	pressed := 0
	ws.AddButton("go", 0, 0, 1, 1, func() { pressed++ })
	r.ApplyWidgetSet(ws)

	r.ShowMessagePopup("note", "hello")
	if _, open := r.Popup(); !open {
		t.Fatal("popup not open")
	}
	r.handleKey(key(tcell.KeyEnter, 0))
	if pressed != 0 {
		t.Error("key leaked through the popup to a widget")
	}
	if _, open := r.Popup(); open {
		t.Error("popup still open after dismissal")
	}
	r.handleKey(key(tcell.KeyEnter, 0))
	if pressed != 1 {
		t.Error("input not restored after popup closed")
	}
}

func TestRootLoadingDiscardsInputAndFiresCallback(t *testing.T) {
	r := newTestRoot(t)
	ws, _ := r.NewWidgetSet(3, 3)
	ws.AddButton("go", 0, 0, 1, 1, nil)
	r.ApplyWidgetSet(ws)

	done := false
	popup := r.ShowLoadingIconPopup("busy", "working", func() { done = true })
	if !r.loading() {
		t.Fatal("loading state not reported")
	}
	r.handleKey(key(tcell.KeyEscape, 0))
	if _, open := r.Popup(); !open {
		t.Fatal("loading popup dismissed by a key")
	}
	popup.Progress().MarkComplete()
	r.draw() // the popup closes itself during its draw pass
	if _, open := r.Popup(); open {
		t.Error("loading popup still open after completion")
	}
	if !done {
		t.Error("post-loading callback did not fire")
	}
}

func TestRootResizeTooSmallRecovers(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init sim screen: %v", err)
	}
	sim.SetSize(80, 24)
	defer sim.Fini()
	r := NewRoot(core.NewTcellDriver(sim), "test")
	ws, _ := r.NewWidgetSet(3, 3)
	ws.AddButton("go", 0, 0, 1, 1, nil)
	r.ApplyWidgetSet(ws)

	sim.SetSize(10, 5)
	r.handleResize()
	if !r.tooSmall {
		t.Fatal("too-small banner not raised")
	}
	r.draw() // must not panic while degraded

	sim.SetSize(80, 24)
	r.handleResize()
	if r.tooSmall {
		t.Error("did not recover after growing back")
	}
}

func TestRootStartStopsOnExitKey(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init sim screen: %v", err)
	}
	r := NewRoot(core.NewTcellDriver(sim), "test")

	finished := make(chan error, 1)
	go func() { finished <- r.Start() }()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case err := <-finished:
			if err != nil {
				t.Fatalf("Start: %v", err)
			}
			return
		case <-deadline:
			t.Fatal("loop did not stop on the exit key")
		default:
			sim.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModNone)
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func TestRootNilDriver(t *testing.T) {
	r := NewRoot(nil, "test")
	if err := r.Start(); err != core.ErrNoDriver {
		t.Errorf("err = %v, want ErrNoDriver", err)
	}
}

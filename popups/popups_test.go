// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package popups

import (
	"errors"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

type fakeSizer struct{ w, h int }

func (f fakeSizer) TerminalSize() (int, int) { return f.w, f.h }

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestPopupCentersOnTerminal(t *testing.T) {
	m := NewMessagePopup("Title", "hello")
	m.Bind(fakeSizer{w: 100, h: 30})
	r := m.Rect()
	if r.W != 60 || r.H != 8 {
		t.Errorf("size = %dx%d, want 60x8", r.W, r.H)
	}
	if r.X != 20 || r.Y != 11 {
		t.Errorf("origin = (%d,%d), want (20,11)", r.X, r.Y)
	}
}

func TestPopupClampsToSmallTerminal(t *testing.T) {
	m := NewMessagePopup("Title", "hello")
	m.Bind(fakeSizer{w: 40, h: 8})
	r := m.Rect()
	if r.W != 38 || r.H != 6 {
		t.Errorf("size = %dx%d, want clamped 38x6", r.W, r.H)
	}
}

func TestMessagePopupDismissal(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		keyEvent(tcell.KeyEnter, 0),
		keyEvent(tcell.KeyEscape, 0),
		keyEvent(tcell.KeyRune, ' '),
	} {
		m := NewMessagePopup("t", "m")
		m.HandleKey(ev)
		if !m.Closed() {
			t.Errorf("key %v did not dismiss", ev.Key())
		}
	}
	m := NewMessagePopup("t", "m")
	m.HandleKey(keyEvent(tcell.KeyRune, 'x'))
	if m.Closed() {
		t.Error("unrelated key dismissed the popup")
	}
}

func TestYesNoPopupAnswers(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want bool
	}{
		{keyEvent(tcell.KeyRune, 'y'), true},
		{keyEvent(tcell.KeyRune, 'Y'), true},
		{keyEvent(tcell.KeyRune, 'n'), false},
		{keyEvent(tcell.KeyEscape, 0), false},
	}
	for _, tc := range cases {
		answered := false
		var got bool
		p := NewYesNoPopup("t", "sure?", func(yes bool) {
			answered = true
			got = yes
		})
		p.HandleKey(tc.ev)
		if !answered || !p.Closed() {
			t.Errorf("key %v: answered=%v closed=%v", tc.ev.Key(), answered, p.Closed())
		}
		if got != tc.want {
			t.Errorf("key %v: answer = %v, want %v", tc.ev.Key(), got, tc.want)
		}
	}
}

func TestTextBoxPopupSubmitAndCancel(t *testing.T) {
	var submitted string
	p := NewTextBoxPopup("t", "hi", func(text string) { submitted = text })
	p.HandleKey(keyEvent(tcell.KeyEnd, 0))
	p.HandleKey(keyEvent(tcell.KeyRune, '!'))
	p.HandleKey(keyEvent(tcell.KeyEnter, 0))
	if submitted != "hi!" || !p.Closed() {
		t.Errorf("submitted = %q closed=%v, want hi!/true", submitted, p.Closed())
	}

	submitted = ""
	p = NewTextBoxPopup("t", "zz", func(text string) { submitted = text })
	p.HandleKey(keyEvent(tcell.KeyEscape, 0))
	if submitted != "" {
		t.Errorf("cancel fired the handler with %q", submitted)
	}
	if !p.Closed() {
		t.Error("Escape did not close")
	}
}

func TestMenuPopupSelectAndCancel(t *testing.T) {
	var chosen string
	p := NewMenuPopup("t", []string{"a", "b", "c"}, func(item string) { chosen = item })
	p.Bind(fakeSizer{w: 80, h: 24})
	p.HandleKey(keyEvent(tcell.KeyDown, 0))
	p.HandleKey(keyEvent(tcell.KeyEnter, 0))
	if chosen != "b" || !p.Closed() {
		t.Errorf("chosen = %q closed=%v, want b/true", chosen, p.Closed())
	}

	chosen = ""
	p = NewMenuPopup("t", []string{"a"}, func(item string) { chosen = item })
	p.HandleKey(keyEvent(tcell.KeyEscape, 0))
	if chosen != "" || !p.Closed() {
		t.Errorf("cancel: chosen = %q closed=%v", chosen, p.Closed())
	}
}

func TestFormPopupDuplicateKeys(t *testing.T) {
	if _, err := NewFormPopup("t", []string{"Name", "Name"}, nil); !errors.Is(err, core.ErrDuplicateField) {
		t.Errorf("err = %v, want ErrDuplicateField", err)
	}
	// The '*' suffix does not disguise a duplicate.
	if _, err := NewFormPopup("t", []string{"Name*", "Name"}, nil); !errors.Is(err, core.ErrDuplicateField) {
		t.Errorf("starred duplicate: err = %v, want ErrDuplicateField", err)
	}
}

func TestFormPopupRequiredValidation(t *testing.T) {
	var submitted map[string]string
	p, err := NewFormPopup("t", []string{"Name*", "Email"}, func(values map[string]string) {
		submitted = values
	})
	if err != nil {
		t.Fatalf("NewFormPopup: %v", err)
	}
	p.Bind(fakeSizer{w: 100, h: 30})

	// Fill only the optional field, then submit.
	p.HandleKey(keyEvent(tcell.KeyTab, 0))
	for _, r := range "a@b" {
		p.HandleKey(keyEvent(tcell.KeyRune, r))
	}
	p.HandleKey(keyEvent(tcell.KeyEnter, 0))
	if submitted != nil {
		t.Fatal("submit succeeded with empty required field")
	}
	if p.Closed() {
		t.Fatal("form closed despite failed validation")
	}
	if p.warning == nil {
		t.Fatal("no warning raised")
	}
	// Entered text survives the failed validation.
	if got := p.Values()["Email"]; got != "a@b" {
		t.Errorf("email after warning = %q, want a@b", got)
	}

	// Dismiss the warning; keys route to the warning until then.
	p.HandleKey(keyEvent(tcell.KeyEnter, 0))
	if p.warning != nil {
		t.Fatal("warning not cleared after dismissal")
	}

	// Fill the required field and resubmit.
	p.HandleKey(keyEvent(tcell.KeyBacktab, 0))
	for _, r := range "Ada" {
		p.HandleKey(keyEvent(tcell.KeyRune, r))
	}
	p.HandleKey(keyEvent(tcell.KeyEnter, 0))
	if submitted == nil || !p.Closed() {
		t.Fatal("valid submit did not fire")
	}
	if submitted["Name"] != "Ada" || submitted["Email"] != "a@b" {
		t.Errorf("values = %v", submitted)
	}
}

func TestProgressFromWorkerGoroutines(t *testing.T) {
	var p Progress
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Increment()
			}
		}()
	}
	wg.Wait()
	if got := p.Count(); got != 800 {
		t.Errorf("count = %d, want 800", got)
	}
	if p.Done() {
		t.Error("done before MarkComplete")
	}
	p.MarkComplete()
	if !p.Done() {
		t.Error("not done after MarkComplete")
	}
}

func TestLoadingPopupsIgnoreInput(t *testing.T) {
	icon := NewLoadingIconPopup("t", "m", &Progress{})
	if !icon.IgnoresInput() {
		t.Error("icon popup should ignore input")
	}
	bar := NewLoadingBarPopup("t", 10, &Progress{})
	if !bar.IgnoresInput() {
		t.Error("bar popup should ignore input")
	}
}

func TestLoadingBarClosesWhenComplete(t *testing.T) {
	prog := &Progress{}
	bar := NewLoadingBarPopup("t", 3, prog)
	bar.Bind(fakeSizer{w: 80, h: 24})
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init sim screen: %v", err)
	}
	defer sim.Fini()
	painter := core.NewPainter(core.NewTcellDriver(sim), core.NewRect(0, 0, 80, 24))

	bar.Draw(painter)
	if bar.Closed() {
		t.Fatal("closed before any progress")
	}
	prog.Increment()
	prog.Increment()
	prog.Increment()
	bar.Draw(painter)
	if !bar.Closed() {
		t.Error("bar did not close at total")
	}
}

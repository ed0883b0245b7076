// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import "testing"

func newTestList(n int) *ListState {
	l := NewListState()
	for i := 0; i < n; i++ {
		l.AddItem(string(rune('a' + i)))
	}
	return l
}

func TestListScrollDownThroughViewport(t *testing.T) {
	l := newTestList(5)
	const viewport = 3
	for i := 0; i < 4; i++ {
		l.ScrollDown(viewport)
	}
	if l.SelectedIndex() != 4 {
		t.Errorf("selected = %d, want 4", l.SelectedIndex())
	}
	if l.TopIndex() != 2 {
		t.Errorf("top = %d, want 2", l.TopIndex())
	}
	// Further scrolling at the end changes nothing.
	l.ScrollDown(viewport)
	if l.SelectedIndex() != 4 || l.TopIndex() != 2 {
		t.Errorf("after extra scroll: selected=%d top=%d, want 4/2", l.SelectedIndex(), l.TopIndex())
	}
}

func TestListScrollUpFollowsTop(t *testing.T) {
	l := newTestList(5)
	for i := 0; i < 4; i++ {
		l.ScrollDown(3)
	}
	// Selection sits at the bottom of the window; moving up should not
	// move the top until the selection reaches it.
	l.ScrollUp()
	if l.SelectedIndex() != 3 || l.TopIndex() != 2 {
		t.Errorf("selected=%d top=%d, want 3/2", l.SelectedIndex(), l.TopIndex())
	}
	l.ScrollUp()
	if l.SelectedIndex() != 2 || l.TopIndex() != 2 {
		t.Errorf("selected=%d top=%d, want 2/2", l.SelectedIndex(), l.TopIndex())
	}
	l.ScrollUp()
	if l.SelectedIndex() != 1 || l.TopIndex() != 1 {
		t.Errorf("selected=%d top=%d, want 1/1", l.SelectedIndex(), l.TopIndex())
	}
}

func TestListEmptyOperations(t *testing.T) {
	l := NewListState()
	l.ScrollUp()
	l.ScrollDown(3)
	l.RemoveSelected()
	l.SetSelectedIndex(2, 3)
	if _, ok := l.Get(); ok {
		t.Error("Get on empty list reported ok")
	}
	if got := l.VisibleItems(3); got != nil {
		t.Errorf("VisibleItems on empty list = %v, want nil", got)
	}
}

func TestListGet(t *testing.T) {
	l := newTestList(3)
	l.ScrollDown(3)
	item, ok := l.Get()
	if !ok || item != "b" {
		t.Errorf("Get = %q/%v, want b/true", item, ok)
	}
}

func TestListRemoveSelectedClamps(t *testing.T) {
	l := newTestList(3)
	l.SetSelectedIndex(2, 3)
	l.RemoveSelected()
	if l.SelectedIndex() != 1 {
		t.Errorf("selected = %d, want 1", l.SelectedIndex())
	}
	if l.Len() != 2 {
		t.Errorf("len = %d, want 2", l.Len())
	}
	l.RemoveSelected()
	l.RemoveSelected()
	if l.Len() != 0 {
		t.Errorf("len = %d, want 0", l.Len())
	}
	if _, ok := l.Get(); ok {
		t.Error("Get after removing everything reported ok")
	}
}

func TestListSetSelectedIndexAdjustsTop(t *testing.T) {
	l := newTestList(10)
	l.SetSelectedIndex(7, 3)
	if l.TopIndex() != 5 {
		t.Errorf("top = %d, want 5", l.TopIndex())
	}
	l.SetSelectedIndex(1, 3)
	if l.TopIndex() != 1 {
		t.Errorf("top = %d, want 1", l.TopIndex())
	}
	// Out-of-range jumps clamp.
	l.SetSelectedIndex(99, 3)
	if l.SelectedIndex() != 9 {
		t.Errorf("selected = %d, want 9", l.SelectedIndex())
	}
}

func TestListVisibleItems(t *testing.T) {
	l := newTestList(5)
	for i := 0; i < 4; i++ {
		l.ScrollDown(3)
	}
	got := l.VisibleItems(3)
	want := []string{"c", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visible[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

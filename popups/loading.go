// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/loading.go
// Summary: Loading popups: spinner and progress bar. Progress updates
// arrive from an external worker through atomics; the render loop only
// reads them at draw time.

package popups

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// Progress is the only cross-goroutine contract in the toolkit: an
// external worker increments the counter and marks completion; the
// render loop polls both during the loading popup's draw pass.
type Progress struct {
	count atomic.Int64
	done  atomic.Bool
}

// Increment advances the counter by one. Safe from any goroutine.
func (p *Progress) Increment() { p.count.Add(1) }

// MarkComplete flags the operation finished. Safe from any goroutine.
func (p *Progress) MarkComplete() { p.done.Store(true) }

// Count returns the current counter value.
func (p *Progress) Count() int64 { return p.count.Load() }

// Done reports whether the operation finished.
func (p *Progress) Done() bool { return p.done.Load() }

var spinnerFrames = []rune{'|', '/', '-', '\\'}

// LoadingIconPopup shows a spinner until its Progress is marked
// complete. Key input is discarded while it is open; the draw call
// advances the animation frame, the popup's only state mutation during
// rendering.
type LoadingIconPopup struct {
	Popup
	message  string
	progress *Progress
	frame    int
}

// NewLoadingIconPopup creates a spinner popup polling the given progress.
func NewLoadingIconPopup(title, message string, progress *Progress) *LoadingIconPopup {
	l := &LoadingIconPopup{message: message, progress: progress}
	l.Init(title, 40, 5)
	return l
}

// IgnoresInput discards keys while loading.
func (l *LoadingIconPopup) IgnoresInput() bool { return true }

// Progress exposes the shared counter for the external worker.
func (l *LoadingIconPopup) Progress() *Progress { return l.progress }

func (l *LoadingIconPopup) Draw(p *core.Painter) {
	if l.progress != nil && l.progress.Done() {
		l.Close()
		return
	}
	l.DrawFrame(p)
	style := l.Style()
	inner := l.Rect().Inset(2, 1)
	l.frame = (l.frame + 1) % len(spinnerFrames)
	text := fmt.Sprintf("%c %s", spinnerFrames[l.frame], l.message)
	p.WithClip(inner).DrawTextWidth(inner.X, inner.Y+inner.H/2, text, inner.W, style)
}

func (l *LoadingIconPopup) HandleKey(ev *tcell.EventKey) {}

// LoadingBarPopup shows numeric progress out of a known total, closing
// itself once the counter reaches the total or completion is flagged.
type LoadingBarPopup struct {
	Popup
	total    int64
	progress *Progress
}

// NewLoadingBarPopup creates a bar popup expecting total increments.
func NewLoadingBarPopup(title string, total int64, progress *Progress) *LoadingBarPopup {
	l := &LoadingBarPopup{total: total, progress: progress}
	if total < 1 {
		l.total = 1
	}
	l.Init(title, 50, 5)
	return l
}

// IgnoresInput discards keys while loading.
func (l *LoadingBarPopup) IgnoresInput() bool { return true }

// Progress exposes the shared counter for the external worker.
func (l *LoadingBarPopup) Progress() *Progress { return l.progress }

func (l *LoadingBarPopup) Draw(p *core.Painter) {
	count := int64(0)
	if l.progress != nil {
		count = l.progress.Count()
		if l.progress.Done() || count >= l.total {
			l.Close()
			return
		}
	}
	l.DrawFrame(p)
	style := l.Style()
	inner := l.Rect().Inset(2, 1)
	y := inner.Y + inner.H/2
	barW := inner.W - 10
	if barW < 1 {
		barW = 1
	}
	filled := int(float64(barW) * float64(count) / float64(l.total))
	cp := p.WithClip(inner)
	for x := 0; x < barW; x++ {
		ch := '░'
		if x < filled {
			ch = '█'
		}
		cp.SetCell(inner.X+x, y, ch, style)
	}
	cp.DrawText(inner.X+barW+1, y, fmt.Sprintf("%d/%d", count, l.total), style)
}

func (l *LoadingBarPopup) HandleKey(ev *tcell.EventKey) {}

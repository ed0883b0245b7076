// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/yesno.go
// Summary: Yes/no confirmation popup.

package popups

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// YesNoPopup asks a question answered with y or n. The handler fires
// before the popup closes; Escape answers no.
type YesNoPopup struct {
	Popup
	question string
	OnAnswer func(yes bool)
}

// NewYesNoPopup creates a confirmation popup.
func NewYesNoPopup(title, question string, onAnswer func(bool)) *YesNoPopup {
	y := &YesNoPopup{question: question, OnAnswer: onAnswer}
	y.Init(title, 50, 7)
	y.SetHelpText("Press y for yes, n or Esc for no.")
	return y
}

func (y *YesNoPopup) answer(yes bool) {
	if y.OnAnswer != nil {
		y.OnAnswer(yes)
	}
	y.Close()
}

func (y *YesNoPopup) HandleKey(ev *tcell.EventKey) {
	switch {
	case ev.Rune() == 'y' || ev.Rune() == 'Y':
		y.answer(true)
	case ev.Rune() == 'n' || ev.Rune() == 'N', ev.Key() == tcell.KeyEscape:
		y.answer(false)
	}
}

func (y *YesNoPopup) Draw(p *core.Painter) {
	y.DrawFrame(p)
	style := y.Style()
	inner := y.Rect().Inset(2, 1)
	cp := p.WithClip(inner)
	lines := wrapText(y.question, inner.W)
	for i, line := range lines {
		if i >= inner.H-1 {
			break
		}
		cp.DrawText(inner.X, inner.Y+i, line, style)
	}
	cp.DrawText(inner.X, inner.Y+inner.H-1, "[y] Yes   [n] No", style.Bold(true))
}

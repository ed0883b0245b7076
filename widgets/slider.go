// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/slider.go
// Summary: Bounded numeric slider widget over core.SliderState.

package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// Slider adjusts a bounded integer value with the arrow keys.
type Slider struct {
	Widget
	State *core.SliderState
	// ShowValue prints the numeric value over the bar.
	ShowValue bool
	// OnChange fires with the new value after every adjustment.
	OnChange func(value int)
}

// NewSlider creates a slider. The initial value must lie inside
// [min, max] or construction fails.
func NewSlider(grid *core.Grid, title string, row, col, rowSpan, colSpan, min, max, step, initial int) (*Slider, error) {
	state, err := core.NewSliderState(min, max, step, initial)
	if err != nil {
		return nil, err
	}
	s := &Slider{State: state, ShowValue: true}
	if err := s.Init(grid, title, row, col, rowSpan, colSpan, 0, 0); err != nil {
		return nil, err
	}
	s.SetSelectable(true)
	s.SetHelpText("Focus mode on Slider. Use left/right to adjust value, Esc to exit focus mode.")
	return s, nil
}

func (s *Slider) adjust(offset int) {
	v := s.State.Update(offset)
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyDown:
		s.adjust(-1)
	case tcell.KeyRight, tcell.KeyUp:
		s.adjust(+1)
	case tcell.KeyHome:
		min, _ := s.State.Bounds()
		for s.State.Value() > min {
			s.adjust(-1)
		}
	case tcell.KeyEnd:
		_, max := s.State.Bounds()
		for s.State.Value() < max {
			s.adjust(+1)
		}
	}
}

func (s *Slider) HandleMouse(x, y int, ev *tcell.EventMouse) {
	btn := ev.Buttons()
	if btn&tcell.WheelUp != 0 {
		s.adjust(+1)
	}
	if btn&tcell.WheelDown != 0 {
		s.adjust(-1)
	}
}

func (s *Slider) Draw(p *core.Painter) {
	s.DrawFrame(p)
	style := s.Style()
	inner := s.InnerRect()
	if inner.Empty() {
		return
	}
	y := inner.Y + inner.H/2
	filled := int(s.State.Ratio() * float64(inner.W))
	for x := 0; x < inner.W; x++ {
		ch := '─'
		if x < filled {
			ch = '█'
		}
		p.SetCell(inner.X+x, y, ch, style)
	}
	if s.ShowValue {
		label := fmt.Sprintf(" %d ", s.State.Value())
		p.DrawTextWidth(inner.X+(inner.W-len(label))/2, y, label, inner.W, style.Reverse(true))
	}
}

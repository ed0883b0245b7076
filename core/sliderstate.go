// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/sliderstate.go
// Summary: Bounded numeric value with step increments.

package core

import "fmt"

// SliderState holds a value clamped to [min, max], adjusted in step
// increments. The clamp is enforced on every update.
type SliderState struct {
	min, max int
	step     int
	value    int
}

// NewSliderState validates and creates slider state. The initial value
// must lie inside [min, max].
func NewSliderState(min, max, step, initial int) (*SliderState, error) {
	if min >= max {
		return nil, fmt.Errorf("slider range [%d,%d]: %w", min, max, ErrInvalidValue)
	}
	if step <= 0 {
		return nil, fmt.Errorf("slider step %d: %w", step, ErrInvalidValue)
	}
	if initial < min || initial > max {
		return nil, fmt.Errorf("slider initial %d outside [%d,%d]: %w", initial, min, max, ErrInvalidValue)
	}
	return &SliderState{min: min, max: max, step: step, value: initial}, nil
}

// Value returns the current value.
func (s *SliderState) Value() int { return s.value }

// Bounds returns (min, max).
func (s *SliderState) Bounds() (int, int) { return s.min, s.max }

// Step returns the increment applied per update unit.
func (s *SliderState) Step() int { return s.step }

// Update moves the value by offset steps and returns the clamped result.
// Repeated updates at a boundary keep returning the boundary value.
func (s *SliderState) Update(offset int) int {
	s.value += offset * s.step
	if s.value < s.min {
		s.value = s.min
	}
	if s.value > s.max {
		s.value = s.max
	}
	return s.value
}

// Ratio returns the value's position inside the range as a fraction,
// used for drawing the filled portion of the bar.
func (s *SliderState) Ratio() float64 {
	return float64(s.value-s.min) / float64(s.max-s.min)
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"errors"
	"testing"
)

func TestSliderStateValidation(t *testing.T) {
	cases := []struct {
		name                    string
		min, max, step, initial int
	}{
		{"inverted range", 10, 10, 1, 10},
		{"zero step", 0, 100, 0, 50},
		{"negative step", 0, 100, -5, 50},
		{"initial below min", 0, 100, 1, -1},
		{"initial above max", 0, 100, 1, 101},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSliderState(tc.min, tc.max, tc.step, tc.initial); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("err = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestSliderStateClampsAtFloor(t *testing.T) {
	s, err := NewSliderState(10, 90, 4, 53)
	if err != nil {
		t.Fatalf("NewSliderState: %v", err)
	}
	var got int
	for i := 0; i < 13; i++ {
		got = s.Update(-1)
	}
	if got != 10 {
		t.Errorf("value = %d, want floor 10", got)
	}
	// Further decrements hold the floor.
	if got = s.Update(-1); got != 10 {
		t.Errorf("value after extra decrement = %d, want 10", got)
	}
}

func TestSliderStateClampsAtCeiling(t *testing.T) {
	s, _ := NewSliderState(0, 10, 3, 9)
	if got := s.Update(1); got != 10 {
		t.Errorf("value = %d, want 10", got)
	}
	if got := s.Update(1); got != 10 {
		t.Errorf("value = %d, want 10", got)
	}
}

func TestSliderStateRatio(t *testing.T) {
	s, _ := NewSliderState(0, 100, 5, 25)
	if got := s.Ratio(); got != 0.25 {
		t.Errorf("ratio = %v, want 0.25", got)
	}
}

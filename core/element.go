// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/element.go
// Summary: The Element contract shared by widgets, popups and popup
// sub-fields, plus the BaseElement embed providing the common state.

package core

import "github.com/gdamore/tcell/v2"

// PositionResolver computes an element's absolute start and stop points.
// Widgets resolve through their grid cell, popups proportionally to the
// terminal, and form sub-fields relative to their parent popup.
type PositionResolver interface {
	StartPos() (int, int)
	StopPos() (int, int)
}

// Element is the contract every drawable UI element implements.
type Element interface {
	ID() uint64
	SetID(id uint64)
	Title() string
	SetTitle(title string)
	HelpText() string
	SetHelpText(text string)
	Selected() bool
	SetSelected(selected bool)
	Selectable() bool
	// ActivatesOnClick marks elements (buttons) whose action fires on a
	// mouse press even when they are not the focused element.
	ActivatesOnClick() bool
	// Rect returns the cached absolute rectangle from the last
	// UpdateDimensions call.
	Rect() Rect
	// UpdateDimensions re-derives the cached rectangle. Must be called
	// after every resize and after a widget set becomes active.
	UpdateDimensions()
	HandleKey(ev *tcell.EventKey)
	HandleMouse(x, y int, ev *tcell.EventMouse)
	Draw(p *Painter)
}

// BaseElement provides the shared fields and default behaviour. Concrete
// elements embed it and install a PositionResolver.
type BaseElement struct {
	id            uint64
	title         string
	helpText      string
	PadX, PadY    int
	Color         int // theme pair id
	SelectedColor int // theme pair id while selected
	selected      bool
	selectable    bool
	resolver      PositionResolver
	rect          Rect
}

func (b *BaseElement) ID() uint64               { return b.id }
func (b *BaseElement) SetID(id uint64)          { b.id = id }
func (b *BaseElement) Title() string            { return b.title }
func (b *BaseElement) SetTitle(title string)    { b.title = title }
func (b *BaseElement) HelpText() string         { return b.helpText }
func (b *BaseElement) SetHelpText(text string)  { b.helpText = text }
func (b *BaseElement) Selected() bool           { return b.selected }
func (b *BaseElement) SetSelected(sel bool)     { b.selected = sel }
func (b *BaseElement) Selectable() bool         { return b.selectable }
func (b *BaseElement) SetSelectable(s bool)     { b.selectable = s }
func (b *BaseElement) ActivatesOnClick() bool   { return false }
func (b *BaseElement) Rect() Rect               { return b.rect }
func (b *BaseElement) SetResolver(r PositionResolver) { b.resolver = r }

// ActivePair returns the color pair to draw with given the selection flag.
func (b *BaseElement) ActivePair() int {
	if b.selected {
		return b.SelectedColor
	}
	return b.Color
}

// UpdateDimensions recomputes and caches the absolute rectangle.
func (b *BaseElement) UpdateDimensions() {
	if b.resolver == nil {
		return
	}
	x0, y0 := b.resolver.StartPos()
	x1, y1 := b.resolver.StopPos()
	b.rect = NewRect(x0, y0, x1-x0, y1-y0)
}

// InnerRect returns the cached rectangle shrunk by the border and padding.
func (b *BaseElement) InnerRect() Rect {
	return b.rect.Inset(1+b.PadX, 1+b.PadY)
}

// HandleKey is a no-op by default.
func (b *BaseElement) HandleKey(ev *tcell.EventKey) {}

// HandleMouse is a no-op by default.
func (b *BaseElement) HandleMouse(x, y int, ev *tcell.EventMouse) {}

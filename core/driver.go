// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/driver.go
// Summary: ScreenDriver abstraction over the terminal backend, plus the
// tcell adapter used by default.

package core

import "github.com/gdamore/tcell/v2"

// ScreenDriver is the minimal terminal-control surface the toolkit
// consumes. Production code wraps a tcell.Screen; tests substitute the
// tcell simulation screen or a mock.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	ShowCursor(x, y int)
	HideCursor()
	Show()
	Sync()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	EnableMouse()
	DisableMouse()
}

// TcellDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellDriver struct {
	screen tcell.Screen
}

// NewTcellDriver wraps the provided screen.
func NewTcellDriver(screen tcell.Screen) *TcellDriver {
	return &TcellDriver{screen: screen}
}

// NewDefaultDriver allocates a real terminal screen.
func NewDefaultDriver() (*TcellDriver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &TcellDriver{screen: screen}, nil
}

func (d *TcellDriver) Init() error {
	return d.screen.Init()
}

func (d *TcellDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellDriver) SetStyle(style tcell.Style) {
	d.screen.SetStyle(style)
}

func (d *TcellDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellDriver) ShowCursor(x, y int) {
	d.screen.ShowCursor(x, y)
}

func (d *TcellDriver) HideCursor() {
	d.screen.HideCursor()
}

func (d *TcellDriver) Show() {
	d.screen.Show()
}

func (d *TcellDriver) Sync() {
	d.screen.Sync()
}

func (d *TcellDriver) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}

func (d *TcellDriver) PostEvent(ev tcell.Event) error {
	return d.screen.PostEvent(ev)
}

func (d *TcellDriver) EnableMouse() {
	d.screen.EnableMouse()
}

func (d *TcellDriver) DisableMouse() {
	d.screen.DisableMouse()
}

// Underlying exposes the wrapped tcell.Screen for compatibility code
// paths that still need direct access.
func (d *TcellDriver) Underlying() tcell.Screen {
	return d.screen
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/debug.go
// Summary: Injectable logger and the in-terminal debug console.

package tui

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger is the logging surface the controller writes to. Inject any
// implementation through Root.SetLogger; the default keeps a bounded
// in-memory ring so the live debug overlay has content without touching
// the filesystem.
type Logger interface {
	Printf(format string, args ...any)
}

// ringCap bounds the lines the debug overlay can show.
const ringCap = 128

// RingLogger keeps the most recent log lines in memory and optionally
// tees them to an underlying logger.
type RingLogger struct {
	mu    sync.Mutex
	lines []string
	next  *log.Logger
}

// NewRingLogger creates a ring logger teeing to w when w is not nil.
func NewRingLogger(w io.Writer) *RingLogger {
	r := &RingLogger{}
	if w != nil {
		r.next = log.New(w, "", log.LstdFlags)
	}
	return r
}

func (r *RingLogger) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.mu.Lock()
	r.lines = append(r.lines, line)
	if len(r.lines) > ringCap {
		r.lines = r.lines[len(r.lines)-ringCap:]
	}
	r.mu.Unlock()
	if r.next != nil {
		r.next.Print(line)
	}
}

// Lines returns a snapshot of the retained log lines, oldest first.
func (r *RingLogger) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

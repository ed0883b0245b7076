// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/filedialog.go
// Summary: File/directory picker popup. Unreadable paths surface as a
// nested warning scoped to the dialog, never as a crash.

package popups

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tessera/core"
)

// DialogMode selects what a FileDialogPopup picks.
type DialogMode int

const (
	// PickFile selects an existing file.
	PickFile DialogMode = iota
	// PickDir selects a directory with Space.
	PickDir
	// SaveFile types a new name into the current directory.
	SaveFile
)

const parentEntry = ".."

// FileDialogPopup browses the filesystem from a starting directory.
// Enter descends into directories or picks files; Space picks the
// current directory in PickDir mode. In SaveFile mode typed characters
// build the new file name.
type FileDialogPopup struct {
	Popup
	mode     DialogMode
	dir      string
	list     *core.ListState
	saveName *core.TextEditorState
	OnChoose func(path string)
	warning  *MessagePopup
	// ShowHidden includes dot-files in the listing.
	ShowHidden bool
}

// NewFileDialogPopup creates a dialog rooted at startDir. An unreadable
// start directory is not a construction error; the first refresh raises
// the nested warning instead.
func NewFileDialogPopup(title, startDir string, mode DialogMode, onChoose func(string)) *FileDialogPopup {
	f := &FileDialogPopup{
		mode:     mode,
		dir:      startDir,
		list:     core.NewListState(),
		saveName: core.NewTextEditorState("", 40),
		OnChoose: onChoose,
	}
	f.Init(title, 60, 18)
	switch mode {
	case PickDir:
		f.SetHelpText("Enter to open, Space to choose current dir, Esc to cancel.")
	case SaveFile:
		f.SetHelpText("Type a name, Enter to save, Esc to cancel.")
	default:
		f.SetHelpText("Enter to open or choose, Esc to cancel.")
	}
	f.refresh()
	return f
}

// Dir returns the directory currently listed.
func (f *FileDialogPopup) Dir() string { return f.dir }

// refresh reloads the listing, directories first, raising the nested
// warning when the directory cannot be read.
func (f *FileDialogPopup) refresh() {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		f.raiseWarning(fmt.Sprintf("Cannot read '%s': %v", f.dir, err))
		return
	}
	var dirs, files []string
	for _, e := range entries {
		name := e.Name()
		if !f.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, name+string(filepath.Separator))
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	f.list.Clear()
	f.list.AddItem(parentEntry)
	f.list.AddItemList(dirs)
	if f.mode != PickDir {
		f.list.AddItemList(files)
	}
}

func (f *FileDialogPopup) raiseWarning(msg string) {
	f.warning = NewWarningPopup("File Error", msg)
	f.warning.Bind(f.sizer)
}

func (f *FileDialogPopup) viewportHeight() int {
	h := f.Rect().Inset(2, 1).H - 2
	if h < 1 {
		h = 1
	}
	return h
}

// enter opens the selected entry: ascends on "..", descends into
// directories, chooses files.
func (f *FileDialogPopup) enter() {
	item, ok := f.list.Get()
	if !ok {
		return
	}
	switch {
	case item == parentEntry:
		f.dir = filepath.Dir(f.dir)
		f.refresh()
	case strings.HasSuffix(item, string(filepath.Separator)):
		f.dir = filepath.Join(f.dir, strings.TrimSuffix(item, string(filepath.Separator)))
		f.refresh()
	default:
		f.choose(filepath.Join(f.dir, item))
	}
}

func (f *FileDialogPopup) choose(path string) {
	if f.OnChoose != nil {
		f.OnChoose(path)
	}
	f.Close()
}

// save validates the typed name and chooses dir/name.
func (f *FileDialogPopup) save() {
	name := f.saveName.Text()
	if name == "" || strings.ContainsRune(name, filepath.Separator) {
		f.raiseWarning(fmt.Sprintf("Invalid file name '%s'.", name))
		return
	}
	f.choose(filepath.Join(f.dir, name))
}

func (f *FileDialogPopup) HandleKey(ev *tcell.EventKey) {
	if f.warning != nil {
		f.warning.HandleKey(ev)
		if f.warning.Closed() {
			f.warning = nil
		}
		return
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		f.Close()
		return
	case tcell.KeyUp:
		f.list.ScrollUp()
		return
	case tcell.KeyDown:
		f.list.ScrollDown(f.viewportHeight())
		return
	case tcell.KeyEnter:
		if f.mode == SaveFile && f.saveName.Len() > 0 {
			f.save()
		} else {
			f.enter()
		}
		return
	}
	if f.mode == PickDir && ev.Rune() == ' ' {
		f.choose(f.dir)
		return
	}
	if f.mode == SaveFile {
		switch ev.Key() {
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			f.saveName.Backspace()
		case tcell.KeyRune:
			f.saveName.InsertRune(ev.Rune())
		}
	}
}

func (f *FileDialogPopup) HandleMouse(x, y int, ev *tcell.EventMouse) {
	if f.warning != nil {
		f.warning.HandleMouse(x, y, ev)
		if f.warning.Closed() {
			f.warning = nil
		}
		return
	}
	inner := f.Rect().Inset(2, 1)
	btn := ev.Buttons()
	if btn&tcell.WheelUp != 0 {
		f.list.ScrollUp()
		return
	}
	if btn&tcell.WheelDown != 0 {
		f.list.ScrollDown(f.viewportHeight())
		return
	}
	if btn&tcell.Button1 != 0 && inner.Contains(x, y) && y-inner.Y-1 >= 0 {
		idx := f.list.TopIndex() + (y - inner.Y - 1)
		if idx < f.list.Len() {
			f.list.SetSelectedIndex(idx, f.viewportHeight())
		}
	}
}

func (f *FileDialogPopup) Draw(p *core.Painter) {
	f.DrawFrame(p)
	style := f.Style()
	inner := f.Rect().Inset(2, 1)
	cp := p.WithClip(inner)
	cp.DrawTextWidth(inner.X, inner.Y, f.dir, inner.W, style.Bold(true))
	for i, item := range f.list.VisibleItems(f.viewportHeight()) {
		lineStyle := style
		if f.list.TopIndex()+i == f.list.SelectedIndex() {
			lineStyle = style.Reverse(true)
		}
		cp.DrawTextWidth(inner.X, inner.Y+1+i, item, inner.W, lineStyle)
	}
	if f.mode == SaveFile {
		cp.DrawTextWidth(inner.X, inner.Y+inner.H-1, "Name: "+f.saveName.Text(), inner.W, style)
	}
	if f.warning != nil {
		f.warning.Draw(p)
	}
}

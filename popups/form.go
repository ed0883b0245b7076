// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: popups/form.go
// Summary: Multi-field form popup with parent-relative sub-fields,
// required-field validation and a nested warning popup.

package popups

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/theme"
)

const formLabelWidth = 14

// FormField is one labelled text entry inside a form. Its position is
// resolved relative to the parent popup's rectangle.
type FormField struct {
	core.BaseElement
	Key      string
	Required bool
	Editor   *core.TextEditorState
}

// FormPopup collects values for a list of field keys. Tab and the
// vertical arrows cycle fields, Enter submits, Escape cancels. A failed
// required-field validation raises a nested warning scoped to the form;
// the entered text is preserved for correction.
type FormPopup struct {
	Popup
	fields   []*FormField
	selected int
	OnSubmit func(values map[string]string)
	warning  *MessagePopup
}

// NewFormPopup creates a form for the given field keys. Keys suffixed
// with '*' are required. Duplicate keys are a construction error.
func NewFormPopup(title string, fieldKeys []string, onSubmit func(map[string]string)) (*FormPopup, error) {
	f := &FormPopup{OnSubmit: onSubmit}
	f.Init(title, 60, len(fieldKeys)+5)
	seen := make(map[string]bool, len(fieldKeys))
	for i, key := range fieldKeys {
		required := false
		if n := len(key); n > 0 && key[n-1] == '*' {
			required = true
			key = key[:n-1]
		}
		if seen[key] {
			return nil, fmt.Errorf("form field %q: %w", key, core.ErrDuplicateField)
		}
		seen[key] = true
		field := &FormField{
			Key:      key,
			Required: required,
			Editor:   core.NewTextEditorState("", 56-formLabelWidth),
		}
		field.SetID(uint64(i))
		field.SetTitle(key)
		field.Color = theme.WhiteOnBlack
		field.SelectedColor = theme.CyanOnBlack
		field.SetResolver(fieldResolver{parent: &f.Popup, dx: 2, dy: 2 + i, w: 56, h: 1})
		f.fields = append(f.fields, field)
	}
	if len(f.fields) > 0 {
		f.fields[0].SetSelected(true)
	}
	f.SetHelpText("Tab to switch fields, Enter to submit, Esc to cancel.")
	return f, nil
}

// Fields returns the form's fields in declaration order.
func (f *FormPopup) Fields() []*FormField { return f.fields }

// Values returns the current field contents keyed by field key.
func (f *FormPopup) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Key] = field.Editor.Text()
	}
	return out
}

// UpdateDimensions re-derives the popup rectangle and every sub-field.
func (f *FormPopup) UpdateDimensions() {
	f.Popup.UpdateDimensions()
	for _, field := range f.fields {
		field.UpdateDimensions()
		w := field.Rect().W - formLabelWidth
		if w < 1 {
			w = 1
		}
		field.Editor.SetViewWidth(w)
	}
	if f.warning != nil {
		f.warning.UpdateDimensions()
	}
}

func (f *FormPopup) cycleField(forward bool) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.selected].SetSelected(false)
	if forward {
		f.selected = (f.selected + 1) % len(f.fields)
	} else {
		f.selected = (f.selected - 1 + len(f.fields)) % len(f.fields)
	}
	f.fields[f.selected].SetSelected(true)
}

// submit validates required fields, raising the nested warning on the
// first empty one. Entered values stay intact either way.
func (f *FormPopup) submit() {
	for _, field := range f.fields {
		if field.Required && field.Editor.Text() == "" {
			f.warning = NewWarningPopup("Form Error",
				fmt.Sprintf("Field '%s' is required.", field.Key))
			f.warning.Bind(f.sizer)
			return
		}
	}
	if f.OnSubmit != nil {
		f.OnSubmit(f.Values())
	}
	f.Close()
}

func (f *FormPopup) HandleKey(ev *tcell.EventKey) {
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
	case tcell.KeyEnter:
		f.submit()
	case tcell.KeyTab, tcell.KeyDown:
		f.cycleField(true)
	case tcell.KeyBacktab, tcell.KeyUp:
		f.cycleField(false)
	default:
		if len(f.fields) == 0 {
			return
		}
		editor := f.fields[f.selected].Editor
		switch ev.Key() {
		case tcell.KeyLeft:
			editor.MoveLeft()
		case tcell.KeyRight:
			editor.MoveRight()
		case tcell.KeyHome:
			editor.Home()
		case tcell.KeyEnd:
			editor.End()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			editor.Backspace()
		case tcell.KeyDelete:
			editor.Delete()
		case tcell.KeyRune:
			editor.InsertRune(ev.Rune())
		}
	}
}

func (f *FormPopup) HandleMouse(x, y int, ev *tcell.EventMouse) {
	if f.warning != nil {
		f.warning.HandleMouse(x, y, ev)
		if f.warning.Closed() {
			f.warning = nil
		}
		return
	}
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	for i, field := range f.fields {
		if field.Rect().Contains(x, y) {
			f.fields[f.selected].SetSelected(false)
			f.selected = i
			field.SetSelected(true)
			return
		}
	}
}

func (f *FormPopup) Draw(p *core.Painter) {
	f.DrawFrame(p)
	for _, field := range f.fields {
		f.drawField(p, field)
	}
	hint := "[Enter] Submit  [Esc] Cancel"
	r := f.Rect()
	p.WithClip(r).DrawText(r.X+2, r.Y+r.H-2, hint, f.Style().Bold(true))
	if f.warning != nil {
		f.warning.Draw(p)
	}
}

func (f *FormPopup) drawField(p *core.Painter, field *FormField) {
	r := field.Rect()
	style := theme.Style(field.ActivePair())
	cp := p.WithClip(r)
	label := field.Key
	if field.Required {
		label += "*"
	}
	label = runewidth.FillRight(runewidth.Truncate(label+":", formLabelWidth, "…"), formLabelWidth)
	x := cp.DrawText(r.X, r.Y, label, style)
	cp.DrawText(x, r.Y, field.Editor.VisibleText(), style.Underline(true))
}

// CursorPos places the hardware cursor in the selected field, or hands
// it to the warning while one is showing.
func (f *FormPopup) CursorPos() (int, int, bool) {
	if f.warning != nil || len(f.fields) == 0 {
		return 0, 0, false
	}
	field := f.fields[f.selected]
	r := field.Rect()
	return r.X + formLabelWidth + field.Editor.ScreenCursorX(), r.Y, true
}

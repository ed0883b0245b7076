// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tessera-demo/main.go
// Summary: Demo binary exercising the widget and popup catalogue.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/framegrace/tessera/colorize"
	"github.com/framegrace/tessera/config"
	"github.com/framegrace/tessera/core"
	"github.com/framegrace/tessera/popups"
	"github.com/framegrace/tessera/tui"
)

const sampleCode = `package main

import "fmt"

func main() {
	fmt.Println("hello from tessera")
}
`

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "tessera-demo must run on a terminal")
		os.Exit(1)
	}
	if err := config.Err(); err != nil {
		log.Printf("config: %v (using defaults)", err)
	}
	config.Apply()

	drv, err := core.NewDefaultDriver()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}

	root := tui.NewRoot(drv, "Tessera Demo")
	exitName := config.System().GetString("input", "exitKey", "ctrl-q")
	if ks, ok := tui.ParseStroke(exitName); ok {
		root.SetExitKey(ks)
	} else {
		log.Printf("config: unknown exitKey %q, keeping ctrl-q", exitName)
	}
	if logFile := config.System().GetString("log", "file", ""); logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		root.SetLogger(tui.NewRingLogger(f))
	}

	if err := buildMainSet(root); err != nil {
		log.Fatalf("build ui: %v", err)
	}
	if err := root.Start(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func buildMainSet(root *tui.Root) error {
	ws, err := root.NewWidgetSet(3, 3)
	if err != nil {
		return err
	}

	menu, err := ws.AddScrollMenu("Actions", 0, 0, 2, 1)
	if err != nil {
		return err
	}
	menu.List.AddItemList([]string{
		"Message popup",
		"Warning popup",
		"Yes/No popup",
		"Text entry popup",
		"Menu popup",
		"Form popup",
		"File dialog",
		"Loading spinner",
		"Loading bar",
		"Toggle debug log",
	})
	menu.OnSelect = func(item string) { runAction(root, item) }

	editor, err := ws.AddTextBlock("Editor (main.go)", 0, 1, 2, 2, sampleCode)
	if err != nil {
		return err
	}
	styleName := config.System().GetString("", "syntaxStyle", "monokai")
	editor.Rules = append(editor.Rules, colorize.NewSyntaxRule("main.go", sampleCode, styleName))

	checks, err := ws.AddCheckBoxMenu("Toppings", 2, 0, 1, 1)
	if err != nil {
		return err
	}
	checks.List.AddItemList([]string{"Cheese", "Mushrooms", "Olives"})

	input, err := ws.AddTextBox("Name", 2, 1, 1, 1, "")
	if err != nil {
		return err
	}
	input.OnSubmit = func(text string) {
		root.ShowMessagePopup("Hello", fmt.Sprintf("Nice to meet you, %s.", text))
	}

	volume, err := ws.AddSlider("Volume", 2, 2, 1, 1, 0, 100, 5, 40)
	if err != nil {
		return err
	}
	volume.ShowValue = true
	volume.OnChange = func(v int) { root.Logf("volume=%d", v) }

	ws.BindRune('q', root.Stop)
	ws.BindRune('d', root.ToggleLiveDebug)
	return root.ApplyWidgetSet(ws)
}

func runAction(root *tui.Root, item string) {
	switch item {
	case "Message popup":
		root.ShowMessagePopup("Message", "This is a plain message popup.")
	case "Warning popup":
		root.ShowWarningPopup("Warning", "Something needs your attention.")
	case "Yes/No popup":
		root.ShowYesNoPopup("Confirm", "Proceed with the operation?", func(yes bool) {
			root.Logf("answer=%v", yes)
		})
	case "Text entry popup":
		root.ShowTextBoxPopup("Enter a value", "", func(text string) {
			root.Logf("entered %q", text)
		})
	case "Menu popup":
		root.ShowMenuPopup("Pick one", []string{"alpha", "beta", "gamma"}, func(choice string) {
			root.Logf("picked %s", choice)
		})
	case "Form popup":
		if _, err := root.ShowFormPopup("New User", []string{"Name*", "Email*", "Nickname"}, func(values map[string]string) {
			root.Logf("form: %v", values)
		}); err != nil {
			root.ShowWarningPopup("Form Error", err.Error())
		}
	case "File dialog":
		showHidden := config.System().GetBool("filedialog", "showHidden", false)
		dialog := root.ShowFileDialogPopup("Open File", ".", popups.PickFile, func(path string) {
			root.Logf("chose %s", path)
		})
		dialog.ShowHidden = showHidden
	case "Loading spinner":
		popup := root.ShowLoadingIconPopup("Working", "Crunching numbers", func() {
			root.ShowMessagePopup("Done", "The background work finished.")
		})
		go func(p *popups.Progress) {
			time.Sleep(3 * time.Second)
			p.MarkComplete()
		}(popup.Progress())
	case "Loading bar":
		popup := root.ShowLoadingBarPopup("Downloading", 20, func() {
			root.ShowMessagePopup("Done", "All chunks fetched.")
		})
		go func(p *popups.Progress) {
			for i := 0; i < 20; i++ {
				time.Sleep(150 * time.Millisecond)
				p.Increment()
			}
			p.MarkComplete()
		}(popup.Progress())
	case "Toggle debug log":
		root.ToggleLiveDebug()
	}
}

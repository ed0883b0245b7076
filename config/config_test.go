// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import "testing"

func TestRegisterDefaultsDoesNotOverwrite(t *testing.T) {
	cfg := Config{
		"borders": "ascii",
		"input":   map[string]interface{}{"exitKey": "ctrl-c"},
	}
	applyDefaults(cfg)
	if got := cfg.GetString("", "borders", ""); got != "ascii" {
		t.Errorf("borders = %q, want existing value kept", got)
	}
	if got := cfg.GetString("input", "exitKey", ""); got != "ctrl-c" {
		t.Errorf("exitKey = %q, want ctrl-c", got)
	}
	// Missing keys pick up defaults.
	if got := cfg.GetString("", "syntaxStyle", ""); got != "monokai" {
		t.Errorf("syntaxStyle = %q, want monokai", got)
	}
	if got := cfg.GetBool("filedialog", "showHidden", true); got {
		t.Error("showHidden default should be false")
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"section": map[string]interface{}{
			"str":      "value",
			"intFloat": 42.0, // JSON numbers decode as float64
			"intGo":    7,    // registered defaults stay Go-typed
			"flag":     true,
		},
	}
	if got := cfg.GetString("section", "str", "x"); got != "value" {
		t.Errorf("GetString = %q", got)
	}
	if got := cfg.GetInt("section", "intFloat", 0); got != 42 {
		t.Errorf("GetInt float = %d, want 42", got)
	}
	if got := cfg.GetInt("section", "intGo", 0); got != 7 {
		t.Errorf("GetInt int = %d, want 7", got)
	}
	if !cfg.GetBool("section", "flag", false) {
		t.Error("GetBool failed")
	}
	// Fallbacks for missing sections, missing keys and mismatched types.
	if got := cfg.GetInt("missing", "k", 9); got != 9 {
		t.Errorf("missing section = %d, want default 9", got)
	}
	if got := cfg.GetString("section", "missing", "fb"); got != "fb" {
		t.Errorf("missing key = %q, want fb", got)
	}
	if got := cfg.GetInt("section", "str", 5); got != 5 {
		t.Errorf("mismatched type = %d, want default 5", got)
	}
	if cfg.GetBool("section", "intFloat", false) {
		t.Error("number treated as bool")
	}
}

func TestSetAppliesDefaults(t *testing.T) {
	Set(Config{"borders": "ascii"})
	cfg := System()
	if got := cfg.GetString("", "borders", ""); got != "ascii" {
		t.Errorf("borders = %q, want ascii", got)
	}
	if got := cfg.GetString("input", "exitKey", ""); got != "ctrl-q" {
		t.Errorf("exitKey = %q, want default ctrl-q", got)
	}
}

func TestTopLevelSection(t *testing.T) {
	cfg := Config{"k": "v"}
	sec := cfg.Section("")
	if sec["k"] != "v" {
		t.Error("empty section name should address the top level")
	}
	if cfg.Section("nope") != nil {
		t.Error("unknown section should be nil")
	}
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the tessera configuration file.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"borders":     "rounded",
		"syntaxStyle": "monokai",
	})
	cfg.RegisterDefaults("input", Section{
		"exitKey": "ctrl-q",
	})
	cfg.RegisterDefaults("filedialog", Section{
		"showHidden": false,
	})
	cfg.RegisterDefaults("log", Section{
		"file": "",
	})
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package colorize

import (
	"strings"
	"testing"
)

func joinFragments(frags []Fragment) string {
	var sb strings.Builder
	for _, f := range frags {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

func TestRegexRuleSplitsLine(t *testing.T) {
	rule, err := NewRegexRule(`\bfunc\b`, 7, true)
	if err != nil {
		t.Fatalf("NewRegexRule: %v", err)
	}
	const line = "func main() func"
	frags := rule.Apply(line)
	if got := joinFragments(frags); got != line {
		t.Errorf("fragments join to %q, want %q", got, line)
	}
	want := []Fragment{
		{Text: "func", Pair: 7, Bold: true},
		{Text: " main() "},
		{Text: "func", Pair: 7, Bold: true},
	}
	if len(frags) != len(want) {
		t.Fatalf("fragments = %+v, want %+v", frags, want)
	}
	for i := range want {
		if frags[i] != want[i] {
			t.Errorf("fragment %d = %+v, want %+v", i, frags[i], want[i])
		}
	}
}

func TestRegexRuleNoMatch(t *testing.T) {
	rule, _ := NewRegexRule(`xyz`, 3, false)
	frags := rule.Apply("plain text")
	if len(frags) != 1 || frags[0].Pair != 0 {
		t.Errorf("fragments = %+v, want one inherited fragment", frags)
	}
}

func TestRegexRuleInvalidPattern(t *testing.T) {
	if _, err := NewRegexRule(`(`, 1, false); err == nil {
		t.Error("invalid pattern should fail construction")
	}
}

func TestApplyAllFirstRuleWins(t *testing.T) {
	numbers, _ := NewRegexRule(`\d+`, 2, false)
	words, _ := NewRegexRule(`\w+`, 5, false)
	const line = "abc 123 def"
	frags := ApplyAll([]Rule{numbers, words}, line)
	if got := joinFragments(frags); got != line {
		t.Fatalf("fragments join to %q, want %q", got, line)
	}
	for _, f := range frags {
		switch f.Text {
		case "123":
			if f.Pair != 2 {
				t.Errorf("number pair = %d, want 2 (first rule wins)", f.Pair)
			}
		case "abc", "def":
			if f.Pair != 5 {
				t.Errorf("word %q pair = %d, want 5", f.Text, f.Pair)
			}
		}
	}
}

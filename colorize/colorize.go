// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: colorize/colorize.go
// Summary: Text-fragment coloring rules consumed by the text renderers.
// The renderer only sees the Rule interface; rule construction lives here.

package colorize

import "regexp"

// Fragment is a run of text drawn in one color pair. Pair <= 0 inherits
// the drawing widget's own pair.
type Fragment struct {
	Text string
	Pair int
	Bold bool
}

// Rule splits a line into colored fragments. Rules must cover the whole
// line: the concatenated fragment text equals the input.
type Rule interface {
	Apply(line string) []Fragment
}

// RegexRule colors every match of a pattern with a fixed pair, leaving
// the rest of the line to inherit.
type RegexRule struct {
	re   *regexp.Regexp
	pair int
	bold bool
}

// NewRegexRule compiles a pattern rule. An invalid pattern is a
// construction error.
func NewRegexRule(pattern string, pair int, bold bool) (*RegexRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexRule{re: re, pair: pair, bold: bold}, nil
}

func (r *RegexRule) Apply(line string) []Fragment {
	locs := r.re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return []Fragment{{Text: line}}
	}
	var out []Fragment
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			out = append(out, Fragment{Text: line[prev:loc[0]]})
		}
		out = append(out, Fragment{Text: line[loc[0]:loc[1]], Pair: r.pair, Bold: r.bold})
		prev = loc[1]
	}
	if prev < len(line) {
		out = append(out, Fragment{Text: line[prev:]})
	}
	return out
}

// ApplyAll runs rules in order; the first rule producing a non-inherit
// fragment for a region wins. Later rules only recolor still-inherited
// fragments.
func ApplyAll(rules []Rule, line string) []Fragment {
	frags := []Fragment{{Text: line}}
	for _, rule := range rules {
		var next []Fragment
		for _, f := range frags {
			if f.Pair > 0 {
				next = append(next, f)
				continue
			}
			next = append(next, rule.Apply(f.Text)...)
		}
		frags = next
	}
	return frags
}

// Copyright © 2026 Tessera contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: colorize/highlight.go
// Summary: Syntax-highlighting Rule backed by chroma, with the lexer
// picked through enry language detection. Token colors are registered as
// custom theme pairs on first use.

package colorize

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/tessera/theme"
)

const defaultStyleName = "monokai"

// SyntaxRule colors source lines by lexing them with chroma. Each line
// is tokenised independently, so multi-line constructs (block comments)
// color per-line only; acceptable for viewer widgets.
type SyntaxRule struct {
	lexer chroma.Lexer
	style *chroma.Style
	base  chroma.Colour
	pairs map[chroma.Colour]int
}

// NewSyntaxRule picks a lexer for the given filename and content. The
// language is detected with enry first; when enry is undecided, chroma's
// filename matching is tried, then content analysis, then the fallback.
func NewSyntaxRule(filename, content, styleName string) *SyntaxRule {
	var lexer chroma.Lexer
	if lang := enry.GetLanguage(filename, []byte(content)); lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if styleName == "" {
		styleName = defaultStyleName
	}
	style := styles.Get(styleName)
	return &SyntaxRule{
		lexer: chroma.Coalesce(lexer),
		style: style,
		base:  style.Get(chroma.Text).Colour,
		pairs: make(map[chroma.Colour]int),
	}
}

// Apply tokenises one line into colored fragments.
func (s *SyntaxRule) Apply(line string) []Fragment {
	tokens, err := chroma.Tokenise(s.lexer, nil, line)
	if err != nil {
		return []Fragment{{Text: line}}
	}
	var out []Fragment
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		text := strings.TrimRight(tok.Value, "\n")
		if text == "" {
			continue
		}
		entry := s.style.Get(tok.Type)
		out = append(out, Fragment{
			Text: text,
			Pair: s.pairFor(entry.Colour),
			Bold: entry.Bold == chroma.Yes,
		})
	}
	if len(out) == 0 {
		return []Fragment{{Text: line}}
	}
	return out
}

// pairFor maps a chroma color to a registered theme pair, caching the
// registration. Base-text and unset colors inherit the widget pair; so
// does any color arriving after the pair limit is hit.
func (s *SyntaxRule) pairFor(c chroma.Colour) int {
	if !c.IsSet() || c == s.base {
		return 0
	}
	if pair, ok := s.pairs[c]; ok {
		return pair
	}
	fg := tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
	pair, err := theme.RegisterPair(fg, tcell.ColorBlack)
	if err != nil {
		pair = 0
	}
	s.pairs[c] = pair
	return pair
}

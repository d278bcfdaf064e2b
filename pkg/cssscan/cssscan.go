// Package cssscan provides lightweight CSS scanning for convention rules.
// It wraps the tdewolff/parse css grammar iterator to extract property
// declarations from inline style attributes and rulesets from <style>
// blocks. It is a scanner, not a style engine: values are kept as
// normalized raw text plus the color and var() facts the rules need.
package cssscan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Decl is one property declaration from a style attribute or ruleset.
type Decl struct {
	// Property is the property name. Regular properties are lowercased;
	// custom properties (--like-this) keep their case, which is significant.
	Property string

	// Value is the declaration value as normalized raw text:
	// whitespace runs collapsed to single spaces.
	Value string

	// Custom is true for custom property declarations.
	Custom bool

	// Colors holds raw color literals (hex, rgb()/rgba()/hsl()/hsla())
	// found in the value, excluding anything inside a var() reference.
	Colors []string

	// UsesVar is true if the value contains a var() reference.
	UsesVar bool
}

// Ruleset is one selector group with its declarations from a stylesheet.
type Ruleset struct {
	// Selectors are the comma-separated selectors, trimmed.
	Selectors []string

	// Decls are the declarations inside the block, in source order.
	Decls []Decl
}

// Stylesheet is the scanned content of one <style> block.
// Rulesets inside at-rule blocks (@media and friends) are included.
type Stylesheet struct {
	Rulesets []Ruleset
}

// ScanDecls parses the contents of an inline style attribute into
// declarations. Returns an error only when the scanner cannot make
// sense of the input at all; CSS-level recovery is left to the parser.
func ScanDecls(src string) ([]Decl, error) {
	input := parse.NewInputString(src)
	p := css.NewParser(input, true)

	var decls []Decl
	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("scan declarations: %w", err)
			}
			return decls, nil

		case css.DeclarationGrammar:
			decls = append(decls, newDecl(string(data), p.Values(), false))

		case css.CustomPropertyGrammar:
			decls = append(decls, newDecl(string(data), p.Values(), true))
		}
	}
}

// ScanStylesheet parses stylesheet text (the contents of a <style>
// element) into rulesets.
func ScanStylesheet(src string) (*Stylesheet, error) {
	input := parse.NewInputString(src)
	p := css.NewParser(input, false)

	sheet := &Stylesheet{}
	var current *Ruleset

	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("scan stylesheet: %w", err)
			}
			return sheet, nil

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			current = &Ruleset{Selectors: splitSelectors(data, p.Values())}

		case css.DeclarationGrammar:
			if current != nil {
				current.Decls = append(current.Decls, newDecl(string(data), p.Values(), false))
			}

		case css.CustomPropertyGrammar:
			if current != nil {
				current.Decls = append(current.Decls, newDecl(string(data), p.Values(), true))
			}

		case css.EndRulesetGrammar:
			if current != nil {
				sheet.Rulesets = append(sheet.Rulesets, *current)
				current = nil
			}
		}
	}
}

// newDecl builds a Decl from a property name and its value tokens.
func newDecl(property string, values []css.Token, custom bool) Decl {
	if custom {
		raw := rawTokenText(values)
		return Decl{
			Property: property,
			Value:    strings.TrimSpace(raw),
			Custom:   true,
			Colors:   scanRawColors(raw),
			UsesVar:  strings.Contains(strings.ToLower(raw), "var("),
		}
	}

	d := Decl{
		Property: strings.ToLower(property),
		Value:    normalizeValue(values),
	}
	d.Colors, d.UsesVar = analyzeValueTokens(values)
	return d
}

// normalizeValue joins value tokens, collapsing whitespace runs to
// single spaces.
func normalizeValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// rawTokenText concatenates token data verbatim.
func rawTokenText(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return sb.String()
}

// splitSelectors builds selector strings from the ruleset prelude tokens,
// split on commas for grouped selectors.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

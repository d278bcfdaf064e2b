package cssscan

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// colorFunctions are the function tokens treated as raw color literals.
// Data of a FunctionToken includes the opening parenthesis.
var colorFunctions = map[string]struct{}{
	"rgb(":  {},
	"rgba(": {},
	"hsl(":  {},
	"hsla(": {},
}

// analyzeValueTokens walks a declaration's value tokens, collecting raw
// color literals and noting var() references. Tokens inside a var() are
// not scanned: fallback colors inside a variable reference are the
// variable's business, not the declaration's.
func analyzeValueTokens(tokens []css.Token) (colors []string, usesVar bool) {
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		switch t.TokenType {
		case css.FunctionToken:
			name := strings.ToLower(string(t.Data))
			if name == "var(" {
				usesVar = true
				i = skipBalanced(tokens, i)
				continue
			}
			if _, ok := colorFunctions[name]; ok {
				literal, end := collectFunction(tokens, i)
				colors = append(colors, literal)
				i = end
			}

		case css.HashToken:
			if isHexColor(string(t.Data)) {
				colors = append(colors, string(t.Data))
			}
		}
	}
	return colors, usesVar
}

// skipBalanced returns the index of the parenthesis closing the function
// token at start, or the last index if the value is truncated.
func skipBalanced(tokens []css.Token, start int) int {
	depth := 0
	for j := start; j < len(tokens); j++ {
		switch tokens[j].TokenType {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return len(tokens) - 1
}

// collectFunction renders the function call starting at start,
// returning it with the index of its closing parenthesis. The parser
// drops whitespace between component values, so each comma is rendered
// with a trailing space to match how the literal is written in source.
func collectFunction(tokens []css.Token, start int) (string, int) {
	end := skipBalanced(tokens, start)

	var sb strings.Builder
	for j := start; j <= end; j++ {
		t := tokens[j]
		if t.TokenType == css.WhitespaceToken {
			continue
		}
		sb.Write(t.Data)
		if t.TokenType == css.CommaToken {
			sb.WriteByte(' ')
		}
	}
	return sb.String(), end
}

// isHexColor reports whether s is a #-prefixed hex color literal of
// 3, 4, 6 or 8 digits.
func isHexColor(s string) bool {
	if len(s) < 2 || s[0] != '#' {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// scanRawColors finds color literals in raw value text. Custom property
// values reach the parser as a single opaque token, so they are scanned
// bytewise rather than via the token stream. var() regions are skipped.
func scanRawColors(s string) []string {
	var colors []string
	lower := strings.ToLower(s)

	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(lower[i:], "var(") {
			i = skipRawParens(s, i+3)
			continue
		}

		if s[i] == '#' {
			j := i + 1
			for j < len(s) && isHexDigit(s[j]) {
				j++
			}
			if isHexColor(s[i:j]) {
				colors = append(colors, s[i:j])
			}
			i = j - 1
			continue
		}

		for name := range colorFunctions {
			if strings.HasPrefix(lower[i:], name) {
				end := skipRawParens(s, i+len(name)-1)
				colors = append(colors, collapseSpaces(s[i:min(end+1, len(s))]))
				i = end
				break
			}
		}
	}
	return colors
}

// skipRawParens returns the index of the parenthesis matching the one
// at open, or the last index if unbalanced.
func skipRawParens(s string, open int) int {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return len(s) - 1
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

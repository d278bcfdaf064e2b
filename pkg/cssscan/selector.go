package cssscan

import "strings"

// IsRootSelector reports whether a selector targets the document root
// scope, where global custom properties are conventionally declared.
func IsRootSelector(sel string) bool {
	switch strings.ToLower(strings.TrimSpace(sel)) {
	case ":root", "html":
		return true
	}
	return false
}

// IsThemeScoped reports whether a selector is scoped by a data-theme
// attribute anywhere in its text, e.g. `[data-theme="dark"] .card`.
func IsThemeScoped(sel string) bool {
	return strings.Contains(strings.ToLower(sel), "[data-theme")
}

// ClassSelectorTokens returns the class names of a pure class selector:
// ".card" yields ["card"], ".card.active" yields ["card", "active"].
// Selectors with combinators, pseudo-classes, attributes or any other
// parts yield nil; matching those against an element would need a real
// selector engine.
func ClassSelectorTokens(sel string) []string {
	s := strings.TrimSpace(sel)
	if !strings.HasPrefix(s, ".") {
		return nil
	}
	if strings.ContainsAny(s, " \t\n>+~:[]()#*") {
		return nil
	}

	tokens := strings.Split(s[1:], ".")
	for _, tok := range tokens {
		if tok == "" {
			return nil
		}
	}
	return tokens
}

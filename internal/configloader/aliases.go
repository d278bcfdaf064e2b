// Package configloader provides configuration loading and resolution.
package configloader

import "strings"

// ruleAliases maps rule names to their canonical rule IDs. This enables
// configuration files that use either the rule ID (HC007) or the name
// (duplicate-id). The htmlhint names cover the rules we have a direct
// counterpart for, so migrated configs keep working.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ruleAliases = map[string]string{
	// Structure
	"duplicate-inline-svg": "HC001",
	"absolute-positioning": "HC004",
	"deep-nesting":         "HC008",

	// Components
	"missing-component-marker": "HC002",
	"state-via-class":          "HC003",

	// Theme
	"hardcoded-color":        "HC005",
	"missing-theme-selector": "HC006",

	// Ids
	"duplicate-id":       "HC007",
	"dangling-reference": "HC009",

	// htmlhint compatibility
	"id-unique":             "HC007",
	"inline-style-disabled": "HC005",
}

// ruleTags maps tag names to the rule IDs they contain. Tags can be used
// in configuration to enable/disable groups of rules at once.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ruleTags = map[string][]string{
	"components": {"HC002", "HC003"},
	"ids":        {"HC007", "HC009"},
	"structure":  {"HC001", "HC004", "HC008"},
	"svg":        {"HC001"},
	"theme":      {"HC005", "HC006"},
}

// NormalizeRuleID converts a rule alias or ID to its canonical rule ID.
// Returns empty string if the key is not a recognized rule ID or alias.
func NormalizeRuleID(key string) string {
	// Check if already a rule ID (starts with HC)
	upper := strings.ToUpper(key)
	if strings.HasPrefix(upper, "HC") {
		return upper
	}

	// Check aliases
	if id, ok := ruleAliases[key]; ok {
		return id
	}

	return ""
}

// IsTag returns true if the key is a recognized tag name.
func IsTag(key string) bool {
	_, ok := ruleTags[key]
	return ok
}

// GetTagRules returns the rule IDs associated with a tag.
// Returns nil if the tag is not recognized.
func GetTagRules(tag string) []string {
	return ruleTags[tag]
}

// GetAllRuleIDs returns a slice of all known rule IDs.
func GetAllRuleIDs() []string {
	// Build a set of all rule IDs from aliases
	seen := make(map[string]struct{})
	for _, id := range ruleAliases {
		seen[id] = struct{}{}
	}

	// Convert to slice
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	return ids
}

// GetAliasesForRule returns all aliases for a given rule ID.
func GetAliasesForRule(ruleID string) []string {
	var aliases []string
	for alias, id := range ruleAliases {
		if id == ruleID {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

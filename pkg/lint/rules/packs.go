package rules

import "github.com/yaklabco/gohtmlint/pkg/config"

// Pack describes a named group of rule defaults for a particular use case.
// Packs are configuration fragments that can be used as starting points
// for .gohtmlint.yml files.
type Pack struct {
	// Name is the short identifier for the pack (e.g., "core", "strict").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string

	// Rules contains rule configurations keyed by rule ID.
	Rules map[string]config.RuleConfig
}

// CorePack returns the core pack: the component-structure rules markup
// needs to convert cleanly, at their default severities.
func CorePack() Pack {
	return Pack{
		Name:        "core",
		Description: "Component-structure rules for convertible markup",
		Rules: map[string]config.RuleConfig{
			"HC001": enabled("warning"), // duplicate-inline-svg
			"HC002": enabled("warning"), // missing-component-marker
			"HC003": enabled("warning"), // state-via-class
			"HC007": enabled("error"),   // duplicate-id
			"HC009": enabled("warning"), // dangling-reference
		},
	}
}

// StrictPack returns every rule promoted to error severity,
// suitable for CI gates on component libraries.
func StrictPack() Pack {
	return Pack{
		Name:        "strict",
		Description: "Strict pack: all rules as errors for CI gates",
		Rules: map[string]config.RuleConfig{
			"HC001": enabled("error"), // duplicate-inline-svg
			"HC002": enabled("error"), // missing-component-marker
			"HC003": enabled("error"), // state-via-class
			"HC004": enabled("error"), // absolute-positioning
			"HC005": enabled("error"), // hardcoded-color
			"HC006": enabled("error"), // missing-theme-selector
			"HC007": enabled("error"), // duplicate-id
			"HC008": enabled("error"), // deep-nesting
			"HC009": enabled("error"), // dangling-reference
		},
	}
}

// RelaxedPack returns a relaxed pack with minimal noise,
// suitable for legacy markup being cleaned up incrementally.
func RelaxedPack() Pack {
	return Pack{
		Name:        "relaxed",
		Description: "Relaxed pack: structural integrity only, minimal noise",
		Rules: map[string]config.RuleConfig{
			"HC007": enabled("error"),   // duplicate-id
			"HC009": enabled("warning"), // dangling-reference
		},
	}
}

// TokensPack returns rules tuned for design-token discipline: theming
// and color checks promoted to warnings.
func TokensPack() Pack {
	return Pack{
		Name:        "tokens",
		Description: "Design-token pack: theming and color discipline",
		Rules: map[string]config.RuleConfig{
			"HC005": enabled("warning"), // hardcoded-color
			"HC006": enabled("warning"), // missing-theme-selector
			"HC003": enabled("warning"), // state-via-class
		},
	}
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		CorePack(),
		StrictPack(),
		RelaxedPack(),
		TokensPack(),
	}
}

// PackByName returns a pack by name, or nil if not found.
func PackByName(name string) *Pack {
	for _, p := range Packs() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

// PackNames returns the names of all available packs.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}

// enabled creates a RuleConfig with the rule enabled and the given severity.
func enabled(sev string) config.RuleConfig {
	enabled := true
	return config.RuleConfig{
		Enabled:  &enabled,
		Severity: &sev,
	}
}

package rules

import (
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// RegisterAll registers all built-in rules, in catalog order.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewDuplicateInlineSVGRule())     // HC001
	registry.Register(NewMissingComponentMarkerRule()) // HC002
	registry.Register(NewStateViaClassRule())          // HC003
	registry.Register(NewAbsolutePositioningRule())    // HC004
	registry.Register(NewHardcodedColorRule())         // HC005
	registry.Register(NewMissingThemeSelectorRule())   // HC006
	registry.Register(NewDuplicateIDRule())            // HC007
	registry.Register(NewDeepNestingRule())            // HC008
	registry.Register(NewDanglingReferenceRule())      // HC009
}

// RegisterLegacyAliases registers htmlhint rule names that map onto
// gohtmlint rules, for configurations converted with `gohtmlint migrate`.
func RegisterLegacyAliases(registry *lint.Registry) {
	// htmlhint id-unique is the duplicate-id check.
	registry.RegisterAlias("id-unique", "HC007")

	// htmlhint inline-style-disabled is broader, but hardcoded-color is
	// the closest check migrated configs expect to keep firing.
	registry.RegisterAlias("inline-style-disabled", "HC005")
}

// ruleInfos exposes the registered rule catalog for template generation.
func ruleInfos() []config.RuleInfo {
	rules := lint.DefaultRegistry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Severity:    rule.DefaultSeverity(),
			Tags:        rule.Tags(),
			CanFix:      rule.CanFix(),
		})
	}
	return infos
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterLegacyAliases(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = ruleInfos
}

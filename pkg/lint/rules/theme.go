package rules

import (
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/cssscan"
	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// MissingThemeSelectorRule flags documents that declare color-bearing
// custom properties at root scope without any [data-theme] scoped
// ruleset providing themed alternatives.
type MissingThemeSelectorRule struct {
	lint.BaseRule
}

// NewMissingThemeSelectorRule creates a new missing theme selector rule.
func NewMissingThemeSelectorRule() *MissingThemeSelectorRule {
	return &MissingThemeSelectorRule{
		BaseRule: lint.NewBaseRule(
			"HC006",
			"missing-theme-selector",
			"Root-scope color tokens without a [data-theme] scoped ruleset cannot switch themes",
			[]string{"theming", "tokens"},
			false,
		),
	}
}

// DefaultSeverity returns info: a single-theme document is legitimate,
// the rule points out the missing second half of the token setup.
func (r *MissingThemeSelectorRule) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// Apply scans all <style> blocks once. The theme-scoped check is
// document-wide: root tokens in one block are satisfied by a
// [data-theme] ruleset in any other. Unreadable blocks degrade to skip
// notes and do not count either way.
func (r *MissingThemeSelectorRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	var firstRootTokens *dom.Node
	themed := false

	for _, block := range ctx.StyleBlocks() {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if block.Err != nil {
			diags = append(diags, skipNote(r.ID(), block.Node, "style block could not be scanned"))
			continue
		}

		for _, ruleset := range block.Sheet.Rulesets {
			for _, sel := range ruleset.Selectors {
				if cssscan.IsThemeScoped(sel) {
					themed = true
				}
				if firstRootTokens == nil && cssscan.IsRootSelector(sel) && declaresColorTokens(ruleset.Decls) {
					firstRootTokens = block.Node
				}
			}
		}
	}

	if firstRootTokens != nil && !themed {
		diags = append(diags, lint.NewDiagnostic(r.ID(), firstRootTokens,
			"Color custom properties are defined at root scope but no [data-theme] scoped ruleset exists").
			WithSuggestion("Add a [data-theme=\"dark\"] (or similar) ruleset overriding the color tokens").
			Build())
	}

	return diags, nil
}

// declaresColorTokens reports whether a declaration list contains a
// custom property whose value carries a color literal.
func declaresColorTokens(decls []cssscan.Decl) bool {
	for _, d := range decls {
		if d.Custom && len(d.Colors) > 0 {
			return true
		}
	}
	return false
}

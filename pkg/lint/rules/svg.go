package rules

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// DuplicateInlineSVGRule flags repeated inline SVG subtrees that should
// be a shared <symbol> definition referenced via <use>.
type DuplicateInlineSVGRule struct {
	lint.BaseRule
}

// NewDuplicateInlineSVGRule creates a new duplicate inline SVG rule.
func NewDuplicateInlineSVGRule() *DuplicateInlineSVGRule {
	return &DuplicateInlineSVGRule{
		BaseRule: lint.NewBaseRule(
			"HC001",
			"duplicate-inline-svg",
			"Identical inline SVG markup repeated instead of a shared symbol with use references",
			[]string{"svg", "components"},
			false,
		),
	}
}

// Apply groups the document's <svg> elements by the fingerprint of their
// child markup and reports each group that repeats.
//
// An <svg> is exempt when it is a definition site (contains <symbol>) or
// already an instance (contains <use>). Empty <svg> elements carry no
// duplicated markup and are ignored.
func (r *DuplicateInlineSVGRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	type group struct {
		first *dom.Node
		count int
	}

	groups := make(map[string]*group)
	var order []string

	for _, svg := range ctx.ElementsByTag("svg") {
		if ctx.Cancelled() {
			return nil, ctx.Ctx.Err()
		}

		if lint.SubtreeContainsTag(svg, "symbol") || lint.SubtreeContainsTag(svg, "use") {
			continue
		}

		fp := dom.ChildFingerprint(svg)
		if fp == "" {
			continue
		}

		g, ok := groups[fp]
		if !ok {
			groups[fp] = &group{first: svg, count: 1}
			order = append(order, fp)
			continue
		}
		g.count++
	}

	var diags []lint.Diagnostic
	for _, fp := range order {
		g := groups[fp]
		if g.count < 2 {
			continue
		}

		diag := lint.NewDiagnostic(r.ID(), g.first,
			fmt.Sprintf("Inline <svg> markup repeated %d times", g.count)).
			WithSuggestion("Define the graphic once in a <symbol> and reference it with <use href=\"#...\">").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

package rules

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// DefaultMaxNesting is the default element nesting depth limit.
// Deeply nested markup converts into deeply nested layers, which is a
// sign the structure should be flattened into components.
const DefaultMaxNesting = 24

// DeepNestingRule flags element nesting beyond a configured maximum.
type DeepNestingRule struct {
	lint.BaseRule
}

// NewDeepNestingRule creates a new deep nesting rule.
func NewDeepNestingRule() *DeepNestingRule {
	return &DeepNestingRule{
		BaseRule: lint.NewBaseRule(
			"HC008",
			"deep-nesting",
			"Element nesting depth exceeds the configured maximum",
			[]string{"layout", "structure"},
			false,
		),
	}
}

// Apply reports the elements that cross the depth limit: the shallowest
// offender on each branch, not every descendant below it.
func (r *DeepNestingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	maxDepth := ctx.OptionInt("max_depth", DefaultMaxNesting)
	if maxDepth < 1 {
		maxDepth = DefaultMaxNesting
	}

	var diags []lint.Diagnostic

	err := dom.WalkElements(ctx.Root, func(n *dom.Node) error {
		if ctx.Cancelled() {
			return ctx.Ctx.Err()
		}

		// Depth() counts ancestors; the element's own level is one more.
		level := n.Depth() + 1
		if level <= maxDepth {
			return nil
		}
		// Report only the boundary crossing; children are implied.
		if n.Parent != nil && n.Parent.Kind == dom.NodeElement && n.Parent.Depth()+1 > maxDepth {
			return nil
		}

		diags = append(diags, lint.NewDiagnostic(r.ID(), n,
			fmt.Sprintf("Element nested %d levels deep exceeds the maximum of %d", level, maxDepth)).
			WithSuggestion("Flatten the structure or extract the subtree into a component").
			Build())
		return nil
	})
	if err != nil {
		return diags, err
	}

	return diags, nil
}

package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// defaultStateLexicon is the built-in set of class tokens treated as
// component state markers. Matching is case-insensitive.
var defaultStateLexicon = []string{"active", "disabled", "hover", "focus", "error"}

// MissingComponentMarkerRule flags containers whose children repeat the
// same structure without any of them carrying a data-component marker.
type MissingComponentMarkerRule struct {
	lint.BaseRule
}

// NewMissingComponentMarkerRule creates a new missing component marker rule.
func NewMissingComponentMarkerRule() *MissingComponentMarkerRule {
	return &MissingComponentMarkerRule{
		BaseRule: lint.NewBaseRule(
			"HC002",
			"missing-component-marker",
			"Repeated sibling structures should carry a data-component attribute",
			[]string{"components"},
			false,
		),
	}
}

// Apply groups each container's element children by tag and class shape
// and reports shapes repeated at least twice where no repeat carries
// data-component.
//
// Only classed children are considered: repeating plain tags (list
// items, table rows) is ordinary HTML, not an unmarked component.
func (r *MissingComponentMarkerRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	containers := ctx.Elements()
	for _, container := range containers {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		type group struct {
			first  *dom.Node
			count  int
			marked bool
		}

		groups := make(map[string]*group)
		var order []string

		for _, child := range container.Elements() {
			if len(child.ClassList()) == 0 {
				continue
			}

			shape := lint.ClassShape(child)
			g, ok := groups[shape]
			if !ok {
				g = &group{first: child}
				groups[shape] = g
				order = append(order, shape)
			}
			g.count++
			if child.HasAttr("data-component") {
				g.marked = true
			}
		}

		for _, shape := range order {
			g := groups[shape]
			if g.count < 2 || g.marked {
				continue
			}

			diag := lint.NewDiagnostic(r.ID(), g.first,
				fmt.Sprintf("Structure <%s> repeats %d times without a data-component marker", shape, g.count)).
				WithSuggestion("Add data-component=\"...\" to the repeated elements so they convert as component instances").
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

// StateViaClassRule flags elements encoding state as a class token
// instead of a data-state attribute.
type StateViaClassRule struct {
	lint.BaseRule
}

// NewStateViaClassRule creates a new state-via-class rule.
func NewStateViaClassRule() *StateViaClassRule {
	return &StateViaClassRule{
		BaseRule: lint.NewBaseRule(
			"HC003",
			"state-via-class",
			"Component state should be expressed with data-state, not a state class token",
			[]string{"components", "state"},
			true,
		),
	}
}

// stateLexicon resolves the active lexicon: the per-rule "states" option
// wins, then the top-level state_lexicon config, then the built-in set.
func (r *StateViaClassRule) stateLexicon(ctx *lint.RuleContext) map[string]struct{} {
	tokens := defaultStateLexicon
	if ctx.Config != nil && len(ctx.Config.StateLexicon) > 0 {
		tokens = ctx.Config.StateLexicon
	}
	tokens = ctx.OptionStringSlice("states", tokens)

	lexicon := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		lexicon[strings.ToLower(tok)] = struct{}{}
	}
	return lexicon
}

// Apply reports elements whose class list contains a lexicon token while
// the element has no data-state attribute. The fix inserts a data-state
// attribute carrying the first matching token.
func (r *StateViaClassRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	lexicon := r.stateLexicon(ctx)
	var diags []lint.Diagnostic

	for _, el := range ctx.ClassedElements() {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if el.HasAttr("data-state") {
			continue
		}

		var matched []string
		for _, cls := range el.ClassList() {
			if _, ok := lexicon[strings.ToLower(cls)]; ok {
				matched = append(matched, cls)
			}
		}
		if len(matched) == 0 {
			continue
		}

		builder := lint.NewDiagnostic(r.ID(), el,
			fmt.Sprintf("State encoded via class %q instead of data-state", strings.Join(matched, " "))).
			WithSuggestion(fmt.Sprintf("Use data-state=%q so the state converts as a variant key", strings.ToLower(matched[0])))

		if offset := lint.StartTagInsertOffset(ctx.File, el); offset >= 0 {
			edits := fix.NewEditBuilder()
			edits.Insert(offset, fmt.Sprintf(" data-state=%q", strings.ToLower(matched[0])))
			builder = builder.WithFix(edits)
		}

		diags = append(diags, builder.Build())
	}

	return diags, nil
}

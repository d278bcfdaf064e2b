package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/cssscan"
	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// defaultOverlayComponents are data-component values that mark a subtree
// as an intentional overlay, where absolute positioning is expected.
var defaultOverlayComponents = []string{
	"modal", "overlay", "dialog", "popover", "tooltip", "dropdown", "toast",
}

// AbsolutePositioningRule flags position:absolute declarations outside
// subtrees marked as intentional overlays.
type AbsolutePositioningRule struct {
	lint.BaseRule
}

// NewAbsolutePositioningRule creates a new absolute positioning rule.
func NewAbsolutePositioningRule() *AbsolutePositioningRule {
	return &AbsolutePositioningRule{
		BaseRule: lint.NewBaseRule(
			"HC004",
			"absolute-positioning",
			"position:absolute outside an intentional overlay component does not convert to Auto Layout",
			[]string{"layout"},
			false,
		),
	}
}

// DefaultSeverity returns info: absolute positioning is sometimes
// deliberate, so the rule advises rather than warns.
func (r *AbsolutePositioningRule) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// Apply checks inline styles and class-matched stylesheet rulesets for
// position:absolute on elements outside an overlay subtree.
//
// Only pure class selectors are matched against elements; anything
// needing a real selector engine is out of scope for a convention check.
// A style value the scanner cannot read degrades to a skip note.
func (r *AbsolutePositioningRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	overlays := overlayLexicon(ctx)
	var diags []lint.Diagnostic

	// Inline style attributes.
	for _, el := range ctx.StyledElements() {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		style, _ := lint.InlineStyle(el)
		decls, err := cssscan.ScanDecls(style)
		if err != nil {
			diags = append(diags, skipNote(r.ID(), el, "style attribute could not be scanned"))
			continue
		}

		if !declaresAbsolute(decls) || withinOverlay(el, overlays) {
			continue
		}

		diags = append(diags, lint.NewDiagnostic(r.ID(), el,
			"Element uses position:absolute outside an overlay component").
			WithSuggestion("Prefer flex or grid flow, or mark the container with an overlay data-component").
			Build())
	}

	// Class rulesets in <style> blocks.
	for _, block := range ctx.StyleBlocks() {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if block.Err != nil {
			diags = append(diags, skipNote(r.ID(), block.Node, "style block could not be scanned"))
			continue
		}

		for _, ruleset := range block.Sheet.Rulesets {
			if !declaresAbsolute(ruleset.Decls) {
				continue
			}

			for _, sel := range ruleset.Selectors {
				tokens := cssscan.ClassSelectorTokens(sel)
				if tokens == nil {
					continue
				}

				for _, el := range elementsMatchingClasses(ctx, tokens) {
					if withinOverlay(el, overlays) {
						continue
					}
					diags = append(diags, lint.NewDiagnostic(r.ID(), el,
						fmt.Sprintf("Element matches %q which declares position:absolute outside an overlay component", sel)).
						WithSuggestion("Prefer flex or grid flow, or mark the container with an overlay data-component").
						Build())
				}
			}
		}
	}

	return diags, nil
}

// overlayLexicon resolves the set of data-component values treated as
// intentional overlays, lowercased for matching.
func overlayLexicon(ctx *lint.RuleContext) map[string]struct{} {
	tokens := ctx.OptionStringSlice("overlay_components", defaultOverlayComponents)
	lexicon := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		lexicon[strings.ToLower(tok)] = struct{}{}
	}
	return lexicon
}

// declaresAbsolute reports whether a declaration list sets
// position:absolute.
func declaresAbsolute(decls []cssscan.Decl) bool {
	for _, d := range decls {
		if d.Property == "position" && strings.EqualFold(d.Value, "absolute") {
			return true
		}
	}
	return false
}

// withinOverlay reports whether the element or an ancestor carries a
// data-component value from the overlay lexicon.
func withinOverlay(el *dom.Node, overlays map[string]struct{}) bool {
	return el.Closest(func(n *dom.Node) bool {
		val, ok := lint.DataComponent(n)
		if !ok {
			return false
		}
		_, overlay := overlays[strings.ToLower(val)]
		return overlay
	}) != nil
}

// elementsMatchingClasses returns elements whose class list contains
// every given token, in document order.
func elementsMatchingClasses(ctx *lint.RuleContext, tokens []string) []*dom.Node {
	var matched []*dom.Node
	for _, el := range ctx.ClassedElements() {
		all := true
		for _, tok := range tokens {
			if !el.HasClass(tok) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, el)
		}
	}
	return matched
}

// skipNote builds the info-level finding recording a degraded
// evaluation: the rule skipped a node it could not read.
func skipNote(ruleID string, node *dom.Node, msg string) lint.Diagnostic {
	return lint.NewDiagnostic(ruleID, node, msg+"; node skipped").
		PinSeverity(config.SeverityInfo).
		Build()
}

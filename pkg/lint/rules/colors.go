package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/cssscan"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// HardcodedColorRule flags raw color literals in inline style attributes
// instead of design-token variable references.
type HardcodedColorRule struct {
	lint.BaseRule
}

// NewHardcodedColorRule creates a new hardcoded color rule.
func NewHardcodedColorRule() *HardcodedColorRule {
	return &HardcodedColorRule{
		BaseRule: lint.NewBaseRule(
			"HC005",
			"hardcoded-color",
			"Inline styles should reference color variables, not raw color literals",
			[]string{"theming", "tokens"},
			false,
		),
	}
}

// DefaultSeverity returns info: a literal color is valid CSS, it just
// does not theme.
func (r *HardcodedColorRule) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// Apply scans each inline style attribute for color literals. Colors
// inside var() fallbacks are not counted. A style value the scanner
// cannot read degrades to a skip note.
func (r *HardcodedColorRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

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

		var literals []string
		for _, d := range decls {
			literals = append(literals, d.Colors...)
		}
		if len(literals) == 0 {
			continue
		}

		diags = append(diags, lint.NewDiagnostic(r.ID(), el,
			fmt.Sprintf("Inline style hardcodes color %s", strings.Join(literals, ", "))).
			WithSuggestion("Reference a design token instead, e.g. var(--color-primary)").
			Build())
	}

	return diags, nil
}

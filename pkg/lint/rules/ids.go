package rules

import (
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// DuplicateIDRule flags id attribute values declared on more than one
// element in the live tree.
type DuplicateIDRule struct {
	lint.BaseRule
}

// NewDuplicateIDRule creates a new duplicate id rule.
func NewDuplicateIDRule() *DuplicateIDRule {
	return &DuplicateIDRule{
		BaseRule: lint.NewBaseRule(
			"HC007",
			"duplicate-id",
			"An id value must be unique within the document",
			[]string{"identity"},
			false,
		),
	}
}

// DefaultSeverity returns error: duplicate ids break use references,
// label associations, and fragment links alike.
func (r *DuplicateIDRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply reports every repeat declaration of an already-declared id.
// Ids inside <template> content are inert and never conflict.
func (r *DuplicateIDRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	index := ctx.IDIndex()
	var diags []lint.Diagnostic

	for _, dup := range index.Duplicates() {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		first := index.Resolve(dup.Value)
		msg := fmt.Sprintf("Duplicate id %q", dup.Value)
		if first != nil && first.Position.IsValid() {
			msg = fmt.Sprintf("Duplicate id %q, first declared at line %d", dup.Value, first.Position.StartLine)
		}

		diags = append(diags, lint.NewDiagnostic(r.ID(), dup.Node, msg).
			WithSuggestion("Rename the id or reference the first declaration instead").
			Build())
	}

	return diags, nil
}

// DanglingReferenceRule flags id references whose target id does not
// exist in the live tree.
type DanglingReferenceRule struct {
	lint.BaseRule
}

// NewDanglingReferenceRule creates a new dangling reference rule.
func NewDanglingReferenceRule() *DanglingReferenceRule {
	return &DanglingReferenceRule{
		BaseRule: lint.NewBaseRule(
			"HC009",
			"dangling-reference",
			"Id references must resolve to an id declared in the document",
			[]string{"identity"},
			false,
		),
	}
}

// Apply reports unresolved references collected by the id index:
// fragment hrefs, label/for, input/list, and aria id lists. The bare
// fragment and #top always resolve.
func (r *DanglingReferenceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, ref := range ctx.IDIndex().Unresolved() {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		diags = append(diags, lint.NewDiagnostic(r.ID(), ref.Node,
			fmt.Sprintf("%s references id %q which is not declared in the document", ref.Attr, ref.Value)).
			WithSuggestion("Declare the target id or fix the reference").
			Build())
	}

	return diags, nil
}

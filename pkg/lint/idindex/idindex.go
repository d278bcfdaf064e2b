// Package idindex provides document-wide id tracking infrastructure for
// linting. It collects id attribute declarations and the references that
// point at them (fragment hrefs, label/for, input/list, aria id lists)
// to support rules that need whole-document analysis, like duplicate-id
// and dangling-reference checks.
package idindex

import (
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

// Declaration represents one element declaring an id attribute value.
type Declaration struct {
	// Value is the id attribute value as written in the source.
	Value string

	// Node is the declaring element.
	Node *dom.Node

	// Position in source.
	Position dom.SourcePosition

	// IsDuplicate indicates this declaration repeats an earlier id.
	IsDuplicate bool

	// RefCount tracks how many references resolve to this declaration.
	RefCount int
}

// Reference represents one attribute value referring to an id.
type Reference struct {
	// Value is the referenced id (fragment marker stripped).
	Value string

	// Attr is the attribute the reference was found in
	// (e.g. "href", "for", "aria-labelledby").
	Attr string

	// Node is the referring element.
	Node *dom.Node

	// Position in source.
	Position dom.SourcePosition

	// Resolved points to the matching declaration (nil if none).
	Resolved *Declaration
}

// Index holds all id-related data for a document.
// It is built once per file and shared across id-tracking rules.
type Index struct {
	// Declarations maps id values to their first declarations.
	Declarations map[string]*Declaration

	// AllDeclarations includes every declaration, duplicates included,
	// in document order.
	AllDeclarations []*Declaration

	// References is all id references in document order.
	References []*Reference

	// File is the source file snapshot.
	File *dom.FileSnapshot
}

// NewIndex creates an empty Index.
func NewIndex(file *dom.FileSnapshot) *Index {
	return &Index{
		Declarations: make(map[string]*Declaration),
		File:         file,
	}
}

// Has reports whether an id is declared anywhere in the live tree.
// Ids are case-sensitive.
func (ix *Index) Has(id string) bool {
	_, ok := ix.Declarations[id]
	return ok
}

// Resolve returns the first declaration of an id, or nil.
func (ix *Index) Resolve(id string) *Declaration {
	return ix.Declarations[id]
}

// Duplicates returns declarations that repeat an earlier id, in
// document order.
func (ix *Index) Duplicates() []*Declaration {
	var dups []*Declaration
	for _, decl := range ix.AllDeclarations {
		if decl.IsDuplicate {
			dups = append(dups, decl)
		}
	}
	return dups
}

// Unresolved returns references whose target id is not declared.
// The bare fragment and the standard top anchor always resolve.
func (ix *Index) Unresolved() []*Reference {
	var unresolved []*Reference
	for _, ref := range ix.References {
		if ref.Resolved != nil || alwaysResolves(ref.Value) {
			continue
		}
		unresolved = append(unresolved, ref)
	}
	return unresolved
}

// alwaysResolves covers fragments valid without a matching id:
// the empty fragment and #top (HTML standard).
func alwaysResolves(id string) bool {
	return id == "" || strings.EqualFold(id, "top")
}

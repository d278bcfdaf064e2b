package idindex

import (
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

// fragmentAttrs are attributes whose value refers to an id when it is a
// pure fragment (starts with #). Values with a path or host component
// point outside the document and are not tracked.
var fragmentAttrs = []string{"href", "xlink:href"}

// singleIDAttrs are attributes whose whole value is one id.
var singleIDAttrs = []string{"list"}

// idListAttrs are attributes holding a space-separated list of ids.
// label/for is a single id but output/for is a list; treating both as
// lists reads each the same way.
var idListAttrs = []string{"for", "aria-labelledby", "aria-describedby"}

// Collect walks the tree and builds the id index for a document.
// Template contents are inert: ids declared inside <template> are not
// live and references inside one are not collected, which falls out of
// the walk never descending into content fragments.
func Collect(root *dom.Node, file *dom.FileSnapshot) *Index {
	ix := NewIndex(file)
	if root == nil {
		return ix
	}

	//nolint:errcheck,revive // the callback never returns an error
	dom.WalkElements(root, func(n *dom.Node) error {
		ix.collectDeclaration(n)
		ix.collectReferences(n)
		return nil
	})

	ix.resolve()
	return ix
}

// collectDeclaration records the element's id attribute, if any.
func (ix *Index) collectDeclaration(n *dom.Node) {
	id, ok := n.Attr("id")
	if !ok || id == "" {
		return
	}

	decl := &Declaration{
		Value:    id,
		Node:     n,
		Position: n.SourcePosition(),
	}

	if _, exists := ix.Declarations[id]; exists {
		decl.IsDuplicate = true
	} else {
		ix.Declarations[id] = decl
	}
	ix.AllDeclarations = append(ix.AllDeclarations, decl)
}

// collectReferences records id references carried by the element's
// attributes.
func (ix *Index) collectReferences(n *dom.Node) {
	for _, attr := range fragmentAttrs {
		val, ok := n.Attr(attr)
		if !ok || !strings.HasPrefix(val, "#") {
			continue
		}
		ix.addReference(strings.TrimPrefix(val, "#"), attr, n)
	}

	for _, attr := range singleIDAttrs {
		val, ok := n.Attr(attr)
		if !ok {
			continue
		}
		if val = strings.TrimSpace(val); val != "" {
			ix.addReference(val, attr, n)
		}
	}

	for _, attr := range idListAttrs {
		val, ok := n.Attr(attr)
		if !ok {
			continue
		}
		for _, id := range strings.Fields(val) {
			ix.addReference(id, attr, n)
		}
	}
}

func (ix *Index) addReference(id, attr string, n *dom.Node) {
	ix.References = append(ix.References, &Reference{
		Value:    id,
		Attr:     attr,
		Node:     n,
		Position: n.SourcePosition(),
	})
}

// resolve links references to declarations and counts usages.
func (ix *Index) resolve() {
	for _, ref := range ix.References {
		if decl, ok := ix.Declarations[ref.Value]; ok {
			ref.Resolved = decl
			decl.RefCount++
		}
	}
}

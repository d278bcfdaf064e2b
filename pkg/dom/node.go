// Package dom provides the DOM-like tree representation for gohtmlint.
// It defines a lossless, immutable view of an HTML document including:
// - FileSnapshot: the complete document representation
// - Node tree: elements and text with source ranges
// - Line index: byte-offset to line/column mapping
package dom

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of a tree node.
type NodeKind uint8

// Node kinds for the markup tree.
const (
	// NodeDocument is the root of a parsed document or fragment.
	// It is also the root kind of a template content fragment.
	NodeDocument NodeKind = iota

	// NodeElement is a tag-delimited element.
	NodeElement

	// NodeText is character data between tags, entity-decoded.
	NodeText
)

// Node represents a single node in the markup tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tag is the element name, lowercased. Empty for document and text nodes.
	Tag string

	// Attrs holds element attributes in source order.
	// Keys are lowercased; values are verbatim source text.
	// On duplicate keys the first occurrence wins.
	Attrs []Attr

	// Data is the entity-decoded character content of a text node.
	Data string

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Content holds the inert fragment of a <template> element.
	// It is a detached NodeDocument root: tree walks never descend
	// into it, and its nodes are not part of the live tree.
	Content *Node

	// Range is the byte span this node covers in the source.
	// For elements it spans the start tag through the end tag.
	Range SourceRange

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot
}

// IsElement returns true if this is an element node.
func (n *Node) IsElement() bool {
	return n.Kind == NodeElement
}

// IsText returns true if this is a text node.
func (n *Node) IsText() bool {
	return n.Kind == NodeText
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Elements returns the direct children that are element nodes.
func (n *Node) Elements() []*Node {
	var elements []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == NodeElement {
			elements = append(elements, child)
		}
	}
	return elements
}

// Depth returns the number of element ancestors above this node.
// A top-level element under the document root has depth 0.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil && p.Kind == NodeElement; p = p.Parent {
		depth++
	}
	return depth
}

// Closest returns the nearest node, starting at n itself and walking
// up through parents, for which the predicate returns true.
// Returns nil if no match is found. The search does not cross a
// template content boundary (fragment roots have no parent).
func (n *Node) Closest(predicate func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if predicate(cur) {
			return cur
		}
	}
	return nil
}

// voidTags is the set of HTML void elements, which never take children.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {},
	"hr": {}, "img": {}, "input": {}, "link": {}, "meta": {},
	"param": {}, "source": {}, "track": {}, "wbr": {},
}

// IsVoid reports whether the given lowercase tag name is a void element.
func IsVoid(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

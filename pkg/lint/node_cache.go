package lint

import "github.com/yaklabco/gohtmlint/pkg/dom"

// NodeCache provides pre-computed collections of tree nodes.
//
// # Purpose
//
// NodeCache improves lint performance by walking the tree once and
// indexing elements by tag and by the attributes rules care about,
// rather than walking it repeatedly for each rule.
//
// Without caching, if 5 rules each scan for styled elements, the tree is
// walked 5 times. With caching, the tree is walked once and all rules
// share the result.
//
// # Usage
//
// NodeCache is used internally by RuleContext. Rules access cached nodes
// via RuleContext methods:
//
//	func (r *MyRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
//	    // Fast: uses cached nodes, no tree walk
//	    svgs := ctx.ElementsByTag("svg")
//
//	    // Slow: walks the tree
//	    svgs := dom.FindByTag(ctx.Root, "svg")
//	}
//
// # IMPORTANT: Do Not Mutate Returned Slices
//
// The slices returned by NodeCache methods are shared across all rules.
// Mutating them (sorting, appending, filtering in place) will corrupt
// the cache and cause incorrect behavior in other rules. If you need to
// mutate a node slice, always copy it first.
//
// # Thread Safety
//
// NodeCache is NOT thread-safe. It is designed for single-threaded use
// within a RuleContext, where rules execute sequentially for a single
// file. File-level parallelism (multiple files linted concurrently) is
// safe because each file gets its own RuleContext and NodeCache.
//
// # Lazy Initialization
//
// The cache is built lazily on first access. Files where no rules need
// node collections pay zero cache cost; the first rule to request any
// collection pays the full build cost; subsequent rules get instant
// access.
type NodeCache struct {
	// elements is every element node in document order.
	elements []*dom.Node

	// byTag indexes elements by lowercase tag name.
	byTag map[string][]*dom.Node

	// withClass is elements with a non-empty class list.
	withClass []*dom.Node

	// withInlineStyle is elements carrying a style attribute.
	withInlineStyle []*dom.Node

	// withID is elements carrying an id attribute.
	withID []*dom.Node

	// Build state
	built bool
}

// Initial capacity constants for pre-allocation based on typical document structure.
const (
	initCapElements    = 256
	initCapWithClass   = 64
	initCapWithStyle   = 16
	initCapWithID      = 16
	initCapPerTagSlice = 8
)

func newNodeCache() *NodeCache {
	return &NodeCache{}
}

// build walks the tree once and categorizes all elements.
// This is O(n) where n is the total number of nodes in the document.
// After build(), all accessor methods return in O(1) time.
func (nc *NodeCache) build(root *dom.Node) {
	if nc.built || root == nil {
		return
	}

	nc.elements = make([]*dom.Node, 0, initCapElements)
	nc.byTag = make(map[string][]*dom.Node)
	nc.withClass = make([]*dom.Node, 0, initCapWithClass)
	nc.withInlineStyle = make([]*dom.Node, 0, initCapWithStyle)
	nc.withID = make([]*dom.Node, 0, initCapWithID)

	// Single walk to categorize all nodes.
	//nolint:errcheck // Walk visitor never returns error in this usage
	dom.Walk(root, func(node *dom.Node) error {
		if node.Kind != dom.NodeElement {
			return nil
		}

		nc.elements = append(nc.elements, node)

		bucket := nc.byTag[node.Tag]
		if bucket == nil {
			bucket = make([]*dom.Node, 0, initCapPerTagSlice)
		}
		nc.byTag[node.Tag] = append(bucket, node)

		if len(node.ClassList()) > 0 {
			nc.withClass = append(nc.withClass, node)
		}
		if node.HasAttr("style") {
			nc.withInlineStyle = append(nc.withInlineStyle, node)
		}
		if node.HasAttr("id") {
			nc.withID = append(nc.withID, node)
		}
		return nil
	})

	nc.built = true
}

// Elements returns all element nodes in document order. Do not mutate the returned slice.
func (nc *NodeCache) Elements() []*dom.Node {
	return nc.elements
}

// ByTag returns all elements with the given lowercase tag name, in
// document order. Do not mutate the returned slice.
func (nc *NodeCache) ByTag(tag string) []*dom.Node {
	return nc.byTag[tag]
}

// WithClass returns all elements with at least one class token. Do not mutate the returned slice.
func (nc *NodeCache) WithClass() []*dom.Node {
	return nc.withClass
}

// WithInlineStyle returns all elements with a style attribute. Do not mutate the returned slice.
func (nc *NodeCache) WithInlineStyle() []*dom.Node {
	return nc.withInlineStyle
}

// WithID returns all elements with an id attribute. Do not mutate the returned slice.
func (nc *NodeCache) WithID() []*dom.Node {
	return nc.withID
}

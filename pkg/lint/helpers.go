package lint

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

// Node query helpers.

// Svgs returns all svg elements in the document.
func Svgs(root *dom.Node) []*dom.Node {
	return dom.FindByTag(root, "svg")
}

// Templates returns all template elements in the document.
func Templates(root *dom.Node) []*dom.Node {
	return dom.FindByTag(root, "template")
}

// StyleElements returns all style elements in the document.
func StyleElements(root *dom.Node) []*dom.Node {
	return dom.FindByTag(root, "style")
}

// ElementsWithAttr returns all elements carrying the given attribute.
func ElementsWithAttr(root *dom.Node, key string) []*dom.Node {
	return dom.FindAll(root, func(n *dom.Node) bool {
		return n.Kind == dom.NodeElement && n.HasAttr(key)
	})
}

// ElementsWithClass returns all elements with a non-empty class list.
func ElementsWithClass(root *dom.Node) []*dom.Node {
	return dom.FindAll(root, func(n *dom.Node) bool {
		return n.Kind == dom.NodeElement && len(n.ClassList()) > 0
	})
}

// Node accessor helpers.

// TextContent returns the concatenated text of a node's descendants.
// Template content fragments are not included.
func TextContent(n *dom.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	_ = dom.Walk(n, func(node *dom.Node) error { //nolint:errcheck // Walk visitor never returns error
		if node.Kind == dom.NodeText {
			buf.WriteString(node.Data)
		}
		return nil
	})
	return buf.String()
}

// InlineStyle returns the element's style attribute value, if present.
func InlineStyle(n *dom.Node) (string, bool) {
	if n == nil || n.Kind != dom.NodeElement {
		return "", false
	}
	return n.Attr("style")
}

// DataComponent returns the element's data-component value, if present.
func DataComponent(n *dom.Node) (string, bool) {
	if n == nil || n.Kind != dom.NodeElement {
		return "", false
	}
	return n.Attr("data-component")
}

// HasDataState reports whether the element carries a data-state attribute.
func HasDataState(n *dom.Node) bool {
	return n != nil && n.HasAttr("data-state")
}

// ClassShape returns a grouping key describing an element's tag and
// class token set, with tokens sorted so attribute-value order does not
// matter: `<div class="b a">` and `<div class="a b">` share a shape.
func ClassShape(n *dom.Node) string {
	if n == nil || n.Kind != dom.NodeElement {
		return ""
	}
	classes := n.ClassList()
	if len(classes) == 0 {
		return n.Tag
	}
	sorted := make([]string, len(classes))
	copy(sorted, classes)
	sort.Strings(sorted)
	return n.Tag + "." + strings.Join(sorted, ".")
}

// IsWithin reports whether the node or one of its ancestors is an
// element with the given tag.
func IsWithin(n *dom.Node, tag string) bool {
	return n != nil && n.Closest(func(a *dom.Node) bool {
		return a.Kind == dom.NodeElement && a.Tag == tag
	}) != nil
}

// SubtreeContainsTag reports whether the subtree rooted at n contains
// an element with the given tag (including n itself).
func SubtreeContainsTag(n *dom.Node, tag string) bool {
	if n == nil {
		return false
	}
	return dom.FindFirst(n, func(node *dom.Node) bool {
		return node.Kind == dom.NodeElement && node.Tag == tag
	}) != nil
}

// Start tag helpers.

// StartTagInsertOffset returns the byte offset inside the element's
// start tag where new attribute text can be inserted: just before the
// closing '>', or before the '/' of a self-closing tag. Quoted
// attribute values are skipped so a '>' inside one does not end the
// scan. Returns -1 when the tag cannot be located.
func StartTagInsertOffset(file *dom.FileSnapshot, n *dom.Node) int {
	if file == nil || n == nil || n.Kind != dom.NodeElement {
		return -1
	}
	content := file.Content
	start := n.Range.StartOffset
	if start < 0 || start >= len(content) || content[start] != '<' {
		return -1
	}

	var quote byte
	for i := start; i < len(content); i++ {
		c := content[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '>':
			if i > start && content[i-1] == '/' {
				return i - 1
			}
			return i
		}
	}
	return -1
}

// Line-based helpers.

// LineContent returns the content of the specified 1-based line number.
// Returns nil if the line number is out of range.
func LineContent(file *dom.FileSnapshot, lineNum int) []byte {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return nil
	}
	line := file.Lines[lineNum-1]
	return file.Content[line.StartOffset:line.NewlineStart]
}

// LineLength returns the length of the specified 1-based line (excluding newline).
// Returns 0 if the line number is out of range.
func LineLength(file *dom.FileSnapshot, lineNum int) int {
	if file == nil || lineNum < 1 || lineNum > len(file.Lines) {
		return 0
	}
	line := file.Lines[lineNum-1]
	return line.NewlineStart - line.StartOffset
}

// IsBlankLine returns true if the line contains only whitespace.
func IsBlankLine(file *dom.FileSnapshot, lineNum int) bool {
	content := LineContent(file, lineNum)
	return len(bytes.TrimSpace(content)) == 0
}

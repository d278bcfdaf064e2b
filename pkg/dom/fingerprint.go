package dom

import (
	"fmt"
	"sort"
	"strings"
)

// Fingerprint returns a canonical serialization of a node's structure:
// tag, attributes (sorted by key), and recursively its children.
// Two subtrees with identical markup produce identical fingerprints,
// regardless of attribute order or insignificant whitespace.
// Template content fragments are not part of the fingerprint.
func Fingerprint(n *Node) string {
	var b strings.Builder
	writeFingerprint(&b, n)
	return b.String()
}

// ChildFingerprint returns the combined fingerprint of a node's children,
// identifying the node's child markup independent of the node's own
// tag and attributes.
func ChildFingerprint(n *Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.Next {
		writeFingerprint(&b, child)
	}
	return b.String()
}

func writeFingerprint(b *strings.Builder, n *Node) {
	switch n.Kind {
	case NodeText:
		// Whitespace-only text is formatting, not structure.
		collapsed := strings.Join(strings.Fields(n.Data), " ")
		if collapsed == "" {
			return
		}
		fmt.Fprintf(b, "t%q", collapsed)

	case NodeElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, a := range sortedAttrs(n.Attrs) {
			fmt.Fprintf(b, " %s=%q", a.Key, a.Val)
		}
		b.WriteByte('>')
		for child := n.FirstChild; child != nil; child = child.Next {
			writeFingerprint(b, child)
		}
		b.WriteString("</>")

	case NodeDocument:
		for child := n.FirstChild; child != nil; child = child.Next {
			writeFingerprint(b, child)
		}
	}
}

func sortedAttrs(attrs []Attr) []Attr {
	if len(attrs) < 2 {
		return attrs
	}
	out := make([]Attr, len(attrs))
	copy(out, attrs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

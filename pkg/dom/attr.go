package dom

import "strings"

// Attr is a single element attribute.
// Key is lowercased; Val is the verbatim source value.
type Attr struct {
	Key string
	Val string
}

// Attr returns the value of the named attribute and whether it exists.
// The key is matched case-insensitively since stored keys are lowercase.
func (n *Node) Attr(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr returns true if the named attribute is present, regardless of value.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// AttrOr returns the value of the named attribute, or fallback if absent.
func (n *Node) AttrOr(key, fallback string) string {
	if v, ok := n.Attr(key); ok {
		return v
	}
	return fallback
}

// ID returns the element's id attribute value, or empty.
func (n *Node) ID() string {
	return n.AttrOr("id", "")
}

// ClassList returns the class attribute split on whitespace.
// Tokens keep their source case (class values are case-sensitive).
func (n *Node) ClassList() []string {
	v, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// HasClass returns true if the class list contains the exact token.
func (n *Node) HasClass(token string) bool {
	for _, c := range n.ClassList() {
		if c == token {
			return true
		}
	}
	return false
}

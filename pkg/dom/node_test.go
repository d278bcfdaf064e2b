package dom_test

import (
	"testing"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

func TestNode_KindPredicates(t *testing.T) {
	t.Parallel()

	el := dom.NewElement("div")
	if !el.IsElement() {
		t.Error("expected element node")
	}
	if el.IsText() {
		t.Error("element is not text")
	}

	text := dom.NewText("hello")
	if !text.IsText() {
		t.Error("expected text node")
	}
	if text.IsElement() {
		t.Error("text is not an element")
	}
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	el := dom.NewElement("button",
		dom.Attr{Key: "class", Val: "btn primary"},
		dom.Attr{Key: "data-state", Val: "Active"},
	)

	v, ok := el.Attr("class")
	if !ok || v != "btn primary" {
		t.Errorf("expected class attr, got %q ok=%v", v, ok)
	}

	// Lookup is case-insensitive on the key.
	v, ok = el.Attr("DATA-STATE")
	if !ok || v != "Active" {
		t.Errorf("expected data-state attr via upper-case key, got %q ok=%v", v, ok)
	}

	if _, ok := el.Attr("id"); ok {
		t.Error("expected missing attr to report not-ok")
	}

	if el.AttrOr("id", "fallback") != "fallback" {
		t.Error("expected fallback for missing attr")
	}

	if !el.HasAttr("class") || el.HasAttr("href") {
		t.Error("HasAttr mismatch")
	}
}

func TestNode_ClassList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class string
		want  []string
	}{
		{"single", "btn", []string{"btn"}},
		{"multiple", "btn  primary\tactive", []string{"btn", "primary", "active"}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			el := dom.NewElement("div", dom.Attr{Key: "class", Val: tt.class})
			got := el.ClassList()

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestNode_HasClass(t *testing.T) {
	t.Parallel()

	el := dom.NewElement("div", dom.Attr{Key: "class", Val: "card Active"})

	if !el.HasClass("card") {
		t.Error("expected card class")
	}

	// Class tokens are case-sensitive.
	if el.HasClass("active") {
		t.Error("class match must be case-sensitive")
	}
}

func TestNode_ChildrenAndElements(t *testing.T) {
	t.Parallel()

	parent := dom.NewElement("ul")
	first := dom.NewElement("li")
	text := dom.NewText("\n  ")
	second := dom.NewElement("li")

	dom.AppendChild(parent, first)
	dom.AppendChild(parent, text)
	dom.AppendChild(parent, second)

	if parent.ChildCount() != 3 {
		t.Fatalf("expected 3 children, got %d", parent.ChildCount())
	}

	children := parent.Children()
	if children[0] != first || children[1] != text || children[2] != second {
		t.Error("children not in expected order")
	}

	elements := parent.Elements()
	if len(elements) != 2 || elements[0] != first || elements[1] != second {
		t.Error("Elements must skip text nodes and preserve order")
	}
}

func TestNode_Depth(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument()
	outer := dom.NewElement("div")
	inner := dom.NewElement("span")
	text := dom.NewText("x")

	dom.AppendChild(doc, outer)
	dom.AppendChild(outer, inner)
	dom.AppendChild(inner, text)

	if d := outer.Depth(); d != 0 {
		t.Errorf("top-level element depth: expected 0, got %d", d)
	}
	if d := inner.Depth(); d != 1 {
		t.Errorf("nested element depth: expected 1, got %d", d)
	}
	if d := text.Depth(); d != 2 {
		t.Errorf("text depth: expected 2, got %d", d)
	}
}

func TestNode_Closest(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument()
	modal := dom.NewElement("div", dom.Attr{Key: "data-component", Val: "modal"})
	body := dom.NewElement("div")
	button := dom.NewElement("button")

	dom.AppendChild(doc, modal)
	dom.AppendChild(modal, body)
	dom.AppendChild(body, button)

	found := button.Closest(func(n *dom.Node) bool {
		return n.HasAttr("data-component")
	})
	if found != modal {
		t.Error("expected Closest to find the modal ancestor")
	}

	// Closest includes the node itself.
	found = modal.Closest(func(n *dom.Node) bool {
		return n.HasAttr("data-component")
	})
	if found != modal {
		t.Error("expected Closest to match self")
	}

	if button.Closest(func(n *dom.Node) bool { return n.Tag == "nav" }) != nil {
		t.Error("expected nil for no match")
	}
}

func TestIsVoid(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"img", "br", "input", "meta", "hr"} {
		if !dom.IsVoid(tag) {
			t.Errorf("expected %s to be void", tag)
		}
	}

	for _, tag := range []string{"div", "span", "svg", "use", "template"} {
		if dom.IsVoid(tag) {
			t.Errorf("expected %s to not be void", tag)
		}
	}
}

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     dom.NodeKind
		expected string
	}{
		{dom.NodeDocument, "Document"},
		{dom.NodeElement, "Element"},
		{dom.NodeText, "Text"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if tt.kind.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
			}
		})
	}
}

func TestNode_SourcePosition(t *testing.T) {
	t.Parallel()

	content := []byte("<div>\n<span>x</span>\n</div>")
	snapshot := dom.NewFileSnapshot("test.html", content)

	node := &dom.Node{
		Kind:  dom.NodeElement,
		Tag:   "span",
		Range: dom.SourceRange{StartOffset: 6, EndOffset: 20},
		File:  snapshot,
	}

	pos := node.SourcePosition()

	if pos.StartLine != 2 || pos.StartColumn != 1 {
		t.Errorf("expected start (2, 1), got (%d, %d)", pos.StartLine, pos.StartColumn)
	}
	if pos.EndLine != 2 || pos.EndColumn != 15 {
		t.Errorf("expected end (2, 15), got (%d, %d)", pos.EndLine, pos.EndColumn)
	}
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	content := []byte(`<p class="x">hi</p>`)
	snapshot := dom.NewFileSnapshot("test.html", content)

	node := &dom.Node{
		Kind:  dom.NodeText,
		Data:  "hi",
		Range: dom.SourceRange{StartOffset: 13, EndOffset: 15},
		File:  snapshot,
	}

	if string(node.Text()) != "hi" {
		t.Errorf("expected source slice 'hi', got %q", node.Text())
	}

	detached := dom.NewText("hi")
	if detached.Text() != nil {
		t.Error("expected nil source text for node without file")
	}
}

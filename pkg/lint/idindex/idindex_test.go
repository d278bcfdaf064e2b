package idindex

import (
	"testing"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

func TestIndex_Has(t *testing.T) {
	ix := NewIndex(nil)
	ix.Declarations["main"] = &Declaration{Value: "main"}

	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{"declared", "main", true},
		{"not declared", "other", false},
		{"case sensitive", "Main", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.Has(tt.id); got != tt.expected {
				t.Errorf("Has(%q) = %v, want %v", tt.id, got, tt.expected)
			}
		})
	}
}

func TestIndex_Duplicates(t *testing.T) {
	ix := NewIndex(nil)

	first := &Declaration{Value: "dup"}
	duplicate := &Declaration{Value: "dup", IsDuplicate: true}
	unique := &Declaration{Value: "unique"}

	ix.AllDeclarations = []*Declaration{first, duplicate, unique}

	got := ix.Duplicates()
	if len(got) != 1 {
		t.Fatalf("Duplicates() returned %d items, want 1", len(got))
	}
	if got[0] != duplicate {
		t.Errorf("Duplicates() returned wrong declaration")
	}
}

func TestIndex_Unresolved(t *testing.T) {
	ix := NewIndex(nil)

	decl := &Declaration{Value: "present"}
	resolved := &Reference{Value: "present", Resolved: decl}
	missing := &Reference{Value: "missing"}
	bare := &Reference{Value: ""}
	top := &Reference{Value: "top"}
	topUpper := &Reference{Value: "TOP"}

	ix.References = []*Reference{resolved, missing, bare, top, topUpper}

	got := ix.Unresolved()
	if len(got) != 1 {
		t.Fatalf("Unresolved() returned %d items, want 1", len(got))
	}
	if got[0] != missing {
		t.Errorf("Unresolved() returned wrong reference")
	}
}

// buildDoc assembles a small document for collection tests.
func buildDoc(children ...*dom.Node) *dom.Node {
	doc := dom.NewDocument()
	for _, c := range children {
		dom.AppendChild(doc, c)
	}
	return doc
}

func TestCollect_Declarations(t *testing.T) {
	doc := buildDoc(
		dom.NewElement("div", dom.Attr{Key: "id", Val: "first"}),
		dom.NewElement("div", dom.Attr{Key: "id", Val: "second"}),
		dom.NewElement("span", dom.Attr{Key: "id", Val: "first"}),
		dom.NewElement("p"),
	)

	ix := Collect(doc, nil)

	if len(ix.AllDeclarations) != 3 {
		t.Fatalf("len(AllDeclarations) = %d, want 3", len(ix.AllDeclarations))
	}
	if !ix.Has("first") || !ix.Has("second") {
		t.Error("expected both ids declared")
	}

	dups := ix.Duplicates()
	if len(dups) != 1 {
		t.Fatalf("len(Duplicates()) = %d, want 1", len(dups))
	}
	if dups[0].Node.Tag != "span" {
		t.Errorf("duplicate declared by <%s>, want <span>", dups[0].Node.Tag)
	}

	// The first declaration wins the map slot.
	if ix.Resolve("first").Node.Tag != "div" {
		t.Errorf("Resolve(first) points at <%s>, want <div>", ix.Resolve("first").Node.Tag)
	}
}

func TestCollect_FragmentReferences(t *testing.T) {
	doc := buildDoc(
		dom.NewElement("nav", dom.Attr{Key: "id", Val: "menu"}),
		dom.NewElement("a", dom.Attr{Key: "href", Val: "#menu"}),
		dom.NewElement("a", dom.Attr{Key: "href", Val: "#nowhere"}),
		dom.NewElement("a", dom.Attr{Key: "href", Val: "https://example.com/#menu"}),
		dom.NewElement("use", dom.Attr{Key: "xlink:href", Val: "#menu"}),
	)

	ix := Collect(doc, nil)

	// External URL with a fragment is not an in-document reference.
	if len(ix.References) != 3 {
		t.Fatalf("len(References) = %d, want 3", len(ix.References))
	}

	unresolved := ix.Unresolved()
	if len(unresolved) != 1 {
		t.Fatalf("len(Unresolved()) = %d, want 1", len(unresolved))
	}
	if unresolved[0].Value != "nowhere" {
		t.Errorf("unresolved ref = %q, want nowhere", unresolved[0].Value)
	}

	if decl := ix.Resolve("menu"); decl.RefCount != 2 {
		t.Errorf("menu RefCount = %d, want 2", decl.RefCount)
	}
}

func TestCollect_AttributeReferences(t *testing.T) {
	doc := buildDoc(
		dom.NewElement("input", dom.Attr{Key: "id", Val: "email"}, dom.Attr{Key: "list", Val: "domains"}),
		dom.NewElement("label", dom.Attr{Key: "for", Val: "email"}),
		dom.NewElement("datalist", dom.Attr{Key: "id", Val: "domains"}),
		dom.NewElement("div", dom.Attr{Key: "aria-labelledby", Val: "title subtitle"}),
		dom.NewElement("h1", dom.Attr{Key: "id", Val: "title"}),
	)

	ix := Collect(doc, nil)

	if len(ix.References) != 4 {
		t.Fatalf("len(References) = %d, want 4", len(ix.References))
	}

	unresolved := ix.Unresolved()
	if len(unresolved) != 1 {
		t.Fatalf("len(Unresolved()) = %d, want 1", len(unresolved))
	}
	if unresolved[0].Value != "subtitle" || unresolved[0].Attr != "aria-labelledby" {
		t.Errorf("unresolved = %q via %q, want subtitle via aria-labelledby", unresolved[0].Value, unresolved[0].Attr)
	}
}

func TestCollect_TemplateContentInert(t *testing.T) {
	tmpl := dom.NewElement("template")
	tmpl.Content = dom.NewDocument()
	dom.AppendChild(tmpl.Content, dom.NewElement("div", dom.Attr{Key: "id", Val: "ghost"}))
	dom.AppendChild(tmpl.Content, dom.NewElement("a", dom.Attr{Key: "href", Val: "#ghost"}))

	doc := buildDoc(
		tmpl,
		dom.NewElement("a", dom.Attr{Key: "href", Val: "#ghost"}),
	)

	ix := Collect(doc, nil)

	if ix.Has("ghost") {
		t.Error("id declared inside template content should not be live")
	}
	if len(ix.References) != 1 {
		t.Fatalf("len(References) = %d, want 1 (template refs are inert)", len(ix.References))
	}
	if len(ix.Unresolved()) != 1 {
		t.Errorf("reference to template-only id should be unresolved")
	}
}

func TestCollect_NilRoot(t *testing.T) {
	ix := Collect(nil, nil)
	if ix == nil {
		t.Fatal("Collect(nil) returned nil index")
	}
	if len(ix.AllDeclarations) != 0 || len(ix.References) != 0 {
		t.Error("nil root should produce an empty index")
	}
}

func TestCollect_EmptyIDIgnored(t *testing.T) {
	doc := buildDoc(dom.NewElement("div", dom.Attr{Key: "id", Val: ""}))

	ix := Collect(doc, nil)
	if len(ix.AllDeclarations) != 0 {
		t.Errorf("empty id attribute should not declare anything")
	}
}

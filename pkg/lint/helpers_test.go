package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

func TestSvgs(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<div><svg><path d="a"/></svg></div><svg></svg>`)
	assert.Len(t, lint.Svgs(snapshot.Root), 2)

	plain := parseSnapshot(t, `<div>no vectors here</div>`)
	assert.Empty(t, lint.Svgs(plain.Root))
}

func TestTemplates(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<template><li>row</li></template><div></div>`)
	templates := lint.Templates(snapshot.Root)
	require.Len(t, templates, 1)
	assert.Equal(t, "template", templates[0].Tag)
}

func TestStyleElements(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<style>.a{}</style><div style="color: red">x</div>`)

	// Inline style attributes are not style elements.
	assert.Len(t, lint.StyleElements(snapshot.Root), 1)
}

func TestElementsWithAttr(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<div data-component="card">x</div><div>y</div><span data-component="">z</span>`)

	// Present-but-empty still counts as carrying the attribute.
	assert.Len(t, lint.ElementsWithAttr(snapshot.Root, "data-component"), 2)
	assert.Empty(t, lint.ElementsWithAttr(snapshot.Root, "data-variant"))
}

func TestElementsWithClass(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<div class="a b">x</div><div class="">y</div><div>z</div>`)
	assert.Len(t, lint.ElementsWithClass(snapshot.Root), 1)
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "direct text",
			input: `<p>hello</p>`,
			want:  "hello",
		},
		{
			name:  "nested text concatenated",
			input: `<p>a<span>b</span>c</p>`,
			want:  "abc",
		},
		{
			name:  "empty element",
			input: `<p></p>`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snapshot := parseSnapshot(t, tt.input)
			p := dom.FindByTag(snapshot.Root, "p")
			require.Len(t, p, 1)
			assert.Equal(t, tt.want, lint.TextContent(p[0]))
		})
	}

	assert.Equal(t, "", lint.TextContent(nil))
}

func TestInlineStyle(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<div style="position: absolute">x</div><div>y</div>`)
	divs := dom.FindByTag(snapshot.Root, "div")
	require.Len(t, divs, 2)

	style, ok := lint.InlineStyle(divs[0])
	assert.True(t, ok)
	assert.Equal(t, "position: absolute", style)

	_, ok = lint.InlineStyle(divs[1])
	assert.False(t, ok)

	_, ok = lint.InlineStyle(nil)
	assert.False(t, ok)
}

func TestDataComponent(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<section data-component="hero">x</section><div>y</div>`)

	section := dom.FindByTag(snapshot.Root, "section")[0]
	name, ok := lint.DataComponent(section)
	assert.True(t, ok)
	assert.Equal(t, "hero", name)

	div := dom.FindByTag(snapshot.Root, "div")[0]
	_, ok = lint.DataComponent(div)
	assert.False(t, ok)
}

func TestHasDataState(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<button data-state="active">x</button><button>y</button>`)
	buttons := dom.FindByTag(snapshot.Root, "button")
	require.Len(t, buttons, 2)

	assert.True(t, lint.HasDataState(buttons[0]))
	assert.False(t, lint.HasDataState(buttons[1]))
	assert.False(t, lint.HasDataState(nil))
}

func TestClassShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tag with sorted classes",
			input: `<div class="b a">x</div>`,
			want:  "div.a.b",
		},
		{
			name:  "classless element uses bare tag",
			input: `<div>x</div>`,
			want:  "div",
		},
		{
			name:  "single class",
			input: `<li class="item">x</li>`,
			want:  "li.item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snapshot := parseSnapshot(t, tt.input)
			el := dom.FindFirst(snapshot.Root, func(n *dom.Node) bool {
				return n.Kind == dom.NodeElement
			})
			require.NotNil(t, el)
			assert.Equal(t, tt.want, lint.ClassShape(el))
		})
	}

	// Shuffled class attributes share a shape.
	a := parseSnapshot(t, `<div class="x y z">a</div>`)
	b := parseSnapshot(t, `<div class="z x y">b</div>`)
	assert.Equal(t,
		lint.ClassShape(dom.FindByTag(a.Root, "div")[0]),
		lint.ClassShape(dom.FindByTag(b.Root, "div")[0]))

	assert.Equal(t, "", lint.ClassShape(nil))
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<svg><g><path d="a"/></g></svg><div><span>x</span></div>`)

	path := dom.FindByTag(snapshot.Root, "path")[0]
	assert.True(t, lint.IsWithin(path, "svg"))
	assert.True(t, lint.IsWithin(path, "g"))
	assert.False(t, lint.IsWithin(path, "div"))

	span := dom.FindByTag(snapshot.Root, "span")[0]
	assert.False(t, lint.IsWithin(span, "svg"))
	assert.False(t, lint.IsWithin(nil, "svg"))
}

func TestSubtreeContainsTag(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, `<svg><defs><symbol id="s"></symbol></defs></svg><svg><path d="a"/></svg>`)
	svgs := dom.FindByTag(snapshot.Root, "svg")
	require.Len(t, svgs, 2)

	assert.True(t, lint.SubtreeContainsTag(svgs[0], "symbol"))
	assert.False(t, lint.SubtreeContainsTag(svgs[1], "symbol"))

	// The node itself counts.
	assert.True(t, lint.SubtreeContainsTag(svgs[0], "svg"))
	assert.False(t, lint.SubtreeContainsTag(nil, "svg"))
}

func TestStartTagInsertOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		tag   string
		// wantBefore is the text immediately following the insert point.
		wantBefore string
	}{
		{
			name:       "plain start tag",
			input:      `<button class="btn">Go</button>`,
			tag:        "button",
			wantBefore: ">Go",
		},
		{
			name:       "self-closing tag inserts before the slash",
			input:      `<input class="field"/>`,
			tag:        "input",
			wantBefore: "/>",
		},
		{
			name:       "gt inside quoted attribute is skipped",
			input:      `<div title="a > b">x</div>`,
			tag:        "div",
			wantBefore: ">x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snapshot := parseSnapshot(t, tt.input)
			el := dom.FindByTag(snapshot.Root, tt.tag)[0]

			offset := lint.StartTagInsertOffset(snapshot, el)
			require.GreaterOrEqual(t, offset, 0)
			require.LessOrEqual(t, offset+len(tt.wantBefore), len(snapshot.Content))
			assert.Equal(t, tt.wantBefore, string(snapshot.Content[offset:offset+len(tt.wantBefore)]))
		})
	}

	assert.Equal(t, -1, lint.StartTagInsertOffset(nil, nil))
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, "<div>\n  <p>x</p>\n</div>\n")

	assert.Equal(t, "<div>", string(lint.LineContent(snapshot, 1)))
	assert.Equal(t, "  <p>x</p>", string(lint.LineContent(snapshot, 2)))
	assert.Nil(t, lint.LineContent(snapshot, 0))
	assert.Nil(t, lint.LineContent(snapshot, 99))
	assert.Nil(t, lint.LineContent(nil, 1))
}

func TestLineLength(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, "<div>\n  <p>x</p>\n</div>\n")

	assert.Equal(t, 5, lint.LineLength(snapshot, 1))
	assert.Equal(t, 10, lint.LineLength(snapshot, 2))
	assert.Equal(t, 0, lint.LineLength(snapshot, 99))
	assert.Equal(t, 0, lint.LineLength(nil, 1))
}

func TestIsBlankLine(t *testing.T) {
	t.Parallel()

	snapshot := parseSnapshot(t, "<div>\n   \n</div>\n")

	assert.False(t, lint.IsBlankLine(snapshot, 1))
	assert.True(t, lint.IsBlankLine(snapshot, 2))
	assert.False(t, lint.IsBlankLine(snapshot, 3))
}

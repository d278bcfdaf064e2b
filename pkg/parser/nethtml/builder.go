package nethtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

// treeBuilder consumes the token stream and produces a dom tree,
// enforcing strict well-formedness along the way.
type treeBuilder struct {
	snapshot *dom.FileSnapshot
	maxDepth int

	// stack holds the document root followed by the open elements.
	stack []*dom.Node

	// offset is the byte position of the next token in the source.
	offset int
}

func newTreeBuilder(snapshot *dom.FileSnapshot, maxDepth int) *treeBuilder {
	return &treeBuilder{snapshot: snapshot, maxDepth: maxDepth}
}

// build runs the tokenizer to completion and returns the document root.
//
// Strictness rules:
//   - an end tag must match the innermost open element,
//   - an end tag with no open element is an error,
//   - void elements take no children and no end tags,
//   - all elements must be closed by end of input,
//   - input must not end inside a tag,
//   - element nesting must stay within maxDepth.
func (b *treeBuilder) build() (*dom.Node, error) {
	root := dom.NewDocument()
	root.Range = dom.SourceRange{StartOffset: 0, EndOffset: len(b.snapshot.Content)}
	b.stack = []*dom.Node{root}

	z := html.NewTokenizer(bytes.NewReader(b.snapshot.Content))

	for {
		tt := z.Next()

		// Raw token bytes give the source span. The length must be taken
		// before Token() below, which may rewrite the raw buffer.
		start := b.offset
		b.offset += len(z.Raw())
		end := b.offset

		switch tt {
		case html.ErrorToken:
			err := z.Err()
			if !errors.Is(err, io.EOF) {
				return nil, b.errorAt(start, fmt.Sprintf("tokenize: %v", err))
			}
			// A non-empty raw span at EOF is a token cut off mid-markup.
			if end > start {
				return nil, b.errorAt(start, "unexpected end of input inside tag")
			}
			if len(b.stack) > 1 {
				top := b.stack[len(b.stack)-1]
				return nil, b.errorAt(top.Range.StartOffset,
					fmt.Sprintf("unclosed element <%s>", top.Tag))
			}
			return root, nil

		case html.StartTagToken:
			el := b.newElement(z.Token(), start, end)
			b.appendChild(el)
			if dom.IsVoid(el.Tag) {
				continue
			}
			if el.Tag == "template" {
				el.Content = dom.NewDocument()
			}
			if len(b.stack)-1 >= b.maxDepth {
				return nil, b.errorAt(start,
					fmt.Sprintf("element nesting exceeds depth limit %d", b.maxDepth))
			}
			b.stack = append(b.stack, el)

		case html.SelfClosingTagToken:
			el := b.newElement(z.Token(), start, end)
			b.appendChild(el)

		case html.EndTagToken:
			if err := b.closeElement(z.Token().Data, start, end); err != nil {
				return nil, err
			}

		case html.TextToken:
			data := z.Token().Data
			if data == "" {
				continue
			}
			text := dom.NewText(data)
			text.Range = dom.SourceRange{StartOffset: start, EndOffset: end}
			b.appendChild(text)

		case html.CommentToken, html.DoctypeToken:
			// Not represented in the tree.
		}
	}
}

// newElement builds an element node from a start tag token.
// Duplicate attribute keys keep the first occurrence.
func (b *treeBuilder) newElement(tok html.Token, start, end int) *dom.Node {
	el := dom.NewElement(tok.Data)

	if len(tok.Attr) > 0 {
		attrs := make([]dom.Attr, 0, len(tok.Attr))
		seen := make(map[string]struct{}, len(tok.Attr))
		for _, a := range tok.Attr {
			key := strings.ToLower(a.Key)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			attrs = append(attrs, dom.Attr{Key: key, Val: a.Val})
		}
		el.Attrs = attrs
	}

	el.Range = dom.SourceRange{StartOffset: start, EndOffset: end}
	return el
}

// appendChild attaches a node under the innermost open element.
// Children of an open <template> go into its inert content fragment.
func (b *treeBuilder) appendChild(n *dom.Node) {
	parent := b.stack[len(b.stack)-1]
	if parent.Kind == dom.NodeElement && parent.Tag == "template" && parent.Content != nil {
		dom.AppendChild(parent.Content, n)
		return
	}
	dom.AppendChild(parent, n)
}

// closeElement pops the innermost open element for a matching end tag.
func (b *treeBuilder) closeElement(tag string, start, end int) error {
	if dom.IsVoid(tag) {
		return b.errorAt(start, fmt.Sprintf("unexpected end tag for void element </%s>", tag))
	}

	if len(b.stack) == 1 {
		return b.errorAt(start, fmt.Sprintf("unexpected end tag </%s>: no open element", tag))
	}

	top := b.stack[len(b.stack)-1]
	if top.Tag != tag {
		return b.errorAt(start,
			fmt.Sprintf("mismatched end tag: expected </%s>, found </%s>", top.Tag, tag))
	}

	top.Range.EndOffset = end
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// errorAt builds a ParseError located at the given byte offset.
func (b *treeBuilder) errorAt(offset int, msg string) *ParseError {
	line, col := b.snapshot.LineAt(offset)
	return &ParseError{
		Path:   b.snapshot.Path,
		Line:   line,
		Column: col,
		Msg:    msg,
	}
}

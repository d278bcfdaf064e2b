// Package nethtml provides a Parser implementation over the
// golang.org/x/net/html tokenizer.
//
// Unlike html.Parse, which recovers from arbitrary markup the way a
// browser does, this parser is strict: mismatched or missing end tags,
// end tags for void elements, and markup truncated mid-tag are reported
// as *ParseError rather than silently repaired. The conventions the
// rules check depend on the author's literal tag structure, so the
// parser refuses to guess it.
package nethtml

import (
	"context"
	"fmt"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

// DefaultMaxDepth is the default cap on element nesting depth.
// Exceeding it is a parse error, bounding work on pathological input.
const DefaultMaxDepth = 512

// Parser implements lint.Parser using the x/net/html tokenizer.
type Parser struct {
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth overrides the nesting depth cap.
// Values < 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth >= 1 {
			p.maxDepth = depth
		}
	}
}

// New creates a new tokenizer-based parser.
func New(opts ...Option) *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxDepth returns the configured nesting depth cap.
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

// Parse converts raw HTML bytes into a fully-populated FileSnapshot.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a FileSnapshot shell with path, content, and lines.
//  3. Tokenizes the content and builds the dom.Node tree, enforcing
//     strict tag matching, void-element rules, template content
//     isolation, and the nesting depth cap.
//  4. Sets File back-references throughout the tree.
//
// Inputs may be full documents or fragments: the document root accepts
// any sequence of top-level nodes. On malformed input Parse returns a
// *ParseError and no snapshot.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*dom.FileSnapshot, error) {
	// Check for early cancellation.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	// Create the snapshot shell.
	snapshot := &dom.FileSnapshot{
		Path:    path,
		Content: copyContent(content),
		Lines:   dom.BuildLines(content),
	}

	// Tokenize and build the tree.
	builder := newTreeBuilder(snapshot, p.maxDepth)
	root, err := builder.build()
	if err != nil {
		return nil, err
	}
	snapshot.Root = root

	// Check for cancellation after building.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	// Set File back-references.
	dom.SetFile(snapshot.Root, snapshot)

	return snapshot, nil
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

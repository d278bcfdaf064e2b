// Package mdextract lifts fenced html blocks out of Markdown documents
// so they can be linted in place, with line numbers mapped back to the
// enclosing document.
package mdextract

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Block is one fenced code block lifted from a Markdown document.
type Block struct {
	// Content is the block body, one source line per line.
	Content []byte

	// Info is the fence language tag, lowercased. Empty for bare fences.
	Info string

	// StartLine is the 1-based document line of the first content line.
	StartLine int
}

// Fence tags treated as html for extraction purposes.
var htmlTags = map[string]bool{
	"html":  true,
	"htm":   true,
	"xhtml": true,
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

// Extract returns every fenced block whose language tag matches one of
// langs (case-insensitive). Untagged blocks are skipped.
func Extract(source []byte, langs ...string) []Block {
	want := make(map[string]bool, len(langs))
	for _, lang := range langs {
		want[strings.ToLower(lang)] = true
	}
	return collect(source, func(b Block) bool {
		return b.Info != "" && want[b.Info]
	})
}

// ExtractHTML returns the fenced blocks that carry an html language tag,
// plus untagged blocks whose content sniffs as HTML.
func ExtractHTML(source []byte, sniff func([]byte) bool) []Block {
	return collect(source, func(b Block) bool {
		if b.Info != "" {
			return htmlTags[b.Info]
		}
		return sniff != nil && sniff(b.Content)
	})
}

// collect parses the document and returns the fenced blocks accepted by
// the keep predicate.
func collect(source []byte, keep func(Block) bool) []Block {
	if len(source) == 0 {
		return nil
	}

	reader := text.NewReader(source)
	doc := newMarkdown().Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) { //nolint:errcheck // visitor never fails
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block, ok := liftBlock(source, fenced)
		if ok && keep(block) {
			blocks = append(blocks, block)
		}
		return ast.WalkContinue, nil
	})

	return blocks
}

// liftBlock copies a fenced block's body out of the source and records
// where it starts. Empty blocks are dropped.
func liftBlock(source []byte, fenced *ast.FencedCodeBlock) (Block, bool) {
	lines := fenced.Lines()
	if lines.Len() == 0 {
		return Block{}, false
	}

	var buf bytes.Buffer
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}

	info := ""
	if fenced.Info != nil {
		fields := strings.Fields(string(fenced.Info.Value(source)))
		if len(fields) > 0 {
			info = strings.ToLower(fields[0])
		}
	}

	return Block{
		Content:   buf.Bytes(),
		Info:      info,
		StartLine: 1 + bytes.Count(source[:lines.At(0).Start], []byte("\n")),
	}, true
}

package nethtml

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

// FuzzParse fuzzes the full parser with random input.
func FuzzParse(f *testing.F) {
	// Add seed corpus.
	seeds := []string{
		"",
		"plain text",
		"<div></div>",
		"<div class=\"card\"><span>x</span></div>",
		"<img src=\"a.png\">",
		"<svg><path d=\"M0 0\"/></svg>",
		"<template><li>row</li></template>",
		"<style>:root { --c: #fff; }</style>",
		"<button class=\"btn active\">Go</button>",
		"<div><span></div>",
		"</div>",
		"<div",
		"<br></br>",
		"<!DOCTYPE html><html></html>",
		"<p>a &amp; b</p>",
		"<div CLASS=\"X\" class=\"y\"></div>",
		"line1\r\n<div>\r\n</div>",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		ctx := context.Background()
		p := New()

		// Parse should never panic.
		snapshot, err := p.Parse(ctx, "fuzz.html", data)

		// The only failure mode for bad input is ParseError.
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("expected *ParseError, got %T: %v", err, err)
			}
			if snapshot != nil {
				t.Error("no snapshot must be produced on error")
			}
			return
		}

		if snapshot == nil {
			t.Error("expected non-nil snapshot when err is nil")
			return
		}

		// Content should match.
		if !bytes.Equal(snapshot.Content, data) {
			t.Error("content mismatch")
		}

		// Root should exist and be a document.
		if snapshot.Root == nil {
			t.Error("expected non-nil root")
			return
		}
		if snapshot.Root.Kind != dom.NodeDocument {
			t.Errorf("root kind = %v, want NodeDocument", snapshot.Root.Kind)
		}

		// All nodes should have the File reference set, and void
		// elements must be childless.
		err = dom.Walk(snapshot.Root, func(n *dom.Node) error {
			if n.File != snapshot {
				t.Error("node has incorrect File reference")
			}
			if n.Kind == dom.NodeElement && dom.IsVoid(n.Tag) && n.HasChildren() {
				t.Errorf("void element <%s> has children", n.Tag)
			}
			return nil
		})
		if err != nil {
			t.Errorf("walk error: %v", err)
		}
	})
}

// FuzzParseDeterministic verifies that parsing is deterministic.
func FuzzParseDeterministic(f *testing.F) {
	seeds := []string{
		"<div><span>x</span></div>",
		"<svg><use href=\"#i\"/></svg>",
		"<template><b>t</b></template>",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		ctx := context.Background()
		p := New()

		s1, err1 := p.Parse(ctx, "test.html", data)
		s2, err2 := p.Parse(ctx, "test.html", data)

		// Both should succeed or both should fail.
		if (err1 == nil) != (err2 == nil) {
			t.Error("parsing should be deterministic")
			return
		}

		if err1 != nil {
			if err1.Error() != err2.Error() {
				t.Error("parse errors should be deterministic")
			}
			return
		}

		if dom.Fingerprint(s1.Root) != dom.Fingerprint(s2.Root) {
			t.Error("tree structure should be deterministic")
		}

		count1 := countNodes(s1.Root)
		count2 := countNodes(s2.Root)
		if count1 != count2 {
			t.Errorf("node count mismatch: %d vs %d", count1, count2)
		}
	})
}

func countNodes(root *dom.Node) int {
	count := 0
	//nolint:errcheck // counting walk never errors
	dom.Walk(root, func(_ *dom.Node) error {
		count++
		return nil
	})
	return count
}

package lint

import (
	"context"
	"strings"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/cssscan"
	"github.com/yaklabco/gohtmlint/pkg/dom"
	"github.com/yaklabco/gohtmlint/pkg/fix"
	"github.com/yaklabco/gohtmlint/pkg/lint/idindex"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather than
// passing it as a method parameter. This is acceptable because RuleContext is
// a short-lived parameter object created per-rule-invocation, not a long-lived
// struct. This design simplifies the Rule interface (single Apply method) while
// still providing cancellation support via the Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed FileSnapshot.
	File *dom.FileSnapshot

	// Root is the tree root node (convenience alias for File.Root).
	Root *dom.Node

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Builder accumulates text edits for auto-fix.
	Builder *fix.EditBuilder

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// idIndex is the cached document id index, lazily initialized.
	idIndex *idindex.Index

	// nodeCache is the lazily built element cache shared by rules.
	nodeCache *NodeCache

	// styleBlocks caches scanned <style> elements, lazily initialized.
	styleBlocks  []StyleBlock
	styleScanned bool
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *dom.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	var root *dom.Node
	if file != nil {
		root = file.Root
	}

	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Root:       root,
		Config:     cfg,
		RuleConfig: ruleCfg,
		Builder:    fix.NewEditBuilder(),
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML/JSON parsing
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// IDIndex returns the document id index, building it lazily.
// The index contains all id declarations and id references needed by
// id-tracking rules like duplicate-id and dangling-reference.
func (rc *RuleContext) IDIndex() *idindex.Index {
	if rc.idIndex == nil {
		rc.idIndex = idindex.Collect(rc.Root, rc.File)
	}
	return rc.idIndex
}

// cache returns the element cache, building it lazily.
func (rc *RuleContext) cache() *NodeCache {
	if rc.nodeCache == nil {
		rc.nodeCache = newNodeCache()
		rc.nodeCache.build(rc.Root)
	}
	return rc.nodeCache
}

// Elements returns all element nodes in document order. Do not mutate the returned slice.
func (rc *RuleContext) Elements() []*dom.Node {
	return rc.cache().Elements()
}

// ElementsByTag returns the document's elements with the given lowercase
// tag name. Do not mutate the returned slice.
func (rc *RuleContext) ElementsByTag(tag string) []*dom.Node {
	return rc.cache().ByTag(tag)
}

// ClassedElements returns elements carrying class tokens. Do not mutate the returned slice.
func (rc *RuleContext) ClassedElements() []*dom.Node {
	return rc.cache().WithClass()
}

// StyledElements returns elements carrying a style attribute. Do not mutate the returned slice.
func (rc *RuleContext) StyledElements() []*dom.Node {
	return rc.cache().WithInlineStyle()
}

// StyleBlock pairs a <style> element with its scanned contents.
// A scan failure is carried per block so each rule can decide how to
// degrade (typically by skipping the block).
type StyleBlock struct {
	// Node is the <style> element.
	Node *dom.Node

	// Sheet is the scanned stylesheet (nil when Err is set).
	Sheet *cssscan.Stylesheet

	// Err is the scan failure, if any.
	Err error
}

// StyleBlocks returns the document's <style> elements with their
// scanned stylesheets, building the scan lazily and sharing it across
// style-aware rules.
func (rc *RuleContext) StyleBlocks() []StyleBlock {
	if !rc.styleScanned {
		rc.styleScanned = true
		for _, el := range dom.FindByTag(rc.Root, "style") {
			sheet, err := cssscan.ScanStylesheet(elementText(el))
			if err != nil {
				rc.styleBlocks = append(rc.styleBlocks, StyleBlock{Node: el, Err: err})
				continue
			}
			rc.styleBlocks = append(rc.styleBlocks, StyleBlock{Node: el, Sheet: sheet})
		}
	}
	return rc.styleBlocks
}

// elementText concatenates the direct text children of an element.
func elementText(n *dom.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == dom.NodeText {
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}

// Package inventory builds a census of component markers across HTML
// documents: which data-component names appear, how often, and with
// which data-state and data-variant values.
package inventory

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/PuerkitoBio/goquery"
)

// Component aggregates the occurrences of one data-component name.
type Component struct {
	// Name is the data-component attribute value.
	Name string `json:"name"`

	// Count is the number of elements carrying this marker.
	Count int `json:"count"`

	// States counts data-state values seen inside this component's
	// subtrees, including on the marker element itself.
	States map[string]int `json:"states,omitempty"`

	// Variants counts data-variant values the same way.
	Variants map[string]int `json:"variants,omitempty"`

	// Files lists the documents the component appears in, sorted.
	Files []string `json:"files,omitempty"`
}

// Census accumulates component markers over a set of documents.
type Census struct {
	components map[string]*Component
	files      map[string]map[string]bool

	// Unmarked counts data-state elements with no data-component
	// ancestor, a hint that state is floating outside any component.
	Unmarked int `json:"unmarked"`

	// Documents is the number of documents scanned.
	Documents int `json:"documents"`
}

// New creates an empty census.
func New() *Census {
	return &Census{
		components: make(map[string]*Component),
		files:      make(map[string]map[string]bool),
	}
}

// AddDocument scans one document's markup and folds its markers into
// the census. goquery's lenient parser is used on purpose: inventory is
// a survey tool and should not reject documents the linter would.
func (c *Census) AddDocument(path string, content []byte) error {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	c.Documents++

	doc.Find("[data-component]").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("data-component")
		if name == "" {
			return
		}

		comp := c.component(name)
		comp.Count++
		c.files[name][path] = true

		// States and variants inside this component's subtree, plus
		// the marker element itself. Nested components own their own
		// markers: an element is attributed to its nearest component.
		scope := sel.AddSelection(sel.Find("[data-state], [data-variant]"))
		scope.Each(func(_ int, el *goquery.Selection) {
			owner := el.Closest("[data-component]")
			if owner.Length() == 0 || owner.Nodes[0] != sel.Nodes[0] {
				return
			}
			if state, ok := el.Attr("data-state"); ok && state != "" {
				comp.States[state]++
			}
			if variant, ok := el.Attr("data-variant"); ok && variant != "" {
				comp.Variants[variant]++
			}
		})
	})

	doc.Find("[data-state]").Each(func(_ int, sel *goquery.Selection) {
		if sel.Closest("[data-component]").Length() == 0 {
			c.Unmarked++
		}
	})

	return nil
}

// component returns the named accumulator, creating it on first use.
func (c *Census) component(name string) *Component {
	if comp, ok := c.components[name]; ok {
		return comp
	}
	comp := &Component{
		Name:     name,
		States:   make(map[string]int),
		Variants: make(map[string]int),
	}
	c.components[name] = comp
	c.files[name] = make(map[string]bool)
	return comp
}

// Components returns the accumulated components sorted by name.
func (c *Census) Components() []Component {
	result := make([]Component, 0, len(c.components))
	for name, comp := range c.components {
		entry := *comp
		entry.Files = nil
		for f := range c.files[name] {
			entry.Files = append(entry.Files, f)
		}
		sort.Strings(entry.Files)
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

package inline

import (
	"github.com/npillmayer/cssinline/dom/style"
	"golang.org/x/net/html"
)

// universalDefaults maps a handful of property names to values which are
// indistinguishable from universal browser defaults. A computed value found
// here never needs to be made explicit, regardless of what ancestors say;
// this is a fast path taken before any ancestor walk.
var universalDefaults = map[string][]style.Property{
	"margin-top":          {"0px", "0"},
	"margin-right":        {"0px", "0"},
	"margin-bottom":       {"0px", "0"},
	"margin-left":         {"0px", "0"},
	"padding-top":         {"0px", "0"},
	"padding-right":       {"0px", "0"},
	"padding-bottom":      {"0px", "0"},
	"padding-left":        {"0px", "0"},
	"border-top-style":    {"none"},
	"border-right-style":  {"none"},
	"border-bottom-style": {"none"},
	"border-left-style":   {"none"},
	"background-color":    {"rgba(0, 0, 0, 0)", "transparent"},
}

// analyzer decides, for one element and one style property, wether the
// property's computed value is explained by inheritance from an ancestor
// (and may therefore be omitted from the element's inline declarations).
// Snapshots of ancestors are read through the run-scoped cache, so they
// reflect the ancestors' pre-mutation styling.
type analyzer struct {
	cache *snapshotCache
}

// isDifferent reports wether a property value must be written as an inline
// declaration on the element.
//
// The test is one-sided: it asks "does any ancestor disagree with this
// value", not "does the nearest ancestor disagree". A property is kept as
// soon as one ancestor up the chain differs, which correctly handles
// inheritance broken partway up by a non-inheriting ancestor value, at the
// cost of over-inlining now and then. For a cloning use case visual
// fidelity outranks byte size, so this conservatism is acceptable.
func (a *analyzer) isDifferent(n *html.Node, key string, value style.Property) bool {
	if defaults, ok := universalDefaults[key]; ok {
		for _, d := range defaults {
			if value == d {
				return false
			}
		}
	}
	sawAncestor := false
	for p := parentElement(n); p != nil; p = parentElement(p) {
		snap := a.cache.get(p)
		if snap == nil {
			continue // ancestor without resolvable style, skip it
		}
		sawAncestor = true
		if snap.Value(key) != value {
			return true
		}
	}
	// Without ancestors there is nothing to inherit from: every non-default
	// value must be explicit. With ancestors all agreeing, inheritance alone
	// would produce the value.
	return !sawAncestor
}

func parentElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

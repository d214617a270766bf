package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/cssinline/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element wraps an element node of an HTML parse tree and provides the
// styling surface the inlining engine operates on: the class token list,
// the inline style-declaration list, and upward traversal. Element never
// owns its node; all mutations write through to the live tree.
type Element struct {
	n *html.Node
}

// ElementOf wraps an HTML node into an Element. It returns nil for nil
// nodes and for nodes which are not element nodes; non-element node kinds
// have no styling capability and are structurally excluded from the
// engine's traversal this way.
func ElementOf(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{n: n}
}

// HTMLNode returns the HTML parse-tree node wrapped by this element.
func (e *Element) HTMLNode() *html.Node {
	return e.n
}

// TagName returns the element's tag name (lower case).
func (e *Element) TagName() string {
	return strings.ToLower(e.n.Data)
}

// Attr returns the value of an attribute, and wether it is present at all.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute's value, replacing a present one.
func (e *Element) SetAttr(key string, val string) {
	for i, a := range e.n.Attr {
		if a.Key == key {
			e.n.Attr[i].Val = val
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes an attribute, if present.
func (e *Element) RemoveAttr(key string) {
	for i, a := range e.n.Attr {
		if a.Key == key {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
			return
		}
	}
}

// Classes returns the element's class tokens.
func (e *Element) Classes() []string {
	cls, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(cls)
}

// RemoveClasses removes the element's class attribute entirely.
func (e *Element) RemoveClasses() {
	e.RemoveAttr("class")
}

// InlineStyle returns the element's inline style declarations, parsed from
// the `style` attribute. An absent attribute yields an empty list; an
// unparsable attribute yields an error (and no declarations).
func (e *Element) InlineStyle() ([]style.Declaration, error) {
	src, ok := e.Attr("style")
	if !ok {
		return nil, nil
	}
	return style.ParseDeclarations(src)
}

// SetInlineStyle replaces the element's inline style with the given
// declarations, serialized canonically. An empty list removes the `style`
// attribute.
func (e *Element) SetInlineStyle(decls []style.Declaration) {
	if len(decls) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", style.SerializeDeclarations(decls))
}

// ParentElement returns the nearest ancestor element, or nil for elements
// without one (document roots, detached nodes).
func (e *Element) ParentElement() *Element {
	for p := e.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &Element{n: p}
		}
	}
	return nil
}

// --- Document traversal ------------------------------------------------

// IsStyleMachinery is a predicate for element nodes that carry styling or
// scripting machinery rather than visible content: <style> and <script>
// containers and stylesheet <link>s. These are never candidates for style
// inlining and are removed by the engine's cleanup step.
func IsStyleMachinery(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Style, atom.Script:
		return true
	case atom.Link:
		for _, a := range n.Attr {
			if a.Key == "rel" && strings.EqualFold(strings.TrimSpace(a.Val), "stylesheet") {
				return true
			}
		}
	}
	return false
}

// ElementsInDocumentOrder collects all element nodes of the tree rooted at
// root, in document order (depth-first, pre-order). Style/script machinery
// is excluded; every other element takes part in the inlining pass.
func ElementsInDocumentOrder(root *html.Node) []*Element {
	var elems []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if IsStyleMachinery(n) {
			return
		}
		if el := ElementOf(n); el != nil {
			elems = append(elems, el)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(root)
	return elems
}

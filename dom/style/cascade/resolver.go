package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssinline/dom/style"
	"github.com/npillmayer/cssinline/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// Resolver is a style-resolution environment for a single HTML document
// tree. It is the stand-in for a browser's style engine: given an element,
// it produces the element's full computed-style snapshot by cascading the
// document's stylesheet rules, the element's inline declarations, inherited
// values and user-agent defaults.
//
// A Resolver memoizes snapshots per element. The memo reflects the tree
// state at the time of the last Recompute (or construction); mutations of
// the tree become visible to clients only after an explicit call to
// Recompute. This mirrors the synchronous forced-re-layout barrier of a
// browser environment: recomputation is a deliberate, expensive step, never
// an implicit side effect of a read.
type Resolver struct {
	root  *html.Node
	rules []matchableRule
	memo  map[*html.Node]*style.Snapshot
}

// matchableRule is one stylesheet rule compiled for matching: a single
// parsed selector with its specificity, the rule's expanded declarations,
// and the rule's position in source order.
type matchableRule struct {
	sel   cascadia.Sel
	seq   int
	decls []style.Declaration
}

// NewResolver creates a style-resolution environment for the document tree
// rooted at root. The document's <style> elements are extracted and
// compiled immediately.
func NewResolver(root *html.Node) *Resolver {
	r := &Resolver{root: root}
	r.Recompute()
	return r
}

// Recompute drops every memoized snapshot and re-extracts and re-compiles
// the document's stylesheets from the current tree state. This is the
// explicit synchronous barrier clients must cross after mutating the tree;
// without it, snapshots keep reporting the pre-mutation state.
func (r *Resolver) Recompute() {
	r.memo = make(map[*html.Node]*style.Snapshot)
	r.rules = r.rules[:0]
	seq := 0
	for _, sheet := range douceuradapter.ExtractStyleElements(r.root) {
		for _, rule := range sheet.Rules() {
			decls := expandAll(rule.Declarations())
			for _, selText := range rule.Selectors() {
				group, err := cascadia.ParseGroup(selText)
				if err != nil {
					tracer().Errorf("skipping unparsable selector %q: %v", selText, err)
					continue
				}
				for _, sel := range group {
					r.rules = append(r.rules, matchableRule{sel: sel, seq: seq, decls: decls})
				}
			}
			seq++
		}
	}
	tracer().Debugf("style resolver compiled %d matchable rules", len(r.rules))
}

// Snapshot returns the computed style for an element of the document, or
// nil if the node is not an element (or nil). The result is memoized until
// the next Recompute.
//
// Resolution follows the CSS processing model in simplified form: for every
// recognized property the winning declared value is found by cascading all
// matching rules and the element's inline declarations; properties without
// a declared value inherit from the parent element if they are inherited
// properties, and fall back to the user-agent default otherwise.
func (r *Resolver) Snapshot(n *html.Node) *style.Snapshot {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if snap, ok := r.memo[n]; ok {
		return snap
	}
	var parent *style.Snapshot
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			parent = r.Snapshot(p)
			break
		}
	}
	declared := r.declaredValues(n)
	snap := style.NewSnapshot()
	for _, key := range style.AllProperties {
		v := style.NullStyle
		if dv, ok := declared[key]; ok {
			v = dv.value
		}
		switch {
		case v.IsInherit(), v.IsEmpty() && style.IsInherited(key) && parent != nil:
			v = parent.Value(key)
			if v.IsEmpty() { // no parent snapshot to inherit from
				v = style.InitialValue(n, key)
			}
		case v.IsInitial(), v.IsEmpty():
			v = style.InitialValue(n, key)
		}
		snap.Set(key, v)
	}
	r.memo[n] = snap
	return snap
}

// declaredValue is a candidate value for one property together with its
// cascade weight.
type declaredValue struct {
	value  style.Property
	weight weight
}

// declaredValues cascades all matching rules plus the element's inline
// declarations and returns the winning declared value per property key.
// Matching happens against the element's current attributes; the caller
// (Snapshot) is responsible for memoization.
func (r *Resolver) declaredValues(n *html.Node) map[string]declaredValue {
	winner := make(map[string]declaredValue)
	consider := func(d style.Declaration, w weight) {
		if cur, ok := winner[d.Property]; ok && !w.outranks(cur.weight) {
			return
		}
		winner[d.Property] = declaredValue{value: d.Value, weight: w}
	}
	for _, mr := range r.rules {
		if !mr.sel.Match(n) {
			continue
		}
		for _, d := range mr.decls {
			consider(d, weight{
				important:   d.Important,
				specificity: mr.sel.Specificity(),
				seq:         mr.seq,
			})
		}
	}
	if styleAttr := attrValue(n, "style"); styleAttr != "" {
		decls, err := style.ParseDeclarations(styleAttr)
		if err != nil {
			tracer().Errorf("ignoring unparsable style attribute on <%s>: %v", n.Data, err)
		}
		for _, d := range decls {
			for _, fine := range style.ExpandDeclaration(d) {
				consider(fine, weight{important: d.Important, inline: true})
			}
		}
	}
	return winner
}

// weight orders declared values according to the cascade: importance first,
// then inline origin, then selector specificity, then source order (later
// wins).
type weight struct {
	important   bool
	inline      bool
	specificity cascadia.Specificity
	seq         int
}

// outranks reports wether w wins the cascade against v.
func (w weight) outranks(v weight) bool {
	if w.important != v.important {
		return w.important
	}
	if w.inline != v.inline {
		return w.inline
	}
	if w.specificity != v.specificity {
		return v.specificity.Less(w.specificity)
	}
	return w.seq >= v.seq
}

func expandAll(decls []style.Declaration) []style.Declaration {
	expanded := make([]style.Declaration, 0, len(decls))
	for _, d := range decls {
		expanded = append(expanded, style.ExpandDeclaration(d)...)
	}
	return expanded
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

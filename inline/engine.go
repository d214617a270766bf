package inline

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/cssinline/dom"
	"github.com/npillmayer/cssinline/dom/style"
	"github.com/npillmayer/cssinline/dom/style/cascade"
	"golang.org/x/net/html"
)

// StyleTarget is the capability an element must expose to take part in the
// inlining pass: access to its inline style-declaration list and to its
// class token set. Node kinds not implementing it are excluded from the
// traversal structurally (see dom.ElementsInDocumentOrder) rather than
// checked at run time.
type StyleTarget interface {
	HTMLNode() *html.Node
	InlineStyle() ([]style.Declaration, error)
	SetInlineStyle([]style.Declaration)
	RemoveClasses()
}

var _ StyleTarget = &dom.Element{}

// preserveAlways lists properties never removed by the necessity
// verification pass, regardless of empirical test outcome. An
// equal-computed-value test cannot safely detect cascade regressions
// around these (currentColor references, inherited color chains), so they
// stay inline once written.
var preserveAlways = map[string]bool{
	"color":            true,
	"background-color": true,
}

// Option configures an engine run.
type Option func(*engine)

// Aggressive selects the aggressive variant: pre-existing inline styles are
// cleared before recomputation, and the necessity verification pass prunes
// redundant declarations after the inlining pass.
func Aggressive() Option {
	return func(e *engine) {
		e.aggressive = true
	}
}

// WithEnvironment substitutes the style-resolution environment the engine
// runs against. By default a cascade.Resolver over the document is used.
func WithEnvironment(env StyleSource) Option {
	return func(e *engine) {
		e.env = env
	}
}

// engine holds the state of one run. Everything in here — environment,
// snapshot cache, analyzer — is created fresh per invocation and discarded
// afterwards; no state survives between runs.
type engine struct {
	env        StyleSource
	cache      *snapshotCache
	analyzer   *analyzer
	aggressive bool
}

// Run executes the full pipeline over the document tree rooted at root,
// mutating it in place: inlining pass, necessity verification pass (in the
// aggressive variant), cleanup. Run does not return a value; completion is
// signaled by a diagnostic log line.
func Run(root *html.Node, opts ...Option) {
	e := &engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.env == nil {
		e.env = cascade.NewResolver(root)
	}
	e.cache = newSnapshotCache(e.env)
	e.analyzer = &analyzer{cache: e.cache}
	targets := collectTargets(root)
	written := e.inliningPass(targets)
	pruned := 0
	if e.aggressive {
		pruned = e.verificationPass(targets)
	}
	stripped := Cleanup(root)
	tracer().Infof("style inlining complete: %d elements visited, %d declarations inlined, %d pruned, %d style/script nodes removed",
		len(targets), written, pruned, stripped)
}

// collectTargets gathers the stylable elements of the tree in document
// order. Elements are wrapped once and shared by both passes.
func collectTargets(root *html.Node) []StyleTarget {
	elems := dom.ElementsInDocumentOrder(root)
	targets := make([]StyleTarget, len(elems))
	for i, el := range elems {
		targets[i] = el
	}
	return targets
}

// inliningPass visits the targets in reverse document order — an
// approximation of bottom-up (descendants before ancestors) order. The
// order matters: when an element's properties are compared against its
// ancestors, those ancestors must still carry their original, pre-mutation
// styling (class tokens, inline styles) at comparison time. It is an
// approximation only: for unusual sibling shapes an ancestor may be visited
// before one of its descendants, which is tolerated as long as ancestors
// are unmutated when first queried (their snapshots are cached from then
// on).
//
// Per element: obtain the computed-style snapshot, collect the subset of
// properties not explained by inheritance into a minimal declaration set,
// write that set inline, and remove the element's class tokens.
// Returns the number of declarations written.
func (e *engine) inliningPass(targets []StyleTarget) int {
	written := 0
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		snap := e.cache.get(t.HTMLNode())
		if snap == nil {
			continue // no resolvable style, skip element
		}
		var minimal []style.Declaration
		for _, key := range snap.Keys() {
			v := snap.Value(key)
			if e.analyzer.isDifferent(t.HTMLNode(), key, v) {
				minimal = append(minimal, style.Declaration{Property: key, Value: v})
			}
		}
		written += e.writeInline(t, minimal)
		t.RemoveClasses()
	}
	return written
}

// writeInline applies a minimal declaration set to an element's inline
// style. In the aggressive variant any pre-existing inline style is
// dropped; otherwise pre-existing declarations are kept and newly derived
// ones take precedence per property. A single malformed declaration is
// skipped with a warning and never aborts the element or the run.
func (e *engine) writeInline(t StyleTarget, minimal []style.Declaration) int {
	existing, err := t.InlineStyle()
	if err != nil {
		tracer().Errorf("discarding unparsable pre-existing inline style: %v", err)
		existing = nil
	}
	if e.aggressive {
		existing = nil
	}
	merged := make([]style.Declaration, 0, len(existing)+len(minimal))
	merged = append(merged, existing...)
	count := 0
	for _, d := range minimal {
		if d.Property == "" || strings.ContainsAny(d.Value.String(), ";{}") {
			tracer().Errorf("skipping malformed declaration %q", d.String())
			continue
		}
		merged = append(merged, d) // serialization dedups per key, last wins
		count++
	}
	t.SetInlineStyle(merged)
	return count
}

// verificationPass empirically prunes inline declarations that turn out
// not to matter, using the style-resolution environment itself as the
// oracle. For every declared property outside the preserve-always set: the
// computed value is recorded with the declaration present, the declaration
// is removed, the environment is forced to recompute, and the value is
// recorded again. Equal values mean the declaration was redundant and stays
// removed; differing values mean it was load-bearing and it is restored.
//
// Each property is tested independently and restored immediately when
// needed, so the net effect is order-independent within one element.
// Elements are visited in document order; no cross-element dependency
// exists once the inlining pass has completed. Returns the number of
// declarations pruned.
func (e *engine) verificationPass(targets []StyleTarget) int {
	pruned := 0
	for _, t := range targets {
		decls, err := t.InlineStyle()
		if err != nil {
			tracer().Errorf("skipping element with unparsable inline style: %v", err)
			continue
		}
		if len(decls) == 0 {
			continue
		}
		kept := append([]style.Declaration(nil), decls...)
		for _, d := range decls {
			if preserveAlways[d.Property] {
				continue
			}
			before := e.measure(t.HTMLNode(), d.Property)
			candidate := without(kept, d.Property)
			t.SetInlineStyle(candidate)
			after := e.measure(t.HTMLNode(), d.Property)
			if before == after {
				kept = candidate // redundant, leave it removed
				pruned++
			} else {
				t.SetInlineStyle(kept) // load-bearing, restore it
			}
		}
	}
	return pruned
}

// measure reads the current computed value of one property, crossing the
// forced-recompute barrier first. Verification must observe post-mutation
// values, so reads here never come from the run-scoped snapshot cache.
func (e *engine) measure(n *html.Node, key string) style.Property {
	e.env.Recompute()
	snap := e.env.Snapshot(n)
	if snap == nil {
		return style.NullStyle
	}
	return snap.Value(key)
}

func without(decls []style.Declaration, key string) []style.Declaration {
	out := make([]style.Declaration, 0, len(decls))
	for _, d := range decls {
		if d.Property != key {
			out = append(out, d)
		}
	}
	return out
}

// Cleanup removes every stylesheet and script element node from the tree,
// unconditionally. It must run last: removing a stylesheet earlier would
// corrupt the computed-style oracle the verification pass depends on.
// Returns the number of nodes removed.
func Cleanup(root *html.Node) int {
	var doomed []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if dom.IsStyleMachinery(n) {
			doomed = append(doomed, n)
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(root)
	for _, n := range doomed {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return len(doomed)
}

package cssom

import "github.com/npillmayer/cssinline/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// style-resolution process, we introduce an interface for CSS stylesheets.
// Clients of the resolver will have to provide a concrete implementation
// of this interface (e.g., see package douceuradapter).
//
// Having this interface imposes a performance hit. However, this
// implementation of CSS-styling will never trade modularity and
// clarity for performance. Clients in need for a production grade
// browser engine (where performance is key) should opt for headless
// versions of the main browser projects.
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool  // does this stylesheet contain any rules?
	Rules() []Rule // all the rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selectors() []string              // the comma-separated selectors of the rule, in source order
	Declarations() []style.Declaration // ordered declarations of the rule body
}

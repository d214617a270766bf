/*
Package cssinline turns an already-rendered HTML document into an
equivalent document whose presentation no longer depends on external or
class-based style rules: every visual property that matters becomes an
explicit, minimal inline declaration, and all style/script machinery is
stripped from the tree.

The typical host is a scraping pipeline that rendered a page, wants its
visual language captured in the markup itself, and serializes the mutated
tree afterwards.

Two variants exist. The regular variant inlines the minimal declaration
sets and strips classes and style machinery, keeping inline styles that
were already present before the run. The aggressive variant additionally
clears pre-existing inline styles and empirically prunes every inlined
declaration that turns out not to change the computed style.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssinline

import (
	"fmt"
	"io"

	"github.com/npillmayer/cssinline/inline"
	"golang.org/x/net/html"
)

// Inline runs the regular variant over a live document tree, mutating it
// in place. There is no return value; completion is signaled by a
// diagnostic log line from the engine.
func Inline(doc *html.Node) {
	inline.Run(doc)
}

// InlineAggressive runs the aggressive variant over a live document tree,
// mutating it in place: pre-existing inline styles are cleared and
// redundant declarations are pruned by empirical re-layout tests.
func InlineAggressive(doc *html.Node) {
	inline.Run(doc, inline.Aggressive())
}

// Process is a convenience for hosts holding serialized HTML rather than a
// live tree: it parses the document from r, runs the engine over it, and
// serializes the mutated tree to w.
func Process(r io.Reader, w io.Writer, aggressive bool) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("cssinline: cannot parse document: %w", err)
	}
	if aggressive {
		InlineAggressive(doc)
	} else {
		Inline(doc)
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("cssinline: cannot serialize document: %w", err)
	}
	return nil
}

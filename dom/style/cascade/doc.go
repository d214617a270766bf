/*
Package cascade computes style property values for the elements of an HTML
document tree.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

The Resolver type plays the role a browser's style engine plays for
in-page scripts: an oracle that answers "what is the computed style of
this element, right now?". Clients mutating the tree must call
Resolver.Recompute before reading again, the way a browser script forces
a synchronous re-layout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssinline.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline.cascade")
}

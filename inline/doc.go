/*
Package inline implements the style-inlining and minimization engine.

Overview

Given an already-rendered document tree and a style-resolution environment,
the engine rewrites the tree so that its presentation no longer depends on
class-based style rules: every visual property that matters becomes an
explicit, minimal inline declaration, and all stylesheet/script machinery is
stripped from the tree.

The pipeline is strictly sequential:

  1. Inlining pass: visit all stylable elements in reverse document order,
     compute the minimal set of declarations each element must carry inline
     (see Analyzer), write them, and remove the element's class tokens.
  2. Necessity verification pass (aggressive variant only): empirically
     re-test every inline declaration just written by removing it, forcing
     the environment to recompute, and restoring it only if the computed
     value changed.
  3. Cleanup: remove every remaining stylesheet and script element.

There is no concurrency and no cancellation: each pass observes the
mutations of the previous one, and a run always continues to the cleanup
step. Failures degrade per element or per property, never abort the run.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssinline.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline.engine")
}

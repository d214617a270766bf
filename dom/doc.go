/*
Package dom provides the element surface of HTML parse trees used by the
style-inlining engine.

Overview

Styling and minimizing HTML/CSS involves a lot of operations on a live
document tree. We operate directly on parse trees of golang.org/x/net/html
and wrap element nodes into a small Element type which exposes exactly the
capabilities the engine needs: class tokens, inline style declarations, and
upward traversal. Node kinds without these capabilities (text, comments,
document nodes) are excluded structurally, not checked at run time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

/*
Package domdbg implements helpers to debug a styled DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"strings"

	"github.com/npillmayer/cssinline/dom"
	"github.com/npillmayer/cssinline/dom/style"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Snapshotter is the subset of a style-resolution environment needed for
// dumping computed properties alongside the tree.
type Snapshotter interface {
	Snapshot(n *html.Node) *style.Snapshot
}

// Dump renders the element structure of a document tree as indented text,
// one line per element, annotated with class tokens, inline declarations,
// and — if a Snapshotter and property keys are given — selected computed
// property values. Intended for test logs.
func Dump(root *html.Node, styles Snapshotter, keys []string) string {
	tree := tp.New()
	var walk func(n *html.Node, branch tp.Tree)
	walk = func(n *html.Node, branch tp.Tree) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type != html.ElementNode {
				continue
			}
			sub := branch.AddBranch(describe(ch, styles, keys))
			walk(ch, sub)
		}
	}
	walk(root, tree)
	return tree.String()
}

func describe(n *html.Node, styles Snapshotter, keys []string) string {
	b := strings.Builder{}
	b.WriteString("<")
	b.WriteString(n.Data)
	el := dom.ElementOf(n)
	if cls := el.Classes(); len(cls) > 0 {
		b.WriteString(" class=\"")
		b.WriteString(strings.Join(cls, " "))
		b.WriteString("\"")
	}
	if sty, ok := el.Attr("style"); ok {
		b.WriteString(" style=\"")
		b.WriteString(sty)
		b.WriteString("\"")
	}
	b.WriteString(">")
	if styles != nil && len(keys) > 0 {
		if snap := styles.Snapshot(n); snap != nil {
			b.WriteString("  [")
			for i, k := range keys {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(k)
				b.WriteString("=")
				b.WriteString(snap.Value(k).String())
			}
			b.WriteString("]")
		}
	}
	return b.String()
}

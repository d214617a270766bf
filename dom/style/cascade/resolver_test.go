package cascade

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err, "cannot parse test document")
	return doc
}

func mustFind(t *testing.T, doc *html.Node, sel string) *html.Node {
	t.Helper()
	s, err := cascadia.Compile(sel)
	require.NoError(t, err, "cannot compile selector %q", sel)
	n := s.MatchFirst(doc)
	require.NotNil(t, n, "no element matches %q", sel)
	return n
}

func TestResolverClassRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cascade")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>.box { color: red; }</style></head>
		<body><div class="box"></div></body></html>`)
	r := NewResolver(doc)
	div := mustFind(t, doc, "div")
	snap := r.Snapshot(div)
	if snap.Value("color") != "red" {
		t.Errorf("expected div color to be red, is %s", snap.Value("color"))
	}
}

func TestResolverInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cascade")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>div { color: green; margin-top: 7px; }</style></head>
		<body><div><p>text</p></div></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	snap := r.Snapshot(p)
	if snap.Value("color") != "green" {
		t.Errorf("expected p to inherit color green, is %s", snap.Value("color"))
	}
	if snap.Value("margin-top") != "0px" {
		t.Errorf("expected p margin-top not to inherit, is %s", snap.Value("margin-top"))
	}
}

func TestResolverSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cascade")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>
		.special { color: blue; }
		p { color: red; }
	</style></head><body><p class="special">x</p></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	if v := r.Snapshot(p).Value("color"); v != "blue" {
		t.Errorf("expected class selector to outrank tag selector, color is %s", v)
	}
}

func TestResolverSourceOrder(t *testing.T) {
	doc := parseDoc(t, `<html><head><style>
		p { color: red; }
		p { color: green; }
	</style></head><body><p>x</p></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	if v := r.Snapshot(p).Value("color"); v != "green" {
		t.Errorf("expected later rule to win at equal specificity, color is %s", v)
	}
}

func TestResolverInlineBeatsSheet(t *testing.T) {
	doc := parseDoc(t, `<html><head><style>p { color: red; }</style></head>
		<body><p style="color: blue">x</p></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	if v := r.Snapshot(p).Value("color"); v != "blue" {
		t.Errorf("expected inline declaration to outrank sheet rule, color is %s", v)
	}
}

func TestResolverImportantBeatsInline(t *testing.T) {
	doc := parseDoc(t, `<html><head><style>p { color: red !important; }</style></head>
		<body><p style="color: blue">x</p></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	if v := r.Snapshot(p).Value("color"); v != "red" {
		t.Errorf("expected important sheet rule to outrank inline declaration, color is %s", v)
	}
}

func TestResolverShorthandExpansion(t *testing.T) {
	doc := parseDoc(t, `<html><head><style>div { margin: 4px 8px; }</style></head>
		<body><div>x</div></body></html>`)
	r := NewResolver(doc)
	div := mustFind(t, doc, "div")
	snap := r.Snapshot(div)
	if snap.Value("margin-top") != "4px" || snap.Value("margin-left") != "8px" {
		t.Errorf("expected margin shorthand to expand, top=%s left=%s",
			snap.Value("margin-top"), snap.Value("margin-left"))
	}
}

func TestResolverDefaults(t *testing.T) {
	doc := parseDoc(t, `<html><head></head><body><div><span>x</span></div></body></html>`)
	r := NewResolver(doc)
	span := mustFind(t, doc, "span")
	snap := r.Snapshot(span)
	if snap.Value("display") != "inline" {
		t.Errorf("expected span display default inline, is %s", snap.Value("display"))
	}
	if snap.Value("background-color") != "rgba(0, 0, 0, 0)" {
		t.Errorf("expected transparent background default, is %s", snap.Value("background-color"))
	}
}

func TestResolverNonElement(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>text</p></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	text := p.FirstChild
	require.NotNil(t, text)
	if r.Snapshot(text) != nil {
		t.Error("expected nil snapshot for a text node")
	}
	if r.Snapshot(nil) != nil {
		t.Error("expected nil snapshot for a nil node")
	}
}

func TestResolverRecomputeBarrier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cascade")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>.hot { color: red; }</style></head>
		<body><p class="hot">x</p></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	if v := r.Snapshot(p).Value("color"); v != "red" {
		t.Fatalf("expected initial color red, is %s", v)
	}
	// drop the class; the memoized snapshot must stay stale until Recompute
	p.Attr = nil
	if v := r.Snapshot(p).Value("color"); v != "red" {
		t.Errorf("expected stale snapshot before Recompute, color is %s", v)
	}
	r.Recompute()
	if v := r.Snapshot(p).Value("color"); v != "rgb(0, 0, 0)" {
		t.Errorf("expected default color after Recompute, is %s", v)
	}
}

func TestResolverBadSelectorSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssinline.cascade")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head><style>
		p:unsupported-pseudo(3) { color: red; }
		p { color: green; }
	</style></head><body><p>x</p></body></html>`)
	r := NewResolver(doc)
	p := mustFind(t, doc, "p")
	if v := r.Snapshot(p).Value("color"); v != "green" {
		t.Errorf("expected resolution to survive a bad selector, color is %s", v)
	}
}

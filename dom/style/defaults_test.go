package style

import (
	"testing"

	"golang.org/x/net/html"
)

func TestDisplayDefaultPerTag(t *testing.T) {
	cases := map[string]Property{
		"div":   "block",
		"span":  "inline",
		"li":    "list-item",
		"table": "table",
		"head":  "none",
		"foo":   "inline", // unknown elements render inline
	}
	for tag, want := range cases {
		n := &html.Node{Type: html.ElementNode, Data: tag}
		if got := DisplayPropertyForHTMLNode(n); got != want {
			t.Errorf("expected display of <%s> to be %s, is %s", tag, want, got)
		}
	}
}

func TestDisplayDefaultNonElement(t *testing.T) {
	n := &html.Node{Type: html.TextNode, Data: "hello"}
	if got := DisplayPropertyForHTMLNode(n); got != "none" {
		t.Errorf("expected display of text node to be none, is %s", got)
	}
	if got := DisplayPropertyForHTMLNode(nil); got != "none" {
		t.Errorf("expected display of nil node to be none, is %s", got)
	}
}

func TestInitialValues(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div"}
	if v := InitialValue(n, "margin-top"); v != "0px" {
		t.Errorf("expected initial margin-top to be 0px, is %s", v)
	}
	if v := InitialValue(n, "display"); v != "block" {
		t.Errorf("expected initial display of div to be block, is %s", v)
	}
	if v := InitialValue(n, "no-such-property"); v != NullStyle {
		t.Errorf("expected unknown property to have NullStyle initial, is %s", v)
	}
}

func TestIsInherited(t *testing.T) {
	if !IsInherited("color") {
		t.Error("expected color to be inherited")
	}
	if IsInherited("margin-top") {
		t.Error("expected margin-top not to be inherited")
	}
	if IsInherited("background-color") {
		t.Error("expected background-color not to be inherited")
	}
}

func TestAllPropertiesHaveInitialValues(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div"}
	for _, key := range AllProperties {
		if InitialValue(n, key) == NullStyle {
			t.Errorf("property %s has no initial value", key)
		}
	}
}

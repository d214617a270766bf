/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssinline/dom/style"
	"github.com/npillmayer/cssinline/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cssinline.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cssinline.dom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse a CSS stylesheet from source text.
func Parse(src string) (*CSSStyles, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// Rules returns all the qualified rules of a stylesheet in source order.
// At-rules (@media, @font-face, …) carry no selector an element could match
// against and are skipped with a trace message.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %q", r.Name)
			continue
		}
		rules = append(rules, Rule{*r})
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule css.Rule
}

// Selectors returns the comma-separated selectors of the rule,
// in source order.
func (r Rule) Selectors() []string {
	sels := make([]string, 0, len(r.rule.Selectors))
	for _, s := range r.rule.Selectors {
		if s = strings.TrimSpace(s); s != "" {
			sels = append(sels, s)
		}
	}
	return sels
}

// Declarations returns the ordered declarations of the rule body.
func (r Rule) Declarations() []style.Declaration {
	decls := make([]style.Declaration, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if key == "" {
			continue
		}
		decls = append(decls, style.Declaration{
			Property:  key,
			Value:     style.Property(strings.TrimSpace(d.Value)),
			Important: d.Important,
		})
	}
	return decls
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits every element of an HTML parse tree and
// collects the contents of embedded <style> elements as parsed style
// sheets, in document order. Style elements that fail to parse are
// skipped with a warning; they never abort extraction.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			if n.FirstChild != nil {
				sheet, err := Parse(n.FirstChild.Data)
				if err != nil {
					tracer().Errorf("skipping unparsable <style> element: %v", err)
				} else {
					sheets = append(sheets, sheet)
				}
			}
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(htmldoc)
	return sheets
}

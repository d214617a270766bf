package style

import (
	"golang.org/x/net/html"
)

// AllProperties lists every style property name the resolution environment
// recognizes. Computed-style snapshots contain exactly these keys.
//
// The list deliberately covers the visual properties that matter for
// style cloning (box model, color, typography, layout mode); exotic or
// vendor-specific properties are not resolved and pass through the engine
// untouched as inline declarations, if present.
var AllProperties = []string{
	"margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding-top", "padding-right", "padding-bottom", "padding-left",
	"border-top-color", "border-right-color", "border-bottom-color", "border-left-color",
	"border-top-width", "border-right-width", "border-bottom-width", "border-left-width",
	"border-top-style", "border-right-style", "border-bottom-style", "border-left-style",
	"border-top-left-radius", "border-top-right-radius",
	"border-bottom-left-radius", "border-bottom-right-radius",
	"width", "height", "min-width", "min-height", "max-width", "max-height",
	"display", "float", "visibility", "position", "overflow",
	"z-index", "box-sizing", "opacity", "vertical-align",
	"color", "background-color",
	"font-family", "font-size", "font-style", "font-weight",
	"line-height", "letter-spacing", "word-spacing",
	"text-align", "text-indent", "text-transform", "text-decoration-line",
	"white-space", "word-break", "overflow-wrap", "hyphens",
	"direction", "cursor",
	"list-style-type", "list-style-position",
}

// inherited marks the properties whose values cascade from the parent
// element when no declaration applies.
var inherited = map[string]bool{
	"color":               true,
	"cursor":              true,
	"direction":           true,
	"font-family":         true,
	"font-size":           true,
	"font-style":          true,
	"font-weight":         true,
	"letter-spacing":      true,
	"line-height":         true,
	"list-style-type":     true,
	"list-style-position": true,
	"text-align":          true,
	"text-indent":         true,
	"text-transform":      true,
	"visibility":          true,
	"white-space":         true,
	"word-break":          true,
	"word-spacing":        true,
	"overflow-wrap":       true,
	"hyphens":             true,
}

// IsInherited returns wether the standard behaviour for a property is to be
// inherited, i.e., a call to retrieve its value will cascade.
func IsInherited(key string) bool {
	return inherited[key]
}

// initialValues holds the user-agent default (initial) value per property.
// In real-world browsers these are the user-agent CSS values.
// `display` is absent here: its default depends on the element tag, see
// DisplayPropertyForHTMLNode.
var initialValues = map[string]Property{
	"margin-top":     "0px",
	"margin-right":   "0px",
	"margin-bottom":  "0px",
	"margin-left":    "0px",
	"padding-top":    "0px",
	"padding-right":  "0px",
	"padding-bottom": "0px",
	"padding-left":   "0px",

	"border-top-color":    "currentcolor",
	"border-right-color":  "currentcolor",
	"border-bottom-color": "currentcolor",
	"border-left-color":   "currentcolor",
	"border-top-width":    "medium",
	"border-right-width":  "medium",
	"border-bottom-width": "medium",
	"border-left-width":   "medium",
	"border-top-style":    "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
	"border-left-style":   "none",

	"border-top-left-radius":     "0px",
	"border-top-right-radius":    "0px",
	"border-bottom-left-radius":  "0px",
	"border-bottom-right-radius": "0px",

	"width":      "auto",
	"height":     "auto",
	"min-width":  "0px",
	"min-height": "0px",
	"max-width":  "none",
	"max-height": "none",

	"float":          "none",
	"visibility":     "visible",
	"position":       "static",
	"overflow":       "visible",
	"z-index":        "auto",
	"box-sizing":     "content-box",
	"opacity":        "1",
	"vertical-align": "baseline",

	"color":            "rgb(0, 0, 0)",
	"background-color": "rgba(0, 0, 0, 0)",

	"font-family":          "serif",
	"font-size":            "16px",
	"font-style":           "normal",
	"font-weight":          "400",
	"line-height":          "normal",
	"letter-spacing":       "normal",
	"word-spacing":         "normal",
	"text-align":           "start",
	"text-indent":          "0px",
	"text-transform":       "none",
	"text-decoration-line": "none",
	"white-space":          "normal",
	"word-break":           "normal",
	"overflow-wrap":        "normal",
	"hyphens":              "manual",
	"direction":            "ltr",
	"cursor":               "auto",
	"list-style-type":      "disc",
	"list-style-position":  "outside",
}

// InitialValue returns the user-agent default property value for a given key,
// in the context of a given HTML node.
func InitialValue(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if p, ok := initialValues[key]; ok {
		return p
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for
// an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "link", "meta", "title", "base":
		return "none"
	case "html", "body", "address", "article", "aside", "blockquote",
		"div", "figure", "figcaption", "footer", "form", "h1", "h2", "h3",
		"h4", "h5", "h6", "header", "hr", "main", "nav", "ol", "p", "pre",
		"section", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "td", "th":
		return "table-cell"
	case "tr":
		return "table-row"
	case "button", "input", "select", "textarea", "img":
		return "inline-block"
	}
	// everything else renders inline by default
	return "inline"
}

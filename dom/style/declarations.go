package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declaration is a single style declaration: a property key, its raw value
// and an optional importance marker. Declarations appear in stylesheet
// rules as well as in `style="…"` attributes.
type Declaration struct {
	Property  string
	Value     Property
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return fmt.Sprintf("%s: %s !important", d.Property, d.Value)
	}
	return fmt.Sprintf("%s: %s", d.Property, d.Value)
}

// ParseDeclarations parses the contents of a `style="…"` attribute (or any
// other bare declaration list) into ordered declarations. Property keys are
// lower-cased, values are kept verbatim (modulo surrounding whitespace).
func ParseDeclarations(src string) ([]Declaration, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	parsed, err := parser.ParseDeclarations(src)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style declarations: %w", err)
	}
	decls := make([]Declaration, 0, len(parsed))
	for _, d := range parsed {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if key == "" {
			continue
		}
		decls = append(decls, Declaration{
			Property:  key,
			Value:     Property(strings.TrimSpace(d.Value)),
			Important: d.Important,
		})
	}
	return decls, nil
}

// SerializeDeclarations produces the canonical text form of a declaration
// list, suitable for a `style` attribute. Declarations are sorted by
// property name and de-duplicated (the last value for a key wins), which
// makes serialization deterministic and re-runs of the engine stable.
func SerializeDeclarations(decls []Declaration) string {
	byKey := make(map[string]Declaration, len(decls))
	for _, d := range decls {
		if d.Property == "" {
			continue
		}
		byKey[d.Property] = d
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b := strings.Builder{}
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		d := byKey[k]
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value.String())
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";")
	}
	return b.String()
}

// ExpandDeclaration splits a shortcut declaration into its fine grained
// components, keeping importance. Non-compound declarations are returned
// unchanged as a one-element slice.
func ExpandDeclaration(d Declaration) []Declaration {
	kvs, err := SplitCompoundProperty(d.Property, d.Value)
	if err != nil {
		return []Declaration{d}
	}
	expanded := make([]Declaration, 0, len(kvs))
	for _, kv := range kvs {
		expanded = append(expanded, Declaration{
			Property:  kv.Key,
			Value:     kv.Value,
			Important: d.Important,
		})
	}
	return expanded
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-right", "bottom-right", "bottom-left", "top-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

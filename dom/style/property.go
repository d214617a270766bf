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

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssinline.dom'
func tracer() tracing.Trace {
	return tracing.Select("cssinline.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Property values are produced by the
// style-resolution process and are treated as opaque strings throughout:
// no arithmetic or unit interpretation is ever performed on them.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Computed style snapshots ------------------------------------------

// Snapshot is the computed style of a single element: a mapping from every
// style property name the resolver recognizes to its resolved
// (post-cascade, post-inheritance) value.
//
// Snapshots are produced by the style-resolution environment at query time
// and are read-only for clients. A nil snapshot means the element has no
// resolvable style.
type Snapshot struct {
	props map[string]Property
}

// NewSnapshot creates an empty computed-style snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{props: make(map[string]Property, len(AllProperties))}
}

// Value returns the resolved value for a property key, or NullStyle if the
// key is not part of the snapshot.
func (s *Snapshot) Value(key string) Property {
	if s == nil {
		return NullStyle
	}
	return s.props[key]
}

// Set stores the resolved value for a property key.
func (s *Snapshot) Set(key string, p Property) {
	if s == nil {
		return
	}
	key = strings.ToLower(key)
	s.props[key] = p
}

// Size returns the number of properties held by the snapshot.
func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// Keys returns the property names of the snapshot in deterministic
// (sorted) order.
func (s *Snapshot) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.props))
	for k := range s.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stringer for snapshots; used for debugging.
func (s *Snapshot) String() string {
	if s == nil {
		return "Snapshot = nil"
	}
	b := strings.Builder{}
	b.WriteString("Snapshot = {\n")
	for _, k := range s.Keys() {
		b.WriteString(fmt.Sprintf("  %s = %s\n", k, s.props[k]))
	}
	b.WriteString("}")
	return b.String()
}

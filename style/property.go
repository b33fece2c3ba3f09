package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

// Variants of a Value. KindString is the opaque fallback for every property
// which is neither a color nor a number.
const (
	KindString Kind = iota
	KindColor
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindNumber:
		return "number"
	}
	return "string"
}

// Value is a typed style property value. It is a tagged union: only the field
// corresponding to Kind is meaningful.
type Value struct {
	Kind   Kind
	Color  Color
	Number float64
	Str    string
}

// ColorValue wraps a color.
func ColorValue(c Color) Value {
	return Value{Kind: KindColor, Color: c}
}

// NumberValue wraps a number.
func NumberValue(x float64) Value {
	return Value{Kind: KindNumber, Number: x}
}

// StringValue wraps an opaque string.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func (v Value) String() string {
	switch v.Kind {
	case KindColor:
		return v.Color.String()
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
	return v.Str
}

// Computed is the computed style of an element: a flat map from property
// name to typed value. A computed style is built fresh for every element in
// every frame and is not modified after construction. nil is a legal (empty)
// computed style.
type Computed map[string]Value

// Color returns a color property, if set and of kind color.
func (cs Computed) Color(key string) (Color, bool) {
	v, ok := cs[key]
	if !ok || v.Kind != KindColor {
		return 0, false
	}
	return v.Color, true
}

// Number returns a numeric property, if set and of kind number.
func (cs Computed) Number(key string) (float64, bool) {
	v, ok := cs[key]
	if !ok || v.Kind != KindNumber {
		return 0, false
	}
	return v.Number, true
}

// Str returns the textual representation of a property, if set.
func (cs Computed) Str(key string) (string, bool) {
	v, ok := cs[key]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Keys returns the property names of a computed style in sorted order.
func (cs Computed) Keys() []string {
	keys := make([]string, 0, len(cs))
	for k := range cs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (cs Computed) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range cs.Keys() {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s: %s", k, cs[k])
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Property catalogue ----------------------------------------------------

// Class is the coercion class of a property.
type Class uint8

// Coercion classes. ClassOpaque is used for unknown properties.
const (
	ClassOpaque Class = iota
	ClassColor
	ClassNumber
	ClassOpacity
)

var propertyClass = map[string]Class{
	"color":                          ClassColor,
	"background-color":               ClassColor,
	"text-color":                     ClassColor,
	"button-color":                   ClassColor,
	"button-color-hover":             ClassColor,
	"button-color-active":            ClassColor,
	"widget-background-color":        ClassColor,
	"widget-background-color-hover":  ClassColor,
	"widget-background-color-active": ClassColor,
	"frame-background-color":         ClassColor,
	"frame-background-color-hover":   ClassColor,
	"frame-background-color-active":  ClassColor,
	"window-background-color":        ClassColor,
	"popup-background-color":         ClassColor,
	"border-color":                   ClassColor,
	"scrollbar-background-color":     ClassColor,
	"scrollbar-grab-color":           ClassColor,
	"scrollbar-grab-hover-color":     ClassColor,
	"header-background-color":        ClassColor,
	"header-hover-color":             ClassColor,
	"header-active-color":            ClassColor,
	"title-background-color":         ClassColor,
	"title-active-color":             ClassColor,
	"title-collapsed-color":          ClassColor,
	"menu-bar-background-color":      ClassColor,
	"tab-background-color":           ClassColor,
	"tab-hover-color":                ClassColor,
	"tab-active-color":               ClassColor,
	"docking-background-color":       ClassColor,
	"docking-preview-color":          ClassColor,
	"docking-empty-color":            ClassColor,
	"plot-background-color":          ClassColor,
	"plot-line-color":                ClassColor,
	"plot-histogram-color":           ClassColor,
	"table-background-color":         ClassColor,
	"table-border-color":             ClassColor,
	"table-header-background-color":  ClassColor,
	"table-row-background-color":     ClassColor,
	"table-row-alt-background-color": ClassColor,
	"drag-drop-background-color":     ClassColor,
	"nav-highlight-color":            ClassColor,
	"nav-windowing-highlight-color":  ClassColor,
	"nav-windowing-darkening-color":  ClassColor,
	"modal-window-darkening-color":   ClassColor,
	"width":                          ClassNumber,
	"height":                         ClassNumber,
	"padding":                        ClassNumber,
	"margin":                         ClassNumber,
	"font-size":                      ClassNumber,
	"border-radius":                  ClassNumber,
	"opacity":                        ClassOpacity,
}

// ClassOf returns the coercion class for a property name.
// Unknown properties are of class ClassOpaque.
func ClassOf(key string) Class {
	return propertyClass[key]
}

// IsKnownProperty is a predicate for property names in the catalogue.
func IsKnownProperty(key string) bool {
	_, ok := propertyClass[key]
	return ok
}

// KnownProperties returns all property names of the catalogue, sorted.
func KnownProperties() []string {
	keys := make([]string, 0, len(propertyClass))
	for k := range propertyClass {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Coerce converts a resolved raw property value into a typed value, depending
// on the property's class:
//
//    color-family properties  → KindColor, unparsable colors yield Unresolved
//    numeric properties       → KindNumber, unparsable numbers yield 0
//    opacity                  → KindNumber, clamped to [0…1], unparsable yields 1
//    everything else          → KindString
//
// Coerce never fails; problems are reported to the trace.
func Coerce(key string, raw string) Value {
	raw = strings.TrimSpace(raw)
	switch ClassOf(key) {
	case ClassColor:
		c, err := ParseColor(raw)
		if err != nil {
			tracer().Infof("style: unresolved color value %q for %s; expected hex color, rgb() or variable reference",
				raw, key)
			return ColorValue(Unresolved)
		}
		return ColorValue(c)
	case ClassNumber:
		x, ok := ParseNumber(raw)
		if !ok {
			tracer().Debugf("style: cannot parse number %q for %s, using 0", raw, key)
		}
		return NumberValue(x)
	case ClassOpacity:
		x, ok := ParseNumber(raw)
		if !ok {
			x = 1
		}
		return NumberValue(math.Max(0, math.Min(1, x)))
	}
	return StringValue(raw)
}

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber parses the leading numeric part of a string, e.g.
//
//    ParseNumber("120px") => 120, true
//
// If the string does not start with a number, ParseNumber returns 0 and false.
func ParseNumber(s string) (float64, bool) {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	x, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}
